package utils

import "testing"

// TestIsPowerOfTwo tests the IsPowerOfTwo function
func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected bool
	}{
		{"zero", 0, false},
		{"negative", -1, false},
		{"one", 1, true},
		{"two", 2, true},
		{"three", 3, false},
		{"sixteen", 16, true},
		{"large power", 1 << 20, true},
		{"large non-power", (1 << 20) - 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsPowerOfTwo(tt.input)
			if result != tt.expected {
				t.Errorf("IsPowerOfTwo(%d) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestLog2 tests the Log2 function
func TestLog2(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"one", 1, 0},
		{"two", 2, 1},
		{"1024", 1024, 10},
		{"non-power of 2", 3, -1},
		{"zero", 0, -1},
		{"large power", 1 << 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Log2(tt.input)
			if result != tt.expected {
				t.Errorf("Log2(%d) = %d, expected %d", tt.input, result, tt.expected)
			}
		})
	}
}

// TestCeilDiv tests the CeilDiv function
func TestCeilDiv(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		expected int
	}{
		{"exact", 12, 4, 3},
		{"rounds up", 13, 4, 4},
		{"one short", 11, 4, 3},
		{"smaller than divisor", 1, 4, 1},
		{"zero", 0, 4, 0},
		{"negative", -3, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CeilDiv(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("CeilDiv(%d, %d) = %d, expected %d", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

// TestNextPowerOfTwo tests the NextPowerOfTwo function
func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"zero", 0, 1},
		{"negative", -5, 1},
		{"one", 1, 1},
		{"three", 3, 4},
		{"seventeen", 17, 32},
		{"thousand", 1000, 1024},
		{"already power", 1024, 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NextPowerOfTwo(tt.input)
			if result != tt.expected {
				t.Errorf("NextPowerOfTwo(%d) = %d, expected %d", tt.input, result, tt.expected)
			}

			// Verify result is a power of 2 and covers the input
			if !IsPowerOfTwo(result) {
				t.Errorf("NextPowerOfTwo(%d) = %d, which is not a power of 2", tt.input, result)
			}
			if result < tt.input {
				t.Errorf("NextPowerOfTwo(%d) = %d, which is less than input", tt.input, result)
			}
		})
	}
}

// TestLog2Consistency tests that Log2 and NextPowerOfTwo are consistent
func TestLog2Consistency(t *testing.T) {
	for i := 1; i <= 1024; i++ {
		next := NextPowerOfTwo(i)
		log := Log2(next)

		if 1<<uint(log) != next {
			t.Errorf("Inconsistency for i=%d: NextPowerOfTwo=%d, Log2=%d", i, next, log)
		}
	}
}
