package trace

// MockAdd returns a minimal hand-built trace: PUSH1 1, PUSH1 2, ADD.
// Useful for tests and examples that need a valid trace without a
// live execution source.
func MockAdd() *Trace {
	return &Trace{
		Opcodes: ByteValues{0x60, 0x60, 0x01},
		StackStates: [][]uint64{
			{1, 0, 0},
			{2, 1, 0},
			{3, 0, 0},
		},
		PCs:       []uint64{0, 1, 2},
		GasValues: []uint64{1000, 997, 994},
	}
}

// MockMul returns a minimal hand-built trace: PUSH1 2, PUSH1 3, MUL.
func MockMul() *Trace {
	return &Trace{
		Opcodes: ByteValues{0x60, 0x60, 0x02},
		StackStates: [][]uint64{
			{2, 0, 0},
			{3, 2, 0},
			{6, 0, 0},
		},
		PCs:       []uint64{0, 1, 2},
		GasValues: []uint64{1000, 997, 994},
	}
}
