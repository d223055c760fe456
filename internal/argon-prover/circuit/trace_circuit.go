package circuit

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark/frontend"
)

// ErrRowBudget is returned when a trace holds more steps than the
// circuit shape has rows for.
var ErrRowBudget = errors.New("trace exceeds circuit row budget")

// TraceCircuit proves that a claimed execution trace is internally
// consistent. The circuit has a fixed number of rows; a trace shorter
// than the row count is padded with inactive rows, toggled off by the
// Active selector column.
//
// Per active row, the gates enforce:
//   - arithmetic result binding, under the IsAdd/IsSub/IsMul selectors;
//   - stack depth within [0, StackLimit].
//
// Per adjacent active pair of rows:
//   - program-counter progression pc' = pc + 1 (fixed-increment model;
//     variable-length PUSH data and jump targets are not modeled);
//   - gas metering gas' = gas - cost, saturating at zero through the
//     Saturated selector.
//
// The only public input is the trace commitment; it is bound by
// equality to the CommitmentCells advice column.
type TraceCircuit struct {
	Commitment [CommitmentWords]frontend.Variable `gnark:",public"`

	CommitmentCells [CommitmentWords]frontend.Variable

	Active      []frontend.Variable // 1 on trace rows, 0 on padding
	Opcode      []frontend.Variable
	StackTop    []frontend.Variable
	StackSecond []frontend.Variable
	Result      []frontend.Variable
	PC          []frontend.Variable
	Gas         []frontend.Variable
	Cost        []frontend.Variable
	Depth       []frontend.Variable
	IsAdd       []frontend.Variable
	IsSub       []frontend.Variable
	IsMul       []frontend.Variable
	Saturated   []frontend.Variable // gas underflow marker per transition
}

// NewTraceCircuit allocates the circuit shape for a fixed row count.
// The returned value carries no assignments; it is the compilation
// template.
func NewTraceCircuit(rows int) *TraceCircuit {
	return &TraceCircuit{
		Active:      make([]frontend.Variable, rows),
		Opcode:      make([]frontend.Variable, rows),
		StackTop:    make([]frontend.Variable, rows),
		StackSecond: make([]frontend.Variable, rows),
		Result:      make([]frontend.Variable, rows),
		PC:          make([]frontend.Variable, rows),
		Gas:         make([]frontend.Variable, rows),
		Cost:        make([]frontend.Variable, rows),
		Depth:       make([]frontend.Variable, rows),
		IsAdd:       make([]frontend.Variable, rows),
		IsSub:       make([]frontend.Variable, rows),
		IsMul:       make([]frontend.Variable, rows),
		Saturated:   make([]frontend.Variable, rows),
	}
}

// Rows returns the circuit's row count.
func (c *TraceCircuit) Rows() int {
	return len(c.Active)
}

// Define declares the constraint system.
func (c *TraceCircuit) Define(api frontend.API) error {
	n := len(c.Active)
	for _, col := range [][]frontend.Variable{
		c.Opcode, c.StackTop, c.StackSecond, c.Result, c.PC,
		c.Gas, c.Cost, c.Depth, c.IsAdd, c.IsSub, c.IsMul, c.Saturated,
	} {
		if len(col) != n {
			return fmt.Errorf("column length mismatch: %d != %d", len(col), n)
		}
	}

	// Bind the public commitment to its advice cells.
	for w := 0; w < CommitmentWords; w++ {
		api.AssertIsEqual(c.Commitment[w], c.CommitmentCells[w])
	}

	var chip ArithmeticChip
	for i := 0; i < n; i++ {
		api.AssertIsBoolean(c.Active[i])
		api.AssertIsBoolean(c.IsAdd[i])
		api.AssertIsBoolean(c.IsSub[i])
		api.AssertIsBoolean(c.IsMul[i])
		api.AssertIsBoolean(c.Saturated[i])

		api.AssertIsLessOrEqual(c.Depth[i], StackLimit)

		// Arithmetic result binding, one gate per selector.
		api.AssertIsEqual(api.Mul(c.IsAdd[i], chip.AddGate(api, c.StackTop[i], c.StackSecond[i], c.Result[i])), 0)
		api.AssertIsEqual(api.Mul(c.IsSub[i], chip.SubGate(api, c.StackTop[i], c.StackSecond[i], c.Result[i])), 0)
		api.AssertIsEqual(api.Mul(c.IsMul[i], chip.MulGate(api, c.StackTop[i], c.StackSecond[i], c.Result[i])), 0)
	}

	for i := 0; i+1 < n; i++ {
		// Once a row is inactive every later row stays inactive.
		api.AssertIsEqual(api.Mul(c.Active[i+1], api.Sub(1, c.Active[i])), 0)

		// Transition gates apply only between two active rows.
		pair := api.Mul(c.Active[i], c.Active[i+1])

		api.AssertIsEqual(api.Mul(pair, api.Sub(c.PC[i+1], api.Add(c.PC[i], 1))), 0)

		// Exact metering when gas covers the cost; a saturated
		// transition instead pins the next gas reading to zero.
		exact := api.Mul(api.Sub(1, c.Saturated[i]), api.Sub(api.Sub(c.Gas[i], c.Cost[i]), c.Gas[i+1]))
		saturated := api.Mul(c.Saturated[i], c.Gas[i+1])
		api.AssertIsEqual(api.Mul(pair, api.Add(exact, saturated)), 0)
	}

	return nil
}
