package circuit

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/argon-zk/argon-prover/internal/argon-prover/trace"
)

// parallelThreshold is the step count above which witness flattening
// fans out across a worker pool.
const parallelThreshold = 4096

// CircuitWitness is the flattened, per-cell numeric form of a trace:
// one opcode cell and gas cell per step, StackWidth stack cells per
// step in step-major order, and the commitment words destined for the
// public inputs. Building it is a pure function of the trace.
type CircuitWitness struct {
	OpcodeCells  []uint64
	StackCells   []uint64
	GasCells     []uint64
	PublicInputs []uint64
}

// BuildWitness validates the trace and flattens it into cell arrays.
// Each step's cells depend only on that step, so flattening of large
// traces is spread over a worker pool with step-indexed writes.
func BuildWitness(t *trace.Trace) (*CircuitWitness, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	n := t.Len()
	w := &CircuitWitness{
		OpcodeCells: make([]uint64, n),
		StackCells:  make([]uint64, n*trace.StackWidth),
		GasCells:    make([]uint64, n),
	}

	fill := func(start, end int) {
		for i := start; i < end; i++ {
			step := t.Step(i)
			w.OpcodeCells[i] = uint64(step.Opcode)
			w.GasCells[i] = step.Gas
			for j := 0; j < trace.StackWidth; j++ {
				w.StackCells[i*trace.StackWidth+j] = step.Stack[j]
			}
		}
	}

	if n < parallelThreshold {
		fill(0, n)
	} else {
		workers := runtime.GOMAXPROCS(0)
		shard := (n + workers - 1) / workers
		var g errgroup.Group
		for start := 0; start < n; start += shard {
			end := start + shard
			if end > n {
				end = n
			}
			start, end := start, end
			g.Go(func() error {
				fill(start, end)
				return nil
			})
		}
		// Shard fills cannot fail; Wait only joins the pool.
		_ = g.Wait()
	}

	commitment := Commit(t.Opcodes, t.GasValues)
	w.PublicInputs = commitment[:]
	return w, nil
}

// NewAssignment fills a TraceCircuit assignment of the given row count
// from a trace and its flattened witness. Rows past the trace length
// are zero padding with the Active selector off. Fails with
// ErrRowBudget before assigning anything if the trace does not fit.
func NewAssignment(t *trace.Trace, w *CircuitWitness, rows int) (*TraceCircuit, error) {
	n := t.Len()
	if n > rows {
		return nil, fmt.Errorf("%w: %d steps > %d rows", ErrRowBudget, n, rows)
	}
	if len(w.OpcodeCells) != n || len(w.GasCells) != n || len(w.StackCells) != n*trace.StackWidth {
		return nil, fmt.Errorf("witness shape does not match trace length %d", n)
	}

	c := NewTraceCircuit(rows)
	for i := range c.Commitment {
		c.Commitment[i] = 0
		c.CommitmentCells[i] = 0
	}
	for i, word := range w.PublicInputs {
		c.Commitment[i] = word
		c.CommitmentCells[i] = word
	}

	depth := uint64(0)
	for i := 0; i < rows; i++ {
		if i >= n {
			c.Active[i] = uint64(0)
			c.Opcode[i] = uint64(0)
			c.StackTop[i] = uint64(0)
			c.StackSecond[i] = uint64(0)
			c.Result[i] = uint64(0)
			c.PC[i] = uint64(0)
			c.Gas[i] = uint64(0)
			c.Cost[i] = uint64(0)
			c.Depth[i] = uint64(0)
			c.IsAdd[i] = uint64(0)
			c.IsSub[i] = uint64(0)
			c.IsMul[i] = uint64(0)
			c.Saturated[i] = uint64(0)
			continue
		}

		op := OpCode(w.OpcodeCells[i])
		spec := Spec(op)
		top := w.StackCells[i*trace.StackWidth]
		second := w.StackCells[i*trace.StackWidth+1]

		c.Active[i] = uint64(1)
		c.Opcode[i] = w.OpcodeCells[i]
		c.StackTop[i] = top
		c.StackSecond[i] = second
		c.Result[i] = ExecuteOpcode(op, top, second)
		c.PC[i] = t.PCs[i]
		c.Gas[i] = w.GasCells[i]
		c.Cost[i] = spec.GasCost

		if consumed := uint64(spec.StackConsumed); consumed > depth {
			depth = 0
		} else {
			depth -= consumed
		}
		depth += uint64(spec.StackProduced)
		c.Depth[i] = depth

		c.IsAdd[i] = boolVar(op == ADD)
		c.IsSub[i] = boolVar(op == SUB)
		c.IsMul[i] = boolVar(op == MUL)

		// A transition whose cost exceeds the remaining gas must
		// saturate to zero instead of underflowing.
		c.Saturated[i] = boolVar(i+1 < n && w.GasCells[i] < spec.GasCost)
	}

	return c, nil
}

func boolVar(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
