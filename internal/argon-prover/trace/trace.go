package trace

import (
	"encoding/json"
	"fmt"

	"github.com/holiman/uint256"
)

// StackWidth is the number of stack slots tracked per execution step.
// Deeper stack entries are not carried into the constraint system.
const StackWidth = 3

// ByteValues is a byte slice that marshals as a JSON array of numbers
// instead of the base64 string encoding/json uses for []byte. Trace
// providers emit opcodes and bytecode as numeric arrays.
type ByteValues []byte

// MarshalJSON encodes the bytes as a JSON number array.
func (b ByteValues) MarshalJSON() ([]byte, error) {
	vals := make([]uint16, len(b))
	for i, v := range b {
		vals[i] = uint16(v)
	}
	return json.Marshal(vals)
}

// UnmarshalJSON decodes a JSON number array into bytes.
func (b *ByteValues) UnmarshalJSON(data []byte) error {
	var vals []uint64
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}
	out := make(ByteValues, len(vals))
	for i, v := range vals {
		if v > 0xff {
			return fmt.Errorf("byte value out of range at index %d: %d", i, v)
		}
		out[i] = byte(v)
	}
	*b = out
	return nil
}

// MemoryOp records a single memory access observed during execution.
// Auxiliary data; not required for proof soundness.
type MemoryOp struct {
	Offset  uint64       `json:"offset"`
	Value   *uint256.Int `json:"value"`
	IsWrite bool         `json:"is_write"`
}

// StorageOp records a single storage access observed during execution.
type StorageOp struct {
	Key     *uint256.Int `json:"key"`
	Value   *uint256.Int `json:"value"`
	IsWrite bool         `json:"is_write"`
}

// Trace is an in-memory execution trace: one opcode, stack snapshot,
// program counter, and gas reading per step. The parallel arrays must
// all have the same length. A Trace is treated as immutable once it
// has passed Validate.
type Trace struct {
	Opcodes     ByteValues  `json:"opcodes"`
	StackStates [][]uint64  `json:"stack_states"`
	PCs         []uint64    `json:"pcs"`
	GasValues   []uint64    `json:"gas_values"`
	MemoryOps   []MemoryOp  `json:"memory_ops,omitempty"`
	StorageOps  []StorageOp `json:"storage_ops,omitempty"`
	TxHash      string      `json:"tx_hash,omitempty"`
	BlockNumber uint64      `json:"block_number,omitempty"`
	Bytecode    ByteValues  `json:"bytecode,omitempty"`
}

// ExecutionStep is one trace position with its stack snapshot padded
// (or truncated) to StackWidth slots.
type ExecutionStep struct {
	Opcode byte
	Stack  [StackWidth]uint64
	PC     uint64
	Gas    uint64
}

// Len returns the number of execution steps in the trace.
func (t *Trace) Len() int {
	return len(t.Opcodes)
}

// Step returns the i-th execution step. The caller must ensure the
// trace has been validated and i is in range.
func (t *Trace) Step(i int) ExecutionStep {
	step := ExecutionStep{
		Opcode: t.Opcodes[i],
		PC:     t.PCs[i],
		Gas:    t.GasValues[i],
	}
	for j := 0; j < StackWidth && j < len(t.StackStates[i]); j++ {
		step.Stack[j] = t.StackStates[i][j]
	}
	return step
}

// Steps materializes every execution step in order.
func (t *Trace) Steps() []ExecutionStep {
	steps := make([]ExecutionStep, t.Len())
	for i := range steps {
		steps[i] = t.Step(i)
	}
	return steps
}

// GasUsed returns the gas consumed across the trace, measured as the
// drop from the first to the last gas reading, saturating at zero.
func (t *Trace) GasUsed() uint64 {
	if t.Len() == 0 {
		return 0
	}
	first := t.GasValues[0]
	last := t.GasValues[len(t.GasValues)-1]
	if last > first {
		return 0
	}
	return first - last
}
