package argonprover

import (
	"github.com/argon-zk/argon-prover/internal/argon-prover/circuit"
	"github.com/argon-zk/argon-prover/internal/argon-prover/prove"
	"github.com/argon-zk/argon-prover/internal/argon-prover/trace"
)

// Trace is an in-memory execution trace: parallel arrays of opcodes,
// stack snapshots, program counters, and gas readings.
type Trace = trace.Trace

// ExecutionStep is one trace position.
type ExecutionStep = trace.ExecutionStep

// MemoryOp records a memory access observed during execution.
type MemoryOp = trace.MemoryOp

// StorageOp records a storage access observed during execution.
type StorageOp = trace.StorageOp

// CircuitWitness is the flattened per-cell form of a trace.
type CircuitWitness = circuit.CircuitWitness

// OpCode is a single-byte virtual machine instruction.
type OpCode = circuit.OpCode

// Config carries prover and verifier settings.
type Config = prove.Config

// ProofOutput is the serialized result of a proving run.
type ProofOutput = prove.ProofOutput

// Metadata summarizes the trace a proof covers.
type Metadata = prove.Metadata

// StackWidth is the number of stack slots tracked per step.
const StackWidth = trace.StackWidth

// CommitmentWords is the public-input word count of the trace
// commitment.
const CommitmentWords = circuit.CommitmentWords

// DefaultConfig returns the default prover configuration.
func DefaultConfig() *Config {
	return prove.DefaultConfig()
}

// SuggestK returns the smallest k whose row budget covers a trace of
// the given length.
func SuggestK(steps int) uint32 {
	return prove.SuggestK(steps)
}

// ParseTrace decodes a trace from its JSON wire form and validates it.
func ParseTrace(data []byte) (*Trace, error) {
	t, err := trace.Parse(data)
	if err != nil {
		return nil, &ProverError{Code: ErrInvalidInput, Message: "invalid trace", Cause: err}
	}
	return t, nil
}

// DecodeProofOutput parses a proof output from its JSON wire form.
func DecodeProofOutput(data []byte) (*ProofOutput, error) {
	out, err := prove.DecodeOutput(data)
	if err != nil {
		return nil, &ProverError{Code: ErrInvalidInput, Message: "invalid proof output", Cause: err}
	}
	return out, nil
}

// MockAddTrace returns a small valid trace ending in an ADD.
func MockAddTrace() *Trace {
	return trace.MockAdd()
}

// MockMulTrace returns a small valid trace ending in a MUL.
func MockMulTrace() *Trace {
	return trace.MockMul()
}
