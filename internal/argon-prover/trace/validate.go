package trace

import "fmt"

// Validate checks the structural invariants of the trace: at least one
// step, and every parallel array the same length as the opcode array.
// It is a pure predicate with no side effects, and must pass before the
// trace is flattened into a witness or chunked.
func (t *Trace) Validate() error {
	if len(t.Opcodes) == 0 {
		return fmt.Errorf("trace has no opcodes")
	}
	if len(t.StackStates) != len(t.Opcodes) {
		return fmt.Errorf("stack state count (%d) does not match opcode count (%d)",
			len(t.StackStates), len(t.Opcodes))
	}
	if len(t.PCs) != len(t.Opcodes) {
		return fmt.Errorf("pc count (%d) does not match opcode count (%d)",
			len(t.PCs), len(t.Opcodes))
	}
	if len(t.GasValues) != len(t.Opcodes) {
		return fmt.Errorf("gas value count (%d) does not match opcode count (%d)",
			len(t.GasValues), len(t.Opcodes))
	}
	return nil
}
