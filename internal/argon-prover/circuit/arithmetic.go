package circuit

import "github.com/consensys/gnark/frontend"

// ArithmeticChip is the reusable add/sub/mul gadget shared by the
// per-step gates. Each method returns the gate residual for a claimed
// result: the value that must be constrained to zero (under the row's
// selector) for the triple (a, b, result) to satisfy the operation.
// Subtraction reuses the addition gate with the second operand negated.
type ArithmeticChip struct{}

// AddGate returns a + b - result.
func (ArithmeticChip) AddGate(api frontend.API, a, b, result frontend.Variable) frontend.Variable {
	return api.Sub(api.Add(a, b), result)
}

// SubGate returns a - b - result.
func (ArithmeticChip) SubGate(api frontend.API, a, b, result frontend.Variable) frontend.Variable {
	return api.Sub(api.Add(a, api.Neg(b)), result)
}

// MulGate returns a * b - result.
func (ArithmeticChip) MulGate(api frontend.API, a, b, result frontend.Variable) frontend.Variable {
	return api.Sub(api.Mul(a, b), result)
}
