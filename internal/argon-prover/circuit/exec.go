package circuit

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ExecuteOpcode computes the witness value an instruction produces from
// the two tracked stack operands, over the proving field. Arithmetic
// opcodes are exact field operations; bitwise and comparison opcodes
// are deliberately approximated (AND as a product, OR/XOR as a sum,
// LT/GT as zero) since only ADD, SUB, and MUL are bound by gates.
// Every other opcode passes the top operand through unchanged.
func ExecuteOpcode(op OpCode, top, second uint64) *big.Int {
	q := fr.Modulus()
	a := new(big.Int).SetUint64(top)
	b := new(big.Int).SetUint64(second)

	switch op {
	case ADD:
		return new(big.Int).Mod(new(big.Int).Add(a, b), q)
	case SUB:
		return new(big.Int).Mod(new(big.Int).Sub(a, b), q)
	case MUL:
		return new(big.Int).Mod(new(big.Int).Mul(a, b), q)
	case DIV:
		if b.Sign() == 0 {
			return new(big.Int)
		}
		inv := new(big.Int).ModInverse(b, q)
		return new(big.Int).Mod(new(big.Int).Mul(a, inv), q)
	case EQ:
		if a.Cmp(b) == 0 {
			return big.NewInt(1)
		}
		return new(big.Int)
	case LT, GT:
		return new(big.Int)
	case AND:
		return new(big.Int).Mod(new(big.Int).Mul(a, b), q)
	case OR, XOR:
		return new(big.Int).Mod(new(big.Int).Add(a, b), q)
	case NOT:
		return new(big.Int).Mod(new(big.Int).Neg(a), q)
	default:
		return a
	}
}
