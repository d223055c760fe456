package circuit

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	frmimc "github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"

	"github.com/argon-zk/argon-prover/internal/argon-prover/trace"
)

// DefaultStorageSlots is the storage circuit shape used when the
// caller does not pick a slot count.
const DefaultStorageSlots = 16

// StorageCircuit proves knowledge of a sequence of storage accesses
// whose MiMC digest matches a public value. Slots are padded with
// zeroes up to the fixed shape. Unlike the trace commitment, which is
// computed outside the constraint system, this digest is re-derived
// in-circuit with a field-native hash.
type StorageCircuit struct {
	Digest frontend.Variable `gnark:",public"`

	Keys    []frontend.Variable
	Values  []frontend.Variable
	IsWrite []frontend.Variable
}

// NewStorageCircuit allocates the storage circuit shape.
func NewStorageCircuit(slots int) *StorageCircuit {
	return &StorageCircuit{
		Keys:    make([]frontend.Variable, slots),
		Values:  make([]frontend.Variable, slots),
		IsWrite: make([]frontend.Variable, slots),
	}
}

// Define declares the constraint system.
func (c *StorageCircuit) Define(api frontend.API) error {
	if len(c.Values) != len(c.Keys) || len(c.IsWrite) != len(c.Keys) {
		return fmt.Errorf("slot column length mismatch")
	}

	h, err := mimc.NewMiMC(api)
	if err != nil {
		return err
	}
	for i := range c.Keys {
		api.AssertIsBoolean(c.IsWrite[i])
		h.Write(c.Keys[i], c.Values[i], c.IsWrite[i])
	}
	api.AssertIsEqual(h.Sum(), c.Digest)
	return nil
}

// StorageDigest computes, outside the constraint system, the MiMC
// digest the storage circuit re-derives. Keys and values wider than
// the field are reduced into it.
func StorageDigest(ops []trace.StorageOp, slots int) (*big.Int, error) {
	if len(ops) > slots {
		return nil, fmt.Errorf("%d storage ops exceed %d slots", len(ops), slots)
	}

	h := frmimc.NewMiMC()
	writeElem := func(v *big.Int) {
		var e fr.Element
		e.SetBigInt(v)
		b := e.Bytes()
		h.Write(b[:])
	}

	zero := new(big.Int)
	for i := 0; i < slots; i++ {
		key, value, flag := zero, zero, zero
		if i < len(ops) {
			key = ops[i].Key.ToBig()
			value = ops[i].Value.ToBig()
			if ops[i].IsWrite {
				flag = big.NewInt(1)
			}
		}
		writeElem(key)
		writeElem(value)
		writeElem(flag)
	}

	return new(big.Int).SetBytes(h.Sum(nil)), nil
}

// NewStorageAssignment fills a storage circuit assignment from the
// recorded ops, padding unused slots with zeroes.
func NewStorageAssignment(ops []trace.StorageOp, slots int) (*StorageCircuit, error) {
	digest, err := StorageDigest(ops, slots)
	if err != nil {
		return nil, err
	}

	c := NewStorageCircuit(slots)
	c.Digest = digest
	for i := 0; i < slots; i++ {
		if i < len(ops) {
			c.Keys[i] = rerangeField(ops[i].Key.ToBig())
			c.Values[i] = rerangeField(ops[i].Value.ToBig())
			c.IsWrite[i] = boolVar(ops[i].IsWrite)
		} else {
			c.Keys[i] = 0
			c.Values[i] = 0
			c.IsWrite[i] = 0
		}
	}
	return c, nil
}

// rerangeField reduces a 256-bit value into the scalar field so the
// in-circuit cells match what StorageDigest hashed.
func rerangeField(v *big.Int) *big.Int {
	return new(big.Int).Mod(v, fr.Modulus())
}
