package circuit

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/test"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argon-zk/argon-prover/internal/argon-prover/trace"
)

func sampleStorageOps() []trace.StorageOp {
	return []trace.StorageOp{
		{Key: uint256.NewInt(1), Value: uint256.NewInt(100), IsWrite: true},
		{Key: uint256.NewInt(2), Value: uint256.NewInt(200), IsWrite: false},
	}
}

func TestStorageDigest(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		a, err := StorageDigest(sampleStorageOps(), 4)
		require.NoError(t, err)
		b, err := StorageDigest(sampleStorageOps(), 4)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("SensitiveToValues", func(t *testing.T) {
		a, err := StorageDigest(sampleStorageOps(), 4)
		require.NoError(t, err)

		ops := sampleStorageOps()
		ops[1].Value = uint256.NewInt(201)
		b, err := StorageDigest(ops, 4)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("TooManyOps", func(t *testing.T) {
		_, err := StorageDigest(sampleStorageOps(), 1)
		require.Error(t, err)
	})
}

func TestStorageCircuitProves(t *testing.T) {
	gassert := test.NewAssert(t)

	assignment, err := NewStorageAssignment(sampleStorageOps(), 4)
	require.NoError(t, err)

	gassert.ProverSucceeded(
		NewStorageCircuit(4),
		assignment,
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}

func TestStorageCircuitRejectsWrongDigest(t *testing.T) {
	gassert := test.NewAssert(t)

	assignment, err := NewStorageAssignment(sampleStorageOps(), 4)
	require.NoError(t, err)
	assignment.Digest = uint64(42)

	gassert.ProverFailed(
		NewStorageCircuit(4),
		assignment,
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}

func TestStorageCircuitWideValues(t *testing.T) {
	gassert := test.NewAssert(t)

	wide := new(uint256.Int).Lsh(uint256.NewInt(1), 255)
	ops := []trace.StorageOp{{Key: wide, Value: wide, IsWrite: true}}

	assignment, err := NewStorageAssignment(ops, 2)
	require.NoError(t, err)

	gassert.ProverSucceeded(
		NewStorageCircuit(2),
		assignment,
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}
