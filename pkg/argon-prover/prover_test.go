package argonprover

import (
	"context"
	"errors"
	"testing"

	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argon-zk/argon-prover/internal/argon-prover/prove"
)

func TestMain(m *testing.M) {
	prove.SetBackendLogger(zerolog.Nop())
	m.Run()
}

func testProver(t *testing.T) *Prover {
	t.Helper()
	p, err := NewProver(DefaultConfig().WithK(prove.MinK))
	require.NoError(t, err)
	return p
}

func TestGenerateAndVerifyProof(t *testing.T) {
	p := testProver(t)

	out, err := p.GenerateProof(context.Background(), MockAddTrace())
	require.NoError(t, err)
	assert.Equal(t, 3, out.Metadata.OpcodeCount)
	assert.Equal(t, uint64(6), out.Metadata.GasUsed)

	ok, err := p.Verifier().VerifyProof(out)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGenerateProofJSON(t *testing.T) {
	p := testProver(t)

	raw := `{
		"opcodes": [96, 96, 2],
		"stack_states": [[2,0,0],[3,2,0],[6,0,0]],
		"pcs": [0, 1, 2],
		"gas_values": [1000, 997, 994]
	}`
	out, err := p.GenerateProofJSON(context.Background(), []byte(raw))
	require.NoError(t, err)

	// Output round-trips through its wire form and still verifies.
	data, err := out.Encode()
	require.NoError(t, err)
	back, err := DecodeProofOutput(data)
	require.NoError(t, err)

	ok, err := p.Verifier().VerifyProof(back)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGenerateProofJSONRejectsMalformed(t *testing.T) {
	p := testProver(t)
	_, err := p.GenerateProofJSON(context.Background(), []byte(`not json`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, &ProverError{Code: ErrInvalidInput}))
}

func TestGenerateProofRejectsEmptyTrace(t *testing.T) {
	p := testProver(t)
	_, err := p.GenerateProof(context.Background(), &Trace{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, &ProverError{Code: ErrInvalidInput}))
}

func TestStandaloneVerifierRejectsFingerprint(t *testing.T) {
	p := testProver(t)
	out, err := p.GenerateProof(context.Background(), MockAddTrace())
	require.NoError(t, err)

	v, err := NewVerifier(DefaultConfig().WithK(prove.MinK))
	require.NoError(t, err)

	_, err = v.VerifyProof(out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, &ProverError{Code: ErrVerification}))
}

func TestVerifierWithExportedKey(t *testing.T) {
	p := testProver(t)
	out, err := p.GenerateProof(context.Background(), MockAddTrace())
	require.NoError(t, err)

	vkData, err := p.ExportVerifyingKey()
	require.NoError(t, err)

	// A verifier built from the exported key stands in for a separate
	// process: no shared cache, only the stored proof and key bytes.
	v, err := NewVerifierWithKey(DefaultConfig().WithK(prove.MinK), vkData)
	require.NoError(t, err)

	ok, err := v.VerifyProof(out)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProveTransactionNotImplemented(t *testing.T) {
	p, err := NewProver(DefaultConfig().WithK(prove.MinK).WithRPCURL("http://localhost:8545"))
	require.NoError(t, err)

	_, err = p.ProveTransaction(context.Background(), "0xabc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, &ProverError{Code: ErrNotImplemented}))
}

func TestStorageProof(t *testing.T) {
	p := testProver(t)

	ops := []StorageOp{
		{Key: uint256.NewInt(1), Value: uint256.NewInt(42), IsWrite: true},
	}
	out, err := p.GenerateStorageProof(context.Background(), ops)
	require.NoError(t, err)

	ok, err := p.Verifier().VerifyStorageProof(out)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSuggestKCoversTrace(t *testing.T) {
	k := SuggestK(MockAddTrace().Len())
	assert.Equal(t, prove.MinK, k)
	assert.GreaterOrEqual(t, prove.MaxSteps(k), 3)
}
