package prove

import (
	"context"
	"errors"
	"testing"

	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argon-zk/argon-prover/internal/argon-prover/trace"
)

func sampleOps() []trace.StorageOp {
	return []trace.StorageOp{
		{Key: uint256.NewInt(7), Value: uint256.NewInt(70), IsWrite: true},
		{Key: uint256.NewInt(8), Value: uint256.NewInt(80), IsWrite: false},
	}
}

func TestVerifyRejectsForeignCache(t *testing.T) {
	p := newTestProver(t, testConfig())
	out, err := p.Generate(context.Background(), scenarioTrace())
	require.NoError(t, err)

	// A verifier with its own cache derives a different key pair; the
	// fingerprint check must flag that as a configuration error, not
	// an invalid proof.
	v, err := NewVerifier(testConfig(), nil, zerolog.Nop())
	require.NoError(t, err)

	_, err = v.Verify(out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, &Error{Code: ErrVerification}))
}

func TestVerifyWithExportedKey(t *testing.T) {
	p := newTestProver(t, testConfig())
	out, err := p.Generate(context.Background(), scenarioTrace())
	require.NoError(t, err)

	vkData, err := p.ExportVerifyingKey()
	require.NoError(t, err)
	require.NotEmpty(t, vkData)

	// Round-trip the output through its wire form and verify with a
	// verifier that never saw the prover's cache, as a separate
	// process loading a stored proof would.
	encoded, err := out.Encode()
	require.NoError(t, err)
	stored, err := DecodeOutput(encoded)
	require.NoError(t, err)

	v, err := NewVerifierWithKey(testConfig(), vkData, zerolog.Nop())
	require.NoError(t, err)

	ok, err := v.Verify(stored)
	require.NoError(t, err)
	assert.True(t, ok)

	t.Run("GarbageKeyBytes", func(t *testing.T) {
		_, err := NewVerifierWithKey(testConfig(), []byte{0xde, 0xad}, zerolog.Nop())
		require.Error(t, err)
		assert.True(t, errors.Is(err, &Error{Code: ErrVerification}))
	})

	t.Run("ForeignKey", func(t *testing.T) {
		// A key from an independent setup carries a different
		// fingerprint, so the proof must be flagged before the pairing
		// check runs.
		other := newTestProver(t, testConfig())
		otherVK, err := other.ExportVerifyingKey()
		require.NoError(t, err)

		fv, err := NewVerifierWithKey(testConfig(), otherVK, zerolog.Nop())
		require.NoError(t, err)

		_, err = fv.Verify(stored)
		require.Error(t, err)
		assert.True(t, errors.Is(err, &Error{Code: ErrVerification}))
	})
}

func TestVerifyRejectsWrongPublicInputs(t *testing.T) {
	p := newTestProver(t, testConfig())
	out, err := p.Generate(context.Background(), scenarioTrace())
	require.NoError(t, err)

	v, err := NewVerifier(p.Config(), p.Cache(), zerolog.Nop())
	require.NoError(t, err)

	// Swap in the commitment of a different trace: same proof bytes,
	// wrong binding. That is a normal negative result.
	other, err := p.Generate(context.Background(), longTrace(5))
	require.NoError(t, err)

	tampered := *out
	tampered.PublicInputs = other.PublicInputs
	ok, err := v.Verify(&tampered)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyMalformedOutput(t *testing.T) {
	p := newTestProver(t, testConfig())
	out, err := p.Generate(context.Background(), scenarioTrace())
	require.NoError(t, err)

	v, err := NewVerifier(p.Config(), p.Cache(), zerolog.Nop())
	require.NoError(t, err)

	t.Run("WrongInputCount", func(t *testing.T) {
		bad := *out
		bad.PublicInputs = bad.PublicInputs[:2]
		_, err := v.Verify(&bad)
		require.Error(t, err)
		assert.True(t, errors.Is(err, &Error{Code: ErrVerification}))
	})

	t.Run("NonNumericInput", func(t *testing.T) {
		bad := *out
		bad.PublicInputs = []string{"x", "0", "0", "0"}
		_, err := v.Verify(&bad)
		require.Error(t, err)
	})

	t.Run("GarbageProofBytes", func(t *testing.T) {
		bad := *out
		bad.Proof = []byte{0x00, 0x01, 0x02}
		_, err := v.Verify(&bad)
		require.Error(t, err)
	})
}

func TestStorageProofRoundTrip(t *testing.T) {
	p := newTestProver(t, testConfig())

	out, err := p.GenerateStorage(context.Background(), sampleOps())
	require.NoError(t, err)
	require.Len(t, out.PublicInputs, 1)
	assert.Equal(t, 2, out.Metadata.OpcodeCount)

	v, err := NewVerifier(p.Config(), p.Cache(), zerolog.Nop())
	require.NoError(t, err)

	ok, err := v.VerifyStorage(out)
	require.NoError(t, err)
	assert.True(t, ok)

	t.Run("TamperedDigest", func(t *testing.T) {
		bad := *out
		bad.PublicInputs = []string{"12345"}
		ok, err := v.VerifyStorage(&bad)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestGenerateStorageRejectsEmpty(t *testing.T) {
	p := newTestProver(t, testConfig())
	_, err := p.GenerateStorage(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, &Error{Code: ErrInvalidInput}))
}
