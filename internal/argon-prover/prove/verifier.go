package prove

import (
	"bytes"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/rs/zerolog"

	"github.com/argon-zk/argon-prover/internal/argon-prover/circuit"
)

// Verifier checks proof outputs. Setup is randomized per artifact
// cache, so it must hold the proving run's key material: either the
// prover's cache (same process) or an exported verifying key loaded
// with NewVerifierWithKey (stored proofs).
type Verifier struct {
	cfg   *Config
	cache *Cache
	log   zerolog.Logger

	// explicit key material; overrides cache derivation when set
	vk groth16.VerifyingKey
	fp string
}

// NewVerifier creates a verifier from a validated configuration.
func NewVerifier(cfg *Config, cache *Cache, log zerolog.Logger) (*Verifier, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cache == nil {
		cache = NewCache()
	}
	return &Verifier{cfg: cfg.Clone(), cache: cache, log: log}, nil
}

// NewVerifierWithKey creates a verifier holding an explicit verifying
// key, as exported by Prover.ExportVerifyingKey. This is the path for
// verifying a stored proof output in a different process from the one
// that proved it.
func NewVerifierWithKey(cfg *Config, vkData []byte, log zerolog.Logger) (*Verifier, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	vk := groth16.NewVerifyingKey(ecc.BN254)
	if _, err := vk.ReadFrom(bytes.NewReader(vkData)); err != nil {
		return nil, wrapErr(ErrVerification, "failed to deserialize verifying key", err)
	}
	fp, err := fingerprint(vk)
	if err != nil {
		return nil, err
	}

	return &Verifier{cfg: cfg.Clone(), cache: NewCache(), log: log, vk: vk, fp: fp}, nil
}

// material returns the verifying key and fingerprint to check against:
// the explicit key when one was loaded, otherwise the cache's.
func (v *Verifier) material() (groth16.VerifyingKey, string, error) {
	if v.vk != nil {
		return v.vk, v.fp, nil
	}
	art, err := v.cache.Trace(v.cfg.K)
	if err != nil {
		return nil, "", err
	}
	return art.VK, art.Fingerprint, nil
}

// Verify checks a proof output against its declared public inputs.
// A proof that fails the pairing check is a normal false result;
// errors are reserved for format and configuration problems, a
// fingerprint mismatch being the usual one.
func (v *Verifier) Verify(out *ProofOutput) (bool, error) {
	vk, fp, err := v.material()
	if err != nil {
		return false, err
	}

	if fp != out.VKHash {
		return false, errf(ErrVerification,
			"verifying key fingerprint mismatch: derived %s for k=%d, proof carries %s",
			fp, v.cfg.K, out.VKHash)
	}

	if len(out.PublicInputs) != circuit.CommitmentWords {
		return false, errf(ErrVerification,
			"expected %d public inputs, got %d", circuit.CommitmentWords, len(out.PublicInputs))
	}

	assignment := &circuit.TraceCircuit{}
	for i, s := range out.PublicInputs {
		word, err := parseFieldString(s)
		if err != nil {
			return false, err
		}
		assignment.Commitment[i] = word
	}

	proof := groth16.NewProof(ecc.BN254)
	if _, err := proof.ReadFrom(bytes.NewReader(out.Proof)); err != nil {
		return false, wrapErr(ErrVerification, "failed to deserialize proof", err)
	}

	public, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return false, wrapErr(ErrVerification, "failed to build public witness", err)
	}

	if err := groth16.Verify(proof, vk, public); err != nil {
		v.log.Debug().Err(err).Msg("proof rejected")
		return false, nil
	}
	return true, nil
}

// parseFieldString parses a decimal public input.
func parseFieldString(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errf(ErrVerification, "malformed public input %q", s)
	}
	return v, nil
}
