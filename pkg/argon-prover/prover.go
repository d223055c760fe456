package argonprover

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/argon-zk/argon-prover/internal/argon-prover/prove"
)

// Prover generates zero-knowledge proofs of execution traces.
type Prover struct {
	inner *prove.Prover
}

// NewProver creates a prover. A nil config selects DefaultConfig. The
// prover owns an artifact cache keyed by circuit size; reuse one
// Prover across calls sharing a k to amortize setup.
func NewProver(config *Config) (*Prover, error) {
	return NewProverWithLogger(config, zerolog.Nop())
}

// NewProverWithLogger creates a prover that reports progress through
// the given logger.
func NewProverWithLogger(config *Config, log zerolog.Logger) (*Prover, error) {
	inner, err := prove.NewProver(config, nil, log)
	if err != nil {
		return nil, err
	}
	return &Prover{inner: inner}, nil
}

// GenerateProof proves a validated trace, chunking it first when it
// exceeds the configured row budget.
func (p *Prover) GenerateProof(ctx context.Context, t *Trace) (*ProofOutput, error) {
	return p.inner.Generate(ctx, t)
}

// GenerateProofJSON parses a trace from its JSON wire form and proves
// it.
func (p *Prover) GenerateProofJSON(ctx context.Context, data []byte) (*ProofOutput, error) {
	t, err := ParseTrace(data)
	if err != nil {
		return nil, err
	}
	return p.inner.Generate(ctx, t)
}

// GenerateStorageProof proves a trace's recorded storage accesses
// against their field-native digest.
func (p *Prover) GenerateStorageProof(ctx context.Context, ops []StorageOp) (*ProofOutput, error) {
	return p.inner.GenerateStorage(ctx, ops)
}

// ProveTransaction fetches a transaction's trace from the configured
// RPC endpoint and proves it. Remote fetching is not implemented yet:
// the call fails with ErrNotImplemented when an RPC URL is configured
// and ErrInvalidConfig when not.
func (p *Prover) ProveTransaction(ctx context.Context, txHash string) (*ProofOutput, error) {
	return p.inner.ProveTransaction(ctx, txHash)
}

// ExportVerifyingKey serializes this prover's verifying key. Store it
// with the proof output and pass it to NewVerifierWithKey to verify in
// another process.
func (p *Prover) ExportVerifyingKey() ([]byte, error) {
	return p.inner.ExportVerifyingKey()
}

// Verifier returns a verifier sharing this prover's configuration and
// key material. Proofs from this prover verify only against a verifier
// holding the same artifacts.
func (p *Prover) Verifier() *Verifier {
	v, _ := prove.NewVerifier(p.inner.Config(), p.inner.Cache(), zerolog.Nop())
	return &Verifier{inner: v}
}

// Verifier checks proof outputs.
type Verifier struct {
	inner *prove.Verifier
}

// NewVerifier creates a standalone verifier. It derives fresh key
// material, so it only accepts proofs generated against the same
// artifact derivation; prefer Prover.Verifier when proving and
// verifying in one process.
func NewVerifier(config *Config) (*Verifier, error) {
	inner, err := prove.NewVerifier(config, nil, zerolog.Nop())
	if err != nil {
		return nil, err
	}
	return &Verifier{inner: inner}, nil
}

// NewVerifierWithKey creates a verifier from an exported verifying
// key, as produced by Prover.ExportVerifyingKey. This is the path for
// verifying a stored proof output outside the process that proved it.
func NewVerifierWithKey(config *Config, vkData []byte) (*Verifier, error) {
	inner, err := prove.NewVerifierWithKey(config, vkData, zerolog.Nop())
	if err != nil {
		return nil, err
	}
	return &Verifier{inner: inner}, nil
}

// VerifyProof checks a proof output against its declared public
// inputs. A false result means the proof did not verify; an error
// means the check could not run (format or configuration problem).
func (v *Verifier) VerifyProof(output *ProofOutput) (bool, error) {
	return v.inner.Verify(output)
}

// VerifyStorageProof checks a storage proof.
func (v *Verifier) VerifyStorageProof(output *ProofOutput) (bool, error) {
	return v.inner.VerifyStorage(output)
}
