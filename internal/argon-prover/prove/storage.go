package prove

import (
	"bytes"
	"context"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"

	"github.com/argon-zk/argon-prover/internal/argon-prover/circuit"
	"github.com/argon-zk/argon-prover/internal/argon-prover/trace"
)

// GenerateStorage proves a trace's recorded storage accesses against
// their field-native digest. The digest is the single public input.
func (p *Prover) GenerateStorage(ctx context.Context, ops []trace.StorageOp) (*ProofOutput, error) {
	if len(ops) == 0 {
		return nil, errf(ErrInvalidInput, "no storage ops to prove")
	}

	select {
	case <-ctx.Done():
		return nil, wrapErr(ErrProofGeneration, "proving aborted", ctx.Err())
	default:
	}

	slots := circuit.DefaultStorageSlots
	if len(ops) > slots {
		return nil, errf(ErrResource, "%d storage ops exceed %d slots", len(ops), slots)
	}

	art, err := p.cache.Storage(slots)
	if err != nil {
		return nil, err
	}

	assignment, err := circuit.NewStorageAssignment(ops, slots)
	if err != nil {
		return nil, wrapErr(ErrCircuit, "storage assignment failed", err)
	}

	full, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return nil, wrapErr(ErrCircuit, "witness synthesis failed", err)
	}

	proof, err := groth16.Prove(art.CCS, art.PK, full)
	if err != nil {
		return nil, wrapErr(ErrProofGeneration, "proving failed", err)
	}

	var buf bytes.Buffer
	if _, err := proof.WriteTo(&buf); err != nil {
		return nil, wrapErr(ErrProofGeneration, "proof serialization failed", err)
	}

	digest, err := circuit.StorageDigest(ops, slots)
	if err != nil {
		return nil, wrapErr(ErrCircuit, "storage digest failed", err)
	}

	return &ProofOutput{
		Proof:        buf.Bytes(),
		PublicInputs: []string{digest.String()},
		Metadata:     Metadata{OpcodeCount: len(ops)},
		VKHash:       art.Fingerprint,
	}, nil
}

// VerifyStorage checks a storage proof produced by GenerateStorage.
func (v *Verifier) VerifyStorage(out *ProofOutput) (bool, error) {
	art, err := v.cache.Storage(circuit.DefaultStorageSlots)
	if err != nil {
		return false, err
	}
	if art.Fingerprint != out.VKHash {
		return false, errf(ErrVerification,
			"verifying key fingerprint mismatch: proof carries %s", out.VKHash)
	}
	if len(out.PublicInputs) != 1 {
		return false, errf(ErrVerification, "expected 1 public input, got %d", len(out.PublicInputs))
	}

	digest, err := parseFieldString(out.PublicInputs[0])
	if err != nil {
		return false, err
	}

	proof := groth16.NewProof(ecc.BN254)
	if _, err := proof.ReadFrom(bytes.NewReader(out.Proof)); err != nil {
		return false, wrapErr(ErrVerification, "failed to deserialize proof", err)
	}

	assignment := &circuit.StorageCircuit{Digest: digest}
	public, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return false, wrapErr(ErrVerification, "failed to build public witness", err)
	}

	if err := groth16.Verify(proof, art.VK, public); err != nil {
		return false, nil
	}
	return true, nil
}
