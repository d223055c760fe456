package prove

import (
	"bytes"
	"context"
	"errors"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	gnarklogger "github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/argon-zk/argon-prover/internal/argon-prover/circuit"
	"github.com/argon-zk/argon-prover/internal/argon-prover/trace"
)

// SetBackendLogger routes the constraint-system backend's log output
// through the given logger. Global on the backend side; call it once
// per process.
func SetBackendLogger(l zerolog.Logger) {
	gnarklogger.Set(l)
}

// Prover generates trace proofs. Proving artifacts come from the
// injected cache, so provers and verifiers sharing a cache agree on
// key material.
type Prover struct {
	cfg   *Config
	cache *Cache
	log   zerolog.Logger
}

// NewProver creates a prover from a validated configuration.
func NewProver(cfg *Config, cache *Cache, log zerolog.Logger) (*Prover, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cache == nil {
		cache = NewCache()
	}
	return &Prover{cfg: cfg.Clone(), cache: cache, log: log}, nil
}

// Cache exposes the prover's artifact cache so a verifier can share it.
func (p *Prover) Cache() *Cache {
	return p.cache
}

// Config returns a copy of the prover's configuration.
func (p *Prover) Config() *Config {
	return p.cfg.Clone()
}

// ExportVerifyingKey serializes the verifying key for the configured k.
// Store it next to the proof output: NewVerifierWithKey loads it back
// so stored proofs can be checked outside the producing process.
func (p *Prover) ExportVerifyingKey() ([]byte, error) {
	art, err := p.cache.Trace(p.cfg.K)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := art.VK.WriteTo(&buf); err != nil {
		return nil, wrapErr(ErrProofGeneration, "failed to serialize verifying key", err)
	}
	return buf.Bytes(), nil
}

// Generate proves a trace. Traces longer than the row budget for the
// configured k are chunked and proven per chunk, concurrently when
// parallelism is enabled, then combined.
//
// The combined result of a chunked run is a metadata rollup carrying
// the first chunk's proof bytes: opcode counts and gas totals are
// summed, but the chunks are not cryptographically linked. Treating
// the rollup as a single proof of the whole trace requires recursive
// proof composition, which this prover does not implement.
func (p *Prover) Generate(ctx context.Context, tr *trace.Trace) (*ProofOutput, error) {
	if err := tr.Validate(); err != nil {
		return nil, wrapErr(ErrInvalidInput, "trace validation failed", err)
	}

	maxSteps := MaxSteps(p.cfg.K)
	if tr.Len() <= maxSteps {
		return p.proveChunk(ctx, tr)
	}

	chunks := trace.Chunk(tr, DefaultChunkSize(p.cfg.K))
	p.log.Info().
		Int("steps", tr.Len()).
		Int("chunks", len(chunks)).
		Uint32("k", p.cfg.K).
		Int("log2_rows", Log2Rows(p.cfg.K)).
		Msg("trace exceeds row budget, proving in chunks")

	outputs := make([]*ProofOutput, len(chunks))
	if p.cfg.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.cfg.Workers())
		for i, chunk := range chunks {
			i, chunk := i, chunk
			g.Go(func() error {
				out, err := p.proveChunk(gctx, chunk)
				if err != nil {
					return err
				}
				outputs[i] = out
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, chunk := range chunks {
			out, err := p.proveChunk(ctx, chunk)
			if err != nil {
				return nil, err
			}
			outputs[i] = out
		}
	}

	return combineOutputs(outputs), nil
}

// proveChunk runs the full pipeline for one trace that fits the row
// budget: witness, assignment, artifacts, proof, packaging.
func (p *Prover) proveChunk(ctx context.Context, tr *trace.Trace) (*ProofOutput, error) {
	select {
	case <-ctx.Done():
		return nil, wrapErr(ErrProofGeneration, "proving aborted", ctx.Err())
	default:
	}

	w, err := circuit.BuildWitness(tr)
	if err != nil {
		return nil, wrapErr(ErrInvalidInput, "witness construction failed", err)
	}

	art, err := p.cache.Trace(p.cfg.K)
	if err != nil {
		return nil, err
	}

	assignment, err := circuit.NewAssignment(tr, w, art.Rows)
	if err != nil {
		if errors.Is(err, circuit.ErrRowBudget) {
			return nil, wrapErr(ErrResource, "trace does not fit circuit", err)
		}
		return nil, wrapErr(ErrCircuit, "circuit assignment failed", err)
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

	var words [circuit.CommitmentWords]uint64
	copy(words[:], w.PublicInputs)

	p.log.Debug().
		Int("steps", tr.Len()).
		Int("proof_bytes", buf.Len()).
		Msg("chunk proven")

	return &ProofOutput{
		Proof:        buf.Bytes(),
		PublicInputs: circuit.CommitmentStrings(words),
		Metadata: Metadata{
			OpcodeCount: tr.Len(),
			GasUsed:     tr.GasUsed(),
			TxHash:      tr.TxHash,
			BlockNumber: tr.BlockNumber,
		},
		VKHash: art.Fingerprint,
	}, nil
}

// combineOutputs rolls chunk results into one report: summed metadata,
// first chunk's proof bytes and fingerprint.
func combineOutputs(outputs []*ProofOutput) *ProofOutput {
	combined := &ProofOutput{
		Proof:        outputs[0].Proof,
		PublicInputs: outputs[0].PublicInputs,
		Metadata:     outputs[0].Metadata,
		VKHash:       outputs[0].VKHash,
	}
	for _, out := range outputs[1:] {
		combined.Metadata.OpcodeCount += out.Metadata.OpcodeCount
		combined.Metadata.GasUsed += out.Metadata.GasUsed
	}
	return combined
}
