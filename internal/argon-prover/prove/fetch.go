package prove

import (
	"context"

	"github.com/argon-zk/argon-prover/internal/argon-prover/trace"
)

// FetchTrace retrieves the execution trace of a transaction from the
// node named by the configured RPC URL. The transport is not wired up
// yet: with an RPC URL configured the call fails with ErrNotImplemented,
// without one it fails with ErrInvalidConfig. Callers with local traces
// should call Generate directly.
func (p *Prover) FetchTrace(ctx context.Context, txHash string) (*trace.Trace, error) {
	if err := ctx.Err(); err != nil {
		return nil, wrapErr(ErrUnknown, "trace fetch cancelled", err)
	}
	if txHash == "" {
		return nil, errf(ErrInvalidInput, "transaction hash is empty")
	}
	if p.cfg.RPCURL == "" {
		return nil, errf(ErrInvalidConfig, "no RPC URL configured for trace fetching")
	}
	return nil, errf(ErrNotImplemented,
		"remote trace fetching from %s is not implemented; supply the trace directly", p.cfg.RPCURL)
}

// ProveTransaction fetches a transaction's trace and proves it.
func (p *Prover) ProveTransaction(ctx context.Context, txHash string) (*ProofOutput, error) {
	tr, err := p.FetchTrace(ctx, txHash)
	if err != nil {
		return nil, err
	}
	return p.Generate(ctx, tr)
}
