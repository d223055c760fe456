package prove

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchTraceWithoutRPCURL(t *testing.T) {
	p := newTestProver(t, testConfig())

	_, err := p.FetchTrace(context.Background(), "0xabc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, &Error{Code: ErrInvalidConfig}))
}

func TestFetchTraceNotImplemented(t *testing.T) {
	p := newTestProver(t, testConfig().WithRPCURL("http://localhost:8545"))

	_, err := p.FetchTrace(context.Background(), "0xabc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, &Error{Code: ErrNotImplemented}))
}

func TestFetchTraceEmptyHash(t *testing.T) {
	p := newTestProver(t, testConfig().WithRPCURL("http://localhost:8545"))

	_, err := p.FetchTrace(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, &Error{Code: ErrInvalidInput}))
}

func TestProveTransactionPropagatesFetchError(t *testing.T) {
	p := newTestProver(t, testConfig().WithRPCURL("http://localhost:8545"))

	_, err := p.ProveTransaction(context.Background(), "0xabc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, &Error{Code: ErrNotImplemented}))
}
