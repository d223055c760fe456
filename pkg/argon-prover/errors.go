package argonprover

import "github.com/argon-zk/argon-prover/internal/argon-prover/prove"

// ErrorCode classifies prover errors
type ErrorCode = prove.ErrorCode

const (
	// ErrUnknown represents an unclassified error
	ErrUnknown = prove.ErrUnknown

	// ErrInvalidConfig represents an invalid configuration error
	ErrInvalidConfig = prove.ErrInvalidConfig

	// ErrInvalidInput represents a structurally invalid trace
	ErrInvalidInput = prove.ErrInvalidInput

	// ErrCircuit represents a constraint-synthesis failure
	ErrCircuit = prove.ErrCircuit

	// ErrProofGeneration represents a proving-backend failure
	ErrProofGeneration = prove.ErrProofGeneration

	// ErrVerification represents a verification run that could not
	// complete (a proof that simply fails to verify is a boolean
	// result, not an error)
	ErrVerification = prove.ErrVerification

	// ErrResource represents an exhausted row budget or worker pool
	ErrResource = prove.ErrResource

	// ErrNotImplemented marks a declared operation whose backend is
	// not wired up yet
	ErrNotImplemented = prove.ErrNotImplemented
)

// ProverError is the error type surfaced by this package. Match on it
// with errors.Is against a target carrying the relevant code:
//
//	if errors.Is(err, &argonprover.ProverError{Code: argonprover.ErrInvalidInput}) {
//		// caller error
//	}
type ProverError = prove.Error
