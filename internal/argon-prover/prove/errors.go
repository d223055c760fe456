package prove

import "fmt"

// ErrorCode classifies prover errors.
type ErrorCode int

const (
	// ErrUnknown represents an unclassified error
	ErrUnknown ErrorCode = iota

	// ErrInvalidConfig represents an invalid configuration error
	ErrInvalidConfig

	// ErrInvalidInput represents a structurally invalid trace.
	// Caller error; never retried automatically.
	ErrInvalidInput

	// ErrCircuit represents a constraint-synthesis or compilation failure
	ErrCircuit

	// ErrProofGeneration represents a proving-backend failure.
	// Fatal for the chunk it occurred in; propagated, not retried.
	ErrProofGeneration

	// ErrVerification means the verification algorithm itself could not
	// run (bad format or mismatched configuration). A proof that simply
	// fails to verify is a boolean result, not this error.
	ErrVerification

	// ErrResource represents an exhausted row budget or worker pool
	ErrResource

	// ErrNotImplemented marks a declared operation whose backend is
	// not wired up yet, such as remote trace fetching
	ErrNotImplemented
)

// Error is the error type surfaced by proving and verification.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("argon-prover error [%d]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("argon-prover error [%d]: %s", e.Code, e.Message)
}

// Unwrap returns the cause of the error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error by code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// wrapErr attaches a code and message to a cause.
func wrapErr(code ErrorCode, msg string, cause error) *Error {
	return &Error{Code: code, Message: msg, Cause: cause}
}

// errf builds a causeless coded error.
func errf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}
