// Package errors defines the error taxonomy shared by the typecheck packages.
// Validation failures are ordinary error values produced by validators; the
// sentinels and types here describe the engine's own failure modes, which are
// distinct from anything a validator reports.
package errors

import (
	"errors"
	"fmt"
)

// ErrPanicRecovery wraps a panic recovered from a validator invocation.
var ErrPanicRecovery = errors.New("recovered from panic")

// InvariantError is the structured failure raised by the hard-failure sink
// when an internal-consistency condition does not hold. It is deliberately a
// separate type from validation failures so callers that recover it can tell
// a broken specification apart from a value that merely failed validation.
type InvariantError struct {
	Message string
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return "invariant violation: " + e.Message
}

// Invariantf builds an InvariantError from a format string and arguments.
func Invariantf(format string, args ...any) *InvariantError {
	return &InvariantError{Message: fmt.Sprintf(format, args...)}
}

// IsInvariant reports whether err is (or wraps) an InvariantError.
func IsInvariant(err error) bool {
	var ie *InvariantError

	return errors.As(err, &ie)
}
