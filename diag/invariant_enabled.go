//go:build !invariants_disabled

package diag

import "github.com/amp-labs/typecheck/errors"

// Invariant checks an internal-consistency condition. If the condition is
// false, it panics with a structured *errors.InvariantError built from the
// format string and arguments, halting the current operation. Build with the
// invariants_disabled tag to compile this into a no-op.
func Invariant(condition bool, format string, args ...any) {
	if condition {
		return
	}

	panic(errors.Invariantf(format, args...))
}
