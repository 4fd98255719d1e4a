//go:build invariants_disabled

package diag

// Invariant checks an internal-consistency condition. In builds with the
// invariants_disabled tag it does nothing; callers are expected to skip the
// offending work themselves when the condition is false.
func Invariant(condition bool, format string, args ...any) {
	// Intentionally left blank
}
