// Package check implements the runtime value-validation engine. Given a set
// of named type specifications (validator functions) and a bag of runtime
// values, it invokes each applicable validator, folds panicked and returned
// failures into one representation, deduplicates repeated failures across the
// engine's lifetime, and reports through a diagnostic sink. Validation is
// advisory instrumentation: nothing here ever surfaces a validation failure
// as an error to the caller.
//
// The one exception to the never-fail rule is a broken specification itself.
// A spec entry that is not a validator function is an authoring defect, and
// is reported through diag.Invariant, which panics unless compiled out with
// the invariants_disabled build tag.
package check

import (
	"context"
	"time"

	"golang.org/x/text/cases"

	"github.com/amp-labs/typecheck/callsite"
	"github.com/amp-labs/typecheck/dedup"
	"github.com/amp-labs/typecheck/diag"
	"github.com/amp-labs/typecheck/location"
	"github.com/amp-labs/typecheck/try"
	"github.com/amp-labs/typecheck/utils"
)

// Values is the bag of runtime values to check, keyed by field name.
// A nil Values is treated as empty.
type Values map[string]any

// Validator checks one field of a value bag. It returns nil when the value is
// acceptable, an error describing the failure, or (when the specification was
// authored incorrectly) some other value, which the engine flags as misuse.
// Validators should read values[field] themselves: a missing key is a
// meaningful input (e.g. for required-field validators), not an error of the
// engine's.
type Validator func(values Values, field, subject string, loc location.Kind) any

// Specs maps field names to their validators. Entries are declared as `any`
// so the engine can detect and report entries that are not validator
// functions at all, which is the most common way a specification goes wrong.
// Accepted entry types are Validator, its unnamed equivalent, and the
// error-returning variant func(Values, string, string, location.Kind) error.
type Specs map[string]any

// anonymousSubject is the display name used when no subject name is supplied.
const anonymousSubject = "<anonymous>"

// Engine runs validation passes. Engines are immutable after New except for
// the deduplication store, and are safe for concurrent use.
type Engine struct {
	store              *dedup.Store
	names              location.Resolver
	traces             callsite.Provider
	sink               diag.Sink
	diagnosticsEnabled bool
}

// Store exposes the engine's deduplication store, mainly so callers can
// inspect suppression counts.
func (e *Engine) Store() *dedup.Store {
	return e.store
}

// CheckSpecs runs one validation pass: every validator in specs is invoked
// against values, failures are reported through the sink (deduplicated per
// distinct message for the lifetime of the engine's store), and keys in
// values that differ from a declared field only by letter case are flagged
// once per field as likely typos.
//
// The pass is synchronous and never returns anything to the caller; every
// diagnostic category except the spec-defect invariant terminates as a sink
// emission. ref is optional
// call-site context used to suffix failure reports with a trace, resolved
// only when the engine was built with diagnostics enabled.
func (e *Engine) CheckSpecs(
	ctx context.Context,
	specs Specs,
	values Values,
	loc location.Kind,
	subject string,
	ref callsite.Ref,
) {
	if len(specs) == 0 {
		return
	}

	start := time.Now()

	if subject == "" {
		subject = anonymousSubject
	}

	locName := e.names.Name(loc)

	// Case folding is done once per pass; a Caser is not safe for
	// concurrent use, so each pass gets its own.
	fold := cases.Fold()
	unknown := unknownKeys(specs, values, fold)

	// Declared fields are independent; iteration order carries no meaning.
	for field, entry := range specs {
		e.checkField(ctx, fieldCheck{
			entry:    entry,
			field:    field,
			folded:   fold.String(field),
			values:   values,
			loc:      loc,
			locName:  locName,
			subject:  subject,
			ref:      ref,
			mistyped: unknown,
		})
	}

	passTime.WithLabelValues(locName).Observe(float64(time.Since(start).Milliseconds()))
}

// fieldCheck carries the per-field inputs through the pass.
type fieldCheck struct {
	entry    any
	field    string
	folded   string
	values   Values
	loc      location.Kind
	locName  string
	subject  string
	ref      callsite.Ref
	mistyped map[string]string
}

func (e *Engine) checkField(ctx context.Context, fc fieldCheck) {
	fn, ok := asValidator(fc.entry)
	if !ok {
		fieldChecks.WithLabelValues(outcomeInvalidSpec).Inc()

		// A function of the wrong signature is usually a validator creator
		// that was stored without being invoked; call that out.
		hint := ""
		if utils.IsFunc(fc.entry) {
			hint = "; did you forget to invoke a validator creator?"
		}

		diag.Invariant(false,
			"%s: %s type `%s` is invalid; it must be a validator function, usually from a validator library, but received `%T`%s",
			fc.subject, fc.locName, fc.field, fc.entry, hint)

		// Reached only when invariants are compiled out.
		return
	}

	// Containment boundary: a panicking validator is folded into the same
	// failure slot as a returned one. Validators are third-party-authorable,
	// so their misbehavior must never destabilize the caller.
	result := try.Do(func() (any, error) {
		return fn(fc.values, fc.field, fc.subject, fc.loc), nil
	})

	failure := result.Value
	if result.IsFailure() {
		failure = result.Error
	}

	if utils.IsNilish(failure) {
		failure = nil
	}

	failureErr, isErr := failure.(error)

	if failure != nil && !isErr {
		// Not deduplicated: this signals a bug in how the specification was
		// composed, most often a parameterized validator creator that was
		// referenced without being invoked.
		fieldChecks.WithLabelValues(outcomeMisuse).Inc()
		e.sink.Warnf(ctx, false,
			"%s: type specification of %s `%s` is invalid; the validator must return nil or an error but returned a %T. "+
				"You may have forgotten to pass an argument to a validator creator.",
			fc.subject, fc.locName, fc.field, failure)
	}

	switch {
	case isErr:
		if e.store.MarkReported(failureErr.Error()) {
			fieldChecks.WithLabelValues(outcomeFailure).Inc()
			e.sink.Warnf(ctx, false, "%s: failed %s type: %s%s",
				fc.subject, fc.locName, failureErr.Error(), e.resolveTrace(fc.ref))
		} else {
			fieldChecks.WithLabelValues(outcomeDuplicate).Inc()
		}
	case failure == nil:
		fieldChecks.WithLabelValues(outcomePass).Inc()
	}

	e.checkTypo(ctx, fc)
}

// checkTypo flags a supplied key that matches this declared field in
// everything but letter case. Each field fires at most once per store
// lifetime.
func (e *Engine) checkTypo(ctx context.Context, fc fieldCheck) {
	mistyped, found := fc.mistyped[fc.folded]
	if !found {
		return
	}

	if !e.store.MarkTypoReported(fc.field) {
		return
	}

	fieldChecks.WithLabelValues(outcomeTypo).Inc()
	e.sink.Warnf(ctx, false, "%s: unknown %s `%s` supplied; did you mean `%s`?",
		fc.subject, fc.locName, mistyped, fc.field)
}

// resolveTrace resolves a best-effort call-site trace for a failure report.
// Resolution only happens when diagnostics are enabled; an unresolvable
// reference degrades to an empty suffix and never blocks the diagnostic.
func (e *Engine) resolveTrace(ref callsite.Ref) string {
	if !e.diagnosticsEnabled {
		return ""
	}

	switch ref.Kind() {
	case callsite.RefLegacy:
		return e.traces.TraceByID(ref.LegacyID())
	case callsite.RefWork:
		return e.traces.TraceByWork(ref.Work())
	case callsite.RefSubject:
		return e.traces.TraceBySubject(ref.Subject())
	case callsite.RefNone:
		return ""
	default:
		return ""
	}
}

// unknownKeys returns the keys present in values but not declared in specs,
// keyed by their case-folded form and mapped back to the original casing.
// Returns nil when values is empty or every key is declared.
func unknownKeys(specs Specs, values Values, fold cases.Caser) map[string]string {
	if len(values) == 0 {
		return nil
	}

	var unknown map[string]string

	for key := range values {
		if _, declared := specs[key]; declared {
			continue
		}

		if unknown == nil {
			unknown = make(map[string]string)
		}

		unknown[fold.String(key)] = key
	}

	return unknown
}

// asValidator adapts a spec entry to the Validator contract. Entries that are
// nil-ish or not one of the recognized function shapes are rejected.
func asValidator(entry any) (Validator, bool) {
	if utils.IsNilish(entry) {
		return nil, false
	}

	switch fn := entry.(type) {
	case Validator:
		return fn, true
	case func(Values, string, string, location.Kind) any:
		return fn, true
	case func(Values, string, string, location.Kind) error:
		return func(values Values, field, subject string, loc location.Kind) any {
			if err := fn(values, field, subject, loc); err != nil {
				return err
			}

			return nil
		}, true
	default:
		return nil, false
	}
}
