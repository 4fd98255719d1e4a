// Package try provides a small result type that folds a value-or-error pair
// into one representation, plus a panic-containing runner. The typecheck
// engine uses it to normalize validator invocations: whether a validator
// returns a failure or panics, both paths end up in the same failure slot.
package try

import (
	"fmt"

	"github.com/amp-labs/typecheck/errors"
)

type Try[A any] struct {
	Value A
	Error error
}

func (t Try[A]) IsSuccess() bool {
	return t.Error == nil
}

func (t Try[A]) IsFailure() bool {
	return t.Error != nil
}

func (t Try[A]) Get() (A, error) { //nolint:ireturn
	if t.IsFailure() {
		var zero A

		return zero, t.Error
	} else {
		return t.Value, nil
	}
}

func (t Try[A]) GetOrElse(defaultValue A) A { //nolint:ireturn
	if t.IsSuccess() {
		return t.Value
	} else {
		return defaultValue
	}
}

func Map[A, B any](t Try[A], f func(A) (B, error)) Try[B] {
	if t.IsSuccess() {
		val, err := f(t.Value)

		return Try[B]{Value: val, Error: err}
	} else {
		return Try[B]{Error: t.Error}
	}
}

// Do runs f and captures its outcome as a Try. A panic inside f is recovered
// and folded into the Error slot, wrapped with errors.ErrPanicRecovery, so
// the caller sees a misbehaving function and a failing one the same way.
func Do[A any](f func() (A, error)) (result Try[A]) {
	defer func() {
		if r := recover(); r != nil {
			result = Try[A]{Error: recoveryError(r)}
		}
	}()

	val, err := f()

	return Try[A]{Value: val, Error: err}
}

// recoveryError converts a recovered panic value into an error. Error panic
// values are wrapped so errors.Is/As still see the original; everything else
// is formatted into the message.
func recoveryError(recovered any) error {
	if err, ok := recovered.(error); ok {
		return fmt.Errorf("%w: %w", errors.ErrPanicRecovery, err)
	}

	return fmt.Errorf("%w: %v", errors.ErrPanicRecovery, recovered)
}
