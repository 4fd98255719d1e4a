// Package envutil provides typed, ergonomic readers for environment
// variables. A Reader wraps the raw lookup with parsing, defaulting, and
// error handling so configuration code can stay declarative.
package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

var (
	ErrBadEnvVar     = errors.New("error parsing environment variable")
	ErrEnvVarMissing = errors.New("missing environment variable")
)

// Reader represents a value read from an environment variable, together with
// whether it was present and any parse error.
type Reader[A any] struct {
	key     string
	present bool
	err     error

	value A
}

// Key returns the key of the environment variable.
func (e Reader[A]) Key() string {
	return e.key
}

// Value returns the value, or an error if the variable is missing or failed
// to parse.
func (e Reader[A]) Value() (A, error) { //nolint:ireturn
	if e.err != nil {
		return e.value, fmt.Errorf("%w %s: %w", ErrBadEnvVar, e.key, e.err)
	}

	if !e.present {
		return e.value, fmt.Errorf("%w %s", ErrEnvVarMissing, e.key)
	}

	return e.value, nil
}

// ValueOrPanic returns the value, or panics if the variable is missing or
// failed to parse.
func (e Reader[A]) ValueOrPanic() A { //nolint:ireturn
	value, err := e.Value()
	if err != nil {
		panic(err)
	}

	return value
}

// ValueOrFatal returns the value, or exits the program if the variable is
// missing or failed to parse.
func (e Reader[A]) ValueOrFatal() A { //nolint:ireturn
	value, err := e.Value()
	if err != nil {
		slog.Error("error reading environment variable", "key", e.key, "error", err)
		os.Exit(1)
	}

	return value
}

// ValueOrElse returns the value, or the given fallback if the variable is
// missing or failed to parse.
func (e Reader[A]) ValueOrElse(fallback A) A { //nolint:ireturn
	if e.present && e.err == nil {
		return e.value
	}

	if e.err != nil {
		slog.Warn("error reading environment variable, using fallback value",
			"key", e.key, "error", e.err)
	}

	return fallback
}

// HasValue returns true if the variable was set and parsed cleanly.
func (e Reader[A]) HasValue() bool {
	return e.present && e.err == nil
}

// WithDefault returns a Reader carrying the given value when the original has
// none. An existing value or error is kept as is.
func (e Reader[A]) WithDefault(value A) Reader[A] { //nolint:ireturn
	if e.present || e.err != nil {
		return e
	}

	return Reader[A]{
		key:     e.key,
		present: true,
		value:   value,
	}
}

// Option transforms a Reader; used for defaulting and similar adjustments.
type Option[T any] func(Reader[T]) Reader[T]

// Default supplies a fallback value for a missing variable.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}

// Map transforms the value of a Reader with a fallible function. Missing
// values and existing errors pass through untransformed.
func Map[A, B any](rdr Reader[A], f func(A) (B, error)) Reader[B] {
	out := Reader[B]{
		key:     rdr.key,
		present: rdr.present,
		err:     rdr.err,
	}

	if rdr.present && rdr.err == nil {
		out.value, out.err = f(rdr.value)
	}

	return out
}

// get returns a Reader for the given environment variable key.
func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

// String returns a Reader for the given environment variable key.
func String(key string, opts ...Option[string]) Reader[string] {
	rdr := get(key)
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// Bool returns a Reader that parses the variable with strconv.ParseBool.
func Bool(key string, opts ...Option[bool]) Reader[bool] {
	rdr := Map(get(key), strconv.ParseBool)
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// SlogLevel returns a Reader that parses the variable as a slog level name
// ("debug", "info", "warn", "error").
func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	rdr := Map(get(key), func(s string) (slog.Level, error) {
		var level slog.Level

		err := level.UnmarshalText([]byte(s))

		return level, err
	})

	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}
