// Package tests provides context helpers for tests: each test gets a context
// carrying a unique identifier and the test name, making it easy to correlate
// log output and diagnostics with the test that produced them.
package tests

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/amp-labs/typecheck/logger"
)

// contextKey is a private type used for storing test metadata in context.Context.
type contextKey string

const (
	// testIdKey is the context key for the unique test identifier,
	// a UUID prefixed with "test-".
	testIdKey contextKey = "testId"

	// testNameKey is the context key for the test name from testing.T.Name().
	testNameKey contextKey = "testName"
)

// Info describes a test from its context.
type Info struct {
	Id   string
	Name string
}

// GetUniqueContext creates a context derived from t.Context() that carries a
// unique test identifier and the test name, and logs through t via logger.Get.
func GetUniqueContext(t *testing.T) context.Context {
	t.Helper()

	baseCtx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	ctx := context.WithValue(baseCtx, testIdKey, "test-"+uuid.New().String())
	ctx = context.WithValue(ctx, testNameKey, t.Name())

	return logger.With(ctx, "test", t.Name())
}

// GetTestInfo extracts the test metadata from a context built by
// GetUniqueContext. The second return value is false if the context does not
// carry test metadata.
func GetTestInfo(ctx context.Context) (Info, bool) {
	id, idOk := ctx.Value(testIdKey).(string)
	name, nameOk := ctx.Value(testNameKey).(string)

	if !idOk || !nameOk {
		return Info{}, false
	}

	return Info{Id: id, Name: name}, true
}
