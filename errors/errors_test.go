package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvariantError_Error(t *testing.T) {
	t.Parallel()

	err := &InvariantError{Message: "spec entry is not a function"}

	assert.Equal(t, "invariant violation: spec entry is not a function", err.Error())
}

func TestInvariantf(t *testing.T) {
	t.Parallel()

	err := Invariantf("%s: %s type `%s` is invalid", "Widget", "prop", "size")

	require.NotNil(t, err)
	assert.Equal(t, "Widget: prop type `size` is invalid", err.Message)
	assert.Contains(t, err.Error(), "invariant violation: ")
}

func TestIsInvariant(t *testing.T) {
	t.Parallel()

	t.Run("direct invariant error", func(t *testing.T) {
		t.Parallel()

		assert.True(t, IsInvariant(Invariantf("broken")))
	})

	t.Run("wrapped invariant error", func(t *testing.T) {
		t.Parallel()

		wrapped := fmt.Errorf("outer: %w", Invariantf("inner"))

		assert.True(t, IsInvariant(wrapped))
	})

	t.Run("plain error", func(t *testing.T) {
		t.Parallel()

		assert.False(t, IsInvariant(errors.New("boom"))) //nolint:err113
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()

		assert.False(t, IsInvariant(nil))
	})
}
