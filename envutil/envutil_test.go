package envutil

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Note: tests that set environment variables cannot use t.Parallel(),
// since t.Setenv panics in parallel tests.

func TestString(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		t.Setenv("TYPECHECK_TEST_STR", "hello")

		val, err := String("TYPECHECK_TEST_STR").Value()
		require.NoError(t, err)
		assert.Equal(t, "hello", val)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := String("TYPECHECK_TEST_STR_MISSING").Value()
		require.ErrorIs(t, err, ErrEnvVarMissing)
	})

	t.Run("missing with default", func(t *testing.T) {
		val, err := String("TYPECHECK_TEST_STR_MISSING", Default("fallback")).Value()
		require.NoError(t, err)
		assert.Equal(t, "fallback", val)
	})
}

func TestBool(t *testing.T) {
	t.Run("parses true", func(t *testing.T) {
		t.Setenv("TYPECHECK_TEST_BOOL", "true")

		val, err := Bool("TYPECHECK_TEST_BOOL").Value()
		require.NoError(t, err)
		assert.True(t, val)
	})

	t.Run("parse failure", func(t *testing.T) {
		t.Setenv("TYPECHECK_TEST_BOOL", "maybe")

		_, err := Bool("TYPECHECK_TEST_BOOL").Value()
		require.ErrorIs(t, err, ErrBadEnvVar)
	})

	t.Run("default survives missing", func(t *testing.T) {
		val, err := Bool("TYPECHECK_TEST_BOOL_MISSING", Default(true)).Value()
		require.NoError(t, err)
		assert.True(t, val)
	})

	t.Run("default does not mask parse failure", func(t *testing.T) {
		t.Setenv("TYPECHECK_TEST_BOOL", "nope")

		_, err := Bool("TYPECHECK_TEST_BOOL", Default(false)).Value()
		require.ErrorIs(t, err, ErrBadEnvVar)
	})
}

func TestSlogLevel(t *testing.T) {
	t.Run("parses level names", func(t *testing.T) {
		t.Setenv("TYPECHECK_TEST_LEVEL", "warn")

		val, err := SlogLevel("TYPECHECK_TEST_LEVEL").Value()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelWarn, val)
	})

	t.Run("default", func(t *testing.T) {
		val := SlogLevel("TYPECHECK_TEST_LEVEL_MISSING", Default(slog.LevelInfo)).ValueOrFatal()
		assert.Equal(t, slog.LevelInfo, val)
	})
}

func TestReader_ValueOrElse(t *testing.T) {
	t.Run("present wins", func(t *testing.T) {
		t.Setenv("TYPECHECK_TEST_STR", "set")

		assert.Equal(t, "set", String("TYPECHECK_TEST_STR").ValueOrElse("fallback"))
	})

	t.Run("missing falls back", func(t *testing.T) {
		assert.Equal(t, "fallback", String("TYPECHECK_TEST_STR_MISSING").ValueOrElse("fallback"))
	})
}

func TestReader_ValueOrPanic(t *testing.T) {
	assert.Panics(t, func() {
		String("TYPECHECK_TEST_STR_MISSING").ValueOrPanic()
	})
}

func TestMap(t *testing.T) {
	t.Run("transforms value", func(t *testing.T) {
		t.Setenv("TYPECHECK_TEST_STR", "5")

		rdr := Map(String("TYPECHECK_TEST_STR"), func(s string) (int, error) {
			return len(s), nil
		})

		val, err := rdr.Value()
		require.NoError(t, err)
		assert.Equal(t, 1, val)
	})

	t.Run("skips missing", func(t *testing.T) {
		rdr := Map(String("TYPECHECK_TEST_STR_MISSING"), func(s string) (int, error) {
			t.Fatal("mapper should not run when value is missing")

			return 0, nil
		})

		assert.False(t, rdr.HasValue())
	})
}
