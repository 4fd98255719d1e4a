package diag

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/typecheck/errors"
	"github.com/amp-labs/typecheck/logger"
)

func TestLogSink_Warnf(t *testing.T) {
	t.Parallel()

	t.Run("emits when condition is false", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		ctx := logger.WithLogger(context.Background(),
			slog.New(slog.NewTextHandler(&buf, nil)))

		LogSink{}.Warnf(ctx, false, "failed %s type: %s", "prop", "invalid color")

		assert.Contains(t, buf.String(), "failed prop type: invalid color")
	})

	t.Run("silent when condition holds", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		ctx := logger.WithLogger(context.Background(),
			slog.New(slog.NewTextHandler(&buf, nil)))

		LogSink{}.Warnf(ctx, true, "should not appear")

		assert.Empty(t, buf.String())
	})

	t.Run("tolerates bare context", func(t *testing.T) {
		t.Parallel()

		ctx := logger.WithMuted(context.Background(), true)

		assert.NotPanics(t, func() {
			LogSink{}.Warnf(ctx, false, "no span, muted logger")
		})
	})
}

func TestCollector(t *testing.T) {
	t.Parallel()

	collector := &Collector{}
	ctx := context.Background()

	collector.Warnf(ctx, true, "held condition")
	collector.Warnf(ctx, false, "first %d", 1)
	collector.Warnf(ctx, false, "second %d", 2)

	require.Equal(t, 2, collector.Count())
	assert.Equal(t, []string{"first 1", "second 2"}, collector.Messages())

	collector.Reset()
	assert.Zero(t, collector.Count())
}

func TestTee(t *testing.T) {
	t.Parallel()

	first := &Collector{}
	second := &Collector{}

	Tee(first, nil, second).Warnf(context.Background(), false, "fan out")

	assert.Equal(t, []string{"fan out"}, first.Messages())
	assert.Equal(t, []string{"fan out"}, second.Messages())
}

func TestInvariant(t *testing.T) {
	t.Parallel()

	t.Run("holds", func(t *testing.T) {
		t.Parallel()

		assert.NotPanics(t, func() {
			Invariant(true, "never rendered")
		})
	})

	t.Run("violated", func(t *testing.T) {
		t.Parallel()

		defer func() {
			recovered := recover()
			require.NotNil(t, recovered)

			err, ok := recovered.(error)
			require.True(t, ok)
			assert.True(t, errors.IsInvariant(err))
			assert.Contains(t, err.Error(), "Widget: prop type `size` is invalid")
		}()

		Invariant(false, "%s: %s type `%s` is invalid", "Widget", "prop", "size")
	})
}
