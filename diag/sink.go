// Package diag defines the side channels through which the validation engine
// reports. Warnings flow through a Sink; internal-consistency failures flow
// through Invariant, which is the only path that can halt the caller.
package diag

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/amp-labs/typecheck/logger"
)

// Sink accepts a condition that should hold plus a format string and
// arguments, and emits a human-readable warning only when the condition is
// false. Sinks must never fail; emission is advisory instrumentation.
type Sink interface {
	Warnf(ctx context.Context, condition bool, format string, args ...any)
}

// LogSink emits warnings through the context logger. If the context carries a
// recording OpenTelemetry span, the warning is additionally attached to the
// span as an event, so diagnostics show up alongside the traces of the
// operation that triggered them.
type LogSink struct{}

var _ Sink = LogSink{}

// Warnf implements Sink.
func (LogSink) Warnf(ctx context.Context, condition bool, format string, args ...any) {
	if condition {
		return
	}

	msg := fmt.Sprintf(format, args...)

	logger.Get(ctx).Warn(msg)

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.AddEvent("typecheck.diagnostic",
			trace.WithAttributes(attribute.String("message", msg)))
	}
}

// Collector is a Sink that records emitted messages in memory. Useful in
// tests and for callers that want to inspect diagnostics programmatically.
// Safe for concurrent use.
type Collector struct {
	mutex    sync.Mutex
	messages []string
}

var _ Sink = (*Collector)(nil)

// Warnf implements Sink.
func (c *Collector) Warnf(_ context.Context, condition bool, format string, args ...any) {
	if condition {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.messages = append(c.messages, fmt.Sprintf(format, args...))
}

// Messages returns a copy of the messages emitted so far.
func (c *Collector) Messages() []string {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	out := make([]string, len(c.messages))
	copy(out, c.messages)

	return out
}

// Count returns how many messages have been emitted.
func (c *Collector) Count() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return len(c.messages)
}

// Reset discards all recorded messages.
func (c *Collector) Reset() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.messages = nil
}

// Tee returns a Sink that forwards every call to all of the given sinks.
func Tee(sinks ...Sink) Sink {
	return teeSink(sinks)
}

type teeSink []Sink

func (t teeSink) Warnf(ctx context.Context, condition bool, format string, args ...any) {
	for _, s := range t {
		if s != nil {
			s.Warnf(ctx, condition, format, args...)
		}
	}
}
