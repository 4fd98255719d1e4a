// Package logger configures slog for the module and retrieves context-aware
// loggers. Diagnostic emission throughout typecheck goes through Get(ctx), so
// callers can mute, redirect, or annotate output via the context.
package logger

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/amp-labs/typecheck/envutil"
)

// Used so log lines can say which part of the system produced them.
// Using atomic.Value to ensure thread-safe reads and writes.
var subsystem atomic.Value //nolint:gochecknoglobals

// configMutex protects concurrent calls to ConfigureLoggingWithOptions.
// This is necessary because the function modifies global state (slog.SetDefault and log.Default).
var configMutex sync.Mutex //nolint:gochecknoglobals

// It's considered good practice to use unexported custom types for context keys.
// This avoids collisions with other packages that might be using the same string
// values for their own keys.
type contextKey string

// Options is used to configure logging.
type Options struct {
	Subsystem string
	JSON      bool
	MinLevel  slog.Level
	Output    io.Writer
}

// ConfigureLoggingWithOptions configures logging for the application.
// It returns the default logger.
// This function is thread-safe but modifies global state, so concurrent calls
// will be serialized.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	var handler slog.Handler

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	} else {
		handler = slog.NewTextHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	}

	logger := slog.New(handler)

	slog.SetDefault(logger)

	// Redirect the old log package into slog for any third-party packages
	// still using it.
	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.MinLevel)

	subsystem.Store(opts.Subsystem)

	return logger
}

// Option is a functional option for configuring logging via ConfigureLogging.
type Option func(*Options)

// ConfigureLogging configures logging for the application from the
// environment (LOG_JSON, LOG_LEVEL), then applies any explicit options.
// It returns the default logger.
func ConfigureLogging(app string, opts ...Option) *slog.Logger {
	logJSON := envutil.Bool("LOG_JSON", envutil.Default(false)).ValueOrFatal()

	minLevel := envutil.SlogLevel("LOG_LEVEL", envutil.Default(slog.LevelInfo)).ValueOrFatal()

	options := Options{
		Subsystem: app,
		JSON:      logJSON,
		MinLevel:  minLevel,
		Output:    os.Stdout,
	}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options)
}

// WithLogger embeds a specific logger in the context. Get will return it
// instead of the process default. Useful for tests and per-request loggers.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("logger"), logger)
}

// WithMuted adds a muted flag to the context. When muted is true, all logging
// operations on this context will be suppressed (no log output will be produced).
// This is useful for silencing logs in specific code paths, such as
// high-frequency operations that would otherwise create excessive log noise.
func WithMuted(ctx context.Context, muted bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("mute"), muted)
}

// isMuted checks if the context has the muted flag set to true.
func isMuted(ctx context.Context) bool {
	val := ctx.Value(contextKey("mute"))
	if val == nil {
		return false
	}

	muted, ok := val.(bool)

	return ok && muted
}

// WithSubsystem adds a subsystem to the context, overriding the default set
// by ConfigureLogging.
func WithSubsystem(ctx context.Context, name string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("subsystem"), name)
}

// GetSubsystem returns the subsystem from the context, falling back to the
// default configured subsystem.
func GetSubsystem(ctx context.Context) string { //nolint:contextcheck
	if ctx == nil {
		ctx = context.Background()
	}

	override := ctx.Value(contextKey("subsystem"))
	if override != nil {
		if val, ok := override.(string); ok {
			return val
		}
	}

	if def, ok := subsystem.Load().(string); ok {
		return def
	}

	return ""
}

// With returns a new context with the given values added.
// The values are added to the logger automatically.
func With(ctx context.Context, values ...any) context.Context {
	if len(values) == 0 && ctx != nil {
		// Corner case, don't bother creating a new context.
		return ctx
	}

	vals := append(getValues(ctx), values...)

	return context.WithValue(ctx, contextKey("loggerValues"), vals)
}

// getValues retrieves logger values from the context that were added via With.
// Returns nil if no values are present in the context.
func getValues(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}

	val := ctx.Value(contextKey("loggerValues"))
	if val == nil {
		return nil
	}

	vals, ok := val.([]any)
	if !ok {
		return nil
	}

	return vals
}

// getRealContext extracts the first non-nil context from a variadic list.
// If no context is provided or all are nil, it returns context.Background().
func getRealContext(ctx ...context.Context) context.Context {
	var realCtx context.Context

	for _, c := range ctx {
		if c != nil {
			realCtx = c //nolint:fatcontext

			break
		}
	}

	if realCtx == nil {
		realCtx = context.Background()
	}

	return realCtx
}

// nullHandler is a slog.Handler implementation that discards all log output.
// It is used to implement the muted logging feature.
type nullHandler struct{}

func (n *nullHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (n *nullHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (n *nullHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return n
}

func (n *nullHandler) WithGroup(_ string) slog.Handler {
	return n
}

// nullLogger is a logger that discards all output. It is returned by Get
// when the context has the muted flag set to true.
var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals

// Get returns a logger for the given context. A logger embedded via
// WithLogger takes precedence; a muted context yields a logger that discards
// everything; otherwise the process default is returned, annotated with the
// subsystem and any values added via With.
//
//nolint:contextcheck
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := getRealContext(ctx...)

	if isMuted(realCtx) {
		return nullLogger
	}

	logger, ok := realCtx.Value(contextKey("logger")).(*slog.Logger)
	if !ok {
		logger = slog.Default()
	}

	if name := GetSubsystem(realCtx); name != "" {
		logger = logger.With("subsystem", name)
	}

	if vals := getValues(realCtx); vals != nil {
		logger = logger.With(vals...)
	}

	return logger
}
