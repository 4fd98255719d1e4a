package check

import (
	"github.com/amp-labs/typecheck/callsite"
	"github.com/amp-labs/typecheck/dedup"
	"github.com/amp-labs/typecheck/diag"
	"github.com/amp-labs/typecheck/location"
)

// Option configures an Engine during construction.
type Option func(*Engine)

// WithStore supplies the deduplication store. Engines sharing a store share
// the "report at most once" memory; the store's lifetime, not the engine's,
// bounds deduplication.
func WithStore(store *dedup.Store) Option {
	return func(e *Engine) {
		if store != nil {
			e.store = store
		}
	}
}

// WithResolver supplies the location display-name resolver.
func WithResolver(resolver location.Resolver) Option {
	return func(e *Engine) {
		if resolver != nil {
			e.names = resolver
		}
	}
}

// WithTraceProvider supplies the call-site trace provider used to suffix
// failure reports. Only consulted when diagnostics are enabled.
func WithTraceProvider(provider callsite.Provider) Option {
	return func(e *Engine) {
		if provider != nil {
			e.traces = provider
		}
	}
}

// WithSink supplies the diagnostic sink all warnings flow through.
func WithSink(sink diag.Sink) Option {
	return func(e *Engine) {
		if sink != nil {
			e.sink = sink
		}
	}
}

// WithDiagnostics enables or disables call-site trace resolution. This is an
// explicit engine option rather than an ambient build-mode flag; production
// engines typically leave it off.
func WithDiagnostics(enabled bool) Option {
	return func(e *Engine) {
		e.diagnosticsEnabled = enabled
	}
}

// New builds an Engine. Without options it uses a fresh deduplication store,
// the default location names, no trace provider, the logging sink, and
// diagnostics disabled.
func New(opts ...Option) *Engine {
	engine := &Engine{
		store:  dedup.NewStore(),
		names:  location.DefaultResolver{},
		traces: callsite.NoopProvider{},
		sink:   diag.LogSink{},
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}
