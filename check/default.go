package check

import (
	"context"

	"github.com/amp-labs/typecheck/callsite"
	"github.com/amp-labs/typecheck/envutil"
	"github.com/amp-labs/typecheck/lazy"
	"github.com/amp-labs/typecheck/location"
)

// defaultEngine is the process-wide engine behind the package-level
// CheckSpecs. Its store lives for the whole process, which is what gives the
// "report at most once per process lifetime" behavior its scope. Trace
// resolution is controlled by the TYPECHECK_DIAGNOSTICS environment variable.
var defaultEngine = lazy.New(func() *Engine { //nolint:gochecknoglobals
	enabled := envutil.Bool("TYPECHECK_DIAGNOSTICS").ValueOrElse(false)

	return New(WithDiagnostics(enabled))
})

// Default returns the process-wide engine, creating it on first use.
func Default() *Engine {
	return defaultEngine.Get()
}

// CheckSpecs runs a validation pass on the process-wide default engine.
// See Engine.CheckSpecs.
func CheckSpecs(
	ctx context.Context,
	specs Specs,
	values Values,
	loc location.Kind,
	subject string,
	ref callsite.Ref,
) {
	Default().CheckSpecs(ctx, specs, values, loc, subject, ref)
}
