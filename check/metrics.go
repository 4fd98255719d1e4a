package check

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes of a single field check. An invocation that emits a misuse
// warning counts under misuse even when no failure is recorded for it.
const (
	outcomePass        = "pass"
	outcomeFailure     = "failure"
	outcomeDuplicate   = "duplicate"
	outcomeMisuse      = "misuse"
	outcomeInvalidSpec = "invalid_spec"
	outcomeTypo        = "typo"
)

var (
	// fieldChecks counts individual field checks by outcome. The duplicate
	// outcome tracks failures suppressed by deduplication, which is the
	// number most useful for judging how noisy validation would be without it.
	fieldChecks = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "typecheck_field_checks_total",
		Help: "The total number of field checks, by outcome",
	}, []string{"outcome"})

	// passTime tracks the duration of whole validation passes. Validators
	// are expected to be CPU-bound and fast; the upper buckets exist to make
	// a validator that does real work somewhere visible.
	passTime = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name: "typecheck_pass_time_millis",
		Help: "The time it takes to run one validation pass, in milliseconds",
		Buckets: []float64{
			1, 5, 10, 25, 50, 100, 250, 500, 1000,
		},
	}, []string{"location"})
)

// init pre-seeds the counter for every outcome so rate() queries have a
// consistent time series from process start and zero is distinguishable
// from missing.
func init() {
	for _, outcome := range []string{
		outcomePass, outcomeFailure, outcomeDuplicate,
		outcomeMisuse, outcomeInvalidSpec, outcomeTypo,
	} {
		fieldChecks.WithLabelValues(outcome).Add(0)
	}
}
