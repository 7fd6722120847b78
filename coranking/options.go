// SPDX-License-Identifier: MIT

// Package coranking: functional configuration for rank extraction and
// tabulation. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values: programmer error),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic results: options change speed and memory, never output.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package coranking

import "runtime"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers = 0 means "use runtime.GOMAXPROCS(0)".
	DefaultWorkers = 0

	// DefaultMaxAccumulatorBytes caps the memory held by partial co-ranking
	// accumulators across all tabulation workers (256 MiB). The final result
	// is always allocated; the cap only limits extra partials.
	DefaultMaxAccumulatorBytes = 256 << 20

	// DefaultAllowNegative keeps the non-negative dissimilarity contract.
	DefaultAllowNegative = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid  = "coranking: WithWorkers: n must be >= 1"
	panicMaxBytesInvalid = "coranking: WithMaxAccumulatorBytes: bytes must be >= 1"
	panicLoggerNil       = "coranking: WithLogger: logger must not be nil"
	panicMetricsNil      = "coranking: WithMetrics: collector must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers       int
	maxAccBytes   int64
	allowNegative bool
	logger        *Logger
	metrics       MetricsCollector
}

// WithWorkers bounds the number of goroutines used for rank rows and partial
// accumulators. n=1 forces a fully sequential run.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) { o.workers = n }
}

// WithMaxAccumulatorBytes caps the bytes spent on partial accumulators during
// tabulation. Each extra worker needs (N-1)²·8 bytes; when the cap is smaller
// than that, tabulation degrades to a single accumulator.
// Panics if bytes < 1.
func WithMaxAccumulatorBytes(bytes int64) Option {
	if bytes < 1 {
		panic(panicMaxBytesInvalid)
	}
	return func(o *Options) { o.maxAccBytes = bytes }
}

// WithAllowNegative accepts negative dissimilarities (e.g. negated similarity
// scores). Ranks only depend on per-row ordering, so the result is still
// well defined. NaN and ±Inf stay rejected.
func WithAllowNegative() Option {
	return func(o *Options) { o.allowNegative = true }
}

// WithLogger configures structured logging for every stage.
//
// Example:
//
//	logger := coranking.NewTextLogger(slog.LevelDebug)
//	q, err := coranking.Compute(dhd, dld, coranking.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}
	return func(o *Options) { o.logger = logger }
}

// WithMetrics installs a MetricsCollector that receives stage timings.
func WithMetrics(c MetricsCollector) Option {
	if c == nil {
		panic(panicMetricsNil)
	}
	return func(o *Options) { o.metrics = c }
}

// gatherOptions applies opts over defaults in order; nil entries are skipped.
// Resolves DefaultWorkers to GOMAXPROCS.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:       DefaultWorkers,
		maxAccBytes:   DefaultMaxAccumulatorBytes,
		allowNegative: DefaultAllowNegative,
		logger:        NoopLogger(),
		metrics:       NoopMetricsCollector{},
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
