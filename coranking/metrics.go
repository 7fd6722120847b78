// SPDX-License-Identifier: MIT

package coranking

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives one call per finished stage.
// Implement it to forward timings to Prometheus, OpenTelemetry or similar.
type MetricsCollector interface {
	// RecordRanks is called after each rank extraction over an n×n input.
	// err is nil if successful.
	RecordRanks(n int, duration time.Duration, err error)

	// RecordTabulate is called after each tabulation over n points using
	// the given number of partial accumulators.
	RecordTabulate(n, workers int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRanks(int, time.Duration, error)         {}
func (NoopMetricsCollector) RecordTabulate(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Safe for concurrent use.
type BasicMetricsCollector struct {
	RanksCount         atomic.Int64
	RanksErrors        atomic.Int64
	RanksTotalNanos    atomic.Int64
	RanksPoints        atomic.Int64
	TabulateCount      atomic.Int64
	TabulateErrors     atomic.Int64
	TabulateTotalNanos atomic.Int64
	TabulatePairs      atomic.Int64
}

// RecordRanks implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRanks(n int, duration time.Duration, err error) {
	b.RanksCount.Add(1)
	b.RanksTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RanksErrors.Add(1)
		return
	}
	b.RanksPoints.Add(int64(n))
}

// RecordTabulate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTabulate(n, workers int, duration time.Duration, err error) {
	b.TabulateCount.Add(1)
	b.TabulateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.TabulateErrors.Add(1)
		return
	}
	b.TabulatePairs.Add(int64(n) * int64(n-1))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RanksCount:       b.RanksCount.Load(),
		RanksErrors:      b.RanksErrors.Load(),
		RanksAvgNanos:    avgNanos(b.RanksTotalNanos.Load(), b.RanksCount.Load()),
		RanksPoints:      b.RanksPoints.Load(),
		TabulateCount:    b.TabulateCount.Load(),
		TabulateErrors:   b.TabulateErrors.Load(),
		TabulateAvgNanos: avgNanos(b.TabulateTotalNanos.Load(), b.TabulateCount.Load()),
		TabulatePairs:    b.TabulatePairs.Load(),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RanksCount       int64
	RanksErrors      int64
	RanksAvgNanos    int64
	RanksPoints      int64
	TabulateCount    int64
	TabulateErrors   int64
	TabulateAvgNanos int64
	TabulatePairs    int64 // ordered pairs of distinct points counted
}
