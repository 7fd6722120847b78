// SPDX-License-Identifier: MIT

package coranking

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with coranking-specific helpers so every stage
// reports the same field names (n, workers, duration, error).
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at Info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that outputs human-readable text logs to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, nil))
}

// LogRanks logs one rank extraction.
func (l *Logger) LogRanks(ctx context.Context, n, workers int, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "rank extraction failed",
			"n", n,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "rank extraction completed",
		"n", n,
		"workers", workers,
		"duration", d,
	)
}

// LogTabulate logs one co-ranking tabulation.
func (l *Logger) LogTabulate(ctx context.Context, n, workers int, sum int64, d time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "tabulation failed",
			"n", n,
			"workers", workers,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "tabulation completed",
		"n", n,
		"workers", workers,
		"sum", sum,
		"duration", d,
	)
}
