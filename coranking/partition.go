// SPDX-License-Identifier: MIT

package coranking

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// chunkFn processes reference points [lo, hi) as chunk number w.
type chunkFn func(ctx context.Context, w, lo, hi int) error

// chunks returns how many contiguous chunks n rows split into for the given
// worker count, and the chunk length. Always at least one chunk.
func chunks(n, workers int) (count, size int) {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	size = (n + workers - 1) / workers
	count = (n + size - 1) / size

	return count, size
}

// forEachChunk splits [0,n) into contiguous chunks and runs fn on each with at
// most `workers` goroutines. The first error cancels the shared context and
// is returned; a cancelled parent context surfaces as ctx.Err().
func forEachChunk(ctx context.Context, n, workers int, fn chunkFn) error {
	count, size := chunks(n, workers)
	if count == 1 {
		if err := fn(ctx, 0, 0, n); err != nil {
			return err
		}
		return ctx.Err()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for w := 0; w < count; w++ {
		lo := w * size
		hi := min(lo+size, n)
		g.Go(func() error {
			return fn(gctx, w, lo, hi)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// errgroup cancels gctx only on error; a parent cancel racing the last
	// chunk must still discard the result.
	return ctx.Err()
}
