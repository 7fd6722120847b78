// SPDX-License-Identifier: MIT

// Package coranking - co-ranking tabulation.
//
// Purpose:
//   - Count, for every ordered pair (i,j) with i != j, the cell
//     (R_hd[i][j]-2, R_ld[i][j]-2) of the (N-1)×(N-1) co-ranking matrix.
//
// Layout:
//   - The result is allocated at its final (N-1)×(N-1) shape. Self pairs sit
//     at rank 1 in both rankings and are skipped inline, so there is no
//     sentinel row/column and no trim step.
//
// Parallelism:
//   - Reference points are split into contiguous chunks. Chunk 0 accumulates
//     straight into the result; every other chunk owns a private partial
//     accumulator that is summed in afterwards. Integer addition is exact,
//     associative and commutative, so the result is bit-identical for every
//     worker count and scheduling order.
package coranking

import (
	"context"
	"fmt"
	"math"
	"math/bits"
	"time"
)

// cellBytes is the size of one accumulator cell.
const cellBytes = 8

// Tabulate builds the co-ranking matrix from two rank matrices. See TabulateContext.
func Tabulate(hd, ld *RankMatrix, opts ...Option) (*Matrix, error) {
	return TabulateContext(context.Background(), hd, ld, opts...)
}

// TabulateContext builds the co-ranking matrix Q from hd and ld.
//
// Implementation:
//   - Stage 1: validate (non-nil, same N ≥ 2) and check that N*(N-1) and
//     (N-1)² fit the int64 / int accumulator arithmetic.
//   - Stage 2: pick the worker count: min(WithWorkers, N, 1 + cap/partialBytes).
//   - Stage 3: per chunk, scan rows i in [lo,hi) and j in [0,N), skip j == i,
//     increment acc[(h-2)*(N-1) + (l-2)].
//   - Stage 4: sum partials into the result.
//
// Errors:
//   - ErrShapeMismatch: nil input, N mismatch, N < 2, malformed rank storage.
//   - ErrOverflow: N so large that the counts or cell indices overflow;
//     checked before any storage is touched.
//   - ctx.Err(): cancelled; all partials are discarded.
//
// Complexity:
//   - Time O(N²), Space O((N-1)²·workers).
func TabulateContext(ctx context.Context, hd, ld *RankMatrix, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	start := time.Now()
	q, workers, err := tabulate(ctx, hd, ld, o)
	elapsed := time.Since(start)

	n := 0
	var sum int64
	if err == nil {
		n = q.Points()
		sum = q.Sum()
	}
	o.metrics.RecordTabulate(n, workers, elapsed, err)
	o.logger.LogTabulate(ctx, n, workers, sum, elapsed, err)

	return q, err
}

// tabulate is the option-resolved core shared by TabulateContext and ComputeContext.
func tabulate(ctx context.Context, hd, ld *RankMatrix, o Options) (*Matrix, int, error) {
	if hd == nil || ld == nil {
		return nil, 0, kindErrorf(opTabulate, ErrShapeMismatch, fmt.Errorf("nil rank matrix"))
	}
	if hd.n != ld.n {
		return nil, 0, kindErrorf(opTabulate, ErrShapeMismatch, fmt.Errorf("N mismatch: %d vs %d", hd.n, ld.n))
	}
	if hd.n < 2 {
		return nil, 0, kindErrorf(opTabulate, ErrShapeMismatch, fmt.Errorf("need at least 2 points, got %d", hd.n))
	}

	n := hd.n
	size := n - 1
	// before any n*n arithmetic on the lengths below
	cells, err := checkedCells(n)
	if err != nil {
		return nil, 0, kindErrorf(opTabulate, ErrOverflow, err)
	}
	if len(hd.data) != n*n || len(ld.data) != n*n {
		return nil, 0, kindErrorf(opTabulate, ErrShapeMismatch, fmt.Errorf("malformed rank matrix with N=%d", n))
	}

	workers := accumulatorWorkers(n, cells, o)
	count, _ := chunks(n, workers)

	q := &Matrix{size: size, data: make([]int64, cells)}
	partials := make([][]int64, count)
	partials[0] = q.data

	err = forEachChunk(ctx, n, workers, func(ctx context.Context, w, lo, hi int) error {
		acc := partials[w]
		if acc == nil {
			acc = make([]int64, cells)
			partials[w] = acc
		}
		var i, j int
		var hrow, lrow []int
		for i = lo; i < hi; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			hrow, lrow = hd.row(i), ld.row(i)
			for j = 0; j < n; j++ {
				if j == i {
					continue // self pair: rank 1 in both, not part of Q
				}
				acc[(hrow[j]-2)*size+(lrow[j]-2)]++
			}
		}
		return nil
	})
	if err != nil {
		return nil, count, fmt.Errorf("%s: %w", opTabulate, err)
	}

	var idx int
	for w := 1; w < count; w++ {
		for idx = range q.data {
			q.data[idx] += partials[w][idx]
		}
	}

	return q, count, nil
}

// checkedCells returns (N-1)² and verifies the total count N*(N-1) fits in
// int64 and the cell count fits in int.
func checkedCells(n int) (int, error) {
	un, usize := uint64(n), uint64(n-1)
	if hi, lo := bits.Mul64(un, usize); hi != 0 || lo > math.MaxInt64 {
		return 0, fmt.Errorf("N*(N-1) for N=%d exceeds int64", n)
	}
	hi, lo := bits.Mul64(usize, usize)
	if hi != 0 || lo > uint64(math.MaxInt) {
		return 0, fmt.Errorf("(N-1)^2 cells for N=%d exceeds int", n)
	}

	return int(lo), nil
}

// accumulatorWorkers bounds the requested workers by N and by the partial
// accumulator memory cap. The result always gets one accumulator for free.
func accumulatorWorkers(n, cells int, o Options) int {
	workers := min(o.workers, n)
	// divide before multiplying: cells*cellBytes may not fit in int64
	extra := o.maxAccBytes / cellBytes / int64(cells)
	if extra < int64(workers-1) {
		workers = int(extra) + 1
	}

	return max(workers, 1)
}
