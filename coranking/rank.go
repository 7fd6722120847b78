// SPDX-License-Identifier: MIT

// Package coranking - rank extraction.
//
// Purpose:
//   - Turn an N×N dissimilarity matrix into an N×N RankMatrix, one row per
//     reference point, with an explicit and testable tie-break policy.
//
// Determinism:
//   - Row i orders column indices by the key (j != i, D[i][j], j): self first,
//     then ascending dissimilarity, then ascending index. The key is a total
//     order, so the permutation never depends on the sort algorithm or on
//     how rows are spread across goroutines.
//
// AI-Hints:
//   - Pass *matrix.Dense to read rows in place; other Matrix implementations
//     are copied once into a Dense before any goroutine starts.
package coranking

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/corank/matrix"
)

// Ranks derives the RankMatrix of d. See RanksContext.
func Ranks(d matrix.Matrix, opts ...Option) (*RankMatrix, error) {
	return RanksContext(context.Background(), d, opts...)
}

// RanksContext derives the RankMatrix of d, honoring ctx between rows.
//
// Implementation:
//   - Stage 1: validate shape (non-nil, square, N ≥ 2) then values (finite,
//     non-negative unless WithAllowNegative). Nothing is allocated for the
//     result before validation passes.
//   - Stage 2: split rows into contiguous chunks; each chunk owns a scratch
//     index slice and writes only its own rows of the output.
//   - Stage 3: per row, sort indices by (j != i, D[i][j], j) and scatter
//     position p into rank[order[p]] = p + 1.
//
// Errors:
//   - ErrShapeMismatch (joined with matrix.ErrNilMatrix / matrix.ErrNonSquare).
//   - ErrInvalidInput  (joined with matrix.ErrNaNInf / matrix.ErrNegative).
//   - ctx.Err() when cancelled; no partial RankMatrix is returned.
//
// Complexity:
//   - Time O(N² log N), Space O(N²) for the result + O(N) scratch per worker.
func RanksContext(ctx context.Context, d matrix.Matrix, opts ...Option) (*RankMatrix, error) {
	o := gatherOptions(opts...)

	start := time.Now()
	r, workers, err := ranks(ctx, d, o)
	elapsed := time.Since(start)

	n := 0
	if err == nil {
		n = r.n
	}
	o.metrics.RecordRanks(n, elapsed, err)
	o.logger.LogRanks(ctx, n, workers, elapsed, err)

	return r, err
}

// ranks is the option-resolved core shared by RanksContext and ComputeContext.
// Returns the number of chunks actually used for logging.
func ranks(ctx context.Context, d matrix.Matrix, o Options) (*RankMatrix, int, error) {
	if err := validateShape(d); err != nil {
		return nil, 0, kindErrorf(opRanks, ErrShapeMismatch, err)
	}
	dense, err := asDense(d)
	if err != nil {
		return nil, 0, kindErrorf(opRanks, ErrInvalidInput, err)
	}
	if err = validateValues(dense, o.allowNegative); err != nil {
		return nil, 0, kindErrorf(opRanks, ErrInvalidInput, err)
	}

	n := dense.Rows()
	out := &RankMatrix{n: n, data: make([]int, n*n)}
	count, _ := chunks(n, o.workers)

	err = forEachChunk(ctx, n, o.workers, func(ctx context.Context, _ int, lo, hi int) error {
		order := make([]int, n) // per-chunk scratch
		for i := lo; i < hi; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			rankRow(dense.RawRow(i), i, order, out.row(i))
		}
		return nil
	})
	if err != nil {
		return nil, count, fmt.Errorf("%s: %w", opRanks, err)
	}

	return out, count, nil
}

// rankRow writes the 1-based ranks of row (seen from point self) into dst.
// order is caller-provided scratch of len(row).
func rankRow(row []float64, self int, order, dst []int) {
	for j := range order {
		order[j] = j
	}
	slices.SortFunc(order, func(a, b int) int {
		if a == b {
			return 0
		}
		// self is pinned to rank 1 even if another point sits at distance 0
		if a == self {
			return -1
		}
		if b == self {
			return 1
		}
		if c := cmp.Compare(row[a], row[b]); c != 0 {
			return c
		}
		return a - b // tie-break on original index
	})
	for p, j := range order {
		dst[j] = p + 1
	}
}

// validateShape runs the structural checks shared by Ranks and Compute.
func validateShape(d matrix.Matrix) error {
	if err := matrix.ValidateSquareNonNil(d); err != nil {
		return err
	}
	if d.Rows() < 2 {
		return fmt.Errorf("need at least 2 points, got %d", d.Rows())
	}

	return nil
}

// validateValues rejects non-finite entries, then negative ones unless allowed.
func validateValues(d *matrix.Dense, allowNegative bool) error {
	if err := matrix.ValidateFinite(d); err != nil {
		return err
	}
	if allowNegative {
		return nil
	}

	return matrix.ValidateNonNegative(d)
}

// asDense returns d itself when it is a *matrix.Dense, otherwise a one-shot
// copy read through At. The copy disables the Set policy so value errors
// surface from validateValues with coordinates instead.
func asDense(d matrix.Matrix) (*matrix.Dense, error) {
	if dd, ok := d.(*matrix.Dense); ok {
		return dd, nil
	}
	n := d.Rows()
	out, err := matrix.NewDense(n, n, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = d.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
