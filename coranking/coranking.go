// SPDX-License-Identifier: MIT

package coranking

import (
	"context"
	"fmt"

	"github.com/katalvlaran/corank/matrix"
)

// Compute builds the co-ranking matrix of a high-dimensional and a
// low-dimensional dissimilarity matrix over the same N points.
// See ComputeContext.
func Compute(hd, ld matrix.Matrix, opts ...Option) (*Matrix, error) {
	return ComputeContext(context.Background(), hd, ld, opts...)
}

// ComputeContext builds the co-ranking matrix Q of hd and ld.
//
// Implementation:
//   - Stage 1: structural checks on both inputs (non-nil, square, N ≥ 2,
//     same N). No values are read yet.
//   - Stage 2: RankExtractor on hd, then on ld (value checks happen here,
//     before any rank is written).
//   - Stage 3: CorankingTabulator on the two rank matrices.
//
// Postconditions:
//   - Q is (N-1)×(N-1), every entry ≥ 0, Q.Sum() == N*(N-1).
//   - Deterministic: identical inputs give bit-identical Q for any options.
//
// Errors:
//   - ErrShapeMismatch, ErrInvalidInput, ErrOverflow, or ctx.Err().
//     Caller-owned inputs are never mutated, also on failure.
//
// Complexity:
//   - Time O(N² log N), Space O(N²).
func ComputeContext(ctx context.Context, hd, ld matrix.Matrix, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	if err := validateShape(hd); err != nil {
		return nil, rejectInput(ctx, o, fmt.Errorf("high-dimensional: %w", err))
	}
	if err := validateShape(ld); err != nil {
		return nil, rejectInput(ctx, o, fmt.Errorf("low-dimensional: %w", err))
	}
	// both square: a shape mismatch here is an N mismatch
	if err := matrix.ValidateSameShape(hd, ld); err != nil {
		return nil, rejectInput(ctx, o, fmt.Errorf("N mismatch: %d vs %d: %w", hd.Rows(), ld.Rows(), err))
	}

	rhd, err := RanksContext(ctx, hd, withResolved(o))
	if err != nil {
		return nil, fmt.Errorf("%s: high-dimensional: %w", opCompute, err)
	}
	rld, err := RanksContext(ctx, ld, withResolved(o))
	if err != nil {
		return nil, fmt.Errorf("%s: low-dimensional: %w", opCompute, err)
	}

	q, err := TabulateContext(ctx, rhd, rld, withResolved(o))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}

	return q, nil
}

// rejectInput tags a structural failure as ErrShapeMismatch. Caller mistakes
// are returned, so they are only logged at Debug.
func rejectInput(ctx context.Context, o Options, cause error) error {
	err := kindErrorf(opCompute, ErrShapeMismatch, cause)
	o.logger.DebugContext(ctx, "compute rejected input", "error", err)

	return err
}

// withResolved re-applies an already gathered Options value so the staged
// entry points share one logger, collector and worker count.
func withResolved(resolved Options) Option {
	return func(o *Options) { *o = resolved }
}
