// SPDX-License-Identifier: MIT
// Package coranking: sentinel error set.
// All entry points fail fast with one of these sentinels before any
// accumulation starts; tests match them via errors.Is. When a matrix-level
// sentinel is the underlying cause it is joined as a second %w, so both
// errors.Is(err, ErrShapeMismatch) and errors.Is(err, matrix.ErrNonSquare)
// hold on the same value.

package coranking

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when an input is nil, not square, smaller
	// than 2×2, or when the two inputs disagree in size.
	ErrShapeMismatch = errors.New("coranking: shape mismatch")

	// ErrInvalidInput is returned for NaN/±Inf dissimilarities, negative
	// dissimilarities (unless WithAllowNegative), and rank rows that are not
	// permutations of 1..N with self at rank 1.
	ErrInvalidInput = errors.New("coranking: invalid input")

	// ErrOverflow is returned when a count or cell index cannot be represented
	// by the target integer width (int64 accumulator, int32 export).
	ErrOverflow = errors.New("coranking: integer overflow")
)

// Operation tags for error wrapping and log fields.
const (
	opRanks        = "Ranks"
	opTabulate     = "Tabulate"
	opCompute      = "Compute"
	opNewRank      = "NewRankMatrix"
	opValidateRank = "RankMatrix.Validate"
	opInt32s       = "Matrix.Int32s"
)

// kindErrorf tags err with the operation name and the package sentinel kind.
// cause may be nil, in which case only kind is wrapped.
func kindErrorf(op string, kind, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", op, kind)
	}

	return fmt.Errorf("%s: %w: %w", op, kind, cause)
}
