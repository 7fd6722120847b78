// SPDX-License-Identifier: MIT
// Package matrix provides the two kernels used around dissimilarity inputs:
// scalar scaling and exact equality.
// All functions perform strict fail-fast validation and return clear
// errors on nil or mismatched operands.
//
// Notes:
//   - All kernels use central validators and wrap failures via matrixErrorf.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opScale = "Scale"
	opEqual = "Equal"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// The original matrix is never mutated. Positive alpha preserves every
// per-row ordering of m, which makes Scale handy for rank-invariance checks.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(rows, cols).
//   - Stage 2: If *Dense, flat multiply; else generic i→j At/Set scaling.
//
// Errors:
//   - ErrNilMatrix, allocation errors, ErrNaNInf from Set when the product overflows.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	var i, j int
	var v float64
	if dm, ok := m.(*Dense); ok {
		res.validateNaNInf = dm.validateNaNInf
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				if err = res.Set(i, j, dm.data[i*cols+j]*alpha); err != nil {
					return nil, matrixErrorf(opScale, err)
				}
			}
		}
		return res, nil
	}

	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
		}
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and bitwise-equal
// entries (==, so NaN never equals NaN and +0 equals -0).
// Errors: ErrNilMatrix; wrapped At errors on non-Dense operands.
// Complexity: O(r*c).
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for idx := range da.data {
			if da.data[idx] != db.data[idx] {
				return false, nil
			}
		}
		return true, nil
	}

	var i, j int
	var va, vb float64
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if va, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opEqual, err)
			}
			if vb, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opEqual, err)
			}
			if va != vb {
				return false, nil
			}
		}
	}

	return true, nil
}
