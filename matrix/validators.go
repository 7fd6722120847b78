// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/value checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; structural checks allocate nothing.
//  - Value scans (ValidateFinite, ValidateNonNegative) run O(r*c) in i→j order
//    and report the first offending coordinate.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Square).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface counts as nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure). Compute uses it to
// reject a high/low-dimensional pair over different point counts.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
// Errors: ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateFinite scans m and fails on the first NaN or ±Inf.
//
// Implementation:
//   - Stage 1: NotNil.
//   - Stage 2: *Dense fast-path over the flat buffer; At fallback otherwise.
//
// Errors: ErrNilMatrix, ErrNaNInf (with coordinates), wrapped At errors.
// Complexity: O(r*c), no allocations on the fast path.
func ValidateFinite(m Matrix) error {
	return scanValues("ValidateFinite", m, func(v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
		return nil
	})
}

// ValidateNonNegative scans m and fails on the first entry < 0.
// NaN compares false against 0 and is therefore NOT reported here;
// run ValidateFinite first when NaN must be rejected.
// Errors: ErrNilMatrix, ErrNegative (with coordinates).
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	return scanValues("ValidateNonNegative", m, func(v float64) error {
		if v < 0 {
			return ErrNegative
		}
		return nil
	})
}

// scanValues applies check to every element in i→j order and wraps the first
// failure as "<tag>: (i,j): <sentinel>".
func scanValues(tag string, m Matrix, check func(v float64) error) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(tag, err)
	}

	var bad error
	var bi, bj int
	if d, ok := m.(*Dense); ok {
	rows:
		for i := 0; i < d.r; i++ {
			for j, v := range d.RawRow(i) {
				if err := check(v); err != nil {
					bad, bi, bj = err, i, j
					break rows // stop at first offender
				}
			}
		}
	} else {
		var (
			i, j int
			v    float64
			err  error
		)
	scan:
		for i = 0; i < m.Rows(); i++ {
			for j = 0; j < m.Cols(); j++ {
				if v, err = m.At(i, j); err != nil {
					return validatorErrorf(tag, err)
				}
				if err = check(v); err != nil {
					bad, bi, bj = err, i, j
					break scan
				}
			}
		}
	}
	if bad != nil {
		return fmt.Errorf("%s: (%d,%d): %w", tag, bi, bj, bad)
	}

	return nil
}
