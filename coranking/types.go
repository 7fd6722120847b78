// SPDX-License-Identifier: MIT

// Package coranking: result types.
//
// RankMatrix and Matrix are immutable after construction: all fields are
// unexported, accessors return copies, and the only constructors are the
// validated entry points (Ranks, NewRankMatrix, Tabulate, Compute). The
// caller owns every returned value.
package coranking

import (
	"fmt"
	"math"
	"strings"
)

// RankMatrix is an N×N row-major table of 1-based ranks: R[i][j] is the
// position of point j in the ascending-dissimilarity ordering seen from
// reference point i. Every row is a permutation of 1..N and R[i][i] == 1.
type RankMatrix struct {
	n    int
	data []int // len == n*n
}

// NewRankMatrix copies caller-held ranks into a RankMatrix and validates them.
// Useful when ranks come from another pipeline and only Tabulate is needed.
//
// Errors:
//   - ErrShapeMismatch: fewer than 2 rows, or any row of length != len(rows).
//   - ErrInvalidInput : a row is not a permutation of 1..N with self at rank 1.
//
// Complexity: O(N²) time and space.
func NewRankMatrix(rows [][]int) (*RankMatrix, error) {
	n := len(rows)
	if n < 2 {
		return nil, kindErrorf(opNewRank, ErrShapeMismatch, fmt.Errorf("need at least 2 points, got %d", n))
	}
	r := &RankMatrix{n: n, data: make([]int, n*n)}
	for i := 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, kindErrorf(opNewRank, ErrShapeMismatch, fmt.Errorf("row %d has %d cols, want %d", i, len(rows[i]), n))
		}
		copy(r.data[i*n:(i+1)*n], rows[i])
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// N returns the number of points.
func (r *RankMatrix) N() int { return r.n }

// At returns the rank of point j as seen from point i.
// Errors: ErrShapeMismatch when (i,j) is out of range.
func (r *RankMatrix) At(i, j int) (int, error) {
	if i < 0 || i >= r.n || j < 0 || j >= r.n {
		return 0, kindErrorf("RankMatrix.At", ErrShapeMismatch, fmt.Errorf("index (%d,%d) outside %d×%d", i, j, r.n, r.n))
	}

	return r.data[i*r.n+j], nil
}

// Row returns a copy of the ranks seen from point i.
func (r *RankMatrix) Row(i int) ([]int, error) {
	if i < 0 || i >= r.n {
		return nil, kindErrorf("RankMatrix.Row", ErrShapeMismatch, fmt.Errorf("row %d outside [0,%d)", i, r.n))
	}
	out := make([]int, r.n)
	copy(out, r.row(i))

	return out, nil
}

// row is the zero-copy view used by kernels.
func (r *RankMatrix) row(i int) []int {
	return r.data[i*r.n : (i+1)*r.n : (i+1)*r.n]
}

// Validate checks that every row is a permutation of 1..N and that each
// point ranks itself first.
// Errors: ErrShapeMismatch for a malformed value (N < 2), ErrInvalidInput
// with the first offending coordinate otherwise.
// Complexity: O(N²) time, O(N) scratch.
func (r *RankMatrix) Validate() error {
	if r == nil || r.n < 2 || len(r.data) != r.n*r.n {
		return kindErrorf(opValidateRank, ErrShapeMismatch, nil)
	}
	seen := make([]bool, r.n+1)
	var i, j, k int
	for i = 0; i < r.n; i++ {
		clear(seen)
		for j, k = range r.row(i) {
			if k < 1 || k > r.n {
				return kindErrorf(opValidateRank, ErrInvalidInput, fmt.Errorf("(%d,%d): rank %d outside 1..%d", i, j, k, r.n))
			}
			if seen[k] {
				return kindErrorf(opValidateRank, ErrInvalidInput, fmt.Errorf("(%d,%d): rank %d repeated", i, j, k))
			}
			seen[k] = true
		}
		if r.data[i*r.n+i] != 1 {
			return kindErrorf(opValidateRank, ErrInvalidInput, fmt.Errorf("(%d,%d): self rank %d, want 1", i, i, r.data[i*r.n+i]))
		}
	}

	return nil
}

// Equal reports whether r and o hold identical ranks.
func (r *RankMatrix) Equal(o *RankMatrix) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.n != o.n {
		return false
	}
	for idx := range r.data {
		if r.data[idx] != o.data[idx] {
			return false
		}
	}

	return true
}

// Matrix is the (N-1)×(N-1) co-ranking matrix Q. Q[k][l] counts ordered
// pairs (i,j), i≠j, where j has rank k+2 from i in the high-dimensional
// ranking and rank l+2 in the low-dimensional one (rank 1 is self).
// Entries are exact int64 counts; Sum() == N*(N-1).
type Matrix struct {
	size int     // N-1
	data []int64 // len == size*size, row-major
}

// Size returns N-1, the side length of Q.
func (q *Matrix) Size() int { return q.size }

// Points returns N, the number of points Q was built from.
func (q *Matrix) Points() int { return q.size + 1 }

// At returns Q[k][l].
// Errors: ErrShapeMismatch when (k,l) is out of range.
func (q *Matrix) At(k, l int) (int64, error) {
	if k < 0 || k >= q.size || l < 0 || l >= q.size {
		return 0, kindErrorf("Matrix.At", ErrShapeMismatch, fmt.Errorf("index (%d,%d) outside %d×%d", k, l, q.size, q.size))
	}

	return q.data[k*q.size+l], nil
}

// Row returns a copy of row k of Q.
func (q *Matrix) Row(k int) ([]int64, error) {
	if k < 0 || k >= q.size {
		return nil, kindErrorf("Matrix.Row", ErrShapeMismatch, fmt.Errorf("row %d outside [0,%d)", k, q.size))
	}
	out := make([]int64, q.size)
	copy(out, q.data[k*q.size:(k+1)*q.size])

	return out, nil
}

// Rows returns a copy of Q as [][]int64.
func (q *Matrix) Rows() [][]int64 {
	out := make([][]int64, q.size)
	for k := range out {
		out[k] = make([]int64, q.size)
		copy(out[k], q.data[k*q.size:(k+1)*q.size])
	}

	return out
}

// Sum returns the total count; N*(N-1) for every Q built by this package.
func (q *Matrix) Sum() int64 {
	var s int64
	for _, v := range q.data {
		s += v
	}

	return s
}

// Transpose returns Qᵀ as a new Matrix. Compute(A,B) == Compute(B,A).Transpose().
func (q *Matrix) Transpose() *Matrix {
	t := &Matrix{size: q.size, data: make([]int64, len(q.data))}
	var k, l int
	for k = 0; k < q.size; k++ {
		for l = 0; l < q.size; l++ {
			t.data[l*q.size+k] = q.data[k*q.size+l]
		}
	}

	return t
}

// Equal reports whether q and o hold identical counts.
func (q *Matrix) Equal(o *Matrix) bool {
	if q == nil || o == nil {
		return q == o
	}
	if q.size != o.size {
		return false
	}
	for idx := range q.data {
		if q.data[idx] != o.data[idx] {
			return false
		}
	}

	return true
}

// IsDiagonal reports whether every off-diagonal count is zero, i.e. both
// rankings agree for every ordered pair.
func (q *Matrix) IsDiagonal() bool {
	var k, l int
	for k = 0; k < q.size; k++ {
		for l = 0; l < q.size; l++ {
			if k != l && q.data[k*q.size+l] != 0 {
				return false
			}
		}
	}

	return true
}

// Int32s exports Q as [][]int32 for consumers with 32-bit storage.
// Errors: ErrOverflow when any entry exceeds math.MaxInt32; nothing is
// returned in that case.
func (q *Matrix) Int32s() ([][]int32, error) {
	for idx, v := range q.data {
		if v > math.MaxInt32 {
			return nil, kindErrorf(opInt32s, ErrOverflow, fmt.Errorf("(%d,%d)=%d", idx/q.size, idx%q.size, v))
		}
	}
	out := make([][]int32, q.size)
	for k := range out {
		out[k] = make([]int32, q.size)
		for l := 0; l < q.size; l++ {
			out[k][l] = int32(q.data[k*q.size+l])
		}
	}

	return out, nil
}

// String renders Q row by row for diagnostics.
func (q *Matrix) String() string {
	var b strings.Builder
	var k, l int
	for k = 0; k < q.size; k++ {
		b.WriteString("[")
		for l = 0; l < q.size; l++ {
			if l > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%d", q.data[k*q.size+l])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
