// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/corank/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScale(t *testing.T) {
	t.Parallel()
	a := mustFrom(t, [][]float64{{0, 1}, {2, 0}})

	s, err := matrix.Scale(a, 5)
	require.NoError(t, err)
	want := mustFrom(t, [][]float64{{0, 5}, {10, 0}})
	eq, err := matrix.Equal(s, want)
	require.NoError(t, err)
	assert.True(t, eq)

	s2, err := matrix.Scale(hide{a}, 5)
	require.NoError(t, err)
	eq, _ = matrix.Equal(s2, want)
	assert.True(t, eq)

	_, err = matrix.Scale(mustFrom(t, [][]float64{{math.MaxFloat64}}), 10)
	assert.ErrorIs(t, err, matrix.ErrNaNInf, "overflow to +Inf must trip the numeric policy")

	_, err = matrix.Scale(nil, 2)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// A positive factor keeps every per-row ordering, the property rank-based
// comparisons rely on.
func TestScale_PreservesRowOrder(t *testing.T) {
	t.Parallel()
	a := mustDense(t, 4, 4)
	fillDenseRand(t, a, 11)
	s, err := matrix.Scale(a, 3.5)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				aj, _ := a.At(i, j)
				ak, _ := a.At(i, k)
				sj, _ := s.At(i, j)
				sk, _ := s.At(i, k)
				assert.Equal(t, aj < ak, sj < sk, "row %d: (%d,%d)", i, j, k)
			}
		}
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()
	a := mustFrom(t, [][]float64{{0, 1}, {2, 0}})
	b := mustFrom(t, [][]float64{{0, 1}, {2, 0}})
	c := mustFrom(t, [][]float64{{0, 1}, {2, 1}})

	eq, err := matrix.Equal(a, b)
	require.NoError(t, err)
	assert.True(t, eq)

	eq, _ = matrix.Equal(a, c)
	assert.False(t, eq)
	eq, _ = matrix.Equal(hide{a}, c)
	assert.False(t, eq)

	eq, err = matrix.Equal(a, mustDense(t, 2, 3))
	require.NoError(t, err)
	assert.False(t, eq, "shape mismatch is inequality, not an error")

	_, err = matrix.Equal(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
