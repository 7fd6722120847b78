// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/corank/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 3}, {0, 0}} {
		_, err := matrix.NewDense(dims[0], dims[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "dims=%v", dims)
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()
	m := mustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 4.5))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
}

func TestDense_SetNumericPolicy(t *testing.T) {
	t.Parallel()
	strict := mustDense(t, 1, 1)
	assert.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))
	v, _ := loose.At(0, 0)
	assert.True(t, math.IsInf(v, 1))
}

func TestNewDenseFrom(t *testing.T) {
	t.Parallel()

	t.Run("copies data", func(t *testing.T) {
		src := [][]float64{{0, 1, 2}, {1, 0, 3}}
		m, err := matrix.NewDenseFrom(src)
		require.NoError(t, err)
		r, c := m.Shape()
		assert.Equal(t, 2, r)
		assert.Equal(t, 3, c)

		src[0][1] = 99 // caller keeps ownership; no aliasing
		v, _ := m.At(0, 1)
		assert.Equal(t, 1.0, v)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := matrix.NewDenseFrom(nil)
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		_, err = matrix.NewDenseFrom([][]float64{{}})
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	})

	t.Run("ragged", func(t *testing.T) {
		_, err := matrix.NewDenseFrom([][]float64{{0, 1}, {1}})
		assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	})

	t.Run("nan rejected by default", func(t *testing.T) {
		_, err := matrix.NewDenseFrom([][]float64{{0, math.NaN()}, {1, 0}})
		assert.ErrorIs(t, err, matrix.ErrNaNInf)
	})

	t.Run("nan kept without policy", func(t *testing.T) {
		m, err := matrix.NewDenseFrom([][]float64{{0, math.NaN()}, {1, 0}}, matrix.WithNoValidateNaNInf())
		require.NoError(t, err)
		v, _ := m.At(0, 1)
		assert.True(t, math.IsNaN(v))
	})
}

func TestDense_RowAndRawRow(t *testing.T) {
	t.Parallel()
	m := mustFrom(t, [][]float64{{1, 2}, {3, 4}})

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, row)
	row[0] = 42 // copy, base untouched
	v, _ := m.At(1, 0)
	assert.Equal(t, 3.0, v)

	_, err = m.Row(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	raw := m.RawRow(0)
	assert.Equal(t, []float64{1, 2}, raw)
	assert.Equal(t, 2, cap(raw), "raw row must not expose the next row through append")
}
