// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/corank/matrix"
	"github.com/stretchr/testify/require"
)

// TestOptions_LastWins verifies options apply in order and nil entries are skipped.
func TestOptions_LastWins(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf(), nil, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	m, err = matrix.NewDense(1, 1, matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, math.NaN()))
}

// TestOptions_ScalePreservesPolicy checks the policy flag carries over to Scale results.
func TestOptions_ScalePreservesPolicy(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFrom([][]float64{{math.MaxFloat64}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	s, err := matrix.Scale(m, 10)
	require.NoError(t, err)
	v, _ := s.At(0, 0)
	require.True(t, math.IsInf(v, 1))
	require.NoError(t, s.Set(0, 0, math.NaN()))
}
