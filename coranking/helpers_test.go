// SPDX-License-Identifier: MIT
// Package coranking_test contains shared fixtures.
//
// Purpose:
//   • Build deterministic dissimilarity matrices from seeded point clouds.
//   • Keep every fixture finite and non-negative.

package coranking_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/corank/matrix"
	"github.com/stretchr/testify/require"
)

// hide masks *matrix.Dense so the At-based ingestion path is exercised.
type hide struct{ matrix.Matrix }

// scenarioHD is the 3-point fixture used across tests and examples.
var scenarioHD = [][]float64{
	{0, 1, 2},
	{1, 0, 3},
	{2, 3, 0},
}

// mustFrom builds a *Dense from literal rows or fails the test.
func mustFrom(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(tb, err)

	return m
}

// randomPoints returns n points in dim dimensions with coordinates in [0,1).
func randomPoints(n, dim int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	pts := make([][]float64, n)
	for i := range pts {
		pts[i] = make([]float64, dim)
		for k := range pts[i] {
			pts[i][k] = rng.Float64()
		}
	}

	return pts
}

// pairwise returns the Euclidean dissimilarity matrix of pts.
func pairwise(tb testing.TB, pts [][]float64) *matrix.Dense {
	tb.Helper()
	n := len(pts)
	d, err := matrix.NewDense(n, n)
	require.NoError(tb, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var s float64
			for k := range pts[i] {
				diff := pts[i][k] - pts[j][k]
				s += diff * diff
			}
			require.NoError(tb, d.Set(i, j, math.Sqrt(s)))
		}
	}

	return d
}

// project keeps the first dim coordinates of every point (a crude embedding).
func project(pts [][]float64, dim int) [][]float64 {
	out := make([][]float64, len(pts))
	for i := range pts {
		out[i] = append([]float64(nil), pts[i][:dim]...)
	}

	return out
}

// embeddingPair returns HD and LD dissimilarities for n random points.
func embeddingPair(tb testing.TB, n int, seed int64) (*matrix.Dense, *matrix.Dense) {
	tb.Helper()
	pts := randomPoints(n, 5, seed)

	return pairwise(tb, pts), pairwise(tb, project(pts, 2))
}
