// Package matrix stores dissimilarity matrices for rank-based analysis.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix over a flat slice with safe At/Set
//     accessors (errors, never panics) and an optional finite-only policy.
//   - NewDenseFrom for copying caller-owned [][]float64 data in one pass.
//   - Central validators (ValidateSquare, ValidateFinite,
//     ValidateNonNegative, ...) returning plain sentinels.
//   - Scale and Equal, for building and comparing dissimilarity inputs.
//
// All loops run in a fixed i→j order so results are reproducible bit for bit.
//
// See the examples in this package and in coranking for usage patterns.
package matrix
