// Package corank measures how faithfully a low-dimensional embedding keeps
// the neighborhoods of its source data, using co-ranking matrices.
//
// 🚀 What is corank?
//
//	A small, deterministic library that brings together:
//		• Dissimilarity matrices: validated dense N×N storage
//		• Rank extraction: per-point neighbor rankings with explicit tie-breaks
//		• Co-ranking tabulation: exact (N-1)×(N-1) count matrices
//		• Parallel execution: bounded workers, cancellable via context
//
// ✨ Why choose corank?
//
//   - Reproducible – identical inputs give bit-identical output for any worker count
//   - Strict – NaN, ±Inf, negative and ragged inputs fail fast with sentinel errors
//   - Observable – slog logging and a pluggable MetricsCollector
//   - Bounded – partial accumulators respect a configurable memory cap
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/    - Dense storage, validators, Scale/Equal helpers
//	coranking/ - Ranks, Tabulate, Compute and the RankMatrix / Matrix results
//
// Quick example:
//
//	dhd, _ := matrix.NewDenseFrom(highDim)
//	dld, _ := matrix.NewDenseFrom(lowDim)
//	q, err := coranking.Compute(dhd, dld)
//	// q.IsDiagonal() == true when every neighbor ordering survived
//
// A runnable walkthrough lives in examples/embedding_quality.
//
//	go get github.com/katalvlaran/corank
package corank
