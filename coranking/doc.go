// Package coranking builds co-ranking matrices for judging how well a
// low-dimensional embedding preserves the neighborhoods of the original data.
//
// 🚀 What is a co-ranking matrix?
//
//	Given N points, a high-dimensional dissimilarity matrix D_hd and the
//	dissimilarities D_ld of their embedding, every reference point i ranks
//	all other points by distance in both spaces. Q[k][l] counts the ordered
//	pairs (i,j) where j is the (k+1)-th neighbor of i in the original space
//	and the (l+1)-th neighbor in the embedding. A perfect embedding yields a
//	diagonal Q; mass far from the diagonal means torn or collapsed
//	neighborhoods.
//
// ✨ Key features:
//   - explicit, deterministic ranks: self first, then ascending
//     dissimilarity, ties broken by ascending index
//   - exact int64 counts, Sum(Q) == N*(N-1) for every valid input
//   - result allocated at its final (N-1)×(N-1) shape, no trim pass
//   - parallel rows and partitioned accumulators (errgroup), bit-identical
//     to the sequential result
//   - context cancellation that discards partial work
//   - slog logging and a MetricsCollector hook
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/corank/coranking"
//
//	q, err := coranking.Compute(dhd, dld,
//	  coranking.WithWorkers(4),
//	  coranking.WithMetrics(&coranking.BasicMetricsCollector{}),
//	)
//
//	// staged, when ranks are reused across embeddings
//	rhd, _ := coranking.Ranks(dhd)
//	rld, _ := coranking.Ranks(dld)
//	q, err = coranking.Tabulate(rhd, rld)
//
// Performance:
//
//   - Ranks:    O(N² log N) time, O(N²) memory
//   - Tabulate: O(N²) time, O((N-1)²) memory per partial accumulator
//     (bounded by WithMaxAccumulatorBytes)
//
// Errors: ErrShapeMismatch, ErrInvalidInput, ErrOverflow, plus ctx.Err()
// from the *Context variants.
package coranking
