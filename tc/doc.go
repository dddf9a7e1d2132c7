// Package tc counts triangles of an undirected matrix.AdjacencyMatrix.
//
// Two formulations of the same count are offered:
//
//	Burkhardt  sum((A·A) ∘ A) / 6 over the full symmetric adjacency;
//	           every triangle is seen once per ordered vertex triple.
//	Sandia     sum((L·L) ∘ L) over the strict lower triangle L;
//	           every triangle a > b > c is seen exactly once.
//
// Both walk the sorted CSR rows directly: the masked product entry for
// (i, j) is the size of the intersection of rows i and j, so no product
// matrix is materialized. Self-loops never close a triangle and are skipped.
//
// Rows are split into chunks that run on an errgroup bounded by
// WithWorkers; the context is checked before every chunk.
package tc
