// Package matrix provides the sparse boolean adjacency relation that the
// multi-source BFS driver expands frontiers through.
//
// The relation adj[j][k] is stored in compressed sparse row (CSR) form:
// one offsets slice of length n+1 and one targets slice holding every
// column index. Rows are sorted ascending and deduplicated at build time,
// so the relation never depends on the order of the input edges and
// parallel edges collapse, as a boolean relation should.
//
// What
//
//   - Build an AdjacencyMatrix from an edge list with Build(edges, opts...).
//   - Undirected (default) mirrors every (u,v) into (v,u); WithDirected keeps
//     the input orientation.
//   - The vertex count n is inferred as max id + 1 unless WithVertexCount(n)
//     fixes it, which also lets isolated trailing vertices exist.
//   - Read-only queries: Neighbors, OutDegree, Has, RowCount, NNZ, Edges.
//
// Concurrency
//
//	An AdjacencyMatrix is immutable after Build returns. All query methods
//	are safe for concurrent use without locking; Neighbors returns a view
//	into internal storage that callers must not modify.
//
// Complexity
//
//	Build is O(n + m log d) time for m stored entries and max out-degree d
//	(per-row sort), O(n + m) space. Neighbors and OutDegree are O(1);
//	Has is O(log d).
package matrix
