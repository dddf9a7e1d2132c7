// Package msbfs computes multi-source breadth-first search parent trees over
// a matrix.AdjacencyMatrix, one independent tree per source vertex.
//
// What
//
//   - Level-synchronous frontier propagation, written as the boolean
//     "semiring" step of the GraphBLAS formulation: the frontier of source i
//     is expanded through adj, every reached column k is tagged with one
//     predecessor j, candidates already visited by source i are masked out,
//     and the survivors are committed as the next frontier.
//   - Returns a ParentTable: parent[i][v] is the predecessor of v in source
//     i's shortest-path tree, parent[i][source_i] == source_i, and Unset (-1)
//     marks vertices source i never reached.
//   - Optional depth table (WithDepth), depth limit (WithMaxDepth), per-level
//     hook (WithOnLevel) and structured logging (WithLogger).
//
// Predecessor choice
//
//	When several frontier vertices reach the same k in one level, the
//	TieBreak policy decides which one becomes parent[i][k]:
//
//	  TieBreakMinID      smallest predecessor id (default; deterministic)
//	  TieBreakFirstScan  first frontier position in discovery order
//	                     (deterministic, also under parallel expansion)
//	  TieBreakAny        first compare-and-set to land; non-deterministic
//	                     when a level is expanded by several goroutines
//
//	Reachability never depends on the policy; only parent values do.
//
// Concurrency
//
//	Sources run as independent state machines on a bounded errgroup
//	(WithWorkers). A large frontier of a single source is additionally split
//	into chunks (WithParallelThreshold) whose candidate writes are merged by
//	an atomic compare-and-set per column. Levels of one source never overlap:
//	a level commits completely before the next expansion starts. The
//	adjacency matrix is shared read-only.
//
// Complexity
//
//	Per source and level, O(Σ out-degree of the frontier) time. Memory is
//	O(s·n) for the table plus O(n) scratch per concurrently running source.
package msbfs
