// SPDX-License-Identifier: MIT
// Package matrix - CSR boolean adjacency builder and read-only queries.
//
// Deliverables:
//   1) Undirected mirroring: (u,v) also inserts (v,u); loops are stored once.
//   2) Duplicate entries collapse (boolean relation).
//   3) Rows sorted ascending, so the result is independent of input order.
//   4) Immutable after Build; queries are lock-free.

package matrix

import (
	"fmt"
	"slices"
)

// AdjacencyMatrix is the boolean relation adj[j][k] over vertices [0, n).
// Row j occupies targets[offsets[j]:offsets[j+1]].
type AdjacencyMatrix struct {
	n        int
	offsets  []int
	targets  []int
	directed bool
}

// Build constructs an AdjacencyMatrix from edges.
// Implementation:
//   - Stage 1: surface option violations and reject an empty edge list.
//   - Stage 2: validate endpoints and resolve n (explicit or max id + 1).
//   - Stage 3: count out-degrees (mirrored when undirected) and scatter.
//   - Stage 4: sort and deduplicate every row, compacting in place.
//
// Errors:
//   - ErrBadVertexCount, ErrEmptyGraph, ErrMalformedEdge.
//
// Complexity:
//   - Time O(n + m log d), Space O(n + m).
func Build(edges []Edge, opts ...Option) (*AdjacencyMatrix, error) {
	o := NewOptions(opts...)
	if o.err != nil {
		return nil, o.err
	}
	if len(edges) == 0 {
		return nil, ErrEmptyGraph
	}

	inferred, err := validateEdges(edges, o.vertexCount)
	if err != nil {
		return nil, err
	}
	n := inferred
	if o.vertexCount > 0 {
		n = o.vertexCount
	}

	// Count entries per row; mirrored loops would only duplicate (v,v).
	counts := make([]int, n+1)
	for _, e := range edges {
		counts[e.From+1]++
		if !o.directed && e.From != e.To {
			counts[e.To+1]++
		}
	}
	for i := 1; i <= n; i++ {
		counts[i] += counts[i-1]
	}

	targets := make([]int, counts[n])
	cursor := make([]int, n)
	copy(cursor, counts[:n])
	for _, e := range edges {
		targets[cursor[e.From]] = e.To
		cursor[e.From]++
		if !o.directed && e.From != e.To {
			targets[cursor[e.To]] = e.From
			cursor[e.To]++
		}
	}

	// Sort + dedup each row, sliding rows left over removed duplicates.
	offsets := make([]int, n+1)
	w := 0
	for j := 0; j < n; j++ {
		row := targets[counts[j]:counts[j+1]]
		slices.Sort(row)
		row = slices.Compact(row)
		offsets[j] = w
		w += copy(targets[w:], row)
	}
	offsets[n] = w

	return &AdjacencyMatrix{
		n:        n,
		offsets:  offsets,
		targets:  slices.Clip(targets[:w]),
		directed: o.directed,
	}, nil
}

// RowCount returns n, the number of vertices (rows and columns).
func (am *AdjacencyMatrix) RowCount() int {
	if am == nil {
		return 0
	}

	return am.n
}

// NNZ returns the number of stored true entries.
func (am *AdjacencyMatrix) NNZ() int {
	if am == nil {
		return 0
	}

	return len(am.targets)
}

// Directed reports whether the relation was built without mirroring.
func (am *AdjacencyMatrix) Directed() bool {
	return am != nil && am.directed
}

// Neighbors returns the sorted out-neighbors of v. The slice aliases
// internal storage and must not be modified. Out-of-range v yields nil.
func (am *AdjacencyMatrix) Neighbors(v int) []int {
	if am == nil || v < 0 || v >= am.n {
		return nil
	}

	return am.targets[am.offsets[v]:am.offsets[v+1]:am.offsets[v+1]]
}

// OutDegree returns |Neighbors(v)|, or 0 when v is out of range.
func (am *AdjacencyMatrix) OutDegree(v int) int {
	if am == nil || v < 0 || v >= am.n {
		return 0
	}

	return am.offsets[v+1] - am.offsets[v]
}

// Has reports whether adj[u][v] holds.
func (am *AdjacencyMatrix) Has(u, v int) bool {
	if am == nil || v < 0 || v >= am.n {
		return false
	}
	_, found := slices.BinarySearch(am.Neighbors(u), v)

	return found
}

// Edges returns every stored entry as an Edge in row-major order.
// For undirected matrices both orientations are listed.
func (am *AdjacencyMatrix) Edges() []Edge {
	if am == nil {
		return nil
	}
	out := make([]Edge, 0, len(am.targets))
	for j := 0; j < am.n; j++ {
		for _, k := range am.Neighbors(j) {
			out = append(out, Edge{From: j, To: k})
		}
	}

	return out
}

// CheckVertex returns ErrOutOfRange (wrapped) if v is not in [0, n),
// or ErrNilMatrix for a nil receiver.
func (am *AdjacencyMatrix) CheckVertex(v int) error {
	if am == nil {
		return ErrNilMatrix
	}
	if v < 0 || v >= am.n {
		return fmt.Errorf("%w: vertex %d not in [0,%d)", ErrOutOfRange, v, am.n)
	}

	return nil
}
