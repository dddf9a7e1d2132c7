// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - BuildEdges(bopts, cons...) resolves cfg once and runs cons in order.
//   - BuildGraph(mopts, bopts, cons...) additionally builds the CSR matrix,
//     fixing its vertex count to the generated one unless mopts override it.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/msbfs/matrix"
)

// Constructor appends a deterministic topology to el using the resolved
// builderConfig. Constructors validate parameters before touching el.
type Constructor func(el *EdgeList, cfg builderConfig) error

// EdgeList accumulates generated edges and the vertex range they span.
type EdgeList struct {
	edges []matrix.Edge
	n     int
}

// AddVertex makes v part of the vertex range even without incident edges.
func (el *EdgeList) AddVertex(v int) {
	if v+1 > el.n {
		el.n = v + 1
	}
}

// AddEdge appends u→v and extends the vertex range.
func (el *EdgeList) AddEdge(u, v int) {
	el.AddVertex(u)
	el.AddVertex(v)
	el.edges = append(el.edges, matrix.Edge{From: u, To: v})
}

// Edges returns the generated edges in emission order.
func (el *EdgeList) Edges() []matrix.Edge { return el.edges }

// VertexCount returns max emitted vertex id + 1.
func (el *EdgeList) VertexCount() int { return el.n }

// BuildEdges resolves bopts and applies constructors in order.
// Any constructor error is wrapped with "BuildEdges: %w" and returned
// immediately; the partial list is discarded.
func BuildEdges(bopts []BuilderOption, cons ...Constructor) (*EdgeList, error) {
	cfg := newBuilderConfig(bopts...)
	el := &EdgeList{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildEdges: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(el, cfg); err != nil {
			return nil, fmt.Errorf("BuildEdges: %w", err)
		}
	}

	return el, nil
}

// BuildGraph runs BuildEdges and builds the adjacency matrix. The generated
// vertex count is applied first so isolated vertices survive; mopts are
// applied after it and may override it.
func BuildGraph(mopts []matrix.Option, bopts []BuilderOption, cons ...Constructor) (*matrix.AdjacencyMatrix, error) {
	el, err := BuildEdges(bopts, cons...)
	if err != nil {
		return nil, err
	}
	opts := make([]matrix.Option, 0, len(mopts)+1)
	if el.n > 0 {
		opts = append(opts, matrix.WithVertexCount(el.n))
	}
	opts = append(opts, mopts...)

	am, err := matrix.Build(el.edges, opts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return am, nil
}
