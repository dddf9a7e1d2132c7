// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors return these sentinels (optionally wrapped with %w for
// context) and tests check them via errors.Is. Nothing in this package
// panics on user-triggered conditions; option constructors record the
// violation and Build surfaces it.

package matrix

import "errors"

var (
	// ErrEmptyGraph is returned by Build when the edge list is empty.
	ErrEmptyGraph = errors.New("matrix: graph has no edges")

	// ErrMalformedEdge indicates an edge endpoint that is negative, at or
	// above MaxVertices, or not below the vertex count once that is known.
	ErrMalformedEdge = errors.New("matrix: malformed edge")

	// ErrBadVertexCount indicates an explicit vertex count outside [1, MaxVertices].
	ErrBadVertexCount = errors.New("matrix: vertex count out of range")

	// ErrOutOfRange indicates a query index outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *AdjacencyMatrix was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
