// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); K_1 is a single isolated vertex.
//   - Emits every ordered pair (i,j), i≠j, i asc then j asc, so the result
//     is complete under both directed and undirected builds.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		el.AddVertex(cfg.id(n - 1))
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					el.AddEdge(cfg.id(i), cfg.id(j))
				}
			}
		}

		return nil
	}
}
