// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub is local vertex 0, leaves are 1..n-1.
//   - Emits spokes hub → leaf only; build the matrix undirected (default)
//     to get leaf → hub as well.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := cfg.id(0)
		for i := 1; i < n; i++ {
			el.AddEdge(hub, cfg.id(i))
		}

		return nil
	}
}
