// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go - RandomSparse(n, p) and RandomEdges(n, m).
//
// Contract (RandomSparse):
//   - n ≥ 1 and p ∈ [0,1]; rng required when 0 < p < 1.
//   - Trial order: i asc, then j asc over j>i (or all j≠i with WithOrderedPairs).
//
// Contract (RandomEdges):
//   - n ≥ 1, m ≥ 0; rng required when m > 0.
//   - Draws m endpoints pairs uniformly (loops and duplicates allowed; the
//     boolean matrix collapses them). O(m), suited to large benchmark graphs.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	methodRandomEdges       = "RandomEdges"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor sampling an Erdős–Rényi G(n,p) graph.
func RandomSparse(n int, p float64) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		el.AddVertex(cfg.id(n - 1))
		keep := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}
		for i := 0; i < n; i++ {
			j := i + 1
			if cfg.orderedPairs {
				j = 0
			}
			for ; j < n; j++ {
				if i == j {
					continue
				}
				if keep() {
					el.AddEdge(cfg.id(i), cfg.id(j))
				}
			}
		}

		return nil
	}
}

// RandomEdges returns a Constructor drawing m uniform random pairs over n vertices.
func RandomEdges(n, m int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < minRandomSparseVertices || m < 0 {
			return fmt.Errorf("%s: n=%d m=%d: %w", methodRandomEdges, n, m, ErrTooFewVertices)
		}
		if cfg.rng == nil && m > 0 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomEdges, ErrNeedRandSource)
		}

		el.AddVertex(cfg.id(n - 1))
		for k := 0; k < m; k++ {
			el.AddEdge(cfg.id(cfg.rng.Intn(n)), cfg.id(cfg.rng.Intn(n)))
		}

		return nil
	}
}
