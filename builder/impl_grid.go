// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex (r,c) has local id r*cols + c.
//   - Emits right and down neighbors in row-major order.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		el.AddVertex(cfg.id(rows*cols - 1))
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					el.AddEdge(cfg.id(u), cfg.id(u+1))
				}
				if r+1 < rows {
					el.AddEdge(cfg.id(u), cfg.id(u+cols))
				}
			}
		}

		return nil
	}
}
