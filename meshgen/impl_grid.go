// SPDX-License-Identifier: MIT
// Package: reebskel/meshgen
//
// impl_grid.go — Grid(rows, cols): planar rows×cols cell grid in XY.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooSmall).
//   • (rows+1)·(cols+1) vertices in row-major order, vertex (r,c) at
//     (c·spacing, r·spacing, 0).
//   • Each cell emits a quad (WithQuads) or two triangles split along the
//     (r,c)→(r+1,c+1) diagonal.

package meshgen

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols grid of cells.
func Grid(rows, cols int) Constructor {
	return func(b *Buffer, cfg config) error {
		// 1) Validate parameters early.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooSmall)
		}

		// 2) Vertices in row-major order.
		base := len(b.positions)
		id := func(r, c int) int { return base + r*(cols+1) + c }
		for r := 0; r <= rows; r++ {
			for c := 0; c <= cols; c++ {
				b.AddVertex(cfg.place(r3.Vec{X: float64(c) * cfg.spacing, Y: float64(r) * cfg.spacing}))
			}
		}

		// 3) One quad per cell, counter-clockwise seen from +Z.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				b.addQuad(id(r, c), id(r, c+1), id(r+1, c+1), id(r+1, c), cfg.quads)
			}
		}
		return nil
	}
}
