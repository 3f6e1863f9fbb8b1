// SPDX-License-Identifier: MIT
// Package: reebskel/meshgen
//
// impl_diamond.go — Diamond(): two triangles sharing one edge.
//
// Layout (Y up):
//
//	      3 (0,+1)
//	     / \
//	(-1,0)2--- 1 (+1,0)     shared edge is 0–3
//	     \ /
//	      0 (0,-1)
//
// Vertices 1 and 2 sit at the same Y, so under a Y field the two per-triangle
// paths 0→1→3 and 0→2→3 start out as a loop.

package meshgen

import "gonum.org/v1/gonum/spatial/r3"

// Diamond returns a Constructor for the two-triangle diamond.
func Diamond() Constructor {
	return func(b *Buffer, cfg config) error {
		s := cfg.spacing
		v0 := b.AddVertex(cfg.place(r3.Vec{Y: -s}))
		v1 := b.AddVertex(cfg.place(r3.Vec{X: s}))
		v2 := b.AddVertex(cfg.place(r3.Vec{X: -s}))
		v3 := b.AddVertex(cfg.place(r3.Vec{Y: s}))
		b.AddTriangle(v0, v1, v3)
		b.AddTriangle(v0, v3, v2)
		return nil
	}
}
