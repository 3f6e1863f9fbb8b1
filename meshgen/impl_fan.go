// SPDX-License-Identifier: MIT
// Package: reebskel/meshgen
//
// impl_fan.go — Fan(branches, segments): strips sharing one root vertex.
//
// Contract:
//   • branches ≥ 2, segments ≥ 1 (else ErrTooSmall).
//   • Vertex 0 of the shape is the root at the origin.
//   • Branch k leaves the root at azimuth 2πk/branches and rises: its row j
//     (1..segments) is centred at (j·s·cosθ, j·s·sinθ, j·s) and made of two
//     vertices offset by ±halfWidth along the horizontal tangent.
//   • The root is the unique lowest vertex in Z; each strip is monotone in Z,
//     so a Z field yields one branch node and one terminal per strip.

package meshgen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	methodFan      = "Fan"
	minFanBranches = 2
	minSegments    = 1
)

// Fan returns a Constructor for a tripod-like fan of strips. Fan(3, n) is the
// canonical three-legged tripod.
func Fan(branches, segments int) Constructor {
	return func(b *Buffer, cfg config) error {
		// 1) Validate parameters early.
		if branches < minFanBranches || segments < minSegments {
			return fmt.Errorf("%s: branches=%d, segments=%d: %w", methodFan, branches, segments, ErrTooSmall)
		}

		// 2) Shared root.
		root := b.AddVertex(cfg.place(r3.Vec{}))

		// 3) One strip per branch.
		for k := 0; k < branches; k++ {
			theta := 2 * math.Pi * float64(k) / float64(branches)
			dir := r3.Vec{X: math.Cos(theta), Y: math.Sin(theta)}
			tan := r3.Vec{X: -math.Sin(theta), Y: math.Cos(theta)}

			prevL, prevR := -1, -1
			for j := 1; j <= segments; j++ {
				h := float64(j) * cfg.spacing
				c := r3.Add(r3.Scale(h, dir), r3.Vec{Z: h})
				l := b.AddVertex(cfg.place(r3.Sub(c, r3.Scale(cfg.halfWidth, tan))))
				r := b.AddVertex(cfg.place(r3.Add(c, r3.Scale(cfg.halfWidth, tan))))
				if j == 1 {
					b.AddTriangle(root, r, l)
				} else {
					b.addQuad(prevL, prevR, r, l, cfg.quads)
				}
				prevL, prevR = l, r
			}
		}
		return nil
	}
}
