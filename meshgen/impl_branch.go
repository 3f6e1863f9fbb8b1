// SPDX-License-Identifier: MIT
// Package: reebskel/meshgen
//
// impl_branch.go — Branch(stem, left, right): a planar "Y" in the XZ plane.
//
// Contract:
//   • stem ≥ 1, left ≥ 1, right ≥ 1 (else ErrTooSmall).
//   • The stem is a vertical strip of width 2·halfWidth rising from z=0 to
//     z=stem·spacing. On top of it a junction triangle carries the crotch
//     vertex one row higher; from there two strips leave diagonally up-left
//     and up-right with left and right rows respectively.
//   • Under a Z field the crotch is the only split saddle, so the skeleton is
//     one stem arc and two arm arcs whose lengths follow left and right.

package meshgen

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	methodBranch = "Branch"
	minArm       = 1
)

// Branch returns a Constructor for a Y-shaped strip with the given row counts.
func Branch(stem, left, right int) Constructor {
	return func(b *Buffer, cfg config) error {
		// 1) Validate parameters early.
		if stem < minSegments || left < minArm || right < minArm {
			return fmt.Errorf("%s: stem=%d, left=%d, right=%d: %w", methodBranch, stem, left, right, ErrTooSmall)
		}
		s, w := cfg.spacing, cfg.halfWidth
		at := func(x, z float64) int { return b.AddVertex(cfg.place(r3.Vec{X: x, Z: z})) }

		// 2) Stem rows 0..stem.
		var sl, sr int
		for j := 0; j <= stem; j++ {
			l := at(-w, float64(j)*s)
			r := at(w, float64(j)*s)
			if j > 0 {
				b.addQuad(sl, sr, r, l, cfg.quads)
			}
			sl, sr = l, r
		}

		// 3) Junction triangle with the crotch above the stem top.
		topZ := float64(stem) * s
		crotch := at(0, topZ+s)
		b.AddTriangle(sl, sr, crotch)

		// 4) Left arm: rows slide by (-s, +s) from the edge (stem-left, crotch).
		outer, inner := sl, crotch
		for k := 1; k <= left; k++ {
			d := float64(k) * s
			o := at(-w-d, topZ+d)
			i := at(-d, topZ+s+d)
			b.addQuad(outer, inner, i, o, cfg.quads)
			outer, inner = o, i
		}

		// 5) Right arm: rows slide by (+s, +s) from the edge (crotch, stem-right).
		inner, outer = crotch, sr
		for k := 1; k <= right; k++ {
			d := float64(k) * s
			i := at(d, topZ+s+d)
			o := at(w+d, topZ+d)
			b.addQuad(outer, o, i, inner, cfg.quads)
			inner, outer = i, o
		}
		return nil
	}
}
