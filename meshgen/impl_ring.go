// SPDX-License-Identifier: MIT
// Package: reebskel/meshgen
//
// impl_ring.go — Annulus(segments) and Tube(rings, segments).
//
// Contract:
//   • Annulus: segments ≥ 3; planar ring in XY with inner radius 1 and outer
//     radius 1+2·halfWidth, scaled by spacing. Under an X field it yields one
//     topological cycle (two arcs between the inner-rim saddles).
//   • Tube: rings ≥ 1, segments ≥ 3; open cylinder of radius spacing along Z
//     with rings+1 vertex rings spaced by spacing.

package meshgen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	methodAnnulus  = "Annulus"
	methodTube     = "Tube"
	minRingSegment = 3
)

// Annulus returns a Constructor for a flat ring.
func Annulus(segments int) Constructor {
	return func(b *Buffer, cfg config) error {
		if segments < minRingSegment {
			return fmt.Errorf("%s: segments=%d: %w", methodAnnulus, segments, ErrTooSmall)
		}
		rIn := cfg.spacing
		rOut := cfg.spacing * (1 + 2*cfg.halfWidth)

		// 1) Inner and outer rims, interleaved per segment.
		base := len(b.positions)
		for k := 0; k < segments; k++ {
			// half-step phase keeps no two rim vertices on the same X
			theta := 2 * math.Pi * (float64(k) + 0.25) / float64(segments)
			c, s := math.Cos(theta), math.Sin(theta)
			b.AddVertex(cfg.place(r3.Vec{X: rIn * c, Y: rIn * s}))
			b.AddVertex(cfg.place(r3.Vec{X: rOut * c, Y: rOut * s}))
		}

		// 2) One quad per segment: inner(k), outer(k), outer(k+1), inner(k+1).
		for k := 0; k < segments; k++ {
			n := (k + 1) % segments
			b.addQuad(base+2*k, base+2*k+1, base+2*n+1, base+2*n, cfg.quads)
		}
		return nil
	}
}

// Tube returns a Constructor for an open cylinder along Z.
func Tube(rings, segments int) Constructor {
	return func(b *Buffer, cfg config) error {
		if rings < minSegments || segments < minRingSegment {
			return fmt.Errorf("%s: rings=%d, segments=%d: %w", methodTube, rings, segments, ErrTooSmall)
		}

		// 1) rings+1 vertex rings.
		base := len(b.positions)
		id := func(r, k int) int { return base + r*segments + (k % segments) }
		for r := 0; r <= rings; r++ {
			for k := 0; k < segments; k++ {
				theta := 2 * math.Pi * float64(k) / float64(segments)
				b.AddVertex(cfg.place(r3.Vec{
					X: cfg.spacing * math.Cos(theta),
					Y: cfg.spacing * math.Sin(theta),
					Z: float64(r) * cfg.spacing,
				}))
			}
		}

		// 2) Side quads.
		for r := 0; r < rings; r++ {
			for k := 0; k < segments; k++ {
				b.addQuad(id(r, k), id(r, k+1), id(r+1, k+1), id(r+1, k), cfg.quads)
			}
		}
		return nil
	}
}
