// SPDX-License-Identifier: MIT

package symmetry

import (
	"context"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/reebskel/reeb"
)

// RingArc is one branch of a radial ring: the arc leaving the ring's root
// and the unit direction toward its far node, projected on the plane normal
// to the symmetry axis.
type RingArc struct {
	Arc *reeb.Arc
	N   r3.Vec
}

// Marker annotates the symmetry fields of g below root. limit is the angle
// tolerance in degrees. Implementations should stop with ctx.Err() once ctx
// is done.
type Marker interface {
	Mark(ctx context.Context, g *reeb.Graph, root *reeb.Node, limit float64) error
}

// RadialFunc handles a detected radial ring, sorted by azimuth around
// root.SymmetryAxis.
type RadialFunc func(root *reeb.Node, ring []RingArc)

// AxialFunc handles a detected mirror pair whose plane passes through root
// with normal root.SymmetryAxis.
type AxialFunc func(root, n1, n2 *reeb.Node, a1, a2 *reeb.Arc)
