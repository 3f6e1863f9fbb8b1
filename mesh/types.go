// SPDX-License-Identifier: MIT

package mesh

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// EdgeKey identifies an undirected mesh edge by its two vertex indices, A < B.
type EdgeKey struct {
	A, B int
}

// MakeEdgeKey returns the canonical key of the edge (u,v).
func MakeEdgeKey(u, v int) EdgeKey {
	if u > v {
		u, v = v, u
	}
	return EdgeKey{A: u, B: v}
}

// Other returns the endpoint of k that is not v.
func (k EdgeKey) Other(v int) int {
	if k.A == v {
		return k.B
	}
	return k.A
}

// Face is a triangle (3 indices) or quad (4 indices), counter-clockwise.
type Face struct {
	V      []int
	Hidden bool
}

// IsQuad reports whether f has four corners.
func (f Face) IsQuad() bool { return len(f.V) == 4 }

// Mesh is an indexed triangle/quad surface.
//
// Positions and weights are addressed by vertex index. The zero value is not
// usable; construct with New.
type Mesh struct {
	positions []r3.Vec
	weights   []float64
	selected  []bool
	hiddenV   []bool
	faces     []Face
	hiddenE   map[EdgeKey]struct{}

	// derived topology, rebuilt lazily when dirty
	dirty     bool
	edges     []EdgeKey       // visible edges, sorted by (A,B)
	adjacency [][]int         // visible neighbours per vertex, ascending
	faceCount map[EdgeKey]int // number of visible faces using each edge
}
