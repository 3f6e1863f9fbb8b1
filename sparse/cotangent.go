// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/reebskel/mesh"
)

// quadDiagonalFaces is the face count used for the split diagonal of a quad:
// it always separates the two halves of the same face.
const quadDiagonalFaces = 2

// AssembleCotangent builds the cotangent Laplacian of the visible faces of m.
//
// For each triangle (i1,i2,i3), t_k is the cotangent of the angle at corner
// k divided by the number of visible faces sharing the opposite edge. The
// triangle adds t2+t3, t1+t3, t1+t2 to the three diagonal entries and −t_k
// to the symmetric off-diagonal pair of the edge opposite corner k.
// Degenerate triangles contribute zero.
//
// Complexity: O(F) time, O(V + E) memory.
func AssembleCotangent(m *mesh.Mesh) (*Matrix, error) {
	b := NewBuilder(m.NumVertices())
	for _, tri := range m.Triangles() {
		i1, i2, i3 := tri.V[0], tri.V[1], tri.V[2]
		p1, p2, p3 := m.Position(i1), m.Position(i2), m.Position(i3)

		t1 := cotangent(p1, p2, p3) / edgeFaces(m, tri, i2, i3)
		t2 := cotangent(p2, p3, p1) / edgeFaces(m, tri, i3, i1)
		t3 := cotangent(p3, p1, p2) / edgeFaces(m, tri, i1, i2)

		b.Add(i1, i1, t2+t3)
		b.Add(i2, i2, t1+t3)
		b.Add(i3, i3, t1+t2)

		b.Add(i1, i2, -t3)
		b.Add(i2, i1, -t3)
		b.Add(i2, i3, -t1)
		b.Add(i3, i2, -t1)
		b.Add(i3, i1, -t2)
		b.Add(i1, i3, -t2)
	}
	a, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("AssembleCotangent: %w", err)
	}
	return a, nil
}

// cotangent returns the cotangent of the angle at v1 in triangle (v1,v2,v3),
// or zero when the triangle is degenerate.
func cotangent(v1, v2, v3 r3.Vec) float64 {
	a := r3.Sub(v2, v1)
	b := r3.Sub(v3, v1)
	c := r3.Norm(r3.Cross(a, b))
	if c == 0 {
		return 0
	}
	return r3.Dot(a, b) / c
}

// edgeFaces returns the divisor for edge (u,v) of tri: 2 for the diagonal of
// a split quad, otherwise the visible face count (at least 1).
func edgeFaces(m *mesh.Mesh, tri mesh.Triangle, u, v int) float64 {
	if tri.Diagonal {
		f := m.Face(tri.Face)
		if mesh.MakeEdgeKey(u, v) == mesh.MakeEdgeKey(f.V[0], f.V[2]) {
			return quadDiagonalFaces
		}
	}
	if n := m.EdgeFaceCount(u, v); n > 0 {
		return float64(n)
	}
	return 1
}

// SolveHarmonic returns a field x with x[v] = pinned[v] for every pinned
// vertex and L·x = 0 on every other vertex that belongs to a visible face.
// Vertices outside every visible face keep their current weight.
//
// Errors: ErrNoPinned, ErrOutOfRange for a pinned index outside the mesh,
// or any solver error.
func SolveHarmonic(m *mesh.Mesh, pinned map[int]float64, s Solver) ([]float64, error) {
	const method = "SolveHarmonic"
	if len(pinned) == 0 {
		return nil, fmt.Errorf("%s: %w", method, ErrNoPinned)
	}
	n := m.NumVertices()

	// 1) Matrix.
	a, err := AssembleCotangent(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	// 2) Lock the pins plus every vertex without a visible face.
	locked := make(map[int]float64, len(pinned))
	for v, w := range pinned {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("%s: pinned %d: %w", method, v, ErrOutOfRange)
		}
		locked[v] = w
	}
	inFace := make([]bool, n)
	for _, tri := range m.Triangles() {
		for _, v := range tri.V {
			inFace[v] = true
		}
	}
	for v := 0; v < n; v++ {
		if !inFace[v] {
			if _, ok := locked[v]; !ok {
				locked[v] = m.Weight(v)
			}
		}
	}

	// 3) Solve L·x = 0.
	x, err := s.Solve(a, make([]float64, n), locked)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return x, nil
}
