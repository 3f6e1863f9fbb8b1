// SPDX-License-Identifier: MIT

package mesh

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle is one triangle of a visible face. Quads yield two triangles,
// (0,1,2) and (0,2,3), both carrying the index of the source face.
type Triangle struct {
	Face     int
	V        [3]int
	Diagonal bool // true when the triangle comes from a quad split
}

// Triangles returns the triangles of all visible faces in face order.
func (m *Mesh) Triangles() []Triangle {
	out := make([]Triangle, 0, len(m.faces)*2)
	for fi, f := range m.faces {
		if m.IsFaceHidden(fi) {
			continue
		}
		out = append(out, Triangle{Face: fi, V: [3]int{f.V[0], f.V[1], f.V[2]}, Diagonal: f.IsQuad()})
		if f.IsQuad() {
			out = append(out, Triangle{Face: fi, V: [3]int{f.V[0], f.V[2], f.V[3]}, Diagonal: true})
		}
	}
	return out
}

// FaceNormal returns the unit normal of face f (Newell's method, so quads
// need not be planar). Degenerate faces return the zero vector.
func (m *Mesh) FaceNormal(f int) r3.Vec {
	n := m.faceNewell(f)
	l := r3.Norm(n)
	if l == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/l, n)
}

// FaceArea returns the area of face f.
func (m *Mesh) FaceArea(f int) float64 {
	return r3.Norm(m.faceNewell(f)) / 2
}

// FaceCenter returns the average of the corners of face f.
func (m *Mesh) FaceCenter(f int) r3.Vec {
	var c r3.Vec
	face := m.faces[f]
	for _, v := range face.V {
		c = r3.Add(c, m.positions[v])
	}
	return r3.Scale(1/float64(len(face.V)), c)
}

// faceNewell returns the Newell vector of face f; its length is twice the area.
func (m *Mesh) faceNewell(f int) r3.Vec {
	face := m.faces[f]
	var n r3.Vec
	k := len(face.V)
	for i := 0; i < k; i++ {
		a := m.positions[face.V[i]]
		b := m.positions[face.V[(i+1)%k]]
		n = r3.Add(n, r3.Cross(a, b))
	}
	return n
}
