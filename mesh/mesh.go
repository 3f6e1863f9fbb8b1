// SPDX-License-Identifier: MIT

package mesh

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	minFaceCorners = 3
	maxFaceCorners = 4
)

// New builds a Mesh from vertex positions and faces given as index lists.
// Weights start at zero, nothing is selected and nothing is hidden.
//
// Errors:
//   - ErrEmptyMesh if positions is empty.
//   - ErrInvalidFace if a face has a corner count outside [3,4] or repeats a vertex.
//   - ErrIndexOutOfRange if a face references a missing vertex.
//
// Complexity: O(V + F).
func New(positions []r3.Vec, faces [][]int) (*Mesh, error) {
	// 1) Reject empty input early.
	if len(positions) == 0 {
		return nil, ErrEmptyMesh
	}

	m := &Mesh{
		positions: append([]r3.Vec(nil), positions...),
		weights:   make([]float64, len(positions)),
		selected:  make([]bool, len(positions)),
		hiddenV:   make([]bool, len(positions)),
		faces:     make([]Face, 0, len(faces)),
		hiddenE:   make(map[EdgeKey]struct{}),
		dirty:     true,
	}

	// 2) Validate and copy each face.
	for fi, f := range faces {
		if len(f) < minFaceCorners || len(f) > maxFaceCorners {
			return nil, fmt.Errorf("New: face %d has %d corners: %w", fi, len(f), ErrInvalidFace)
		}
		for ci, v := range f {
			if v < 0 || v >= len(positions) {
				return nil, fmt.Errorf("New: face %d corner %d=%d: %w", fi, ci, v, ErrIndexOutOfRange)
			}
			for cj := 0; cj < ci; cj++ {
				if f[cj] == v {
					return nil, fmt.Errorf("New: face %d repeats vertex %d: %w", fi, v, ErrInvalidFace)
				}
			}
		}
		m.faces = append(m.faces, Face{V: append([]int(nil), f...)})
	}

	return m, nil
}

// NumVertices returns the vertex count, hidden vertices included.
func (m *Mesh) NumVertices() int { return len(m.positions) }

// NumFaces returns the face count, hidden faces included.
func (m *Mesh) NumFaces() int { return len(m.faces) }

// Position returns the position of vertex v.
func (m *Mesh) Position(v int) r3.Vec { return m.positions[v] }

// Face returns a copy of face f.
func (m *Mesh) Face(f int) Face {
	src := m.faces[f]
	return Face{V: append([]int(nil), src.V...), Hidden: src.Hidden}
}

// Weight returns the scalar weight of vertex v.
func (m *Mesh) Weight(v int) float64 { return m.weights[v] }

// SetWeight sets the scalar weight of vertex v.
func (m *Mesh) SetWeight(v int, w float64) { m.weights[v] = w }

// Weights returns a copy of all vertex weights.
func (m *Mesh) Weights() []float64 {
	return append([]float64(nil), m.weights...)
}

// SetWeights replaces all vertex weights. The slice is copied.
func (m *Mesh) SetWeights(w []float64) error {
	if len(w) != len(m.weights) {
		return fmt.Errorf("SetWeights: got %d, want %d: %w", len(w), len(m.weights), ErrWeightCount)
	}
	copy(m.weights, w)
	return nil
}

// Select marks the given vertices as selected.
func (m *Mesh) Select(vs ...int) error {
	for _, v := range vs {
		if v < 0 || v >= len(m.selected) {
			return fmt.Errorf("Select: vertex %d: %w", v, ErrIndexOutOfRange)
		}
		m.selected[v] = true
	}
	return nil
}

// DeselectAll clears the selection.
func (m *Mesh) DeselectAll() {
	for i := range m.selected {
		m.selected[i] = false
	}
}

// IsSelected reports whether vertex v is selected.
func (m *Mesh) IsSelected(v int) bool { return m.selected[v] }

// Selected returns the selected, visible vertices in ascending order.
func (m *Mesh) Selected() []int {
	var out []int
	for v, s := range m.selected {
		if s && !m.hiddenV[v] {
			out = append(out, v)
		}
	}
	return out
}

// HideVertex hides vertex v and, implicitly, every edge and face touching it.
func (m *Mesh) HideVertex(v int) error {
	if v < 0 || v >= len(m.hiddenV) {
		return fmt.Errorf("HideVertex: vertex %d: %w", v, ErrIndexOutOfRange)
	}
	m.hiddenV[v] = true
	m.dirty = true
	return nil
}

// HideEdge hides the edge (u,v) from traversals.
func (m *Mesh) HideEdge(u, v int) error {
	if u < 0 || v < 0 || u >= len(m.positions) || v >= len(m.positions) {
		return fmt.Errorf("HideEdge: edge (%d,%d): %w", u, v, ErrIndexOutOfRange)
	}
	m.hiddenE[MakeEdgeKey(u, v)] = struct{}{}
	m.dirty = true
	return nil
}

// HideFace hides face f from construction and Laplacian assembly.
func (m *Mesh) HideFace(f int) error {
	if f < 0 || f >= len(m.faces) {
		return fmt.Errorf("HideFace: face %d: %w", f, ErrIndexOutOfRange)
	}
	m.faces[f].Hidden = true
	m.dirty = true
	return nil
}

// IsVertexHidden reports whether vertex v is hidden.
func (m *Mesh) IsVertexHidden(v int) bool { return m.hiddenV[v] }

// IsEdgeHidden reports whether edge (u,v) is hidden, directly or through an endpoint.
func (m *Mesh) IsEdgeHidden(u, v int) bool {
	if m.hiddenV[u] || m.hiddenV[v] {
		return true
	}
	_, ok := m.hiddenE[MakeEdgeKey(u, v)]
	return ok
}

// IsFaceHidden reports whether face f is hidden, directly or through a corner.
func (m *Mesh) IsFaceHidden(f int) bool {
	face := m.faces[f]
	if face.Hidden {
		return true
	}
	for _, v := range face.V {
		if m.hiddenV[v] {
			return true
		}
	}
	return false
}

// Edges returns the visible edges in ascending (A,B) order.
// The returned slice must not be modified.
func (m *Mesh) Edges() []EdgeKey {
	m.ensureTopology()
	return m.edges
}

// Neighbors returns the visible neighbours of v in ascending order.
// The returned slice must not be modified.
func (m *Mesh) Neighbors(v int) []int {
	m.ensureTopology()
	return m.adjacency[v]
}

// EdgeFaceCount returns how many visible faces use the edge (u,v).
func (m *Mesh) EdgeFaceCount(u, v int) int {
	m.ensureTopology()
	return m.faceCount[MakeEdgeKey(u, v)]
}

// EdgeLength returns the Euclidean length of the edge (u,v).
func (m *Mesh) EdgeLength(u, v int) float64 {
	return r3.Norm(r3.Sub(m.positions[u], m.positions[v]))
}

// ensureTopology rebuilds derived edge data when flags changed.
func (m *Mesh) ensureTopology() {
	if !m.dirty {
		return
	}

	// 1) Collect every face edge; count visible face usage.
	seen := make(map[EdgeKey]struct{})
	m.faceCount = make(map[EdgeKey]int)
	for fi, f := range m.faces {
		visible := !m.IsFaceHidden(fi)
		n := len(f.V)
		for i := 0; i < n; i++ {
			k := MakeEdgeKey(f.V[i], f.V[(i+1)%n])
			seen[k] = struct{}{}
			if visible {
				m.faceCount[k]++
			}
		}
	}

	// 2) Keep visible edges only, in deterministic order.
	m.edges = m.edges[:0]
	for k := range seen {
		if !m.IsEdgeHidden(k.A, k.B) {
			m.edges = append(m.edges, k)
		}
	}
	sort.Slice(m.edges, func(i, j int) bool {
		if m.edges[i].A != m.edges[j].A {
			return m.edges[i].A < m.edges[j].A
		}
		return m.edges[i].B < m.edges[j].B
	})

	// 3) Neighbour lists follow the sorted edge order, so they come out ascending
	//    for the A side; sort each list to cover the B side too.
	m.adjacency = make([][]int, len(m.positions))
	for _, k := range m.edges {
		m.adjacency[k.A] = append(m.adjacency[k.A], k.B)
		m.adjacency[k.B] = append(m.adjacency[k.B], k.A)
	}
	for v := range m.adjacency {
		sort.Ints(m.adjacency[v])
	}

	m.dirty = false
}
