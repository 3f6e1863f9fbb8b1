// SPDX-License-Identifier: MIT

package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/reebskel/mesh"
)

// square returns the unit square split into two triangles sharing 0–2.
func square(t *testing.T) *mesh.Mesh {
	t.Helper()
	m, err := mesh.New(
		[]r3.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		[][]int{{0, 1, 2}, {0, 2, 3}},
	)
	require.NoError(t, err)
	return m
}

func TestNew_Validation(t *testing.T) {
	_, err := mesh.New(nil, nil)
	assert.ErrorIs(t, err, mesh.ErrEmptyMesh)

	pts := []r3.Vec{{}, {X: 1}, {Y: 1}}
	_, err = mesh.New(pts, [][]int{{0, 1}})
	assert.ErrorIs(t, err, mesh.ErrInvalidFace)

	_, err = mesh.New(pts, [][]int{{0, 1, 1}})
	assert.ErrorIs(t, err, mesh.ErrInvalidFace)

	_, err = mesh.New(pts, [][]int{{0, 1, 7}})
	assert.ErrorIs(t, err, mesh.ErrIndexOutOfRange)
}

func TestMesh_Topology(t *testing.T) {
	m := square(t)

	assert.Equal(t, []mesh.EdgeKey{{A: 0, B: 1}, {A: 0, B: 2}, {A: 0, B: 3}, {A: 1, B: 2}, {A: 2, B: 3}}, m.Edges())
	assert.Equal(t, []int{1, 2, 3}, m.Neighbors(0))
	assert.Equal(t, 2, m.EdgeFaceCount(2, 0))
	assert.Equal(t, 1, m.EdgeFaceCount(0, 1))
	assert.InDelta(t, 1.0, m.EdgeLength(0, 1), 1e-12)
}

func TestMesh_Hiding(t *testing.T) {
	m := square(t)

	require.NoError(t, m.HideFace(1))
	assert.True(t, m.IsFaceHidden(1))
	assert.Equal(t, 1, m.EdgeFaceCount(0, 2))
	assert.Len(t, m.Triangles(), 1)

	require.NoError(t, m.HideEdge(1, 2))
	assert.True(t, m.IsEdgeHidden(2, 1))
	assert.NotContains(t, m.Neighbors(1), 2)

	require.NoError(t, m.HideVertex(3))
	assert.True(t, m.IsEdgeHidden(0, 3))
	assert.Empty(t, m.Neighbors(3))

	assert.ErrorIs(t, m.HideVertex(9), mesh.ErrIndexOutOfRange)
	assert.ErrorIs(t, m.HideFace(-1), mesh.ErrIndexOutOfRange)
}

func TestMesh_SelectionAndWeights(t *testing.T) {
	m := square(t)

	require.NoError(t, m.Select(0, 2))
	assert.Equal(t, []int{0, 2}, m.Selected())
	require.NoError(t, m.HideVertex(2))
	assert.Equal(t, []int{0}, m.Selected())
	m.DeselectAll()
	assert.Empty(t, m.Selected())
	assert.ErrorIs(t, m.Select(4), mesh.ErrIndexOutOfRange)

	require.NoError(t, m.SetWeights([]float64{1, 2, 3, 4}))
	w := m.Weights()
	w[0] = 99
	assert.Equal(t, 1.0, m.Weight(0))
	assert.ErrorIs(t, m.SetWeights([]float64{1}), mesh.ErrWeightCount)
}

func TestMesh_Geometry(t *testing.T) {
	m, err := mesh.New(
		[]r3.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 5, Y: 5}},
		[][]int{{0, 1, 2, 3}, {0, 1, 4}},
	)
	require.NoError(t, err)

	assert.Equal(t, r3.Vec{Z: 1}, m.FaceNormal(0))
	assert.InDelta(t, 4.0, m.FaceArea(0), 1e-12)
	assert.Equal(t, r3.Vec{X: 1, Y: 1}, m.FaceCenter(0))

	tris := m.Triangles()
	require.Len(t, tris, 3)
	assert.Equal(t, [3]int{0, 1, 2}, tris[0].V)
	assert.Equal(t, [3]int{0, 2, 3}, tris[1].V)
	assert.True(t, tris[1].Diagonal)
	assert.False(t, tris[2].Diagonal)
}

func TestMesh_DegenerateNormal(t *testing.T) {
	m, err := mesh.New([]r3.Vec{{}, {X: 1}, {X: 2}}, [][]int{{0, 1, 2}})
	require.NoError(t, err)
	assert.Equal(t, r3.Vec{}, m.FaceNormal(0))
	assert.Zero(t, m.FaceArea(0))
}
