// SPDX-License-Identifier: MIT

package reeb_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/reebskel/dfs"
	"github.com/katalvlaran/reebskel/mesh"
	"github.com/katalvlaran/reebskel/meshgen"
	"github.com/katalvlaran/reebskel/reeb"
)

// TestBuild_PlaneStrip: a flat 2×2 grid under an axis field is one arc
// between two terminals.
func TestBuild_PlaneStrip(t *testing.T) {
	m := weighted(t, 0, 10, meshgen.Grid(2, 2))
	require.Equal(t, 9, m.NumVertices())
	require.Len(t, m.Triangles(), 8)

	g := build(t, m)
	require.Equal(t, 1, g.NumArcs())
	assert.Equal(t, map[int]int{1: 2}, degreeHistogram(g))

	a := g.Arcs()[0]
	assert.InDelta(t, 0, a.Head.Weight, 1e-3)
	assert.InDelta(t, 10, a.Tail.Weight, 1e-3)
	assert.Len(t, a.Buckets, 11)
	assert.Equal(t, 8, a.FaceCount())
}

// TestBuild_Tripod: three strips rising from one lowest vertex give one
// degree-3 node, three terminals and three arcs.
func TestBuild_Tripod(t *testing.T) {
	m := weighted(t, 2, 8, meshgen.Fan(3, 4))
	g := build(t, m)

	assert.Equal(t, 3, g.NumArcs())
	assert.Equal(t, map[int]int{1: 3, 3: 1}, degreeHistogram(g))
	root := g.Root()
	require.NotNil(t, root)
	assert.Equal(t, 0, root.Index)
	assert.Equal(t, 3, root.Degree)
	for _, a := range g.Arcs() {
		assert.Same(t, root, a.Head)
	}
}

// TestBuild_Diamond: equal outer weights make two parallel arcs.
func TestBuild_Diamond(t *testing.T) {
	m, err := meshgen.Build(nil, meshgen.Diamond())
	require.NoError(t, err)
	require.NoError(t, m.SetWeights([]float64{-1, 0, 0, 1}))

	g := build(t, m)
	assert.Equal(t, 4, g.NumArcs())
	cyclic, cycles, err := dfs.DetectCycles(g.CoreView())
	require.NoError(t, err)
	assert.True(t, cyclic)
	assert.Equal(t, [][]int{{1, 2}}, cycles)
}

// TestBuild_AnnulusHasCycle: the hole of an annulus shows up as a loop.
func TestBuild_AnnulusHasCycle(t *testing.T) {
	m := weighted(t, 0, 10, meshgen.Annulus(12))
	g := build(t, m)

	cyclic, _, err := dfs.DetectCycles(g.CoreView())
	require.NoError(t, err)
	assert.True(t, cyclic)
	assert.Len(t, g.Terminals(), 2)
}

// TestBuild_TubeIsOneArc: level sets of an upright tube never split.
func TestBuild_TubeIsOneArc(t *testing.T) {
	m := weighted(t, 2, 10, meshgen.Tube(4, 8))
	g := build(t, m)
	assert.Equal(t, 1, g.NumArcs())
	assert.Len(t, g.Terminals(), 2)
}

// TestBuild_SampleConservation: with non-integer weights every sample seeded
// on a mesh edge survives construction exactly once.
func TestBuild_SampleConservation(t *testing.T) {
	m, err := meshgen.Build(nil, meshgen.Grid(4, 4))
	require.NoError(t, err)
	w := make([]float64, m.NumVertices())
	for v := range w {
		p := m.Position(v)
		w[v] = 3.3*p.X + 1.07*p.Y + 0.13
	}
	require.NoError(t, m.SetWeights(w))

	want := 0
	for _, e := range m.Edges() {
		lo, hi := math.Min(w[e.A], w[e.B]), math.Max(w[e.A], w[e.B])
		want += int(math.Floor(hi)-math.Ceil(lo)) + 1
	}

	raw := build(t, m, reeb.WithKeepNormalNodes())
	assert.Equal(t, want, totalSamples(raw))
	assert.Equal(t, m.NumVertices(), raw.NumNodes())

	g := build(t, m)
	assert.Equal(t, want, totalSamples(g))
	require.Equal(t, 1, g.NumArcs())
	assert.Equal(t, 32, g.Arcs()[0].FaceCount())
	assert.Equal(t, 0, g.Arcs()[0].Faces()[0])
}

// TestBuild_Provenance: every mesh edge keeps a chain of live arcs whose
// records span it from its low to its high vertex.
func TestBuild_Provenance(t *testing.T) {
	m := weighted(t, 2, 8, meshgen.Fan(3, 2))
	g := build(t, m)
	live := make(map[*reeb.Arc]bool)
	for _, a := range g.Arcs() {
		live[a] = true
	}
	for _, e := range m.Edges() {
		chain := g.Chain(e.A, e.B)
		require.NotEmpty(t, chain, "edge %v", e)
		for _, rec := range chain {
			assert.LessOrEqual(t, rec.V1.Weight, rec.V2.Weight)
			assert.True(t, live[rec.Arc], "edge %v points to a dead arc", e)
		}
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Run("duplicate weights", func(t *testing.T) {
		m, err := meshgen.Build(nil, meshgen.Grid(1, 1))
		require.NoError(t, err)
		_, err = reeb.Build(m)
		assert.ErrorIs(t, err, reeb.ErrDuplicateWeights)
	})
	t.Run("NaN weight", func(t *testing.T) {
		m, err := meshgen.Build(nil, meshgen.Grid(1, 1))
		require.NoError(t, err)
		require.NoError(t, m.SetWeights([]float64{0, 1, math.NaN(), 3}))
		_, err = reeb.Build(m)
		assert.ErrorIs(t, err, reeb.ErrInvalidWeight)
	})
	t.Run("everything hidden", func(t *testing.T) {
		m, err := mesh.New([]r3.Vec{{}, {X: 1}, {Y: 1}}, [][]int{{0, 1, 2}})
		require.NoError(t, err)
		require.NoError(t, m.SetWeights([]float64{0, 1, 2}))
		require.NoError(t, m.HideFace(0))
		_, err = reeb.Build(m)
		assert.ErrorIs(t, err, reeb.ErrEmptyMesh)
	})
}

// TestBuild_HiddenEdgeSkipsTriangles: triangles on a hidden edge stay out.
func TestBuild_HiddenEdgeSkipsTriangles(t *testing.T) {
	m := weighted(t, 0, 10, meshgen.Grid(2, 2))
	require.NoError(t, m.HideEdge(0, 1))
	g := build(t, m)
	faces := 0
	for _, a := range g.Arcs() {
		faces += a.FaceCount()
		assert.False(t, a.HasFace(0))
	}
	assert.Positive(t, faces)
}
