// SPDX-License-Identifier: MIT

package symmetry_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/reebskel/meshgen"
	"github.com/katalvlaran/reebskel/reeb"
	"github.com/katalvlaran/reebskel/symmetry"
	"github.com/katalvlaran/reebskel/weight"
)

// skeleton builds the Z-field Reeb graph of a generated shape with arc
// lengths filled in.
func skeleton(t *testing.T, max float64, ctor meshgen.Constructor) *reeb.Graph {
	t.Helper()
	m, err := meshgen.Build(nil, ctor)
	require.NoError(t, err)
	require.NoError(t, weight.FromCoordinate(m, 2))
	weight.Renormalize(m, max)
	weight.Spread(m)
	g, err := reeb.Build(m)
	require.NoError(t, err)
	reeb.CalculateGraphLength(g)
	return g
}

func TestAnnotate_TripodRadial(t *testing.T) {
	g := skeleton(t, 8, meshgen.Fan(3, 4))
	require.NoError(t, symmetry.Annotate(context.Background(), g, nil, 10))
	require.NoError(t, g.Verify())

	root := g.Root()
	assert.Equal(t, reeb.SymmetryRadial, root.SymmetryFlag)
	assert.Equal(t, 1, root.SymmetryLevel)
	assert.InDelta(t, 1.0, root.SymmetryAxis.Z, 1e-9)

	arcs := g.Arcs()
	require.Len(t, arcs, 3)
	var radius []float64
	for _, a := range arcs {
		assert.Equal(t, reeb.SymmetryRadial, a.SymmetryFlag)
		assert.Equal(t, arcs[0].SymmetryGroup, a.SymmetryGroup)
		assert.Equal(t, 1, a.SymmetryLevel)
		radius = append(radius, r3.Norm(r3.Sub(a.OtherNode(root).Pos, root.Pos)))
	}
	assert.InDelta(t, radius[0], radius[1], 1e-9)
	assert.InDelta(t, radius[0], radius[2], 1e-9)
}

func TestAnnotate_BranchAxial(t *testing.T) {
	g := skeleton(t, 20, meshgen.Branch(4, 3, 3))
	require.NoError(t, symmetry.Annotate(context.Background(), g, nil, 10))
	require.NoError(t, g.Verify())

	var crotch *reeb.Node
	for _, n := range g.Nodes() {
		if n.Degree == 3 {
			crotch = n
		}
	}
	require.NotNil(t, crotch)
	assert.Equal(t, reeb.SymmetryAxial, crotch.SymmetryFlag)
	assert.Equal(t, 2, crotch.SymmetryLevel)
	assert.InDelta(t, 1.0, math.Abs(crotch.SymmetryAxis.X), 1e-9)
	assert.Equal(t, reeb.SymmetryNone, g.Root().SymmetryFlag)

	var tips []*reeb.Node
	g.BuildAdjacency()
	for _, a := range crotch.Arcs() {
		if a.Head == crotch {
			tips = append(tips, a.Tail)
			assert.Equal(t, reeb.SymmetryAxial, a.SymmetryFlag)
		} else {
			assert.Zero(t, a.SymmetryGroup)
		}
	}
	require.Len(t, tips, 2)
	mirrored := r3.Vec{X: 2*crotch.Pos.X - tips[1].Pos.X, Y: tips[1].Pos.Y, Z: tips[1].Pos.Z}
	assert.InDelta(t, 0, r3.Norm(r3.Sub(tips[0].Pos, mirrored)), 1e-9)
}

func TestAnnotate_NoOps(t *testing.T) {
	ring := skeleton(t, 10, meshgen.Annulus(12))
	assert.NoError(t, symmetry.Annotate(context.Background(), ring, nil, 10))

	assert.ErrorIs(t, symmetry.NewDetector().Mark(context.Background(), ring, ring.Root(), 10), symmetry.ErrCyclicGraph)

	g := skeleton(t, 8, meshgen.Fan(3, 4))
	require.NoError(t, symmetry.Annotate(context.Background(), g, nil, 0))
	assert.Equal(t, reeb.SymmetryNone, g.Root().SymmetryFlag)
	assert.NoError(t, symmetry.Annotate(context.Background(), reeb.NewGraph(), nil, 10))
	assert.ErrorIs(t, symmetry.NewDetector().Mark(context.Background(), g, nil, 10), symmetry.ErrRootNotFound)
}

func TestAnnotateLadder_Context(t *testing.T) {
	l, err := reeb.BuildLadder(skeleton(t, 8, meshgen.Fan(3, 4)), reeb.DefaultLadderOptions())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, symmetry.AnnotateLadder(ctx, l, nil, 10), context.Canceled)
	assert.Equal(t, reeb.SymmetryNone, l.Finest().Root().SymmetryFlag)

	g := l.Finest()
	assert.ErrorIs(t, symmetry.NewDetector().Mark(ctx, g, g.Root(), 10), context.Canceled)
	assert.ErrorIs(t, symmetry.Annotate(ctx, g, nil, 10), context.Canceled)

	require.NoError(t, symmetry.AnnotateLadder(context.Background(), l, nil, 10))
	for i, lv := range l.Levels {
		assert.Equal(t, reeb.SymmetryRadial, lv.Root().SymmetryFlag, "level %d", i)
	}
}

func TestDetector_FlagsWithoutCallbacks(t *testing.T) {
	g := skeleton(t, 8, meshgen.Fan(3, 4))
	before := make(map[int]r3.Vec)
	for _, n := range g.Nodes() {
		before[n.Index] = n.Pos
	}
	d := symmetry.NewDetector(symmetry.WithCallbacks(nil, nil))
	require.NoError(t, d.Mark(context.Background(), g, g.Root(), 10))
	assert.Equal(t, reeb.SymmetryRadial, g.Root().SymmetryFlag)
	for _, n := range g.Nodes() {
		assert.Equal(t, before[n.Index], n.Pos)
	}

	// A tight length tolerance still groups the identical legs.
	d = symmetry.NewDetector(symmetry.WithLengthTolerance(0.01), symmetry.WithCallbacks(nil, nil))
	require.NoError(t, d.Mark(context.Background(), g, g.Root(), 10))
	assert.Equal(t, reeb.SymmetryRadial, g.Root().SymmetryFlag)

	assert.Panics(t, func() { symmetry.WithLengthTolerance(-1) })
}

func TestAxial(t *testing.T) {
	root := &reeb.Node{Index: 0, SymmetryAxis: r3.Vec{X: 1}}
	n1 := &reeb.Node{Index: 1, Pos: r3.Vec{X: 1, Y: 1}, Weight: 2.5}
	n2 := &reeb.Node{Index: 2, Pos: r3.Vec{X: -1.2, Y: 0.8}, Weight: 2.5}
	a1 := &reeb.Arc{Head: root, Tail: n1, Buckets: []reeb.Bucket{
		{Pos: r3.Vec{X: 0.5, Y: 0.5}, NV: 1, Val: 1},
		{Pos: r3.Vec{X: 1, Y: 1}, NV: 1, Val: 2},
	}}
	a2 := &reeb.Arc{Head: root, Tail: n2, Buckets: []reeb.Bucket{
		{Pos: r3.Vec{X: -0.7, Y: 0.5}, NV: 1, Val: 1},
		{Pos: r3.Vec{X: -1, Y: 1}, NV: 1, Val: 2},
	}}

	symmetry.Axial(root, n1, n2, a1, a2)
	assert.InDelta(t, 1.1, n1.Pos.X, 1e-12)
	assert.InDelta(t, 0.9, n1.Pos.Y, 1e-12)
	assert.InDelta(t, -1.1, n2.Pos.X, 1e-12)
	assert.InDelta(t, 0.9, n2.Pos.Y, 1e-12)

	assert.InDelta(t, 0.6, a1.Buckets[0].Pos.X, 1e-12)
	assert.InDelta(t, -0.6, a2.Buckets[0].Pos.X, 1e-12)
	assert.Equal(t, 2, a1.Buckets[0].NV)
	assert.Equal(t, 2, a2.Buckets[0].NV)
	assert.Equal(t, r3.Vec{X: -1, Y: 1}, a2.Buckets[1].Pos)
}

func TestRadial(t *testing.T) {
	root := &reeb.Node{Index: 0, SymmetryAxis: r3.Vec{Z: 1}}
	radii := []float64{1, 1.3, 0.7}
	ring := make([]symmetry.RingArc, 3)
	for i, r := range radii {
		theta := 2 * math.Pi * float64(i) / 3
		dir := r3.Vec{X: math.Cos(theta), Y: math.Sin(theta)}
		n := &reeb.Node{Index: i + 1, Pos: r3.Add(r3.Scale(r, dir), r3.Vec{Z: 1}), Weight: 1.5}
		a := &reeb.Arc{Head: root, Tail: n, Buckets: []reeb.Bucket{
			{Pos: r3.Add(r3.Scale(r/2, dir), r3.Vec{Z: 0.5}), NV: 1, Val: 1},
		}}
		ring[i] = symmetry.RingArc{Arc: a, N: dir}
	}

	symmetry.Radial(root, ring)
	for i, ra := range ring {
		tip := ra.Arc.Tail.Pos
		assert.InDelta(t, 0.85, math.Hypot(tip.X, tip.Y), 1e-12, "tip %d", i)
		assert.InDelta(t, 1.0, tip.Z, 1e-12)
		assert.InDelta(t, 0, r3.Norm(r3.Cross(r3.Vec{X: tip.X, Y: tip.Y}, ra.N)), 1e-12)

		b := ra.Arc.Buckets[0]
		assert.Equal(t, 3, b.NV)
		assert.InDelta(t, 0.5, math.Hypot(b.Pos.X, b.Pos.Y), 1e-12)
	}
}
