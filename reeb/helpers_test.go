// SPDX-License-Identifier: MIT

package reeb_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reebskel/mesh"
	"github.com/katalvlaran/reebskel/meshgen"
	"github.com/katalvlaran/reebskel/reeb"
	"github.com/katalvlaran/reebskel/weight"
)

// weighted builds a shape and sets its field to one coordinate axis,
// rescaled to [0,max] and spread.
func weighted(t *testing.T, axis int, max float64, ctor meshgen.Constructor, opts ...meshgen.Option) *mesh.Mesh {
	t.Helper()
	m, err := meshgen.Build(opts, ctor)
	require.NoError(t, err)
	require.NoError(t, weight.FromCoordinate(m, axis))
	weight.Renormalize(m, max)
	weight.Spread(m)
	return m
}

// build runs reeb.Build and checks the invariants of the result.
func build(t *testing.T, m *mesh.Mesh, opts ...reeb.BuildOption) *reeb.Graph {
	t.Helper()
	g, err := reeb.Build(m, opts...)
	require.NoError(t, err)
	require.NoError(t, g.Verify())
	return g
}

// degreeHistogram counts live nodes per degree.
func degreeHistogram(g *reeb.Graph) map[int]int {
	h := make(map[int]int)
	for _, n := range g.Nodes() {
		h[n.Degree]++
	}
	return h
}

// totalSamples sums NV over every bucket of g.
func totalSamples(g *reeb.Graph) int {
	var s int
	for _, a := range g.Arcs() {
		for _, b := range a.Buckets {
			s += b.NV
		}
	}
	return s
}
