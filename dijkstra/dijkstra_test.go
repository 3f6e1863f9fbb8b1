// Package dijkstra_test contains unit tests for the multi-source mesh Dijkstra.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reebskel/dijkstra"
	"github.com/katalvlaran/reebskel/meshgen"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	m, err := meshgen.Build(nil, meshgen.Grid(2, 2))
	require.NoError(t, err)

	_, err = dijkstra.Dijkstra(m)
	assert.ErrorIs(t, err, dijkstra.ErrNoSource)

	_, err = dijkstra.Dijkstra(nil, dijkstra.Sources(0))
	assert.ErrorIs(t, err, dijkstra.ErrNilMesh)

	_, err = dijkstra.Dijkstra(m, dijkstra.Sources(42))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	require.NoError(t, m.HideVertex(4))
	_, err = dijkstra.Dijkstra(m, dijkstra.Sources(4))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

// ------------------------------------------------------------------------
// 2. Distances
// ------------------------------------------------------------------------

func TestDijkstra_SingleSourceGrid(t *testing.T) {
	// 3×3 vertex grid, diagonals run (r,c)→(r+1,c+1).
	m, err := meshgen.Build(nil, meshgen.Grid(2, 2))
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(m, dijkstra.Sources(0))
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Dist[0])
	assert.InDelta(t, 1.0, res.Dist[1], 1e-12)
	assert.InDelta(t, math.Sqrt2, res.Dist[4], 1e-12)
	assert.InDelta(t, 2*math.Sqrt2, res.Dist[8], 1e-12)
	assert.True(t, res.Visited[8])
	assert.Empty(t, res.Unreached(m.IsVertexHidden))
}

func TestDijkstra_MultiSourceNearest(t *testing.T) {
	m, err := meshgen.Build(nil, meshgen.Grid(1, 4))
	require.NoError(t, err)

	// bottom row: 0..4; sources at both ends.
	res, err := dijkstra.Dijkstra(m, dijkstra.Sources(0, 4))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Dist[1], 1e-12)
	assert.InDelta(t, 2.0, res.Dist[2], 1e-12)
	assert.InDelta(t, 1.0, res.Dist[3], 1e-12)
}

func TestDijkstra_UnreachedAndHidden(t *testing.T) {
	// Two disjoint diamonds: only the first one is seeded.
	m, err := meshgen.Build(nil, meshgen.Diamond(), meshgen.Diamond())
	require.NoError(t, err)

	res, err := dijkstra.Dijkstra(m, dijkstra.Sources(0))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6, 7}, res.Unreached(nil))
	assert.True(t, math.IsInf(res.Dist[5], 1))

	require.NoError(t, m.HideVertex(6))
	assert.Equal(t, []int{4, 5, 7}, res.Unreached(m.IsVertexHidden))
}
