package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reebskel/bfs"
	"github.com/katalvlaran/reebskel/core"
)

// star returns 0 connected to 1,2,3 and a tail 3–4.
func star(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(10, 0, 1))
	require.NoError(t, g.AddEdge(11, 0, 2))
	require.NoError(t, g.AddEdge(12, 3, 0))
	require.NoError(t, g.AddEdge(13, 3, 4))
	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := star(t)
	_, err = bfs.BFS(g, 99)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, 0, bfs.WithContext(nil))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_LevelsAndParents(t *testing.T) {
	res, err := bfs.BFS(star(t), 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Order)
	assert.Equal(t, [][]int{{0}, {1, 2, 3}, {4}}, res.Levels())
	assert.Equal(t, 3, res.Parent[4])
	assert.Equal(t, 13, res.ParentEdge[4])
	assert.Equal(t, 2, res.Depth[4])
	_, isRoot := res.Parent[0]
	assert.False(t, isRoot)
}

func TestBFS_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(star(t), 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	res, err := bfs.BFS(star(t), 0, bfs.WithContext(context.Background()))
	require.NoError(t, err)
	assert.Len(t, res.Order, 5)
}
