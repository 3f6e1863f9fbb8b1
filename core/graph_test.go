// SPDX-License-Identifier: MIT

package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/reebskel/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph()
}

func (s *GraphSuite) TestVerticesSorted() {
	s.g.AddVertex(5)
	s.g.AddVertex(1)
	s.g.AddVertex(5)
	s.Equal([]int{1, 5}, s.g.Vertices())
	s.True(s.g.HasVertex(1))
	s.False(s.g.HasVertex(2))
}

func (s *GraphSuite) TestParallelEdgesAndLoops() {
	s.Require().NoError(s.g.AddEdge(10, 1, 2))
	s.Require().NoError(s.g.AddEdge(11, 2, 1))
	s.Require().NoError(s.g.AddEdge(12, 3, 3))

	s.Equal(2, s.g.Degree(1))
	s.Equal(2, s.g.Degree(3))
	s.Equal(3, s.g.EdgeCount())
	s.Equal(3, s.g.VertexCount())

	nb, err := s.g.Neighbors(2)
	s.Require().NoError(err)
	s.Equal([]core.Edge{{ID: 10, From: 1, To: 2}, {ID: 11, From: 2, To: 1}}, nb)
	s.Equal(1, nb[1].Other(2))
	s.True(core.Edge{From: 3, To: 3}.IsLoop())

	s.ErrorIs(s.g.AddEdge(10, 4, 5), core.ErrDuplicateEdge)
	_, err = s.g.Neighbors(9)
	s.ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestEdgesSortedByID() {
	s.Require().NoError(s.g.AddEdge(3, 0, 1))
	s.Require().NoError(s.g.AddEdge(1, 1, 2))
	edges := s.g.Edges()
	s.Require().Len(edges, 2)
	s.Equal(1, edges[0].ID)
	s.Equal(3, edges[1].ID)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestGraph_ConcurrentReads(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 100; i++ {
		require.NoError(t, g.AddEdge(i, i, i+1))
	}
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_, _ = g.Neighbors(i)
				_ = g.Vertices()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 101, g.VertexCount())
}
