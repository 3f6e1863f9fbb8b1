// SPDX-License-Identifier: MIT

package reeb_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reebskel/meshgen"
	"github.com/katalvlaran/reebskel/reeb"
)

func TestBuildLadder_Branch(t *testing.T) {
	g := branchGraph(t)
	opt := reeb.DefaultLadderOptions()
	opt.Levels = 3
	opt.ExternalFraction = 0.3

	l, err := reeb.BuildLadder(g, opt)
	require.NoError(t, err)
	require.Len(t, l.Levels, 3)
	assert.Same(t, g, l.Finest())
	assert.Equal(t, 3, l.Finest().NumArcs())
	assert.Equal(t, 1, l.Coarsest().NumArcs())

	for i, lv := range l.Levels {
		require.NoError(t, lv.Verify(), "level %d", i)
		assert.Equal(t, i, lv.Level)
		if i == 0 {
			continue
		}
		prev := l.Levels[i-1]
		assert.Same(t, lv, prev.LinkUp)
		assert.Same(t, prev, lv.LinkDown)
		assert.LessOrEqual(t, lv.NumArcs(), prev.NumArcs())

		// Node links match by index both ways.
		for _, n := range lv.Nodes() {
			if n.LinkDown != nil {
				assert.Equal(t, n.Index, n.LinkDown.Index)
				assert.Same(t, n, n.LinkDown.LinkUp)
			}
		}
		// Arc links never point at filtered-away arcs.
		live := make(map[*reeb.Arc]bool)
		for _, a := range lv.Arcs() {
			live[a] = true
		}
		for _, a := range prev.Arcs() {
			if a.LinkUp != nil {
				assert.True(t, live[a.LinkUp])
				assert.Equal(t, a.ID, a.LinkUp.ID)
			}
		}
	}
}

func TestBuildLadder_SingleLevelAndErrors(t *testing.T) {
	g := branchGraph(t)
	opt := reeb.DefaultLadderOptions()
	opt.Levels = 1
	l, err := reeb.BuildLadder(g, opt)
	require.NoError(t, err)
	assert.Len(t, l.Levels, 1)
	assert.Same(t, l.Finest(), l.Coarsest())

	opt.Levels = 0
	_, err = reeb.BuildLadder(g, opt)
	assert.ErrorIs(t, err, reeb.ErrInvalidLevels)
}

func TestCopy_Independent(t *testing.T) {
	g := branchGraph(t)
	cp := reeb.Copy(g)
	require.NoError(t, cp.Verify())
	assert.Equal(t, g.NumArcs(), cp.NumArcs())
	assert.Same(t, cp, g.LinkUp)
	assert.Same(t, g, cp.LinkDown)

	ca := cp.Arcs()[0]
	require.NotEmpty(t, ca.Buckets)
	ca.Buckets[0].NV = 99
	assert.NotEqual(t, 99, ca.LinkDown.Buckets[0].NV)
	assert.Equal(t, ca.LinkDown.FaceCount(), ca.FaceCount())
	assert.Empty(t, cp.Chain(0, 1))

	reeb.FilterExternal(cp, 3.0)
	assert.Equal(t, 3, g.NumArcs())
}

func TestFinalize_SortsAndLengths(t *testing.T) {
	g := branchGraph(t)
	reeb.Finalize(g, 2, reeb.KernelSmooth)
	require.NoError(t, g.Verify())

	nodes := g.Nodes()
	for i := 1; i < len(nodes); i++ {
		assert.LessOrEqual(t, nodes[i-1].Weight, nodes[i].Weight)
	}
	arcs := g.Arcs()
	for i := 1; i < len(arcs); i++ {
		assert.LessOrEqual(t, arcs[i-1].Head.Weight, arcs[i].Head.Weight)
	}
	var longestArc float64
	for _, a := range arcs {
		assert.Positive(t, a.Length)
		if a.Length > longestArc {
			longestArc = a.Length
		}
	}
	assert.Greater(t, g.Length, longestArc)
}

func TestDump(t *testing.T) {
	m := weighted(t, 0, 4, meshgen.Grid(2, 2))
	g := build(t, m)
	reeb.CalculateGraphLength(g)

	var buf bytes.Buffer
	require.NoError(t, reeb.Dump(&buf, g))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "graph level=0 nodes=2 arcs=1 "))
	assert.Contains(t, out, "node 0 w=0.0000 deg=1")
	assert.Contains(t, out, "faces=8")
	assert.Equal(t, 1+2+1+5, strings.Count(out, "\n"))
}
