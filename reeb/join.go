// SPDX-License-Identifier: MIT

package reeb

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/reebskel"
	"github.com/katalvlaran/reebskel/bfs"
	"github.com/katalvlaran/reebskel/dfs"
)

// FlagSubgraphs stores each live node's connected component index in
// Node.Subgraph and returns the number of components.
func FlagSubgraphs(g *Graph) int {
	idx, n, err := dfs.ComponentIndex(g.CoreView())
	if err != nil {
		return 0
	}
	for _, node := range g.nodes {
		if !node.removed {
			node.Subgraph = idx[node.Index]
		}
	}
	return n
}

// JoinSubgraphs connects disconnected pieces of an acyclic graph: while two
// terminal nodes of different components lie closer than threshold, the
// closest such pair is fused. The component on the far side is
// re-parameterized so weights keep increasing across the joint. Cyclic
// graphs, and threshold ≤ 0, are left alone. It reports whether anything
// was joined.
func JoinSubgraphs(g *Graph, threshold float64) bool {
	if threshold <= 0 {
		return false
	}
	if cyclic, _, err := dfs.DetectCycles(g.CoreView()); err != nil || cyclic {
		return false
	}

	joined := false
	for FlagSubgraphs(g) > 1 {
		start, end := closestTerminals(g, threshold)
		if start == nil {
			break
		}
		if err := g.joinEnds(start, end); err != nil {
			reebskel.Logger().Warn("reeb: join aborted", "start", start.Index, "end", end.Index, "err", err)
			break
		}
		RemoveNormalNodes(g)
		joined = true
	}
	return joined
}

// closestTerminals returns the closest pair of degree-1 nodes of different
// components whose distance is below threshold.
func closestTerminals(g *Graph, threshold float64) (start, end *Node) {
	terms := g.Terminals()
	best := math.Inf(1)
	for i, s := range terms {
		for _, e := range terms[i+1:] {
			if s.Subgraph == e.Subgraph {
				continue
			}
			d := r3.Norm(r3.Sub(s.Pos, e.Pos))
			if d < threshold && d < best {
				best, start, end = d, s, e
			}
		}
	}
	return start, end
}

// joinEnds attaches the arc of terminal start to node end and removes start.
func (g *Graph) joinEnds(start, end *Node) error {
	g.BuildAdjacency()
	arc := start.arcs[0]
	if arc.Tail == start {
		if err := g.reweightSubgraph(end, start.Weight); err != nil {
			return err
		}
		arc.Tail = end
	} else {
		if err := g.reweightSubgraph(start, end.Weight); err != nil {
			return err
		}
		arc.Head = end
	}
	incDegree(end)
	decDegree(start)
	resizeBuckets(arc)
	fillEmptyBuckets(arc)
	g.removeNode(start)
	g.compact()
	return nil
}

// reweightSubgraph re-parameterizes the tree containing from: from gets
// weight base and every other node the base plus the summed weight spans
// along its tree path. Arcs pointing back toward from are flipped.
func (g *Graph) reweightSubgraph(from *Node, base float64) error {
	res, err := bfs.BFS(g.CoreView(), from.Index)
	if err != nil {
		return err
	}
	arcs := g.arcByID()

	// 1) New weights from the old spans.
	next := map[int]float64{from.Index: base}
	for _, v := range res.Order[1:] {
		a := arcs[res.ParentEdge[v]]
		next[v] = next[res.Parent[v]] + math.Abs(a.Tail.Weight-a.Head.Weight)
	}

	// 2) Orient each tree arc away from the start.
	for _, v := range res.Order[1:] {
		a := arcs[res.ParentEdge[v]]
		if a.Head.Index == v {
			a.Head, a.Tail = a.Tail, a.Head
			reverseBuckets(a)
		}
	}

	// 3) Commit weights, then re-key samples.
	for _, v := range res.Order {
		g.byIndex[v].Weight = next[v]
	}
	for _, v := range res.Order[1:] {
		a := arcs[res.ParentEdge[v]]
		start, _ := bucketRange(a.Head.Weight, a.Tail.Weight)
		for i := range a.Buckets {
			a.Buckets[i].Val = start + float64(i)
		}
		resizeBuckets(a)
		fillEmptyBuckets(a)
	}
	return nil
}
