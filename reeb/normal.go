// SPDX-License-Identifier: MIT

package reeb

import "github.com/katalvlaran/reebskel"

// RemoveNormalNodes merges every degree-2 node that is the tail of one arc
// and the head of the other into a single arc, until none is left. Degree-2
// nodes whose arcs leave on the same side (a minimum or maximum with two
// branches) are kept. It returns the number of nodes removed.
func RemoveNormalNodes(g *Graph) int {
	removed := 0
	for {
		g.BuildAdjacency()
		pass := 0
		for _, n := range g.nodes {
			if n.removed || n.Degree != 2 {
				continue
			}
			in, out := passThrough(n)
			if in == nil {
				continue
			}
			g.mergeConnectedArcs(in, out)
			// out.Tail now references in instead of out.
			replaceAdjacent(out.Tail, out, in)
			pass++
		}
		removed += pass
		if pass == 0 {
			break
		}
	}
	g.compact()
	g.BuildAdjacency()
	if removed > 0 {
		reebskel.Logger().Debug("reeb: normal nodes removed", "count", removed)
	}
	return removed
}

// passThrough returns the arc ending at n and the arc starting at n when n
// is a pass-through node, or nils.
func passThrough(n *Node) (in, out *Arc) {
	var live []*Arc
	for _, a := range n.arcs {
		if !a.removed {
			live = append(live, a)
		}
	}
	if len(live) != 2 {
		return nil, nil
	}
	a, b := live[0], live[1]
	if a.Head == a.Tail || b.Head == b.Tail {
		return nil, nil
	}
	switch {
	case a.Tail == n && b.Head == n:
		in, out = a, b
	case b.Tail == n && a.Head == n:
		in, out = b, a
	default:
		return nil, nil
	}
	if out.Tail == in.Head {
		return nil, nil
	}
	return in, out
}

func replaceAdjacent(n *Node, old, repl *Arc) {
	for i, a := range n.arcs {
		if a == old {
			n.arcs[i] = repl
		}
	}
}

// mergeConnectedArcs extends in through its tail with out; the shared node
// is removed.
func (g *Graph) mergeConnectedArcs(in, out *Arc) {
	mid := in.Tail
	in.Length += out.Length
	g.mergeArcEdges(in, out, mergeAppend)
	mergeFaces(in, out)

	in.Tail = out.Tail
	decDegree(mid)
	decDegree(mid)
	resizeBuckets(in)
	mergeArcBuckets(in, out, out.Head.Weight, out.Tail.Weight)

	g.removeArc(out)
	g.removeNode(mid)
}
