// SPDX-License-Identifier: MIT

package reeb

import (
	"github.com/katalvlaran/reebskel/dfs"
)

// FilterCycles merges every group of arcs sharing the same head and tail
// into the first arc of the group. Acyclic graphs return at once.
func FilterCycles(g *Graph) bool {
	cyclic, _, err := dfs.DetectCycles(g.CoreView())
	if err != nil || !cyclic {
		return false
	}

	type ends struct{ head, tail *Node }
	first := make(map[ends]*Arc)
	fired := false
	for _, a := range g.arcs {
		if a.removed {
			continue
		}
		k := ends{a.Head, a.Tail}
		dst, ok := first[k]
		if !ok {
			first[k] = a
			continue
		}
		g.mergeArcEdges(dst, a, mergeAppend)
		mergeFaces(dst, a)
		mergeArcBuckets(dst, a, dst.Head.Weight, dst.Tail.Weight)
		decDegree(dst.Head)
		decDegree(dst.Tail)
		g.removeArc(a)
		fired = true
	}
	g.compact()
	return fired
}
