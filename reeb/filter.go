// SPDX-License-Identifier: MIT

package reeb

import (
	"github.com/tidwall/btree"
)

// filterArc re-routes every arc touching removed onto keep. Arcs collapsing
// into a loop are dropped, except src which the caller removes. With merging
// set, the embedding and length of src are folded into each re-routed arc
// (and first into src's parallel arcs).
func (g *Graph) filterArc(keep, removed *Node, src *Arc, merging bool) {
	// 1) Parallel arcs hand their samples to src before it spreads them.
	if merging {
		for _, a := range g.arcs {
			if a.removed || a == src {
				continue
			}
			if a.Head == src.Head && a.Tail == src.Tail {
				mergeArcBuckets(src, a, src.Head.Weight, src.Tail.Weight)
			}
		}
	}

	// 2) Re-route.
	for _, a := range g.arcs {
		if a.removed || !a.Touches(removed) {
			continue
		}
		if a.Head == removed {
			a.Head = keep
		} else {
			a.Tail = keep
		}

		if a.Head == a.Tail {
			decDegree(keep)
			if a != src {
				g.removeArc(a)
			}
			continue
		}

		// Diamond shapes can invert an arc once its endpoint moved.
		if a.Head.Weight > a.Tail.Weight {
			flipArc(a)
		}
		incDegree(keep)
		mergeFaces(a, src)
		resizeBuckets(a)
		if merging {
			mergeArcBuckets(a, src, a.Head.Weight, a.Tail.Weight)
			a.Length += src.Length
		}
		fillEmptyBuckets(a)
	}
}

// FilterNull collapses every arc that carries no bucket: its tail is merged
// into its head, the head moving toward the tail in proportion to their
// degrees. It reports whether any arc was collapsed.
func FilterNull(g *Graph) bool {
	fired := false
	for i := 0; i < len(g.arcs); i++ {
		a := g.arcs[i]
		if a.removed || !a.IsNull() {
			continue
		}
		keep, gone := a.Head, a.Tail
		blend := float64(keep.Degree) / float64(keep.Degree+gone.Degree)
		keep.Pos = lerp(gone.Pos, keep.Pos, blend)

		g.filterArc(keep, gone, a, false)
		g.removeArc(a)
		g.removeNode(gone)
		fired = true
	}
	g.compact()
	return fired
}

// queued is one entry of the length-ordered work queue.
type queued struct {
	length float64
	id     int
	arc    *Arc
}

func queuedLess(a, b queued) bool {
	if a.length != b.length {
		return a.length < b.length
	}
	return a.id < b.id
}

// lengthQueue returns the live arcs ordered by (Length, ID).
func (g *Graph) lengthQueue() *btree.BTreeG[queued] {
	q := btree.NewBTreeG[queued](queuedLess)
	for _, a := range g.arcs {
		if !a.removed {
			q.Set(queued{length: a.Length, id: a.ID, arc: a})
		}
	}
	return q
}

// drainShort pops arcs shortest first while they are below threshold and
// hands each live one to collapse. Arcs whose length grew since they were
// queued are re-queued. It reports whether collapse ever returned true.
func drainShort(q *btree.BTreeG[queued], threshold float64, collapse func(*Arc) bool) bool {
	fired := false
	for {
		it, ok := q.PopMin()
		if !ok {
			return fired
		}
		a := it.arc
		if a.removed {
			continue
		}
		if a.Length != it.length {
			q.Set(queued{length: a.Length, id: a.ID, arc: a})
			continue
		}
		if a.Length >= threshold {
			return fired
		}
		if collapse(a) {
			fired = true
		}
	}
}

// updateArcLengths recomputes every arc's polyline length.
func updateArcLengths(g *Graph) {
	for _, a := range g.arcs {
		if !a.removed {
			a.Length = arcLength(a)
		}
	}
}

// FilterInternal collapses, shortest first, every arc shorter than
// threshold whose two endpoints both have degree > 1. The tail is merged
// into the head so arcs never flip. A threshold ≤ 0 disables the filter.
func FilterInternal(g *Graph, threshold float64) bool {
	if threshold <= 0 {
		return false
	}
	updateArcLengths(g)
	fired := drainShort(g.lengthQueue(), threshold, func(a *Arc) bool {
		if a.Head.Degree <= 1 || a.Tail.Degree <= 1 {
			return false
		}
		keep, gone := a.Head, a.Tail
		g.filterArc(keep, gone, a, true)
		g.removeArc(a)
		g.removeNode(gone)
		return true
	})
	g.compact()
	return fired
}

// terminalEnds splits a terminal arc into its degree-1 end and the other.
func terminalEnds(a *Arc) (term, mid *Node, ok bool) {
	switch {
	case a.Head.Degree == 1:
		return a.Head, a.Tail, true
	case a.Tail.Degree == 1:
		return a.Tail, a.Head, true
	}
	return nil, nil, false
}

// pruneTerminal drops the terminal arc a together with its degree-1 end.
// Only arcs hanging from a branch node (degree ≥ 3) go. Arcs hanging from a
// degree-2 node are kept, and so is an isolated arc whose other end also has
// degree 1: removing it would delete the whole component.
func (g *Graph) pruneTerminal(a *Arc, term, mid *Node) bool {
	if mid.Degree <= 2 {
		return false
	}
	decDegree(mid)
	decDegree(term)
	g.removeArc(a)
	g.removeNode(term)
	return true
}

// FilterExternal prunes, shortest first, every terminal arc shorter than
// threshold whose inner end is a branch node (see pruneTerminal). A
// threshold ≤ 0 disables the filter.
func FilterExternal(g *Graph, threshold float64) bool {
	if threshold <= 0 {
		return false
	}
	updateArcLengths(g)
	fired := drainShort(g.lengthQueue(), threshold, func(a *Arc) bool {
		term, mid, ok := terminalEnds(a)
		if !ok {
			return false
		}
		return g.pruneTerminal(a, term, mid)
	})
	g.compact()
	return fired
}
