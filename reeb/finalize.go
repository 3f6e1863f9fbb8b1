// SPDX-License-Identifier: MIT

package reeb

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// Kernel is a 3-tap smoothing kernel applied to interior buckets. The taps
// are divided by their sum before use, so Kernel{1, 2, 1} acts as
// KernelSmooth and only the ratios between F1, F2 and F3 matter. A kernel
// whose taps sum to zero is ignored.
type Kernel struct {
	F1, F2, F3 float64
}

// Predefined kernels.
var (
	KernelAverage = Kernel{F1: 1.0 / 3, F2: 1.0 / 3, F3: 1.0 / 3}
	KernelSmooth  = Kernel{F1: 0.25, F2: 0.5, F3: 0.25}
	KernelSharpen = Kernel{F1: -0.25, F2: 1.5, F3: -0.25}
)

// SortNodes orders the nodes by ascending weight, stable.
func SortNodes(g *Graph) {
	g.compact()
	sort.SliceStable(g.nodes, func(i, j int) bool { return g.nodes[i].Weight < g.nodes[j].Weight })
}

// SortArcs orders the arcs by ascending head weight, stable.
func SortArcs(g *Graph) {
	g.compact()
	sort.SliceStable(g.arcs, func(i, j int) bool { return g.arcs[i].Head.Weight < g.arcs[j].Head.Weight })
}

// Postprocess applies passes rounds of the kernel k to the interior buckets
// of every arc. Each round reads a snapshot of the previous positions. The
// first and last bucket of an arc never move. The kernel is normalized by
// the sum of its taps (see Kernel).
func Postprocess(g *Graph, k Kernel, passes int) {
	sum := k.F1 + k.F2 + k.F3
	if sum == 0 || passes <= 0 {
		return
	}
	var scratch []r3.Vec
	for _, a := range g.arcs {
		if a.removed || len(a.Buckets) < 3 {
			continue
		}
		for p := 0; p < passes; p++ {
			scratch = scratch[:0]
			for i := range a.Buckets {
				scratch = append(scratch, a.Buckets[i].Pos)
			}
			for i := 1; i < len(a.Buckets)-1; i++ {
				v := r3.Scale(k.F1, scratch[i-1])
				v = r3.Add(v, r3.Scale(k.F2, scratch[i]))
				v = r3.Add(v, r3.Scale(k.F3, scratch[i+1]))
				a.Buckets[i].Pos = r3.Scale(1/sum, v)
			}
		}
	}
}

// CalculateGraphLength refreshes every arc length and sets g.Length to the
// longest path found from any terminal node (from any node when a component
// has no terminal). The result is exact on trees.
func CalculateGraphLength(g *Graph) float64 {
	updateArcLengths(g)
	g.BuildAdjacency()

	starts := g.Terminals()
	if len(starts) == 0 {
		starts = g.Nodes()
	}
	var longest float64
	for _, s := range starts {
		if d := farthest(s); d > longest {
			longest = d
		}
	}
	g.Length = longest
	return longest
}

// farthest returns the largest path length from s reached by a depth-first
// walk that never revisits a node.
func farthest(s *Node) float64 {
	type frame struct {
		n    *Node
		dist float64
	}
	seen := map[*Node]bool{s: true}
	stack := []frame{{s, 0}}
	var best float64
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.dist > best {
			best = f.dist
		}
		for _, a := range f.n.arcs {
			o := a.OtherNode(f.n)
			if seen[o] {
				continue
			}
			seen[o] = true
			stack = append(stack, frame{o, f.dist + a.Length})
		}
	}
	return best
}

// Finalize prepares a filtered graph for consumers: nodes and arcs sorted by
// weight, passes rounds of smoothing with k, empty buckets filled, lengths
// refreshed.
func Finalize(g *Graph, passes int, k Kernel) {
	SortNodes(g)
	SortArcs(g)
	g.BuildAdjacency()
	Postprocess(g, k, passes)
	FillEmptyBuckets(g)
	CalculateGraphLength(g)
}
