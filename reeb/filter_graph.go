// SPDX-License-Identifier: MIT

package reeb

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/reebskel"
	"github.com/katalvlaran/reebskel/mesh"
)

// FilterOptions selects the filters FilterGraph runs. Thresholds are
// absolute arc lengths; zero disables a filter.
type FilterOptions struct {
	InternalThreshold float64
	ExternalThreshold float64

	// Smart enables FilterSmart; it needs the mesh the graph was built from.
	Smart          bool
	SmartThreshold float64
	Mesh           *mesh.Mesh

	// Cycles enables FilterCycles.
	Cycles bool

	// JoinThreshold is the terminal distance below which JoinSubgraphs fuses
	// components; zero disables joining.
	JoinThreshold float64
}

// DefaultFilterOptions enables cycle filtering only.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{SmartThreshold: 0.5, Cycles: true}
}

// FilterGraph runs null, internal and external filtering until none of them
// fires, then the smart, cycle and join filters once, then repositions
// nodes, removes pass-through nodes and refreshes lengths. It reports
// whether any filter changed the graph.
func FilterGraph(g *Graph, opt FilterOptions) bool {
	before := g.NumArcs()
	updateArcLengths(g)

	// 1) Length-driven collapse to a fixed point.
	fired := false
	for {
		pass := FilterNull(g)
		pass = FilterInternal(g, opt.InternalThreshold) || pass
		pass = FilterExternal(g, opt.ExternalThreshold) || pass
		if !pass {
			break
		}
		RemoveNormalNodes(g)
		fired = true
	}

	// 2) One-shot filters.
	if opt.Smart && opt.Mesh != nil {
		fired = FilterSmart(g, opt.Mesh, opt.SmartThreshold) || fired
	}
	if opt.Cycles {
		fired = FilterCycles(g) || fired
	}
	if opt.JoinThreshold > 0 {
		fired = JoinSubgraphs(g, opt.JoinThreshold) || fired
	}

	// 3) Clean up.
	RepositionNodes(g)
	RemoveNormalNodes(g)
	FillEmptyBuckets(g)
	CalculateGraphLength(g)

	reebskel.Logger().Debug("reeb: filtered",
		"level", g.Level, "arcs_before", before, "arcs_after", g.NumArcs(), "nodes", g.NumNodes())
	return fired
}

// RepositionNodes moves every node to the mean of the end buckets of its
// arcs. Nodes whose arcs carry no bucket keep their position.
func RepositionNodes(g *Graph) {
	sum := make(map[*Node]r3.Vec)
	cnt := make(map[*Node]int)
	for _, a := range g.arcs {
		if a.removed || len(a.Buckets) == 0 {
			continue
		}
		sum[a.Head] = r3.Add(sum[a.Head], a.Buckets[0].Pos)
		cnt[a.Head]++
		sum[a.Tail] = r3.Add(sum[a.Tail], a.Buckets[len(a.Buckets)-1].Pos)
		cnt[a.Tail]++
	}
	for n, c := range cnt {
		n.Pos = r3.Scale(1/float64(c), sum[n])
	}
}
