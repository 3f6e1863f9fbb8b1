// SPDX-License-Identifier: MIT

package reeb

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/reebskel/core"
	"github.com/katalvlaran/reebskel/mesh"
)

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		chains:  make(map[mesh.EdgeKey]*edgeChain),
		byIndex: make(map[int]*Node),
	}
}

// Nodes returns the live nodes in graph order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		if !n.removed {
			out = append(out, n)
		}
	}
	return out
}

// Arcs returns the live arcs in graph order.
func (g *Graph) Arcs() []*Arc {
	out := make([]*Arc, 0, len(g.arcs))
	for _, a := range g.arcs {
		if !a.removed {
			out = append(out, a)
		}
	}
	return out
}

// NumNodes returns the number of live nodes.
func (g *Graph) NumNodes() int { return len(g.Nodes()) }

// NumArcs returns the number of live arcs.
func (g *Graph) NumArcs() int { return len(g.Arcs()) }

// NodeByIndex returns the live node created from mesh vertex idx, or nil.
func (g *Graph) NodeByIndex(idx int) *Node {
	n := g.byIndex[idx]
	if n == nil || n.removed {
		return nil
	}
	return n
}

// Chain returns the provenance history of mesh edge (u,v), lowest segment
// first. Copies made by Copy carry no provenance.
func (g *Graph) Chain(u, v int) []*Edge {
	c := g.chains[mesh.MakeEdgeKey(u, v)]
	if c == nil {
		return nil
	}
	return append([]*Edge(nil), c.edges...)
}

// BuildAdjacency refreshes Node.Arcs for every live node.
func (g *Graph) BuildAdjacency() {
	for _, n := range g.nodes {
		n.arcs = n.arcs[:0]
	}
	for _, a := range g.arcs {
		if a.removed {
			continue
		}
		a.Head.arcs = append(a.Head.arcs, a)
		if a.Tail != a.Head {
			a.Tail.arcs = append(a.Tail.arcs, a)
		}
	}
}

// CoreView returns the live graph as an undirected core.Graph: vertices are
// node indices, edge IDs are arc IDs.
func (g *Graph) CoreView() *core.Graph {
	cg := core.NewGraph()
	for _, n := range g.nodes {
		if !n.removed {
			cg.AddVertex(n.Index)
		}
	}
	for _, a := range g.arcs {
		if a.removed {
			continue
		}
		// Arc IDs are unique and both endpoints exist, so AddEdge cannot fail.
		_ = cg.AddEdge(a.ID, a.Head.Index, a.Tail.Index)
	}
	return cg
}

// arcByID maps live arc IDs to arcs.
func (g *Graph) arcByID() map[int]*Arc {
	out := make(map[int]*Arc, len(g.arcs))
	for _, a := range g.arcs {
		if !a.removed {
			out[a.ID] = a
		}
	}
	return out
}

// Terminals returns the live degree-1 nodes.
func (g *Graph) Terminals() []*Node {
	var out []*Node
	for _, n := range g.nodes {
		if !n.removed && n.Degree == 1 {
			out = append(out, n)
		}
	}
	return out
}

// Root returns the live node of lowest weight (ties by index), or nil.
func (g *Graph) Root() *Node {
	var root *Node
	for _, n := range g.nodes {
		if n.removed {
			continue
		}
		if root == nil || n.Weight < root.Weight || (n.Weight == root.Weight && n.Index < root.Index) {
			root = n
		}
	}
	return root
}

// addNode appends a node created from mesh vertex idx.
func (g *Graph) addNode(idx int, pos r3.Vec, w float64) *Node {
	n := &Node{Index: idx, Pos: pos, Weight: w}
	g.nodes = append(g.nodes, n)
	g.byIndex[idx] = n
	return n
}

// newArc appends an arc between head and tail and bumps both degrees.
func (g *Graph) newArc(head, tail *Node) *Arc {
	a := &Arc{ID: g.nextArc, Head: head, Tail: tail, faces: make(map[int]struct{})}
	g.nextArc++
	g.arcs = append(g.arcs, a)
	incDegree(head)
	incDegree(tail)
	return a
}

func incDegree(n *Node) { n.Degree++ }

func decDegree(n *Node) { n.Degree-- }

// setHead moves the head of a to n, keeping both degrees.
func setHead(a *Arc, n *Node) {
	decDegree(a.Head)
	a.Head = n
	incDegree(n)
}

// setTail moves the tail of a to n, keeping both degrees.
func setTail(a *Arc, n *Node) {
	decDegree(a.Tail)
	a.Tail = n
	incDegree(n)
}

// removeArc unlinks a, dropping its provenance from the edge chains. Degrees
// are not touched: callers account for them explicitly.
func (g *Graph) removeArc(a *Arc) {
	if a.removed {
		return
	}
	a.removed = true
	for _, e := range a.edges {
		g.dropEdge(e)
	}
	a.edges = nil
}

// removeNode unlinks n.
func (g *Graph) removeNode(n *Node) {
	n.removed = true
	if g.byIndex[n.Index] == n {
		delete(g.byIndex, n.Index)
	}
}

// compact drops removed nodes and arcs from the owned slices.
func (g *Graph) compact() {
	nodes := g.nodes[:0]
	for _, n := range g.nodes {
		if !n.removed {
			nodes = append(nodes, n)
		}
	}
	for i := len(nodes); i < len(g.nodes); i++ {
		g.nodes[i] = nil
	}
	g.nodes = nodes

	arcs := g.arcs[:0]
	for _, a := range g.arcs {
		if !a.removed {
			arcs = append(arcs, a)
		}
	}
	for i := len(arcs); i < len(g.arcs); i++ {
		g.arcs[i] = nil
	}
	g.arcs = arcs
}

// chainOf returns the provenance chain of mesh edge key k, creating it.
func (g *Graph) chainOf(k mesh.EdgeKey) *edgeChain {
	c := g.chains[k]
	if c == nil {
		c = &edgeChain{}
		g.chains[k] = c
	}
	return c
}

func edgeKeyOf(e *Edge) mesh.EdgeKey { return mesh.MakeEdgeKey(e.V1.Index, e.V2.Index) }

// dropEdge removes e from its chain.
func (g *Graph) dropEdge(e *Edge) {
	k := edgeKeyOf(e)
	c := g.chains[k]
	if c == nil {
		return
	}
	if i := c.indexOf(e); i >= 0 {
		c.edges = append(c.edges[:i], c.edges[i+1:]...)
	}
	if len(c.edges) == 0 {
		delete(g.chains, k)
	}
}

func (c *edgeChain) indexOf(e *Edge) int {
	for i, x := range c.edges {
		if x == e {
			return i
		}
	}
	return -1
}

// next returns the chain successor of e, or nil.
func (c *edgeChain) next(e *Edge) *Edge {
	i := c.indexOf(e)
	if i < 0 || i+1 >= len(c.edges) {
		return nil
	}
	return c.edges[i+1]
}

func (c *edgeChain) insertBefore(at, e *Edge) {
	i := c.indexOf(at)
	if i < 0 {
		i = 0
	}
	c.edges = append(c.edges, nil)
	copy(c.edges[i+1:], c.edges[i:])
	c.edges[i] = e
}

func (c *edgeChain) insertAfter(at, e *Edge) {
	i := c.indexOf(at) + 1
	if i <= 0 {
		i = len(c.edges)
	}
	c.edges = append(c.edges, nil)
	copy(c.edges[i+1:], c.edges[i:])
	c.edges[i] = e
}

// mergeFaces adds every face of src to dst.
func mergeFaces(dst, src *Arc) {
	for f := range src.faces {
		dst.faces[f] = struct{}{}
	}
}

// sortedNodeIndices returns the live node indices ascending.
func (g *Graph) sortedNodeIndices() []int {
	out := make([]int, 0, len(g.nodes))
	for _, n := range g.nodes {
		if !n.removed {
			out = append(out, n.Index)
		}
	}
	sort.Ints(out)
	return out
}
