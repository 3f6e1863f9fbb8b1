// SPDX-License-Identifier: MIT

package reeb

import (
	"fmt"
	"math"

	"github.com/katalvlaran/reebskel"
	"github.com/katalvlaran/reebskel/mesh"
)

// BuildOption customizes Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	keepNormal bool
}

// WithKeepNormalNodes skips the final RemoveNormalNodes pass, leaving one
// node per visible vertex. Mostly useful to inspect raw construction.
func WithKeepNormalNodes() BuildOption {
	return func(c *buildConfig) { c.keepNormal = true }
}

// mergeDirection selects how mergeArcEdges moves provenance.
type mergeDirection int

const (
	mergeAppend mergeDirection = iota // src edges are stolen by dst
	mergeLower                        // dst covers the lower part of src's edges
	mergeHigher                       // dst covers the upper part of src's edges
)

// Build constructs the Reeb graph of the current vertex weights of m.
//
// Every vertex used by a visible triangle becomes a node; triangles whose
// face or edges are hidden are skipped. Each triangle is folded into the
// graph online, then pass-through nodes are merged away (unless
// WithKeepNormalNodes) and empty buckets are interpolated.
//
// Errors:
//   - ErrEmptyMesh when no visible triangle remains.
//   - ErrInvalidWeight for NaN or infinite weights.
//   - ErrDuplicateWeights when two corners of a triangle share a weight.
func Build(m *mesh.Mesh, opts ...BuildOption) (*Graph, error) {
	const method = "Build"
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Visible triangles.
	var tris []mesh.Triangle
	for _, t := range m.Triangles() {
		if !triangleVisible(m, t) {
			continue
		}
		tris = append(tris, t)
	}
	if len(tris) == 0 {
		return nil, fmt.Errorf("%s: %w", method, ErrEmptyMesh)
	}

	// 2) Weights must be finite and distinct per triangle.
	used := make([]bool, m.NumVertices())
	for _, t := range tris {
		for i, v := range t.V {
			w := m.Weight(v)
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("%s: vertex %d: %w", method, v, ErrInvalidWeight)
			}
			if w == m.Weight(t.V[(i+1)%3]) {
				return nil, fmt.Errorf("%s: face %d, vertices %d and %d: %w",
					method, t.Face, v, t.V[(i+1)%3], ErrDuplicateWeights)
			}
			used[v] = true
		}
	}

	// 3) Nodes in vertex order.
	g := NewGraph()
	for v, ok := range used {
		if ok {
			g.addNode(v, m.Position(v), m.Weight(v))
		}
	}

	// 4) Online triangle folding.
	for _, t := range tris {
		g.addTriangle(g.byIndex[t.V[0]], g.byIndex[t.V[1]], g.byIndex[t.V[2]], t.Face)
	}
	g.compact()
	reebskel.Logger().Debug("reeb: raw graph",
		"triangles", len(tris), "nodes", len(g.nodes), "arcs", len(g.arcs))

	// 5) Simplify and embed.
	if !cfg.keepNormal {
		RemoveNormalNodes(g)
	}
	FillEmptyBuckets(g)
	return g, nil
}

// triangleVisible reports whether none of the mesh edges of t is hidden.
// The diagonal of a split quad is not a mesh edge unless hidden explicitly.
func triangleVisible(m *mesh.Mesh, t mesh.Triangle) bool {
	for i := 0; i < 3; i++ {
		if m.IsEdgeHidden(t.V[i], t.V[(i+1)%3]) {
			return false
		}
	}
	return true
}

// createArc returns the lowest provenance record of the mesh edge (n1,n2),
// creating a fresh arc with linearly seeded buckets on first sight.
func (g *Graph) createArc(n1, n2 *Node) *Edge {
	k := mesh.MakeEdgeKey(n1.Index, n2.Index)
	if c := g.chains[k]; c != nil && len(c.edges) > 0 {
		return c.edges[0]
	}

	v1, v2 := n1, n2
	if v1.Weight > v2.Weight {
		v1, v2 = v2, v1
	}
	a := g.newArc(v1, v2)
	e := &Edge{V1: v1, V2: v2, Arc: a}
	a.edges = append(a.edges, e)
	c := g.chainOf(k)
	c.edges = append(c.edges, e)

	allocBuckets(a)
	span := v2.Weight - v1.Weight
	for i := range a.Buckets {
		b := &a.Buckets[i]
		b.Pos = lerp(v1.Pos, v2.Pos, (b.Val-v1.Weight)/span)
		b.NV = 1
	}
	return e
}

// addTriangle folds one triangle into the graph: its longest edge path is
// glued to the two shorter ones, lowest first.
func (g *Graph) addTriangle(n1, n2, n3 *Node, face int) {
	re1 := g.createArc(n1, n2)
	re2 := g.createArc(n2, n3)
	re3 := g.createArc(n3, n1)
	re1.Arc.faces[face] = struct{}{}
	re2.Arc.faces[face] = struct{}{}
	re3.Arc.faces[face] = struct{}{}

	len1 := math.Abs(n1.Weight - n2.Weight)
	len2 := math.Abs(n2.Weight - n3.Weight)
	len3 := math.Abs(n3.Weight - n1.Weight)

	// e1 spans the whole triangle.
	var e1, e2, e3 *Edge
	switch {
	case len1 >= len2 && len1 >= len3:
		e1, e2, e3 = re1, re2, re3
	case len2 >= len1 && len2 >= len3:
		e1, e2, e3 = re2, re1, re3
	default:
		e1, e2, e3 = re3, re2, re1
	}
	// e2 starts at the lowest corner.
	if e3.V1.Weight < e2.V1.Weight {
		e2, e3 = e3, e2
	}
	g.mergePaths(e1, e2, e3)
}

// mergePaths glues the long path onto the low short path, then onto the
// high one.
func (g *Graph) mergePaths(e1, e2, e3 *Edge) {
	g.glue(e1.Arc, e2.Arc, e1, e2)
	g.glue(e1.Arc, e3.Arc, e1, e3)
}

// glue walks two provenance chains in weight order, merging the arcs they
// pass through until a total merge happens or a chain runs out.
func (g *Graph) glue(a0, a1 *Arc, e0, e1 *Edge) {
	for a0 != nil && a1 != nil && a0 != a1 {
		if g.mergeArcs(a0, a1) {
			return
		}
		if a0.Tail.Weight < a1.Tail.Weight {
			e0 = g.nextEdge(e0)
			a0 = arcOf(e0)
		} else {
			e1 = g.nextEdge(e1)
			a1 = arcOf(e1)
		}
	}
}

func (g *Graph) nextEdge(e *Edge) *Edge {
	c := g.chains[edgeKeyOf(e)]
	if c == nil {
		return nil
	}
	return c.next(e)
}

func arcOf(e *Edge) *Arc {
	if e == nil {
		return nil
	}
	return e.Arc
}

// mergeArcs merges two arcs sharing an endpoint. Arcs with the same head and
// tail merge totally (a1 is removed, true is returned); arcs sharing only one
// endpoint are split so the shorter one absorbs the overlapping part.
func (g *Graph) mergeArcs(a0, a1 *Arc) bool {
	switch {
	case a0.Head == a1.Head && a0.Tail == a1.Tail:
		g.mergeArcEdges(a0, a1, mergeAppend)
		mergeFaces(a0, a1)
		mergeArcBuckets(a0, a1, a0.Head.Weight, a0.Tail.Weight)
		decDegree(a1.Head)
		decDegree(a1.Tail)
		g.removeArc(a1)
		return true

	case a0.Head == a1.Head:
		if a0.Tail.Weight > a1.Tail.Weight {
			// a1.Tail lies inside a0.
			g.mergeArcEdges(a1, a0, mergeLower)
			mergeFaces(a1, a0)
			mergeArcBuckets(a1, a0, a1.Head.Weight, a1.Tail.Weight)
			setHead(a0, a1.Tail)
			resizeBuckets(a0)
		} else {
			g.mergeArcEdges(a0, a1, mergeLower)
			mergeFaces(a0, a1)
			mergeArcBuckets(a0, a1, a0.Head.Weight, a0.Tail.Weight)
			setHead(a1, a0.Tail)
			resizeBuckets(a1)
		}

	case a0.Tail == a1.Tail:
		if a0.Head.Weight > a1.Head.Weight {
			// a0.Head lies inside a1.
			g.mergeArcEdges(a0, a1, mergeHigher)
			mergeFaces(a0, a1)
			mergeArcBuckets(a0, a1, a0.Head.Weight, a0.Tail.Weight)
			setTail(a1, a0.Head)
			resizeBuckets(a1)
		} else {
			g.mergeArcEdges(a1, a0, mergeHigher)
			mergeFaces(a1, a0)
			mergeArcBuckets(a1, a0, a1.Head.Weight, a1.Tail.Weight)
			setTail(a0, a1.Head)
			resizeBuckets(a0)
		}
	}
	return false
}

// mergeArcEdges transfers provenance from src to dst. Append moves the
// records; lower and higher copy them and splice the copy into each chain
// just below or just above the original.
func (g *Graph) mergeArcEdges(dst, src *Arc, dir mergeDirection) {
	if dir == mergeAppend {
		for _, e := range src.edges {
			e.Arc = dst
		}
		dst.edges = append(dst.edges, src.edges...)
		src.edges = nil
		return
	}
	for _, e := range src.edges {
		cp := &Edge{V1: e.V1, V2: e.V2, Arc: dst}
		dst.edges = append(dst.edges, cp)
		c := g.chainOf(edgeKeyOf(e))
		if dir == mergeLower {
			c.insertBefore(e, cp)
		} else {
			c.insertAfter(e, cp)
		}
	}
}
