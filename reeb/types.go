// SPDX-License-Identifier: MIT

package reeb

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/reebskel/mesh"
)

// SymmetryKind tags the symmetry detected at a node.
type SymmetryKind int

const (
	// SymmetryNone marks nodes without detected symmetry.
	SymmetryNone SymmetryKind = iota
	// SymmetryAxial marks a node whose two child subtrees mirror across a plane.
	SymmetryAxial
	// SymmetryRadial marks a node whose three or more child subtrees repeat
	// around an axis.
	SymmetryRadial
)

// String returns the lower-case kind name.
func (k SymmetryKind) String() string {
	switch k {
	case SymmetryAxial:
		return "axial"
	case SymmetryRadial:
		return "radial"
	default:
		return "none"
	}
}

// Node is a critical point of the field: a branch, a terminal, or (during
// construction) a mesh vertex.
type Node struct {
	Index  int // stable; the mesh vertex index the node was created from
	Pos    r3.Vec
	Weight float64
	Degree int // live arcs touching the node, kept incrementally
	Flag   int // scratch marker for traversals

	SymmetryFlag  SymmetryKind
	SymmetryAxis  r3.Vec // valid when SymmetryFlag != SymmetryNone
	SymmetryLevel int
	Subgraph      int // connected component index after FlagSubgraphs

	LinkUp   *Node // same node one level coarser
	LinkDown *Node // same node one level finer

	arcs    []*Arc
	removed bool
}

// Arcs returns the adjacency built by the last Graph.BuildAdjacency call.
// It is a cache, never the source of truth.
func (n *Node) Arcs() []*Arc { return n.arcs }

// Bucket is one embedding sample of an arc at the integer field value Val.
type Bucket struct {
	Pos r3.Vec
	NV  int // number of contributions averaged into Pos
	Val float64
}

// Edge records that the mesh edge (V1,V2) belongs, for part of its weight
// range, to Arc. V1 is the lower-weight endpoint.
type Edge struct {
	V1, V2 *Node
	Arc    *Arc
}

// Arc is a monotonic strip of the surface between Head and Tail.
type Arc struct {
	ID      int
	Head    *Node
	Tail    *Node
	Buckets []Bucket
	Length  float64 // head → buckets → tail polyline length

	SymmetryLevel int
	SymmetryGroup int
	SymmetryFlag  SymmetryKind
	Angle         float64 // smart-filter flatness, |mean face normal|²

	LinkUp   *Arc // surviving copy one level coarser
	LinkDown *Arc // source arc one level finer

	edges   []*Edge
	faces   map[int]struct{}
	removed bool
}

// Edges returns the provenance edges owned by the arc.
func (a *Arc) Edges() []*Edge { return a.edges }

// FaceCount returns the number of mesh faces that contributed to the arc.
func (a *Arc) FaceCount() int { return len(a.faces) }

// Faces returns the contributing mesh face indices in ascending order.
func (a *Arc) Faces() []int {
	out := make([]int, 0, len(a.faces))
	for f := range a.faces {
		out = append(out, f)
	}
	sort.Ints(out)
	return out
}

// HasFace reports whether mesh face f contributed to the arc.
func (a *Arc) HasFace(f int) bool {
	_, ok := a.faces[f]
	return ok
}

// OtherNode returns the endpoint of a opposite n.
func (a *Arc) OtherNode(n *Node) *Node {
	if a.Head == n {
		return a.Tail
	}
	return a.Head
}

// IsNull reports whether the arc carries no bucket.
func (a *Arc) IsNull() bool { return len(a.Buckets) == 0 }

// Touches reports whether n is an endpoint of a.
func (a *Arc) Touches(n *Node) bool { return a.Head == n || a.Tail == n }

// edgeChain is the ordered provenance history of one mesh edge, lowest
// weight segment first.
type edgeChain struct {
	edges []*Edge
}

// Graph is one resolution level of a Reeb graph. It exclusively owns its
// nodes and arcs.
type Graph struct {
	nodes  []*Node
	arcs   []*Arc
	chains map[mesh.EdgeKey]*edgeChain

	byIndex map[int]*Node
	nextArc int

	// Length is the longest terminal-to-terminal path, set by CalculateGraphLength.
	Length float64
	// Level is the ladder level, 0 = finest.
	Level int

	LinkUp   *Graph // next coarser level
	LinkDown *Graph // next finer level
}
