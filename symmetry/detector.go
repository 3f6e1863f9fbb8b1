// SPDX-License-Identifier: MIT

package symmetry

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/reebskel"
	"github.com/katalvlaran/reebskel/bfs"
	"github.com/katalvlaran/reebskel/dfs"
	"github.com/katalvlaran/reebskel/reeb"
)

// DefaultLengthTolerance is the relative subtree length difference under
// which two branches may be symmetric.
const DefaultLengthTolerance = 0.1

// Detector is the default Marker. It groups the child subtrees of every
// node by shape and length, tests each group for axial or radial symmetry
// within the angle limit, and hands passing groups to OnAxial / OnRadial.
type Detector struct {
	LengthTolerance float64
	OnAxial         AxialFunc
	OnRadial        RadialFunc
}

// Option configures a Detector.
type Option func(*Detector)

// WithLengthTolerance sets the relative length tolerance. Panics when tol
// is negative or NaN.
func WithLengthTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) {
		panic(fmt.Sprintf("symmetry: WithLengthTolerance(%g): must be >= 0", tol))
	}
	return func(d *Detector) { d.LengthTolerance = tol }
}

// WithCallbacks replaces the callbacks. A nil callback disables that kind
// of enforcement; detection and flagging still happen.
func WithCallbacks(axial AxialFunc, radial RadialFunc) Option {
	return func(d *Detector) {
		d.OnAxial = axial
		d.OnRadial = radial
	}
}

// NewDetector returns a Detector enforcing symmetry with Axial and Radial.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		LengthTolerance: DefaultLengthTolerance,
		OnAxial:         Axial,
		OnRadial:        Radial,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// branch is one child subtree: the arc from its parent and the far node.
type branch struct {
	arc    *reeb.Arc
	node   *reeb.Node
	shape  string
	length float64
}

// Mark clears and recomputes the symmetry fields of every node and arc of
// g reachable from root. A node whose branches pass the test gets
// SymmetryFlag, SymmetryAxis and SymmetryLevel (its depth + 1); arcs of
// every grouped branch set get SymmetryGroup and SymmetryLevel, and
// SymmetryFlag when the group passes.
//
// Errors: ErrRootNotFound, ErrCyclicGraph, or the context error when ctx
// is done before the tree walk completes.
func (d *Detector) Mark(ctx context.Context, g *reeb.Graph, root *reeb.Node, limit float64) error {
	const method = "Mark"
	if root == nil || g.NodeByIndex(root.Index) != root {
		return fmt.Errorf("%s: %w", method, ErrRootNotFound)
	}

	// 1) Trees only.
	cv := g.CoreView()
	cyclic, _, err := dfs.DetectCycles(cv)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if cyclic {
		return fmt.Errorf("%s: %w", method, ErrCyclicGraph)
	}
	resetSymmetry(g)

	// 2) Orient the tree away from root.
	res, err := bfs.BFS(cv, root.Index, bfs.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	arcs := make(map[int]*reeb.Arc)
	for _, a := range g.Arcs() {
		arcs[a.ID] = a
	}
	children := make(map[int][]*branch)
	byIndex := make(map[int]*branch)
	for _, v := range res.Order {
		p, ok := res.Parent[v]
		if !ok {
			continue
		}
		b := &branch{arc: arcs[res.ParentEdge[v]], node: g.NodeByIndex(v)}
		children[p] = append(children[p], b)
		byIndex[v] = b
	}

	// 3) Subtree shape and length, leaves first.
	for i := len(res.Order) - 1; i >= 0; i-- {
		v := res.Order[i]
		b := byIndex[v]
		if b == nil {
			continue
		}
		shapes := make([]string, 0, len(children[v]))
		var longest float64
		for _, c := range children[v] {
			shapes = append(shapes, c.shape)
			longest = math.Max(longest, c.length)
		}
		sort.Strings(shapes)
		b.shape = "(" + strings.Join(shapes, "") + ")"
		b.length = b.arc.Length + longest
	}

	// 4) Group and test, top-down, one depth level at a time.
	var group, axial, radial int
	for depth, vs := range res.Levels() {
		level := depth + 1
		for _, v := range vs {
			node := g.NodeByIndex(v)
			for _, set := range d.groups(children[v]) {
				group++
				for _, b := range set {
					b.arc.SymmetryGroup = group
					b.arc.SymmetryLevel = level
				}
				switch {
				case len(set) == 2 && d.markAxial(node, set, limit):
					axial++
				case len(set) > 2 && d.markRadial(node, set, limit):
					radial++
				default:
					continue
				}
				node.SymmetryLevel = level
			}
		}
	}
	reebskel.Logger().Debug("symmetry: marked",
		"root", root.Index, "groups", group, "axial", axial, "radial", radial)
	return nil
}

func resetSymmetry(g *reeb.Graph) {
	for _, n := range g.Nodes() {
		n.SymmetryFlag = reeb.SymmetryNone
		n.SymmetryAxis = r3.Vec{}
		n.SymmetryLevel = 0
	}
	for _, a := range g.Arcs() {
		a.SymmetryFlag = reeb.SymmetryNone
		a.SymmetryGroup = 0
		a.SymmetryLevel = 0
	}
}

// groups returns the sets of at least two branches with the same shape and
// lengths within the tolerance of the shortest one.
func (d *Detector) groups(bs []*branch) [][]*branch {
	if len(bs) < 2 {
		return nil
	}
	sorted := append([]*branch(nil), bs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].shape != sorted[j].shape {
			return sorted[i].shape < sorted[j].shape
		}
		return sorted[i].length < sorted[j].length
	})

	var out [][]*branch
	for i := 0; i < len(sorted); {
		first := sorted[i]
		j := i + 1
		for j < len(sorted) && sorted[j].shape == first.shape &&
			sorted[j].length-first.length <= d.LengthTolerance*sorted[j].length {
			j++
		}
		if j-i >= 2 {
			out = append(out, sorted[i:j])
		}
		i = j
	}
	return out
}

// angleDeg returns the angle between u and v in degrees; 180 when either is
// zero.
func angleDeg(u, v r3.Vec) float64 {
	nu, nv := r3.Norm(u), r3.Norm(v)
	if nu == 0 || nv == 0 {
		return 180
	}
	c := math.Max(-1, math.Min(1, r3.Dot(u, v)/(nu*nv)))
	return math.Acos(c) * 180 / math.Pi
}

// markAxial tests whether the far node of one branch mirrors the other
// across the bisecting plane through root.
func (d *Detector) markAxial(root *reeb.Node, set []*branch, limit float64) bool {
	b1, b2 := set[0], set[1]
	normal := r3.Sub(b1.node.Pos, b2.node.Pos)
	if r3.Norm(normal) == 0 {
		return false
	}
	m := mirror(b2.node.Pos, root.Pos, normal)
	if angleDeg(r3.Sub(b1.node.Pos, root.Pos), r3.Sub(m, root.Pos)) > limit {
		return false
	}

	root.SymmetryFlag = reeb.SymmetryAxial
	root.SymmetryAxis = r3.Unit(normal)
	b1.arc.SymmetryFlag = reeb.SymmetryAxial
	b2.arc.SymmetryFlag = reeb.SymmetryAxial
	if d.OnAxial != nil {
		d.OnAxial(root, b1.node, b2.node, b1.arc, b2.arc)
	}
	return true
}

// markRadial tests whether the branches repeat evenly around an axis
// through root at a common elevation.
func (d *Detector) markRadial(root *reeb.Node, set []*branch, limit float64) bool {
	dirs := make([]r3.Vec, len(set))
	var sum r3.Vec
	var scale float64
	for i, b := range set {
		dirs[i] = r3.Sub(b.node.Pos, root.Pos)
		sum = r3.Add(sum, dirs[i])
		scale += r3.Norm(dirs[i])
	}

	// 1) Axis: mean direction, or the ring plane normal for a flat star.
	axis := sum
	if r3.Norm(axis) <= 1e-9*scale {
		axis = r3.Cross(r3.Sub(dirs[1], dirs[0]), r3.Sub(dirs[2], dirs[0]))
	}
	if r3.Norm(axis) == 0 {
		return false
	}
	axis = r3.Unit(axis)

	// 2) Common elevation.
	elev := angleDeg(dirs[0], axis)
	for _, v := range dirs[1:] {
		if math.Abs(angleDeg(v, axis)-elev) > limit {
			return false
		}
	}

	// 3) Even azimuth spacing.
	ring := make([]RingArc, len(set))
	azimuth := make([]float64, len(set))
	for i, v := range dirs {
		p := r3.Sub(v, r3.Scale(r3.Dot(v, axis), axis))
		if r3.Norm(p) == 0 {
			return false
		}
		ring[i] = RingArc{Arc: set[i].arc, N: r3.Unit(p)}
	}
	for i := range ring {
		az := math.Atan2(r3.Dot(axis, r3.Cross(ring[0].N, ring[i].N)), r3.Dot(ring[0].N, ring[i].N))
		if az < 0 {
			az += 2 * math.Pi
		}
		azimuth[i] = az
	}
	sort.Sort(byAzimuth{ring, azimuth})
	step := 360 / float64(len(ring))
	for i := range ring {
		next := 2 * math.Pi
		if i+1 < len(ring) {
			next = azimuth[i+1]
		}
		if math.Abs((next-azimuth[i])*180/math.Pi-step) > limit {
			return false
		}
	}

	root.SymmetryFlag = reeb.SymmetryRadial
	root.SymmetryAxis = axis
	for _, b := range set {
		b.arc.SymmetryFlag = reeb.SymmetryRadial
	}
	if d.OnRadial != nil {
		d.OnRadial(root, ring)
	}
	return true
}

// byAzimuth sorts a ring and its azimuths together.
type byAzimuth struct {
	ring []RingArc
	az   []float64
}

func (s byAzimuth) Len() int           { return len(s.ring) }
func (s byAzimuth) Less(i, j int) bool { return s.az[i] < s.az[j] }
func (s byAzimuth) Swap(i, j int) {
	s.ring[i], s.ring[j] = s.ring[j], s.ring[i]
	s.az[i], s.az[j] = s.az[j], s.az[i]
}
