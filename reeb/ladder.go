// SPDX-License-Identifier: MIT

package reeb

import (
	"fmt"
	"math"

	"github.com/katalvlaran/reebskel"
	"github.com/katalvlaran/reebskel/mesh"
)

// Ladder is a chain of resolution levels of one Reeb graph. Levels[0] is the
// finest (unfiltered) level, the last one the coarsest.
type Ladder struct {
	Levels []*Graph
}

// Finest returns the least filtered level.
func (l *Ladder) Finest() *Graph { return l.Levels[0] }

// Coarsest returns the most filtered level.
func (l *Ladder) Coarsest() *Graph { return l.Levels[len(l.Levels)-1] }

// LadderOptions configures BuildLadder. Internal and external fractions are
// relative to the base graph length; JoinThreshold is absolute and applies
// to every filtered level.
type LadderOptions struct {
	Levels           int
	InternalFraction float64
	ExternalFraction float64
	JoinThreshold    float64

	Smart          bool
	SmartThreshold float64
	Mesh           *mesh.Mesh
	Cycles         bool

	PostprocessPasses int
	Kernel            Kernel
}

// DefaultLadderOptions returns five levels with cycle filtering and one
// smoothing pass.
func DefaultLadderOptions() LadderOptions {
	return LadderOptions{
		Levels:            5,
		SmartThreshold:    0.5,
		Cycles:            true,
		PostprocessPasses: 1,
		Kernel:            KernelSmooth,
	}
}

// levelThresholds returns the absolute internal and external thresholds of
// level i out of n. Internal filtering ramps twice as fast and saturates
// halfway up the ladder.
func levelThresholds(length float64, opt LadderOptions, i, n int) (internal, external float64) {
	if n <= 1 || i == 0 {
		return 0, 0
	}
	scale := float64(i) / float64(n-1)
	return length * opt.InternalFraction * math.Min(1, 2*scale), length * opt.ExternalFraction * scale
}

// BuildLadder turns base into Levels[0] and derives opt.Levels-1 coarser
// levels from it, each a copy of the previous one filtered with thresholds
// growing toward the coarsest level. Every level is finalized after all
// copies are taken, then adjacent levels are cross-linked.
//
// Errors: ErrInvalidLevels when opt.Levels < 1.
func BuildLadder(base *Graph, opt LadderOptions) (*Ladder, error) {
	if opt.Levels < 1 {
		return nil, fmt.Errorf("BuildLadder: %d levels: %w", opt.Levels, ErrInvalidLevels)
	}

	// 1) Thresholds are relative to the base length, fixed for all levels.
	length := CalculateGraphLength(base)
	base.Level = 0

	// 2) Progressive filtering, each level from the previous one.
	l := &Ladder{Levels: []*Graph{base}}
	for i := 1; i < opt.Levels; i++ {
		cp := Copy(l.Levels[i-1])
		cp.Level = i
		internal, external := levelThresholds(length, opt, i, opt.Levels)
		FilterGraph(cp, FilterOptions{
			InternalThreshold: internal,
			ExternalThreshold: external,
			Smart:             opt.Smart,
			SmartThreshold:    opt.SmartThreshold,
			Mesh:              opt.Mesh,
			Cycles:            opt.Cycles,
			JoinThreshold:     opt.JoinThreshold,
		})
		l.Levels = append(l.Levels, cp)
	}

	// 3) Smooth and link.
	for i, g := range l.Levels {
		Finalize(g, opt.PostprocessPasses, opt.Kernel)
		if i > 0 {
			relink(l.Levels[i-1], g)
		}
	}
	reebskel.Logger().Info("reeb: ladder built",
		"levels", len(l.Levels), "finest_arcs", l.Finest().NumArcs(), "coarsest_arcs", l.Coarsest().NumArcs())
	return l, nil
}

// Copy returns a deep copy of g's nodes and arcs (buckets and face sets
// included, provenance excluded). The copy is linked one level above g:
// every copied element's LinkDown is its source, whose LinkUp is the copy.
func Copy(g *Graph) *Graph {
	cp := NewGraph()
	cp.Length = g.Length
	cp.Level = g.Level
	cp.nextArc = g.nextArc
	cp.LinkDown = g
	g.LinkUp = cp

	nodes := make(map[*Node]*Node, len(g.nodes))
	for _, n := range g.nodes {
		if n.removed {
			continue
		}
		c := &Node{
			Index:         n.Index,
			Pos:           n.Pos,
			Weight:        n.Weight,
			Degree:        n.Degree,
			Flag:          n.Flag,
			SymmetryFlag:  n.SymmetryFlag,
			SymmetryAxis:  n.SymmetryAxis,
			SymmetryLevel: n.SymmetryLevel,
			Subgraph:      n.Subgraph,
			LinkDown:      n,
		}
		n.LinkUp = c
		nodes[n] = c
		cp.nodes = append(cp.nodes, c)
		cp.byIndex[c.Index] = c
	}

	for _, a := range g.arcs {
		if a.removed {
			continue
		}
		c := &Arc{
			ID:            a.ID,
			Head:          nodes[a.Head],
			Tail:          nodes[a.Tail],
			Buckets:       append([]Bucket(nil), a.Buckets...),
			Length:        a.Length,
			SymmetryLevel: a.SymmetryLevel,
			SymmetryGroup: a.SymmetryGroup,
			SymmetryFlag:  a.SymmetryFlag,
			Angle:         a.Angle,
			LinkDown:      a,
			faces:         make(map[int]struct{}, len(a.faces)),
		}
		mergeFaces(c, a)
		a.LinkUp = c
		cp.arcs = append(cp.arcs, c)
	}
	cp.BuildAdjacency()
	return cp
}

// relink re-establishes node links between adjacent levels by node index
// and drops arc links to arcs the coarser level filtered away.
func relink(finer, coarser *Graph) {
	for _, n := range finer.nodes {
		c := coarser.NodeByIndex(n.Index)
		n.LinkUp = c
		if c != nil {
			c.LinkDown = n
		}
	}
	for _, a := range finer.arcs {
		if a.LinkUp != nil && a.LinkUp.removed {
			a.LinkUp = nil
		}
	}
	finer.LinkUp = coarser
	coarser.LinkDown = finer
}
