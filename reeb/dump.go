// SPDX-License-Identifier: MIT

package reeb

import (
	"fmt"
	"io"
)

// errWriter keeps the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// Dump writes a line-oriented text description of g: a header, one line per
// node, and one line per arc followed by its buckets.
func Dump(w io.Writer, g *Graph) error {
	ew := &errWriter{w: w}
	nodes, arcs := g.Nodes(), g.Arcs()
	ew.printf("graph level=%d nodes=%d arcs=%d length=%.4f\n", g.Level, len(nodes), len(arcs), g.Length)
	for _, n := range nodes {
		ew.printf("node %d w=%.4f deg=%d pos=(%.4f %.4f %.4f) sym=%s\n",
			n.Index, n.Weight, n.Degree, n.Pos.X, n.Pos.Y, n.Pos.Z, n.SymmetryFlag)
	}
	for _, a := range arcs {
		ew.printf("arc %d %d->%d len=%.4f faces=%d angle=%.4f buckets=%d\n",
			a.ID, a.Head.Index, a.Tail.Index, a.Length, len(a.faces), a.Angle, len(a.Buckets))
		for _, b := range a.Buckets {
			ew.printf("  %g (%.4f %.4f %.4f) nv=%d\n", b.Val, b.Pos.X, b.Pos.Y, b.Pos.Z, b.NV)
		}
	}
	return ew.err
}
