// SPDX-License-Identifier: MIT

package reeb

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/reebskel/mesh"
)

// FilterSmart scores every terminal arc by flatness, the squared length of
// the area-weighted mean normal of its faces (1 for a flat patch, near 0 for
// a closed tube), and caches the score in Arc.Angle. Arcs flatter than
// threshold are pruned like FilterExternal does; other terminal arcs hanging
// from a degree-2 node are absorbed into their neighbour, the terminal node
// taking the place of the degree-2 one.
func FilterSmart(g *Graph, m *mesh.Mesh, threshold float64) bool {
	updateArcLengths(g)
	q := g.lengthQueue()
	fired := false
	for {
		it, ok := q.PopMin()
		if !ok {
			break
		}
		a := it.arc
		if a.removed {
			continue
		}
		term, mid, ok := terminalEnds(a)
		if !ok {
			continue
		}
		a.Angle = flatness(m, a)

		if a.Angle > threshold {
			if g.pruneTerminal(a, term, mid) {
				fired = true
			}
			continue
		}
		if mid.Degree == 2 {
			g.filterArc(term, mid, a, true)
			g.removeArc(a)
			g.removeNode(mid)
			fired = true
		}
	}
	g.compact()
	return fired
}

// flatness returns |Σ area·n / Σ area|² over the faces of a.
func flatness(m *mesh.Mesh, a *Arc) float64 {
	var sum r3.Vec
	var area float64
	for f := range a.faces {
		if f < 0 || f >= m.NumFaces() {
			continue
		}
		ar := m.FaceArea(f)
		sum = r3.Add(sum, r3.Scale(ar, m.FaceNormal(f)))
		area += ar
	}
	if area == 0 {
		return 0
	}
	avg := r3.Scale(1/area, sum)
	return r3.Dot(avg, avg)
}
