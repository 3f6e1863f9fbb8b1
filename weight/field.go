// SPDX-License-Identifier: MIT

package weight

import (
	"fmt"

	"github.com/katalvlaran/reebskel"
	"github.com/katalvlaran/reebskel/dijkstra"
	"github.com/katalvlaran/reebskel/mesh"
	"github.com/katalvlaran/reebskel/sparse"
)

// FromDistance sets every visible vertex weight to its edge-path distance
// from the nearest selected vertex. Hidden vertices keep their weight.
//
// Errors:
//   - ErrNoSelection when nothing visible is selected.
//   - ErrUnreachedVertex when some visible vertex has no path to a seed;
//     no weight is written in that case.
func FromDistance(m *mesh.Mesh) error {
	const method = "FromDistance"

	// 1) Seeds.
	seeds := m.Selected()
	if len(seeds) == 0 {
		return fmt.Errorf("%s: %w", method, ErrNoSelection)
	}

	// 2) Multi-source shortest paths.
	res, err := dijkstra.Dijkstra(m, dijkstra.Sources(seeds...))
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	// 3) Every visible vertex must be reached.
	if miss := res.Unreached(m.IsVertexHidden); len(miss) > 0 {
		reebskel.Logger().Warn("weight: unreached vertices",
			"count", len(miss), "first", miss[0])
		return fmt.Errorf("%s: %d vertices (first %d): %w", method, len(miss), miss[0], ErrUnreachedVertex)
	}

	// 4) Commit.
	for v, d := range res.Dist {
		if res.Visited[v] {
			m.SetWeight(v, d)
		}
	}
	return nil
}

// FromCoordinate copies coordinate axis (0=X, 1=Y, 2=Z) into the weights.
//
// Errors: ErrInvalidAxis.
func FromCoordinate(m *mesh.Mesh, axis int) error {
	if axis < 0 || axis > 2 {
		return fmt.Errorf("FromCoordinate: axis %d: %w", axis, ErrInvalidAxis)
	}
	for v := 0; v < m.NumVertices(); v++ {
		p := m.Position(v)
		switch axis {
		case 0:
			m.SetWeight(v, p.X)
		case 1:
			m.SetWeight(v, p.Y)
		default:
			m.SetWeight(v, p.Z)
		}
	}
	return nil
}

// ToHarmonic replaces the field by the discrete harmonic field that agrees
// with the current one on its local extrema (see Extrema).
//
// Errors: ErrSolverFailure wrapping the solver error; weights are unchanged.
func ToHarmonic(m *mesh.Mesh, s sparse.Solver) error {
	const method = "ToHarmonic"

	// 1) Pin extrema at their current values.
	minima, maxima := Extrema(m)
	pinned := make(map[int]float64, len(minima)+len(maxima))
	for _, v := range minima {
		pinned[v] = m.Weight(v)
	}
	for _, v := range maxima {
		pinned[v] = m.Weight(v)
	}
	reebskel.Logger().Debug("weight: harmonic pins",
		"minima", len(minima), "maxima", len(maxima))

	// 2) Solve; commit only on success.
	x, err := sparse.SolveHarmonic(m, pinned, s)
	if err != nil {
		reebskel.Logger().Warn("weight: harmonic solve failed", "err", err)
		return fmt.Errorf("%s: %w: %w", method, ErrSolverFailure, err)
	}
	if err = m.SetWeights(x); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// Extrema returns the visible vertices with at least one visible neighbour
// that have no strictly smaller neighbour (minima) or no strictly greater
// neighbour (maxima), both in ascending order. A vertex on a flat plateau
// can be in both lists.
func Extrema(m *mesh.Mesh) (minima, maxima []int) {
	for v := 0; v < m.NumVertices(); v++ {
		if m.IsVertexHidden(v) {
			continue
		}
		nb := m.Neighbors(v)
		if len(nb) == 0 {
			continue
		}
		w := m.Weight(v)
		lower, higher := false, false
		for _, u := range nb {
			switch wu := m.Weight(u); {
			case wu < w:
				lower = true
			case wu > w:
				higher = true
			}
		}
		if !lower {
			minima = append(minima, v)
		}
		if !higher {
			maxima = append(maxima, v)
		}
	}
	return minima, maxima
}
