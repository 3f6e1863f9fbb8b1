// SPDX-License-Identifier: MIT

package weight

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/reebskel/mesh"
)

// SpreadEpsilon is the tie tolerance of Spread: sorted neighbours closer than
// this are treated as equal and pushed 2·SpreadEpsilon apart.
const SpreadEpsilon = 1e-6

// Renormalize maps the weights affinely from [min,max] onto [0,newMax].
// A constant field maps to 0.
func Renormalize(m *mesh.Mesh, newMax float64) {
	w := m.Weights()
	if len(w) == 0 {
		return
	}
	lo, hi := floats.Min(w), floats.Max(w)
	span := hi - lo
	for i := range w {
		if span == 0 {
			w[i] = 0
			continue
		}
		w[i] = (w[i] - lo) / span * newMax
	}
	store(m, w)
}

// Spread makes every weight distinct: after sorting (ties broken by vertex
// index), any weight within SpreadEpsilon of its predecessor is set to the
// predecessor plus 2·SpreadEpsilon, or to the next representable float64
// above it when the predecessor is too large for that step to register.
// Passes repeat until none changes a value.
func Spread(m *mesh.Mesh) {
	w := m.Weights()
	order := make([]int, len(w))
	for i := range order {
		order[i] = i
	}

	for changed := true; changed; {
		changed = false
		sort.SliceStable(order, func(a, b int) bool { return w[order[a]] < w[order[b]] })
		for i := 1; i < len(order); i++ {
			prev, cur := w[order[i-1]], w[order[i]]
			if cur-prev <= SpreadEpsilon {
				w[order[i]] = bump(prev)
				changed = true
			}
		}
	}
	store(m, w)
}

// bump returns the smallest value Spread accepts after prev. Beyond ~3e10
// the ulp of prev exceeds 2·SpreadEpsilon and the sum would round back to prev.
func bump(prev float64) float64 {
	return math.Max(prev+2*SpreadEpsilon, math.Nextafter(prev, math.Inf(1)))
}

// store writes w back vertex by vertex; len(w) always matches m.
func store(m *mesh.Mesh, w []float64) {
	for v, x := range w {
		m.SetWeight(v, x)
	}
}
