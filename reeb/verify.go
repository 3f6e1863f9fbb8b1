// SPDX-License-Identifier: MIT

package reeb

import (
	"fmt"
)

// Verify checks the structural invariants of g: degrees match the live
// arcs, every arc runs from lower to higher weight between two distinct
// live nodes, bucket values are the consecutive integers of the arc's span,
// and provenance records point to live arcs. It returns ErrInvariant wrapped
// with the first violation found.
func (g *Graph) Verify() error {
	const method = "Verify"
	count := make(map[*Node]int)

	for _, a := range g.arcs {
		if a.removed {
			continue
		}
		// 1) Endpoints.
		if a.Head == nil || a.Tail == nil || a.Head.removed || a.Tail.removed {
			return fmt.Errorf("%s: arc %d has a missing endpoint: %w", method, a.ID, ErrInvariant)
		}
		if a.Head == a.Tail {
			return fmt.Errorf("%s: arc %d is a loop on node %d: %w", method, a.ID, a.Head.Index, ErrInvariant)
		}
		if a.Head.Weight > a.Tail.Weight {
			return fmt.Errorf("%s: arc %d head %.6g above tail %.6g: %w",
				method, a.ID, a.Head.Weight, a.Tail.Weight, ErrInvariant)
		}
		count[a.Head]++
		count[a.Tail]++

		// 2) Buckets.
		start, n := bucketRange(a.Head.Weight, a.Tail.Weight)
		if len(a.Buckets) != n {
			return fmt.Errorf("%s: arc %d has %d buckets, span needs %d: %w",
				method, a.ID, len(a.Buckets), n, ErrInvariant)
		}
		for i, b := range a.Buckets {
			if b.Val != start+float64(i) {
				return fmt.Errorf("%s: arc %d bucket %d value %g, want %g: %w",
					method, a.ID, i, b.Val, start+float64(i), ErrInvariant)
			}
		}

		// 3) Owned provenance.
		for _, e := range a.edges {
			if e.Arc != a {
				return fmt.Errorf("%s: arc %d owns an edge of arc %d: %w", method, a.ID, e.Arc.ID, ErrInvariant)
			}
		}
	}

	// 4) Degrees.
	for _, n := range g.nodes {
		if n.removed {
			continue
		}
		if n.Degree != count[n] {
			return fmt.Errorf("%s: node %d degree %d, arcs %d: %w", method, n.Index, n.Degree, count[n], ErrInvariant)
		}
	}

	// 5) Chains.
	for k, c := range g.chains {
		for _, e := range c.edges {
			if e.Arc == nil || e.Arc.removed {
				return fmt.Errorf("%s: edge (%d,%d) points to a removed arc: %w", method, k.A, k.B, ErrInvariant)
			}
		}
	}
	return nil
}
