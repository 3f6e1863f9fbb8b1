// Package dfs implements cycle detection on undirected multigraphs.
package dfs

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/reebskel/core"
)

// DetectCycles inspects g for cycles closed by back edges.
// Returns (true, cycles, nil) if any cycle is found; (false, nil, nil) otherwise.
// Each cycle is rotated to start at its smallest vertex, oriented so that
// the second vertex is the smaller of the two neighbours, and the list is
// sorted by signature.
func DetectCycles(g *core.Graph) (bool, [][]int, error) {
	// 1) Nil graph is treated as cycle-free.
	if g == nil {
		return false, nil, nil
	}

	// 2) Visitation state.
	verts := g.Vertices()
	st := &cycleState{
		g:     g,
		state: make(map[int]int, len(verts)),
		seen:  make(map[string]struct{}),
	}

	// 3) Launch from every unvisited vertex (forest traversal).
	for _, v := range verts {
		if st.state[v] == White {
			if err := st.visit(v, -1); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}

	// 4) Deterministic order.
	sort.Slice(st.cycles, func(i, j int) bool {
		return JoinSig(st.cycles[i]) < JoinSig(st.cycles[j])
	})

	if len(st.cycles) == 0 {
		return false, nil, nil
	}
	return true, st.cycles, nil
}

// cycleState is the mutable state of one DetectCycles run.
type cycleState struct {
	g      *core.Graph
	state  map[int]int
	path   []int
	seen   map[string]struct{}
	cycles [][]int
}

// visit explores v, entered through the edge parentEdge (-1 for roots).
func (s *cycleState) visit(v, parentEdge int) error {
	// 1) Gray + push.
	s.state[v] = Gray
	s.path = append(s.path, v)

	edges, err := s.g.Neighbors(v)
	if err != nil {
		return err
	}

	// 2) Explore incident edges.
	for _, e := range edges {
		if e.ID == parentEdge {
			continue
		}
		if e.IsLoop() {
			s.record([]int{v})
			continue
		}
		nbr := e.Other(v)
		switch s.state[nbr] {
		case White:
			if err = s.visit(nbr, e.ID); err != nil {
				return err
			}
		case Gray:
			// back edge: the cycle is the path suffix starting at nbr
			idx := len(s.path) - 1
			for idx >= 0 && s.path[idx] != nbr {
				idx--
			}
			s.record(append([]int(nil), s.path[idx:]...))
		}
	}

	// 3) Black + pop.
	s.state[v] = Black
	s.path = s.path[:len(s.path)-1]
	return nil
}

// record canonicalizes c and stores it once.
func (s *cycleState) record(c []int) {
	c = canonical(c)
	sig := JoinSig(c)
	if _, dup := s.seen[sig]; dup {
		return
	}
	s.seen[sig] = struct{}{}
	s.cycles = append(s.cycles, c)
}

// canonical rotates c to start at its minimum and picks the direction whose
// second element is smaller.
func canonical(c []int) []int {
	n := len(c)
	if n <= 2 {
		if n == 2 && c[1] < c[0] {
			c[0], c[1] = c[1], c[0]
		}
		return c
	}
	m := 0
	for i := 1; i < n; i++ {
		if c[i] < c[m] {
			m = i
		}
	}
	out := make([]int, n)
	if c[(m+1)%n] <= c[(m-1+n)%n] {
		for i := 0; i < n; i++ {
			out[i] = c[(m+i)%n]
		}
	} else {
		for i := 0; i < n; i++ {
			out[i] = c[(m-i+n)%n]
		}
	}
	return out
}

// JoinSig returns the comma-joined signature of a cycle.
func JoinSig(c []int) string {
	var b strings.Builder
	for i, v := range c {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
