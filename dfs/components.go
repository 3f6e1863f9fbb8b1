// Package dfs implements connected components via iterative DFS.
package dfs

import (
	"sort"

	"github.com/katalvlaran/reebskel/core"
)

// Components returns the connected components of g. Each component lists its
// vertices in ascending order; components are ordered by smallest vertex.
//
// Errors: ErrGraphNil when g is nil.
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	state := make(map[int]int)
	var out [][]int
	for _, root := range g.Vertices() {
		if state[root] != White {
			continue
		}

		// 1) Explicit stack; Gray = discovered, Black = expanded.
		comp := []int{root}
		stack := []int{root}
		state[root] = Gray
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			edges, err := g.Neighbors(v)
			if err != nil {
				return nil, err
			}
			for _, e := range edges {
				u := e.Other(v)
				if state[u] == White {
					state[u] = Gray
					comp = append(comp, u)
					stack = append(stack, u)
				}
			}
			state[v] = Black
		}

		// 2) Sorted component.
		sort.Ints(comp)
		out = append(out, comp)
	}
	return out, nil
}

// ComponentIndex maps every vertex of g to the index of its component in
// Components(g).
func ComponentIndex(g *core.Graph) (map[int]int, int, error) {
	comps, err := Components(g)
	if err != nil {
		return nil, 0, err
	}
	idx := make(map[int]int)
	for i, c := range comps {
		for _, v := range c {
			idx[v] = i
		}
	}
	return idx, len(comps), nil
}
