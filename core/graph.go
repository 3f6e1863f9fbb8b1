// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"sort"
)

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		adj:   make(map[int][]int),
		edges: make(map[int]Edge),
	}
}

// AddVertex inserts v if absent. Idempotent.
func (g *Graph) AddVertex(v int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = nil
	}
}

// HasVertex reports whether v is present.
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[v]
	return ok
}

// AddEdge inserts the undirected edge id between from and to, creating the
// endpoints when missing. A self-loop appears once in its vertex adjacency.
//
// Errors: ErrDuplicateEdge when id is already used.
func (g *Graph) AddEdge(id, from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.edges[id]; ok {
		return fmt.Errorf("AddEdge: id %d: %w", id, ErrDuplicateEdge)
	}
	g.edges[id] = Edge{ID: id, From: from, To: to}
	g.adj[from] = append(g.adj[from], id)
	if to != from {
		g.adj[to] = append(g.adj[to], id)
	} else if _, ok := g.adj[to]; !ok {
		g.adj[to] = nil
	}
	return nil
}

// Neighbors returns the edges incident to v in insertion order.
//
// Errors: ErrVertexNotFound if v is absent.
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids, ok := g.adj[v]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexNotFound)
	}
	out := make([]Edge, len(ids))
	for i, id := range ids {
		out[i] = g.edges[id]
	}
	return out, nil
}

// Degree returns the number of edge ends at v; a self-loop counts twice.
func (g *Graph) Degree(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	d := 0
	for _, id := range g.adj[v] {
		d++
		if g.edges[id].IsLoop() {
			d++
		}
	}
	return d
}

// Vertices returns all vertex IDs in ascending order.
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]int, 0, len(g.adj))
	for v := range g.adj {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// Edges returns all edges ordered by ID.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.adj)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}
