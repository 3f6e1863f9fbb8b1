// Package core provides a small, thread-safe, int-indexed undirected
// multigraph used as a traversal view by dfs and bfs.
//
// The Reeb graph owns its nodes and arcs; whenever a topological question
// is asked (cycles, connected components, breadth-first levels) it exports
// a core.Graph snapshot in which vertices are node indices and edges are
// arc IDs. Parallel edges and self-loops are allowed, since arcs sharing
// both endpoints are exactly what cycle filtering looks for.
//
// Key types:
//
//   - Graph: vertex set + edge list + adjacency (edge IDs per vertex).
//   - Edge:  {ID, From, To}; undirected, From/To kept as inserted.
//
// Guarantees:
//
//   - Vertices() and Edges() are sorted, so every traversal built on top
//     is deterministic.
//   - Neighbors(v) lists incident edges in insertion order.
//
// Complexity:
//
//   - AddVertex, AddEdge: O(1) amortized.
//   - Vertices, Edges:    O(V log V), O(E log E).
package core
