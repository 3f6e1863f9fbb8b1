// Package bfs provides breadth-first search over a core.Graph view,
// returning hop distances, parent vertices, parent edges and visit order.
//
// It is used to group Reeb-graph nodes by depth from a root (symmetry
// levels) and to walk a component arc by arc when it is reweighted before
// being spliced onto another component.
//
// WithContext makes the walk stop with the context error; cancellation is
// checked once per dequeue. Result.Levels groups the visit order by depth.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
