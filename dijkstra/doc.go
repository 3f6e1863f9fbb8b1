// Package dijkstra computes multi-source shortest-path distances over the
// visible edge graph of a mesh.Mesh, with Euclidean edge lengths as costs.
//
// Overview:
//
//   - Every source starts at distance 0 and acts as its own root, so the
//     result is, per vertex, the distance to the nearest source measured
//     through mesh edges (not straight-line distance).
//   - Hidden vertices and hidden edges are never traversed.
//   - A min-heap with lazy decrease-key drives the expansion.
//
// Sources(vs...) supplies the seed vertices; at least one is required.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (heap holds up to E stale entries under lazy decrease-key).
//
// Unreached vertices keep Dist = +Inf and Visited = false; Result.Unreached
// lists them so callers can report disconnected geometry instead of leaking
// undefined values.
package dijkstra
