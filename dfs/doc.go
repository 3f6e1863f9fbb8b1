// Package dfs provides depth-first algorithms over a core.Graph view:
//
//   - DetectCycles: finds the simple cycles closed by back edges in an
//     undirected multigraph. Parallel edges form 2-cycles and self-loops
//     form 1-cycles, because the parent edge (not the parent vertex) is
//     what a DFS step refuses to walk back over.
//   - Components: connected components, each sorted, ordered by their
//     smallest vertex.
//
// Three-colour marking (White/Gray/Black) tracks visitation state.
//
// Complexity:
//
//   - DetectCycles: O(V + E + C·L) time (C cycles of average length L).
//   - Components:   O(V + E) time, O(V) memory.
package dfs
