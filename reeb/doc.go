// Package reeb builds, simplifies and finalizes the Reeb graph of a scalar
// field over a triangulated surface, producing an embedded skeleton.
//
// What is in the box:
//
//   - Graph model: Node (critical point), Arc (monotonic strip between two
//     nodes, head.Weight ≤ tail.Weight), Bucket (one centerline sample at an
//     integer field value), Edge (provenance of a mesh edge owned by an arc).
//   - Construction (Build): one node per visible vertex, then every visible
//     triangle is folded into the graph online; triangle paths low→high are
//     glued by a merge-sort walk along each mesh edge's provenance chain.
//     RemoveNormalNodes then merges pass-through degree-2 nodes.
//   - Filtering: FilterNull, FilterInternal, FilterExternal, FilterSmart,
//     FilterCycles, JoinSubgraphs; FilterGraph chains them.
//   - Finalizing: SortNodes, SortArcs, Postprocess (3-tap kernels),
//     CalculateGraphLength, Finalize; BuildLadder produces a chain of
//     increasingly filtered copies cross-linked node to node, arc to arc.
//   - Traversal: Iterator walks an arc's buckets from either end.
//   - Debug: Verify checks every structural invariant; Dump writes text.
//
// Invariants kept by every exported operation:
//
//   - Node.Degree equals the number of live arcs touching the node; it is
//     maintained incrementally through a handful of mutation helpers and
//     only recounted by Verify.
//   - head.Weight ≤ tail.Weight for every arc.
//   - Bucket values are strictly increasing integers inside
//     [ceil(head.Weight), floor(tail.Weight)].
//
// A Graph is not safe for concurrent mutation; each pipeline stage owns it
// exclusively while it runs.
package reeb
