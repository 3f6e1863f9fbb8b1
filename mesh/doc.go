// Package mesh defines the indexed surface consumed by the skeleton pipeline.
//
// A Mesh is a set of vertices (3D positions, one scalar weight each, a
// selection flag and a hidden flag) and a list of faces, each a triangle or a
// quad referencing vertex indices. Vertex indices are stable for the lifetime
// of a Mesh and are the identity used by every later stage (Reeb nodes are
// keyed by them, provenance edges by canonical index pairs).
//
// Hidden geometry:
//
//   - a hidden vertex hides every edge and face touching it;
//   - a hidden edge is skipped by traversals (Dijkstra, extremum tests, Laplacian);
//   - a hidden face is skipped by graph construction and Laplacian assembly.
//
// Derived topology (edge list, neighbour lists, per-edge face counts) is built
// lazily and rebuilt after any hide/unhide call.
//
// Errors:
//
//	ErrEmptyMesh        - mesh has no vertices.
//	ErrInvalidFace      - face has fewer than 3 or more than 4 vertices, or repeats one.
//	ErrIndexOutOfRange  - vertex or face index outside the mesh.
//	ErrWeightCount      - weight slice length differs from the vertex count.
package mesh
