// Package meshgen provides deterministic, functional-options mesh
// constructors used as fixtures by tests, examples and the reebskel CLI.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – Build(opts, cons...): allocates a buffer, resolves the config and runs
//     every Constructor in order, then validates the result through mesh.New.
//   - Configuration (Option):
//     – WithSpacing:   distance between consecutive rows (default 1).
//     – WithHalfWidth: half width of strip-like shapes (default 0.5).
//     – WithOrigin:    translation applied to every generated vertex.
//     – WithQuads:     emit quads instead of split triangles where possible.
//     – WithJitter:    seeded positional noise for robustness tests.
//   - Shapes (Constructor):
//     – Grid:     rows×cols planar grid in XY.
//     – Fan:      n strips sharing one root vertex, rising in Z (tripod).
//     – Branch:   planar "Y" in XZ with a stem and two arms of given lengths.
//     – Annulus:  planar ring in XY (one topological cycle under an X field).
//     – Tube:     open cylinder along Z.
//     – Diamond:  two triangles sharing an edge, outer vertices at equal Y.
//
// Guarantees:
//
//   - Deterministic: same options and constructor order ⇒ identical meshes.
//   - Fast-fail option constructors: nonsensical option values panic.
//   - Constructors return sentinel errors (ErrTooSmall, ErrConstructFailed),
//     never panic.
package meshgen
