// Package weight computes and normalizes the per-vertex scalar field whose
// level sets define the Reeb graph.
//
// Fields:
//
//   - FromDistance:   geodesic (edge-path) distance to the nearest selected vertex.
//   - FromCoordinate: one coordinate axis copied as the weight.
//   - ToHarmonic:     discrete harmonic refinement with the current extrema pinned.
//
// Normalization:
//
//   - Renormalize: affine map of [min,max] onto [0,newMax].
//   - Spread:      nudges equal weights apart so every vertex has a distinct value.
//
// Every operation either fully succeeds or leaves the mesh weights untouched.
//
// Typical order before graph construction:
//
//	FromDistance → Renormalize(1) → [ToHarmonic] → Renormalize(resolution) → Spread
//
// Spread comes last so the gaps it opens survive at the final scale. It
// accepts any magnitude: past the point where 2·SpreadEpsilon no longer
// registers, ties are separated by one ulp instead.
package weight
