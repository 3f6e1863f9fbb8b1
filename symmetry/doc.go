// Package symmetry detects axial and radial symmetry in a Reeb-graph
// skeleton and enforces it on the embedding.
//
// Detection walks the graph as a tree from a root node. At every node the
// child subtrees are grouped by shape and length; a group of two is tested
// for a mirror plane through the node, a group of three or more for an
// N-fold rotation around an axis. A group that passes has its node flagged
// and one of two callbacks invoked on it:
//
//   - Axial: averages the two branches across the mirror plane and copies
//     the result back, so both sides become exact mirror images.
//   - Radial: folds every branch of the ring into the next one with a
//     decreasing blend weight, then copies the merged shape back around the
//     ring.
//
// Detector is the default Marker. Annotate picks the lowest node as root.
//
// Only node and bucket positions move; weights and topology never change,
// so every reeb invariant survives annotation.
package symmetry
