// Package reebskel extracts animation-rig skeletons from triangulated surface
// meshes by building the Reeb graph of a per-vertex scalar field.
//
// What is in the box:
//
//	• Mesh model:     indexed triangle/quad surfaces with hidden flags and selection
//	• Weight fields:  geodesic distance, coordinate axis, discrete harmonic
//	• Sparse solver:  cotangent Laplacian assembly, projected CG, dense Cholesky
//	• Reeb graph:     online per-triangle construction with embedded buckets
//	• Filtering:      null arcs, internal/external length, smart, cycles, subgraph joins
//	• Finalizing:     sorting, 3-tap smoothing, length, multi-resolution ladder
//	• Symmetry:       radial and axial detection with geometry propagation
//
// Under the hood, everything is organized under these subpackages:
//
//	mesh/      — input surface, hidden flags, selection, weights
//	meshgen/   — deterministic mesh fixtures (grid, fan, branch, annulus, tube)
//	dijkstra/  — multi-source shortest paths over mesh edges
//	weight/    — scalar field construction and normalization
//	sparse/    — sparse symmetric systems and solvers
//	reeb/      — graph model, construction, filters, finalizer, ladder
//	symmetry/  — symmetry marking and propagation callbacks
//	core/      — int-indexed graph view walked by dfs/ and bfs/
//	dfs/       — cycle detection and connected components
//	bfs/       — level-order traversal
//	pipeline/  — run context, YAML config, metrics
//	cmd/reebskel/ — command line on generated demo meshes
//
// Quick ASCII example (weight grows upward, one branch point):
//
//	  o   o        two terminal nodes
//	   \ /
//	    o          degree-3 node
//	    |
//	    o          root (lowest weight)
//
// The package itself only carries the shared logger; see SetLogger.
package reebskel
