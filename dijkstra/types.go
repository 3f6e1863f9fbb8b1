// Package dijkstra defines result types, options and sentinel errors for the
// multi-source mesh Dijkstra.
package dijkstra

import "errors"

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source vertex was provided.
	ErrNoSource = errors.New("dijkstra: no source vertex")

	// ErrNilMesh indicates that a nil *mesh.Mesh was passed to Dijkstra.
	ErrNilMesh = errors.New("dijkstra: mesh is nil")

	// ErrVertexNotFound indicates a source index outside the mesh or a hidden source.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in mesh")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Sources – seed vertex indices (at least one, all visible).
type Options struct {
	Sources []int
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Sources appends seed vertices. Duplicates are harmless.
func Sources(vs ...int) Option {
	return func(o *Options) {
		o.Sources = append(o.Sources, vs...)
	}
}

// DefaultOptions returns Options with no sources.
func DefaultOptions() Options {
	return Options{}
}

// Result holds per-vertex distances indexed by mesh vertex index.
type Result struct {
	Dist    []float64 // +Inf when unreached
	Visited []bool    // true once the vertex distance is final
}

// Unreached returns the visible vertices that were never finalized, in
// ascending order. Hidden vertices are never reported.
func (r *Result) Unreached(hidden func(v int) bool) []int {
	var out []int
	for v, ok := range r.Visited {
		if !ok && (hidden == nil || !hidden(v)) {
			out = append(out, v)
		}
	}
	return out
}
