// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by BFS.
type Option func(*Options)

// Options holds the parameters of a BFS run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	err error
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a cancellation context. A nil ctx is recorded as a violation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// Result captures the outcome of a BFS run.
type Result struct {
	Order      []int       // visit order
	Depth      map[int]int // hop distance from the start
	Parent     map[int]int // parent vertex; absent for the start
	ParentEdge map[int]int // edge ID used to reach the vertex
}

// Levels groups visited vertices by depth: Levels()[d] lists the vertices at
// depth d in visit order.
func (r *Result) Levels() [][]int {
	var out [][]int
	for _, v := range r.Order {
		d := r.Depth[v]
		for len(out) <= d {
			out = append(out, nil)
		}
		out[d] = append(out[d], v)
	}
	return out
}
