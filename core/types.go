// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrVertexNotFound indicates an operation referencing a missing vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateEdge indicates an AddEdge call reusing an existing edge ID.
	ErrDuplicateEdge = errors.New("core: duplicate edge id")
)

// Edge is an undirected edge between From and To, identified by ID.
type Edge struct {
	ID   int
	From int
	To   int
}

// Other returns the endpoint of e opposite v. For self-loops it returns v.
func (e Edge) Other(v int) int {
	if e.From == v {
		return e.To
	}
	return e.From
}

// IsLoop reports whether e starts and ends at the same vertex.
func (e Edge) IsLoop() bool { return e.From == e.To }

// Graph is an undirected multigraph over integer vertex IDs.
//
// All methods are safe for concurrent use.
type Graph struct {
	mu    sync.RWMutex
	adj   map[int][]int // vertex → incident edge IDs
	edges map[int]Edge  // edge ID → edge
}
