// Package dfs defines visitation states and sentinel errors.
package dfs

import "errors"

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the recursion stack.
	Black        // Black: the vertex and all its descendants are done.
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Components.
var ErrGraphNil = errors.New("dfs: graph is nil")
