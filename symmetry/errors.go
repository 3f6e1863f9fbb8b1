// SPDX-License-Identifier: MIT

package symmetry

import "errors"

var (
	// ErrCyclicGraph indicates a graph with a cycle; symmetry needs a tree.
	ErrCyclicGraph = errors.New("symmetry: graph is cyclic")

	// ErrRootNotFound indicates a nil root or one that is not in the graph.
	ErrRootNotFound = errors.New("symmetry: root node not found")
)
