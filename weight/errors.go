// SPDX-License-Identifier: MIT

package weight

import "errors"

var (
	// ErrNoSelection indicates FromDistance on a mesh with no visible selected vertex.
	ErrNoSelection = errors.New("weight: no vertex selected")

	// ErrInvalidAxis indicates a coordinate axis outside {0,1,2}.
	ErrInvalidAxis = errors.New("weight: invalid axis")

	// ErrSolverFailure indicates that the harmonic solve failed; weights are unchanged.
	ErrSolverFailure = errors.New("weight: harmonic solver failed")

	// ErrUnreachedVertex indicates visible vertices that no seed reaches.
	ErrUnreachedVertex = errors.New("weight: unreached vertex")
)
