// SPDX-License-Identifier: MIT
// Package: reebskel/meshgen
//
// errors.go — sentinel errors for the meshgen package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach the method name with %w wrapping.
//   • Option constructors panic on meaningless input; constructors never panic.

package meshgen

import "errors"

// ErrTooSmall indicates that a size parameter (rows, cols, segments, branch
// count, arm length) is below the minimum the shape needs.
var ErrTooSmall = errors.New("meshgen: parameter too small")

// ErrConstructFailed indicates that a constructor could not produce a valid
// mesh, e.g. a nil constructor or a mesh.New validation failure.
var ErrConstructFailed = errors.New("meshgen: construction failed")
