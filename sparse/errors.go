// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Algorithms return these sentinels (wrapped with the method name); tests
// match them via errors.Is. Option constructors panic on invalid input.

package sparse

import "errors"

var (
	// ErrNotConverged indicates that an iterative solver hit its iteration cap
	// before the residual dropped below tolerance.
	ErrNotConverged = errors.New("sparse: solver did not converge")

	// ErrSingular indicates that a direct factorization found the reduced
	// system not positive definite.
	ErrSingular = errors.New("sparse: singular system")

	// ErrNoPinned indicates a harmonic solve with no pinned vertex.
	ErrNoPinned = errors.New("sparse: no pinned vertex")

	// ErrDimensionMismatch indicates vectors whose length differs from the matrix order.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrOutOfRange indicates a row, column or variable index outside [0,n).
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrNaNInf indicates a NaN or ±Inf entry.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")
)
