// SPDX-License-Identifier: MIT

package reeb

import "errors"

var (
	// ErrEmptyMesh indicates a mesh without any visible triangle.
	ErrEmptyMesh = errors.New("reeb: mesh has no visible triangle")

	// ErrDuplicateWeights indicates two corners of one triangle with the same
	// weight; run weight.Spread before Build.
	ErrDuplicateWeights = errors.New("reeb: triangle with duplicate weights")

	// ErrInvalidWeight indicates a NaN or infinite vertex weight.
	ErrInvalidWeight = errors.New("reeb: invalid vertex weight")

	// ErrInvariant indicates a broken structural invariant (a logic bug).
	ErrInvariant = errors.New("reeb: invariant violated")

	// ErrInvalidLevels indicates a ladder with fewer than one level.
	ErrInvalidLevels = errors.New("reeb: invalid ladder level count")
)
