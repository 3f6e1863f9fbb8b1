// SPDX-License-Identifier: MIT

package mesh

import "errors"

var (
	// ErrEmptyMesh indicates a mesh without vertices.
	ErrEmptyMesh = errors.New("mesh: no vertices")

	// ErrInvalidFace indicates a face that is neither a triangle nor a quad,
	// or that references the same vertex twice.
	ErrInvalidFace = errors.New("mesh: invalid face")

	// ErrIndexOutOfRange indicates a vertex or face index outside the mesh.
	ErrIndexOutOfRange = errors.New("mesh: index out of range")

	// ErrWeightCount indicates a weight slice whose length differs from the vertex count.
	ErrWeightCount = errors.New("mesh: weight count mismatch")
)
