// SPDX-License-Identifier: MIT

package pipeline

import "errors"

var (
	// ErrInvalidConfig indicates a configuration value out of range.
	ErrInvalidConfig = errors.New("pipeline: invalid config")

	// ErrNilMesh indicates Run called without a mesh.
	ErrNilMesh = errors.New("pipeline: nil mesh")
)
