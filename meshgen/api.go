// SPDX-License-Identifier: MIT
// Package: reebskel/meshgen
//
// api.go — the Build orchestrator and the shared vertex/face buffer.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Resolves cfg, runs cons in order.
//   - Constructors append to a shared buffer, so shapes can be composed.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical meshes.

package meshgen

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/reebskel/mesh"
)

// Constructor appends one shape to the buffer using the resolved config.
// Constructors validate parameters first and return sentinel errors.
type Constructor func(b *Buffer, cfg config) error

// Buffer accumulates vertices and faces before the mesh is validated.
type Buffer struct {
	positions []r3.Vec
	faces     [][]int
}

// AddVertex appends a vertex and returns its index.
func (b *Buffer) AddVertex(p r3.Vec) int {
	b.positions = append(b.positions, p)
	return len(b.positions) - 1
}

// AddTriangle appends the triangle (a,b,c).
func (b *Buffer) AddTriangle(v0, v1, v2 int) {
	b.faces = append(b.faces, []int{v0, v1, v2})
}

// addQuad appends the quad (a,b,c,d) either as one face or split along (a,c).
func (b *Buffer) addQuad(v0, v1, v2, v3 int, quads bool) {
	if quads {
		b.faces = append(b.faces, []int{v0, v1, v2, v3})
		return
	}
	b.AddTriangle(v0, v1, v2)
	b.AddTriangle(v0, v2, v3)
}

// Build resolves opts and applies every constructor in order, then validates
// the buffer through mesh.New.
//
// Errors:
//   - ErrConstructFailed for a nil constructor or when mesh.New rejects the result.
//   - any constructor error, wrapped with "Build: %w".
func Build(opts []Option, cons ...Constructor) (*mesh.Mesh, error) {
	cfg := newConfig(opts...)
	b := &Buffer{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	m, err := mesh.New(b.positions, b.faces)
	if err != nil {
		return nil, fmt.Errorf("Build: %v: %w", err, ErrConstructFailed)
	}
	return m, nil
}
