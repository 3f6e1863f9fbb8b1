// SPDX-License-Identifier: MIT
// Package: reebskel/meshgen
//
// options.go — functional options for mesh constructors.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism: noise only through WithJitter's explicit seed.

package meshgen

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// Option customizes a config before any constructor runs.
type Option func(*config)

// WithSpacing sets the distance between consecutive rows/rings. Panics if s <= 0.
func WithSpacing(s float64) Option {
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		panic("meshgen: WithSpacing(s<=0)")
	}
	return func(c *config) { c.spacing = s }
}

// WithHalfWidth sets the half width of strips. Panics if w <= 0.
func WithHalfWidth(w float64) Option {
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		panic("meshgen: WithHalfWidth(w<=0)")
	}
	return func(c *config) { c.halfWidth = w }
}

// WithOrigin translates every generated vertex by o.
func WithOrigin(o r3.Vec) Option {
	return func(c *config) { c.origin = o }
}

// WithQuads makes grid-like shapes emit quads instead of two triangles.
func WithQuads() Option {
	return func(c *config) { c.quads = true }
}

// WithJitter displaces every vertex by a uniform offset in [-amp,amp]^3 drawn
// from a generator seeded with seed. Panics if amp < 0.
func WithJitter(amp float64, seed int64) Option {
	if amp < 0 || math.IsNaN(amp) {
		panic("meshgen: WithJitter(amp<0)")
	}
	return func(c *config) {
		c.jitter = amp
		c.rng = rand.New(rand.NewSource(seed))
	}
}
