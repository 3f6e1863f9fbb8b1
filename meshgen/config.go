// SPDX-License-Identifier: MIT
// Package: reebskel/meshgen
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • spacing   = 1.0
//   • halfWidth = 0.5
//   • origin    = (0,0,0)
//   • quads     = false
//   • jitter    = 0 (rng = nil)

package meshgen

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	defaultSpacing   = 1.0
	defaultHalfWidth = 0.5
)

// config aggregates all knobs used by constructors. Passed by value.
type config struct {
	spacing   float64
	halfWidth float64
	origin    r3.Vec
	quads     bool
	jitter    float64
	rng       *rand.Rand
}

// newConfig applies opts over the defaults, in order.
func newConfig(opts ...Option) config {
	cfg := config{
		spacing:   defaultSpacing,
		halfWidth: defaultHalfWidth,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// place translates p by the origin and applies jitter when configured.
func (c config) place(p r3.Vec) r3.Vec {
	p = r3.Add(p, c.origin)
	if c.jitter > 0 && c.rng != nil {
		p = r3.Add(p, r3.Vec{
			X: (c.rng.Float64()*2 - 1) * c.jitter,
			Y: (c.rng.Float64()*2 - 1) * c.jitter,
			Z: (c.rng.Float64()*2 - 1) * c.jitter,
		})
	}
	return p
}
