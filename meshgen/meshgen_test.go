// SPDX-License-Identifier: MIT

package meshgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/reebskel/meshgen"
)

// TestShapes_Counts runs table-driven vertex/face counts for each constructor.
func TestShapes_Counts(t *testing.T) {
	tests := []struct {
		name   string
		opts   []meshgen.Option
		ctor   meshgen.Constructor
		wantV  int
		wantF  int
		wantTr int
	}{
		{name: "Grid(2,2)", ctor: meshgen.Grid(2, 2), wantV: 9, wantF: 8, wantTr: 8},
		{name: "Grid(2,3) quads", opts: []meshgen.Option{meshgen.WithQuads()}, ctor: meshgen.Grid(2, 3), wantV: 12, wantF: 6, wantTr: 12},
		{name: "Fan(3,4)", ctor: meshgen.Fan(3, 4), wantV: 1 + 3*8, wantF: 3 * (1 + 2*3), wantTr: 21},
		{name: "Branch(3,1,4)", ctor: meshgen.Branch(3, 1, 4), wantV: 8 + 1 + 2 + 8, wantF: 6 + 1 + 2 + 8, wantTr: 17},
		{name: "Annulus(8)", ctor: meshgen.Annulus(8), wantV: 16, wantF: 16, wantTr: 16},
		{name: "Tube(2,6)", ctor: meshgen.Tube(2, 6), wantV: 18, wantF: 24, wantTr: 24},
		{name: "Diamond", ctor: meshgen.Diamond(), wantV: 4, wantF: 2, wantTr: 2},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := meshgen.Build(tc.opts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, m.NumVertices())
			assert.Equal(t, tc.wantF, m.NumFaces())
			assert.Len(t, m.Triangles(), tc.wantTr)
		})
	}
}

func TestShapes_TooSmall(t *testing.T) {
	for name, ctor := range map[string]meshgen.Constructor{
		"Grid":    meshgen.Grid(0, 2),
		"Fan":     meshgen.Fan(1, 2),
		"Branch":  meshgen.Branch(1, 0, 1),
		"Annulus": meshgen.Annulus(2),
		"Tube":    meshgen.Tube(1, 2),
	} {
		_, err := meshgen.Build(nil, ctor)
		assert.ErrorIs(t, err, meshgen.ErrTooSmall, name)
	}
	_, err := meshgen.Build(nil, nil)
	assert.ErrorIs(t, err, meshgen.ErrConstructFailed)
}

func TestFan_RootIsLowest(t *testing.T) {
	m, err := meshgen.Build(nil, meshgen.Fan(3, 3))
	require.NoError(t, err)
	for v := 1; v < m.NumVertices(); v++ {
		assert.Greater(t, m.Position(v).Z, m.Position(0).Z)
	}
	assert.Len(t, m.Neighbors(0), 6)
}

func TestOptions(t *testing.T) {
	m, err := meshgen.Build([]meshgen.Option{
		meshgen.WithSpacing(2),
		meshgen.WithOrigin(r3.Vec{Z: 5}),
	}, meshgen.Grid(1, 1))
	require.NoError(t, err)
	assert.Equal(t, r3.Vec{X: 2, Y: 2, Z: 5}, m.Position(3))

	a, err := meshgen.Build([]meshgen.Option{meshgen.WithJitter(0.1, 7)}, meshgen.Grid(2, 2))
	require.NoError(t, err)
	b, err := meshgen.Build([]meshgen.Option{meshgen.WithJitter(0.1, 7)}, meshgen.Grid(2, 2))
	require.NoError(t, err)
	for v := 0; v < a.NumVertices(); v++ {
		assert.Equal(t, a.Position(v), b.Position(v))
	}

	assert.Panics(t, func() { meshgen.WithSpacing(0) })
	assert.Panics(t, func() { meshgen.WithHalfWidth(-1) })
	assert.Panics(t, func() { meshgen.WithJitter(-1, 0) })
}

func TestBuild_Composes(t *testing.T) {
	m, err := meshgen.Build(nil, meshgen.Diamond(), meshgen.Grid(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 8, m.NumVertices())
	assert.Equal(t, 4, m.NumFaces())
}
