// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"math"
	"sort"
)

// Builder accumulates (i,j,v) triplets for an n×n matrix.
// The first invalid Add is remembered and reported by Build.
type Builder struct {
	n    int
	rows []map[int]float64
	err  error
}

// NewBuilder returns a Builder for an n×n matrix. Panics if n < 0.
func NewBuilder(n int) *Builder {
	if n < 0 {
		panic("sparse: NewBuilder(n<0)")
	}
	return &Builder{n: n, rows: make([]map[int]float64, n)}
}

// Add accumulates v into entry (i,j).
func (b *Builder) Add(i, j int, v float64) {
	if b.err != nil {
		return
	}
	if i < 0 || j < 0 || i >= b.n || j >= b.n {
		b.err = fmt.Errorf("Add(%d,%d): %w", i, j, ErrOutOfRange)
		return
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		b.err = fmt.Errorf("Add(%d,%d): %w", i, j, ErrNaNInf)
		return
	}
	if b.rows[i] == nil {
		b.rows[i] = make(map[int]float64)
	}
	b.rows[i][j] += v
}

// Build compresses the accumulated triplets into CSR form with sorted columns.
func (b *Builder) Build() (*Matrix, error) {
	if b.err != nil {
		return nil, fmt.Errorf("Build: %w", b.err)
	}
	m := &Matrix{n: b.n, rowPtr: make([]int, b.n+1)}
	for i, row := range b.rows {
		cols := make([]int, 0, len(row))
		for j := range row {
			cols = append(cols, j)
		}
		sort.Ints(cols)
		for _, j := range cols {
			m.colIdx = append(m.colIdx, j)
			m.vals = append(m.vals, row[j])
		}
		m.rowPtr[i+1] = len(m.colIdx)
	}
	return m, nil
}

// Matrix is an immutable square CSR matrix.
type Matrix struct {
	n      int
	rowPtr []int
	colIdx []int
	vals   []float64
}

// Dim returns the matrix order n.
func (m *Matrix) Dim() int { return m.n }

// NNZ returns the number of stored entries.
func (m *Matrix) NNZ() int { return len(m.vals) }

// At returns entry (i,j), zero when not stored.
func (m *Matrix) At(i, j int) float64 {
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	k := lo + sort.SearchInts(m.colIdx[lo:hi], j)
	if k < hi && m.colIdx[k] == j {
		return m.vals[k]
	}
	return 0
}

// Diagonal returns a copy of the main diagonal.
func (m *Matrix) Diagonal() []float64 {
	d := make([]float64, m.n)
	for i := range d {
		d[i] = m.At(i, i)
	}
	return d
}

// Row calls fn for each stored entry of row i in column order.
func (m *Matrix) Row(i int, fn func(j int, v float64)) {
	for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
		fn(m.colIdx[k], m.vals[k])
	}
}

// MulVecTo stores m·x into dst. Both slices must have length n.
func (m *Matrix) MulVecTo(dst, x []float64) error {
	if len(dst) != m.n || len(x) != m.n {
		return fmt.Errorf("MulVecTo: len(dst)=%d len(x)=%d n=%d: %w", len(dst), len(x), m.n, ErrDimensionMismatch)
	}
	for i := 0; i < m.n; i++ {
		s := 0.0
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			s += m.vals[k] * x[m.colIdx[k]]
		}
		dst[i] = s
	}
	return nil
}
