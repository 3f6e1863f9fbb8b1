// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Solver solves a·x = b with the variables in locked held at the given
// constants. The returned slice covers every variable, locked ones included.
// Implementations must be deterministic and must not modify their inputs.
type Solver interface {
	Solve(a *Matrix, b []float64, locked map[int]float64) ([]float64, error)
}

const (
	// DefaultTolerance is the relative residual target of ConjugateGradient.
	DefaultTolerance = 1e-10
	// DefaultMaxIterations caps ConjugateGradient; 0 means 10·n.
	DefaultMaxIterations = 0
)

// CGOption customizes a ConjugateGradient solver.
type CGOption func(*ConjugateGradient)

// WithTolerance sets the relative residual target. Panics if tol <= 0.
func WithTolerance(tol float64) CGOption {
	if tol <= 0 || math.IsNaN(tol) {
		panic("sparse: WithTolerance(tol<=0)")
	}
	return func(c *ConjugateGradient) { c.tol = tol }
}

// WithMaxIterations caps the iteration count. Panics if n <= 0.
func WithMaxIterations(n int) CGOption {
	if n <= 0 {
		panic("sparse: WithMaxIterations(n<=0)")
	}
	return func(c *ConjugateGradient) { c.maxIter = n }
}

// ConjugateGradient is a Jacobi-preconditioned conjugate gradient solver
// restricted to the free variables.
type ConjugateGradient struct {
	tol     float64
	maxIter int
}

// NewConjugateGradient returns a CG solver with the given options applied
// over DefaultTolerance and DefaultMaxIterations.
func NewConjugateGradient(opts ...CGOption) *ConjugateGradient {
	c := &ConjugateGradient{tol: DefaultTolerance, maxIter: DefaultMaxIterations}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Solve implements Solver.
//
// Complexity: O(k·nnz) for k iterations.
func (c *ConjugateGradient) Solve(a *Matrix, b []float64, locked map[int]float64) ([]float64, error) {
	const method = "ConjugateGradient.Solve"
	n := a.Dim()
	if err := checkSystem(n, b, locked); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	// 1) x starts at the locked values, zero elsewhere; free mask.
	x := make([]float64, n)
	free := make([]float64, n)
	for i := range free {
		free[i] = 1
	}
	for i, v := range locked {
		x[i] = v
		free[i] = 0
	}

	// 2) r = (b − a·x) projected onto the free variables.
	r := make([]float64, n)
	if err := a.MulVecTo(r, x); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	floats.SubTo(r, b, r)
	floats.Mul(r, free)

	// 3) Jacobi preconditioner; zero diagonals fall back to identity.
	inv := a.Diagonal()
	for i, d := range inv {
		if d == 0 || free[i] == 0 {
			inv[i] = free[i]
			continue
		}
		inv[i] = 1 / d
	}

	bNorm := floats.Norm(r, 2)
	if bNorm == 0 {
		return x, nil
	}
	target := c.tol * bNorm

	z := make([]float64, n)
	floats.MulTo(z, inv, r)
	p := append([]float64(nil), z...)
	ap := make([]float64, n)
	rz := floats.Dot(r, z)

	maxIter := c.maxIter
	if maxIter == 0 {
		maxIter = 10 * n
		if maxIter < 100 {
			maxIter = 100
		}
	}

	// 4) Main loop.
	for it := 0; it < maxIter; it++ {
		if err := a.MulVecTo(ap, p); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		floats.Mul(ap, free)
		pap := floats.Dot(p, ap)
		if pap <= 0 {
			return nil, fmt.Errorf("%s: non-positive curvature at iteration %d: %w", method, it, ErrNotConverged)
		}
		alpha := rz / pap
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, ap)

		if floats.Norm(r, 2) <= target {
			return x, nil
		}

		floats.MulTo(z, inv, r)
		rzNext := floats.Dot(r, z)
		beta := rzNext / rz
		rz = rzNext
		floats.Scale(beta, p)
		floats.Add(p, z)
	}
	return nil, fmt.Errorf("%s: %d iterations: %w", method, maxIter, ErrNotConverged)
}

// Cholesky solves the reduced free-variable system densely.
type Cholesky struct{}

// Solve implements Solver.
//
// Complexity: O(f³) for f free variables.
func (Cholesky) Solve(a *Matrix, b []float64, locked map[int]float64) ([]float64, error) {
	const method = "Cholesky.Solve"
	n := a.Dim()
	if err := checkSystem(n, b, locked); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	// 1) Map free variables to dense indices.
	x := make([]float64, n)
	pos := make([]int, n)
	var freeIdx []int
	for i := 0; i < n; i++ {
		if v, ok := locked[i]; ok {
			x[i] = v
			pos[i] = -1
			continue
		}
		pos[i] = len(freeIdx)
		freeIdx = append(freeIdx, i)
	}
	f := len(freeIdx)
	if f == 0 {
		return x, nil
	}

	// 2) A_FF and b_F − A_FL·x_L.
	sym := mat.NewSymDense(f, nil)
	rhs := make([]float64, f)
	for fi, i := range freeIdx {
		rhs[fi] = b[i]
		a.Row(i, func(j int, v float64) {
			if pos[j] < 0 {
				rhs[fi] -= v * x[j]
				return
			}
			if pos[j] >= fi {
				sym.SetSym(fi, pos[j], v)
			}
		})
	}

	// 3) Factorize and solve.
	var ch mat.Cholesky
	if ok := ch.Factorize(sym); !ok {
		return nil, fmt.Errorf("%s: %w", method, ErrSingular)
	}
	sol := mat.NewVecDense(f, nil)
	if err := ch.SolveVecTo(sol, mat.NewVecDense(f, rhs)); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", method, err, ErrSingular)
	}
	for fi, i := range freeIdx {
		x[i] = sol.AtVec(fi)
	}
	return x, nil
}

// checkSystem validates vector length and locked indices.
func checkSystem(n int, b []float64, locked map[int]float64) error {
	if len(b) != n {
		return fmt.Errorf("len(b)=%d n=%d: %w", len(b), n, ErrDimensionMismatch)
	}
	for i, v := range locked {
		if i < 0 || i >= n {
			return fmt.Errorf("locked %d: %w", i, ErrOutOfRange)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("locked %d: %w", i, ErrNaNInf)
		}
	}
	return nil
}
