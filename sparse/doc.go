// Package sparse assembles and solves the symmetric sparse systems behind
// harmonic weight fields.
//
// Components:
//
//   - Builder / Matrix: triplet accumulation into a compressed-sparse-row
//     (CSR) matrix. Duplicate (i,j) entries are summed.
//   - Solver: "solve a symmetric positive semi-definite system with some
//     variables locked to constants". Two implementations ship:
//     – ConjugateGradient: Jacobi-preconditioned projected CG; vector
//     kernels from gonum/floats.
//     – Cholesky: dense factorization of the reduced free-variable system
//     through gonum/mat; meant for small meshes and tests.
//   - AssembleCotangent: per-face cotangent Laplacian of a mesh.
//   - SolveHarmonic: Dirichlet solve of L·x = 0 with pinned vertices.
//
// Error policy: every failure is a sentinel from errors.go, wrapped with the
// method name; option constructors panic on nonsense values.
package sparse
