// Package matrix provides the owned dense matrix type and the linear-algebra
// kernels shared by the SymNMF pipeline.
//
// The matrix package provides:
//
//   - Dense: a contiguous row-major float64 buffer with explicit row/column
//     counts and bounds-checked At/Set accessors.
//   - Kernels: Transpose, Mul, SquareMul, Sub, MatVec, RowSums and squared
//     Frobenius reductions. Every kernel allocates a fresh result and leaves
//     its operands untouched.
//   - Validators: a single source of truth for nil/shape/symmetry checks.
//   - Interop: ToGonum/FromGonum copy data to and from gonum's mat.Dense.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrNonSquare,
// ErrAllocation, ...) wrapped with an operation tag; match them via errors.Is.
//
// Kernels accept the Matrix interface. Passing *Dense operands enables
// flat-slice fast paths; other implementations go through At.
package matrix
