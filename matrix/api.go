// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to a canonical kernel.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Diag returns the n×n matrix with v on the main diagonal and zeros elsewhere.
// Errors: ErrInvalidDimensions when v is empty.
// Complexity: O(n^2) zeroing + O(n) writes.
func Diag(v []float64) (*Dense, error) {
	n := len(v)
	d, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opDiag, err)
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = v[i]
	}

	return d, nil
}

// Diagonal returns a copy of the main diagonal of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Diagonal(m Matrix) ([]float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opDiag, err)
	}
	n := m.Rows()
	out := make([]float64, n)
	var err error
	for i := 0; i < n; i++ {
		if out[i], err = readAt(m, i, i, opDiag); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("MatVec", err)
	}
	if len(x) != m.Cols() {
		return nil, matrixErrorf("MatVec", ErrDimensionMismatch)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var acc float64
		var base int
		for i := 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j := 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}
		return y, nil
	}

	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		y[i] = ZeroSum
		for j := 0; j < cols; j++ {
			if mv, err = readAt(m, i, j, "MatVec"); err != nil {
				return nil, err
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// RowSums returns vector r where r[i] = sum_j m[i,j], summed in ascending j.
// Implementation: MatVec(m, ones(cols)). No custom loops.
// Complexity: O(rc).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	ones := make([]float64, m.Cols())
	for j := range ones {
		ones[j] = 1.0
	}

	return MatVec(m, ones)
}
