// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// transpose, general and square matrix multiplication, element-wise
// difference and squared Frobenius reductions. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh *Dense result; operands are never mutated.
//   - All kernels use central validators and wrap failures via matrixErrorf.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial value of every accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSub         = "Sub"
	opMul         = "Mul"
	opSquareMul   = "SquareMul"
	opTranspose   = "Transpose"
	opFrobenius   = "FrobeniusSq"
	opDiffFrobSq  = "DiffFrobeniusSq"
	opRowSums     = "RowSums"
	opDiag        = "Diag"
	opToGonum     = "ToGonum"
	opFromGonum   = "FromGonum"
	opElementRead = "At"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// readAt is the fallback element read used by every generic (non-*Dense) path.
func readAt(m Matrix, i, j int, tag string) (float64, error) {
	v, err := m.At(i, j)
	if err != nil {
		return 0, matrixErrorf(tag, fmt.Errorf("%s(%d,%d): %w", opElementRead, i, j, err))
	}

	return v, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use flat index mapping; else generic i→j loop.
//
// Returns:
//   - *Dense(c×r) with mᵀ.
//
// Errors:
//   - ErrNilMatrix, allocation errors from NewDense.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = readAt(m, i, j, opTranspose); err != nil {
				return nil, err
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, run i→k→j over row-major strides;
//     otherwise i→j→k through At.
//
// Behavior highlights:
//   - Each C[i,j] accumulates its k terms in ascending k order on both paths,
//     so results are bitwise identical between the fast path and the fallback.
//   - No zero-skipping: 0·Inf must yield NaN so that degenerate inputs
//     propagate exactly as the plain triple loop would.
//
// Inputs:
//   - A: left matrix with shape (n × m).
//   - B: right matrix with shape (m × t).
//
// Returns:
//   - *Dense C with shape (n × t).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(n*m*t), Space O(n*t).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = readAt(a, i, k, opMul); err != nil {
					return nil, err
				}
				if bv, err = readAt(b, k, j, opMul); err != nil {
					return nil, err
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// SquareMul is Mul specialized to two n×n operands.
// Errors: ErrNilMatrix, ErrNonSquare (either operand not square),
// ErrDimensionMismatch (different n).
// Complexity: Time O(n^3), Space O(n^2).
func SquareMul(a, b Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opSquareMul, err)
	}
	if err := ValidateSquareNonNil(b); err != nil {
		return nil, matrixErrorf(opSquareMul, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSquareMul, err)
	}

	return Mul(a, b)
}

// Sub computes the element-wise difference C = A - B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] - db.data[idx]
			}
			return res, nil
		}
	}

	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = readAt(a, i, j, opSub); err != nil {
				return nil, err
			}
			if bv, err = readAt(b, i, j, opSub); err != nil {
				return nil, err
			}
			res.data[i*cols+j] = av - bv
		}
	}

	return res, nil
}

// FrobeniusSq returns Σ m[i,j]², the squared Frobenius norm of m.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(1).
func FrobeniusSq(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}
	sum := ZeroSum
	if dm, ok := m.(*Dense); ok {
		for _, v := range dm.data {
			sum += v * v
		}
		return sum, nil
	}

	var v float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = readAt(m, i, j, opFrobenius); err != nil {
				return 0, err
			}
			sum += v * v
		}
	}

	return sum, nil
}

// DiffFrobeniusSq returns ‖a − b‖_F² = Σ (a[i,j] − b[i,j])² without
// materializing the difference matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(1).
func DiffFrobeniusSq(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opDiffFrobSq, err)
	}
	sum := ZeroSum
	var d float64
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				d = da.data[idx] - db.data[idx]
				sum += d * d
			}
			return sum, nil
		}
	}

	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = readAt(a, i, j, opDiffFrobSq); err != nil {
				return 0, err
			}
			if bv, err = readAt(b, i, j, opDiffFrobSq); err != nil {
				return 0, err
			}
			d = av - bv
			sum += d * d
		}
	}

	return sum, nil
}
