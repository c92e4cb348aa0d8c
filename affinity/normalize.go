// SPDX-License-Identifier: MIT

package affinity

import (
	"fmt"
	"math"

	"github.com/NirBendov/symnmf/matrix"
)

// Normalize returns W = D^(-1/2) · A · D^(-1/2).
//
// Implementation:
//   - Stage 1: a and d must be square, non-nil and of the same shape; d must
//     be diagonal.
//   - Stage 2: build Dinv = diag(D[i][i]^(-1/2)). Under WithStrictDegree a
//     zero degree returns ErrSingularDegree here.
//   - Stage 3: two SquareMul calls, left product first.
//
// With the default policy a zero degree gives +Inf in Dinv and the affected
// rows and columns of W become NaN/Inf. When every degree is positive and a
// is symmetric, W is symmetric.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare,
// matrix.ErrDimensionMismatch, ErrNotDiagonal, ErrSingularDegree.
// Complexity: Time O(n³), Space O(n²).
func Normalize(a, d matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)

	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, affinityErrorf(opNormalize, err)
	}
	if err := matrix.ValidateSquareNonNil(d); err != nil {
		return nil, affinityErrorf(opNormalize, err)
	}
	if err := matrix.ValidateSameShape(a, d); err != nil {
		return nil, affinityErrorf(opNormalize, err)
	}
	diagonal, err := matrix.IsZeroOffDiagonal(d, 0)
	if err != nil {
		return nil, affinityErrorf(opNormalize, err)
	}
	if !diagonal {
		return nil, affinityErrorf(opNormalize, ErrNotDiagonal)
	}

	deg, err := matrix.Diagonal(d)
	if err != nil {
		return nil, affinityErrorf(opNormalize, err)
	}
	inv := make([]float64, len(deg))
	for i, v := range deg {
		if v == 0 && o.strictDegree {
			return nil, affinityErrorf(opNormalize, fmt.Errorf("row %d: %w", i, ErrSingularDegree))
		}
		inv[i] = 1 / math.Sqrt(v)
	}
	dinv, err := matrix.Diag(inv)
	if err != nil {
		return nil, affinityErrorf(opNormalize, err)
	}

	left, err := matrix.SquareMul(dinv, a)
	if err != nil {
		return nil, affinityErrorf(opNormalize, err)
	}
	w, err := matrix.SquareMul(left, dinv)
	if err != nil {
		return nil, affinityErrorf(opNormalize, err)
	}

	return w, nil
}

// Norm runs the full pipeline Similarity → Degree → Normalize on x.
func Norm(x matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	a, err := Similarity(x)
	if err != nil {
		return nil, affinityErrorf(opNorm, err)
	}
	d, err := Degree(a)
	if err != nil {
		return nil, affinityErrorf(opNorm, err)
	}
	w, err := Normalize(a, d, opts...)
	if err != nil {
		return nil, affinityErrorf(opNorm, err)
	}

	return w, nil
}
