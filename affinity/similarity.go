// SPDX-License-Identifier: MIT

package affinity

import (
	"math"

	"github.com/NirBendov/symnmf/matrix"
)

const (
	opSimilarity = "Similarity"
	opDegree     = "Degree"
	opNormalize  = "Normalize"
	opDDG        = "DDG"
	opNorm       = "Norm"
)

// Similarity returns the n×n Gaussian similarity matrix of the rows of x.
//
// For i≠j, A[i][j] = A[j][i] = exp(-‖xi − xj‖² / 2); the diagonal is zero.
// Only the strict lower triangle is computed and mirrored, so A is exactly
// symmetric. A single point yields the 1×1 zero matrix.
//
// Errors: matrix.ErrNilMatrix.
// Complexity: Time O(n²·d), Space O(n²).
func Similarity(x matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, affinityErrorf(opSimilarity, err)
	}
	n, d := x.Rows(), x.Cols()
	pts, err := rowsOf(x)
	if err != nil {
		return nil, affinityErrorf(opSimilarity, err)
	}
	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, affinityErrorf(opSimilarity, err)
	}

	var sq, diff, v float64
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			sq = 0
			for k := 0; k < d; k++ {
				diff = pts[i][k] - pts[j][k]
				sq += diff * diff
			}
			v = math.Exp(-sq / 2)
			// indices are in range by construction
			_ = a.Set(i, j, v)
			_ = a.Set(j, i, v)
		}
	}

	return a, nil
}

// rowsOf snapshots x as nested rows, using the Dense fast path when possible.
func rowsOf(x matrix.Matrix) ([][]float64, error) {
	if dx, ok := x.(*matrix.Dense); ok {
		return dx.ToRows(), nil
	}
	out := make([][]float64, x.Rows())
	var err error
	for i := range out {
		out[i] = make([]float64, x.Cols())
		for j := range out[i] {
			if out[i][j], err = x.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
