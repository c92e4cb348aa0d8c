// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a freshly allocated gonum *mat.Dense.
// The copy lets gonum routines (norms, statistics, BLAS-backed products)
// run on module data without aliasing the owned buffer.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func ToGonum(m *Dense) (*mat.Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opToGonum, ErrNilMatrix)
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf), nil
}

// FromGonum copies any gonum matrix into a new *Dense.
// Errors: ErrNilMatrix, ErrInvalidDimensions (gonum allows empty views).
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("%dx%d: %w", r, c, err))
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out, nil
}
