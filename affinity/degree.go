// SPDX-License-Identifier: MIT

package affinity

import "github.com/NirBendov/symnmf/matrix"

// Degree returns the diagonal degree matrix of a: D[i][i] = Σ_j a[i][j]
// summed in ascending j, zero off the diagonal.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
// Complexity: Time O(n²), Space O(n²).
func Degree(a matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, affinityErrorf(opDegree, err)
	}
	sums, err := matrix.RowSums(a)
	if err != nil {
		return nil, affinityErrorf(opDegree, err)
	}
	d, err := matrix.Diag(sums)
	if err != nil {
		return nil, affinityErrorf(opDegree, err)
	}

	return d, nil
}

// DDG is Degree(Similarity(x)).
func DDG(x matrix.Matrix) (*matrix.Dense, error) {
	a, err := Similarity(x)
	if err != nil {
		return nil, affinityErrorf(opDDG, err)
	}
	d, err := Degree(a)
	if err != nil {
		return nil, affinityErrorf(opDDG, err)
	}

	return d, nil
}
