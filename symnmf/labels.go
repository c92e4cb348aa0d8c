// SPDX-License-Identifier: MIT

package symnmf

import "github.com/NirBendov/symnmf/matrix"

// Labels assigns each row of h to the column holding its largest entry.
// Ties go to the lowest column index.
func Labels(h matrix.Matrix) ([]int, error) {
	if err := matrix.ValidateNotNil(h); err != nil {
		return nil, symnmfErrorf("Labels", err)
	}
	n, k := h.Rows(), h.Cols()
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		best, _ := h.At(i, 0)
		for j := 1; j < k; j++ {
			v, err := h.At(i, j)
			if err != nil {
				return nil, symnmfErrorf("Labels", err)
			}
			if v > best {
				best, labels[i] = v, j
			}
		}
	}

	return labels, nil
}
