// SPDX-License-Identifier: MIT

package symnmf

import (
	"fmt"

	"github.com/NirBendov/symnmf/matrix"
	"gonum.org/v1/gonum/mat"
)

const opObjective = "Objective"

// Objective returns ‖W − H·Hᵀ‖_F, the quantity Optimize decreases.
// It is computed with gonum on copies of w and h.
func Objective(w, h *matrix.Dense) (float64, error) {
	if w == nil || h == nil {
		return 0, symnmfErrorf(opObjective, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSquare(w); err != nil {
		return 0, symnmfErrorf(opObjective, err)
	}
	if h.Rows() != w.Rows() {
		return 0, symnmfErrorf(opObjective,
			fmt.Errorf("H has %d rows, W has %d: %w", h.Rows(), w.Rows(), matrix.ErrDimensionMismatch))
	}

	gw, err := matrix.ToGonum(w)
	if err != nil {
		return 0, symnmfErrorf(opObjective, err)
	}
	gh, err := matrix.ToGonum(h)
	if err != nil {
		return 0, symnmfErrorf(opObjective, err)
	}
	var hht, diff mat.Dense
	hht.Mul(gh, gh.T())
	diff.Sub(gw, &hht)

	return mat.Norm(&diff, 2), nil
}
