// SPDX-License-Identifier: MIT

package symnmf

import (
	"fmt"

	"github.com/NirBendov/symnmf/matrix"
)

const (
	opOptimize = "Optimize"
	opStep     = "step"
)

// Result summarizes a finished Optimize run.
type Result struct {
	// Iterations is the number of updates applied to H.
	Iterations int
	// Delta is ‖H_next − H‖_F² of the last applied update.
	Delta float64
	// Converged is true when the run stopped because Delta < Epsilon.
	Converged bool
}

// Optimize runs the damped multiplicative update on h in place.
//
// Implementation:
//   - Stage 1: validate cfg, then shapes: w square, h.Rows() == w.Rows().
//     Nothing is computed when validation fails.
//   - Stage 2: for iter = 1..MaxIter:
//     WH = W·H, HHt = H·Hᵀ, HHtH = HHt·H,
//     H_next[i][j] = H[i][j] · (1 − β + β·WH[i][j]/HHtH[i][j]),
//     δ = ‖H_next − H‖_F², H ← H_next, stop if δ < Epsilon.
//
// Behavior highlights:
//   - The last computed update is always applied, converged or not.
//   - H stays non-negative whenever every HHtH entry is positive and W ≥ 0.
//   - Deterministic: identical inputs give bitwise identical H.
//
// Errors:
//   - ErrBadConfig, matrix.ErrNilMatrix, matrix.ErrNonSquare,
//     matrix.ErrDimensionMismatch at entry.
//   - ErrDegenerateUpdate (StrictDivision) or the context error mid-run;
//     h then holds the last applied update and Result counts it.
//
// Complexity: Time O(MaxIter · n²·k), Space O(n² + n·k).
func Optimize(h *matrix.Dense, w matrix.Matrix, cfg Config) (Result, error) {
	var res Result
	if err := cfg.Validate(); err != nil {
		return res, symnmfErrorf(opOptimize, err)
	}
	if h == nil {
		return res, symnmfErrorf(opOptimize, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSquareNonNil(w); err != nil {
		return res, symnmfErrorf(opOptimize, err)
	}
	if h.Rows() != w.Rows() {
		return res, symnmfErrorf(opOptimize,
			fmt.Errorf("H has %d rows, W is %d×%d: %w", h.Rows(), w.Rows(), w.Cols(), matrix.ErrDimensionMismatch))
	}

	ctx := cfg.context()
	for iter := 1; iter <= cfg.MaxIter; iter++ {
		if err := ctx.Err(); err != nil {
			return res, symnmfErrorf(opOptimize, err)
		}
		next, err := step(h, w, cfg.Beta, cfg.StrictDivision)
		if err != nil {
			return res, symnmfErrorf(opOptimize, fmt.Errorf("iteration %d: %w", iter, err))
		}
		delta, err := matrix.DiffFrobeniusSq(next, h)
		if err != nil {
			return res, symnmfErrorf(opOptimize, err)
		}
		if err = h.CopyFrom(next); err != nil {
			return res, symnmfErrorf(opOptimize, err)
		}
		res.Iterations, res.Delta = iter, delta
		if cfg.OnIteration != nil {
			cfg.OnIteration(iter, delta)
		}
		if delta < cfg.Epsilon {
			res.Converged = true
			break
		}
	}

	return res, nil
}

// step computes one damped multiplicative update without touching h.
func step(h *matrix.Dense, w matrix.Matrix, beta float64, strict bool) (*matrix.Dense, error) {
	wh, err := matrix.Mul(w, h)
	if err != nil {
		return nil, symnmfErrorf(opStep, err)
	}
	ht, err := matrix.Transpose(h)
	if err != nil {
		return nil, symnmfErrorf(opStep, err)
	}
	hht, err := matrix.Mul(h, ht)
	if err != nil {
		return nil, symnmfErrorf(opStep, err)
	}
	hhth, err := matrix.Mul(hht, h)
	if err != nil {
		return nil, symnmfErrorf(opStep, err)
	}

	n, k := h.Shape()
	next, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, symnmfErrorf(opStep, err)
	}
	var hv, num, den float64
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			// all four matrices are n×k; At cannot fail
			hv, _ = h.At(i, j)
			num, _ = wh.At(i, j)
			den, _ = hhth.At(i, j)
			if den == 0 && strict {
				return nil, symnmfErrorf(opStep, fmt.Errorf("HHtH(%d,%d): %w", i, j, ErrDegenerateUpdate))
			}
			_ = next.Set(i, j, hv*(1-beta+beta*num/den))
		}
	}

	return next, nil
}
