// SPDX-License-Identifier: MIT

package symnmf

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/NirBendov/symnmf/matrix"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const opInitialize = "Initialize"

// NewSource returns the PCG source Initialize expects for a given seed.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed)
}

// Initialize draws an n×k starting factor for w with entries uniform in
// [0, 2·sqrt(mean(w)/k)), where mean(w) averages all n² entries.
// Draws are taken row by row from src, so a fixed seed gives a fixed H.
//
// Errors: ErrInvalidK (k < 1), ErrInvalidAffinity, matrix validation errors.
func Initialize(w matrix.Matrix, k int, src rand.Source) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(w); err != nil {
		return nil, symnmfErrorf(opInitialize, err)
	}
	if k < 1 {
		return nil, symnmfErrorf(opInitialize, fmt.Errorf("k=%d: %w", k, ErrInvalidK))
	}
	flat, err := flatten(w)
	if err != nil {
		return nil, symnmfErrorf(opInitialize, err)
	}
	m := stat.Mean(flat, nil)
	if math.IsNaN(m) || math.IsInf(m, 0) || m < 0 {
		return nil, symnmfErrorf(opInitialize, fmt.Errorf("mean=%g: %w", m, ErrInvalidAffinity))
	}

	dist := distuv.Uniform{Min: 0, Max: 2 * math.Sqrt(m/float64(k)), Src: src}
	n := w.Rows()
	h, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, symnmfErrorf(opInitialize, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			_ = h.Set(i, j, dist.Rand())
		}
	}

	return h, nil
}

// flatten returns the row-major entries of m.
func flatten(m matrix.Matrix) ([]float64, error) {
	r, c := m.Rows(), m.Cols()
	out := make([]float64, 0, r*c)
	if d, ok := m.(*matrix.Dense); ok {
		for _, row := range d.ToRows() {
			out = append(out, row...)
		}
		return out, nil
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}

	return out, nil
}
