// SPDX-License-Identifier: MIT

package symnmf

import (
	"fmt"

	"github.com/NirBendov/symnmf/affinity"
	"github.com/NirBendov/symnmf/matrix"
)

const opFactorize = "Factorize"

// Factorization is the outcome of Factorize.
type Factorization struct {
	W      *matrix.Dense // normalized affinity
	H      *matrix.Dense // final factor, n×k
	Result Result
}

// Factorize clusters the rows of x into k groups:
// W = affinity.Norm(x, opts...), H0 = Initialize(W, k, NewSource(seed)),
// then Optimize(H0, W, cfg).
//
// Errors: ErrInvalidK unless 1 ≤ k < n, plus anything the stages return.
func Factorize(x matrix.Matrix, k int, cfg Config, seed uint64, opts ...affinity.Option) (*Factorization, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, symnmfErrorf(opFactorize, err)
	}
	if n := x.Rows(); k < 1 || k >= n {
		return nil, symnmfErrorf(opFactorize, fmt.Errorf("k=%d, n=%d: %w", k, n, ErrInvalidK))
	}
	if err := cfg.Validate(); err != nil {
		return nil, symnmfErrorf(opFactorize, err)
	}

	w, err := affinity.Norm(x, opts...)
	if err != nil {
		return nil, symnmfErrorf(opFactorize, err)
	}
	h, err := Initialize(w, k, NewSource(seed))
	if err != nil {
		return nil, symnmfErrorf(opFactorize, err)
	}
	res, err := Optimize(h, w, cfg)
	if err != nil {
		return nil, symnmfErrorf(opFactorize, err)
	}

	return &Factorization{W: w, H: h, Result: res}, nil
}

// Labels returns the hard cluster assignment of the factorization.
func (f *Factorization) Labels() ([]int, error) {
	return Labels(f.H)
}
