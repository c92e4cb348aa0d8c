// SPDX-License-Identifier: MIT

// Package api exposes the four SymNMF operations over nested float64 slices
// for callers that do not want to handle *matrix.Dense.
//
// Inputs are deep-copied on entry and results are deep-copied on return, so
// callers never share storage with the library. Failures are typed errors
// from the matrix, affinity and symnmf packages, matched with errors.Is.
package api

import (
	"github.com/NirBendov/symnmf/affinity"
	"github.com/NirBendov/symnmf/matrix"
	"github.com/NirBendov/symnmf/symnmf"
)

// Sym returns the similarity matrix of the points in x.
func Sym(x [][]float64) ([][]float64, error) {
	return apply(x, func(m *matrix.Dense) (*matrix.Dense, error) {
		return affinity.Similarity(m)
	})
}

// DDG returns the diagonal degree matrix of the points in x.
func DDG(x [][]float64) ([][]float64, error) {
	return apply(x, func(m *matrix.Dense) (*matrix.Dense, error) {
		return affinity.DDG(m)
	})
}

// Norm returns the normalized similarity matrix of the points in x.
func Norm(x [][]float64, opts ...affinity.Option) ([][]float64, error) {
	return apply(x, func(m *matrix.Dense) (*matrix.Dense, error) {
		return affinity.Norm(m, opts...)
	})
}

// SymNMF optimizes the initial factor h against the affinity w with the
// default configuration and returns the final factor. h itself is not modified.
func SymNMF(h, w [][]float64) ([][]float64, error) {
	return SymNMFWithConfig(h, w, symnmf.DefaultConfig())
}

// SymNMFWithConfig is SymNMF with an explicit optimizer configuration.
func SymNMFWithConfig(h, w [][]float64, cfg symnmf.Config) ([][]float64, error) {
	hm, err := matrix.NewDenseFrom(h)
	if err != nil {
		return nil, err
	}
	wm, err := matrix.NewDenseFrom(w)
	if err != nil {
		return nil, err
	}
	if _, err = symnmf.Optimize(hm, wm, cfg); err != nil {
		return nil, err
	}

	return hm.ToRows(), nil
}

func apply(x [][]float64, fn func(*matrix.Dense) (*matrix.Dense, error)) ([][]float64, error) {
	m, err := matrix.NewDenseFrom(x)
	if err != nil {
		return nil, err
	}
	out, err := fn(m)
	if err != nil {
		return nil, err
	}

	return out.ToRows(), nil
}
