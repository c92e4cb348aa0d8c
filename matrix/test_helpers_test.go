// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed unless a test targets NaN/Inf.

package matrix_test

import (
	"math"
	"testing"

	"github.com/NirBendov/symnmf/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance used by approximate comparisons.
const tol = 1e-12

// hide wraps any Matrix to hide its concrete type from type assertions.
// Kernels then take their generic At-based fallback path, which lets tests
// assert fast-path == fallback.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustFrom builds a *Dense from nested rows or fails the test.
func MustFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// RequireAllClose asserts element-wise |got-want| ≤ tol with identical shapes.
func RequireAllClose(t *testing.T, want [][]float64, got matrix.Matrix, eps float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "row count")
	for i := range want {
		require.Equal(t, len(want[i]), got.Cols(), "col count")
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want[i][j], v, eps, "cell (%d,%d)", i, j)
		}
	}
}

// seqDense fills an r×c matrix with a deterministic, non-trivial pattern.
func seqDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, math.Sin(float64(i*c+j+1))))
		}
	}

	return m
}
