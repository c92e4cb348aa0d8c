// SPDX-License-Identifier: MIT
package symnmf_test

import (
	"math"
	"testing"

	"github.com/NirBendov/symnmf/affinity"
	"github.com/NirBendov/symnmf/matrix"
	"github.com/stretchr/testify/require"
)

func mustFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

func at(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// blobs returns two tight groups of four points, far apart.
func blobs(t *testing.T) *matrix.Dense {
	return mustFrom(t, [][]float64{
		{0, 0}, {0.3, 0}, {0, 0.3}, {0.3, 0.3},
		{6, 6}, {6.3, 6}, {6, 6.3}, {6.3, 6.3},
	})
}

// cloud returns a deterministic n×d point set with no isolated points.
func cloud(t *testing.T, n, d int) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, d)
		for k := range rows[i] {
			rows[i][k] = math.Sin(float64(5*i+k+1)) * 1.5
		}
	}

	return mustFrom(t, rows)
}

// problem returns W = Norm(cloud) and a seeded initial H.
func problem(t *testing.T, n, k int) (w, h *matrix.Dense) {
	t.Helper()
	w, err := affinity.Norm(cloud(t, n, 3))
	require.NoError(t, err)
	h, err = symnmfInit(w, k)
	require.NoError(t, err)

	return w, h
}

func requireNonNegative(t *testing.T, m *matrix.Dense) {
	t.Helper()
	for i, row := range m.ToRows() {
		for j, v := range row {
			require.GreaterOrEqual(t, v, 0.0, "cell (%d,%d)", i, j)
		}
	}
}
