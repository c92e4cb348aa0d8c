// SPDX-License-Identifier: MIT
package api_test

import (
	"math"
	"testing"

	"github.com/NirBendov/symnmf/affinity"
	"github.com/NirBendov/symnmf/api"
	"github.com/NirBendov/symnmf/matrix"
	"github.com/NirBendov/symnmf/symnmf"
	"github.com/stretchr/testify/require"
)

var triangle = [][]float64{{0, 0}, {1, 0}, {0, 1}}

func TestSymDDGNorm(t *testing.T) {
	half, one := math.Exp(-0.5), math.Exp(-1)

	a, err := api.Sym(triangle)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, half, half}, {half, 0, one}, {half, one, 0}}, a)

	d, err := api.DDG(triangle)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2 * half, 0, 0}, {0, half + one, 0}, {0, 0, half + one}}, d)

	w, err := api.Norm(triangle)
	require.NoError(t, err)
	require.InDelta(t, half/math.Sqrt(2*half*(half+one)), w[0][1], 1e-15)
	require.InDelta(t, w[0][1], w[1][0], 1e-15)
}

func TestSinglePoint(t *testing.T) {
	a, err := api.Sym([][]float64{{3, 4}})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0}}, a)

	d, err := api.DDG([][]float64{{3, 4}})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0}}, d)

	w, err := api.Norm([][]float64{{3, 4}})
	require.NoError(t, err)
	require.True(t, math.IsNaN(w[0][0]))

	_, err = api.Norm([][]float64{{3, 4}}, affinity.WithStrictDegree())
	require.ErrorIs(t, err, affinity.ErrSingularDegree)
}

func TestBoundaryCopies(t *testing.T) {
	x := [][]float64{{0, 0}, {1, 0}, {0, 1}}
	a, err := api.Sym(x)
	require.NoError(t, err)
	a[0][1] = 99
	x[0][0] = 99

	again, err := api.Sym(triangle)
	require.NoError(t, err)
	require.NotEqual(t, 99.0, again[0][1])

	h := [][]float64{{1}}
	out, err := api.SymNMF(h, [][]float64{{4}})
	require.NoError(t, err)
	require.InDelta(t, 2.0, out[0][0], 1e-2)
	require.Equal(t, 1.0, h[0][0], "caller's H is not modified")
}

func TestSymNMFErrors(t *testing.T) {
	_, err := api.SymNMF([][]float64{{1}, {1}}, [][]float64{{1}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = api.SymNMF([][]float64{{1, 2}, {3}}, [][]float64{{1}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = api.Sym(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	cfg := symnmf.DefaultConfig()
	cfg.StrictDivision = true
	_, err = api.SymNMFWithConfig([][]float64{{0}}, [][]float64{{1}}, cfg)
	require.ErrorIs(t, err, symnmf.ErrDegenerateUpdate)
}
