package matrix_test

import (
	"math"
	"testing"

	"github.com/NirBendov/symnmf/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateSymmetric(t *testing.T) {
	sym := MustFrom(t, [][]float64{{0, 1}, {1, 0}})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))

	asym := MustFrom(t, [][]float64{{0, 1}, {1.1, 0}})
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 1e-3), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(asym, -0.2)) // negative tol is flipped

	require.ErrorIs(t, matrix.ValidateSymmetric(MustDense(t, 2, 3), 0), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)

	withNaN := MustFrom(t, [][]float64{{0, math.NaN()}, {math.NaN(), 0}})
	require.ErrorIs(t, matrix.ValidateSymmetric(withNaN, 1), matrix.ErrNaNInf)
}

func TestIsZeroOffDiagonal(t *testing.T) {
	d := MustFrom(t, [][]float64{{2, 0}, {0, 3}})
	ok, err := matrix.IsZeroOffDiagonal(d, 0)
	require.NoError(t, err)
	require.True(t, ok)

	a := MustFrom(t, [][]float64{{0, 1e-3}, {0, 0}})
	ok, err = matrix.IsZeroOffDiagonal(a, 1e-6)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.IsZeroOffDiagonal(MustDense(t, 1, 2), 0)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestValidateMulCompatible(t *testing.T) {
	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 1)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 1)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), nil), matrix.ErrNilMatrix)
}
