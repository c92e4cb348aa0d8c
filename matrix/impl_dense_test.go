// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/NirBendov/symnmf/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseAllocationLimit ensures oversized shapes fail with ErrAllocation, not a runtime crash.
func TestNewDenseAllocationLimit(t *testing.T) {
	_, err := matrix.NewDense(matrix.MaxElements, 2)
	require.ErrorIs(t, err, matrix.ErrAllocation)

	_, err = matrix.NewDense(math.MaxInt, math.MaxInt)
	require.ErrorIs(t, err, matrix.ErrAllocation)
}

// TestRowsCols verifies that Rows(), Cols() and Shape() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // alias still matches

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestSetAcceptsNonFinite documents that NaN/Inf are stored, not rejected.
func TestSetAcceptsNonFinite(t *testing.T) {
	m := MustDense(t, 1, 2)
	require.NoError(t, m.Set(0, 0, math.NaN()))
	require.NoError(t, m.Set(0, 1, math.Inf(1)))

	v, _ := m.At(0, 0)
	require.True(t, math.IsNaN(v))
	v, _ = m.At(0, 1)
	require.True(t, math.IsInf(v, 1))
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustDense(t, 2, 2)
	_ = m.Set(0, 0, 1.0)
	_ = m.Set(1, 1, 2.0)

	clone := m.Clone()
	_ = clone.Set(0, 0, 3.0)

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestNewDenseFromDeepCopy checks construction from nested rows in both directions.
func TestNewDenseFromDeepCopy(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	m := MustFrom(t, src)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())

	src[0][0] = 100 // caller mutation must not leak in
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)

	out := m.ToRows()
	require.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, out)
	out[2][1] = -1 // exported copy must not alias storage
	v, _ = m.At(2, 1)
	require.Equal(t, 6.0, v)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
}

// TestNewDenseFromRejects covers empty and ragged inputs.
func TestNewDenseFromRejects(t *testing.T) {
	_, err := matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestCopyFrom covers the in-place overwrite used by iterative solvers.
func TestCopyFrom(t *testing.T) {
	dst := MustDense(t, 2, 2)
	src := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, dst.CopyFrom(src))
	require.Equal(t, src.ToRows(), dst.ToRows())

	require.ErrorIs(t, dst.CopyFrom(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, dst.CopyFrom(MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
