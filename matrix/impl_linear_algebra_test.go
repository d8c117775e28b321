// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/kirchhoff/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rowsOnly hides *Dense behind a minimal Matrix so kernels take their generic path.
type rowsOnly struct{ d *matrix.Dense }

func (w rowsOnly) Rows() int { return w.d.Rows() }
func (w rowsOnly) Cols() int { return w.d.Cols() }
func (w rowsOnly) At(i, j int) (float64, error) { return w.d.At(i, j) }
func (w rowsOnly) Set(i, j int, v float64) error { return w.d.Set(i, j, v) }
func (w rowsOnly) Clone() matrix.Matrix { return rowsOnly{d: w.d.Clone().(*matrix.Dense)} }

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestMul checks both the Dense fast path and the generic fallback.
func TestMul(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 0}, {0, 1, 3}})
	b := mustRows(t, [][]float64{{1, 0}, {2, 1}, {0, 4}})
	want := [][]float64{{5, 2}, {2, 13}}

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, want, got.ToRows())

	got, err = matrix.Mul(rowsOnly{a}, rowsOnly{b})
	require.NoError(t, err)
	assert.Equal(t, want, got.ToRows())
}

// TestMulErrors covers nil operands and inner-dimension mismatch.
func TestMulErrors(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}})

	_, err := matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var nilDense *matrix.Dense
	_, err = matrix.Mul(a, nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTranspose flips a rectangular matrix on both paths.
func TestTranspose(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}

	got, err := matrix.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, want, got.ToRows())

	got, err = matrix.Transpose(rowsOnly{a})
	require.NoError(t, err)
	assert.Equal(t, want, got.ToRows())

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestZeroInnerDimension verifies that N×0 · 0×N yields an N×N zero matrix.
func TestZeroInnerDimension(t *testing.T) {
	b, err := matrix.BuildIncidence(3, nil) // 0×3
	require.NoError(t, err)

	bt, err := matrix.Transpose(b) // 3×0
	require.NoError(t, err)
	require.Equal(t, 3, bt.Rows())
	require.Equal(t, 0, bt.Cols())

	l, err := matrix.Mul(bt, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, l.ToRows())
}

// TestMatVec covers y = A·x and the length guard.
func TestMatVec(t *testing.T) {
	a := mustRows(t, [][]float64{{1, -1, 0}, {0, 1, -1}})

	y, err := matrix.MatVec(a, []float64{3, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, y)

	y, err = matrix.MatVec(rowsOnly{a}, []float64{3, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, y)

	_, err = matrix.MatVec(a, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestScaleRows checks diag(w)·A without a materialized diagonal.
func TestScaleRows(t *testing.T) {
	a := mustRows(t, [][]float64{{1, -1, 0}, {0, 1, -1}})
	want := [][]float64{{2, -2, 0}, {0, 0.5, -0.5}}

	got, err := matrix.ScaleRows(a, []float64{2, 0.5})
	require.NoError(t, err)
	assert.Equal(t, want, got.ToRows())

	got, err = matrix.ScaleRows(rowsOnly{a}, []float64{2, 0.5})
	require.NoError(t, err)
	assert.Equal(t, want, got.ToRows())

	_, err = matrix.ScaleRows(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// input untouched
	v, _ := a.At(0, 0)
	assert.Equal(t, 1.0, v)
}
