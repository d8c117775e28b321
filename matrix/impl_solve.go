// SPDX-License-Identifier: MIT
// Package matrix: direct dense linear solve.
//
// Solve delegates factorization to gonum's partial-pivoting LU
// (gonum.org/v1/gonum/mat). Only a non-invertible system is an error:
//   - an exact zero pivot (log|det| = -Inf, infinite or NaN condition),
//   - a non-finite entry in the solution.
//
// An ill-conditioned but invertible system is solved normally; gonum's
// mat.Condition warning is dropped and the computed solution kept.
// A singular system therefore never leaks NaN/Inf to the caller.

package matrix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const opSolve = "Solve"

// Solve returns x such that a·x = b using a dense LU factorization.
//
// Implementation:
//   - Stage 1: validate a square, len(b) == a.Rows().
//   - Stage 2: copy a into a gonum Dense (row-major, same layout) and factorize.
//   - Stage 3: reject zero pivots; solve; reject non-finite x.
//
// Behavior highlights:
//   - a and b are never mutated.
//   - A 0×0 system has the empty solution.
//   - Large condition numbers are not errors.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (validation).
//   - ErrSingular (zero pivot or non-finite solution).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Solve(a Matrix, b []float64) ([]float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if n == 0 {
		return []float64{}, nil
	}

	raw, err := rowMajor(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	rhs := make([]float64, n)
	copy(rhs, b)

	var lu mat.LU
	lu.Factorize(mat.NewDense(n, n, raw))
	// log|det| stays finite unless a pivot is exactly zero; Det itself can
	// underflow on large invertible systems.
	logDet, _ := lu.LogDet()
	cond := lu.Cond()
	if math.IsInf(logDet, -1) || math.IsNaN(logDet) || math.IsInf(cond, 1) || math.IsNaN(cond) {
		return nil, matrixErrorf(opSolve, fmt.Errorf("zero pivot (condition number %g): %w", cond, ErrSingular))
	}

	x := mat.NewVecDense(n, nil)
	if err = lu.SolveVecTo(x, false, mat.NewVecDense(n, rhs)); err != nil {
		var warn mat.Condition
		switch {
		case errors.As(err, &warn):
			// ill-conditioned, solution computed
		case errors.Is(err, mat.ErrSingular):
			return nil, matrixErrorf(opSolve, fmt.Errorf("%v: %w", err, ErrSingular))
		default:
			return nil, matrixErrorf(opSolve, err)
		}
	}

	out := make([]float64, n)
	var v float64
	for i := 0; i < n; i++ {
		v = x.AtVec(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, matrixErrorf(opSolve, fmt.Errorf("non-finite solution at %d: %w", i, ErrSingular))
		}
		out[i] = v
	}

	return out, nil
}

// rowMajor returns a fresh row-major copy of m's entries.
func rowMajor(m Matrix) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		cp := make([]float64, len(d.data))
		copy(cp, d.data)
		return cp, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if out[i*cols+j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
