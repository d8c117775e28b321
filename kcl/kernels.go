// SPDX-License-Identifier: MIT

package kcl

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/kirchhoff/matrix"
)

const (
	opNodal   = "NodalMatrix"
	opSolveV  = "SolveVoltages"
	opCurrent = "EdgeCurrents"
	opUpdate  = "UpdateConductance"
)

// NodalMatrix assembles the N×N nodal conductance matrix L = Bᵀ·diag(g)·B
// for an E×N incidence b. L[a][a] is the total conductance touching node a;
// L[a][c] is minus the conductance between a and c.
//
// Errors: matrix.ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(E·N²) dense, with zero entries of Bᵀ skipped.
func NodalMatrix(g []float64, b matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("%s: %w", opNodal, err)
	}
	if len(g) != b.Rows() {
		return nil, lenErrorf(opNodal, "G", len(g), b.Rows())
	}

	gb, err := matrix.ScaleRows(b, g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNodal, err)
	}
	bt, err := matrix.Transpose(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNodal, err)
	}
	l, err := matrix.Mul(bt, gb)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNodal, err)
	}

	return l, nil
}

// SolveVoltages returns node voltages V satisfying Kirchhoff's current law
// Bᵀ·diag(g)·B·V = iinj on every node except ground, with V[ground] = 0.
//
// Implementation:
//   - Stage 1: validate b, len(g) == E, len(iinj) == N, ground ∈ [0, N).
//   - Stage 2: assemble L and drop the ground row/column (Induced on keep-indices).
//   - Stage 3: dense LU solve of the reduced system; scatter back around ground.
//
// The injected current at ground is ignored: ground absorbs whatever the
// other nodes inject. A single-node network has V = [0].
//
// Errors: matrix.ErrNilMatrix, ErrDimensionMismatch, ErrGroundOutOfRange,
// ErrSingularSystem (wraps matrix.ErrSingular).
// Complexity: O(E·N² + N³).
func SolveVoltages(g []float64, b matrix.Matrix, iinj []float64, ground int) ([]float64, error) {
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveV, err)
	}
	n := b.Cols()
	if len(iinj) != n {
		return nil, lenErrorf(opSolveV, "I", len(iinj), n)
	}
	if ground < 0 || ground >= n {
		return nil, fmt.Errorf("%s: ground %d with %d nodes: %w", opSolveV, ground, n, ErrGroundOutOfRange)
	}

	l, err := NodalMatrix(g, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveV, err)
	}

	keep := make([]int, 0, n-1)
	rhs := make([]float64, 0, n-1)
	for i := 0; i < n; i++ {
		if i == ground {
			continue
		}
		keep = append(keep, i)
		rhs = append(rhs, iinj[i])
	}

	v := make([]float64, n)
	if len(keep) == 0 {
		return v, nil
	}

	reduced, err := l.Induced(keep, keep)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveV, err)
	}
	vr, err := matrix.Solve(reduced, rhs)
	if err != nil {
		return nil, solveError(ground, err)
	}

	for k, i := range keep {
		v[i] = vr[k]
	}
	v[ground] = 0

	return v, nil
}

// solveError tags a reduced-system failure; only matrix.ErrSingular becomes
// ErrSingularSystem.
func solveError(ground int, err error) error {
	if errors.Is(err, matrix.ErrSingular) {
		return fmt.Errorf("%s: ground %d: %w: %w", opSolveV, ground, ErrSingularSystem, err)
	}

	return fmt.Errorf("%s: ground %d: %w", opSolveV, ground, err)
}

// EdgeCurrents returns current[e] = g[e]·(V[i] − V[j]) for edge e = (i, j),
// i.e. g ⊙ (B·v). Positive current flows from the edge's From node to its To node.
//
// Errors: matrix.ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(E·N).
func EdgeCurrents(g []float64, b matrix.Matrix, v []float64) ([]float64, error) {
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("%s: %w", opCurrent, err)
	}
	if len(g) != b.Rows() {
		return nil, lenErrorf(opCurrent, "G", len(g), b.Rows())
	}
	if len(v) != b.Cols() {
		return nil, lenErrorf(opCurrent, "V", len(v), b.Cols())
	}

	drop, err := matrix.MatVec(b, v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCurrent, err)
	}
	for e := range drop {
		drop[e] *= g[e]
	}

	return drop, nil
}

// UpdateConductance applies one implicit Euler step of dG/dt = α·|I| − μ·G:
//
//	G'[e] = (G[e] + dt·alpha·|current[e]|) / (1 + dt·mu)
//
// Parameters are taken as given; the solver validates them once up front.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(E).
func UpdateConductance(g, current []float64, alpha, mu, dt float64) ([]float64, error) {
	if len(current) != len(g) {
		return nil, lenErrorf(opUpdate, "current", len(current), len(g))
	}

	denom := 1 + dt*mu
	gain := dt * alpha
	out := make([]float64, len(g))
	for e := range g {
		out[e] = (g[e] + gain*math.Abs(current[e])) / denom
	}

	return out, nil
}
