// SPDX-License-Identifier: MIT

// Package kirchhoff is an adaptive-conductance Kirchhoff network solver:
// resistive networks whose edges thicken where current flows and thin out
// where it does not.
//
// What is in the box?
//
//	network/  - immutable topology (nodes + ordered edges), signed incidence
//	            matrix, connectivity diagnostics, canonical generators
//	            (Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse)
//	matrix/   - dense row-major matrix, Transpose/Mul/MatVec/ScaleRows,
//	            Induced submatrices, LU Solve backed by gonum
//	kcl/      - numerical kernels: NodalMatrix, SolveVoltages (grounded),
//	            EdgeCurrents, UpdateConductance (implicit Euler)
//	adaptive/ - the solve-then-update driver: Solver.Step, Solver.Run, Solve,
//	            functional options, per-step hook and logrus logging
//
// The model
//
// For conductances G (one per edge) and injected currents I (one per node),
// each step
//
//  1. solves Bᵀ·diag(G)·B·V = I with V[ground] = 0,
//  2. computes edge currents c = G ⊙ (B·V),
//  3. updates G ← (G + dt·α·|c|) / (1 + dt·μ).
//
// Quick start
//
//	net, _ := network.FromPairs(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
//	g, v, err := adaptive.Solve(net, []float64{1, 1, 1}, []float64{1, 0, -1}, 5)
//	// g ≈ [1.583630 1.583630 3.449000], v ≈ [0 -0.132733 -0.265466]
//
// Errors are sentinel values matched with errors.Is; a failed run never
// returns partial results.
package kirchhoff
