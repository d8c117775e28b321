// SPDX-License-Identifier: MIT

// Package kcl implements the numerical kernels of an adaptive Kirchhoff
// network: the grounded nodal voltage solve and the implicit conductance
// update.
//
// What
//
//   - NodalMatrix:       L = Bᵀ·diag(G)·B, the weighted graph Laplacian.
//   - SolveVoltages:     solve L·V = I with node `ground` pinned to 0.
//   - EdgeCurrents:      current[e] = G[e]·(B·V)[e].
//   - UpdateConductance: G' = (G + dt·α·|current|) / (1 + dt·μ).
//
// Grounding
//
// L is singular for every connected network (its rows sum to zero), so the
// ground row and column are removed by index remapping and the remaining
// (N−1)×(N−1) system is solved by dense LU. The ground entry of V is then
// written as an exact 0.0; it is never a result of the solve.
//
// Singular systems
//
// A node with no conducting path to ground leaves the reduced matrix
// singular. SolveVoltages reports this as ErrSingularSystem (wrapping
// matrix.ErrSingular) and never returns NaN or Inf voltages.
//
// Implicit Euler
//
// UpdateConductance is the closed-form implicit Euler step of
//
//	dG/dt = α·|I| − μ·G
//
// and is stable for every dt > 0. Results are not clamped.
//
// All kernels are pure: inputs are never mutated, results are fresh slices.
package kcl
