// SPDX-License-Identifier: MIT

// Package adaptive drives an adaptive-conductance Kirchhoff network: each
// step solves the grounded nodal system for the node voltages, derives the
// edge currents and relaxes every edge conductance toward the magnitude of
// its current with an implicit Euler update.
//
//	G_k ──SolveVoltages──▶ V_k ──EdgeCurrents──▶ I_k ──UpdateConductance──▶ G_{k+1}
//
// The injected currents, the topology and all parameters stay fixed for a
// run. Run performs exactly the requested number of steps; there is no
// convergence test. The computation is deterministic and keeps no state
// between calls.
//
// Usage
//
//	net, _ := network.FromPairs(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
//	g, v, err := adaptive.Solve(net, []float64{1, 1, 1}, []float64{1, 0, -1}, 5)
//
//	// or, with options and a reusable solver:
//	s, err := adaptive.NewSolver(net,
//	    adaptive.WithAlpha(2), adaptive.WithMu(0.05), adaptive.WithDt(0.5),
//	    adaptive.WithGround(2),
//	    adaptive.WithLogger(logger),
//	    adaptive.WithOnStep(func(info adaptive.StepInfo) error { return nil }),
//	)
//	g, v, err = s.Run(g0, iinj, 100)
//
// Errors
//
//   - ErrInvalidParameter, kcl.ErrGroundOutOfRange, network.ErrNilNetwork from NewSolver.
//   - ErrNegativeSteps and kcl.ErrDimensionMismatch from Run, before any numeric work.
//   - *StepError wrapping kcl.ErrSingularSystem, a context error or a hook
//     error when an iteration fails. A failed run returns no partial result.
//
// Logging
//
// Each completed step is logged at Debug level with the fields step, ground,
// max_current and max_conductance; a failed step is logged at Warn. The
// default logger is logrus.StandardLogger().
package adaptive
