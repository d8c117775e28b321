// SPDX-License-Identifier: MIT

package adaptive

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/kirchhoff/kcl"
	"github.com/katalvlaran/kirchhoff/matrix"
	"github.com/katalvlaran/kirchhoff/network"
)

// Solver runs the solve-then-update iteration on a fixed network.
//
// A Solver holds only immutable state (the network, its incidence matrix and
// the parameters), so one Solver may serve concurrent Step/Run calls.
type Solver struct {
	net  *network.Network
	b    *matrix.Dense
	opts Options
}

// NewSolver validates the options against net and caches its incidence matrix.
//
// Errors: network.ErrNilNetwork, ErrInvalidParameter, kcl.ErrGroundOutOfRange.
func NewSolver(net *network.Network, opts ...Option) (*Solver, error) {
	if net == nil {
		return nil, fmt.Errorf("NewSolver: %w", network.ErrNilNetwork)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("NewSolver: %w", o.err)
	}
	if o.ground < 0 || o.ground >= net.NumNodes() {
		return nil, fmt.Errorf("NewSolver: ground %d with %d nodes: %w",
			o.ground, net.NumNodes(), kcl.ErrGroundOutOfRange)
	}

	return &Solver{net: net, b: net.Incidence(), opts: o}, nil
}

// Network returns the topology the solver was built for.
func (s *Solver) Network() *network.Network { return s.net }

// Alpha returns the adaptation rate.
func (s *Solver) Alpha() float64 { return s.opts.alpha }

// Mu returns the decay rate.
func (s *Solver) Mu() float64 { return s.opts.mu }

// Dt returns the time step.
func (s *Solver) Dt() float64 { return s.opts.dt }

// Ground returns the reference node index.
func (s *Solver) Ground() int { return s.opts.ground }

// Step performs one Solve → Update cycle and returns the next conductances
// and the voltages solved under g. Neither input is modified.
//
// Errors: kcl.ErrDimensionMismatch, kcl.ErrSingularSystem.
func (s *Solver) Step(g, iinj []float64) (gNext, v []float64, err error) {
	if err = s.checkDims(g, iinj); err != nil {
		return nil, nil, fmt.Errorf("Step: %w", err)
	}
	gNext, v, _, err = s.step(g, iinj)
	if err != nil {
		return nil, nil, fmt.Errorf("Step: %w", s.explain(err))
	}

	return gNext, v, nil
}

// Run applies exactly `steps` iterations starting from g0 and returns the
// final conductances and the voltages of the last iteration. There is no
// convergence test. steps == 0 returns a copy of g0 and an all-zero V.
//
// Implementation:
//   - Stage 1: reject steps < 0 and length mismatches before any numeric work.
//   - Stage 2: per step: check ctx, Solve → currents → Update, log, call OnStep.
//   - Stage 3: any failure is wrapped in *StepError; no partial result is returned.
//
// Errors: ErrNegativeSteps, kcl.ErrDimensionMismatch, and (inside *StepError)
// kcl.ErrSingularSystem, context errors, or the OnStep hook's error.
func (s *Solver) Run(g0, iinj []float64, steps int) (g, v []float64, err error) {
	if steps < 0 {
		return nil, nil, fmt.Errorf("Run: %d: %w", steps, ErrNegativeSteps)
	}
	if err = s.checkDims(g0, iinj); err != nil {
		return nil, nil, fmt.Errorf("Run: %w", err)
	}

	g = make([]float64, len(g0))
	copy(g, g0)
	v = make([]float64, s.net.NumNodes())

	var (
		next, cur []float64
		log       = s.opts.logger.WithFields(logrus.Fields{
			"at":     "(Solver) Run",
			"ground": s.opts.ground,
			"steps":  steps,
		})
	)
	for k := 1; k <= steps; k++ {
		if err = s.opts.ctx.Err(); err != nil {
			return nil, nil, &StepError{Step: k, Err: err}
		}

		next, v, cur, err = s.step(g, iinj)
		if err != nil {
			err = s.explain(err)
			log.WithField("step", k).WithError(err).Warn("adaptive step failed")

			return nil, nil, &StepError{Step: k, Err: err}
		}
		g = next

		log.WithFields(logrus.Fields{
			"step":            k,
			"max_current":     maxAbs(cur),
			"max_conductance": maxAbs(g),
		}).Debug("adaptive step")

		if s.opts.onStep != nil {
			info := StepInfo{Step: k, G: clone(g), V: clone(v), Currents: cur}
			if err = s.opts.onStep(info); err != nil {
				return nil, nil, &StepError{Step: k, Err: fmt.Errorf("OnStep: %w", err)}
			}
		}
	}

	return g, v, nil
}

// Solve builds a Solver for net and runs it: the one-call entry point.
// Defaults: α=1, μ=0.1, dt=1, ground=0.
func Solve(net *network.Network, g0, iinj []float64, steps int, opts ...Option) (g, v []float64, err error) {
	s, err := NewSolver(net, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("Solve: %w", err)
	}

	return s.Run(g0, iinj, steps)
}

// step is one unchecked cycle: V from g, currents from V, next g from currents.
func (s *Solver) step(g, iinj []float64) (next, v, cur []float64, err error) {
	v, err = kcl.SolveVoltages(g, s.b, iinj, s.opts.ground)
	if err != nil {
		return nil, nil, nil, err
	}
	cur, err = kcl.EdgeCurrents(g, s.b, v)
	if err != nil {
		return nil, nil, nil, err
	}
	next, err = kcl.UpdateConductance(g, cur, s.opts.alpha, s.opts.mu, s.opts.dt)
	if err != nil {
		return nil, nil, nil, err
	}

	return next, v, cur, nil
}

// checkDims enforces len(g) == E and len(iinj) == N.
func (s *Solver) checkDims(g, iinj []float64) error {
	if len(g) != s.net.NumEdges() {
		return fmt.Errorf("len(G)=%d, want %d edges: %w", len(g), s.net.NumEdges(), kcl.ErrDimensionMismatch)
	}
	if len(iinj) != s.net.NumNodes() {
		return fmt.Errorf("len(I)=%d, want %d nodes: %w", len(iinj), s.net.NumNodes(), kcl.ErrDimensionMismatch)
	}

	return nil
}

// explain names the nodes cut off from ground when the system is singular.
// Singularity from zero conductances on a connected topology is left as is.
func (s *Solver) explain(err error) error {
	if !errors.Is(err, kcl.ErrSingularSystem) {
		return err
	}
	cut, rerr := s.net.Unreachable(s.opts.ground)
	if rerr != nil || len(cut) == 0 {
		return err
	}

	return fmt.Errorf("%w (nodes %v have no edge path to ground %d)", err, cut, s.opts.ground)
}

func maxAbs(x []float64) float64 {
	var m float64
	for _, v := range x {
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	}

	return m
}

func clone(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)

	return out
}
