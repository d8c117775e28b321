// SPDX-License-Identifier: MIT

// Package adaptive provides tunable options, error definitions and the
// per-step report for the adaptive-conductance solver.
package adaptive

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for solver configuration and runs.
var (
	// ErrInvalidParameter is returned by NewSolver when an Option received a
	// value outside its domain (alpha ≤ 0, mu < 0, dt ≤ 0, or a non-finite value).
	ErrInvalidParameter = errors.New("adaptive: invalid parameter")

	// ErrNegativeSteps is returned by Run when asked for fewer than zero steps.
	ErrNegativeSteps = errors.New("adaptive: steps must be >= 0")
)

// Default solver parameters.
const (
	// DefaultAlpha is the adaptation rate α.
	DefaultAlpha = 1.0
	// DefaultMu is the decay rate μ.
	DefaultMu = 0.1
	// DefaultDt is the implicit Euler time step.
	DefaultDt = 1.0
	// DefaultGround is the node pinned to 0 V.
	DefaultGround = 0
)

// StepError reports the 1-based iteration at which a run failed.
// errors.Is/As see through it to the underlying cause.
type StepError struct {
	Step int
	Err  error
}

// Error implements error.
func (e *StepError) Error() string {
	return fmt.Sprintf("adaptive: step %d: %v", e.Step, e.Err)
}

// Unwrap returns the underlying cause.
func (e *StepError) Unwrap() error { return e.Err }

// StepInfo is handed to the OnStep hook after every completed iteration.
// The slices are private copies; the hook may keep or modify them.
type StepInfo struct {
	// Step is the 1-based iteration number.
	Step int
	// G is the conductance vector after the update.
	G []float64
	// V is the voltage vector solved in this step (V[ground] == 0).
	V []float64
	// Currents are the edge currents that drove the update.
	Currents []float64
}

// Option configures a Solver via functional arguments.
// Invalid values are recorded and surfaced as ErrInvalidParameter by NewSolver.
type Option func(*Options)

// Options holds the effective solver parameters.
type Options struct {
	alpha  float64
	mu     float64
	dt     float64
	ground int

	ctx    context.Context
	logger logrus.FieldLogger
	onStep func(StepInfo) error

	// first invalid option, reported by NewSolver
	err error
}

// DefaultOptions returns α=1, μ=0.1, dt=1, ground=0, a background context,
// logrus.StandardLogger() and no step hook.
func DefaultOptions() Options {
	return Options{
		alpha:  DefaultAlpha,
		mu:     DefaultMu,
		dt:     DefaultDt,
		ground: DefaultGround,
		ctx:    context.Background(),
		logger: logrus.StandardLogger(),
	}
}

// fail records the first invalid option.
func (o *Options) fail(opt string, v float64) {
	if o.err == nil {
		o.err = fmt.Errorf("%s(%g): %w", opt, v, ErrInvalidParameter)
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// WithAlpha sets the adaptation rate α (> 0).
func WithAlpha(alpha float64) Option {
	return func(o *Options) {
		if !(alpha > 0) || !finite(alpha) {
			o.fail("WithAlpha", alpha)
			return
		}
		o.alpha = alpha
	}
}

// WithMu sets the decay rate μ (≥ 0). μ = 0 disables decay.
func WithMu(mu float64) Option {
	return func(o *Options) {
		if !(mu >= 0) || !finite(mu) {
			o.fail("WithMu", mu)
			return
		}
		o.mu = mu
	}
}

// WithDt sets the time step (> 0).
func WithDt(dt float64) Option {
	return func(o *Options) {
		if !(dt > 0) || !finite(dt) {
			o.fail("WithDt", dt)
			return
		}
		o.dt = dt
	}
}

// WithGround selects the reference node. The range is checked by NewSolver
// against the network size.
func WithGround(node int) Option {
	return func(o *Options) { o.ground = node }
}

// WithContext sets a context checked before every step of Run.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger routes step logging to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOnStep installs a hook called after every completed step of Run.
// A non-nil error from the hook aborts the run.
func WithOnStep(fn func(StepInfo) error) Option {
	return func(o *Options) { o.onStep = fn }
}
