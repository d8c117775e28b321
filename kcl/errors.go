// SPDX-License-Identifier: MIT

package kcl

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is returned when a vector length disagrees with
	// the incidence shape (len(G) != E, len(I) != N, len(V) != N).
	ErrDimensionMismatch = errors.New("kcl: dimension mismatch")

	// ErrGroundOutOfRange is returned when the ground index is outside [0, N).
	ErrGroundOutOfRange = errors.New("kcl: ground node out of range")

	// ErrSingularSystem is returned when the grounded nodal matrix cannot be
	// inverted: a node subset has no conducting path to ground.
	ErrSingularSystem = errors.New("kcl: singular nodal system")
)

// lenErrorf reports a vector length mismatch for op.
func lenErrorf(op, name string, got, want int) error {
	return fmt.Errorf("%s: len(%s)=%d, want %d: %w", op, name, got, want, ErrDimensionMismatch)
}
