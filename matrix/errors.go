// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (optionally wrapped with an
// operation tag) and callers match them via errors.Is.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and grepping.
// Wrap at the outer boundary with fmt.Errorf("ctx: %w", ErrX).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// (public constructors) or negative (internal zero-size constructors).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or a vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned by Solve when the LU factorization has an exact
	// zero pivot or the solution is not finite. Ill-conditioning alone is not singular.
	ErrSingular = errors.New("matrix: singular matrix")
)
