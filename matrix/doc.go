// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra primitives used by the
// Kirchhoff network solver.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-safe At/Set, Clone and
//     Induced (copy of a submatrix selected by explicit index lists).
//   - Kernels over any Matrix: Transpose, Mul, MatVec and ScaleRows
//     (diag(w)·A without materializing the diagonal).
//   - BuildIncidence, the signed edge×node incidence builder.
//   - Solve, a direct dense LU solve backed by gonum.org/v1/gonum/mat with
//     non-invertible systems reported as ErrSingular (ill-conditioned ones
//     are still solved).
//
// All kernels validate shapes up front, return sentinel errors wrapped with
// an operation tag, and never mutate their inputs. Loop orders are fixed, so
// results are bit-for-bit reproducible for identical inputs.
//
// Matrices here are dense: O(r·c) memory. They are intended for small and
// medium networks where that cost is acceptable.
package matrix
