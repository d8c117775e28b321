// SPDX-License-Identifier: MIT
// Package matrix: signed edge×node incidence builder (dense) with strict invariants.
//
// Layout:
//   - One ROW per edge, in the caller's edge order; one COLUMN per node.
//   - Row e for edge (from, to) holds +1 at column from and −1 at column to.
//   - A self-loop accumulates (+1 − 1) in the same cell ⇒ an all-zero row, so the
//     loop contributes nothing to Bᵀ·diag(G)·B.
//
// Complexity:
//   - BuildIncidence: O(E·N) zeroing + O(E) writes.

package matrix

import "fmt"

// fromMark is placed at the "from" column of an incidence row.
const fromMark = +1.0

// toMark is placed at the "to" column of an incidence row.
const toMark = -1.0

const opIncidence = "BuildIncidence"

// BuildIncidence constructs the E×N signed incidence matrix for the given
// endpoint pairs over numNodes columns.
//
// Implementation:
//   - Stage 1: validate numNodes ≥ 1 and every endpoint in [0, numNodes).
//   - Stage 2: allocate E×N (E may be zero) and accumulate marks row by row.
//
// Errors:
//   - ErrInvalidDimensions when numNodes < 1.
//   - ErrOutOfRange when an endpoint lies outside [0, numNodes); the matrix is
//     never partially written.
//
// Determinism:
//   - Row order equals endpoint order.
func BuildIncidence(numNodes int, endpoints [][2]int) (*Dense, error) {
	if numNodes < 1 {
		return nil, matrixErrorf(opIncidence, ErrInvalidDimensions)
	}
	for e, p := range endpoints {
		if p[0] < 0 || p[0] >= numNodes || p[1] < 0 || p[1] >= numNodes {
			return nil, matrixErrorf(opIncidence,
				fmt.Errorf("edge %d (%d,%d) with %d nodes: %w", e, p[0], p[1], numNodes, ErrOutOfRange))
		}
	}

	b, err := newDenseZeroOK(len(endpoints), numNodes)
	if err != nil {
		return nil, matrixErrorf(opIncidence, err)
	}
	var base int
	for e, p := range endpoints {
		base = e * numNodes
		b.data[base+p[0]] += fromMark
		b.data[base+p[1]] += toMark
	}

	return b, nil
}
