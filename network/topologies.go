// SPDX-License-Identifier: MIT

// Canonical topologies for tests, benchmarks and examples.
//
// Every generator numbers nodes 0..n-1 and emits edges in a fixed, documented
// order, so the edge index (and with it every per-edge vector) is stable.
//
//	Path(n)          0-1, 1-2, ..., (n-2)-(n-1)
//	Cycle(n)         Path(n) then (n-1)-0
//	Star(n)          hub 0 to each leaf 1..n-1
//	Wheel(n)         Cycle(n-1) on 0..n-2, then spokes (n-1)-i for i ascending
//	Complete(n)      every pair (i, j), i < j, i ascending then j ascending
//	Grid(rows, cols) node r*cols+c; per cell right neighbour then bottom neighbour
//	RandomSparse     each pair (i, j), i < j, kept with probability p

package network

import (
	"fmt"
	"math/rand"
)

// Minimum sizes per generator.
const (
	MinPathNodes  = 2
	MinCycleNodes = 3
	MinStarNodes  = 2
	MinWheelNodes = 4
	MinGridDim    = 1
)

const (
	probMin = 0.0
	probMax = 1.0
)

// tooFew reports a generator size below its minimum.
func tooFew(method string, n, least int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, least, ErrTooFewNodes)
}

// Path returns the chain 0-1-...-(n-1).
func Path(n int) (*Network, error) {
	if n < MinPathNodes {
		return nil, tooFew("Path", n, MinPathNodes)
	}
	pairs := make([][2]int, 0, n-1)
	for i := 0; i+1 < n; i++ {
		pairs = append(pairs, [2]int{i, i + 1})
	}

	return FromPairs(n, pairs)
}

// Cycle returns the ring 0-1-...-(n-1)-0.
func Cycle(n int) (*Network, error) {
	if n < MinCycleNodes {
		return nil, tooFew("Cycle", n, MinCycleNodes)
	}

	return FromPairs(n, cyclePairs(n))
}

func cyclePairs(n int) [][2]int {
	pairs := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, [2]int{i, (i + 1) % n})
	}

	return pairs
}

// Star returns hub 0 joined to every other node.
func Star(n int) (*Network, error) {
	if n < MinStarNodes {
		return nil, tooFew("Star", n, MinStarNodes)
	}
	pairs := make([][2]int, 0, n-1)
	for i := 1; i < n; i++ {
		pairs = append(pairs, [2]int{0, i})
	}

	return FromPairs(n, pairs)
}

// Wheel returns a ring on nodes 0..n-2 plus hub n-1 joined to every ring node.
func Wheel(n int) (*Network, error) {
	if n < MinWheelNodes {
		return nil, tooFew("Wheel", n, MinWheelNodes)
	}
	hub := n - 1
	pairs := cyclePairs(hub)
	for i := 0; i < hub; i++ {
		pairs = append(pairs, [2]int{hub, i})
	}

	return FromPairs(n, pairs)
}

// Complete returns Kₙ.
func Complete(n int) (*Network, error) {
	if n < 1 {
		return nil, tooFew("Complete", n, 1)
	}
	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}

	return FromPairs(n, pairs)
}

// Grid returns a rows×cols orthogonal lattice with 4-neighbourhood.
// Node (r, c) has index r*cols + c.
func Grid(rows, cols int) (*Network, error) {
	if rows < MinGridDim || cols < MinGridDim {
		return nil, fmt.Errorf("Grid: rows=%d, cols=%d (each must be >= %d): %w",
			rows, cols, MinGridDim, ErrTooFewNodes)
	}
	pairs := make([][2]int, 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			if c+1 < cols {
				pairs = append(pairs, [2]int{u, u + 1})
			}
			if r+1 < rows {
				pairs = append(pairs, [2]int{u, u + cols})
			}
		}
	}

	return FromPairs(rows*cols, pairs)
}

// RandomSparse samples an Erdős–Rényi network: each pair (i, j), i < j, is an
// edge with probability p. rng may be nil only for p ∈ {0, 1}.
// Outcomes are deterministic for a fixed seed because the trial order is fixed.
func RandomSparse(n int, p float64, rng *rand.Rand) (*Network, error) {
	if n < 1 {
		return nil, tooFew("RandomSparse", n, 1)
	}
	if !(p >= probMin && p <= probMax) {
		return nil, fmt.Errorf("RandomSparse: p=%g not in [%.1f,%.1f]: %w", p, probMin, probMax, ErrInvalidProbability)
	}
	if rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
	}

	var pairs [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			switch {
			case p == probMax:
				pairs = append(pairs, [2]int{i, j})
			case p == probMin:
			case rng.Float64() < p:
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	return FromPairs(n, pairs)
}
