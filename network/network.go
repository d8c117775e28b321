// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/katalvlaran/kirchhoff/matrix"
)

// New validates the topology and returns an immutable Network.
//
// Stage 1 (Validate): numNodes ≥ 1; every endpoint in [0, numNodes); loops per policy.
// Stage 2 (Prepare): copy the edge list so later caller mutations cannot leak in.
// Stage 3 (Execute): build adjacency and the dense incidence matrix once.
//
// Errors: ErrTooFewNodes, ErrNodeOutOfRange, ErrSelfLoop.
// Complexity: O(E·N) for the incidence allocation, O(E) otherwise.
func New(numNodes int, edges []Edge, opts ...Option) (*Network, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if numNodes < 1 {
		return nil, fmt.Errorf("New: %d nodes: %w", numNodes, ErrTooFewNodes)
	}
	for e, ed := range edges {
		if ed.From < 0 || ed.From >= numNodes || ed.To < 0 || ed.To >= numNodes {
			return nil, fmt.Errorf("New: edge %d (%d,%d) with %d nodes: %w",
				e, ed.From, ed.To, numNodes, ErrNodeOutOfRange)
		}
		if !o.allowLoops && ed.From == ed.To {
			return nil, fmt.Errorf("New: edge %d (%d,%d): %w", e, ed.From, ed.To, ErrSelfLoop)
		}
	}

	cp := make([]Edge, len(edges))
	copy(cp, edges)

	pairs := make([][2]int, len(cp))
	adj := make([][]int, numNodes)
	for e, ed := range cp {
		pairs[e] = [2]int{ed.From, ed.To}
		if ed.From == ed.To {
			continue
		}
		adj[ed.From] = append(adj[ed.From], ed.To)
		adj[ed.To] = append(adj[ed.To], ed.From)
	}

	inc, err := matrix.BuildIncidence(numNodes, pairs)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Network{
		numNodes:  numNodes,
		edges:     cp,
		adj:       adj,
		incidence: inc,
	}, nil
}

// FromPairs is New for edges given as (i, j) pairs.
func FromPairs(numNodes int, pairs [][2]int, opts ...Option) (*Network, error) {
	edges := make([]Edge, len(pairs))
	for e, p := range pairs {
		edges[e] = Edge{From: p[0], To: p[1]}
	}

	return New(numNodes, edges, opts...)
}

// NumNodes returns N.
func (n *Network) NumNodes() int { return n.numNodes }

// NumEdges returns E.
func (n *Network) NumEdges() int { return len(n.edges) }

// Edges returns a copy of the ordered edge list.
func (n *Network) Edges() []Edge {
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)

	return out
}

// Edge returns edge e, or ErrEdgeOutOfRange for a bad index.
func (n *Network) Edge(e int) (Edge, error) {
	if e < 0 || e >= len(n.edges) {
		return Edge{}, fmt.Errorf("Edge: index %d of %d: %w", e, len(n.edges), ErrEdgeOutOfRange)
	}

	return n.edges[e], nil
}

// Incidence returns a copy of the E×N signed incidence matrix B:
// row e for edge (i, j) holds +1 at column i and −1 at column j.
// The Network keeps its own copy, so callers may mutate the result freely.
//
// Complexity: O(E·N) copy.
func (n *Network) Incidence() *matrix.Dense {
	return n.incidence.Clone().(*matrix.Dense)
}

// String summarises the topology, e.g. "network(N=3, E=2: 0-1 1-2)".
func (n *Network) String() string {
	s := fmt.Sprintf("network(N=%d, E=%d", n.numNodes, len(n.edges))
	for e, ed := range n.edges {
		if e == 0 {
			s += ":"
		}
		s += fmt.Sprintf(" %d-%d", ed.From, ed.To)
	}

	return s + ")"
}
