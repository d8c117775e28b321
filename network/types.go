// SPDX-License-Identifier: MIT

// Edge and Network types, construction options and the sentinel errors for
// topology validation.
//
// Errors:
//
//	ErrTooFewNodes    - numNodes < 1.
//	ErrNodeOutOfRange - an edge endpoint lies outside [0, numNodes).
//	ErrEdgeOutOfRange - an edge index outside [0, numEdges).
//	ErrSelfLoop       - an edge (i, i) while WithoutSelfLoops() is in effect.
//	ErrNilNetwork     - a nil *Network was handed to a consumer.
//	ErrInvalidProbability, ErrNeedRandSource - RandomSparse parameter errors.

package network

import (
	"errors"

	"github.com/katalvlaran/kirchhoff/matrix"
)

// Sentinel errors for network construction and queries.
var (
	// ErrTooFewNodes indicates a network with fewer than one node.
	ErrTooFewNodes = errors.New("network: node count must be >= 1")

	// ErrNodeOutOfRange indicates an edge endpoint (or query) outside [0, numNodes).
	ErrNodeOutOfRange = errors.New("network: node index out of range")

	// ErrEdgeOutOfRange indicates an edge index outside [0, numEdges).
	ErrEdgeOutOfRange = errors.New("network: edge index out of range")

	// ErrSelfLoop indicates a self-loop was supplied while loops are disallowed.
	ErrSelfLoop = errors.New("network: self-loop not allowed")

	// ErrNilNetwork indicates a nil *Network was passed where one is required.
	ErrNilNetwork = errors.New("network: network is nil")

	// ErrInvalidProbability indicates an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("network: probability out of range")

	// ErrNeedRandSource indicates a stochastic generator was called without an RNG.
	ErrNeedRandSource = errors.New("network: rng is required")
)

// Edge is a resistive connection between two nodes.
//
// The orientation From→To only fixes the sign convention of the incidence row
// (+1 at From, −1 at To) and hence the sign of the edge current; the element
// itself is undirected.
type Edge struct {
	// From is the node carrying the +1 incidence mark.
	From int

	// To is the node carrying the −1 incidence mark.
	To int
}

// Network is an immutable node count plus an ordered edge list.
//
// Edge order is significant: it is the row order of the incidence matrix and
// the index order of every per-edge vector (conductances, currents).
// A Network is safe for concurrent use by multiple goroutines.
type Network struct {
	numNodes  int
	edges     []Edge
	adj       [][]int       // adj[u] = neighbour nodes of u, in edge order (loops excluded)
	incidence *matrix.Dense // built once in New; handed out as clones
}

// Option configures Network construction.
type Option func(*Options)

// Options holds the effective construction policy.
type Options struct {
	allowLoops bool
}

// DefaultAllowLoops keeps self-loops: they produce an all-zero incidence row
// and contribute nothing to the nodal matrix.
const DefaultAllowLoops = true

// DefaultOptions returns the construction policy used when no Option is given.
func DefaultOptions() Options {
	return Options{allowLoops: DefaultAllowLoops}
}

// WithoutSelfLoops rejects edges (i, i) with ErrSelfLoop.
func WithoutSelfLoops() Option {
	return func(o *Options) { o.allowLoops = false }
}

// WithSelfLoops explicitly accepts self-loops (the default).
func WithSelfLoops() Option {
	return func(o *Options) { o.allowLoops = true }
}
