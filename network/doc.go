// SPDX-License-Identifier: MIT

// Package network holds the topology of a resistive Kirchhoff network: a node
// count and an ordered list of two-terminal edges.
//
// A Network is validated once at construction and never changes afterwards.
// It derives the E×N signed incidence matrix B,
//
//	B[e][i] = +1, B[e][j] = −1 for edge e = (i, j), 0 elsewhere,
//
// which maps node voltages to edge voltage drops (B·V) and edge currents to
// net node outflow (Bᵀ·I). Edge order is the row order of B and therefore the
// index order of every per-edge vector the solver handles.
//
// Connectivity helpers (Reachable, Unreachable, Components) explain singular
// nodal systems: a node with no edge path to ground leaves the grounded
// Laplacian rank-deficient.
//
// Quick ASCII example (the triangle used throughout the tests):
//
//	  0
//	 / \
//	1───2
//
//	net, err := network.FromPairs(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
package network
