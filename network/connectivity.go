// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"sort"
)

// Degree returns, per node, the number of non-loop edges touching it.
// Each parallel edge counts separately.
// Complexity: O(N).
func (n *Network) Degree() []int {
	out := make([]int, n.numNodes)
	for u := range n.adj {
		out[u] = len(n.adj[u])
	}

	return out
}

// Reachable runs a breadth-first search from node `from` and reports, per
// node, whether it is connected to `from` through at least one edge path.
// Edge conductances are not consulted: a zero-conductance edge still counts
// as a connection here.
//
// Errors: ErrNodeOutOfRange.
// Complexity: O(N + E).
func (n *Network) Reachable(from int) ([]bool, error) {
	if from < 0 || from >= n.numNodes {
		return nil, fmt.Errorf("Reachable: node %d of %d: %w", from, n.numNodes, ErrNodeOutOfRange)
	}

	seen := make([]bool, n.numNodes)
	n.bfs(from, seen)

	return seen, nil
}

// Unreachable lists, in ascending order, the nodes with no edge path to `from`.
// Any such node makes the grounded nodal system singular when `from` is ground.
//
// Errors: ErrNodeOutOfRange.
func (n *Network) Unreachable(from int) ([]int, error) {
	seen, err := n.Reachable(from)
	if err != nil {
		return nil, err
	}
	var out []int
	for u, ok := range seen {
		if !ok {
			out = append(out, u)
		}
	}

	return out, nil
}

// Components partitions the nodes into connected components. Components are
// ordered by their smallest node; nodes inside a component are ascending.
// Complexity: O(N + E) traversal plus sorting inside each component.
func (n *Network) Components() [][]int {
	seen := make([]bool, n.numNodes)
	var out [][]int
	for u := 0; u < n.numNodes; u++ {
		if seen[u] {
			continue
		}
		comp := n.bfs(u, seen)
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out
}

// bfs marks every node reachable from start in visited and returns the newly
// visited nodes in visit order. Nodes already marked are neither entered nor
// returned.
func (n *Network) bfs(start int, visited []bool) []int {
	queue := []int{start}
	visited[start] = true
	for head := 0; head < len(queue); head++ {
		for _, v := range n.adj[queue[head]] {
			if visited[v] {
				continue
			}
			visited[v] = true
			queue = append(queue, v)
		}
	}

	return queue
}
