// SPDX-License-Identifier: MIT

package network_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/kirchhoff/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerators_Shape(t *testing.T) {
	tests := []struct {
		name         string
		build        func() (*network.Network, error)
		nodes, edges int
	}{
		{name: "path", build: func() (*network.Network, error) { return network.Path(5) }, nodes: 5, edges: 4},
		{name: "cycle", build: func() (*network.Network, error) { return network.Cycle(5) }, nodes: 5, edges: 5},
		{name: "star", build: func() (*network.Network, error) { return network.Star(5) }, nodes: 5, edges: 4},
		{name: "wheel", build: func() (*network.Network, error) { return network.Wheel(5) }, nodes: 5, edges: 8},
		{name: "complete", build: func() (*network.Network, error) { return network.Complete(5) }, nodes: 5, edges: 10},
		{name: "grid", build: func() (*network.Network, error) { return network.Grid(3, 4) }, nodes: 12, edges: 17},
		{name: "grid 1x1", build: func() (*network.Network, error) { return network.Grid(1, 1) }, nodes: 1, edges: 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			net, err := tc.build()
			require.NoError(t, err)
			assert.Equal(t, tc.nodes, net.NumNodes())
			assert.Equal(t, tc.edges, net.NumEdges())
			assert.Len(t, net.Components(), 1)
		})
	}
}

func TestGenerators_EdgeOrder(t *testing.T) {
	w, err := network.Wheel(4)
	require.NoError(t, err)
	assert.Equal(t, "network(N=4, E=6: 0-1 1-2 2-0 3-0 3-1 3-2)", w.String())

	g, err := network.Grid(2, 2)
	require.NoError(t, err)
	assert.Equal(t, "network(N=4, E=4: 0-1 0-2 1-3 2-3)", g.String())
}

func TestGenerators_TooSmall(t *testing.T) {
	for name, build := range map[string]func() (*network.Network, error){
		"path":     func() (*network.Network, error) { return network.Path(1) },
		"cycle":    func() (*network.Network, error) { return network.Cycle(2) },
		"star":     func() (*network.Network, error) { return network.Star(1) },
		"wheel":    func() (*network.Network, error) { return network.Wheel(3) },
		"complete": func() (*network.Network, error) { return network.Complete(0) },
		"grid":     func() (*network.Network, error) { return network.Grid(0, 3) },
		"random":   func() (*network.Network, error) { return network.RandomSparse(0, 0.5, nil) },
	} {
		_, err := build()
		assert.ErrorIs(t, err, network.ErrTooFewNodes, name)
	}
}

func TestRandomSparse(t *testing.T) {
	_, err := network.RandomSparse(4, 1.5, nil)
	require.ErrorIs(t, err, network.ErrInvalidProbability)
	_, err = network.RandomSparse(4, 0.5, nil)
	require.ErrorIs(t, err, network.ErrNeedRandSource)

	full, err := network.RandomSparse(4, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, full.NumEdges())

	empty, err := network.RandomSparse(4, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.NumEdges())
	assert.Len(t, empty.Components(), 4)

	a, err := network.RandomSparse(20, 0.3, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := network.RandomSparse(20, 0.3, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges(), "same seed, same network")
}
