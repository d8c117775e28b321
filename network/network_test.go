// SPDX-License-Identifier: MIT

package network_test

import (
	"testing"

	"github.com/katalvlaran/kirchhoff/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangle is the three-node, three-edge network of the quickstart scenario.
func triangle(t *testing.T) *network.Network {
	t.Helper()
	net, err := network.FromPairs(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)

	return net
}

// TestIncidence_Path checks the canonical incidence of a two-edge path.
func TestIncidence_Path(t *testing.T) {
	net, err := network.FromPairs(3, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)

	b := net.Incidence()
	require.Equal(t, 2, b.Rows())
	require.Equal(t, 3, b.Cols())
	assert.Equal(t, [][]float64{{1, -1, 0}, {0, 1, -1}}, b.ToRows())
}

// TestIncidence_IsACopy ensures callers cannot corrupt the cached matrix.
func TestIncidence_IsACopy(t *testing.T) {
	net := triangle(t)

	b := net.Incidence()
	require.NoError(t, b.Set(0, 0, 42))

	again := net.Incidence()
	v, err := again.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

// TestNew_Validation covers every topology error in a table.
func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name     string
		numNodes int
		edges    []network.Edge
		opts     []network.Option
		want     error
	}{
		{name: "zero nodes", numNodes: 0, want: network.ErrTooFewNodes},
		{name: "negative nodes", numNodes: -3, want: network.ErrTooFewNodes},
		{name: "endpoint too large", numNodes: 2, edges: []network.Edge{{From: 0, To: 2}}, want: network.ErrNodeOutOfRange},
		{name: "negative endpoint", numNodes: 2, edges: []network.Edge{{From: -1, To: 1}}, want: network.ErrNodeOutOfRange},
		{
			name:     "loop rejected by option",
			numNodes: 2,
			edges:    []network.Edge{{From: 1, To: 1}},
			opts:     []network.Option{network.WithoutSelfLoops()},
			want:     network.ErrSelfLoop,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			net, err := network.New(tc.numNodes, tc.edges, tc.opts...)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, net)
		})
	}
}

// TestNew_SelfLoopDefault: loops are accepted and yield a zero incidence row.
func TestNew_SelfLoopDefault(t *testing.T) {
	net, err := network.New(2, []network.Edge{{From: 0, To: 1}, {From: 1, To: 1}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, -1}, {0, 0}}, net.Incidence().ToRows())
	assert.Equal(t, []int{1, 1}, net.Degree())
}

// TestNew_SingleNode: a one-node network without edges is legal.
func TestNew_SingleNode(t *testing.T) {
	net, err := network.New(1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, net.NumNodes())
	assert.Equal(t, 0, net.NumEdges())
	assert.Equal(t, 0, net.Incidence().Rows())
	assert.Equal(t, 1, net.Incidence().Cols())
}

// TestEdges_Immutable checks that both the input and the output slices are copies.
func TestEdges_Immutable(t *testing.T) {
	in := []network.Edge{{From: 0, To: 1}, {From: 1, To: 2}}
	net, err := network.New(3, in)
	require.NoError(t, err)

	in[0] = network.Edge{From: 2, To: 0}
	out := net.Edges()
	assert.Equal(t, network.Edge{From: 0, To: 1}, out[0])

	out[1] = network.Edge{From: 0, To: 0}
	e, err := net.Edge(1)
	require.NoError(t, err)
	assert.Equal(t, network.Edge{From: 1, To: 2}, e)

	_, err = net.Edge(2)
	require.ErrorIs(t, err, network.ErrEdgeOutOfRange)
}

// TestString renders a compact summary.
func TestString(t *testing.T) {
	assert.Equal(t, "network(N=3, E=3: 0-1 1-2 0-2)", triangle(t).String())

	lone, err := network.New(1, nil)
	require.NoError(t, err)
	assert.Equal(t, "network(N=1, E=0)", lone.String())
}
