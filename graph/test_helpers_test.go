package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/krypt0nn/dodopow/graph"
)

// squareEdges is a 4-edge fixture containing exactly one odd cycle of
// sequence length 5 through top vertex 0:
//
//	T0      T2
//	| \    / |
//	B1  \ /  B3
//	 \   X   /
//	  \ / \ /
//	  (0,1)(2,1)(2,3)(0,3)
//
// Valid walks: [0 1 2 3 0] and its mirror [0 3 2 1 0].
func squareEdges() []graph.Edge {
	return []graph.Edge{
		{Top: 0, Bottom: 1},
		{Top: 2, Bottom: 1},
		{Top: 2, Bottom: 3},
		{Top: 0, Bottom: 3},
	}
}

// squareGraph builds the fixture graph, failing the test on error.
func squareGraph(t *testing.T) *graph.Graph {
	t.Helper()

	g, err := graph.FromEdges(squareEdges())
	require.NoError(t, err)

	return g
}
