package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krypt0nn/dodopow/graph"
	"github.com/krypt0nn/dodopow/prng"
)

func TestMarshalBinary_KnownBytes(t *testing.T) {
	g := squareGraph(t)

	data, err := g.MarshalBinary()
	require.NoError(t, err)

	// Edges (0,1)(2,1)(2,3)(0,3) as little-endian 32-bit words.
	want := []byte{
		0, 0, 0, 0, 1, 0, 0, 0,
		2, 0, 0, 0, 1, 0, 0, 0,
		2, 0, 0, 0, 3, 0, 0, 0,
		0, 0, 0, 0, 3, 0, 0, 0,
	}
	assert.Equal(t, want, data)
}

func TestGraphCodec_RoundTrip(t *testing.T) {
	g, err := graph.Generate(prng.NewChaCha8(42), 8)
	require.NoError(t, err)

	data, err := g.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, g.EdgeCount()*8)

	back, err := graph.ParseGraph(data)
	require.NoError(t, err)
	assert.True(t, g.Equal(back))
}

func TestParseGraph_Errors(t *testing.T) {
	_, err := graph.ParseGraph([]byte{1, 2, 3})
	assert.ErrorIs(t, err, graph.ErrBadGraphData)

	// Three edges: length is a multiple of 8 but not a power-of-two count.
	_, err = graph.ParseGraph(make([]byte, 24))
	assert.ErrorIs(t, err, graph.ErrEdgeCountNotPow2)

	_, err = graph.ParseGraph(nil)
	assert.ErrorIs(t, err, graph.ErrEdgeCountNotPow2)

	// Two edges with an endpoint ≥ 2.
	bad := []byte{
		5, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 1, 0, 0, 0,
	}
	_, err = graph.ParseGraph(bad)
	assert.ErrorIs(t, err, graph.ErrEdgeOutOfRange)
}

func TestCycleCodec_RoundTrip(t *testing.T) {
	cycle := []uint32{1981, 19107, 3084, 24653, 6267, 46608, 34728, 11923, 1981}

	data := graph.MarshalCycle(cycle)
	require.Len(t, data, len(cycle)*4)

	back, err := graph.ParseCycle(data)
	require.NoError(t, err)
	assert.Equal(t, cycle, back)
}

func TestParseCycle_BadLength(t *testing.T) {
	_, err := graph.ParseCycle([]byte{1, 2, 3})
	assert.ErrorIs(t, err, graph.ErrBadCycleData)

	empty, err := graph.ParseCycle(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
