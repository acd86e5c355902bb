package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krypt0nn/dodopow/graph"
)

// leafyEdges is an 8-edge fixture: the 5-cycle square core plus leaf
// edges (4,5), (6,7), (5,0) and a duplicate-direction edge (1,2) that
// only survives on one side.
func leafyEdges() []graph.Edge {
	return []graph.Edge{
		{Top: 0, Bottom: 1},
		{Top: 2, Bottom: 1},
		{Top: 2, Bottom: 3},
		{Top: 0, Bottom: 3},
		{Top: 4, Bottom: 5},
		{Top: 6, Bottom: 7},
		{Top: 1, Bottom: 2},
		{Top: 5, Bottom: 0},
	}
}

func mustGraph(t *testing.T, edges []graph.Edge) *graph.Graph {
	t.Helper()

	g, err := graph.FromEdges(edges)
	require.NoError(t, err)

	return g
}

func TestBuildAdjacency_InsertionOrderAndDedup(t *testing.T) {
	g := mustGraph(t, leafyEdges())
	adj := buildAdjacency(g)

	assert.Equal(t, []uint32{1, 3}, adj.top[0])
	assert.Equal(t, []uint32{2}, adj.top[1])
	assert.Equal(t, []uint32{1, 3}, adj.top[2])
	assert.Equal(t, []uint32{5}, adj.top[4])
	assert.Equal(t, []uint32{0}, adj.top[5])
	assert.Equal(t, []uint32{7}, adj.top[6])

	assert.Equal(t, []uint32{5}, adj.bottom[0])
	assert.Equal(t, []uint32{0, 2}, adj.bottom[1])
	assert.Equal(t, []uint32{1}, adj.bottom[2])
	assert.Equal(t, []uint32{2, 0}, adj.bottom[3])
	assert.Equal(t, []uint32{4}, adj.bottom[5])
	assert.Equal(t, []uint32{6}, adj.bottom[7])
}

func TestBuildAdjacency_DuplicateEdgesCollapse(t *testing.T) {
	g := mustGraph(t, []graph.Edge{
		{Top: 0, Bottom: 1},
		{Top: 0, Bottom: 1},
		{Top: 1, Bottom: 0},
		{Top: 1, Bottom: 1},
	})
	adj := buildAdjacency(g)

	assert.Equal(t, []uint32{1}, adj.top[0])
	assert.Equal(t, []uint32{0, 1}, adj.top[1])
	assert.Equal(t, []uint32{1}, adj.bottom[0])
	assert.Equal(t, []uint32{0, 1}, adj.bottom[1])
}

func TestPrune_DetachesLeaves(t *testing.T) {
	g := mustGraph(t, leafyEdges())
	adj := buildAdjacency(g)
	adj.prune()

	// Only the square core survives one pass per side.
	assert.Equal(t, []uint32{1, 3}, adj.top[0])
	assert.Equal(t, []uint32{1, 3}, adj.top[2])
	assert.Equal(t, []uint32{0, 2}, adj.bottom[1])
	assert.Equal(t, []uint32{2, 0}, adj.bottom[3])

	for _, v := range []int{1, 3, 4, 5, 6, 7} {
		assert.Emptyf(t, adj.top[v], "top[%d] should be pruned", v)
	}
	for _, v := range []int{0, 2, 4, 5, 6, 7} {
		assert.Emptyf(t, adj.bottom[v], "bottom[%d] should be pruned", v)
	}
}

// TestPrune_MutualInverse checks the structural invariant on a random
// graph: after pruning, b ∈ top[t] ⇔ t ∈ bottom[b].
func TestPrune_MutualInverse(t *testing.T) {
	edges := make([]graph.Edge, 0, 256)
	// Small deterministic LCG keeps the fixture self-contained.
	state := uint32(2463534242)
	next := func() uint32 {
		state = state*1664525 + 1013904223
		return state >> 24 & 255
	}
	for i := 0; i < 256; i++ {
		edges = append(edges, graph.Edge{Top: next(), Bottom: next()})
	}

	adj := buildAdjacency(mustGraph(t, edges))
	adj.prune()

	for tv, list := range adj.top {
		for _, bv := range list {
			assert.Truef(t, contains(adj.bottom[bv], uint32(tv)),
				"top[%d] lists %d but bottom[%d] misses %d", tv, bv, bv, tv)
		}
	}
	for bv, list := range adj.bottom {
		for _, tv := range list {
			assert.Truef(t, contains(adj.top[tv], uint32(bv)),
				"bottom[%d] lists %d but top[%d] misses %d", bv, tv, tv, bv)
		}
	}
}

func TestRemoveNeighbor(t *testing.T) {
	assert.Equal(t, []uint32{1, 3}, removeNeighbor([]uint32{1, 2, 3}, 2))
	assert.Equal(t, []uint32{1, 3}, removeNeighbor([]uint32{2, 1, 2, 3, 2}, 2))
	assert.Empty(t, removeNeighbor([]uint32{2}, 2))
	assert.Empty(t, removeNeighbor(nil, 2))
}
