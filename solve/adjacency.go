package solve

import "github.com/krypt0nn/dodopow/graph"

// adjacency holds the solver's two neighbor maps, indexed by vertex
// identifier: top[v] lists the distinct bottom endpoints reachable from
// top vertex v, bottom[v] the distinct top endpoints leading into bottom
// vertex v. The maps are mutual inverses at all times.
//
// An adjacency is built per Solve call and discarded with it.
type adjacency struct {
	top    [][]uint32
	bottom [][]uint32
}

// buildAdjacency scans the edge list in generation order and records
// each endpoint once per neighbor list. Insertion order is preserved;
// it determines DFS traversal order and therefore which cycle of equal
// length is found first.
//
// Complexity: O(N·d) time where d bounds the duplicate scan, O(N) memory.
func buildAdjacency(g *graph.Graph) *adjacency {
	count := g.EdgeCount()
	adj := &adjacency{
		top:    make([][]uint32, count),
		bottom: make([][]uint32, count),
	}

	for i := 0; i < count; i++ {
		e := g.Edge(i)
		if !contains(adj.top[e.Top], e.Bottom) {
			adj.top[e.Top] = append(adj.top[e.Top], e.Bottom)
		}
		if !contains(adj.bottom[e.Bottom], e.Top) {
			adj.bottom[e.Bottom] = append(adj.bottom[e.Bottom], e.Top)
		}
	}

	return adj
}

// prune detaches every vertex with fewer than two neighbors on its own
// side: such a vertex cannot lie on an odd cycle returning to itself.
// Each side is processed exactly once, top first, then bottom. One pass
// removes the dominant share of leaves; iterating to a fixed point would
// change which cycles are enumerated first.
//
// After prune every bottom neighbor list has length 0 or ≥ 2 (the bottom
// pass ran last; its removals may leave some top lists at length 1), and
// the two maps remain mutual inverses.
func (a *adjacency) prune() {
	// 1. Top pass: clear degree-0/1 top vertices and their mirror entries.
	for t := range a.top {
		if len(a.top[t]) < 2 {
			for _, b := range a.top[t] {
				a.bottom[b] = removeNeighbor(a.bottom[b], uint32(t))
			}
			a.top[t] = nil
		}
	}

	// 2. Bottom pass, symmetric.
	for b := range a.bottom {
		if len(a.bottom[b]) < 2 {
			for _, t := range a.bottom[b] {
				a.top[t] = removeNeighbor(a.top[t], uint32(b))
			}
			a.bottom[b] = nil
		}
	}
}

// contains reports whether list already holds v. Neighbor lists on
// random graphs are short, so a linear scan beats map overhead here.
func contains(list []uint32, v uint32) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}

	return false
}

// removeNeighbor filters v out of list in place, preserving the order of
// the remaining entries.
func removeNeighbor(list []uint32, v uint32) []uint32 {
	kept := list[:0]
	for _, x := range list {
		if x != v {
			kept = append(kept, x)
		}
	}

	return kept
}
