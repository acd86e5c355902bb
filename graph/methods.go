// This file implements the read-only accessors of Graph. None of them
// mutate the edge sequence; all are safe for concurrent use.
package graph

import "math/bits"

// EdgeCount returns the number of edges N.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Order returns n, the log2 of the edge count.
// Complexity: O(1).
func (g *Graph) Order() uint8 {
	return uint8(bits.TrailingZeros64(uint64(len(g.edges))))
}

// Edge returns the edge at position i in generation order.
// It panics when i is out of range, like any slice access.
// Complexity: O(1).
func (g *Graph) Edge(i int) Edge {
	return g.edges[i]
}

// Edges returns a copy of the edge sequence in generation order. The
// copy keeps the Graph immutable; callers may modify the result freely.
// Complexity: O(N) time and memory.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Equal reports structural equality over the edge sequences.
// Two graphs generated from equivalent PRNG states are Equal.
// Complexity: O(N) time, O(1) memory.
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if len(g.edges) != len(other.edges) {
		return false
	}

	for i, e := range g.edges {
		if other.edges[i] != e {
			return false
		}
	}

	return true
}
