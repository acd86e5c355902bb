package graph

// EdgeIndex is a hash index over the (top, bottom) pairs of a Graph.
// It answers the same membership questions as the linear edge scan in
// O(1) per step, trading O(N) memory for O(L) cycle verification.
//
// The index holds the distinct pairs only; edge multiplicity is
// irrelevant to verification. An EdgeIndex is read-only after
// construction and safe for concurrent readers.
type EdgeIndex struct {
	pairs map[Edge]struct{}
}

// NewEdgeIndex builds the index for g.
// Complexity: O(N) time and memory.
func NewEdgeIndex(g *Graph) *EdgeIndex {
	pairs := make(map[Edge]struct{}, len(g.edges))
	for _, e := range g.edges {
		pairs[e] = struct{}{}
	}

	return &EdgeIndex{pairs: pairs}
}

// Has reports whether the graph contains at least one edge equal to e.
// Complexity: O(1).
func (ix *EdgeIndex) Has(e Edge) bool {
	_, ok := ix.pairs[e]

	return ok
}

// Verify is semantically identical to Graph.Verify but resolves each
// step with a hash lookup instead of an edge-list scan.
// Complexity: O(L) time, O(1) memory per call.
func (ix *EdgeIndex) Verify(cycle []uint32) bool {
	if len(cycle)%2 == 0 {
		return false
	}

	for i := 1; i < len(cycle); i++ {
		var step Edge
		if i%2 != 0 {
			step = Edge{Top: cycle[i-1], Bottom: cycle[i]}
		} else {
			step = Edge{Top: cycle[i], Bottom: cycle[i-1]}
		}

		if _, ok := ix.pairs[step]; !ok {
			return false
		}
	}

	return true
}

// VerifyStrict is semantically identical to Graph.VerifyStrict, using
// the index for the per-step lookups.
func (ix *EdgeIndex) VerifyStrict(cycle []uint32) bool {
	if len(cycle) < MinCycleLen {
		return false
	}
	if cycle[0] != cycle[len(cycle)-1] {
		return false
	}

	return ix.Verify(cycle)
}
