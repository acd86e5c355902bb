// This file declares Edge, Graph, shared constants and sentinel errors,
// and the validated explicit constructor.
package graph

import "errors"

const (
	// MaxOrder is the largest admissible log2 edge count. With n = MaxOrder
	// the edge count is 2^32, which no longer fits a 32-bit index, so all
	// size arithmetic below is done in 64 bits.
	MaxOrder = 32

	// MinCycleLen is the shortest admissible cycle sequence length
	// (including the repeated origin vertex). Shorter closed walks cannot
	// alternate sides and return to a top vertex.
	MinCycleLen = 5
)

// Sentinel errors for graph construction and decoding.
var (
	// ErrNilSource indicates Generate was called without a PRNG source.
	ErrNilSource = errors.New("graph: nil PRNG source")

	// ErrOrderTooLarge indicates the requested order exceeds MaxOrder.
	ErrOrderTooLarge = errors.New("graph: order exceeds 32")

	// ErrEdgeCountNotPow2 indicates an explicit edge list whose length is
	// zero or not a power of two.
	ErrEdgeCountNotPow2 = errors.New("graph: edge count must be a non-zero power of two")

	// ErrEdgeOutOfRange indicates an edge endpoint ≥ the edge count.
	ErrEdgeOutOfRange = errors.New("graph: edge endpoint out of range")

	// ErrBadGraphData indicates encoded graph bytes of invalid length.
	ErrBadGraphData = errors.New("graph: encoded graph length must be a multiple of 8")

	// ErrBadCycleData indicates encoded cycle bytes of invalid length.
	ErrBadCycleData = errors.New("graph: encoded cycle length must be a multiple of 4")
)

// Edge is a directed pair of 32-bit vertex identifiers. Top indexes the
// source side, Bottom the destination side; the numeric ranges coincide
// but the sides are distinct node sets.
type Edge struct {
	// Top is the source-side vertex identifier.
	Top uint32

	// Bottom is the destination-side vertex identifier.
	Bottom uint32
}

// Graph is an immutable ordered sequence of edges. Equality is structural
// over the sequence. All methods are safe for concurrent readers.
type Graph struct {
	edges []Edge
}

// FromEdges builds a Graph from an explicit edge list. The list length
// must be a non-zero power of two and every endpoint must be smaller than
// the edge count. The input slice is copied; the Graph never aliases it.
//
// Complexity: O(N) time and memory.
func FromEdges(edges []Edge) (*Graph, error) {
	if err := validateEdges(edges); err != nil {
		return nil, err
	}

	owned := make([]Edge, len(edges))
	copy(owned, edges)

	return &Graph{edges: owned}, nil
}

// validateEdges checks the structural invariants shared by FromEdges and
// ParseGraph: power-of-two length and in-range endpoints.
func validateEdges(edges []Edge) error {
	count := uint64(len(edges))
	if count == 0 || count&(count-1) != 0 {
		return ErrEdgeCountNotPow2
	}

	for _, e := range edges {
		if uint64(e.Top) >= count || uint64(e.Bottom) >= count {
			return ErrEdgeOutOfRange
		}
	}

	return nil
}
