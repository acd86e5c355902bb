package graph

import "github.com/krypt0nn/dodopow/prng"

// Generate builds a Graph of N = 2^n edges by drawing two 32-bit words
// per edge from src: the first becomes the top endpoint, the second the
// bottom endpoint, each reduced modulo N. Because N is a power of two the
// reduction is an exact bit-mask, so no modulo bias is introduced; the
// mask is computed in 64 bits so that n = MaxOrder (N = 2^32, identity
// reduction) is handled without overflow.
//
// The edge sequence is a pure function of the source state at entry: two
// graphs generated from equal states are Equal.
//
// Complexity: O(N) time, O(N) memory.
//
// Errors:
//   - ErrNilSource      if src is nil.
//   - ErrOrderTooLarge  if n > MaxOrder.
func Generate(src prng.Source, n uint8) (*Graph, error) {
	// 1. Validate inputs before consuming any words.
	if src == nil {
		return nil, ErrNilSource
	}
	if n > MaxOrder {
		return nil, ErrOrderTooLarge
	}

	// 2. Compute the edge count and reduction mask in 64-bit width.
	edgeCount := uint64(1) << n
	mask := uint32(edgeCount - 1)

	// 3. Draw edges in order: top word first, then bottom word.
	//    Duplicates and self-loops are kept; they are part of the model.
	edges := make([]Edge, edgeCount)
	for i := range edges {
		top := src.Uint32() & mask
		bottom := src.Uint32() & mask
		edges[i] = Edge{Top: top, Bottom: bottom}
	}

	return &Graph{edges: edges}, nil
}
