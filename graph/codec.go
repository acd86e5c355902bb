// This file implements the canonical binary representation: the edge
// sequence in generation order as 2N little-endian 32-bit words, and
// cycles as plain sequences of little-endian 32-bit vertex identifiers.
package graph

import "encoding/binary"

const (
	// wordSize is the wire size of one vertex identifier.
	wordSize = 4

	// edgeWireSize is the wire size of one edge (top word, bottom word).
	edgeWireSize = 2 * wordSize
)

// MarshalBinary encodes the graph as 2N little-endian 32-bit words:
// top then bottom for each edge, in generation order.
// It implements encoding.BinaryMarshaler and never fails.
// Complexity: O(N) time and memory.
func (g *Graph) MarshalBinary() ([]byte, error) {
	buf := make([]byte, len(g.edges)*edgeWireSize)
	for i, e := range g.edges {
		binary.LittleEndian.PutUint32(buf[i*edgeWireSize:], e.Top)
		binary.LittleEndian.PutUint32(buf[i*edgeWireSize+wordSize:], e.Bottom)
	}

	return buf, nil
}

// ParseGraph decodes the MarshalBinary representation. The byte length
// must be a multiple of the edge wire size, and the decoded edge list
// must satisfy the FromEdges invariants (power-of-two count, in-range
// endpoints).
//
// Complexity: O(N) time and memory.
//
// Errors:
//   - ErrBadGraphData      if len(data) is not a multiple of 8.
//   - ErrEdgeCountNotPow2  if the decoded count is zero or not 2^n.
//   - ErrEdgeOutOfRange    if a decoded endpoint is ≥ the edge count.
func ParseGraph(data []byte) (*Graph, error) {
	// 1. Structural length check before any allocation.
	if len(data)%edgeWireSize != 0 {
		return nil, ErrBadGraphData
	}

	// 2. Decode edges in order.
	edges := make([]Edge, len(data)/edgeWireSize)
	for i := range edges {
		edges[i] = Edge{
			Top:    binary.LittleEndian.Uint32(data[i*edgeWireSize:]),
			Bottom: binary.LittleEndian.Uint32(data[i*edgeWireSize+wordSize:]),
		}
	}

	// 3. Validate the model invariants; the slice is freshly allocated,
	//    so no defensive copy is needed.
	if err := validateEdges(edges); err != nil {
		return nil, err
	}

	return &Graph{edges: edges}, nil
}

// MarshalCycle encodes a cycle as little-endian 32-bit vertex words in
// sequence order. A nil or empty cycle encodes to an empty slice.
// Complexity: O(L).
func MarshalCycle(cycle []uint32) []byte {
	buf := make([]byte, len(cycle)*wordSize)
	for i, v := range cycle {
		binary.LittleEndian.PutUint32(buf[i*wordSize:], v)
	}

	return buf
}

// ParseCycle decodes a MarshalCycle representation. No semantic checks
// are applied beyond the length; validity against a graph is the
// verifier's job.
//
// Errors:
//   - ErrBadCycleData  if len(data) is not a multiple of 4.
func ParseCycle(data []byte) ([]uint32, error) {
	if len(data)%wordSize != 0 {
		return nil, ErrBadCycleData
	}

	cycle := make([]uint32, len(data)/wordSize)
	for i := range cycle {
		cycle[i] = binary.LittleEndian.Uint32(data[i*wordSize:])
	}

	return cycle, nil
}
