// Package graph defines the bipartite random-graph data model of the
// proof-of-work scheme: edge storage, deterministic generation from a
// PRNG word stream, cycle verification, and the canonical binary codec.
//
// What:
//
//   - Edge: a directed pair of 32-bit vertex identifiers (Top, Bottom).
//     The same numeric identifier names a distinct node on each side.
//   - Graph: an immutable ordered sequence of exactly N = 2^n edges,
//     0 ≤ n ≤ 32, with endpoints drawn uniformly from {0 … N−1}.
//     Duplicate edges and self-loops are allowed by construction.
//   - Generate: builds a Graph from a prng.Source; a pure function of
//     the source state, so equal seeds yield equal graphs.
//   - Verify / VerifyStrict: check that a vertex sequence walks legal
//     edges with strictly alternating top/bottom orientation.
//   - EdgeIndex: a hash index over (top, bottom) pairs for O(L)
//     verification instead of the O(L·N) reference scan.
//   - MarshalBinary / ParseGraph and MarshalCycle / ParseCycle: the
//     canonical little-endian 32-bit word encoding.
//
// Why:
//   - The graph is the shared ground truth between prover and verifier:
//     both rebuild it independently from a seed and must agree bit-for-bit.
//   - Verification must be cheap relative to solving; the solver does the
//     proof-of-work, the verifier only replays edge membership checks.
//
// Key Types & Constants:
//
//   - MaxOrder (32): largest admissible log2 edge count.
//   - MinCycleLen (5): shortest admissible cycle sequence.
//
// Complexity:
//
//   - Generate:      Time O(N), Memory O(N)
//   - Verify:        Time O(L·N), Memory O(1)   (L = cycle length)
//   - EdgeIndex:     Build O(N), Verify O(L), Memory O(N)
//   - Codec:         Time O(N), Memory O(N)
//
// Errors:
//
//   - ErrNilSource         if Generate receives a nil PRNG source.
//   - ErrOrderTooLarge     if n exceeds MaxOrder.
//   - ErrEdgeCountNotPow2  if an explicit edge list is not a power of two long.
//   - ErrEdgeOutOfRange    if an endpoint is ≥ the edge count.
//   - ErrBadGraphData      if encoded graph bytes have an invalid length.
//   - ErrBadCycleData      if encoded cycle bytes have an invalid length.
//
// A Graph is read-only after construction and safe for concurrent readers.
package graph
