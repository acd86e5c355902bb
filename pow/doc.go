// Package pow wraps the graph core into a challenge/nonce proof-of-work
// protocol: a prover iterates nonces until the graph seeded by
// blake2b(challenge || nonce) contains a cycle of the requested length,
// and a verifier rebuilds that one graph and re-checks the cycle.
//
// What:
//
//   - Params: the difficulty knobs, graph order n (N = 2^n edges) and
//     the exact cycle sequence length a proof must exhibit.
//   - Proof: the nonce that seeded the winning graph plus the cycle.
//   - Seed: blake2b-256 over challenge || nonce (nonce little-endian),
//     first eight digest bytes read little-endian as the 64-bit seed.
//   - Prove: nonce iteration with context cancellation and optional
//     start/attempt bounds.
//   - Verify: deterministic replay; strict cycle verification (closure
//     and minimum length enforced on this surface).
//
// Why:
//   - The core solver is the expensive half of the asymmetry; this
//     package adds the standard difficulty framing around it so that a
//     challenge issuer never has to trust prover-supplied graphs.
//
// Complexity:
//
//   - Prove:  expected attempts depend on order and cycle length; each
//     attempt is one Generate (O(N)) plus one solve.
//   - Verify: O(N) generation + O(L) index-free verification scan.
//
// Errors:
//
//   - ErrBadCycleLength      if Params.CycleLength is even or < 5.
//   - ErrNoProof             if the attempt bound is hit without a proof.
//   - graph.ErrOrderTooLarge if Params.GraphOrder exceeds graph.MaxOrder.
//   - context errors         if the caller cancels Prove.
package pow
