// Package prng defines the pseudo-random word source consumed by graph
// generation, plus a reference ChaCha8 source for reproducible graphs.
//
// What:
//
//   - Source: the inbound PRNG contract, a stream of uniformly
//     distributed 32-bit words drawn one at a time.
//   - ChaCha8: an 8-round ChaCha keystream generator exposing that
//     stream, seedable from a single 64-bit integer or a full 256-bit
//     key. Word-for-word compatible with the widely used
//     rand_chacha::ChaCha8Rng construction (PCG32 seed expansion,
//     64-bit block counter, zero stream), so graphs built from the same
//     64-bit seed match across implementations.
//
// Why:
//   - Graph generation must be a pure function of the PRNG state so that
//     provers and verifiers can rebuild identical graphs from a seed.
//   - A fixed reference source makes golden test vectors portable.
//
// Key Types & Constants:
//
//   - Source: interface { Uint32() uint32 }
//   - ChaCha8: concrete Source; NewChaCha8(seed) / NewChaCha8FromKey(key)
//
// Complexity:
//
//   - Uint32: amortized O(1); one 8-round block permutation per 16 words.
//   - Memory: O(1); key, counter, and one buffered block.
//
// The package performs no seeding policy of its own beyond the documented
// expansion; reseeding is the caller's concern.
package prng
