package pow

import (
	"context"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/krypt0nn/dodopow/graph"
	"github.com/krypt0nn/dodopow/prng"
	"github.com/krypt0nn/dodopow/solve"
)

// nonceWireSize is the encoded width of the nonce in the seed preimage.
const nonceWireSize = 8

// Seed derives the 64-bit graph seed for a challenge and nonce:
// blake2b-256 over challenge || nonce (little-endian 64-bit), with the
// first eight digest bytes read little-endian. Prover and verifier must
// agree on this derivation bit-for-bit, so it is exported and pinned by
// golden tests.
func Seed(challenge []byte, nonce uint64) uint64 {
	preimage := make([]byte, len(challenge)+nonceWireSize)
	copy(preimage, challenge)
	binary.LittleEndian.PutUint64(preimage[len(challenge):], nonce)

	digest := blake2b.Sum256(preimage)

	return binary.LittleEndian.Uint64(digest[:nonceWireSize])
}

// attemptGraph rebuilds the graph a given nonce seeds. Shared by Prove
// and Verify so the two sides can never diverge.
func attemptGraph(challenge []byte, nonce uint64, order uint8) (*graph.Graph, error) {
	return graph.Generate(prng.NewChaCha8(Seed(challenge, nonce)), order)
}

// Prove iterates nonces from Options.StartNonce, generating one graph
// per nonce and searching it for a cycle of exactly params.CycleLength,
// until a proof is found, the context is cancelled, or the attempt bound
// is hit. The returned proof always passes Verify for the same challenge
// and params.
//
// The iteration is single-threaded; shard the nonce space with
// WithStartNonce across goroutines for parallel proving (graphs are
// per-attempt, nothing is shared).
//
// Errors:
//   - ErrBadCycleLength       if params.CycleLength is even or < graph.MinCycleLen.
//   - graph.ErrOrderTooLarge  if params.GraphOrder > graph.MaxOrder.
//   - ErrNoProof              if Options.MaxAttempts nonces were tried in vain.
//   - ctx.Err()               if cancelled.
func Prove(ctx context.Context, challenge []byte, params Params, opts ...Option) (*Proof, error) {
	// 1. Reject impossible parameter sets before any work.
	if params.CycleLength%2 == 0 || params.CycleLength < graph.MinCycleLen {
		return nil, ErrBadCycleLength
	}
	if params.GraphOrder > graph.MaxOrder {
		return nil, graph.ErrOrderTooLarge
	}

	// 2. Resolve options.
	if ctx == nil {
		ctx = context.Background()
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Iterate the nonce space.
	nonce := o.StartNonce
	for attempt := uint64(0); o.MaxAttempts == 0 || attempt < o.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		g, err := attemptGraph(challenge, nonce, params.GraphOrder)
		if err != nil {
			return nil, fmt.Errorf("pow: generate attempt %d: %w", attempt, err)
		}

		cycle, err := solve.For(g, params.CycleLength)
		if err != nil {
			return nil, fmt.Errorf("pow: solve attempt %d: %w", attempt, err)
		}
		if cycle != nil {
			return &Proof{Nonce: nonce, Cycle: cycle}, nil
		}

		nonce++
	}

	return nil, ErrNoProof
}

// Verify replays a proof: it rebuilds the graph seeded by the proof's
// nonce and checks the cycle strictly: exact requested length, closed,
// and walking legal alternating edges. Malformed inputs verify false;
// Verify never fails structurally.
func Verify(challenge []byte, params Params, proof *Proof) bool {
	// 1. Structural gates that need no graph.
	if proof == nil || len(proof.Cycle) != params.CycleLength {
		return false
	}
	if params.CycleLength%2 == 0 || params.CycleLength < graph.MinCycleLen {
		return false
	}

	// 2. Rebuild the one graph this nonce commits to.
	g, err := attemptGraph(challenge, proof.Nonce, params.GraphOrder)
	if err != nil {
		return false
	}

	// 3. Strict verification: the wrapper surface has no compatibility
	//    constraints, so open walks are rejected here.
	return g.VerifyStrict(proof.Cycle)
}
