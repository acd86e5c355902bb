// Package pow: this file declares Params, Proof, sentinel errors, and
// the functional options of Prove.
package pow

import "errors"

var (
	// ErrBadCycleLength indicates Params.CycleLength is even or below the
	// minimum; no graph can contain such a cycle, so proving is refused
	// up front instead of looping forever.
	ErrBadCycleLength = errors.New("pow: cycle length must be odd and at least 5")

	// ErrNoProof indicates the configured attempt bound was exhausted
	// without finding a proof.
	ErrNoProof = errors.New("pow: nonce attempts exhausted without a proof")
)

// Params fixes the difficulty of a challenge.
type Params struct {
	// GraphOrder is n: every attempt generates a graph of 2^n edges.
	// Must be at most graph.MaxOrder.
	GraphOrder uint8

	// CycleLength is the exact cycle sequence length a proof must
	// exhibit, odd and ≥ graph.MinCycleLen. Longer cycles in larger
	// graphs make proving harder; verification stays cheap.
	CycleLength int
}

// Proof is the prover's answer to a challenge: the winning nonce and a
// cycle of Params.CycleLength in the graph that nonce seeds.
type Proof struct {
	// Nonce is the counter value whose derived seed produced the graph.
	Nonce uint64

	// Cycle is the closed alternating walk, including the repeated
	// origin vertex.
	Cycle []uint32
}

// Option configures optional behavior of Prove.
type Option func(*Options)

// Options holds the configurable parameters of the nonce iteration.
type Options struct {
	// StartNonce is the first nonce to try. Defaults to 0. The counter
	// wraps around at the end of the 64-bit space.
	StartNonce uint64

	// MaxAttempts bounds how many nonces are tried before Prove gives up
	// with ErrNoProof. Zero means unbounded. Default is 0.
	MaxAttempts uint64
}

// DefaultOptions returns an Options struct with:
//   - StartNonce 0
//   - no attempt bound
func DefaultOptions() Options {
	return Options{
		StartNonce:  0,
		MaxAttempts: 0,
	}
}

// WithStartNonce returns an Option that makes Prove begin at nonce n.
// Useful for sharding the nonce space across workers.
func WithStartNonce(n uint64) Option {
	return func(o *Options) {
		o.StartNonce = n
	}
}

// WithMaxAttempts returns an Option that bounds the number of nonces
// tried. Zero keeps the iteration unbounded.
func WithMaxAttempts(n uint64) Option {
	return func(o *Options) {
		o.MaxAttempts = n
	}
}
