package prng

// Source is the inbound PRNG contract of the module: a stream of
// uniformly distributed 32-bit words. Graph generation consumes words
// strictly in order via Uint32 and performs no seeding or reseeding.
//
// Implementations are not required to be safe for concurrent use;
// callers must not share one Source across goroutines without external
// synchronization.
type Source interface {
	// Uint32 returns the next 32-bit word of the stream.
	Uint32() uint32
}
