package prng

import (
	"encoding/binary"
	"math/bits"
)

// ChaCha constants ("expand 32-byte k") and layout parameters.
const (
	sigma0 = 0x61707865
	sigma1 = 0x3320646e
	sigma2 = 0x79622d32
	sigma3 = 0x6b206574

	// chachaRounds is the total number of quarter-round rounds; 8 rounds
	// means 4 column/diagonal double-rounds per block.
	chachaRounds = 8

	// blockWords is the number of 32-bit words produced per block.
	blockWords = 16

	// keyWords is the number of 32-bit key words (256-bit key).
	keyWords = 8
)

// PCG32 constants used to expand a 64-bit seed into a 256-bit key.
// These match rand_core's SeedableRng::seed_from_u64 expansion, which is
// what keeps 64-bit seeds portable across implementations.
const (
	pcgMultiplier = 6364136223846793005
	pcgIncrement  = 11634580027462260723
)

// ChaCha8 is a deterministic Source producing the keystream of the
// 8-round ChaCha block function as little-endian 32-bit words. The block
// counter is 64-bit and starts at zero; the stream identifier is zero.
//
// ChaCha8 is not safe for concurrent use.
type ChaCha8 struct {
	key     [keyWords]uint32
	counter uint64
	block   [blockWords]uint32
	used    int // words already consumed from block; blockWords forces a refill
}

// NewChaCha8 returns a ChaCha8 source keyed by expanding seed with a
// PCG32 step per key word. Equal seeds yield equal word streams.
func NewChaCha8(seed uint64) *ChaCha8 {
	c := &ChaCha8{used: blockWords}
	state := seed
	for i := 0; i < keyWords; i++ {
		// Advance first so low-Hamming-weight seeds still diffuse.
		state = state*pcgMultiplier + pcgIncrement
		xorshifted := uint32(((state >> 18) ^ state) >> 27)
		rot := int(state >> 59)
		c.key[i] = bits.RotateLeft32(xorshifted, -rot)
	}

	return c
}

// NewChaCha8FromKey returns a ChaCha8 source using key directly as the
// 256-bit ChaCha key, read as eight little-endian 32-bit words.
func NewChaCha8FromKey(key [32]byte) *ChaCha8 {
	c := &ChaCha8{used: blockWords}
	for i := 0; i < keyWords; i++ {
		c.key[i] = binary.LittleEndian.Uint32(key[i*4:])
	}

	return c
}

// Uint32 returns the next keystream word. Words are emitted in block
// order: all 16 words of block k before any word of block k+1.
func (c *ChaCha8) Uint32() uint32 {
	if c.used == blockWords {
		c.refill()
	}
	w := c.block[c.used]
	c.used++

	return w
}

// refill runs the 8-round ChaCha permutation over the next block.
func (c *ChaCha8) refill() {
	input := [blockWords]uint32{
		sigma0, sigma1, sigma2, sigma3,
		c.key[0], c.key[1], c.key[2], c.key[3],
		c.key[4], c.key[5], c.key[6], c.key[7],
		uint32(c.counter), uint32(c.counter >> 32), 0, 0,
	}

	x := input
	for i := 0; i < chachaRounds/2; i++ {
		// Column round.
		x[0], x[4], x[8], x[12] = quarterRound(x[0], x[4], x[8], x[12])
		x[1], x[5], x[9], x[13] = quarterRound(x[1], x[5], x[9], x[13])
		x[2], x[6], x[10], x[14] = quarterRound(x[2], x[6], x[10], x[14])
		x[3], x[7], x[11], x[15] = quarterRound(x[3], x[7], x[11], x[15])
		// Diagonal round.
		x[0], x[5], x[10], x[15] = quarterRound(x[0], x[5], x[10], x[15])
		x[1], x[6], x[11], x[12] = quarterRound(x[1], x[6], x[11], x[12])
		x[2], x[7], x[8], x[13] = quarterRound(x[2], x[7], x[8], x[13])
		x[3], x[4], x[9], x[14] = quarterRound(x[3], x[4], x[9], x[14])
	}

	for i := range x {
		c.block[i] = x[i] + input[i]
	}

	c.counter++
	c.used = 0
}

// quarterRound is the standard ChaCha quarter-round on four state words.
func quarterRound(a, b, cc, d uint32) (uint32, uint32, uint32, uint32) {
	a += b
	d = bits.RotateLeft32(d^a, 16)
	cc += d
	b = bits.RotateLeft32(b^cc, 12)
	a += b
	d = bits.RotateLeft32(d^a, 8)
	cc += d
	b = bits.RotateLeft32(b^cc, 7)

	return a, b, cc, d
}
