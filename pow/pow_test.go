package pow_test

import (
	"context"
	"testing"
	"time"

	"github.com/onsi/gomega"

	"github.com/krypt0nn/dodopow/graph"
	"github.com/krypt0nn/dodopow/pow"
)

var testChallenge = []byte("dodopow test challenge")

// testParams is small enough for fast attempts but large enough that
// not every nonce wins: the reference run below needs seven attempts.
var testParams = pow.Params{GraphOrder: 10, CycleLength: 9}

func TestSeed_GoldenValues(t *testing.T) {
	g := gomega.NewWithT(t)

	g.Expect(pow.Seed(testChallenge, 0)).To(gomega.Equal(uint64(578467959646713724)))
	g.Expect(pow.Seed(testChallenge, 6)).To(gomega.Equal(uint64(17962206697802136924)))
	g.Expect(pow.Seed(nil, 0)).To(gomega.Equal(uint64(764401263109137537)))
	g.Expect(pow.Seed(nil, 1)).To(gomega.Equal(uint64(15150419578313358621)))
}

func TestProve_ReferenceChallenge(t *testing.T) {
	g := gomega.NewWithT(t)

	proof, err := pow.Prove(context.Background(), testChallenge, testParams)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(proof).NotTo(gomega.BeNil())

	g.Expect(proof.Nonce).To(gomega.Equal(uint64(6)))
	g.Expect(proof.Cycle).To(gomega.Equal([]uint32{205, 979, 240, 66, 547, 928, 834, 444, 205}))

	g.Expect(pow.Verify(testChallenge, testParams, proof)).To(gomega.BeTrue())
}

func TestProve_BadParams(t *testing.T) {
	g := gomega.NewWithT(t)

	_, err := pow.Prove(context.Background(), testChallenge, pow.Params{GraphOrder: 10, CycleLength: 8})
	g.Expect(err).To(gomega.MatchError(pow.ErrBadCycleLength))

	_, err = pow.Prove(context.Background(), testChallenge, pow.Params{GraphOrder: 10, CycleLength: 3})
	g.Expect(err).To(gomega.MatchError(pow.ErrBadCycleLength))

	_, err = pow.Prove(context.Background(), testChallenge, pow.Params{GraphOrder: 33, CycleLength: 9})
	g.Expect(err).To(gomega.MatchError(graph.ErrOrderTooLarge))
}

func TestProve_MaxAttemptsExhausted(t *testing.T) {
	g := gomega.NewWithT(t)

	// The reference challenge needs nonce 6; three attempts cannot win.
	_, err := pow.Prove(context.Background(), testChallenge, testParams, pow.WithMaxAttempts(3))
	g.Expect(err).To(gomega.MatchError(pow.ErrNoProof))
}

func TestProve_StartNonceSkipsAhead(t *testing.T) {
	g := gomega.NewWithT(t)

	// Starting on the winning nonce, the first attempt succeeds.
	proof, err := pow.Prove(context.Background(), testChallenge, testParams,
		pow.WithStartNonce(6), pow.WithMaxAttempts(1))
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(proof.Nonce).To(gomega.Equal(uint64(6)))
}

func TestProve_ContextCancelled(t *testing.T) {
	g := gomega.NewWithT(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pow.Prove(ctx, testChallenge, testParams)
	g.Expect(err).To(gomega.MatchError(context.Canceled))
}

func TestProve_ContextDeadline(t *testing.T) {
	g := gomega.NewWithT(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	// A hopeless search (no cycle of length 5 in these graphs comes
	// cheap) must still return promptly once the deadline passes.
	_, err := pow.Prove(ctx, testChallenge, pow.Params{GraphOrder: 10, CycleLength: 5})
	g.Expect(err).To(gomega.MatchError(context.DeadlineExceeded))
}

func TestVerify_RejectsTampering(t *testing.T) {
	g := gomega.NewWithT(t)

	proof, err := pow.Prove(context.Background(), testChallenge, testParams)
	g.Expect(err).NotTo(gomega.HaveOccurred())

	g.Expect(pow.Verify(testChallenge, testParams, nil)).To(gomega.BeFalse())
	g.Expect(pow.Verify([]byte("some other challenge"), testParams, proof)).To(gomega.BeFalse())

	wrongNonce := &pow.Proof{Nonce: proof.Nonce + 1, Cycle: proof.Cycle}
	g.Expect(pow.Verify(testChallenge, testParams, wrongNonce)).To(gomega.BeFalse())

	forged := &pow.Proof{Nonce: proof.Nonce, Cycle: append([]uint32(nil), proof.Cycle...)}
	forged.Cycle[2]++
	g.Expect(pow.Verify(testChallenge, testParams, forged)).To(gomega.BeFalse())

	short := &pow.Proof{Nonce: proof.Nonce, Cycle: proof.Cycle[:7]}
	g.Expect(pow.Verify(testChallenge, testParams, short)).To(gomega.BeFalse())

	// Wrong difficulty: same proof against stricter params.
	harder := pow.Params{GraphOrder: 10, CycleLength: 11}
	g.Expect(pow.Verify(testChallenge, harder, proof)).To(gomega.BeFalse())
}
