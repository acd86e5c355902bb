package pow_test

import (
	"context"
	"fmt"

	"github.com/krypt0nn/dodopow/pow"
)

// ExampleProve runs the full challenge → proof → verification loop on a
// small difficulty setting.
func ExampleProve() {
	challenge := []byte("dodopow test challenge")
	params := pow.Params{GraphOrder: 10, CycleLength: 9}

	proof, err := pow.Prove(context.Background(), challenge, params)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("nonce:", proof.Nonce)
	fmt.Println("cycle length:", len(proof.Cycle))
	fmt.Println("verified:", pow.Verify(challenge, params, proof))

	// Output:
	// nonce: 6
	// cycle length: 9
	// verified: true
}
