package graph

// Verify reports whether cycle walks legal edges of g with strictly
// alternating orientation: step i uses a top→bottom edge when i is odd
// and a bottom→top edge when i is even. Even-length sequences are
// rejected outright, since a walk alternating sides can only return to a
// top vertex after an odd sequence length.
//
// Verify is the compatibility verifier: it does NOT require the sequence
// to close (cycle[0] == cycle[len-1]) or to reach MinCycleLen; those are
// part of the prover's construction contract. Use VerifyStrict to enforce
// them as well.
//
// Each step scans the full edge list, so complexity is O(L·N) time and
// O(1) memory. Build an EdgeIndex when verification throughput matters.
func (g *Graph) Verify(cycle []uint32) bool {
	// 1. Parity gate: an empty or even-length sequence can never be a
	//    closed alternating walk.
	if len(cycle)%2 == 0 {
		return false
	}

	// 2. Check every step against the edge list.
	for i := 1; i < len(cycle); i++ {
		if !g.hasStep(cycle[i-1], cycle[i], i%2 != 0) {
			return false
		}
	}

	return true
}

// VerifyStrict is Verify plus the closure and minimum-length checks: the
// sequence must be at least MinCycleLen long and must end on its origin
// vertex. The relaxed Verify stays the default because existing provers
// and verifiers agree on it; strict mode is an opt-in extension.
func (g *Graph) VerifyStrict(cycle []uint32) bool {
	if len(cycle) < MinCycleLen {
		return false
	}
	if cycle[0] != cycle[len(cycle)-1] {
		return false
	}

	return g.Verify(cycle)
}

// hasStep reports whether any edge realizes the step from → to in the
// given orientation (topToBottom true means from is a top vertex).
func (g *Graph) hasStep(from, to uint32, topToBottom bool) bool {
	for _, e := range g.edges {
		if topToBottom {
			if e.Top == from && e.Bottom == to {
				return true
			}
		} else if e.Bottom == from && e.Top == to {
			return true
		}
	}

	return false
}
