// Package dodopow implements a proof-of-work scheme built on finding
// odd-length cycles in deterministically seeded bipartite random graphs,
// a variant of the Cuckoo-Cycle family.
//
// 🚀 What is dodopow?
//
//	A small, deterministic PoW core that brings together:
//		• Graph model: N = 2^n random directed edges over 2N bipartite nodes
//		• Solver: pruned adjacency + depth-bounded iterative DFS for odd cycles
//		• Verifier: alternating-orientation edge checks, lax and strict modes
//		• PRNG: pluggable 32-bit word source, reference ChaCha8 included
//		• PoW wrapper: blake2b challenge/nonce seeding with proof objects
//
// ✨ Why choose dodopow?
//
//   - Reproducible – every graph and every solve is a pure function of the seed
//   - Prover-hard, verifier-cheap – search is the work, checking is a scan
//   - Minimal API – three core operations: generate, solve, verify
//   - Extensible – caller-supplied handlers decide which cycles count
//
// Everything is organized under small focused subpackages:
//
//	graph/ — Edge and Graph types, generation, verification, binary codec
//	solve/ — adjacency construction, degree-1 pruning, depth-bounded DFS
//	prng/  — 32-bit word Source contract + reference ChaCha8 source
//	pow/   — challenge → nonce → proof difficulty wrapper
//	cmd/   — the dodopow command-line tool
//
// Quick ASCII example of the bipartite structure (top row → bottom row):
//
//	T0  T1  T2  T3
//	 \ /  \ / \ /
//	 B0   B1  B2
//
//	a cycle alternates sides and returns to its origin after an even
//	number of edges, so valid cycle sequences have odd length ≥ 5.
//
//	go get github.com/krypt0nn/dodopow
package dodopow
