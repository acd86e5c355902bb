// Package solve implements the proof-of-work search: finding odd-length
// cycles in a bipartite random graph via pruned adjacency maps and a
// depth-bounded iterative depth-first search.
//
// What:
//
//   - Solve(g, maxDepth, handler): streams every closing cycle found
//     within maxDepth vertices to the caller's handler predicate and
//     returns the first cycle the handler accepts.
//   - For(g, diff): convenience search for any cycle whose sequence
//     length equals diff (odd, ≥ graph.MinCycleLen).
//
// How:
//
//   - Two adjacency maps are built from the edge list in order, one per
//     side, with duplicate neighbors collapsed; insertion order is kept,
//     which fixes the traversal order and makes results reproducible.
//   - Each side is pruned once: a vertex with fewer than two neighbors
//     on its side cannot lie on an odd cycle through itself, so it is
//     detached from both maps. Pruning is deliberately single-pass per
//     side; residual dead branches are cheap for the DFS to reject.
//   - From every still-live top vertex an iterative DFS walks frames of
//     (side-tagged node, path copy). A frame is expanded on first visit
//     while the path is shorter than maxDepth; a frame that is rejected
//     from expansion and sits on the origin with a path of at least
//     graph.MinCycleLen vertices is a closed odd cycle and goes to the
//     handler. Side tags alternate on every step, so the origin only
//     reappears at odd sequence lengths.
//
// Why:
//   - The search is the expensive half of the PoW asymmetry: the prover
//     runs Solve, the verifier only replays graph.Verify.
//
// Complexity:
//
//   - Adjacency + pruning: Time O(N·d) with d the duplicate-check scan
//     (neighbor lists are short on random graphs), Memory O(N).
//   - DFS: bounded by the reachable subgraph per start vertex and by
//     maxDepth along any path; path copies cost O(maxDepth) per push.
//
// Errors:
//
//   - ErrGraphNil    if g is nil.
//   - ErrHandlerNil  if the handler predicate is nil.
//
// Exhausted searches are not errors: Solve returns (nil, nil).
package solve
