// Package solve: this file declares the handler contract, side-tagged
// node encoding, and sentinel errors.
package solve

import "errors"

var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed to Solve or For.
	ErrGraphNil = errors.New("solve: graph is nil")

	// ErrHandlerNil is returned when Solve is given a nil handler predicate.
	ErrHandlerNil = errors.New("solve: handler is nil")
)

// Handler is the caller-supplied predicate consulted on every closing
// cycle. The slice is a read-only view owned by the solver; handlers
// that keep it past the call must copy it. Returning true stops the
// search and makes Solve return that cycle.
//
// Handlers may be invoked zero or more times per solve and must not
// assume any particular order of invocations.
type Handler func(cycle []uint32) bool

// bottomTag distinguishes the two positions a numeric identifier can
// occupy in the bipartite structure. The DFS visited set is over tagged
// nodes, not raw identifiers: vertex v as a top node and vertex v as a
// bottom node are distinct graph positions. Identifiers are 32-bit, so
// bit 32 is free to carry the side.
const bottomTag = uint64(1) << 32

// topNode tags v as a top-side DFS node.
func topNode(v uint32) uint64 { return uint64(v) }

// bottomNode tags v as a bottom-side DFS node.
func bottomNode(v uint32) uint64 { return bottomTag | uint64(v) }
