package solve

import "github.com/krypt0nn/dodopow/graph"

// frame is one unit of DFS work: a side-tagged node and the full vertex
// path from the search origin up to and including that node. Each frame
// owns its path copy; handlers receive the path of the closing frame.
// (A parent-pointer arena would avoid the copies, but path lengths are
// bounded by maxDepth and the direct representation keeps the handler
// lifetime rules simple.)
type frame struct {
	node uint64
	path []uint32
}

// Solve searches g for odd cycles and streams every closing cycle to
// handler. maxDepth bounds the number of vertices in a candidate walk: a
// path that has reached maxDepth vertices is not extended further. The
// first cycle for which handler returns true is returned; if the search
// exhausts, the result is (nil, nil).
//
// A closing walk is reported only when the revisit of the origin is
// rejected from expansion, either already visited or at the depth
// limit. Every expansion toggles the side tag, so the origin reappears
// only after an even number of edges, which makes every reported
// sequence odd-length. Sequences shorter than graph.MinCycleLen are
// discarded before the handler sees them.
//
// For a fixed graph and maxDepth the sequence of handler invocations is
// deterministic: it depends only on the adjacency insertion order, i.e.
// on the edge order of the graph.
//
// Complexity: adjacency O(N), then per start vertex a DFS bounded by the
// reachable subgraph and maxDepth. Memory O(N) for adjacency plus the
// live stack frames.
//
// Errors:
//   - ErrGraphNil    if g is nil.
//   - ErrHandlerNil  if handler is nil.
func Solve(g *graph.Graph, maxDepth int, handler Handler) ([]uint32, error) {
	// 1. Validate inputs; exhaustion is not an error but bad calls are.
	if g == nil {
		return nil, ErrGraphNil
	}
	if handler == nil {
		return nil, ErrHandlerNil
	}

	// 2. Build both adjacency maps, then prune each side once.
	adj := buildAdjacency(g)
	adj.prune()

	// 3. Run a depth-bounded DFS from every still-live top vertex.
	count := g.EdgeCount()
	for target := 0; target < count; target++ {
		if len(adj.top[target]) == 0 {
			continue
		}

		if cycle := adj.search(uint32(target), maxDepth, handler); cycle != nil {
			return cycle, nil
		}
	}

	return nil, nil
}

// For searches for any cycle whose sequence length equals diff. diff
// must be odd and at least graph.MinCycleLen; otherwise the result is
// (nil, nil) immediately, without consulting the graph.
func For(g *graph.Graph, diff int) ([]uint32, error) {
	if diff%2 == 0 || diff < graph.MinCycleLen {
		return nil, nil
	}

	return Solve(g, diff, func(cycle []uint32) bool {
		return len(cycle) == diff
	})
}

// search runs the iterative DFS for one origin vertex. It returns the
// first handler-accepted cycle, or nil when the frontier is exhausted.
func (a *adjacency) search(target uint32, maxDepth int, handler Handler) []uint32 {
	origin := topNode(target)

	// The visited set is scoped to this origin and spans tagged nodes on
	// both sides.
	visited := make(map[uint64]struct{})
	stack := []frame{{node: origin, path: []uint32{target}}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// First sighting of a node marks it visited even when the depth
		// limit blocks its expansion; later shallower arrivals must not
		// reopen it, or enumeration order would drift.
		_, seen := visited[f.node]
		if !seen {
			visited[f.node] = struct{}{}
		}

		if !seen && len(f.path) < maxDepth {
			// Expand: push opposite-side neighbors in adjacency order
			// (LIFO pop explores them in reverse).
			var neighbors []uint32
			var tag func(uint32) uint64
			if f.node&bottomTag == 0 {
				neighbors = a.top[f.node]
				tag = bottomNode
			} else {
				neighbors = a.bottom[f.node&^bottomTag]
				tag = topNode
			}

			for _, nb := range neighbors {
				next := make([]uint32, len(f.path)+1)
				copy(next, f.path)
				next[len(f.path)] = nb
				stack = append(stack, frame{node: tag(nb), path: next})
			}
		} else if f.node == origin && len(f.path) >= graph.MinCycleLen {
			// Rejected revisit of the origin: the walk has closed. Frames
			// on the origin always carry odd-length paths (the side tag
			// toggled an even number of times), so this is an odd cycle.
			if handler(f.path) {
				return f.path
			}
		}
	}

	return nil
}
