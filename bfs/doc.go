// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances (hop counts), parent links, and visit
// order, plus the HopDistance query the board builder relies on.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → hops from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Hooks: OnEnqueue, OnDequeue, OnVisit (OnVisit may abort with an error).
//   - WithFilterNeighbor prunes individual edges; WithMaxDepth bounds the search.
//
// HopDistance
//
//	HopDistance(g, a, b) is 0 when a == b, the hop count when b is reachable,
//	and Unreachable (-1) otherwise. "No path" is an expected state while a
//	board graph is still being stitched together, so it is a sentinel value,
//	not an error. Combined with WithMaxDepth(k) it answers "is b within k
//	hops of a" without exploring the rest of the graph.
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbours in row-major order and BFS
//	enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an invalid Option was supplied (negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit, or ctx.Err() on cancellation.
package bfs
