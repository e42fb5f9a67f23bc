// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/EdgeCount.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

// AddEdge records the undirected edge {a, b} in both adjacency sets, creating
// missing endpoints. It reports whether the edge is new; adding an existing
// edge is a no-op that returns (false, nil).
//
// Errors:
//   - ErrLoopNotAllowed if a == b.
//   - ErrFrozen if the graph has been frozen.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b Coord) (bool, error) {
	if a == b {
		return false, ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return false, ErrFrozen
	}
	g.ensureVertex(a)
	g.ensureVertex(b)

	if g.adjacency[a].Has(b) {
		return false, nil
	}
	g.adjacency[a].Put(b)
	g.adjacency[b].Put(a)
	g.edges++

	return true, nil
}

// HasEdge reports whether {a, b} is an edge. Missing vertices yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b Coord) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set, ok := g.adjacency[a]
	return ok && set.Has(b)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Degree returns the neighbour count of c.
//
// Errors:
//   - ErrVertexNotFound if c is not a vertex.
func (g *Graph) Degree(c Coord) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set, ok := g.adjacency[c]
	if !ok {
		return 0, ErrVertexNotFound
	}
	return set.Size(), nil
}
