// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Vertices/VertexCount.
// Determinism:
//   - Vertices() is sorted row-major.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// AddVertex inserts c as an isolated vertex. Adding an existing vertex is a no-op.
//
// Errors:
//   - ErrFrozen if the graph has been frozen.
//
// Complexity: O(1).
func (g *Graph) AddVertex(c Coord) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}
	g.ensureVertex(c)

	return nil
}

// HasVertex reports whether c is a vertex of the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(c Coord) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[c]
	return ok
}

// Vertices returns every vertex, sorted row-major.
// Complexity: O(V log V) time, O(V) space.
func (g *Graph) Vertices() []Coord {
	g.mu.RLock()
	out := make([]Coord, 0, len(g.adjacency))
	for c := range g.adjacency {
		out = append(out, c)
	}
	g.mu.RUnlock()

	slices.SortFunc(out, Compare)
	return out
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// ensureVertex allocates an empty neighbour set for c if needed.
// Caller must hold the write lock.
func (g *Graph) ensureVertex(c Coord) {
	if _, ok := g.adjacency[c]; !ok {
		g.adjacency[c] = mapset.New[Coord]()
	}
}
