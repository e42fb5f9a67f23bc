// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList).
// Determinism:
//   - Every returned slice is sorted row-major and owned by the caller.

package core

import "slices"

// Neighbors returns the neighbours of c, or an empty slice if c is not a
// vertex. It never fails; use NeighborIDs when absence must be distinguished.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(c Coord) []Coord {
	out, err := g.NeighborIDs(c)
	if err != nil {
		return []Coord{}
	}
	return out
}

// NeighborIDs returns the neighbours of c sorted row-major.
//
// Errors:
//   - ErrVertexNotFound if c is not a vertex.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(c Coord) ([]Coord, error) {
	g.mu.RLock()
	set, ok := g.adjacency[c]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	out := collect(set.Size(), set.Each)
	g.mu.RUnlock()

	slices.SortFunc(out, Compare)
	return out, nil
}

// AdjacencyList returns a deep copy of the adjacency: vertex → sorted neighbours.
// Complexity: O(V + E log d).
func (g *Graph) AdjacencyList() map[Coord][]Coord {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[Coord][]Coord, len(g.adjacency))
	for c, set := range g.adjacency {
		nbrs := collect(set.Size(), set.Each)
		slices.SortFunc(nbrs, Compare)
		out[c] = nbrs
	}
	return out
}

// collect drains a set iterator into a fresh slice.
func collect(n int, each func(func(Coord))) []Coord {
	out := make([]Coord, 0, n)
	each(func(c Coord) { out = append(out, c) })
	return out
}
