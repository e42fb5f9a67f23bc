// File: methods_clone.go
// Role: Clone, Freeze and Stats.
// Concurrency:
//   - Clone and Stats hold the read lock of the source only.

package core

import "github.com/zyedidia/generic/mapset"

// Clone returns a deep, unfrozen copy of g. Mutating the copy never affects g,
// so callers that need scratch space (e.g. what-if edge additions) clone a
// frozen graph instead of thawing it.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		adjacency: make(map[Coord]mapset.Set[Coord], len(g.adjacency)),
		edges:     g.edges,
	}
	for c, set := range g.adjacency {
		cp := mapset.New[Coord]()
		set.Each(func(n Coord) { cp.Put(n) })
		out.adjacency[c] = cp
	}
	return out
}

// Freeze makes g read-only. It is idempotent.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// Stats returns a snapshot summary of g.
// Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{
		VertexCount: len(g.adjacency),
		EdgeCount:   g.edges,
		Frozen:      g.frozen,
	}
	for _, set := range g.adjacency {
		d := set.Size()
		if d == 0 {
			st.Isolated++
		}
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
	}
	return st
}
