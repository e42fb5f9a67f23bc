// SPDX-License-Identifier: MIT
// Package: empyreus/builder
//
// verify.go — post-build invariant checks.

package builder

import (
	"github.com/katalvlaran/empyreus/bfs"
	"github.com/katalvlaran/empyreus/core"
	"github.com/katalvlaran/empyreus/dfs"
	"github.com/katalvlaran/empyreus/gridgraph"
)

// Verify checks that g is a valid board graph for grid:
//
//   - completeness: the vertices are exactly the playable cells;
//   - symmetry: every edge is stored in both directions, with no self-loop;
//   - connectivity: at most one component;
//   - hop bound: grid-adjacent vertices are at most the bound apart
//     (DefaultHopBound, or WithHopBound).
//
// The first violation found is returned wrapped in ErrInvariant. Only
// WithHopBound is consulted among opts.
//
// Complexity: O(V·(V+E)) for the hop check.
func Verify(grid *gridgraph.Grid, g *core.Graph, opts ...BuilderOption) error {
	if grid == nil {
		return builderErrorf(MethodVerify, "%w", ErrNilGrid)
	}
	if g == nil {
		return builderErrorf(MethodVerify, "%w", ErrNilGraph)
	}
	cfg := newBuilderConfig(opts...)

	playable := grid.PlayableCells()
	if n := g.VertexCount(); n != len(playable) {
		return builderErrorf(MethodVerify, "%w: %d vertices for %d playable cells", ErrInvariant, n, len(playable))
	}
	for _, c := range playable {
		if !g.HasVertex(c) {
			return builderErrorf(MethodVerify, "%w: playable cell %v missing", ErrInvariant, c)
		}
	}

	for _, a := range playable {
		for _, b := range g.Neighbors(a) {
			if a == b {
				return builderErrorf(MethodVerify, "%w: self-loop at %v", ErrInvariant, a)
			}
			if !g.HasEdge(b, a) {
				return builderErrorf(MethodVerify, "%w: edge %v-%v is one-way", ErrInvariant, a, b)
			}
		}
	}

	if comps := dfs.Components(g); len(comps) > 1 {
		return builderErrorf(MethodVerify, "%w: %d components", ErrInvariant, len(comps))
	}

	for _, a := range playable {
		for _, b := range grid.Neighbours(a) {
			if !a.Less(b) || !g.HasVertex(b) {
				continue
			}
			if d := bfs.HopDistance(g, a, b); d > cfg.hopBound || d == bfs.Unreachable {
				return builderErrorf(MethodVerify, "%w: %v and %v are %d hops apart (bound %d)",
					ErrInvariant, a, b, d, cfg.hopBound)
			}
		}
	}
	return nil
}
