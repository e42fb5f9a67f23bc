// SPDX-License-Identifier: MIT
// Package: empyreus/builder
//
// build.go — the board graph builder.
//
// Build runs three phases over a typed grid, in order, exactly once:
//
//  1. islands: depth-first discovery of every contiguous group of playable
//     cells; each discovery step becomes an edge, so every island is spanned
//     by its own tree.
//  2. stitch:  when more than one island exists, the largest (discovery
//     order breaks ties) is the mainland, and every cell of every other
//     island is joined to its nearest mainland cell.
//  3. relax:   every pair of grid-adjacent playable cells further apart than
//     the hop bound gets a direct edge.
//
// Then the graph is frozen.

package builder

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/empyreus/bfs"
	"github.com/katalvlaran/empyreus/core"
	"github.com/katalvlaran/empyreus/gridgraph"
)

// Build derives the connected, frozen board graph of grid.
//
// Every playable cell becomes a vertex, including a lone cell with no edges.
// A grid without playable cells yields an empty graph. Errors are ErrNilGrid
// and, when WithContext is set, the context's error.
//
// Complexity: phases 1 and 2 are O(W·H) and O(Σ|isle|·|mainland|); phase 3
// runs one bounded BFS per adjacent pair, each O(V+E) in the worst case.
func Build(grid *gridgraph.Grid, opts ...BuilderOption) (*core.Graph, *Report, error) {
	if grid == nil {
		return nil, nil, builderErrorf(MethodBuild, "%w", ErrNilGrid)
	}
	cfg := newBuilderConfig(opts...)
	log := cfg.logger.With("method", MethodBuild)

	g := core.NewGraph()
	for _, c := range grid.PlayableCells() {
		if err := g.AddVertex(c); err != nil {
			return nil, nil, builderErrorf(MethodBuild, "AddVertex(%v): %w", c, err)
		}
	}
	rep := &Report{HopBound: cfg.hopBound, Mainland: -1}

	islands := grid.Islands()
	if err := linkIslands(g, islands, rep); err != nil {
		return nil, nil, err
	}
	log.Debug("phase done", "phase", PhaseIslands, "islands", len(islands), "edges", rep.TreeEdges)

	if err := stitch(g, islands, rep); err != nil {
		return nil, nil, err
	}
	log.Debug("phase done", "phase", PhaseStitch, "mainland", rep.Mainland, "edges", rep.StitchEdges)

	if err := relax(cfg, grid, g, rep); err != nil {
		return nil, nil, err
	}
	log.Debug("phase done", "phase", PhaseRelax, "edges", rep.RelaxEdges)

	g.Freeze()
	rep.Vertices, rep.Edges = g.VertexCount(), g.EdgeCount()
	log.Debug("graph frozen", "vertices", rep.Vertices, "edges", rep.Edges)

	return g, rep, nil
}

// linkIslands inserts every island's discovery tree into g.
func linkIslands(g *core.Graph, islands []gridgraph.Island, rep *Report) error {
	rep.Islands = make([]int, len(islands))
	for i, is := range islands {
		rep.Islands[i] = is.Size()
		for _, e := range is.Tree {
			added, err := g.AddEdge(e[0], e[1])
			if err != nil {
				return builderErrorf(MethodBuild, "%s: AddEdge(%v, %v): %w", PhaseIslands, e[0], e[1], err)
			}
			if added {
				rep.TreeEdges++
			}
		}
	}
	if len(islands) > 0 {
		rep.Mainland = 0
	}
	return nil
}

// stitch joins every isle cell to its nearest mainland cell.
func stitch(g *core.Graph, islands []gridgraph.Island, rep *Report) error {
	if len(islands) < 2 {
		return nil
	}

	order := make([]int, len(islands))
	for i := range order {
		order[i] = i
	}
	// stable: equal sizes keep discovery order
	slices.SortStableFunc(order, func(a, b int) int {
		return islands[b].Size() - islands[a].Size()
	})
	rep.Mainland = order[0]
	mainland := islands[order[0]].Members

	for _, idx := range order[1:] {
		for _, c := range islands[idx].Members {
			near := nearest(c, mainland)
			added, err := g.AddEdge(c, near)
			if err != nil {
				return builderErrorf(MethodBuild, "%s: AddEdge(%v, %v): %w", PhaseStitch, c, near, err)
			}
			if added {
				rep.StitchEdges++
			}
		}
	}
	return nil
}

// nearest returns the first cell of candidates at minimum Euclidean distance
// from c. candidates must be non-empty.
func nearest(c core.Coord, candidates []core.Coord) core.Coord {
	best := candidates[0]
	bestD := gridgraph.EuclideanDistance(c, best)
	for _, m := range candidates[1:] {
		if d := gridgraph.EuclideanDistance(c, m); d < bestD {
			best, bestD = m, d
		}
	}
	return best
}

// relax adds a shortcut between every grid-adjacent pair of vertices whose
// hop distance exceeds the bound. All distances are measured on the graph as
// it stands after stitching; shortcuts are applied afterwards, in vertex
// order, and are not themselves re-examined.
func relax(cfg builderConfig, grid *gridgraph.Grid, g *core.Graph, rep *Report) error {
	nodes := g.Vertices()
	found := make([][][2]core.Coord, len(nodes))

	eg, ctx := errgroup.WithContext(cfg.ctx)
	eg.SetLimit(cfg.workers)
	for i, n := range nodes {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, m := range grid.Neighbours(n) {
				// each unordered pair is measured once, from its smaller end
				if !n.Less(m) || !g.HasVertex(m) {
					continue
				}
				if tooFar(ctx, g, n, m, cfg.hopBound) {
					found[i] = append(found[i], [2]core.Coord{n, m})
				}
			}
			return ctx.Err()
		})
	}
	if err := eg.Wait(); err != nil {
		return builderErrorf(MethodBuild, "%s: %w", PhaseRelax, err)
	}

	for _, pairs := range found {
		for _, p := range pairs {
			added, err := g.AddEdge(p[0], p[1])
			if err != nil {
				return builderErrorf(MethodBuild, "%s: AddEdge(%v, %v): %w", PhaseRelax, p[0], p[1], err)
			}
			if added {
				rep.RelaxEdges++
			}
		}
	}
	return nil
}

// tooFar reports whether b lies more than bound hops from a. The search is cut
// off at depth bound, so far pairs cost no more than near ones.
func tooFar(ctx context.Context, g *core.Graph, a, b core.Coord, bound int) bool {
	return bfs.HopDistance(g, a, b, bfs.WithContext(ctx), bfs.WithMaxDepth(bound)) == bfs.Unreachable
}
