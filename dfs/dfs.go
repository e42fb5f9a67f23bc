// Package dfs implements depth-first search (single-source and forest) on
// core.Graph using an explicit stack, so traversal depth is bounded by heap
// memory rather than the goroutine stack.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root, or the full forest via WithFullTraversal.
//   - Components(g): connected components in discovery order.
//   - Hooks: OnVisit (pre-order) with error abort.
//   - Limits: MaxDepth, FilterNeighbor.
//   - Cancellation via context.Context.
//
// Order of discovery matches the recursive formulation: neighbours are pushed
// in reverse row-major order, so the smallest unvisited neighbour is explored
// first, and an entry is discarded on pop if it was discovered meanwhile.
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V + E) for the stack (lazy deletion) and metadata maps.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/empyreus/core"
)

// frame is one pending stack entry.
type frame struct {
	c         core.Coord
	parent    core.Coord
	hasParent bool
	depth     int
}

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g. With WithFullTraversal it covers all
// components (start is then ignored); otherwise it starts from start only.
func DFS(g *core.Graph, start core.Coord, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		res: &DFSResult{
			Order:  make([]core.Coord, 0, n),
			Depth:  make(map[core.Coord]int, n),
			Parent: make(map[core.Coord]core.Coord, n),
		},
	}

	if !o.FullTraversal {
		return w.res, w.traverse(start)
	}
	for _, v := range g.Vertices() {
		if w.res.Visited(v) {
			continue
		}
		if err := w.traverse(v); err != nil {
			return w.res, err
		}
	}
	return w.res, nil
}

// Components returns the connected components of g, each in DFS discovery
// order, components ordered by their smallest (row-major) vertex.
// A nil or empty graph has no components.
func Components(g *core.Graph) [][]core.Coord {
	if g == nil {
		return nil
	}
	res, err := DFS(g, core.Coord{}, WithFullTraversal())
	if err != nil {
		return nil
	}

	rootIdx := make(map[core.Coord]int, len(res.Roots))
	comps := make([][]core.Coord, len(res.Roots))
	for i, r := range res.Roots {
		rootIdx[r] = i
	}
	// Order is grouped by tree, so the current tree index only changes at roots.
	cur := -1
	for _, c := range res.Order {
		if i, ok := rootIdx[c]; ok {
			cur = i
		}
		comps[cur] = append(comps[cur], c)
	}
	return comps
}

// Connected reports whether g has at most one component.
func Connected(g *core.Graph) bool {
	return len(Components(g)) <= 1
}

// traverse explores the tree rooted at root.
func (w *walker) traverse(root core.Coord) error {
	w.res.Roots = append(w.res.Roots, root)
	stack := []frame{{c: root}}

	for len(stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if w.res.Visited(top.c) {
			continue
		}

		w.res.Depth[top.c] = top.depth
		if top.hasParent {
			w.res.Parent[top.c] = top.parent
		}
		w.res.Order = append(w.res.Order, top.c)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(top.c, top.depth); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %v: %w", top.c, err)
			}
		}

		if w.opts.MaxDepth >= 0 && top.depth >= w.opts.MaxDepth {
			continue
		}
		nbrs := w.graph.Neighbors(top.c)
		for i := len(nbrs) - 1; i >= 0; i-- {
			nb := nbrs[i]
			if w.res.Visited(nb) {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb) {
				continue
			}
			stack = append(stack, frame{c: nb, parent: top.c, hasParent: true, depth: top.depth + 1})
		}
	}
	return nil
}
