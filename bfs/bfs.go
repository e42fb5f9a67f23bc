// Package bfs provides breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/empyreus/core"
)

// errTargetFound stops the walker once the HopDistance target is enqueued.
var errTargetFound = errors.New("bfs: target found")

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	c     core.Coord
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph  *core.Graph
	opts   BFSOptions
	ctx    context.Context
	queue  []queueItem
	res    *BFSResult
	target *core.Coord
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation, or any
// wrapped OnVisit error.
func BFS(g *core.Graph, start core.Coord, opts ...Option) (*BFSResult, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}
	return w.res, w.loop()
}

// HopDistance returns the number of edges on a shortest start→end path,
// 0 when start == end, and Unreachable when end cannot be reached (including
// when either vertex is missing, the graph is nil, or end lies beyond a
// WithMaxDepth limit). The search stops as soon as end is discovered.
//
// Complexity: O(V + E) worst case.
func HopDistance(g *core.Graph, start, end core.Coord, opts ...Option) int {
	if g == nil || !g.HasVertex(start) || !g.HasVertex(end) {
		return Unreachable
	}
	if start == end {
		return 0
	}
	w, err := newWalker(g, start, opts)
	if err != nil {
		return Unreachable
	}
	w.target = &end
	if err = w.loop(); !errors.Is(err, errTargetFound) {
		return Unreachable
	}
	return w.res.Depth[end]
}

func newWalker(g *core.Graph, start core.Coord, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]core.Coord, 0, n),
			Depth:  make(map[core.Coord]int, n),
			Parent: make(map[core.Coord]core.Coord, n),
		},
	}
	w.enqueue(start, 0, nil)

	return w, nil
}

// enqueue marks c discovered at depth d, records its parent and queues it.
func (w *walker) enqueue(c core.Coord, d int, parent *core.Coord) {
	w.res.Depth[c] = d
	if parent != nil {
		w.res.Parent[c] = *parent
	}
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, queueItem{c: c, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.c, item.depth)

		w.res.Order = append(w.res.Order, item.c)
		if err := w.opts.OnVisit(item.c, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.c, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range w.graph.Neighbors(item.c) {
		if !w.opts.FilterNeighbor(item.c, nbr) {
			continue
		}
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		w.enqueue(nbr, next, &item.c)
		if w.target != nil && nbr == *w.target {
			return errTargetFound
		}
	}
	return nil
}
