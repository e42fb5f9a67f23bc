// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-order hooks, depth limiting, neighbor filtering
// and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/empyreus/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(c core.Coord, depth int) error

	// MaxDepth, if non-negative, limits traversal depth. 0 visits only the root.
	// Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before it is pushed.
	FilterNeighbor func(c core.Coord) bool

	// FullTraversal restarts from every unvisited vertex in row-major order,
	// producing a DFS forest.
	FullTraversal bool
}

// DefaultOptions returns background context, no hooks, no depth limit,
// no filtering and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. nil keeps Background.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(c core.Coord, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(c core.Coord) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal enables forest traversal over every component.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
//
// Order is pre-order (discovery order). Roots lists the vertex each tree of
// the forest started from; in single-source mode it holds only the start.
type DFSResult struct {
	Order  []core.Coord
	Depth  map[core.Coord]int
	Parent map[core.Coord]core.Coord
	Roots  []core.Coord
}

// Visited reports whether c was discovered.
func (r *DFSResult) Visited(c core.Coord) bool {
	_, ok := r.Depth[c]
	return ok
}
