// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Coord, sentinel errors, Graph struct and its constructor.

package core

import (
	"errors"
	"strconv"
	"sync"

	"github.com/zyedidia/generic/mapset"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrFrozen indicates a mutation was attempted after Freeze.
	ErrFrozen = errors.New("core: graph is frozen")
)

// Coord identifies one grid cell. X grows to the right, Y grows downwards,
// origin at the top-left cell.
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord { return Coord{X: x, Y: y} }

// String renders the coordinate as "x,y".
func (c Coord) String() string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

// Less orders coordinates row-major: by Y, then by X.
func (c Coord) Less(o Coord) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// Compare is the three-way form of Less, suitable for slices.SortFunc.
func Compare(a, b Coord) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}

// Graph is an undirected, unweighted graph over grid coordinates.
//
// adjacency[c] is the neighbour set of c; a vertex with no edges still has
// an (empty) set, which is how isolated vertices stay members of V.
// edges counts undirected edges once.
type Graph struct {
	mu sync.RWMutex // guards adjacency, edges and frozen

	adjacency map[Coord]mapset.Set[Coord]
	edges     int
	frozen    bool
}

// NewGraph creates an empty, mutable Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[Coord]mapset.Set[Coord]),
	}
}

// GraphStats is a point-in-time summary of a graph.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	// Isolated counts vertices with no incident edge.
	Isolated int
	// MaxDegree is the largest neighbour-set size.
	MaxDegree int
	Frozen    bool
}
