// Package gridgraph provides the typed board grid and its neighbourhood
// queries. Cells of type Empty are gaps; all other cells are playable.
package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/empyreus/core"
)

// Neighbour offsets in row-major scan order (dy outer, dx inner), so that
// enumeration order matches a top-left to bottom-right sweep.
var (
	offsets8 = [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	offsets4 = [][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
)

// NewGrid lays a flat sequence of types onto a W×H grid, filling row by row
// (y outer, x inner).
// Returns ErrEmptyGrid for non-positive dimensions, ErrCellCount if
// len(types) != w*h, ErrBlankType for an empty label.
// Complexity: O(W×H).
func NewGrid(w, h int, types []TileType, opts GridOptions) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, w, h)
	}
	if len(types) != w*h {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrCellCount, w*h, len(types))
	}
	cells := make([]TileType, len(types))
	for i, t := range types {
		if t == "" {
			return nil, fmt.Errorf("%w: cell %d", ErrBlankType, i)
		}
		cells[i] = t
	}

	gg := &Grid{
		Width:  w,
		Height: h,
		Conn:   opts.Conn,
		cells:  cells,
	}
	if opts.Conn == Conn4 {
		gg.neighborOffsets = offsets4
	} else {
		gg.neighborOffsets = offsets8
	}
	return gg, nil
}

// From2D builds a Grid from rows of types, rows[y][x]. It copies the input.
func From2D(rows [][]TileType, opts GridOptions) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	flat := make([]TileType, 0, w*len(rows))
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		flat = append(flat, row...)
	}
	return NewGrid(w, len(rows), flat, opts)
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (gg *Grid) InBounds(c core.Coord) bool {
	return c.X >= 0 && c.X < gg.Width && c.Y >= 0 && c.Y < gg.Height
}

// Type returns the tile type at c; ok is false outside the grid.
func (gg *Grid) Type(c core.Coord) (TileType, bool) {
	if !gg.InBounds(c) {
		return "", false
	}
	return gg.cells[gg.index(c)], true
}

// Playable reports whether c is inside the grid and not Empty.
func (gg *Grid) Playable(c core.Coord) bool {
	t, ok := gg.Type(c)
	return ok && t.Playable()
}

// Cells returns a copy of the row-major type sequence.
func (gg *Grid) Cells() []TileType {
	out := make([]TileType, len(gg.cells))
	copy(out, gg.cells)
	return out
}

// PlayableCells lists every non-empty cell in row-major order.
func (gg *Grid) PlayableCells() []core.Coord {
	var out []core.Coord
	for i, t := range gg.cells {
		if t.Playable() {
			out = append(out, gg.Coordinate(i))
		}
	}
	return out
}

// Counts tallies cells per type.
func (gg *Grid) Counts() map[TileType]int {
	out := make(map[TileType]int)
	for _, t := range gg.cells {
		out[t]++
	}
	return out
}

// Neighbours returns the in-bounds cells adjacent to pos under gg.Conn, in
// row-major order. pos itself is not included. Out-of-range positions are
// silently omitted, so corners yield 3 cells and edges 5 under Conn8.
// Complexity: O(d).
func (gg *Grid) Neighbours(pos core.Coord) []core.Coord {
	out := make([]core.Coord, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		n := core.C(pos.X+d[0], pos.Y+d[1])
		if gg.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// NeighboursInclusive is Neighbours plus pos itself (when in bounds), i.e.
// the full 3×3 block around pos clipped to the grid, in row-major order.
func (gg *Grid) NeighboursInclusive(pos core.Coord) []core.Coord {
	out := make([]core.Coord, 0, len(gg.neighborOffsets)+1)
	inserted := !gg.InBounds(pos)
	for _, n := range gg.Neighbours(pos) {
		if !inserted && pos.Less(n) {
			out = append(out, pos)
			inserted = true
		}
		out = append(out, n)
	}
	if !inserted {
		out = append(out, pos)
	}
	return out
}

// NeighborOffsets returns the precomputed (dx, dy) offsets for gg.Conn.
func (gg *Grid) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// EuclideanDistance is the straight-line distance between two cell centres.
func EuclideanDistance(a, b core.Coord) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}

// index maps c to a row-major index: y*Width + x.
func (gg *Grid) index(c core.Coord) int {
	return c.Y*gg.Width + c.X
}

// Coordinate converts a row-major index back to a coordinate.
// Complexity: O(1).
func (gg *Grid) Coordinate(idx int) core.Coord {
	return core.C(idx%gg.Width, idx/gg.Width)
}
