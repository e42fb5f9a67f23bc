// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/empyreus.
package gridgraph

import (
	"strings"

	"github.com/katalvlaran/empyreus/core"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn8 uses 8-directional connectivity: every cell within Chebyshev distance 1.
	Conn8 Connectivity = iota
	// Conn4 uses 4-directional connectivity: N, W, E, S.
	Conn4
)

// TileType is a cell label such as "empty", "planet_ore", "asteroid_small"
// or "trader_A".
type TileType string

// Empty marks a non-playable gap in the board.
const Empty TileType = "empty"

// Playable reports whether cells of this type are graph nodes.
func (t TileType) Playable() bool { return t != Empty }

// Behaviour returns the label prefix before the first underscore:
// "planet" for "planet_ore", "trader" for "trader_A", "asteroid" for both
// asteroid sizes.
func (t TileType) Behaviour() string {
	s := string(t)
	if i := strings.IndexByte(s, '_'); i >= 0 {
		return s[:i]
	}
	return s
}

// Trader reports whether the tile is a trading station ("trader_*").
func (t TileType) Trader() bool { return t.Behaviour() == "trader" }

// Suffix returns the label part after the last underscore, or "" if none.
func (t TileType) Suffix() string {
	s := string(t)
	if i := strings.LastIndexByte(s, '_'); i >= 0 {
		return s[i+1:]
	}
	return ""
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with Conn8, the board's native adjacency.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn8}
}

// Grid is a W×H board of typed cells. It is immutable once built.
// cells[y*Width+x] holds the type at (x, y).
type Grid struct {
	Width, Height   int
	Conn            Connectivity
	cells           []TileType
	neighborOffsets [][2]int
}

// Island is one connected group of playable cells found by Islands.
//
// Members lists cells in discovery order; Members[0] is the cell the scan
// started from. Tree holds one (discoverer, discovered) pair per member
// except the first, forming a spanning tree of the island.
type Island struct {
	Members []core.Coord
	Tree    [][2]core.Coord
}

// Size returns the number of cells in the island.
func (is Island) Size() int { return len(is.Members) }
