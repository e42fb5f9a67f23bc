package board

import (
	"fmt"

	"github.com/katalvlaran/empyreus/builder"
	"github.com/katalvlaran/empyreus/gridgraph"
	"github.com/katalvlaran/empyreus/layout"
)

// Vec is an integer pixel pair.
type Vec struct {
	X, Y int
}

// Config describes one board.
type Config struct {
	// Width and Height are the board dimensions in cells.
	Width, Height int

	// TileBase and TileBorder are the pixel size of a tile sprite and the gap
	// around it. Their sum is the tile pitch.
	TileBase, TileBorder Vec
	// Window is the pixel size of the host window; the board is centred in it.
	Window Vec

	// Tiles is the tile distribution, in insertion order.
	Tiles layout.Request
	// Resources names the collectable resources. A planet yields a resource
	// when its label suffix is one of them ("planet_ore" → "ore").
	Resources []string

	// AmountTaken and AmountGiven are the fixed terms of every trading station.
	AmountTaken, AmountGiven int

	// HopBound is the builder's hop bound between adjacent playable cells.
	HopBound int
	// Conn is the grid adjacency. The default, Conn8, is the board's own.
	Conn gridgraph.Connectivity
}

// Default terms and sizes.
const (
	DefaultWidth       = 6
	DefaultHeight      = 6
	DefaultTileBase    = 72
	DefaultTileBorder  = 8
	DefaultWindowW     = 1024
	DefaultWindowH     = 640
	DefaultAmountTaken = 5
	DefaultAmountGiven = 4
)

// DefaultResources lists the resources of the standard game.
func DefaultResources() []string {
	return []string{"carbon", "helium", "ice", "ore", "uranium"}
}

// DefaultTiles is the standard 6×6 distribution: 15 planets, 4 asteroids,
// 2 trading stations and empty space for the rest.
func DefaultTiles() layout.Request {
	return layout.Request{
		{Type: "planet_carbon", Count: 3},
		{Type: "planet_helium", Count: 3},
		{Type: "planet_ice", Count: 3},
		{Type: "planet_ore", Count: 3},
		{Type: "planet_uranium", Count: 3},
		{Type: "asteroid", Count: 2},
		{Type: "asteroid_small", Count: 2},
		{Type: "trader_A", Count: 1},
		{Type: "trader_B", Count: 1},
		{Type: gridgraph.Empty, Remainder: true},
	}
}

// DefaultConfig returns the standard board.
func DefaultConfig() Config {
	return Config{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		TileBase:    Vec{DefaultTileBase, DefaultTileBase},
		TileBorder:  Vec{DefaultTileBorder, DefaultTileBorder},
		Window:      Vec{DefaultWindowW, DefaultWindowH},
		Tiles:       DefaultTiles(),
		Resources:   DefaultResources(),
		AmountTaken: DefaultAmountTaken,
		AmountGiven: DefaultAmountGiven,
		HopBound:    builder.DefaultHopBound,
		Conn:        gridgraph.Conn8,
	}
}

// Validate checks everything New needs before it draws a single random
// number. Tile distribution problems surface with layout's sentinels.
func (c Config) Validate() error {
	if c.TileBase.X <= 0 || c.TileBase.Y <= 0 || c.TileBorder.X < 0 || c.TileBorder.Y < 0 {
		return fmt.Errorf("%w: tile base %v, border %v", ErrBadGeometry, c.TileBase, c.TileBorder)
	}
	if c.Window.X <= 0 || c.Window.Y <= 0 {
		return fmt.Errorf("%w: window %v", ErrBadGeometry, c.Window)
	}
	if c.AmountTaken <= 0 || c.AmountGiven < 0 {
		return fmt.Errorf("%w: takes %d, gives %d", ErrBadTrade, c.AmountTaken, c.AmountGiven)
	}
	if c.HopBound < 1 {
		return fmt.Errorf("%w: %d", ErrBadHopBound, c.HopBound)
	}
	seen := make(map[string]bool, len(c.Resources))
	for _, r := range c.Resources {
		if r == "" || seen[r] {
			return fmt.Errorf("%w: %q", ErrBadResource, r)
		}
		seen[r] = true
	}
	if _, err := c.Tiles.Counts(c.Width, c.Height); err != nil {
		return err
	}
	return nil
}
