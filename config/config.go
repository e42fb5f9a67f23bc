// Package config loads game settings from YAML and the environment.
//
// Precedence, lowest first: Default(), the YAML file, EMPYREUS_* variables,
// then whatever the caller sets (CLI flags). Fields missing from the file
// keep their defaults; a tiles mapping, when present, replaces the default
// distribution as a whole.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/empyreus/board"
	"github.com/katalvlaran/empyreus/builder"
	"github.com/katalvlaran/empyreus/gridgraph"
	"github.com/katalvlaran/empyreus/layout"
	"github.com/katalvlaran/empyreus/player"
)

// Pair is a [x, y] pixel pair in YAML.
type Pair [2]int

// Board holds the board settings.
type Board struct {
	Width        int  `yaml:"width"`
	Height       int  `yaml:"height"`
	TileBase     Pair `yaml:"tile_base"`
	TileBorder   Pair `yaml:"tile_border"`
	Window       Pair `yaml:"window"`
	HopBound     int  `yaml:"hop_bound"`
	Connectivity int  `yaml:"connectivity"` // 8 or 4
	Trade        struct {
		Taken int `yaml:"taken"`
		Given int `yaml:"given"`
	} `yaml:"trade"`
}

// Product is one shop entry.
type Product struct {
	Name    string         `yaml:"name"`
	Cost    map[string]int `yaml:"cost"`
	Score   int            `yaml:"score,omitempty"`
	Actions int            `yaml:"actions,omitempty"`
}

// Config holds every game setting.
type Config struct {
	Seed      int64     `yaml:"seed"`
	Board     Board     `yaml:"board"`
	Tiles     Tiles     `yaml:"tiles"`
	Resources []string  `yaml:"resources"`
	Players   []string  `yaml:"players"`
	WinScore  int       `yaml:"win_score"`
	Products  []Product `yaml:"products"`
}

// Default returns the standard game: a 6×6 board, two players, five
// resources and the mining-tool shop.
func Default() *Config {
	c := &Config{
		Seed: 1,
		Board: Board{
			Width:        board.DefaultWidth,
			Height:       board.DefaultHeight,
			TileBase:     Pair{board.DefaultTileBase, board.DefaultTileBase},
			TileBorder:   Pair{board.DefaultTileBorder, board.DefaultTileBorder},
			Window:       Pair{board.DefaultWindowW, board.DefaultWindowH},
			HopBound:     builder.DefaultHopBound,
			Connectivity: 8,
		},
		Tiles:     Tiles(board.DefaultTiles()),
		Resources: board.DefaultResources(),
		Players:   []string{"Aloysius", "Bartholomew"},
		WinScore:  player.DefaultWinScore,
		Products: []Product{
			{Name: "pickaxe", Cost: map[string]int{"ore": 3}, Score: 1},
			{Name: "shovel", Cost: map[string]int{"carbon": 2, "ice": 2}, Score: 1},
			{Name: "drill", Cost: map[string]int{"ore": 2, "uranium": 2}, Actions: 1},
			{Name: "jackhammer", Cost: map[string]int{"helium": 3, "uranium": 1}, Score: 2},
			{Name: "excavator", Cost: map[string]int{"carbon": 3, "helium": 2, "ice": 2, "ore": 3}, Score: 2, Actions: 1},
		},
	}
	c.Board.Trade.Taken = board.DefaultAmountTaken
	c.Board.Trade.Given = board.DefaultAmountGiven
	return c
}

// Parse overlays a YAML document onto the defaults. Unknown keys are errors.
func Parse(data []byte) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		if errors.Is(err, io.EOF) {
			return c, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return c, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BoardConfig translates the settings into a board.Config.
func (c *Config) BoardConfig() board.Config {
	conn := gridgraph.Conn8
	if c.Board.Connectivity == 4 {
		conn = gridgraph.Conn4
	}
	return board.Config{
		Width:       c.Board.Width,
		Height:      c.Board.Height,
		TileBase:    board.Vec{X: c.Board.TileBase[0], Y: c.Board.TileBase[1]},
		TileBorder:  board.Vec{X: c.Board.TileBorder[0], Y: c.Board.TileBorder[1]},
		Window:      board.Vec{X: c.Board.Window[0], Y: c.Board.Window[1]},
		Tiles:       layout.Request(c.Tiles),
		Resources:   append([]string(nil), c.Resources...),
		AmountTaken: c.Board.Trade.Taken,
		AmountGiven: c.Board.Trade.Given,
		HopBound:    c.Board.HopBound,
		Conn:        conn,
	}
}

// Shop builds the shop from the product list.
func (c *Config) Shop() *player.Shop {
	products := make([]player.Product, len(c.Products))
	for i, p := range c.Products {
		cost := make(map[string]int, len(p.Cost))
		for k, v := range p.Cost {
			cost[k] = v
		}
		products[i] = player.Product{
			Name:   p.Name,
			Cost:   cost,
			Effect: player.Effect{Score: p.Score, ActionsPerTurn: p.Actions},
		}
	}
	return player.NewShop(products...)
}

// Validate checks the whole configuration, board first.
func (c *Config) Validate() error {
	if c.Board.Connectivity != 4 && c.Board.Connectivity != 8 {
		return fmt.Errorf("%w: connectivity must be 4 or 8, got %d", ErrSyntax, c.Board.Connectivity)
	}
	if err := c.BoardConfig().Validate(); err != nil {
		return err
	}
	if len(c.Players) == 0 {
		return ErrNoPlayers
	}
	if c.WinScore <= 0 {
		return fmt.Errorf("%w: %d", ErrBadWinScore, c.WinScore)
	}
	known := make(map[string]bool, len(c.Resources))
	for _, r := range c.Resources {
		known[r] = true
	}
	for i, p := range c.Products {
		if p.Name == "" {
			return fmt.Errorf("%w: product %d has no name", ErrBadProduct, i+1)
		}
		for r, n := range p.Cost {
			if !known[r] || n < 1 {
				return fmt.Errorf("%w: %s costs %d %q", ErrBadProduct, p.Name, n, r)
			}
		}
	}
	return nil
}
