package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/empyreus/board"
	"github.com/katalvlaran/empyreus/gridgraph"
	"github.com/katalvlaran/empyreus/layout"
)

func TestDefault_Valid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, board.DefaultConfig(), c.BoardConfig())
	assert.Len(t, c.Shop().Products(), 5)
}

func TestParse_Empty(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "small.yaml"))
	require.NoError(t, err)

	assert.Equal(t, int64(42), c.Seed)
	assert.Equal(t, 4, c.Board.Width)
	assert.Equal(t, 2, c.Board.HopBound)
	assert.Equal(t, Pair{72, 72}, c.Board.TileBase, "unset keys keep defaults")
	assert.Equal(t, board.DefaultResources(), c.Resources)
	assert.Equal(t, []string{"Cuthbert", "Desmond", "Ezekiel"}, c.Players)

	// order as written, remainder in third place
	assert.Equal(t, Tiles{
		{Type: "trader_A", Count: 1},
		{Type: "planet_ore", Count: 4},
		{Type: gridgraph.Empty, Remainder: true},
		{Type: "asteroid", Count: 2},
	}, c.Tiles)

	require.NoError(t, c.Validate())
	b, err := board.New(c.BoardConfig(), board.WithSeed(c.Seed))
	require.NoError(t, err)
	assert.Equal(t, 5, b.Grid().Counts()[gridgraph.Empty])
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.yaml"))
	assert.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"UnknownKey":   "colour: red\n",
		"TilesList":    "tiles: [a, b]\n",
		"BadCount":     "tiles:\n  planet_ore: lots\n",
		"NestedCount":  "tiles:\n  planet_ore: {n: 1}\n",
		"WrongPairLen": "board:\n  window: [1, 2, 3]\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrSyntax)
		})
	}
}

func TestParse_RemainderMinusOne(t *testing.T) {
	c, err := Parse([]byte("tiles:\n  planet_ice: 2\n  empty: -1\n"))
	require.NoError(t, err)
	assert.True(t, c.Tiles[1].Remainder)
}

func TestMarshal_RoundTrip(t *testing.T) {
	want := Default()
	want.Tiles = Tiles{{Type: gridgraph.Empty, Remainder: true}, {Type: "planet_ore", Count: 1}}
	data, err := want.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "empty: remainder")

	got, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvWidth:    "8",
		EnvHeight:   "5",
		EnvSeed:     "-7",
		EnvHopBound: "2",
	}
	c := Default()
	require.NoError(t, c.applyEnv(func(k string) string { return env[k] }))
	assert.Equal(t, 8, c.Board.Width)
	assert.Equal(t, 5, c.Board.Height)
	assert.Equal(t, int64(-7), c.Seed)
	assert.Equal(t, 2, c.Board.HopBound)

	c = Default()
	err := c.applyEnv(func(k string) string {
		if k == EnvHeight {
			return "tall"
		}
		return ""
	})
	assert.ErrorIs(t, err, ErrBadEnv)

	t.Setenv(EnvWidth, "9")
	c = Default()
	require.NoError(t, c.ApplyEnv())
	assert.Equal(t, 9, c.Board.Width)
}

func TestValidate(t *testing.T) {
	overflow := Default()
	overflow.Board.Width, overflow.Board.Height = 3, 3
	overflow.Tiles = Tiles{{Type: "planet_ore", Count: 10}}

	players := Default()
	players.Players = nil

	win := Default()
	win.WinScore = 0

	product := Default()
	product.Products = append(product.Products, Product{Name: "laser", Cost: map[string]int{"gold": 1}})

	conn := Default()
	conn.Board.Connectivity = 6

	cases := []struct {
		name string
		c    *Config
		err  error
	}{
		{"CapacityOverflow", overflow, layout.ErrCapacityExceeded},
		{"NoPlayers", players, ErrNoPlayers},
		{"WinScore", win, ErrBadWinScore},
		{"UnknownResource", product, ErrBadProduct},
		{"Connectivity", conn, ErrSyntax},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.c.Validate(), tc.err)
		})
	}
}

func TestBoardConfig_Conn4(t *testing.T) {
	c := Default()
	c.Board.Connectivity = 4
	assert.Equal(t, gridgraph.Conn4, c.BoardConfig().Conn)
}
