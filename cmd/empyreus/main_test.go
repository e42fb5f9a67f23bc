package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/empyreus/gridgraph"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGlyph(t *testing.T) {
	cases := map[gridgraph.TileType]rune{
		gridgraph.Empty:  '.',
		"trader_A":       '$',
		"asteroid_small": '*',
		"asteroid":       '*',
		"planet_ore":     'O',
		"planet_helium":  'H',
		"nebula":         '?',
	}
	for tt, want := range cases {
		assert.Equal(t, string(want), string(glyph(tt)), tt)
	}
}

func TestGen_DefaultBoard(t *testing.T) {
	out, err := run(t, "gen", "--verify")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 1+6)
	assert.True(t, strings.HasPrefix(lines[0], "# board 1 seed=1 "))
	dots := 0
	for _, row := range lines[1:7] {
		assert.Len(t, strings.Fields(row), 6)
		dots += strings.Count(row, ".")
	}
	assert.Equal(t, 15, dots)
	assert.Equal(t, 2, strings.Count(out, "trader "))
}

func TestGen_BatchIsReproducible(t *testing.T) {
	a, err := run(t, "gen", "-n", "3", "--seed", "11", "--workers", "3")
	require.NoError(t, err)
	b, err := run(t, "gen", "-n", "3", "--seed", "11", "--workers", "1")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "# board 3 seed=13 ")
}

func TestGen_Edges(t *testing.T) {
	out, err := run(t, "gen", "--edges")
	require.NoError(t, err)
	assert.Equal(t, 21, strings.Count(out, " -> "))
}

func TestGen_BadFlags(t *testing.T) {
	_, err := run(t, "gen", "-n", "0")
	assert.Error(t, err)

	_, err = run(t, "gen", "--width", "2", "--height", "2")
	assert.Error(t, err, "default tiles do not fit on 2x2")
}

func TestSimulate_Quiet(t *testing.T) {
	out, err := run(t, "simulate", "--quiet", "--turns", "40")
	require.NoError(t, err)
	assert.Contains(t, out, "Aloysius")
	assert.Contains(t, out, "Bartholomew")
	assert.NotContains(t, out, "turn 1:")

	again, err := run(t, "simulate", "--quiet", "--turns", "40")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestSimulate_Verbose(t *testing.T) {
	out, err := run(t, "simulate", "--turns", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "turn 1: ")
}

func TestConfig_DumpAndReload(t *testing.T) {
	out, err := run(t, "config", "--seed", "99", "--width", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "seed: 99")

	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o644))

	again, err := run(t, "config", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}
