package main

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/katalvlaran/empyreus/board"
	"github.com/katalvlaran/empyreus/core"
	"github.com/katalvlaran/empyreus/gridgraph"
)

// glyph is the one-character map symbol of a tile type:
// '.' empty, '$' trader, '*' asteroid, a planet's resource initial in upper
// case, '?' anything else.
func glyph(t gridgraph.TileType) rune {
	switch {
	case !t.Playable():
		return '.'
	case t.Trader():
		return '$'
	case t.Behaviour() == "asteroid":
		return '*'
	case t.Behaviour() == "planet" && t.Suffix() != "":
		return unicode.ToUpper(rune(t.Suffix()[0]))
	default:
		return '?'
	}
}

// renderBoard draws the grid row by row, followed by the trading stations
// and, when edges is set, the adjacency list.
func renderBoard(w io.Writer, b *board.Board, edges bool) error {
	gg := b.Grid()
	var sb strings.Builder
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			t, _ := gg.Type(core.C(x, y))
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(glyph(t))
		}
		sb.WriteByte('\n')
	}
	for _, c := range gg.PlayableCells() {
		if tr, ok := b.TradeAt(c); ok {
			fmt.Fprintf(&sb, "trader %v takes %d %s, gives %d\n", c, tr.AmountTaken, tr.Taken, tr.AmountGiven)
		}
	}
	if edges {
		for _, c := range b.Graph().Vertices() {
			fmt.Fprintf(&sb, "%v -> %v\n", c, b.Neighbours(c))
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
