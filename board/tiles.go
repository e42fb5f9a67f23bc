package board

import (
	"math/rand"

	"github.com/katalvlaran/empyreus/core"
	"github.com/katalvlaran/empyreus/gridgraph"
)

// Trade holds a trading station's terms: it takes AmountTaken of Taken and
// gives AmountGiven resources drawn at random.
type Trade struct {
	Taken       string
	AmountTaken int
	AmountGiven int
}

// TypeAt returns the tile type of c, or false when c is off the board.
func (b *Board) TypeAt(c core.Coord) (gridgraph.TileType, bool) {
	return b.grid.Type(c)
}

// ResourceAt returns the resource a ship collects by landing on c: the type
// suffix when it names a configured resource. Trading stations, asteroids
// and empty space yield nothing.
func (b *Board) ResourceAt(c core.Coord) (string, bool) {
	t, ok := b.grid.Type(c)
	if !ok || t.Trader() {
		return "", false
	}
	if r := t.Suffix(); b.resources[r] {
		return r, true
	}
	return "", false
}

// TradeAt returns the terms of the trading station at c.
func (b *Board) TradeAt(c core.Coord) (Trade, bool) {
	taken, ok := b.trades[c]
	if !ok {
		return Trade{}, false
	}
	return Trade{Taken: taken, AmountTaken: b.cfg.AmountTaken, AmountGiven: b.cfg.AmountGiven}, true
}

// RandomNode returns a vertex chosen uniformly from the graph, or false when
// the board has no playable cell.
func (b *Board) RandomNode(rng *rand.Rand) (core.Coord, bool) {
	nodes := b.graph.Vertices()
	if len(nodes) == 0 {
		return core.Coord{}, false
	}
	return nodes[rng.Intn(len(nodes))], true
}
