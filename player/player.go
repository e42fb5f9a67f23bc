package player

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/empyreus/board"
	"github.com/katalvlaran/empyreus/core"
)

// DefaultActionsPerTurn is the number of actions a new player gets each turn.
const DefaultActionsPerTurn = 2

// ErrNoStart indicates a board without any playable cell to start on.
var ErrNoStart = errors.New("player: board has no playable cell")

// Board is the read-only view of a board a player needs.
type Board interface {
	Neighbours(c core.Coord) []core.Coord
	ResourceAt(c core.Coord) (string, bool)
	TradeAt(c core.Coord) (board.Trade, bool)
	RandomNode(rng *rand.Rand) (core.Coord, bool)
	Resources() []string
}

// Colour is an RGB triple.
type Colour struct {
	R, G, B uint8
}

// LightColour draws a random colour with every channel in [128, 255], which
// stays readable on a dark background.
func LightColour(rng *rand.Rand) Colour {
	return Colour{
		R: uint8(128 + rng.Intn(128)),
		G: uint8(128 + rng.Intn(128)),
		B: uint8(128 + rng.Intn(128)),
	}
}

// Player is one ship. It is not safe for concurrent use.
type Player struct {
	id     uuid.UUID
	name   string
	colour Colour
	board  Board

	pos       core.Coord
	order     []string
	resources map[string]int

	score          int
	actionsPerTurn int
	actionsLeft    int
	status         string
}

// New places a player on a random playable cell of b, with nothing in the
// hold and a full set of actions.
func New(name string, colour Colour, b Board, rng *rand.Rand) (*Player, error) {
	start, ok := b.RandomNode(rng)
	if !ok {
		return nil, fmt.Errorf("%w: placing %q", ErrNoStart, name)
	}
	order := b.Resources()
	p := &Player{
		id:             uuid.New(),
		name:           name,
		colour:         colour,
		board:          b,
		pos:            start,
		order:          order,
		resources:      make(map[string]int, len(order)),
		actionsPerTurn: DefaultActionsPerTurn,
		actionsLeft:    DefaultActionsPerTurn,
	}
	for _, r := range order {
		p.resources[r] = 0
	}
	return p, nil
}

// ID returns the player's unique id.
func (p *Player) ID() uuid.UUID { return p.id }

// Name returns the display name.
func (p *Player) Name() string { return p.name }

// Colour returns the ship colour.
func (p *Player) Colour() Colour { return p.colour }

// Pos returns the cell the ship is on.
func (p *Player) Pos() core.Coord { return p.pos }

// Score returns the current score.
func (p *Player) Score() int { return p.score }

// ActionsLeft returns the actions remaining this turn.
func (p *Player) ActionsLeft() int { return p.actionsLeft }

// ActionsPerTurn returns the actions granted at the start of each turn.
func (p *Player) ActionsPerTurn() int { return p.actionsPerTurn }

// Status is the text describing the outcome of the last trade or purchase.
func (p *Player) Status() string { return p.status }

// Resource returns how much of r the player holds.
func (p *Player) Resource(r string) int { return p.resources[r] }

// Resources returns a copy of the player's holdings.
func (p *Player) Resources() map[string]int {
	out := make(map[string]int, len(p.resources))
	for k, v := range p.resources {
		out[k] = v
	}
	return out
}

// ResetActions refills the player's actions for a new turn.
func (p *Player) ResetActions() { p.actionsLeft = p.actionsPerTurn }

// AddActionsPerTurn changes the per-turn action allowance by n.
func (p *Player) AddActionsPerTurn(n int) { p.actionsPerTurn += n }

// AddScore changes the score by n.
func (p *Player) AddScore(n int) { p.score += n }

func (p *Player) String() string {
	return fmt.Sprintf("%s@%v score=%d actions=%d/%d", p.name, p.pos, p.score, p.actionsLeft, p.actionsPerTurn)
}
