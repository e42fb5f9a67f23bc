package player

import "github.com/katalvlaran/empyreus/core"

// MoveResult is the outcome of Move.
type MoveResult int

const (
	// MoveOK: the player moved.
	MoveOK MoveResult = iota
	// MoveNoEdge: no edge joins the two cells; nothing changed.
	MoveNoEdge
	// MoveNoActions: the player has no actions left this turn; nothing changed.
	MoveNoActions
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveNoEdge:
		return "no edge"
	case MoveNoActions:
		return "no actions left"
	default:
		return "unknown"
	}
}

// Move takes the player from from to target when the board graph has an edge
// between them. A successful move costs one action and collects one unit of
// the resource target yields, if any.
func (p *Player) Move(target, from core.Coord) MoveResult {
	if p.actionsLeft <= 0 {
		return MoveNoActions
	}
	if !adjacent(p.board.Neighbours(from), target) {
		return MoveNoEdge
	}

	p.actionsLeft--
	p.pos = target
	if r, ok := p.board.ResourceAt(target); ok {
		p.resources[r]++
	}
	return MoveOK
}

func adjacent(nbrs []core.Coord, c core.Coord) bool {
	for _, n := range nbrs {
		if n == c {
			return true
		}
	}
	return false
}
