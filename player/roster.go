package player

import (
	"slices"

	"github.com/google/uuid"
)

// DefaultWinScore is the score at which a player wins.
const DefaultWinScore = 5

// Roster is the cyclic turn order. Players take turns in the order they were
// added; Cycle wraps from the last back to the first.
type Roster struct {
	players []*Player
	cur     int
	turns   int
}

// Add appends p to the turn order. The first player added takes the first turn.
func (r *Roster) Add(p *Player) {
	r.players = append(r.players, p)
}

// Remove drops the player with the given id. If it was that player's turn,
// the turn passes to the next player in order.
func (r *Roster) Remove(id uuid.UUID) bool {
	i := slices.IndexFunc(r.players, func(p *Player) bool { return p.ID() == id })
	if i < 0 {
		return false
	}
	r.players = slices.Delete(r.players, i, i+1)
	switch {
	case len(r.players) == 0:
		r.cur = 0
	case i < r.cur:
		r.cur--
	case r.cur >= len(r.players):
		r.cur = 0
	}
	return true
}

// Clear removes every player and resets the turn counter.
func (r *Roster) Clear() {
	r.players, r.cur, r.turns = nil, 0, 0
}

// Current returns the player whose turn it is, or nil if the roster is empty.
func (r *Roster) Current() *Player {
	if len(r.players) == 0 {
		return nil
	}
	return r.players[r.cur]
}

// Cycle advances n turns and refills the actions of whoever is then current.
func (r *Roster) Cycle(n int) *Player {
	if len(r.players) == 0 {
		return nil
	}
	for i := 0; i < n; i++ {
		r.turns++
		r.cur = (r.cur + 1) % len(r.players)
		r.players[r.cur].ResetActions()
	}
	return r.players[r.cur]
}

// List returns the players in turn order.
func (r *Roster) List() []*Player { return slices.Clone(r.players) }

// Len returns the number of players.
func (r *Roster) Len() int { return len(r.players) }

// TurnsTaken counts the turns advanced by Cycle since the last Clear.
func (r *Roster) TurnsTaken() int { return r.turns }

// Leader returns the highest scorer; among equals the one added last.
func (r *Roster) Leader() *Player {
	var best *Player
	for _, p := range r.players {
		if best == nil || p.Score() >= best.Score() {
			best = p
		}
	}
	return best
}

// Winner returns the leader once their score reaches threshold.
func (r *Roster) Winner(threshold int) (*Player, bool) {
	if l := r.Leader(); l != nil && l.Score() >= threshold {
		return l, true
	}
	return nil, false
}
