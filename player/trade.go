package player

import (
	"fmt"
	"math/rand"
)

// TradeResult is the outcome of Trade.
type TradeResult int

const (
	// TradeOK: the station took its due and paid out.
	TradeOK TradeResult = iota
	// TradeInsufficient: the player could not pay; the turn still ends.
	TradeInsufficient
	// TradeNotTrader: the player is not on a trading station; nothing changed.
	TradeNotTrader
)

func (r TradeResult) String() string {
	switch r {
	case TradeOK:
		return "ok"
	case TradeInsufficient:
		return "insufficient resources"
	case TradeNotTrader:
		return "not on a trader"
	default:
		return "unknown"
	}
}

// Trade exchanges resources with the station under the player. The station
// takes AmountTaken of its resource and gives AmountGiven units, each of a
// resource drawn from rng. Any attempt on a station, paid or not, uses up
// the rest of the turn.
func (p *Player) Trade(rng *rand.Rand) TradeResult {
	tr, ok := p.board.TradeAt(p.pos)
	if !ok {
		return TradeNotTrader
	}
	p.actionsLeft = 0

	if p.resources[tr.Taken] < tr.AmountTaken {
		p.status = fmt.Sprintf("Not enough %s for trade (needs %d)", tr.Taken, tr.AmountTaken)
		return TradeInsufficient
	}
	p.resources[tr.Taken] -= tr.AmountTaken
	if len(p.order) > 0 {
		for i := 0; i < tr.AmountGiven; i++ {
			p.resources[p.order[rng.Intn(len(p.order))]]++
		}
	}
	p.status = fmt.Sprintf("Trade of %d %s successful.", tr.AmountTaken, tr.Taken)
	return TradeOK
}
