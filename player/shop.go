package player

import (
	"fmt"
	"slices"
	"strings"
)

// Effect is what a product does for its buyer.
type Effect struct {
	Score          int
	ActionsPerTurn int
}

// Describe renders the effect for a shop listing, e.g. "+1 score, +1 action per turn".
func (e Effect) Describe() string {
	var parts []string
	if e.Score != 0 {
		parts = append(parts, fmt.Sprintf("%+d score", e.Score))
	}
	if e.ActionsPerTurn != 0 {
		parts = append(parts, fmt.Sprintf("%+d action per turn", e.ActionsPerTurn))
	}
	if len(parts) == 0 {
		return "no effect"
	}
	return strings.Join(parts, ", ")
}

// Product is something the shop sells.
type Product struct {
	Name   string
	Cost   map[string]int
	Effect Effect
}

// CostString renders the cost in resource order, e.g. "2 carbon, 3 ore".
func (pr Product) CostString() string {
	keys := make([]string, 0, len(pr.Cost))
	for k := range pr.Cost {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%d %s", pr.Cost[k], k)
	}
	return strings.Join(parts, ", ")
}

// Shop is an ordered product list. Products are numbered from 1 in listings.
type Shop struct {
	products []Product
}

// NewShop returns a shop selling products in the given order.
func NewShop(products ...Product) *Shop {
	return &Shop{products: slices.Clone(products)}
}

// Products returns the product list.
func (s *Shop) Products() []Product { return slices.Clone(s.products) }

// Product returns the product listed as number n (1-based).
func (s *Shop) Product(n int) (Product, bool) {
	if n < 1 || n > len(s.products) {
		return Product{}, false
	}
	return s.products[n-1], true
}

// BuyResult is the outcome of Buy.
type BuyResult int

const (
	BuyOK BuyResult = iota
	// BuyWrongLocation: purchases happen only on trading stations.
	BuyWrongLocation
	BuyInsufficient
	BuyUnknownProduct
)

func (r BuyResult) String() string {
	switch r {
	case BuyOK:
		return "ok"
	case BuyWrongLocation:
		return "not on a trader"
	case BuyInsufficient:
		return "insufficient resources"
	case BuyUnknownProduct:
		return "unknown product"
	default:
		return "unknown"
	}
}

// CanAfford reports whether the player holds the full cost of pr.
func (p *Player) CanAfford(pr Product) bool {
	for r, n := range pr.Cost {
		if p.resources[r] < n {
			return false
		}
	}
	return true
}

// Buy purchases product number n from s. Buying does not cost an action.
func (p *Player) Buy(s *Shop, n int) BuyResult {
	pr, ok := s.Product(n)
	if !ok {
		p.status = fmt.Sprintf("No product %d.", n)
		return BuyUnknownProduct
	}
	if _, ok := p.board.TradeAt(p.pos); !ok {
		p.status = "Insufficient location, must be on a trader tile."
		return BuyWrongLocation
	}
	if !p.CanAfford(pr) {
		p.status = fmt.Sprintf("Insufficient resources for product %d.", n)
		return BuyInsufficient
	}

	for r, c := range pr.Cost {
		p.resources[r] -= c
	}
	p.score += pr.Effect.Score
	p.actionsPerTurn += pr.Effect.ActionsPerTurn
	p.status = fmt.Sprintf("Product %d purchased successfully.", n)
	return BuyOK
}
