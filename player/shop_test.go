package player_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/empyreus/board"
	"github.com/katalvlaran/empyreus/core"
	"github.com/katalvlaran/empyreus/player"
)

func TestBuy(t *testing.T) {
	fb := newFake([2]core.Coord{core.C(0, 0), core.C(1, 0)})
	fb.yields[core.C(0, 0)] = "ore"
	fb.yields[core.C(1, 0)] = "ore"
	fb.trades[core.C(1, 0)] = board.Trade{Taken: "carbon", AmountTaken: 5, AmountGiven: 4}
	p := newPlayer(t, fb)

	shop := player.NewShop(
		player.Product{Name: "pickaxe", Cost: map[string]int{"ore": 2}, Effect: player.Effect{Score: 1}},
		player.Product{Name: "drill", Cost: map[string]int{"ore": 9}, Effect: player.Effect{ActionsPerTurn: 1}},
	)

	assert.Equal(t, player.BuyWrongLocation, p.Buy(shop, 1))
	assert.Equal(t, "Insufficient location, must be on a trader tile.", p.Status())

	require.Equal(t, player.MoveOK, p.Move(core.C(1, 0), core.C(0, 0)))
	require.Equal(t, player.MoveOK, p.Move(core.C(0, 0), core.C(1, 0)))
	p.ResetActions()
	require.Equal(t, player.MoveOK, p.Move(core.C(1, 0), core.C(0, 0)))
	require.Equal(t, 3, p.Resource("ore"))

	assert.Equal(t, player.BuyInsufficient, p.Buy(shop, 2))
	assert.Equal(t, "Insufficient resources for product 2.", p.Status())
	assert.Equal(t, player.BuyUnknownProduct, p.Buy(shop, 3))

	require.Equal(t, player.BuyOK, p.Buy(shop, 1))
	assert.Equal(t, "Product 1 purchased successfully.", p.Status())
	assert.Equal(t, 1, p.Resource("ore"))
	assert.Equal(t, 1, p.Score())
	assert.Equal(t, 1, p.ActionsLeft(), "buying costs no action")
}

func TestProductText(t *testing.T) {
	pr := player.Product{
		Name:   "excavator",
		Cost:   map[string]int{"ore": 3, "carbon": 2},
		Effect: player.Effect{Score: 2, ActionsPerTurn: 1},
	}
	assert.Equal(t, "2 carbon, 3 ore", pr.CostString())
	assert.Equal(t, "+2 score, +1 action per turn", pr.Effect.Describe())
	assert.Equal(t, "no effect", player.Effect{}.Describe())
}

func TestShop_Product(t *testing.T) {
	shop := player.NewShop(player.Product{Name: "bucket"})
	_, ok := shop.Product(0)
	assert.False(t, ok)
	pr, ok := shop.Product(1)
	assert.True(t, ok)
	assert.Equal(t, "bucket", pr.Name)
	assert.Len(t, shop.Products(), 1)
}
