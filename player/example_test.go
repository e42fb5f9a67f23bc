package player_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/empyreus/board"
	"github.com/katalvlaran/empyreus/player"
)

// ExampleRoster seats two ships on the standard board and passes the turn.
func ExampleRoster() {
	b, err := board.New(board.DefaultConfig(), board.WithSeed(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	rng := rand.New(rand.NewSource(1))

	var r player.Roster
	for _, name := range []string{"Aloysius", "Bartholomew"} {
		p, err := player.New(name, player.LightColour(rng), b, rng)
		if err != nil {
			fmt.Println(err)
			return
		}
		r.Add(p)
	}

	fmt.Println(r.Current().Name(), r.Current().ActionsLeft())
	fmt.Println(r.Cycle(1).Name())
	fmt.Println(r.Cycle(1).Name(), r.TurnsTaken())
	// Output:
	// Aloysius 2
	// Bartholomew
	// Aloysius 2
}

// ExampleShop lists the products with their costs and effects.
func ExampleShop() {
	s := player.NewShop(
		player.Product{Name: "pickaxe", Cost: map[string]int{"ore": 3}, Effect: player.Effect{Score: 1}},
		player.Product{Name: "drill", Cost: map[string]int{"uranium": 2, "ore": 2}, Effect: player.Effect{ActionsPerTurn: 1}},
	)
	for i, pr := range s.Products() {
		fmt.Printf("%d. %s: %s (%s)\n", i+1, pr.Name, pr.CostString(), pr.Effect.Describe())
	}
	// Output:
	// 1. pickaxe: 3 ore (+1 score)
	// 2. drill: 2 ore, 2 uranium (+1 action per turn)
}
