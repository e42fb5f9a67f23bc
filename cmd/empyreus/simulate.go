package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/empyreus/board"
	"github.com/katalvlaran/empyreus/player"
)

type simulateFlags struct {
	turns int
	quiet bool
}

func newSimulateCmd(g *globalFlags) *cobra.Command {
	f := &simulateFlags{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play a headless game with random-walking ships",
		Long: `Build a board and let every configured player wander it at random.

On a trading station a ship first buys the first product it can afford,
then trades. Elsewhere it spends its actions moving to random neighbours.
The game ends when a player reaches the win score or after --turns turns.

Examples:
  empyreus simulate
  empyreus simulate --seed 9 --turns 500 --quiet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSimulate(cmd, g, f)
		},
	}
	cmd.Flags().IntVar(&f.turns, "turns", 200, "maximum number of turns")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "print only the final standings")
	return cmd
}

func runSimulate(cmd *cobra.Command, g *globalFlags, f *simulateFlags) error {
	if f.turns < 1 {
		return fmt.Errorf("simulate: --turns must be positive")
	}
	c, err := g.load(cmd)
	if err != nil {
		return err
	}
	log := g.logger(cmd.ErrOrStderr())
	rng := rand.New(rand.NewSource(c.Seed))

	b, err := board.New(c.BoardConfig(), board.WithRand(rng), board.WithLogger(log))
	if err != nil {
		return err
	}
	shop := c.Shop()

	var roster player.Roster
	for _, name := range c.Players {
		p, err := player.New(name, player.LightColour(rng), b, rng)
		if err != nil {
			return err
		}
		roster.Add(p)
	}

	out := cmd.OutOrStdout()
	if !f.quiet {
		if err := renderBoard(out, b, false); err != nil {
			return err
		}
	}
	winner, won := roster.Winner(c.WinScore)
	for !won && roster.TurnsTaken() < f.turns {
		p := roster.Current()
		playTurn(p, b, shop, rng)
		if !f.quiet {
			fmt.Fprintf(out, "turn %d: %s\n", roster.TurnsTaken()+1, p)
		}
		log.Debug("turn played", "player", p.Name(), "pos", p.Pos(), "score", p.Score())
		winner, won = roster.Winner(c.WinScore)
		roster.Cycle(1)
	}

	return printStandings(out, &roster, winner, won)
}

// playTurn spends one player's actions. A ship on a station shops and
// trades; otherwise it steps to random neighbours.
func playTurn(p *player.Player, b *board.Board, shop *player.Shop, rng *rand.Rand) {
	for p.ActionsLeft() > 0 {
		if _, ok := b.TradeAt(p.Pos()); ok {
			for i, pr := range shop.Products() {
				if p.CanAfford(pr) {
					p.Buy(shop, i+1)
					break
				}
			}
			p.Trade(rng)
			return
		}
		nbrs := b.Neighbours(p.Pos())
		if len(nbrs) == 0 {
			return
		}
		p.Move(nbrs[rng.Intn(len(nbrs))], p.Pos())
	}
}

func printStandings(w io.Writer, r *player.Roster, winner *player.Player, won bool) error {
	if won {
		if _, err := fmt.Fprintf(w, "%s wins after %d turns\n", winner.Name(), r.TurnsTaken()); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintf(w, "no winner after %d turns\n", r.TurnsTaken()); err != nil {
		return err
	}
	for _, p := range r.List() {
		if _, err := fmt.Fprintf(w, "  %-12s score=%d hold=%v\n", p.Name(), p.Score(), p.Resources()); err != nil {
			return err
		}
	}
	return nil
}
