package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/empyreus/board"
	"github.com/katalvlaran/empyreus/builder"
)

type genFlags struct {
	count   int
	workers int
	edges   bool
	verify  bool
}

func newGenCmd(g *globalFlags) *cobra.Command {
	f := &genFlags{}
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate boards and print them",
		Long: `Generate one or more boards and print each as a character map.

Board i of a batch is seeded with seed+i, so a batch is reproducible.

Map symbols: '.' empty, '$' trading station, '*' asteroid, and a planet's
resource initial (C, H, I, O, U).

Examples:
  empyreus gen
  empyreus gen -n 8 --seed 100 --verify
  empyreus gen --width 10 --height 8 --edges`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGen(cmd, g, f)
		},
	}
	cmd.Flags().IntVarP(&f.count, "number", "n", 1, "number of boards to generate")
	cmd.Flags().IntVar(&f.workers, "workers", 4, "boards generated concurrently")
	cmd.Flags().BoolVar(&f.edges, "edges", false, "also print the adjacency list")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "check every board invariant after generation")
	return cmd
}

func runGen(cmd *cobra.Command, g *globalFlags, f *genFlags) error {
	if f.count < 1 || f.workers < 1 {
		return fmt.Errorf("gen: --number and --workers must be positive")
	}
	c, err := g.load(cmd)
	if err != nil {
		return err
	}
	log := g.logger(cmd.ErrOrStderr())
	bcfg := c.BoardConfig()

	boards := make([]*board.Board, f.count)
	eg, ctx := errgroup.WithContext(cmd.Context())
	eg.SetLimit(f.workers)
	for i := range boards {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := board.New(bcfg, board.WithSeed(c.Seed+int64(i)), board.WithLogger(log))
			if err != nil {
				return fmt.Errorf("board %d: %w", i+1, err)
			}
			if f.verify {
				if err := builder.Verify(b.Grid(), b.Graph(), builder.WithHopBound(bcfg.HopBound)); err != nil {
					return fmt.Errorf("board %d: %w", i+1, err)
				}
			}
			boards[i] = b
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, b := range boards {
		rep := b.Report()
		fmt.Fprintf(out, "# board %d seed=%d %s\n", i+1, c.Seed+int64(i), rep.String())
		if err := renderBoard(out, b, f.edges); err != nil {
			return err
		}
		if i < len(boards)-1 {
			fmt.Fprintln(out)
		}
	}
	return nil
}
