package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/empyreus/config"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	seed       int64
	width      int
	height     int
	verbose    bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "empyreus",
		Short:         "Generate and inspect Empyreus boards",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&g.configPath, "config", "c", "", "YAML game configuration (defaults when empty)")
	pf.Int64Var(&g.seed, "seed", 0, "RNG seed (overrides config and EMPYREUS_SEED)")
	pf.IntVar(&g.width, "width", 0, "board width in cells (overrides config)")
	pf.IntVar(&g.height, "height", 0, "board height in cells (overrides config)")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(newGenCmd(g), newSimulateCmd(g), newConfigCmd(g))
	return root
}

// load resolves the effective configuration: defaults, file, environment,
// then flags.
func (g *globalFlags) load(cmd *cobra.Command) (*config.Config, error) {
	c := config.Default()
	if g.configPath != "" {
		var err error
		if c, err = config.Load(g.configPath); err != nil {
			return nil, err
		}
	}
	if err := c.ApplyEnv(); err != nil {
		return nil, err
	}
	f := cmd.Flags()
	if f.Changed("seed") {
		c.Seed = g.seed
	}
	if f.Changed("width") {
		c.Board.Width = g.width
	}
	if f.Changed("height") {
		c.Board.Height = g.height
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// logger writes text records to w; debug records only with --verbose.
func (g *globalFlags) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if g.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newConfigCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := g.load(cmd)
			if err != nil {
				return err
			}
			data, err := c.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
