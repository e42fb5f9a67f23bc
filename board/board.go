package board

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/empyreus/builder"
	"github.com/katalvlaran/empyreus/core"
	"github.com/katalvlaran/empyreus/gridgraph"
	"github.com/katalvlaran/empyreus/layout"
)

// defaultSeed seeds boards built without WithSeed or WithRand.
const defaultSeed int64 = 1

// Board is a generated board: its typed grid, the movement graph over it,
// the resource each trading station takes, and the pixel geometry the host
// draws it with. A Board never changes after New, so any number of
// goroutines may query it.
type Board struct {
	id     uuid.UUID
	cfg    Config
	grid   *gridgraph.Grid
	graph  *core.Graph
	report *builder.Report

	trades    map[core.Coord]string
	resources map[string]bool

	tileSize, pos, posEnd Vec
}

// New validates cfg, lays out the tiles, assigns trades and builds the graph.
func New(cfg Config, opts ...Option) (*Board, error) {
	o := options{seed: defaultSeed}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(o.seed))
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	types, err := layout.Order(cfg.Width, cfg.Height, cfg.Tiles, layout.WithRand(o.rng))
	if err != nil {
		return nil, err
	}
	takes, err := layout.AssignTrades(types, cfg.Resources, layout.WithRand(o.rng))
	if err != nil {
		return nil, err
	}
	grid, err := gridgraph.NewGrid(cfg.Width, cfg.Height, types, gridgraph.GridOptions{Conn: cfg.Conn})
	if err != nil {
		return nil, err
	}
	graph, report, err := builder.Build(grid,
		builder.WithHopBound(cfg.HopBound),
		builder.WithLogger(o.logger),
	)
	if err != nil {
		return nil, err
	}

	b := &Board{
		id:        uuid.New(),
		cfg:       cfg,
		grid:      grid,
		graph:     graph,
		report:    report,
		trades:    make(map[core.Coord]string),
		resources: make(map[string]bool, len(cfg.Resources)),
	}
	for i, r := range takes {
		if r != "" {
			b.trades[grid.Coordinate(i)] = r
		}
	}
	for _, r := range cfg.Resources {
		b.resources[r] = true
	}
	b.layoutGeometry()

	o.logger.Info("board built",
		"board", b.id,
		"dims", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"vertices", report.Vertices,
		"edges", report.Edges,
		"islands", len(report.Islands),
		"traders", len(b.trades),
	)
	return b, nil
}

// BuildBoard lays out a w×h board from tiles and returns its grid and frozen
// graph, without trades or geometry. Only WithSeed and WithRand are
// meaningful in opts.
func BuildBoard(w, h int, tiles layout.Request, opts ...Option) (*gridgraph.Grid, *core.Graph, error) {
	o := options{seed: defaultSeed}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(o.seed))
	}

	types, err := layout.Order(w, h, tiles, layout.WithRand(o.rng))
	if err != nil {
		return nil, nil, err
	}
	grid, err := gridgraph.NewGrid(w, h, types, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, nil, err
	}
	g, _, err := builder.Build(grid)
	if err != nil {
		return nil, nil, err
	}
	return grid, g, nil
}

// ID identifies this board instance in logs.
func (b *Board) ID() uuid.UUID { return b.id }

// Config returns the configuration the board was built from.
func (b *Board) Config() Config { return b.cfg }

// Grid returns the typed grid.
func (b *Board) Grid() *gridgraph.Grid { return b.grid }

// Graph returns the frozen movement graph.
func (b *Board) Graph() *core.Graph { return b.graph }

// Report returns the builder's summary for this board.
func (b *Board) Report() builder.Report { return *b.report }

// Neighbours returns the cells reachable from c in one move, sorted.
func (b *Board) Neighbours(c core.Coord) []core.Coord { return b.graph.Neighbors(c) }

// Resources returns the resource names, in configuration order.
func (b *Board) Resources() []string {
	return append([]string(nil), b.cfg.Resources...)
}
