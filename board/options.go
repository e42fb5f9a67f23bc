package board

import (
	"log/slog"
	"math/rand"
)

// Option customizes New.
type Option func(*options)

type options struct {
	rng    *rand.Rand
	logger *slog.Logger
	seed   int64
}

// WithSeed seeds the board's layout and trade draws.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws the layout and trades from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("board: WithRand(nil)")
	}
	return func(o *options) {
		o.rng = r
	}
}

// WithLogger logs construction through l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("board: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}
