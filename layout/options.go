// SPDX-License-Identifier: MIT
// Package: empyreus/layout
//
// options.go — functional options for the layout package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs; the
//     algorithms themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package layout

import "math/rand"

// defaultSeed is the fixed seed used when no RNG option is supplied.
const defaultSeed int64 = 1

// Option customizes a layout call.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(defaultSeed))
	}
	return c
}

// WithRand provides an explicit RNG. The same *rand.Rand may be shared by
// Order and AssignTrades to draw both from one stream.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("layout: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
