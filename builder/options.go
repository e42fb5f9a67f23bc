// SPDX-License-Identifier: MIT
// Package: empyreus/builder
//
// options.go — functional options for Build.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Build itself never panics.
//   • Options apply in order; later options override earlier ones.

package builder

import (
	"context"
	"log/slog"
)

// BuilderOption customizes Build before construction begins.
type BuilderOption func(*builderConfig)

// WithHopBound sets the largest hop distance tolerated between grid-adjacent
// playable cells before the relaxation phase adds a shortcut edge.
// Panics if bound < 1.
func WithHopBound(bound int) BuilderOption {
	if bound < minHopBound {
		panic("builder: WithHopBound(bound < 1)")
	}
	return func(c *builderConfig) {
		c.hopBound = bound
	}
}

// WithLogger routes phase summaries to l. Panics on nil; omit the option to
// stay silent.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithWorkers bounds the goroutines used to measure hop distances in the
// relaxation phase. The result does not depend on n.
// Panics if n < 1.
func WithWorkers(n int) BuilderOption {
	if n < minWorkers {
		panic("builder: WithWorkers(n < 1)")
	}
	return func(c *builderConfig) {
		c.workers = n
	}
}

// WithContext makes the relaxation phase abort with ctx.Err() once ctx is done.
// Panics on nil.
func WithContext(ctx context.Context) BuilderOption {
	if ctx == nil {
		panic("builder: WithContext(nil)")
	}
	return func(c *builderConfig) {
		c.ctx = ctx
	}
}
