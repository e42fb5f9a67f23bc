// SPDX-License-Identifier: MIT
// Package: empyreus/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • hopBound = DefaultHopBound (3)
//   • logger   = discard handler
//   • workers  = GOMAXPROCS
//   • ctx      = context.Background()

package builder

import (
	"context"
	"io"
	"log/slog"
	"runtime"
)

// builderConfig aggregates all knobs used by Build.
type builderConfig struct {
	hopBound int
	logger   *slog.Logger
	workers  int
	ctx      context.Context
}

// newBuilderConfig constructs a config with defaults and applies opts in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		hopBound: DefaultHopBound,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		workers:  runtime.GOMAXPROCS(0),
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
