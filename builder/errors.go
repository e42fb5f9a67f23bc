// SPDX-License-Identifier: MIT
// Package: empyreus/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w via builderErrorf.
//   • Build and Verify never panic; option constructors may.

package builder

import (
	"errors"
	"fmt"
)

// ErrNilGrid indicates that Build or Verify received a nil grid.
var ErrNilGrid = errors.New("builder: grid is nil")

// ErrNilGraph indicates that Verify received a nil graph.
var ErrNilGraph = errors.New("builder: graph is nil")

// ErrInvariant indicates that a built graph violates one of the board
// invariants (completeness, symmetry, connectivity, hop bound).
// Usage: if errors.Is(err, ErrInvariant) { /* report the broken board */ }.
var ErrInvariant = errors.New("builder: invariant violated")

// builderErrorf prefixes an error with the given method context.
// A %w verb in format keeps the wrapped sentinel visible to errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
