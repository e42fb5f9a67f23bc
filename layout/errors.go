// SPDX-License-Identifier: MIT
// Package: empyreus/layout
//
// errors.go — sentinel errors for the layout package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package layout

import "errors"

var (
	// ErrBadDimensions indicates a non-positive board width or height.
	ErrBadDimensions = errors.New("layout: board dimensions must be positive")

	// ErrNegativeCount indicates an explicit tile count below zero.
	ErrNegativeCount = errors.New("layout: tile count must not be negative")

	// ErrMultipleRemainders indicates more than one remainder entry.
	ErrMultipleRemainders = errors.New("layout: at most one remainder entry allowed")

	// ErrCapacityExceeded indicates explicit counts larger than the board.
	ErrCapacityExceeded = errors.New("layout: tile counts exceed board capacity")

	// ErrUnderfilled indicates explicit counts that leave cells unassigned
	// while no remainder entry exists to fill them.
	ErrUnderfilled = errors.New("layout: tile counts do not fill the board")

	// ErrNotEnoughResources indicates more trader cells than distinct resources.
	ErrNotEnoughResources = errors.New("layout: not enough resources for traders")
)
