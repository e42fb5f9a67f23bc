package board

import "errors"

// Configuration errors returned by New and Config.Validate. Tile distribution
// errors are layout's (layout.ErrCapacityExceeded and friends).
var (
	ErrBadGeometry = errors.New("board: tile and window sizes must be positive")
	ErrBadTrade    = errors.New("board: trade amounts must be positive")
	ErrBadHopBound = errors.New("board: hop bound must be at least 1")
	ErrBadResource = errors.New("board: resource names must be unique and non-empty")
)
