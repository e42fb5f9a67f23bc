package config

import "errors"

var (
	// ErrSyntax indicates a malformed configuration document.
	ErrSyntax = errors.New("config: syntax error")
	// ErrNoPlayers indicates an empty player list.
	ErrNoPlayers = errors.New("config: at least one player required")
	// ErrBadWinScore indicates a non-positive winning score.
	ErrBadWinScore = errors.New("config: win score must be positive")
	// ErrBadProduct indicates a product with no name, or a cost in an unknown
	// resource or below one.
	ErrBadProduct = errors.New("config: invalid product")
	// ErrBadEnv indicates an environment override that is not an integer.
	ErrBadEnv = errors.New("config: invalid environment override")
)
