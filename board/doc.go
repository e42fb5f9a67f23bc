// Package board is the facade a game host talks to. New turns a Config into
// a Board: a randomly laid out grid of planets, asteroids and trading
// stations, the connected movement graph over its playable cells, and the
// pixel geometry that centres it in a window.
//
// All queries are read-only. Off-board lookups report false rather than
// fail, so a host can pass raw mouse positions straight through
// CellFromPixel.
package board
