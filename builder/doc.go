// Package builder derives the movement graph of a board from its typed grid.
//
// Build is the only constructor. It guarantees, for any grid:
//
//   - completeness: every playable cell is a vertex, empty cells never are;
//   - symmetry: edges are undirected, with no self-loops;
//   - connectivity: all vertices form one component;
//   - hop bound: two grid-adjacent playable cells are at most the hop bound
//     (default 3) moves apart.
//
// The returned graph is frozen. Verify re-checks the four guarantees on any
// graph and is what the tests and the CLI use.
//
// Configuration primitives:
//
//   - WithHopBound: hop bound for the relaxation phase (panics below 1).
//   - WithLogger:   slog logger for phase summaries (silent by default).
//   - WithWorkers:  goroutine limit for hop measurements (GOMAXPROCS).
//   - WithContext:  cancellation of the relaxation phase.
//
// Build is deterministic: the same grid and hop bound always give the same
// graph, whatever the worker count.
package builder
