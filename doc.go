// Package empyreus builds the boards of Empyreus, a turn-based space trading
// game, and models the ships that play on them.
//
// 🚀 What is empyreus?
//
//	A W×H grid of typed tiles (planets, asteroids, trading stations and
//	empty space) turned into a connected, undirected board graph:
//		• layout     – shuffled tile order and trade assignment from a request
//		• gridgraph  – the typed grid and its islands of playable cells
//		• builder    – islands → spanning trees → stitch → hop-bound relaxation
//		• board      – the assembled board: graph, trades, pixel geometry
//		• player     – ships, moves, trades, the shop and the turn roster
//		• config     – YAML game configuration with environment overrides
//
// Under the hood the graph primitives live in three subpackages:
//
//	core/ — Coord and the adjacency-set Graph
//	bfs/  — breadth-first search and bounded hop distance
//	dfs/  — depth-first search and connected components
//
// Every generated board satisfies two guarantees:
//
//   - Connectivity – every playable tile is reachable from every other.
//   - Hop bound    – any two tiles at most one step apart on the grid are at
//     most HopBound edges apart in the graph (3 by default).
//
// Quick ASCII example (3×3, every tile playable):
//
//	A───B───C        A───B───C
//	      ╱          │     ╳ │
//	D───E   F   →    D───E───F
//	│     ╱ │        │     ╳ │
//	G───H   I        G───H   I
//
// the serpentine spanning tree on the left is relaxed with shortcuts until
// the hop bound holds.
//
//	go run github.com/katalvlaran/empyreus/cmd/empyreus gen --verify
package empyreus
