// Package gridgraph treats the typed board grid as a graph substrate:
// bounds, neighbourhoods, distances, and discovery of "islands" of playable
// cells.
//
// What:
//
//   - Grid wraps a rectangular W×H array of tile types, stored row-major.
//   - A cell whose type is Empty is a gap; every other cell is playable.
//   - Neighbours enumerates the in-bounds cells around a position under
//     Conn8 (default, Chebyshev distance 1) or Conn4.
//   - Islands finds the maximal connected groups of playable cells with an
//     explicit-stack depth-first search, recording the spanning-tree edge
//     that discovered each cell.
//
// Why:
//
//   - The board builder embeds island spanning trees directly into the
//     board graph, then stitches isles to the mainland.
//   - Explicit stacks keep discovery safe on arbitrarily large grids.
//
// Complexity:
//
//   - Islands:    O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - Neighbours: O(d).
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellCount: a flat type sequence does not hold exactly W×H entries.
//   - ErrBlankType: a cell has an empty type label.
package gridgraph
