// Package core defines the board coordinate type and the undirected
// adjacency-set Graph that every other empyreus package builds on.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are grid coordinates (Coord), not strings.
//   - Edges are undirected and unweighted; every edge is mirrored in both
//     adjacency sets, so b ∈ adj[a] iff a ∈ adj[b].
//   - Parallel edges collapse: the storage is a set per vertex.
//   - Self-loops are rejected with ErrLoopNotAllowed.
//   - A graph can be frozen once construction is complete; after Freeze every
//     mutator returns ErrFrozen, which makes "written once, read by many" a
//     structural guarantee rather than a convention.
//
// Determinism:
//
//   - Vertices() and NeighborIDs() return coordinates in row-major order
//     (y ascending, then x ascending), so logs and test goldens are stable.
//
// Concurrency:
//
//   - A single sync.RWMutex guards vertices and adjacency. Readers never
//     block each other, which is the only access pattern after Freeze.
//
// Core methods:
//
//	AddVertex(c Coord) error              // O(1)
//	HasVertex(c Coord) bool               // O(1)
//	AddEdge(a, b Coord) (bool, error)     // O(1), creates endpoints
//	HasEdge(a, b Coord) bool              // O(1)
//	Neighbors(c Coord) []Coord            // O(d log d), never fails
//	NeighborIDs(c Coord) ([]Coord, error) // O(d log d), ErrVertexNotFound
//	Vertices() []Coord                    // O(V log V)
//	Clone() *Graph                        // O(V+E), result is unfrozen
//	Freeze()                              // O(1)
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrLoopNotAllowed - edge from a vertex to itself.
//	ErrFrozen         - mutation attempted on a frozen graph.
package core
