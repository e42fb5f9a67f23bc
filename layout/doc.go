// Package layout turns a tile distribution into the per-cell type sequence
// of a new board, and hands each trading station its traded resource.
//
// What:
//
//   - Request is an ordered list of (type, count) entries. At most one entry
//     may be the remainder, which fills every cell the explicit counts do
//     not claim.
//   - Order produces exactly W×H types by shuffle-by-insertion: entries are
//     processed in request order and every unit is inserted at a uniformly
//     random index of the sequence built so far (rng.Intn(len+1)).
//   - AssignTrades samples, without replacement, one distinct resource per
//     trader cell.
//
// The consumer lays the sequence out row-major (y outer, x inner); see
// gridgraph.NewGrid.
//
// Known limitation:
//
//	Shuffle-by-insertion processed type by type reaches every arrangement of
//	the multiset, but does not give each arrangement exactly the same
//	probability. Boards only need "well mixed", so this is kept as is.
//
// Determinism:
//
//	Randomness flows only through the *rand.Rand supplied by WithSeed or
//	WithRand. Without either, a fixed default seed is used, so two calls with
//	the same inputs always agree.
//
// Errors:
//
//   - ErrBadDimensions      width or height is not positive.
//   - ErrNegativeCount      an explicit count is negative.
//   - ErrMultipleRemainders more than one remainder entry.
//   - ErrCapacityExceeded   explicit counts exceed W×H.
//   - ErrUnderfilled        no remainder entry and explicit counts below W×H.
//   - ErrNotEnoughResources more trader cells than distinct resources.
package layout
