package layout

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/empyreus/gridgraph"
)

// AssignTrades gives every trader cell in types a distinct resource drawn
// without replacement from resources (deduplicated and sorted first, so the
// draw does not depend on caller ordering). The result is aligned with types:
// out[i] is the resource for a trader at index i and "" elsewhere.
//
// Returns ErrNotEnoughResources when there are more traders than resources.
// Complexity: O(len(types) + R log R).
func AssignTrades(types []gridgraph.TileType, resources []string, opts ...Option) ([]string, error) {
	pool := slices.Clone(resources)
	slices.Sort(pool)
	pool = slices.Compact(pool)

	traders := 0
	for _, t := range types {
		if t.Trader() {
			traders++
		}
	}
	if traders > len(pool) {
		return nil, fmt.Errorf("%w: %d traders, %d resources", ErrNotEnoughResources, traders, len(pool))
	}

	out := make([]string, len(types))
	if traders == 0 {
		return out, nil
	}
	cfg := newConfig(opts)
	draw := cfg.rng.Perm(len(pool))[:traders]

	k := 0
	for i, t := range types {
		if t.Trader() {
			out[i] = pool[draw[k]]
			k++
		}
	}
	return out, nil
}
