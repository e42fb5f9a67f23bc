package layout

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/empyreus/gridgraph"
)

// Entry requests Count cells of Type. A Remainder entry ignores Count and
// receives every cell left over by the explicit entries.
type Entry struct {
	Type      gridgraph.TileType
	Count     int
	Remainder bool
}

// Request is an ordered tile distribution. Order matters: it is the order in
// which types are inserted into the shuffled sequence.
type Request []Entry

// Explicit returns the sum of all non-remainder counts.
func (r Request) Explicit() int {
	total := 0
	for _, e := range r {
		if !e.Remainder {
			total += e.Count
		}
	}
	return total
}

// Counts resolves the request against a w×h board: type → number of cells.
// It applies the same validation as Order.
func (r Request) Counts(w, h int) (map[gridgraph.TileType]int, error) {
	remainder, err := r.validate(w, h)
	if err != nil {
		return nil, err
	}
	out := make(map[gridgraph.TileType]int, len(r))
	for _, e := range r {
		if e.Remainder {
			out[e.Type] += remainder
		} else {
			out[e.Type] += e.Count
		}
	}
	return out, nil
}

// validate checks the request and returns the resolved remainder size.
func (r Request) validate(w, h int) (int, error) {
	if w <= 0 || h <= 0 {
		return 0, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, w, h)
	}
	capacity := w * h
	remainders := 0
	for _, e := range r {
		if e.Remainder {
			remainders++
			continue
		}
		if e.Count < 0 {
			return 0, fmt.Errorf("%w: %s=%d", ErrNegativeCount, e.Type, e.Count)
		}
	}
	if remainders > 1 {
		return 0, fmt.Errorf("%w: got %d", ErrMultipleRemainders, remainders)
	}

	explicit := r.Explicit()
	if explicit > capacity {
		return 0, fmt.Errorf("%w: %d requested, %d cells", ErrCapacityExceeded, explicit, capacity)
	}
	if remainders == 0 && explicit < capacity {
		return 0, fmt.Errorf("%w: %d requested, %d cells", ErrUnderfilled, explicit, capacity)
	}
	return capacity - explicit, nil
}

// Order produces the shuffled type sequence for a w×h board, exactly w*h
// long. Each unit of each entry, in request order, is inserted at
// rng.Intn(len(seq)+1).
//
// Complexity: O((W×H)²) element moves in the worst case; boards are small.
func Order(w, h int, req Request, opts ...Option) ([]gridgraph.TileType, error) {
	remainder, err := req.validate(w, h)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts)

	seq := make([]gridgraph.TileType, 0, w*h)
	for _, e := range req {
		n := e.Count
		if e.Remainder {
			n = remainder
		}
		for i := 0; i < n; i++ {
			seq = slices.Insert(seq, cfg.rng.Intn(len(seq)+1), e.Type)
		}
	}
	return seq, nil
}
