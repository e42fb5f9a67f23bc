package gridgraph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/empyreus/core"
	"github.com/katalvlaran/empyreus/gridgraph"
)

const (
	E = gridgraph.Empty
	P = gridgraph.TileType("planet_ore")
	T = gridgraph.TileType("trader_A")
)

//----------------------------------------------------------------------------//
// Construction and bounds
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that bad dimensions and sequences are rejected.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name  string
		w, h  int
		types []gridgraph.TileType
		err   error
	}{
		{"ZeroWidth", 0, 3, nil, gridgraph.ErrEmptyGrid},
		{"NegativeHeight", 2, -1, nil, gridgraph.ErrEmptyGrid},
		{"ShortSequence", 2, 2, []gridgraph.TileType{P, P, P}, gridgraph.ErrCellCount},
		{"LongSequence", 1, 1, []gridgraph.TileType{P, P}, gridgraph.ErrCellCount},
		{"BlankLabel", 2, 1, []gridgraph.TileType{P, ""}, gridgraph.ErrBlankType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.w, tc.h, tc.types, gridgraph.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid error = %v; want %v", err, tc.err)
			}
		})
	}
}

func TestFrom2D_Errors(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	if _, err := gridgraph.From2D(nil, opts); !errors.Is(err, gridgraph.ErrEmptyGrid) {
		t.Errorf("nil rows: got %v; want ErrEmptyGrid", err)
	}
	if _, err := gridgraph.From2D([][]gridgraph.TileType{{P, P}, {P}}, opts); !errors.Is(err, gridgraph.ErrNonRectangular) {
		t.Errorf("jagged rows: got %v; want ErrNonRectangular", err)
	}
}

// TestNewGrid_RowMajorFill checks that the flat sequence fills y outer, x inner.
func TestNewGrid_RowMajorFill(t *testing.T) {
	gg, err := gridgraph.NewGrid(3, 2, []gridgraph.TileType{P, E, E, E, E, T}, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatal(err)
	}
	if typ, _ := gg.Type(core.C(0, 0)); typ != P {
		t.Errorf("Type(0,0) = %q; want %q", typ, P)
	}
	if typ, _ := gg.Type(core.C(2, 1)); typ != T {
		t.Errorf("Type(2,1) = %q; want %q", typ, T)
	}
	if _, ok := gg.Type(core.C(3, 0)); ok {
		t.Error("Type(3,0) reported in bounds")
	}
	if got := gg.PlayableCells(); len(got) != 2 || got[1] != core.C(2, 1) {
		t.Errorf("PlayableCells = %v; want [0,0 2,1]", got)
	}
	if c := gg.Counts(); c[E] != 4 || c[P] != 1 || c[T] != 1 {
		t.Errorf("Counts = %v", c)
	}
}

func TestInBounds(t *testing.T) {
	gg, _ := gridgraph.From2D([][]gridgraph.TileType{{E, P, E}, {P, E, P}}, gridgraph.DefaultGridOptions())
	for _, c := range []core.Coord{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}} {
		if !gg.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	for _, c := range []core.Coord{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: -1}} {
		if gg.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
	}
}

//----------------------------------------------------------------------------//
// Neighbourhoods and distance
//----------------------------------------------------------------------------//

func TestNeighbours_Conn8(t *testing.T) {
	gg, _ := gridgraph.NewGrid(3, 3, fill(9, P), gridgraph.DefaultGridOptions())

	if n := gg.Neighbours(core.C(1, 1)); len(n) != 8 {
		t.Errorf("centre: got %d neighbours; want 8", len(n))
	}
	corner := gg.Neighbours(core.C(0, 0))
	want := []core.Coord{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	if !equal(corner, want) {
		t.Errorf("corner: got %v; want %v", corner, want)
	}
	if n := gg.Neighbours(core.C(1, 0)); len(n) != 5 {
		t.Errorf("edge: got %d neighbours; want 5", len(n))
	}
	for _, n := range gg.Neighbours(core.C(1, 1)) {
		if n == core.C(1, 1) {
			t.Error("Neighbours must not contain pos itself")
		}
	}
}

func TestNeighbours_Conn4(t *testing.T) {
	gg, _ := gridgraph.NewGrid(3, 3, fill(9, P), gridgraph.GridOptions{Conn: gridgraph.Conn4})
	got := gg.Neighbours(core.C(1, 1))
	want := []core.Coord{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}}
	if !equal(got, want) {
		t.Errorf("Conn4: got %v; want %v", got, want)
	}
}

func TestNeighboursInclusive(t *testing.T) {
	gg, _ := gridgraph.NewGrid(3, 3, fill(9, P), gridgraph.DefaultGridOptions())
	got := gg.NeighboursInclusive(core.C(0, 0))
	want := []core.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	if !equal(got, want) {
		t.Errorf("corner inclusive: got %v; want %v", got, want)
	}
	if got := gg.NeighboursInclusive(core.C(1, 1)); len(got) != 9 || got[4] != core.C(1, 1) {
		t.Errorf("centre inclusive: got %v", got)
	}
	if got := gg.NeighboursInclusive(core.C(2, 2)); got[len(got)-1] != core.C(2, 2) {
		t.Errorf("last corner inclusive: got %v", got)
	}
}

func TestEuclideanDistance(t *testing.T) {
	cases := []struct {
		a, b core.Coord
		want float64
	}{
		{core.C(0, 0), core.C(0, 0), 0},
		{core.C(0, 0), core.C(3, 4), 5},
		{core.C(2, 1), core.C(0, 0), math.Sqrt(5)},
	}
	for _, tc := range cases {
		if got := gridgraph.EuclideanDistance(tc.a, tc.b); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("EuclideanDistance(%v,%v) = %v; want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func fill(n int, t gridgraph.TileType) []gridgraph.TileType {
	out := make([]gridgraph.TileType, n)
	for i := range out {
		out[i] = t
	}
	return out
}

func equal(a, b []core.Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
