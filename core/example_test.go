package core_test

import (
	"fmt"

	"github.com/katalvlaran/empyreus/core"
)

// ExampleGraph builds a small L-shaped graph, freezes it and lists neighbours.
func ExampleGraph() {
	g := core.NewGraph()
	_, _ = g.AddEdge(core.C(0, 0), core.C(1, 0))
	_, _ = g.AddEdge(core.C(0, 0), core.C(0, 1))
	g.Freeze()

	fmt.Println(g.Neighbors(core.C(0, 0)))
	_, err := g.AddEdge(core.C(1, 0), core.C(0, 1))
	fmt.Println(err)
	// Output:
	// [1,0 0,1]
	// core: graph is frozen
}
