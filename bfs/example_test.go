package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/empyreus/bfs"
	"github.com/katalvlaran/empyreus/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 lattice.
func ExampleBFS_gridTraversal() {
	g := core.NewGraph()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x+1 < 3 {
				_, _ = g.AddEdge(core.C(x, y), core.C(x+1, y))
			}
			if y+1 < 3 {
				_, _ = g.AddEdge(core.C(x, y), core.C(x, y+1))
			}
		}
	}

	res, err := bfs.BFS(g, core.C(0, 0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(bfs.HopDistance(g, core.C(0, 0), core.C(2, 2)))
	// Output:
	// [0,0 1,0 0,1 2,0 1,1 0,2 2,1 1,2 2,2]
	// 4
}
