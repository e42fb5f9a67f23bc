// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/empyreus/core"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls from one hub are safe
// and every spoke appears exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	hub := core.C(-1, -1)
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = g.AddEdge(hub, core.C(id, 0))
		}(i)
	}
	wg.Wait()

	require.Len(t, g.Neighbors(hub), num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReadersAfterFreeze hammers a frozen graph with readers.
func TestConcurrentReadersAfterFreeze(t *testing.T) {
	g := core.NewGraph()
	for x := 0; x < 50; x++ {
		_, _ = g.AddEdge(core.C(x, 0), core.C(x+1, 0))
	}
	g.Freeze()

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			for x := 0; x < 50; x++ {
				_ = g.HasEdge(core.C(x, 0), core.C(x+1, 0))
				_ = g.Neighbors(core.C(x, 0))
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 50, g.EdgeCount())
}
