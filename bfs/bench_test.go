package bfs_test

import (
	"testing"

	"github.com/katalvlaran/empyreus/bfs"
	"github.com/katalvlaran/empyreus/core"
)

// BenchmarkHopDistance_Chain measures a worst-case end-to-end query on a chain.
func BenchmarkHopDistance_Chain(b *testing.B) {
	const n = 2000
	g := chain(n)
	g.Freeze()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bfs.HopDistance(g, core.C(0, 0), core.C(n, 0))
	}
}

// BenchmarkHopDistance_Bounded shows the effect of WithMaxDepth on the same query.
func BenchmarkHopDistance_Bounded(b *testing.B) {
	const n = 2000
	g := chain(n)
	g.Freeze()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bfs.HopDistance(g, core.C(0, 0), core.C(n, 0), bfs.WithMaxDepth(3))
	}
}
