package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/campusmap/core"
)

// BenchmarkAddEdge measures insert-or-overwrite on a growing ring.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph(core.WithCapacity(1024))
	ids := make([]string, 1024)
	for i := range ids {
		ids[i] = fmt.Sprintf("L%d", i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(ids[i%1024], ids[(i+1)%1024], float64(i%100))
	}
}

// BenchmarkAdjacent measures sorted neighbor snapshots on a hub.
func BenchmarkAdjacent(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 64; i++ {
		_ = g.AddEdge("Hub", fmt.Sprintf("L%d", i), float64(i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Adjacent("Hub")
	}
}
