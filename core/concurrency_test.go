// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusmap/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls
// from one hub are safe and all neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	errs := make(chan error, num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			errs <- g.AddEdge("Hub", fmt.Sprintf("V%d", id), float64(id))
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	require.Len(t, g.Neighbors("Hub"), num)
	require.Equal(t, num, g.EdgeCount())
	require.Equal(t, num+1, g.VertexCount())
}

// TestConcurrentReadersAndWriter mixes readers with one writer
// to verify no races or panics occur (run with -race).
func TestConcurrentReadersAndWriter(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(1 + 4)

	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_ = g.AddEdge("A", fmt.Sprintf("N%d", i), float64(i))
		}
	}()
	for r := 0; r < 4; r++ {
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				_ = g.Vertices()
				_ = g.Adjacent("A")
				_ = g.Neighbors("A")
				_ = g.HasEdge("A", "B")
			}
		}()
	}
	wg.Wait()

	require.Len(t, g.Neighbors("A"), rounds+1)
}
