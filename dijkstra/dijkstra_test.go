// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input errors, single-target early exit with path
// reconstruction, full single-source runs, MaxDistance and tie-breaking.
package dijkstra_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusmap/core"
	"github.com/katalvlaran/campusmap/dijkstra"
)

// triangle builds A—B(1), B—C(2), A—C(5).
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 5))
	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := triangle(t)
	_, err := dijkstra.Dijkstra(g, dijkstra.Source("X"))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_TargetNotFound(t *testing.T) {
	g := triangle(t)
	_, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.Target("X"))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_BadMaxDistancePanics(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		_, _ = dijkstra.Dijkstra(core.NewGraph(), dijkstra.WithMaxDistance(-1))
	})
}

// ------------------------------------------------------------------------
// 2. Single target: path reconstruction and early exit.
// ------------------------------------------------------------------------

func TestDijkstra_TriangleWithTarget(t *testing.T) {
	g := triangle(t)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.Target("C"))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Equal(t, 3.0, res.Distance)
}

func TestDijkstra_DirectEdgeWins(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("Room 120", "Library", 450))
	require.NoError(t, g.AddEdge("Library", "Dining Hall", 300))
	require.NoError(t, g.AddEdge("Room 120", "Dining Hall", 600))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("Room 120"), dijkstra.Target("Dining Hall"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Room 120", "Dining Hall"}, res.Path)
	assert.Equal(t, 600.0, res.Distance)
}

func TestDijkstra_SourceIsTarget(t *testing.T) {
	g := triangle(t)

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("B"), dijkstra.Target("B"))
	require.NoError(t, err)

	assert.Equal(t, []string{"B"}, res.Path)
	assert.Equal(t, 0.0, res.Distance)
}

func TestDijkstra_EarlyExit(t *testing.T) {
	// Chain A—B(1)—C(1)—D(1): stopping at B must not settle C or D.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.Target("B"))
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"A": 0, "B": 1}, res.Dist)
}

func TestDijkstra_Disconnected(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.AddEdge("X", "Y", 1))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.Target("Y"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, dijkstra.ErrNoPath))
	assert.Nil(t, res.Path)
}

func TestDijkstra_TieBreakIsDeterministic(t *testing.T) {
	// Square A—B—D and A—C—D, both of length 2.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "D", 1))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	first, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.Target("D"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, first.Distance)
	// Neighbors expand in ID order, so B relaxes D first.
	assert.Equal(t, []string{"A", "B", "D"}, first.Path)

	for i := 0; i < 20; i++ {
		again, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.Target("D"))
		require.NoError(t, err)
		require.Equal(t, first.Path, again.Path)
	}
}

func TestDijkstra_ZeroWeightEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))
	require.NoError(t, g.AddEdge("A", "C", 1))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.Target("C"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Distance)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
}

// ------------------------------------------------------------------------
// 3. Full single-source runs and MaxDistance.
// ------------------------------------------------------------------------

func TestDijkstra_AllDistances(t *testing.T) {
	// A—B—C—D—E, D—F—G, all weight 1.
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "E"}, {"D", "F"}, {"F", "G"}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{
		"A": 0, "B": 1, "C": 2, "D": 3, "E": 4, "F": 4, "G": 5,
	}, res.Dist)
	assert.Nil(t, res.Path)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 2}, res.Dist)

	_, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.Target("D"), dijkstra.WithMaxDistance(2))
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}
