// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in symmetric insert-or-overwrite semantics of AddEdge.
//   - Validate weight rejection (negative, NaN, Inf) without touching the graph.
//   - Anchor ordering guarantees (Vertices/Adjacent sorted by ID).

package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusmap/core"
)

const (
	LocRoom    = "Room 120"
	LocLibrary = "Library"
	LocDining  = "Dining Hall"
	LocGym     = "Gym"
)

// TestGraph_AddEdgeSymmetric verifies both directions share one weight.
func TestGraph_AddEdgeSymmetric(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(LocRoom, LocLibrary, 450))

	w1, ok1 := g.Weight(LocRoom, LocLibrary)
	w2, ok2 := g.Weight(LocLibrary, LocRoom)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, 450.0, w1)
	assert.Equal(t, w1, w2)

	assert.True(t, g.HasEdge(LocRoom, LocLibrary))
	assert.True(t, g.HasEdge(LocLibrary, LocRoom))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, g.VertexCount())
}

// TestGraph_AddEdgeIdempotentAndOverwrite verifies repeat calls and weight replacement.
func TestGraph_AddEdgeIdempotentAndOverwrite(t *testing.T) {
	g := core.NewGraph()

	// Stage 1: same call twice leaves neighbors unchanged.
	require.NoError(t, g.AddEdge(LocRoom, LocLibrary, 450))
	before := g.Neighbors(LocRoom)
	require.NoError(t, g.AddEdge(LocRoom, LocLibrary, 450))
	assert.Equal(t, before, g.Neighbors(LocRoom))
	assert.Equal(t, map[string]float64{LocRoom: 450}, g.Neighbors(LocLibrary))
	assert.Equal(t, 1, g.EdgeCount())

	// Stage 2: a different weight overwrites silently, in both directions.
	require.NoError(t, g.AddEdge(LocLibrary, LocRoom, 500))
	w, _ := g.Weight(LocRoom, LocLibrary)
	assert.Equal(t, 500.0, w)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestGraph_AddEdgeRejectsBadWeights verifies sentinel errors and no side effects.
func TestGraph_AddEdgeRejectsBadWeights(t *testing.T) {
	cases := []struct {
		name   string
		weight float64
		want   error
	}{
		{"negative", -1, core.ErrNegativeWeight},
		{"nan", math.NaN(), core.ErrBadWeight},
		{"posinf", math.Inf(1), core.ErrBadWeight},
		{"neginf", math.Inf(-1), core.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph()
			err := g.AddEdge(LocRoom, LocGym, tc.weight)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.False(t, g.HasVertex(LocRoom))
			assert.Equal(t, 0, g.VertexCount())
		})
	}
}

// TestGraph_ZeroWeightAndSelfLoop covers boundary weights and a == b.
func TestGraph_ZeroWeightAndSelfLoop(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(LocRoom, LocLibrary, 0))
	assert.True(t, g.HasEdge(LocRoom, LocLibrary))

	require.NoError(t, g.AddEdge(LocGym, LocGym, 5))
	assert.True(t, g.HasEdge(LocGym, LocGym))
	assert.Equal(t, map[string]float64{LocGym: 5}, g.Neighbors(LocGym))
	assert.Equal(t, 2, g.EdgeCount())
}

// TestGraph_UnknownLocation verifies queries on ids never inserted.
func TestGraph_UnknownLocation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(LocRoom, LocLibrary, 450))

	nbs := g.Neighbors(LocGym)
	require.NotNil(t, nbs)
	assert.Empty(t, nbs)
	assert.Empty(t, g.Adjacent(LocGym))
	assert.False(t, g.HasVertex(LocGym))
	assert.False(t, g.HasEdge(LocGym, LocRoom))
	_, ok := g.Weight(LocGym, LocRoom)
	assert.False(t, ok)
}

// TestGraph_Ordering anchors sorted output of Vertices and Adjacent.
func TestGraph_Ordering(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(4))
	require.NoError(t, g.AddEdge("D", "B", 2))
	require.NoError(t, g.AddEdge("D", "A", 1))
	require.NoError(t, g.AddEdge("D", "C", 3))

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, []core.Neighbor{
		{ID: "A", Weight: 1},
		{ID: "B", Weight: 2},
		{ID: "C", Weight: 3},
	}, g.Adjacent("D"))
}

// TestGraph_NeighborsIsACopy verifies callers cannot mutate the graph through results.
func TestGraph_NeighborsIsACopy(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(LocRoom, LocLibrary, 450))

	nbs := g.Neighbors(LocRoom)
	nbs[LocLibrary] = 1
	nbs[LocGym] = 2

	w, _ := g.Weight(LocRoom, LocLibrary)
	assert.Equal(t, 450.0, w)
	assert.False(t, g.HasEdge(LocRoom, LocGym))
}
