// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: The campus Graph: construction, seeding, edge insertion and direct lookups.
// Concurrency:
//   - Delegates locking to core.Graph; AddEdge is exclusive, everything else is a reader.

package campus

import (
	"github.com/katalvlaran/campusmap/core"
)

// UnknownDistance is the fallback distance in meters returned whenever no
// distance information is available. It is distinct from a measured zero.
const UnknownDistance = 1000.0

// SeedEdge is one example edge used by NewSeeded.
type SeedEdge struct {
	From   string
	To     string
	Meters float64
}

// SeedEdges are the placeholder campus distances a seeded map starts with.
var SeedEdges = []SeedEdge{
	{From: "Room 120", To: "Library", Meters: 450},
	{From: "Library", To: "Dining Hall", Meters: 300},
	{From: "Room 120", To: "Dining Hall", Meters: 600},
}

// Graph is a campus map: named locations joined by symmetric walking distances.
// The zero value is not usable; construct with New or NewSeeded.
type Graph struct {
	g *core.Graph
}

// New returns an empty campus map.
func New() *Graph {
	return &Graph{g: core.NewGraph()}
}

// NewSeeded returns a campus map pre-loaded with SeedEdges.
func NewSeeded() *Graph {
	c := &Graph{g: core.NewGraph(core.WithCapacity(len(SeedEdges)))}
	for _, e := range SeedEdges {
		// Seed weights are finite and non-negative.
		_ = c.g.AddEdge(e.From, e.To, e.Meters)
	}

	return c
}

// AddEdge inserts or overwrites the walking distance between a and b in both
// directions. It returns core.ErrNegativeWeight or core.ErrBadWeight (wrapped)
// for weights Dijkstra cannot handle.
func (c *Graph) AddEdge(a, b string, meters float64) error {
	return c.g.AddEdge(a, b, meters)
}

// HasEdge reports whether a and b are directly connected.
func (c *Graph) HasEdge(a, b string) bool {
	return c.g.HasEdge(a, b)
}

// HasLocation reports whether loc has at least one recorded edge.
func (c *Graph) HasLocation(loc string) bool {
	return c.g.HasVertex(loc)
}

// Locations returns every location with at least one edge, sorted.
func (c *Graph) Locations() []string {
	return c.g.Vertices()
}

// Neighbors returns loc's direct neighbors and their distances.
// An unknown loc yields an empty map.
func (c *Graph) Neighbors(loc string) map[string]float64 {
	return c.g.Neighbors(loc)
}

// EdgeCount returns the number of recorded edges.
func (c *Graph) EdgeCount() int {
	return c.g.EdgeCount()
}

// Distance returns the direct walking distance between a and b.
//
// Identity always costs 0, even for locations the map has never seen. Without
// a direct edge the result is UnknownDistance; multi-hop routes are never
// considered here (see ShortestPath).
func (c *Graph) Distance(a, b string) float64 {
	if a == b {
		return 0
	}
	if w, ok := c.g.Weight(a, b); ok {
		return w
	}

	return UnknownDistance
}
