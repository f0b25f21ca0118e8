// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion and edge queries: AddEdge/HasEdge/Weight/EdgeCount.
// Concurrency:
//   - AddEdge under mu write lock.
//   - Read queries under mu read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge inserts or overwrites the undirected edge a—b with the given weight.
//
// Steps:
//  1. Validate weight (finite, non-negative).
//  2. Lock mu.
//  3. Ensure adjacency buckets for a and b.
//  4. Store weight in both directions (a self-loop is stored once).
//
// Repeating a call with the same weight leaves the graph unchanged; a
// different weight silently replaces the previous one.
//
// Errors:
//   - ErrBadWeight if weight is NaN or ±Inf.
//   - ErrNegativeWeight if weight < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: edge %q-%q weight=%v", ErrBadWeight, a, b, weight)
	}
	if weight < 0 {
		return fmt.Errorf("%w: edge %q-%q weight=%v", ErrNegativeWeight, a, b, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ensureAdjacency(g, a)
	ensureAdjacency(g, b)

	if _, exists := g.adjacency[a][b]; !exists {
		g.edges++
	}
	g.adjacency[a][b] = weight
	g.adjacency[b][a] = weight

	return nil
}

// HasEdge reports whether b is a direct neighbor of a.
// By symmetry this equals HasEdge(b, a).
// Complexity: O(1)
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[a][b]

	return ok
}

// Weight returns the weight of the direct edge a—b and whether it exists.
// Complexity: O(1)
func (g *Graph) Weight(a, b string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adjacency[a][b]

	return w, ok
}

// EdgeCount returns the number of undirected edges (each a—b counted once).
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// ensureAdjacency creates the neighbor bucket for id if missing.
// Caller must hold mu write lock.
func ensureAdjacency(g *Graph, id string) {
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]float64)
	}
}
