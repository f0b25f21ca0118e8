// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, GraphOption, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - A single sync.RWMutex (mu) guards the adjacency map.
//   - AddEdge is the only writer; every query takes the read lock.

// Package core defines the symmetric weighted adjacency store behind a campus map.
//
// Errors:
//
//	ErrNegativeWeight - edge weight below zero.
//	ErrBadWeight      - edge weight is NaN or infinite.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeWeight indicates an edge weight below zero was supplied.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates an edge weight that is not a finite number.
	ErrBadWeight = errors.New("core: edge weight is not finite")
)

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity presizes the adjacency map for n locations.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.adjacency = make(map[string]map[string]float64, n)
		}
	}
}

// Graph is an undirected, weighted, in-memory location graph.
//
// adjacency[a][b] holds the weight of the edge a—b in meters.
// Invariant: adjacency[a][b] == adjacency[b][a] for every stored edge.
// Only AddEdge writes to adjacency, always under mu.Lock.
type Graph struct {
	mu        sync.RWMutex                  // guards adjacency
	adjacency map[string]map[string]float64 // location → neighbor → meters
	edges     int                           // undirected edge count
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
