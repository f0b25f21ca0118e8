// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Adjacent).
// Determinism:
//   - Adjacent() returns neighbors sorted by ID asc.
// Concurrency:
//   - Both methods snapshot under mu read lock; results never alias internal maps.

package core

import "sort"

// Neighbor is one weighted adjacency entry.
type Neighbor struct {
	ID     string  // neighbor location ID
	Weight float64 // edge weight in meters
}

// Neighbors returns a copy of id's neighbor → weight mapping.
//
// Behavior highlights:
//   - Unknown id yields an empty, non-nil map (never an error).
//   - The returned map is owned by the caller; mutating it does not touch the graph.
//
// Complexity: O(d) where d is the degree of id.
func (g *Graph) Neighbors(id string) map[string]float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket := g.adjacency[id]
	out := make(map[string]float64, len(bucket))
	for nb, w := range bucket {
		out[nb] = w
	}

	return out
}

// Adjacent returns the neighbors of id with their weights, sorted by ID ascending.
// Algorithms use it for a deterministic expansion order.
// Complexity: O(d log d)
func (g *Graph) Adjacent(id string) []Neighbor {
	g.mu.RLock()
	bucket := g.adjacency[id]
	out := make([]Neighbor, 0, len(bucket))
	for nb, w := range bucket {
		out = append(out, Neighbor{ID: nb, Weight: w})
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}
