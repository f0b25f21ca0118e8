// File: methods_vertices.go
// Role: Location queries: HasVertex/Vertices/VertexCount.
// Determinism:
//   - Vertices() returns IDs sorted lexicographically.

package core

import "sort"

// HasVertex reports whether id has at least one recorded edge.
// Locations only enter the graph through AddEdge, so isolated ids never appear.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// Vertices returns every known location ID, sorted ascending.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of known locations.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}
