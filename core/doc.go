// Package core provides the thread-safe, in-memory adjacency store used by
// the campus map: locations connected by undirected, weighted edges.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected only: AddEdge(a, b, w) records a—b in both directions with one weight.
//   - Weights are meters, finite and non-negative (ErrBadWeight, ErrNegativeWeight).
//   - Insert-or-overwrite: repeating AddEdge is idempotent, a new weight replaces the old.
//   - Locations exist only through their edges; there is no AddVertex.
//   - One sync.RWMutex: queries run concurrently, AddEdge is exclusive.
//
// Storage:
//
//	adjacency[a][b] = w   and   adjacency[b][a] = w
//
// Core Methods:
//
//	// Mutation
//	AddEdge(a, b string, w float64) error   // O(1)
//
//	// Edge queries
//	HasEdge(a, b string) bool               // O(1)
//	Weight(a, b string) (float64, bool)     // O(1)
//	EdgeCount() int                         // O(1)
//
//	// Location queries
//	HasVertex(id string) bool               // O(1)
//	Vertices() []string                     // O(V log V), sorted
//	VertexCount() int                       // O(1)
//
//	// Neighborhood
//	Neighbors(id string) map[string]float64 // O(d), copy, empty for unknown id
//	Adjacent(id string) []Neighbor          // O(d log d), sorted by ID
//
// Determinism:
//
//	Vertices() and Adjacent() are sorted so that traversals built on top of
//	them (see package dijkstra) expand locations in a stable order.
package core
