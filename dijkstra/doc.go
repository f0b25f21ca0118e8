// Package dijkstra implements Dijkstra's shortest-path algorithm on a core.Graph.
//
// Overview:
//
//   - Dijkstra computes minimum walking distances from a single source location,
//     optionally stopping as soon as a single target is finalized.
//   - It relies on a min-heap (container/heap) to always expand the next-closest location.
//   - Edge weights are non-negative by construction, so every popped location is final.
//
// Key features:
//
//   - Functional options: Source, Target, WithMaxDistance.
//   - Target: early exit plus path reconstruction via a predecessor map.
//   - MaxDistance: locations beyond the cap are never finalized (reachability queries).
//   - Deterministic: neighbors are expanded in ID order and equal distances pop in
//     insertion order, so repeated runs over the same graph return the same path.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), with up to E stale entries in the heap under "lazy decrease-key".
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrVertexNotFound: source or target absent from the graph.
//   - ErrNoPath:         target lies in another connected component.
//
// Thread safety:
//
//   - Each call owns its state. Concurrent calls on one graph are safe; neighbor
//     reads go through core.Graph's read lock.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source("Room 120"), dijkstra.Target("Dining Hall"))
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // unreachable
//	}
//	fmt.Println(res.Path, res.Distance)
package dijkstra
