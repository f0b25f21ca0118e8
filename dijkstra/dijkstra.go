package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/campusmap/core"
)

// Dijkstra computes shortest walking distances from Options.Source over g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain Source (ErrVertexNotFound).
//  3. If a Target is set, g must contain it (ErrVertexNotFound).
//
// With a Target, the search stops as soon as the target is popped from the
// heap and Result.Path holds the reconstructed route. If the heap drains first,
// ErrNoPath is returned. Without a Target, every reachable location within
// MaxDistance is settled into Result.Dist.
//
// Weights are non-negative by construction (core.Graph rejects negatives), so a
// location popped once is final and never re-expanded.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return Result{}, fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}
	if cfg.HasTarget && !g.HasVertex(cfg.Target) {
		return Result{}, fmt.Errorf("%w: target %q", ErrVertexNotFound, cfg.Target)
	}

	// 3) Run
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64),
		prev:    make(map[string]string),
		settled: make(map[string]bool),
	}
	r.init()
	reached := r.process()

	if !cfg.HasTarget {
		return Result{Dist: r.settledDist()}, nil
	}
	if !reached {
		return Result{}, fmt.Errorf("%w: %q → %q", ErrNoPath, cfg.Source, cfg.Target)
	}

	return Result{
		Path:     r.path(cfg.Target),
		Distance: r.dist[cfg.Target],
		Dist:     r.settledDist(),
	}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph        // read-only within Dijkstra
	options Options            // Source, Target, MaxDistance
	dist    map[string]float64 // best known distance from Source
	prev    map[string]string  // predecessor on the best known path
	settled map[string]bool    // finalized locations
	pq      nodePQ             // lazy min-heap
	seq     uint64             // push counter, breaks distance ties
}

// init seeds the heap with Source at distance zero.
func (r *runner) init() {
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

// process pops locations in increasing distance order until the heap drains,
// the target is finalized, or the next distance exceeds MaxDistance.
// It reports whether the target was finalized.
func (r *runner) process() bool {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Stale entry from lazy decrease-key.
		if r.settled[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.settled[item.id] = true

		if r.options.HasTarget && item.id == r.options.Target {
			return true
		}

		r.relax(item.id)
	}

	return false
}

// relax tries to improve every unsettled neighbor of u.
// Assumes dist[u] is final.
func (r *runner) relax(u string) {
	for _, nb := range r.g.Adjacent(u) {
		if r.settled[nb.ID] {
			continue
		}
		newDist := r.dist[u] + nb.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		if old, seen := r.dist[nb.ID]; seen && newDist >= old {
			continue
		}
		r.dist[nb.ID] = newDist
		r.prev[nb.ID] = u
		r.push(nb.ID, newDist)
	}
}

func (r *runner) push(id string, d float64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
}

// path walks prev back from target to Source.
func (r *runner) path(target string) []string {
	var rev []string
	for at := target; ; at = r.prev[at] {
		rev = append(rev, at)
		if at == r.options.Source {
			break
		}
	}
	out := make([]string, len(rev))
	for i, id := range rev {
		out[len(rev)-1-i] = id
	}

	return out
}

// settledDist copies distances of finalized locations only.
func (r *runner) settledDist() map[string]float64 {
	out := make(map[string]float64, len(r.settled))
	for id := range r.settled {
		out[id] = r.dist[id]
	}

	return out
}

// nodeItem is a heap entry: a location and a tentative distance.
type nodeItem struct {
	id   string
	dist float64
	seq  uint64 // insertion order
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by seq.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
