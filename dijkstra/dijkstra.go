// Package dijkstra implements the one-shot Dijkstra baseline the
// incremental planners are verified against.
//
// It computes minimum costs from a single source to every reachable
// vertex of a core.View, processing vertices in order of increasing
// distance with a lazy-decrease-key min-heap: +Inf arcs (blocked edges)
// are never traversed, stale heap entries are skipped on pop.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) under the lazy-decrease-key strategy.
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/replan/core"
)

// Dijkstra computes shortest distances from Options.Source to all other
// vertices of view.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance; unreached vertices
//     are absent (treat absence as +Inf).
//   - prev: predecessor map when WithReturnPath() is set (nil otherwise);
//     prev[v] == u means the shortest path to v arrives through u.
//   - err:  ErrEmptySource, ErrNilView, or ErrVertexNotFound.
//
// Validation order: Source non-empty, view non-nil, Source known.
func Dijkstra(view core.View, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if view == nil {
		return nil, nil, ErrNilView
	}
	if !view.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	r := &runner{
		view:    view,
		options: cfg,
		dist:    make(map[string]float64),
		visited: make(map[string]bool),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string)
	}
	r.init()
	r.process()

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	view    core.View
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// init seeds the heap with the source at distance 0.
func (r *runner) init() {
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unfinalized vertex and relaxes
// its outgoing arcs. Terminates when the heap drains or the minimum
// distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			// stale entry under lazy decrease-key
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax attempts to improve distances to every successor of u.
// Assumes dist[u] is finalized.
func (r *runner) relax(u string) {
	for _, arc := range r.view.Successors(u) {
		if math.IsInf(arc.Weight, 1) || arc.To == u {
			// blocked arc or self-loop: never part of a shortest path
			continue
		}
		newDist := r.dist[u] + arc.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		if cur, ok := r.dist[arc.To]; ok && newDist >= cur {
			continue
		}
		r.dist[arc.To] = newDist
		if r.prev != nil {
			r.prev[arc.To] = u
		}
		heap.Push(&r.pq, &nodeItem{id: arc.To, dist: newDist})
	}
}

// PathTo rebuilds the source→target path from a predecessor map produced
// with WithReturnPath. Returns nil when target was not reached.
func PathTo(prev map[string]string, source, target string) []string {
	if source == target {
		return []string{source}
	}
	var rev []string
	cur := target
	for cur != source {
		rev = append(rev, cur)
		nxt, ok := prev[cur]
		if !ok {
			return nil
		}
		cur = nxt
	}
	rev = append(rev, source)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, with ties
// broken by vertex ID so runs are deterministic.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
