// Package dstar implements the classic D* incremental planner: a
// goal-rooted backward search whose per-vertex state is an h estimate, a
// NEW/OPEN/CLOSED tag, a backpointer toward the goal, and the k priority
// the vertex last entered the open queue at. Cost increases propagate as
// RAISE waves and decreases as LOWER waves.
package dstar

import (
	"math"

	"github.com/katalvlaran/replan/core"
	"github.com/katalvlaran/replan/pqueue"
)

// Planner is a classic D* planner over an arbitrary directed graph view.
// The view stays owned by the caller; only its costs may change between
// repairs (use ModifyCost to tell the planner which vertices a change
// touched).
//
// Single-threaded, not reentrant.
type Planner struct {
	view core.View
	eps  float64

	start, goal string

	// h defaults to +Inf and tag to NEW for untouched vertices.
	h      map[string]float64
	k      map[string]float64
	tag    map[string]Tag
	parent map[string]string

	open *pqueue.Queue
}

// New constructs a planner for view with the given start and goal, and
// plants the goal (h = 0) on the open queue. Call ComputeShortestPath to
// obtain the first solution.
//
// Returns ErrNilView / ErrVertexNotFound on bad inputs.
func New(view core.View, start, goal string, opts ...Option) (*Planner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if view == nil {
		return nil, ErrNilView
	}
	if !view.HasVertex(start) || !view.HasVertex(goal) {
		return nil, ErrVertexNotFound
	}
	p := &Planner{
		view:   view,
		eps:    cfg.Epsilon,
		start:  start,
		goal:   goal,
		h:      make(map[string]float64),
		k:      make(map[string]float64),
		tag:    make(map[string]Tag),
		parent: make(map[string]string),
		open:   pqueue.NewQueue(),
	}
	p.h[goal] = 0
	p.k[goal] = 0
	p.tag[goal] = TagOpen
	_ = p.open.Insert(goal, pqueue.Key{K1: 0})

	return p, nil
}

// Start returns the start vertex ID.
func (p *Planner) Start() string { return p.start }

// Goal returns the goal vertex ID.
func (p *Planner) Goal() string { return p.goal }

// hOf returns h(id), defaulting to +Inf for untouched vertices.
func (p *Planner) hOf(id string) float64 {
	if v, ok := p.h[id]; ok {
		return v
	}

	return math.Inf(1)
}

// tagOf returns the lifecycle tag of id (NEW when untouched).
func (p *Planner) tagOf(id string) Tag { return p.tag[id] }

// Parent returns the backpointer of id toward the goal, "" when none.
func (p *Planner) Parent(id string) string { return p.parent[id] }

// floatEq compares with the configured absolute epsilon; two +Inf values
// are equal by identity, never by subtraction.
func (p *Planner) floatEq(a, b float64) bool {
	if math.IsInf(a, 1) && math.IsInf(b, 1) {
		return true
	}

	return math.Abs(a-b) <= p.eps
}

// insert places v on the open queue at the k priority mandated by its
// tag, then assigns h(v) = hNew:
//
//	NEW:    k = hNew
//	OPEN:   k = min(k, hNew)
//	CLOSED: k = min(h_before, hNew)
//
// h_before is captured before the reassignment within this call. A vertex
// already queued is re-keyed in place — never duplicated.
func (p *Planner) insert(v string, hNew float64) {
	hBefore := p.hOf(v)
	switch p.tagOf(v) {
	case TagNew:
		p.k[v] = hNew
	case TagOpen:
		p.k[v] = math.Min(p.k[v], hNew)
	case TagClosed:
		p.k[v] = math.Min(hBefore, hNew)
	}
	p.h[v] = hNew
	p.tag[v] = TagOpen
	p.open.MoveOrInsert(v, pqueue.Key{K1: p.k[v]})
}

// processState expands the minimum-k vertex once: a RAISE adjustment when
// its h exceeds the priority it was dequeued at, then cost propagation to
// its neighbors (LOWER when the state is consistent, the raise-wave rules
// otherwise).
//
// kOld is the priority the vertex was dequeued at — min(h, h_old)
// accumulated by insert — not the next top's priority.
func (p *Planner) processState() {
	u, kEntry := p.open.PopMin()
	kOld := kEntry.K1
	p.tag[u] = TagClosed

	// RAISE adjustment: the state was put back with a raised h; try to
	// rewire it through a neighbor whose own h is already settled
	// (h ≤ kOld) before propagating.
	if kOld < p.hOf(u) {
		for _, s := range p.view.Successors(u) {
			hn := p.hOf(s.To)
			if hn <= kOld+p.eps && p.hOf(u) > hn+s.Weight {
				p.parent[u] = s.To
				p.h[u] = hn + s.Weight
			}
		}
	}

	hu := p.hOf(u)
	if p.floatEq(kOld, hu) {
		// LOWER: u's cost is settled; push improvements (and exact
		// updates for its own children) into every predecessor.
		for _, pr := range p.view.Predecessors(u) {
			n := pr.To
			hNew := hu + pr.Weight
			switch {
			case p.tagOf(n) == TagNew:
				if math.IsInf(hNew, 1) {
					// cells behind blocked arcs stay NEW
					continue
				}
				p.parent[n] = u
				p.insert(n, hNew)
			case p.parent[n] == u && !p.floatEq(p.hOf(n), hNew):
				p.parent[n] = u
				p.insert(n, hNew)
			case p.parent[n] != u && p.hOf(n) > hNew:
				p.parent[n] = u
				p.insert(n, hNew)
			}
		}

		return
	}

	// Still a RAISE state: propagate the raise to children, re-open u
	// when a neighbor could lower it later, and re-open settled
	// neighbors that could serve as better parents once re-expanded.
	for _, pr := range p.view.Predecessors(u) {
		n := pr.To
		hNew := hu + pr.Weight
		switch {
		case p.tagOf(n) == TagNew:
			if math.IsInf(hNew, 1) {
				continue
			}
			p.parent[n] = u
			p.insert(n, hNew)
		case p.parent[n] == u && !p.floatEq(p.hOf(n), hNew):
			p.parent[n] = u
			p.insert(n, hNew)
		case p.parent[n] != u && p.hOf(n) > hNew:
			p.insert(u, hu)
		}
	}
	for _, s := range p.view.Successors(u) {
		n := s.To
		if p.parent[u] != n && hu > p.hOf(n)+s.Weight &&
			p.tagOf(n) == TagClosed && p.hOf(n) > kOld+p.eps {
			p.insert(n, p.hOf(n))
		}
	}
}

// ComputeShortestPath drains the open queue until no queued priority
// orders before h(start) and h(start) is finite — at which point h(start)
// is the true least cost from start to goal under current arc costs.
// Reports whether the goal is reachable.
func (p *Planner) ComputeShortestPath() bool {
	for !p.open.IsEmpty() &&
		(p.open.TopKey().K1 < p.hOf(p.start) || math.IsInf(p.hOf(p.start), 1)) {
		p.processState()
	}

	return !math.IsInf(p.hOf(p.start), 1)
}

// ModifyCost tells the planner that arcs at vertex id changed cost:
// a CLOSED vertex is re-opened at its current h so the change propagates,
// then the queue is drained back to quiescence relative to the start.
// Reports whether the goal remains reachable.
func (p *Planner) ModifyCost(id string) bool {
	if p.tagOf(id) == TagClosed {
		p.insert(id, p.hOf(id))
	}

	return p.ComputeShortestPath()
}

// Path extracts the start→goal path by following backpointers.
// Returns nil when the goal is unreachable, a hop is blocked, or the walk
// exceeds 2·|touched vertices| steps (pathological inconsistency).
func (p *Planner) Path() []string {
	if math.IsInf(p.hOf(p.start), 1) {
		return nil
	}
	limit := 2*len(p.tag) + 2
	path := []string{p.start}
	cur := p.start
	for cur != p.goal {
		if len(path) > limit {
			return nil
		}
		next, ok := p.parent[cur]
		if !ok || math.IsInf(p.view.Cost(cur, next), 1) {
			return nil
		}
		cur = next
		path = append(path, cur)
	}

	return path
}

// PathCost returns h(start): the cost of the current start→goal path,
// +Inf when unreachable.
func (p *Planner) PathCost() float64 {
	return p.hOf(p.start)
}
