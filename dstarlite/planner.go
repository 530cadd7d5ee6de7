// Package dstarlite implements the D* Lite incremental shortest-path
// planner over directed weighted graphs.
//
// The planner searches backward from the goal: g(v) is the best known
// cost from v to the goal and rhs(v) its one-step lookahead. Edge-cost
// changes and start moves repair the existing search tree instead of
// recomputing it; the km key modifier keeps heap order valid as the start
// travels.
package dstarlite

import (
	"math"

	"github.com/katalvlaran/replan/core"
	"github.com/katalvlaran/replan/pqueue"
)

// Planner is a D* Lite planner. It owns its graph: build the graph through
// AddNode/AddEdge, then Initialize and ComputeShortestPath, then repair
// with the UpdateEdgeCost/UpdateStartAndReplan family as the world changes.
//
// A Planner is single-threaded and not reentrant; the heuristic must not
// call back into the planner.
type Planner struct {
	graph     *core.Graph
	heuristic Heuristic
	eps       float64

	start, goal string
	km          float64

	// g and rhs default to +Inf for vertices they do not contain;
	// vertices are touched lazily and never reset between repairs.
	g   map[string]float64
	rhs map[string]float64

	queue *pqueue.Queue

	initialized bool
}

// New constructs a Planner with an empty graph.
// Options: WithHeuristic, WithEpsilon.
func New(opts ...Option) *Planner {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Planner{
		graph:     core.NewGraph(core.WithLoops()),
		heuristic: cfg.Heuristic,
		eps:       cfg.Epsilon,
	}
}

// AddNode registers a vertex. Idempotent.
func (p *Planner) AddNode(id string) error {
	return p.graph.AddVertex(id)
}

// AddEdge inserts (or overwrites) the directed edge from→to with cost w.
// Re-adding overwrites the cost and its restore baseline.
func (p *Planner) AddEdge(from, to string, w float64) error {
	return p.graph.AddEdge(from, to, w)
}

// Graph exposes the planner's graph as a read-only view.
func (p *Planner) Graph() core.View { return p.graph }

// Start returns the current start vertex ID.
func (p *Planner) Start() string { return p.start }

// Goal returns the goal vertex ID.
func (p *Planner) Goal() string { return p.goal }

// Km returns the accumulated key modifier. It is non-decreasing across
// successive UpdateStartAndReplan calls.
func (p *Planner) Km() float64 { return p.km }

// gOf returns g(id), defaulting to +Inf for untouched vertices.
func (p *Planner) gOf(id string) float64 {
	if v, ok := p.g[id]; ok {
		return v
	}

	return math.Inf(1)
}

// rhsOf returns rhs(id), defaulting to +Inf for untouched vertices.
func (p *Planner) rhsOf(id string) float64 {
	if v, ok := p.rhs[id]; ok {
		return v
	}

	return math.Inf(1)
}

// locallyConsistent reports |g − rhs| ≤ eps, treating two +Inf values as
// equal (never by subtraction: Inf − Inf is NaN).
func (p *Planner) locallyConsistent(id string) bool {
	gv, rv := p.gOf(id), p.rhsOf(id)
	if math.IsInf(gv, 1) && math.IsInf(rv, 1) {
		return true
	}

	return math.Abs(gv-rv) <= p.eps
}

// calculateKey derives the queue priority of id from the current g/rhs,
// heuristic distance to the start, and km:
//
//	key(v) = ( min(g,rhs) + h(v, start) + km, min(g,rhs) )
func (p *Planner) calculateKey(id string) pqueue.Key {
	m := math.Min(p.gOf(id), p.rhsOf(id))

	return pqueue.Key{
		K1: m + p.heuristic(id, p.start) + p.km,
		K2: m,
	}
}

// Initialize resets all planner state for a fresh (start, goal) pair:
// every vertex back to g = rhs = +Inf, km = 0, the goal seeded with
// rhs = 0 as the only queued vertex.
//
// Returns ErrVertexNotFound if either ID was never added.
func (p *Planner) Initialize(start, goal string) error {
	if !p.graph.HasVertex(start) || !p.graph.HasVertex(goal) {
		return ErrVertexNotFound
	}
	p.start = start
	p.goal = goal
	p.km = 0
	p.g = make(map[string]float64)
	p.rhs = make(map[string]float64)
	p.queue = pqueue.NewQueue()
	p.rhs[goal] = 0
	_ = p.queue.Insert(goal, p.calculateKey(goal))
	p.initialized = true

	return nil
}

// updateVertex recomputes rhs(v) as the one-step lookahead over current
// successors, then re-queues v iff it is locally inconsistent. This is
// the sole mutation point for queue membership, so the invariant
// "queued ⇔ inconsistent" holds whenever the kernel is at rest.
func (p *Planner) updateVertex(v string) {
	if v != p.goal {
		best := math.Inf(1)
		for _, s := range p.graph.Successors(v) {
			if s.To == v {
				// self-loops never improve a non-negative lookahead
				continue
			}
			if c := s.Weight + p.gOf(s.To); c < best {
				best = c
			}
		}
		p.rhs[v] = best
	}
	p.queue.Remove(v)
	if !p.locallyConsistent(v) {
		_ = p.queue.Insert(v, p.calculateKey(v))
	}
}

// ComputeShortestPath drains the queue until the start is locally
// consistent and no queued key orders before the start's key, repairing
// g values along the way. Reports whether the goal is reachable from the
// start under current edge costs.
//
// Complexity: O(Δ log V) where Δ is the set of vertices the change
// actually disturbs; a fresh search degenerates to A* from the goal.
func (p *Planner) ComputeShortestPath() (bool, error) {
	if !p.initialized {
		return false, ErrNotInitialized
	}
	for !p.queue.IsEmpty() &&
		(p.queue.TopKey().Less(p.calculateKey(p.start)) || !p.locallyConsistent(p.start)) {
		u := p.queue.Peek()
		kOld := p.queue.TopKey()
		kNew := p.calculateKey(u)

		switch {
		case kOld.Less(kNew):
			// stale key: the vertex's priority has risen since insertion
			p.queue.Update(u, kNew)

		case p.gOf(u) > p.rhsOf(u):
			// overconsistent: commit the lower cost and relax predecessors
			p.g[u] = p.rhsOf(u)
			p.queue.Remove(u)
			for _, pr := range p.graph.Predecessors(u) {
				p.updateVertex(pr.To)
			}

		default:
			// underconsistent: invalidate and reschedule u and its
			// predecessors
			p.g[u] = math.Inf(1)
			p.updateVertex(u)
			for _, pr := range p.graph.Predecessors(u) {
				p.updateVertex(pr.To)
			}
		}
	}

	return !math.IsInf(p.rhsOf(p.start), 1), nil
}

// UpdateEdgeCost applies a single edge-cost change (use +Inf to block)
// and repairs the plan. An unknown edge is a silent no-op.
// Reports whether the goal remains reachable.
func (p *Planner) UpdateEdgeCost(from, to string, w float64) (bool, error) {
	return p.UpdateEdgeCosts([]EdgeUpdate{{From: from, To: to, Cost: w}})
}

// UpdateEdgeCosts applies a batch of cost changes: all costs first, then
// one updateVertex per distinct from-endpoint, then a single kernel run.
// Unknown edges within the batch are silent no-ops.
// Reports whether the goal remains reachable.
func (p *Planner) UpdateEdgeCosts(updates []EdgeUpdate) (bool, error) {
	if !p.initialized {
		return false, ErrNotInitialized
	}
	touched := make(map[string]bool, len(updates))
	for _, u := range updates {
		changed, err := p.graph.SetCost(u.From, u.To, u.Cost)
		if err != nil {
			return false, err
		}
		if changed {
			touched[u.From] = true
		}
	}
	if len(touched) == 0 {
		return !math.IsInf(p.rhsOf(p.start), 1), nil
	}
	for from := range touched {
		p.updateVertex(from)
	}

	return p.ComputeShortestPath()
}

// RestoreEdgeCost resets an edge to the cost it was added with and
// repairs the plan. An unknown edge is a silent no-op.
// Reports whether the goal remains reachable.
func (p *Planner) RestoreEdgeCost(from, to string) (bool, error) {
	if !p.initialized {
		return false, ErrNotInitialized
	}
	if !p.graph.ResetCost(from, to) {
		return !math.IsInf(p.rhsOf(p.start), 1), nil
	}
	p.updateVertex(from)

	return p.ComputeShortestPath()
}

// UpdateStartAndReplan moves the start (the robot advanced) and repairs
// the plan. Instead of re-keying the whole queue, the heuristic distance
// between the old and new start is folded into km, which participates in
// every subsequent key computation. No vertex state is reset.
//
// Reports whether the goal is reachable from the new start.
// Returns ErrVertexNotFound for an unknown ID.
func (p *Planner) UpdateStartAndReplan(newStart string) (bool, error) {
	if !p.initialized {
		return false, ErrNotInitialized
	}
	if !p.graph.HasVertex(newStart) {
		return false, ErrVertexNotFound
	}
	p.km += p.heuristic(p.start, newStart)
	p.start = newStart

	return p.ComputeShortestPath()
}
