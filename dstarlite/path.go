package dstarlite

import (
	"math"

	"github.com/katalvlaran/replan/core"
)

// Path extracts the current least-cost path from start to goal by
// greedily following, at each vertex, the successor minimizing
// cost(v, s) + g(s). Returns nil when the goal is unreachable, the
// planner is uninitialized, or the walk exceeds 2·|V| steps (the latter
// detects pathological inconsistency and is a defect, not a user error).
//
// Complexity: O(L·d log d) for a path of L hops.
func (p *Planner) Path() []string {
	if !p.initialized || math.IsInf(p.rhsOf(p.start), 1) {
		return nil
	}
	limit := 2 * p.graph.VertexCount()
	path := []string{p.start}
	cur := p.start
	for cur != p.goal {
		if len(path) > limit {
			return nil
		}
		best := math.Inf(1)
		next := ""
		for _, s := range p.graph.Successors(cur) {
			if s.To == cur {
				continue
			}
			if c := s.Weight + p.gOf(s.To); c < best {
				best = c
				next = s.To
			}
		}
		if next == "" || math.IsInf(best, 1) {
			return nil
		}
		cur = next
		path = append(path, cur)
	}

	return path
}

// PathCost returns the cost of the current least-cost path from start to
// goal, or +Inf when unreachable or uninitialized.
func (p *Planner) PathCost() float64 {
	if !p.initialized {
		return math.Inf(1)
	}

	return p.rhsOf(p.start)
}

// EdgeStates returns a snapshot of every edge's current cost,
// keyed by (from, to).
func (p *Planner) EdgeStates() map[core.EdgeKey]float64 {
	return p.graph.EdgeStates()
}
