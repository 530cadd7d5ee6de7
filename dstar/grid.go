package dstar

import (
	"math"

	"github.com/katalvlaran/replan/gridgraph"
)

// GridPlanner is the grid frontend of the classic D* planner: it binds a
// Planner to a gridgraph.World and exposes obstacle toggles and
// Point-typed paths.
type GridPlanner struct {
	world       *gridgraph.World
	planner     *Planner
	start, goal gridgraph.Point
}

// NewGrid constructs a planner over world from start to goal.
// Returns gridgraph.ErrOutOfBounds when either endpoint lies outside the
// world.
func NewGrid(world *gridgraph.World, start, goal gridgraph.Point, opts ...Option) (*GridPlanner, error) {
	if world == nil {
		return nil, ErrNilView
	}
	if !world.InBounds(start) || !world.InBounds(goal) {
		return nil, gridgraph.ErrOutOfBounds
	}
	p, err := New(world, world.ID(start), world.ID(goal), opts...)
	if err != nil {
		return nil, err
	}

	return &GridPlanner{
		world:   world,
		planner: p,
		start:   start,
		goal:    goal,
	}, nil
}

// World returns the planner's grid world.
func (gp *GridPlanner) World() *gridgraph.World { return gp.world }

// ComputeShortestPath runs (or resumes) the search.
// Reports whether the goal is reachable from the start.
func (gp *GridPlanner) ComputeShortestPath() bool {
	return gp.planner.ComputeShortestPath()
}

// AddObstacle blocks cell pt, re-opens the settled cells whose arcs the
// obstacle touched, and replans. Reports whether the goal remains
// reachable. Out-of-bounds points return gridgraph.ErrOutOfBounds.
func (gp *GridPlanner) AddObstacle(pt gridgraph.Point) (bool, error) {
	if err := gp.world.Block(pt); err != nil {
		return false, err
	}

	return gp.replanAround(pt), nil
}

// RemoveObstacle clears cell pt, re-opens the surrounding settled cells so
// the cheaper arcs propagate, and replans. Reports whether the goal is
// reachable. Out-of-bounds points return gridgraph.ErrOutOfBounds.
func (gp *GridPlanner) RemoveObstacle(pt gridgraph.Point) (bool, error) {
	if err := gp.world.Unblock(pt); err != nil {
		return false, err
	}

	return gp.replanAround(pt), nil
}

// replanAround re-opens pt and its neighborhood (every vertex with an arc
// whose cost the toggle changed), then drains the queue relative to the
// start. The cell whose arcs changed may itself be CLOSED with a now-stale
// h; its neighbors carry the arcs in the other direction.
func (gp *GridPlanner) replanAround(pt gridgraph.Point) bool {
	p := gp.planner
	if p.tagOf(gp.world.ID(pt)) == TagClosed {
		p.insert(gp.world.ID(pt), p.hOf(gp.world.ID(pt)))
	}
	for _, n := range gp.world.Neighbors(pt) {
		id := gp.world.ID(n)
		if p.tagOf(id) == TagClosed {
			p.insert(id, p.hOf(id))
		}
	}

	return p.ComputeShortestPath()
}

// Path extracts the start→goal path as grid points, nil when
// unreachable.
func (gp *GridPlanner) Path() []gridgraph.Point {
	ids := gp.planner.Path()
	if ids == nil {
		return nil
	}
	pts := make([]gridgraph.Point, len(ids))
	for i, id := range ids {
		pt, err := gp.world.PointOf(id)
		if err != nil {
			return nil
		}
		pts[i] = pt
	}

	return pts
}

// PathCost returns the cost of the current path, +Inf when unreachable.
func (gp *GridPlanner) PathCost() float64 {
	return gp.planner.PathCost()
}

// Reachable reports whether h(start) is finite.
func (gp *GridPlanner) Reachable() bool {
	return !math.IsInf(gp.planner.PathCost(), 1)
}
