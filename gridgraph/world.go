// Package gridgraph treats a rectangular 2D grid with a mutable obstacle
// set as a graph. It supports:
//
//   - Eight-connectivity with Euclidean arc costs (1 axial, √2 diagonal)
//   - Dynamic obstacles: Block / Unblock at any time
//   - The core.View read interface, so planners search it directly
//
// An arc touching a blocked cell costs +Inf; the neighbor topology itself
// never changes, only costs do, which is exactly what incremental planners
// repair against.
package gridgraph

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/replan/core"
)

// World is a width×height 8-connected grid with a mutable obstacle set.
// Cells are addressed by Point; as graph vertices they carry the ID "x,y".
type World struct {
	width, height int
	blocked       map[Point]bool
}

// NewWorld constructs an unobstructed width×height world.
// Returns ErrEmptyGrid if either dimension is < 1.
//
// Complexity: O(1); obstacle storage grows with Block calls only.
func NewWorld(width, height int) (*World, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}

	return &World{
		width:   width,
		height:  height,
		blocked: make(map[Point]bool),
	}, nil
}

// Width returns the world's width in cells.
func (w *World) Width() int { return w.width }

// Height returns the world's height in cells.
func (w *World) Height() int { return w.height }

// InBounds reports whether p lies within the world boundaries.
// Complexity: O(1).
func (w *World) InBounds(p Point) bool {
	return p.X >= 0 && p.X < w.width && p.Y >= 0 && p.Y < w.height
}

// Block marks p as an obstacle. Idempotent.
// Returns ErrOutOfBounds if p lies outside the world.
func (w *World) Block(p Point) error {
	if !w.InBounds(p) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.X, p.Y)
	}
	w.blocked[p] = true

	return nil
}

// Unblock clears the obstacle at p. Idempotent.
// Returns ErrOutOfBounds if p lies outside the world.
func (w *World) Unblock(p Point) error {
	if !w.InBounds(p) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.X, p.Y)
	}
	delete(w.blocked, p)

	return nil
}

// Blocked reports whether p carries an obstacle. Out-of-bounds points are
// treated as blocked.
func (w *World) Blocked(p Point) bool {
	return !w.InBounds(p) || w.blocked[p]
}

// Obstacles returns the current obstacle set in row-major order.
// Complexity: O(B log B) where B = number of obstacles.
func (w *World) Obstacles() []Point {
	pts := make([]Point, 0, len(w.blocked))
	for p := range w.blocked {
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}

		return pts[i].X < pts[j].X
	})

	return pts
}

// ID formats the vertex identifier for cell p: "x,y".
func (w *World) ID(p Point) string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// PointOf parses a vertex ID back into a Point.
// Returns ErrBadVertexID when id is not of the form "x,y".
func (w *World) PointOf(id string) (Point, error) {
	sep := strings.IndexByte(id, ',')
	if sep < 0 {
		return Point{}, fmt.Errorf("%w: %q", ErrBadVertexID, id)
	}
	x, errX := strconv.Atoi(id[:sep])
	y, errY := strconv.Atoi(id[sep+1:])
	if errX != nil || errY != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrBadVertexID, id)
	}

	return Point{X: x, Y: y}, nil
}

// Neighbors returns the in-bounds 8-neighborhood of p.
// Complexity: O(1) (at most 8 cells).
func (w *World) Neighbors(p Point) []Point {
	pts := make([]Point, 0, 8)
	for _, d := range neighborOffsets {
		n := Point{X: p.X + d[0], Y: p.Y + d[1]}
		if w.InBounds(n) {
			pts = append(pts, n)
		}
	}

	return pts
}

// StepCost returns the cost of moving between two adjacent cells:
// 1 for axial moves, √2 for diagonal moves, +Inf when the cells are not
// 8-adjacent or either endpoint is blocked.
func (w *World) StepCost(a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
		return math.Inf(1)
	}
	if w.Blocked(a) || w.Blocked(b) {
		return math.Inf(1)
	}
	if dx != 0 && dy != 0 {
		return math.Sqrt2
	}

	return 1
}

//
// core.View implementation.
//

// Successors returns the arcs from id to its in-bounds neighbors with
// their current costs (blocked arcs cost +Inf). The neighbor set is fixed
// by the grid topology; only costs vary with the obstacle set.
func (w *World) Successors(id string) []core.Arc {
	p, err := w.PointOf(id)
	if err != nil || !w.InBounds(p) {
		return nil
	}
	arcs := make([]core.Arc, 0, 8)
	for _, n := range w.Neighbors(p) {
		arcs = append(arcs, core.Arc{To: w.ID(n), Weight: w.StepCost(p, n)})
	}
	sort.Slice(arcs, func(i, j int) bool { return arcs[i].To < arcs[j].To })

	return arcs
}

// Predecessors equals Successors: the 8-neighborhood is symmetric and so
// are step costs.
func (w *World) Predecessors(id string) []core.Arc {
	return w.Successors(id)
}

// Cost returns the current step cost between the cells named by from and
// to, or +Inf when either ID is malformed, out of bounds, non-adjacent,
// or blocked.
func (w *World) Cost(from, to string) float64 {
	a, errA := w.PointOf(from)
	b, errB := w.PointOf(to)
	if errA != nil || errB != nil || !w.InBounds(a) || !w.InBounds(b) {
		return math.Inf(1)
	}

	return w.StepCost(a, b)
}

// HasVertex reports whether id names an in-bounds cell.
func (w *World) HasVertex(id string) bool {
	p, err := w.PointOf(id)

	return err == nil && w.InBounds(p)
}

// Euclid is the straight-line distance between the cells named by two
// vertex IDs — an admissible, consistent heuristic for 8-connected grids
// with unit axial costs. Malformed IDs yield 0 (still admissible).
func (w *World) Euclid(a, b string) float64 {
	pa, errA := w.PointOf(a)
	pb, errB := w.PointOf(b)
	if errA != nil || errB != nil {
		return 0
	}
	dx, dy := float64(pa.X-pb.X), float64(pa.Y-pb.Y)

	return math.Sqrt(dx*dx + dy*dy)
}
