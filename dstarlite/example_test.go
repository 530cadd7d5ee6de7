// Package dstarlite_test provides runnable examples for the D* Lite
// planner, demonstrating the initial solve and an incremental repair.
package dstarlite_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/replan/dstarlite"
)

// ExamplePlanner demonstrates planning on a small directed graph and
// repairing the plan after an edge becomes impassable.
func ExamplePlanner() {
	// 1) Build the planner and its graph (directed, weighted edges).
	p := dstarlite.New()
	for _, e := range []struct {
		from, to string
		w        float64
	}{
		{"1", "2", 1}, {"1", "3", 5}, {"2", "3", 2}, {"2", "4", 4},
		{"3", "4", 1}, {"3", "5", 6}, {"4", "5", 3}, {"4", "6", 4},
		{"5", "6", 2},
	} {
		_ = p.AddEdge(e.from, e.to, e.w)
	}

	// 2) Plant the goal and solve from vertex 1 to vertex 6.
	if err := p.Initialize("1", "6"); err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err := p.ComputeShortestPath(); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Path(), p.PathCost())

	// 3) The edge 3→4 becomes impassable; the plan is repaired, not
	//    recomputed.
	if _, err := p.UpdateEdgeCost("3", "4", math.Inf(1)); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Path(), p.PathCost())
	// Output:
	// [1 2 3 4 6] 8
	// [1 2 4 6] 9
}

// ExamplePlanner_movingStart demonstrates the km key modifier: the robot
// advances along the path and replans cheaply from its new position.
func ExamplePlanner_movingStart() {
	p := dstarlite.New()
	_ = p.AddEdge("1", "2", 1)
	_ = p.AddEdge("2", "3", 2)
	_ = p.AddEdge("1", "3", 5)

	_ = p.Initialize("1", "3")
	_, _ = p.ComputeShortestPath()
	fmt.Println(p.Path(), p.PathCost())

	// the robot has moved to vertex 2
	_, _ = p.UpdateStartAndReplan("2")
	fmt.Println(p.Path(), p.PathCost())
	// Output:
	// [1 2 3] 3
	// [2 3] 2
}
