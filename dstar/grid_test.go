package dstar_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/replan/dstar"
	"github.com/katalvlaran/replan/gridgraph"
)

// requireValidGridPath asserts a path is 8-connected, obstacle-free,
// starts and ends where expected, and sums to the reported cost.
func requireValidGridPath(t *testing.T, w *gridgraph.World, path []gridgraph.Point, start, goal gridgraph.Point, cost float64) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0])
	require.Equal(t, goal, path[len(path)-1])
	total := 0.0
	for i, p := range path {
		require.False(t, w.Blocked(p), "path crosses obstacle at %v", p)
		if i == 0 {
			continue
		}
		step := w.StepCost(path[i-1], p)
		require.False(t, math.IsInf(step, 1), "hop %v → %v is not 8-connected", path[i-1], p)
		total += step
	}
	require.InDelta(t, cost, total, 1e-9)
}

// TestGrid_DynamicObstacles: a 20×10 world, plan, drop two obstacles,
// replan. The second path must avoid them and cost at least the first.
func TestGrid_DynamicObstacles(t *testing.T) {
	w, err := gridgraph.NewWorld(20, 10)
	require.NoError(t, err)
	start, goal := gridgraph.Point{X: 2, Y: 2}, gridgraph.Point{X: 17, Y: 7}

	gp, err := dstar.NewGrid(w, start, goal)
	require.NoError(t, err)
	require.True(t, gp.ComputeShortestPath())

	first := gp.Path()
	firstCost := gp.PathCost()
	requireValidGridPath(t, w, first, start, goal, firstCost)

	for _, obs := range []gridgraph.Point{{X: 5, Y: 2}, {X: 6, Y: 2}} {
		reachable, err := gp.AddObstacle(obs)
		require.NoError(t, err)
		require.True(t, reachable)
	}

	second := gp.Path()
	secondCost := gp.PathCost()
	requireValidGridPath(t, w, second, start, goal, secondCost)
	require.GreaterOrEqual(t, secondCost, firstCost-1e-9)
}

// TestGrid_CorridorBlockAndReopen: a 5×1 corridor forces a unique path;
// blocking the middle severs it, unblocking restores it exactly.
func TestGrid_CorridorBlockAndReopen(t *testing.T) {
	w, err := gridgraph.NewWorld(5, 1)
	require.NoError(t, err)
	start, goal := gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 4, Y: 0}

	gp, err := dstar.NewGrid(w, start, goal)
	require.NoError(t, err)
	require.True(t, gp.ComputeShortestPath())
	require.InDelta(t, 4.0, gp.PathCost(), 1e-9)

	wantPath := []gridgraph.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
	if diff := cmp.Diff(wantPath, gp.Path()); diff != "" {
		t.Fatalf("corridor path mismatch (-want +got):\n%s", diff)
	}

	reachable, err := gp.AddObstacle(gridgraph.Point{X: 2, Y: 0})
	require.NoError(t, err)
	require.False(t, reachable)
	require.Nil(t, gp.Path())
	require.False(t, gp.Reachable())
	require.True(t, math.IsInf(gp.PathCost(), 1))

	reachable, err = gp.RemoveObstacle(gridgraph.Point{X: 2, Y: 0})
	require.NoError(t, err)
	require.True(t, reachable)
	require.InDelta(t, 4.0, gp.PathCost(), 1e-9)
	if diff := cmp.Diff(wantPath, gp.Path()); diff != "" {
		t.Fatalf("reopened path mismatch (-want +got):\n%s", diff)
	}
}

// TestGrid_DetourAroundWall: an obstacle on the top row of a 5×2 world
// forces the diagonal detour, not unreachability.
func TestGrid_DetourAroundWall(t *testing.T) {
	w, err := gridgraph.NewWorld(5, 2)
	require.NoError(t, err)
	start, goal := gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 4, Y: 0}

	gp, err := dstar.NewGrid(w, start, goal)
	require.NoError(t, err)
	require.True(t, gp.ComputeShortestPath())
	require.InDelta(t, 4.0, gp.PathCost(), 1e-9)

	// wall on the top row only; the bottom row detour survives
	reachable, err := gp.AddObstacle(gridgraph.Point{X: 2, Y: 0})
	require.NoError(t, err)
	require.True(t, reachable)

	path := gp.Path()
	requireValidGridPath(t, w, path, start, goal, gp.PathCost())
	// detour swaps two axial hops for two diagonals: 2 + 2·√2
	require.InDelta(t, 2+2*math.Sqrt2, gp.PathCost(), 1e-9)
}

// TestGrid_Validation covers out-of-bounds endpoints and toggles.
func TestGrid_Validation(t *testing.T) {
	w, err := gridgraph.NewWorld(4, 4)
	require.NoError(t, err)

	_, err = dstar.NewGrid(w, gridgraph.Point{X: -1, Y: 0}, gridgraph.Point{X: 3, Y: 3})
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = dstar.NewGrid(w, gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 9, Y: 9})
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)

	gp, err := dstar.NewGrid(w, gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 3, Y: 3})
	require.NoError(t, err)
	_, err = gp.AddObstacle(gridgraph.Point{X: 9, Y: 9})
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
	_, err = gp.RemoveObstacle(gridgraph.Point{X: 9, Y: 9})
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}
