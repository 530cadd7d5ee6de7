// Package dstar provides the classic D* incremental planner, for directed
// graphs and for 8-connected grids with dynamic obstacles.
//
// Overview:
//
//   - The search grows backward from the goal. Each vertex carries an h
//     estimate (cost to goal), a NEW/OPEN/CLOSED lifecycle tag, a
//     backpointer toward the goal, and k — the lowest h it has held while
//     on the open queue, which is the priority it is queued at.
//   - Cost decreases spread as LOWER waves (a settled vertex pushes
//     improvements into its neighbors); cost increases spread as RAISE
//     waves (a raised vertex first tries to rewire through a settled
//     neighbor, then notifies its children and re-opens candidates that
//     may lower it later).
//   - When an arc's cost changes, ModifyCost re-opens the affected CLOSED
//     vertices at their current h and the queue is drained until no
//     priority orders before h(start): the plan is repaired, not rebuilt.
//
// The grid frontend (GridPlanner) binds the kernel to gridgraph.World:
// AddObstacle / RemoveObstacle toggle a cell, re-open the cells whose
// arcs changed, and replan in one call. Paths come back as []Point.
//
// kOld follows the classical formulation: it is the priority the expanded
// vertex was dequeued at (min(h, h_old) accumulated by insert), not the
// queue's next top — some published implementations peek after popping,
// which reorders the RAISE test. The insert rule captures h-before-reassignment within the
// call, and a re-insert of a queued vertex is an in-place re-key, never a
// duplicate.
//
// Errors:
//
//	ErrNilView        - New given a nil graph view.
//	ErrVertexNotFound - start or goal unknown to the view.
//
// Unreachable goals surface as a false ComputeShortestPath result, a +Inf PathCost
// and a nil Path — not as errors.
//
// Complexity: each expansion is O(d log V); a repair expands only the
// vertices the cost change disturbs. Thread safety: single-threaded, not
// reentrant, like the rest of replan's kernels.
package dstar
