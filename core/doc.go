// Package core provides the dynamic directed weighted graph the replan
// planners mutate and search over, plus the minimal read-only View
// interface the search kernels consume.
//
// Overview:
//
//   - Graph stores directed edges with mutable float64 costs. A cost is a
//     non-negative finite double or exactly +Inf ("blocked"). Negative
//     costs are rejected at the door (ErrNegativeWeight) — the incremental
//     planners are undefined under negative weights.
//   - Vertices are created lazily when first referenced by AddEdge and are
//     never destroyed; planner state persists across repairs to amortize
//     work.
//   - Re-adding an edge overwrites its cost and re-baselines it; SetCost
//     overrides the current cost while keeping the baseline, so ResetCost
//     can undo an override (obstacle disappears, road reopens).
//   - All iteration orders are deterministic (sorted by vertex ID), which
//     keeps planner tie-breaking stable run to run.
//
// The View interface is the contract between a graph collaborator and a
// search kernel: Successors, Predecessors, Cost, HasVertex. Grids
// (gridgraph.World) satisfy it with synthesized arcs rather than stored
// adjacency.
//
// Complexity:
//
//   - AddVertex / AddEdge / SetCost / ResetCost / Cost: O(1)
//   - Successors / Predecessors: O(d log d) per call (sorted copy)
//   - Vertices: O(V log V); EdgeStates: O(E)
//
// Thread safety:
//
//   - Every method takes the Graph's RWMutex; concurrent readers do not
//     block each other. The planners run single-threaded regardless.
package core
