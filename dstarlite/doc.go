// Package dstarlite provides a precise implementation of the D* Lite
// incremental shortest-path algorithm for directed weighted graphs whose
// edge costs change over time.
//
// Overview:
//
//   - D* Lite searches backward from the goal, maintaining two values per
//     vertex: g (best known cost to the goal) and rhs (one-step lookahead,
//     min over successors of cost + g). A vertex with g == rhs is locally
//     consistent; the priority queue holds exactly the inconsistent ones.
//   - When an edge cost changes, only the directly affected vertices are
//     re-queued and the kernel drains the queue until the start is
//     consistent again — repairing the previous solution instead of
//     searching from scratch.
//   - When the start moves (the robot advanced along the path), the
//     heuristic distance traveled is added to the km key modifier, which
//     participates additively in every key. Queued keys thus stay valid
//     without a heap rebuild.
//
// When to use:
//
//   - Robot navigation and any replanning loop where the graph mutates
//     between queries: obstacles appear and disappear, traversal costs
//     drift, the agent moves.
//   - As a drop-in upgrade over rerunning Dijkstra/A* per change; the
//     dijkstra package in this module is exactly that baseline.
//
// Key computation:
//
//	key(v) = ( min(g(v), rhs(v)) + h(v, start) + km,
//	           min(g(v), rhs(v)) )
//
// compared lexicographically, strict comparisons. Local-consistency tests
// use an absolute epsilon (default 1e-10, see WithEpsilon); +Inf values
// are compared by identity, never by subtraction.
//
// The heuristic must be non-negative, admissible and consistent for the
// graph's costs; the default NumericIDHeuristic (|a−b| over numeric IDs,
// 0 otherwise) is a placeholder callers should replace via WithHeuristic.
//
// Error handling (sentinel errors):
//
//   - ErrVertexNotFound:  Initialize / UpdateStartAndReplan on an ID that
//     was never added. Recoverable.
//   - ErrNotInitialized:  planning or repair before Initialize.
//   - ErrNilHeuristic:    WithHeuristic(nil), panics at construction.
//   - Unknown edges in UpdateEdgeCost / RestoreEdgeCost are silent no-ops
//     (the edge simply does not exist); unreachable goals are reported by
//     the bool results and a nil Path, never by an error.
//
// API reference:
//
//	p := dstarlite.New(dstarlite.WithHeuristic(h))
//	p.AddEdge("a", "b", 1)                 // build the graph
//	p.Initialize("a", "z")                 // plant the goal
//	found, _ := p.ComputeShortestPath()    // initial solve
//	p.UpdateEdgeCost("b", "c", math.Inf(1))// world changed; repair
//	p.UpdateStartAndReplan("b")            // robot moved; repair
//	route := p.Path()                      // nil when unreachable
//	cost := p.PathCost()                   // +Inf when unreachable
//
// Complexity: a repair touches O(Δ) vertices — those whose cost-to-goal
// the change actually disturbs — at O(log V) queue work each. The initial
// solve degenerates to a goal-rooted A*.
//
// Thread safety: a Planner is single-threaded and not reentrant. The
// heuristic must be pure; in particular it must not mutate the planner or
// its graph.
package dstarlite
