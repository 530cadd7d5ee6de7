// Package replan is a family of incremental shortest-path planners for
// dynamically changing weighted graphs.
//
// 🚀 What is replan?
//
//	A planner is initialized once with a start and a goal, computes a
//	least-cost path, and then *repairs* that solution as edge costs change
//	(including edges becoming impassable) instead of recomputing from
//	scratch. Two planner variants are provided:
//
//	  • D* Lite  — arbitrary directed weighted graphs, moving start,
//	               key-modifier accumulator (dstarlite/)
//	  • classic D* — arbitrary directed graphs or 8-connected grids with
//	               dynamic obstacles, RAISE/LOWER propagation (dstar/)
//
// ✨ Why choose replan?
//
//   - Incremental       — repairs touch only the vertices a change disturbs
//   - Deterministic     — sorted adjacency, stable tie-breaking, no rand
//   - Verifiable        — a from-scratch Dijkstra baseline ships alongside
//     the replanners so every repaired path can be cross-checked
//   - Pure Go           — no cgo, stdlib only; testify and go-cmp in tests
//
// Under the hood, everything is organized into small focused packages:
//
//	core/      — dynamic directed weighted graph + minimal read-only View
//	pqueue/    — indexed min-heap with lexicographic keys and O(1) lookup
//	dstarlite/ — D* Lite planner (g/rhs tables, km, batch edge repair)
//	dstar/     — classic D* planner (h/tag/parent tables, grid frontend)
//	gridgraph/ — dynamic-obstacle 8-connected grid world
//	dijkstra/  — one-shot shortest-path baseline over core graphs
//
// Quick ASCII example:
//
//	start ──1── B ──2── C
//	   └────5───────────┘
//
//	blocking B─C mid-run costs one repair, not one full re-search.
//
// See each package's doc.go for its API, complexity and error contract.
package replan
