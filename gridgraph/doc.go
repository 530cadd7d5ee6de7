// Package gridgraph provides the dynamic-obstacle grid world the classic
// D* planner searches over.
//
// Overview:
//
//   - World is a width×height grid with 8-connectivity. Axial moves cost
//     1, diagonal moves √2 (Euclidean). Arcs touching a blocked cell cost
//     +Inf.
//   - Obstacles are mutable at any time via Block/Unblock; the neighbor
//     topology is fixed, only arc costs change. Incremental planners
//     repair against exactly this kind of cost flip.
//   - Cells appear as graph vertices with the ID "x,y", and World
//     implements core.View, so any kernel that searches a core.Graph
//     searches a World unchanged.
//
// Errors:
//
//	ErrEmptyGrid    - world constructed with a dimension < 1.
//	ErrOutOfBounds  - Block/Unblock outside the world.
//	ErrBadVertexID  - vertex ID that does not parse as "x,y".
//
// Complexity: all per-cell operations are O(1) (≤ 8 neighbors); the
// obstacle set costs O(B) memory for B blocked cells.
package gridgraph
