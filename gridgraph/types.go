// Package gridgraph defines core types and sentinel errors
// for the dynamic-obstacle grid world.
package gridgraph

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a world with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: world must have at least one row and one column")
	// ErrOutOfBounds indicates a point outside the world boundaries.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
	// ErrBadVertexID indicates a vertex ID that does not parse as "x,y".
	ErrBadVertexID = errors.New("gridgraph: malformed vertex ID")
)

// Point is a cell coordinate within the world.
type Point struct {
	X, Y int
}

// neighborOffsets is the 8-connected neighborhood: N, NE, E, SE, S, SW, W, NW.
// Axial moves cost 1, diagonal moves cost √2.
var neighborOffsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}
