// Package core defines the central Graph type and the read-only View
// interface consumed by the incremental planners.
//
// All mutating and reading APIs are guarded by a single sync.RWMutex, so a
// Graph may be shared across goroutines; the planners themselves are
// single-threaded and own their Graph exclusively.
//
// This file declares Arc, EdgeKey, View, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrNegativeWeight - edge weight is negative (costs are ≥ 0 or +Inf).
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrNegativeWeight indicates an edge weight below zero.
	// Costs must be non-negative finite doubles or exactly +Inf.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Arc is one outgoing (or incoming) connection of a vertex:
// the neighbor's ID and the current cost of traversing the edge.
type Arc struct {
	// To is the neighbor vertex ID.
	To string

	// Weight is the current edge cost; +Inf denotes a blocked edge.
	Weight float64
}

// EdgeKey identifies a directed edge by its endpoints.
type EdgeKey struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string
}

// View is the minimal read surface a search kernel consumes from a graph
// collaborator. *Graph and *gridgraph.World both implement it.
//
// Implementations must be deterministic: repeated calls with an unchanged
// graph return arcs in the same order.
type View interface {
	// Successors returns the outgoing arcs of id, sorted by neighbor ID.
	Successors(id string) []Arc

	// Predecessors returns the incoming arcs of id, sorted by neighbor ID.
	// Arc.To holds the predecessor's ID; Arc.Weight is cost(pred, id).
	Predecessors(id string) []Arc

	// Cost returns the current cost of the directed edge from→to,
	// or +Inf when no such edge exists (or it is blocked).
	Cost(from, to string) float64

	// HasVertex reports whether id is a known vertex.
	HasVertex(id string) bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loop edges (from a vertex to itself).
// Self-loops never shorten a path (costs are non-negative) but some
// graph sources carry them; by default they are silently dropped.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a directed, float64-weighted graph with mutable edge costs.
//
// Vertices are created lazily when first referenced by AddEdge and are
// never removed. Re-adding an edge overwrites its cost; the cost an edge
// was last *added* with is remembered as its baseline so that SetCost
// overrides can be undone with ResetCost.
type Graph struct {
	mu sync.RWMutex

	// out[from][to] and in[to][from] hold the current edge cost.
	out map[string]map[string]float64
	in  map[string]map[string]float64

	// base remembers the cost each edge was added with (AddEdge resets it,
	// SetCost does not).
	base map[EdgeKey]float64

	allowLoops bool
}

// NewGraph constructs an empty Graph and applies options left-to-right.
//
// Complexity: O(1) + O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		out:  make(map[string]map[string]float64),
		in:   make(map[string]map[string]float64),
		base: make(map[EdgeKey]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
