// Package dijkstra defines configuration options and sentinel errors
// for the one-shot Dijkstra baseline.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilView indicates that a nil graph view was passed to Dijkstra.
	ErrNilView = errors.New("dijkstra: graph view is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set negative.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the Dijkstra baseline.
//
// Source      - starting vertex ID (must be non-empty and known to the view).
// ReturnPath  - if true, return the predecessor map; otherwise prev is nil.
// MaxDistance - cap on distances to explore; vertices beyond are skipped.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Source      string
	ReturnPath  bool
	MaxDistance float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance sets a maximum distance threshold. Vertices whose
// shortest distance would exceed it are not explored.
// Negative values panic with the ErrBadMaxDistance message.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct with sensible defaults:
// no source, no predecessor map, no distance cap.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}
