// Package pqueue defines the Key priority type and sentinel errors for the
// indexed priority queue used by the replan search kernels.
package pqueue

import (
	"errors"
	"math"
)

// Sentinel errors for queue operations.
var (
	// ErrDuplicateVertex indicates an Insert of a vertex already present.
	// Callers must Remove (or Update) first; the queue never holds two
	// entries for the same vertex.
	ErrDuplicateVertex = errors.New("pqueue: vertex already present")

	// ErrEmptyQueue indicates PopMin/Peek on an empty queue. This is an
	// internal invariant violation in a search kernel, so the queue panics
	// with it rather than returning it.
	ErrEmptyQueue = errors.New("pqueue: operation on empty queue")
)

// Key is a lexicographic priority pair: compared first by K1, then by K2.
// Planners that rank by a single scalar use Key{K1: p} and leave K2 zero.
//
// Comparisons are strict float64 comparisons; +Inf components are legal
// and order after every finite value.
type Key struct {
	K1, K2 float64
}

// Less reports whether k orders strictly before o.
func (k Key) Less(o Key) bool {
	if k.K1 != o.K1 {
		return k.K1 < o.K1
	}

	return k.K2 < o.K2
}

// Compare returns -1, 0, or +1 as k orders before, equal to, or after o.
func (k Key) Compare(o Key) int {
	switch {
	case k.Less(o):
		return -1
	case o.Less(k):
		return 1
	default:
		return 0
	}
}

// InfKey returns the sentinel {+Inf, +Inf} key, which TopKey yields for an
// empty queue. No live entry can order after it except another InfKey.
func InfKey() Key {
	return Key{K1: math.Inf(1), K2: math.Inf(1)}
}
