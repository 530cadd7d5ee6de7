// Package pqueue provides the indexed min-heap priority queue driving the
// replan search kernels.
//
// Overview:
//
//   - Entries are (vertex ID, Key) pairs; Key is a lexicographic
//     (K1, K2) float64 pair, so both two-component D* Lite keys and
//     scalar classic-D* priorities (K2 = 0) fit the same queue.
//   - A side map from vertex ID to heap index is updated under every
//     swap, giving O(1) Contains and O(log n) Remove/Update by identity —
//     the operations an incremental planner re-keys vertices with.
//   - TopKey() on an empty queue returns {+Inf, +Inf} rather than
//     failing, so termination predicates compare against it directly.
//
// Discipline:
//
//   - At most one entry per vertex, always. Insert on a present vertex is
//     rejected with ErrDuplicateVertex; kernels re-key through Update or
//     MoveOrInsert instead. There is no lazy deletion and therefore no
//     stale-entry skipping on pop.
//   - PopMin/Peek on an empty queue panic with ErrEmptyQueue: an empty-pop
//     is a kernel invariant violation, never a caller-recoverable state.
//
// Complexity:
//
//   - Insert / PopMin / Remove / Update / MoveOrInsert: O(log n)
//   - Contains / Peek / TopKey / Len / IsEmpty: O(1)
//
// The heap sits on the stdlib container/heap machinery; Len/Less/Swap/
// Push/Pop are exported only to satisfy heap.Interface and must not be
// called directly.
package pqueue
