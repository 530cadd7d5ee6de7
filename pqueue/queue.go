package pqueue

import "container/heap"

// item is one queue entry: a vertex ID and the key it was inserted at.
type item struct {
	id  string
	key Key
}

// Queue is an indexed binary min-heap of (vertex, Key) entries.
//
// A dense item slice carries the heap; a side map from vertex ID to slice
// index is maintained in lockstep with every swap, giving O(1) Contains
// and O(log n) Remove/Update by identity. The zero Queue is not usable;
// construct with NewQueue.
type Queue struct {
	items []item
	index map[string]int
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	return &Queue{index: make(map[string]int)}
}

//
// heap.Interface methods — used by container/heap, not for direct calls.
//

// Len implements heap.Interface.
func (q *Queue) Len() int { return len(q.items) }

// Less implements heap.Interface: smaller Key orders first.
func (q *Queue) Less(i, j int) bool { return q.items[i].key.Less(q.items[j].key) }

// Swap implements heap.Interface and keeps the side map in lockstep.
func (q *Queue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.index[q.items[i].id] = i
	q.index[q.items[j].id] = j
}

// Push implements heap.Interface; x must be an item.
func (q *Queue) Push(x interface{}) {
	it := x.(item)
	q.index[it.id] = len(q.items)
	q.items = append(q.items, it)
}

// Pop implements heap.Interface.
func (q *Queue) Pop() interface{} {
	n := len(q.items)
	it := q.items[n-1]
	q.items = q.items[:n-1]
	delete(q.index, it.id)

	return it
}

//
// Public queue API.
//

// Insert adds id with priority k. Returns ErrDuplicateVertex if id is
// already queued; the queue is unchanged in that case.
//
// Complexity: O(log n).
func (q *Queue) Insert(id string, k Key) error {
	if _, ok := q.index[id]; ok {
		return ErrDuplicateVertex
	}
	heap.Push(q, item{id: id, key: k})

	return nil
}

// PopMin removes and returns the entry with the smallest key.
// Ties break by Key's lexicographic order, then by heap layout —
// deterministic for a given insertion sequence. Panics with ErrEmptyQueue
// when empty (a kernel bug, not a recoverable condition).
//
// Complexity: O(log n).
func (q *Queue) PopMin() (string, Key) {
	if len(q.items) == 0 {
		panic(ErrEmptyQueue)
	}
	it := heap.Pop(q).(item)

	return it.id, it.key
}

// Peek returns the vertex with the smallest key without removing it.
// Panics with ErrEmptyQueue when empty.
//
// Complexity: O(1).
func (q *Queue) Peek() string {
	if len(q.items) == 0 {
		panic(ErrEmptyQueue)
	}

	return q.items[0].id
}

// TopKey returns the smallest key, or InfKey() when the queue is empty.
// The infinite sentinel lets kernels write their termination predicate
// without an emptiness branch.
//
// Complexity: O(1).
func (q *Queue) TopKey() Key {
	if len(q.items) == 0 {
		return InfKey()
	}

	return q.items[0].key
}

// Contains reports whether id is currently queued.
//
// Complexity: O(1).
func (q *Queue) Contains(id string) bool {
	_, ok := q.index[id]

	return ok
}

// Remove deletes id from the queue, reporting whether it was present.
//
// Complexity: O(log n).
func (q *Queue) Remove(id string) bool {
	i, ok := q.index[id]
	if !ok {
		return false
	}
	heap.Remove(q, i)
	delete(q.index, id)

	return true
}

// Update re-keys an already-queued id. If the stored key already equals k
// this is a no-op; otherwise the entry is re-sifted from its index.
// Updating an absent id is a no-op.
//
// Complexity: O(log n).
func (q *Queue) Update(id string, k Key) {
	i, ok := q.index[id]
	if !ok {
		return
	}
	if q.items[i].key.Compare(k) == 0 {
		return
	}
	q.items[i].key = k
	heap.Fix(q, i)
}

// MoveOrInsert re-keys id if queued, otherwise inserts it. This is the
// "insert is an update" discipline the planners rely on: no call path can
// create a duplicate entry.
//
// Complexity: O(log n).
func (q *Queue) MoveOrInsert(id string, k Key) {
	if q.Contains(id) {
		q.Update(id, k)
		return
	}
	_ = q.Insert(id, k)
}

// IsEmpty reports whether the queue holds no entries.
func (q *Queue) IsEmpty() bool { return len(q.items) == 0 }
