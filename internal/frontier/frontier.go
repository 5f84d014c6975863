// Package frontier provides the priority queue shared by the search engines.
//
// Entries are ordered by Priority ascending, then by Cost descending (the
// entry further from its origin wins an f-tie in A*), then by Index
// ascending, so the pop order is fully determined by the pushed entries and
// never by heap internals.
//
// The queue uses lazy decrease-key: relaxing a cell pushes a fresh entry and
// the caller skips stale ones when they surface.
package frontier

import "github.com/zyedidia/generic/heap"

// Entry is one frontier record.
type Entry struct {
	Index    int     // row-major cell index
	Priority float64 // ordering key (f in A*, distance in Dijkstra)
	Cost     float64 // cost-so-far recorded when pushed
}

// Queue is a min-queue of Entry values.
type Queue struct {
	h    *heap.Heap[Entry]
	buf  []Entry // backing array handed to the heap on Reset
	peak int     // largest size seen since the last Reset
}

// New returns an empty Queue.
func New() *Queue {
	q := &Queue{buf: make([]Entry, 0, 64)}
	q.h = heap.FromSlice[Entry](less, q.buf)
	return q
}

func less(a, b Entry) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if a.Cost != b.Cost {
		return a.Cost > b.Cost
	}
	return a.Index < b.Index
}

// Push inserts e.
func (q *Queue) Push(e Entry) {
	q.h.Push(e)
	if n := q.h.Size(); n > q.peak {
		q.peak = n
	}
}

// Pop removes and returns the least entry; ok is false when the queue is empty.
func (q *Queue) Pop() (e Entry, ok bool) { return q.h.Pop() }

// Len returns the number of queued entries, stale ones included.
func (q *Queue) Len() int { return q.h.Size() }

// Reset drops every entry in O(1). The backing array is sized to the
// largest queue seen so far, so a workload of similar searches stops
// allocating after the first one.
func (q *Queue) Reset() {
	if cap(q.buf) < q.peak {
		q.buf = make([]Entry, 0, q.peak)
	}
	q.peak = 0
	q.h = heap.FromSlice[Entry](less, q.buf[:0])
}
