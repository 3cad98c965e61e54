// Package consequence implements the future-dated priority queue spec.md
// §4.3 describes: entries enqueued at tick t become due at tick t+delta
// without the dispatcher losing determinism. Grounded on spec.md §3
// invariant 7 ("the consequence queue is ordered by (dueTurnIndex asc,
// priority desc, insertionOrder asc)") using container/heap the way Go's
// standard library intends a priority queue to be built — the teacher
// repo has no equivalent structure to generalize from, so this is the one
// package in the engine built directly off a standard-library pattern
// (documented in DESIGN.md's standard-library justifications).
package consequence

import (
	"container/heap"

	"github.com/worldforge/sim/backend/internal/model"
)

// Queue is a priority queue of model.ConsequenceEntry ordered per
// spec.md §3 invariant 7. Not safe for concurrent use — the simulation
// core never calls it concurrently (spec.md §5).
type Queue struct {
	h              entryHeap
	nextInsertion  int
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{h: entryHeap{}}
}

// Enqueue schedules entry to fire at entry.DueTurnIndex, stamping its
// InsertionOrder so ties break by arrival order (spec.md §3 invariant 7).
// Callers set every other field (Tag, Data, Priority, DueTurnIndex)
// before calling Enqueue.
func (q *Queue) Enqueue(entry *model.ConsequenceEntry) {
	entry.InsertionOrder = q.nextInsertion
	q.nextInsertion++
	heap.Push(&q.h, entry)
}

// Drain pops and returns every entry whose DueTurnIndex <= turnIndex, in
// key order, removing them from the queue (spec.md §4.3 "drain").
func (q *Queue) Drain(turnIndex int) []*model.ConsequenceEntry {
	var due []*model.ConsequenceEntry
	for q.h.Len() > 0 && q.h[0].DueTurnIndex <= turnIndex {
		due = append(due, heap.Pop(&q.h).(*model.ConsequenceEntry))
	}
	return due
}

// Len reports the number of entries still queued.
func (q *Queue) Len() int {
	return q.h.Len()
}

// Snapshot returns every queued entry in heap-internal order, for
// serialization (spec.md §6 "state.consequenceQueue"). Order is not the
// dispatch order; Restore rebuilds the heap invariant from whatever order
// it is given.
func (q *Queue) Snapshot() []*model.ConsequenceEntry {
	out := make([]*model.ConsequenceEntry, len(q.h))
	copy(out, q.h)
	return out
}

// Restore rebuilds a Queue from a previously snapshotted entry list.
func Restore(entries []*model.ConsequenceEntry) *Queue {
	q := &Queue{h: make(entryHeap, len(entries))}
	copy(q.h, entries)
	heap.Init(&q.h)
	maxInsertion := -1
	for _, e := range entries {
		if e.InsertionOrder > maxInsertion {
			maxInsertion = e.InsertionOrder
		}
	}
	q.nextInsertion = maxInsertion + 1
	return q
}

// entryHeap implements container/heap.Interface, ordering by
// (dueTurnIndex asc, priority desc, insertionOrder asc).
type entryHeap []*model.ConsequenceEntry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.DueTurnIndex != b.DueTurnIndex {
		return a.DueTurnIndex < b.DueTurnIndex
	}
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	return a.InsertionOrder < b.InsertionOrder
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) {
	*h = append(*h, x.(*model.ConsequenceEntry))
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
