package frontier

import "container/heap"

// entry pairs a value with its priority.
type entry[T any] struct {
	value    T
	priority float64
}

// minHeap implements heap.Interface ordered by priority, then by tie.
type minHeap[T any] struct {
	items []entry[T]
	tie   func(a, b T) bool
}

func (h *minHeap[T]) Len() int { return len(h.items) }

func (h *minHeap[T]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}

	return h.tie != nil && h.tie(a.value, b.value)
}

func (h *minHeap[T]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *minHeap[T]) Push(x any) { h.items = append(h.items, x.(entry[T])) }

func (h *minHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	it := old[n-1]
	h.items = old[:n-1]

	return it
}

// PriorityQueue pops the entry with the smallest priority first.
type PriorityQueue[T any] struct {
	h minHeap[T]
}

// NewPriorityQueue returns an empty queue. tie orders entries of equal
// priority (a before b when tie(a, b)); nil leaves such ties unspecified.
func NewPriorityQueue[T any](tie func(a, b T) bool) *PriorityQueue[T] {
	pq := &PriorityQueue[T]{h: minHeap[T]{tie: tie}}
	heap.Init(&pq.h)

	return pq
}

// Push adds value with the given priority. Duplicates are kept.
func (pq *PriorityQueue[T]) Push(value T, priority float64) {
	heap.Push(&pq.h, entry[T]{value: value, priority: priority})
}

// Pop removes the minimum entry and returns its value and priority.
// Panics when the queue is empty.
func (pq *PriorityQueue[T]) Pop() (T, float64) {
	if pq.h.Len() == 0 {
		panic("frontier: Pop from empty priority queue")
	}
	it := heap.Pop(&pq.h).(entry[T])

	return it.value, it.priority
}

// Len returns the number of entries, stale duplicates included.
func (pq *PriorityQueue[T]) Len() int { return pq.h.Len() }

// Empty reports whether the queue holds no entries.
func (pq *PriorityQueue[T]) Empty() bool { return pq.h.Len() == 0 }
