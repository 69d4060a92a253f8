package frontier

import (
	"gopkg.in/karalabe/cookiejar.v2/collections/queue"
	"gopkg.in/karalabe/cookiejar.v2/collections/stack"
)

// Frontier is an ordered container of discovered-but-unexpanded items.
// Pop on an empty Frontier panics.
type Frontier[T any] interface {
	Push(item T)
	Pop() T
	Len() int
	Empty() bool
}

// Queue is a FIFO Frontier.
type Queue[T any] struct {
	q *queue.Queue
}

// NewQueue returns an empty queue seeded with items, in order.
func NewQueue[T any](items ...T) *Queue[T] {
	q := &Queue[T]{q: queue.New()}
	for _, it := range items {
		q.Push(it)
	}

	return q
}

// Push appends item at the back.
func (q *Queue[T]) Push(item T) { q.q.Push(item) }

// Pop removes and returns the front item.
func (q *Queue[T]) Pop() T {
	if q.q.Empty() {
		panic("frontier: Pop from empty queue")
	}

	return q.q.Pop().(T)
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return q.q.Size() }

// Empty reports whether the queue holds no items.
func (q *Queue[T]) Empty() bool { return q.q.Empty() }

// Stack is a LIFO Frontier.
type Stack[T any] struct {
	s *stack.Stack
}

// NewStack returns a stack with items pushed in order (the last one on top).
func NewStack[T any](items ...T) *Stack[T] {
	s := &Stack[T]{s: stack.New()}
	for _, it := range items {
		s.Push(it)
	}

	return s
}

// Push places item on top.
func (s *Stack[T]) Push(item T) { s.s.Push(item) }

// Pop removes and returns the top item.
func (s *Stack[T]) Pop() T {
	if s.s.Empty() {
		panic("frontier: Pop from empty stack")
	}

	return s.s.Pop().(T)
}

// Len returns the number of stacked items.
func (s *Stack[T]) Len() int { return s.s.Size() }

// Empty reports whether the stack holds no items.
func (s *Stack[T]) Empty() bool { return s.s.Empty() }

var (
	_ Frontier[int] = (*Queue[int])(nil)
	_ Frontier[int] = (*Stack[int])(nil)
)
