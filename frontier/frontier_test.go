package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/frontier"
)

// drain pops everything from f.
func drain[T any](f frontier.Frontier[T]) []T {
	var out []T
	for !f.Empty() {
		out = append(out, f.Pop())
	}

	return out
}

// TestQueue_FIFO checks arrival order and sizes.
func TestQueue_FIFO(t *testing.T) {
	q := frontier.NewQueue("a", "b")
	q.Push("c")
	require.Equal(t, 3, q.Len())
	assert.Equal(t, []string{"a", "b", "c"}, drain[string](q))
	assert.True(t, q.Empty())
	assert.Panics(t, func() { q.Pop() })
}

// TestStack_LIFO checks reverse order and sizes.
func TestStack_LIFO(t *testing.T) {
	s := frontier.NewStack(1, 2)
	s.Push(3)
	require.Equal(t, 3, s.Len())
	assert.Equal(t, []int{3, 2, 1}, drain[int](s))
	assert.Panics(t, func() { s.Pop() })
}

// TestStack_InterleavedPushPop mirrors how DFS alternates pops and pushes.
func TestStack_InterleavedPushPop(t *testing.T) {
	s := frontier.NewStack[int]()
	s.Push(1)
	s.Push(2)
	assert.Equal(t, 2, s.Pop())
	s.Push(3)
	s.Push(4)
	assert.Equal(t, []int{4, 3, 1}, drain[int](s))
}

// TestPriorityQueue_Order pops by priority, then by tie-break.
func TestPriorityQueue_Order(t *testing.T) {
	pq := frontier.NewPriorityQueue(func(a, b string) bool { return a < b })
	pq.Push("d", 2.4)
	pq.Push("c", 1.0)
	pq.Push("b", 1.0)
	pq.Push("a", 2.0)

	var got []string
	var prios []float64
	for !pq.Empty() {
		v, p := pq.Pop()
		got = append(got, v)
		prios = append(prios, p)
	}
	assert.Equal(t, []string{"b", "c", "a", "d"}, got)
	assert.Equal(t, []float64{1.0, 1.0, 2.0, 2.4}, prios)
}

// TestPriorityQueue_KeepsDuplicates verifies lazy deletion is left to callers.
func TestPriorityQueue_KeepsDuplicates(t *testing.T) {
	pq := frontier.NewPriorityQueue[int](nil)
	pq.Push(7, 3.0)
	pq.Push(7, 1.0)
	require.Equal(t, 2, pq.Len())

	v, p := pq.Pop()
	assert.Equal(t, 7, v)
	assert.Equal(t, 1.0, p)
	v, p = pq.Pop()
	assert.Equal(t, 7, v)
	assert.Equal(t, 3.0, p)
	assert.Panics(t, func() { pq.Pop() })
}
