package search

import (
	"github.com/katalvlaran/gridsearch/frontier"
	"github.com/katalvlaran/gridsearch/grid"
)

// Bidirectional runs two breadth-first searches, forward from g.Start() and
// backward from g.Goal(), expanding one cell of each in turn until a popped
// cell is already known to the opposite search. The path is joined at the
// cell known to both halves with the smallest combined depth, so it has the
// minimum number of moves.
func Bidirectional(g *grid.Grid, opts ...Option) (*Result, error) {
	return Run(AlgBidirectional, g, opts...)
}

// halfSearch is one direction of a bidirectional search.
type halfSearch struct {
	queue  *frontier.Queue[grid.Coordinate]
	parent *ParentChain
	depth  map[grid.Coordinate]int
}

func newHalfSearch(root grid.Coordinate) *halfSearch {
	h := &halfSearch{
		queue:  frontier.NewQueue(root),
		parent: NewParentChain(),
		depth:  map[grid.Coordinate]int{root: 0},
	}
	h.parent.SetRoot(root)

	return h
}

// step pops and expands one cell. If the other half already holds it, that
// cell is the meeting point; otherwise its unseen neighbours are enqueued.
func (h *halfSearch) step(g *grid.Grid, t *tracker, other *halfSearch) (grid.Coordinate, bool) {
	curr := h.queue.Pop()
	t.expand(curr)
	if t.cancelled() {
		return grid.Coordinate{}, false
	}
	if other.parent.Has(curr) {
		return curr, true
	}
	for _, nb := range g.Neighbors(curr) {
		if !h.parent.Has(nb.Coord) {
			h.parent.Set(nb.Coord, curr)
			h.depth[nb.Coord] = h.depth[curr] + 1
			h.queue.Push(nb.Coord)
			t.discover(nb.Coord)
		}
	}

	return grid.Coordinate{}, false
}

func bidirectional(g *grid.Grid, t *tracker, _ *Options) []grid.Coordinate {
	fwd := newHalfSearch(g.Start())
	bwd := newHalfSearch(g.Goal())

	for !fwd.queue.Empty() && !bwd.queue.Empty() && !t.cancelled() {
		if meet, ok := fwd.step(g, t, bwd); ok {
			return join(fwd.parent, bwd.parent, bestMeeting(fwd, bwd, meet))
		}
		if t.cancelled() {
			return nil
		}
		if meet, ok := bwd.step(g, t, fwd); ok {
			return join(fwd.parent, bwd.parent, bestMeeting(fwd, bwd, meet))
		}
	}

	return nil
}

// bestMeeting returns the cell known to both halves with the smallest
// combined depth. The popped meeting cell can be one move longer than the
// optimum when the halves touch mid-level; every shorter route then already
// runs through a cell both halves know. Ties keep meet, then prefer the
// smallest (row, col).
func bestMeeting(fwd, bwd *halfSearch, meet grid.Coordinate) grid.Coordinate {
	small, large := fwd.depth, bwd.depth
	if len(large) < len(small) {
		small, large = large, small
	}
	best, bestLen := meet, fwd.depth[meet]+bwd.depth[meet]
	for c, d := range small {
		other, ok := large[c]
		if !ok {
			continue
		}
		n := d + other
		if n < bestLen || (n == bestLen && best != meet && coordLess(c, best)) {
			best, bestLen = c, n
		}
	}

	return best
}

// join concatenates start→meet with the reversed goal→meet half, keeping the
// meeting cell once.
func join(fwd, bwd *ParentChain, meet grid.Coordinate) []grid.Coordinate {
	head := fwd.Reconstruct(meet)
	tail := bwd.Reconstruct(meet)
	path := make([]grid.Coordinate, 0, len(head)+len(tail)-1)
	path = append(path, head...)
	for i := len(tail) - 2; i >= 0; i-- {
		path = append(path, tail[i])
	}

	return path
}
