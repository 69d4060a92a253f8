package search

import (
	"github.com/katalvlaran/gridsearch/frontier"
	"github.com/katalvlaran/gridsearch/grid"
)

// UCS runs uniform-cost search. The returned path has minimal total move
// cost.
func UCS(g *grid.Grid, opts ...Option) (*Result, error) {
	return Run(AlgUCS, g, opts...)
}

// coordLess orders equal-cost entries by row, then column.
func coordLess(a, b grid.Coordinate) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}

	return a.Col < b.Col
}

// uniformCost relaxes neighbours on a strictly lower cumulative cost and
// pushes a new heap entry each time (lazy decrease-key). Entries whose
// popped cost is above the recorded best are stale and skipped.
func uniformCost(g *grid.Grid, t *tracker, _ *Options) []grid.Coordinate {
	pq := frontier.NewPriorityQueue(coordLess)
	pq.Push(g.Start(), 0)
	costs := map[grid.Coordinate]float64{g.Start(): 0}
	parent := NewParentChain()
	parent.SetRoot(g.Start())

	for !pq.Empty() && !t.cancelled() {
		curr, cost := pq.Pop()
		if curr == g.Goal() {
			return parent.Reconstruct(curr)
		}
		if cost > costs[curr] {
			continue
		}
		t.expand(curr)
		for _, nb := range g.Neighbors(curr) {
			next := cost + nb.Cost
			if best, seen := costs[nb.Coord]; !seen || next < best {
				costs[nb.Coord] = next
				parent.Set(nb.Coord, curr)
				pq.Push(nb.Coord, next)
				t.discover(nb.Coord)
			}
		}
	}

	return nil
}
