package search

import (
	"github.com/katalvlaran/gridsearch/frontier"
	"github.com/katalvlaran/gridsearch/grid"
)

// BFS runs breadth-first search from g.Start() to g.Goal(). The returned path
// has the minimum number of moves; move costs are ignored for ordering.
func BFS(g *grid.Grid, opts ...Option) (*Result, error) {
	return Run(AlgBFS, g, opts...)
}

// breadthFirst keeps one FIFO frontier; a cell is enqueued only the first
// time it appears in the parent chain.
func breadthFirst(g *grid.Grid, t *tracker, _ *Options) []grid.Coordinate {
	queue := frontier.NewQueue(g.Start())
	parent := NewParentChain()
	parent.SetRoot(g.Start())

	for !queue.Empty() && !t.cancelled() {
		curr := queue.Pop()
		if curr == g.Goal() {
			return parent.Reconstruct(curr)
		}
		t.expand(curr)
		for _, nb := range g.Neighbors(curr) {
			if !parent.Has(nb.Coord) {
				parent.Set(nb.Coord, curr)
				queue.Push(nb.Coord)
				t.discover(nb.Coord)
			}
		}
	}

	return nil
}
