package search

import (
	"github.com/katalvlaran/gridsearch/frontier"
	"github.com/katalvlaran/gridsearch/grid"
)

// DFS runs depth-first search with an explicit stack. Neighbours are pushed
// in reverse move order so the first move is explored first.
func DFS(g *grid.Grid, opts ...Option) (*Result, error) {
	return Run(AlgDFS, g, opts...)
}

// depthFirst checks the goal before the visited set: a goal pushed several
// times succeeds on its first pop with whatever parent was recorded last.
// The visited set is separate from the parent chain because a cell may sit on
// the stack under several parents before it is expanded.
func depthFirst(g *grid.Grid, t *tracker, _ *Options) []grid.Coordinate {
	stack := frontier.NewStack(g.Start())
	visited := make(map[grid.Coordinate]bool)
	parent := NewParentChain()
	parent.SetRoot(g.Start())

	for !stack.Empty() && !t.cancelled() {
		curr := stack.Pop()
		if curr == g.Goal() {
			return parent.Reconstruct(curr)
		}
		if visited[curr] {
			continue
		}
		visited[curr] = true
		t.expand(curr)

		nbs := g.Neighbors(curr)
		for i := len(nbs) - 1; i >= 0; i-- {
			n := nbs[i].Coord
			if !visited[n] {
				parent.Set(n, curr)
				stack.Push(n)
				t.discover(n)
			}
		}
	}

	return nil
}
