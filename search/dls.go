package search

import (
	"github.com/katalvlaran/gridsearch/frontier"
	"github.com/katalvlaran/gridsearch/grid"
)

// DLS runs depth-limited search with the limit from WithDepthLimit
// (default 15). A returned path never has more than limit moves.
func DLS(g *grid.Grid, opts ...Option) (*Result, error) {
	return Run(AlgDLS, g, opts...)
}

// dlsFrame is one stack entry: a cell, its depth and the parent of this
// particular occurrence.
type dlsFrame struct {
	node   grid.Coordinate
	depth  int
	parent grid.Coordinate
	root   bool
}

// record stores this occurrence's parent, overwriting earlier ones.
func (f dlsFrame) record(pc *ParentChain) {
	if f.root {
		pc.SetRoot(f.node)
		return
	}
	pc.Set(f.node, f.parent)
}

func depthLimitedSearch(g *grid.Grid, t *tracker, o *Options) []grid.Coordinate {
	t.limit = o.DepthLimit

	return depthLimited(g, t, o.DepthLimit)
}

// depthLimited is DFS bounded by limit. A cell settled at depth d is expanded
// again only when reached at a strictly shallower depth, so every cell is
// eventually settled at its shallowest depth within the limit. The goal
// check precedes the depth check: a goal popped at depth == limit succeeds.
//
// Along the chain depth strictly decreases towards the start (a cell's
// recorded parent was settled one level shallower and settled depths only
// shrink), so reconstruction always terminates.
func depthLimited(g *grid.Grid, t *tracker, limit int) []grid.Coordinate {
	stack := frontier.NewStack(dlsFrame{node: g.Start(), root: true})
	parent := NewParentChain()
	settled := make(map[grid.Coordinate]int)

	for !stack.Empty() && !t.cancelled() {
		f := stack.Pop()
		if f.node == g.Goal() {
			f.record(parent)
			return parent.Reconstruct(f.node)
		}
		if f.depth >= limit {
			continue
		}
		if d, ok := settled[f.node]; ok && d <= f.depth {
			continue
		}
		settled[f.node] = f.depth
		f.record(parent)
		t.expand(f.node)

		nbs := g.Neighbors(f.node)
		for i := len(nbs) - 1; i >= 0; i-- {
			n := nbs[i].Coord
			if d, ok := settled[n]; !ok || d > f.depth+1 {
				stack.Push(dlsFrame{node: n, depth: f.depth + 1, parent: f.node})
				t.discover(n)
			}
		}
	}

	return nil
}
