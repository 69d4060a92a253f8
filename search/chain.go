package search

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/frontier"
	"github.com/katalvlaran/gridsearch/grid"
)

// link is one ParentChain entry; root entries have no predecessor.
type link struct {
	parent grid.Coordinate
	root   bool
}

// ParentChain maps each discovered coordinate to the coordinate it was
// reached from. It belongs to exactly one search invocation.
type ParentChain struct {
	links map[grid.Coordinate]link
}

// NewParentChain returns an empty chain.
func NewParentChain() *ParentChain {
	return &ParentChain{links: make(map[grid.Coordinate]link)}
}

// SetRoot records c as a root (no predecessor), overwriting any entry.
func (pc *ParentChain) SetRoot(c grid.Coordinate) {
	pc.links[c] = link{root: true}
}

// Set records parent as the predecessor of child, overwriting any entry.
func (pc *ParentChain) Set(child, parent grid.Coordinate) {
	pc.links[child] = link{parent: parent}
}

// Has reports whether c has an entry (root or not).
func (pc *ParentChain) Has(c grid.Coordinate) bool {
	_, ok := pc.links[c]
	return ok
}

// Parent returns the predecessor of c; ok is false for roots and unknown cells.
func (pc *ParentChain) Parent(c grid.Coordinate) (p grid.Coordinate, ok bool) {
	l, found := pc.links[c]
	if !found || l.root {
		return grid.Coordinate{}, false
	}

	return l.parent, true
}

// Len returns the number of entries.
func (pc *ParentChain) Len() int { return len(pc.links) }

// Reconstruct walks predecessors from terminal back to a root and returns
// the cells in root→terminal order.
//
// A terminal missing from the chain, a dangling predecessor or a cycle are
// bookkeeping bugs in the caller and panic rather than yield a wrong path.
func (pc *ParentChain) Reconstruct(terminal grid.Coordinate) []grid.Coordinate {
	if !pc.Has(terminal) {
		panic(fmt.Sprintf("search: %v missing from parent chain", terminal))
	}
	trail := frontier.NewStack[grid.Coordinate]()
	for cur := terminal; ; {
		trail.Push(cur)
		if trail.Len() > pc.Len() {
			panic(fmt.Sprintf("search: cycle in parent chain at %v", cur))
		}
		l, ok := pc.links[cur]
		if !ok {
			panic(fmt.Sprintf("search: %v has no parent chain entry", cur))
		}
		if l.root {
			break
		}
		cur = l.parent
	}

	path := make([]grid.Coordinate, 0, trail.Len())
	for !trail.Empty() {
		path = append(path, trail.Pop())
	}

	return path
}
