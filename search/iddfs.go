package search

import (
	"github.com/katalvlaran/gridsearch/grid"
)

// IDDFS runs depth-limited search with limits 1, 2, … up to the ceiling
// from WithMaxIterativeDepth (default 49) and stops at the first limit that
// yields a path. The path therefore has as many moves as the smallest
// successful limit.
func IDDFS(g *grid.Grid, opts ...Option) (*Result, error) {
	return Run(AlgIDDFS, g, opts...)
}

// iterativeDeepening starts every pass from fresh depth and parent tables.
// Observers implementing Resetter are told before each pass; PaceSetter
// observers are switched to fast mode for the duration.
func iterativeDeepening(g *grid.Grid, t *tracker, o *Options) []grid.Coordinate {
	t.pace(true)
	defer t.pace(false)

	log := o.Logger.With("algorithm", AlgIDDFS)
	for limit := 1; limit <= o.MaxIterativeDepth; limit++ {
		if t.cancelled() {
			return nil
		}
		t.reset(limit)
		t.iterations++
		t.limit = limit
		if path := depthLimited(g, t, limit); path != nil {
			log.Debug("pass succeeded", "limit", limit, "expanded", t.expanded)
			return path
		}
		log.Debug("pass exhausted", "limit", limit, "expanded", t.expanded)
	}

	return nil
}
