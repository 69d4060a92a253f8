package search

import (
	"fmt"
	"time"

	"github.com/katalvlaran/gridsearch/grid"
)

// strategy is the body of one algorithm: it returns the path or nil.
type strategy func(g *grid.Grid, t *tracker, o *Options) []grid.Coordinate

var strategies = map[Algorithm]strategy{
	AlgBFS:           breadthFirst,
	AlgDFS:           depthFirst,
	AlgUCS:           uniformCost,
	AlgDLS:           depthLimitedSearch,
	AlgIDDFS:         iterativeDeepening,
	AlgBidirectional: bidirectional,
}

// Run executes the named algorithm on g, applying any number of functional
// Options. Returns ErrOptionViolation for bad options, ErrGridNil for a nil
// grid and ErrUnknownAlgorithm for a name outside the fixed set.
//
// Not finding a path and being cancelled are normal outcomes: err is nil and
// Result.Status tells them apart. On success every path cell is sent to the
// observer's OnPathCell, in order, as the last events of the run.
func Run(alg Algorithm, g *grid.Grid, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrGridNil
	}
	body, ok := strategies[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}

	log := o.Logger.With("algorithm", alg)
	log.Debug("search started", "start", g.Start(), "goal", g.Goal())

	t := newTracker(&o)
	began := time.Now()
	path := body(g, t, &o)

	res := &Result{
		Algorithm:  alg,
		Expanded:   t.expanded,
		Discovered: t.discovered,
		Iterations: t.iterations,
		DepthLimit: t.limit,
		Elapsed:    time.Since(began),
	}
	if res.Iterations == 0 && alg != AlgIDDFS {
		res.Iterations = 1
	}

	switch {
	case path != nil:
		cost, err := g.PathCost(path)
		if err != nil {
			panic(fmt.Sprintf("search: %s produced an invalid path: %v", alg, err))
		}
		res.Status = StatusFound
		res.Path = path
		res.Cost = cost
		t.path(path)
	case t.stopped:
		res.Status = StatusCancelled
	default:
		res.Status = StatusNoPath
	}

	log.Debug("search finished",
		"status", res.Status,
		"edges", res.Edges(),
		"expanded", res.Expanded,
		"discovered", res.Discovered,
		"elapsed", res.Elapsed,
	)

	return res, nil
}

// RunNamed resolves name with ParseAlgorithm and calls Run.
func RunNamed(name string, g *grid.Grid, opts ...Option) (*Result, error) {
	alg, err := ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}

	return Run(alg, g, opts...)
}
