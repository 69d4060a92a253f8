package search

import (
	"context"

	"github.com/katalvlaran/gridsearch/grid"
)

// tracker is the event and cancellation plumbing shared by all strategies.
// Once cancellation is observed it latches: no further events are emitted.
type tracker struct {
	ctx       context.Context
	obs       Observer
	canceller Canceller
	resetter  Resetter
	pacer     PaceSetter

	stopped    bool
	expanded   int
	discovered int
	iterations int
	limit      int
}

func newTracker(o *Options) *tracker {
	t := &tracker{ctx: o.Ctx, obs: o.Observer}
	t.canceller, _ = o.Observer.(Canceller)
	t.resetter, _ = o.Observer.(Resetter)
	t.pacer, _ = o.Observer.(PaceSetter)

	return t
}

// cancelled re-reads the running flag: the context and, when the observer
// implements Canceller, its verdict.
func (t *tracker) cancelled() bool {
	if t.stopped {
		return true
	}
	if t.ctx.Err() != nil || (t.canceller != nil && t.canceller.Cancelled()) {
		t.stopped = true
	}

	return t.stopped
}

func (t *tracker) expand(c grid.Coordinate) {
	if t.cancelled() {
		return
	}
	t.expanded++
	t.obs.OnExpand(c)
}

func (t *tracker) discover(c grid.Coordinate) {
	if t.cancelled() {
		return
	}
	t.discovered++
	t.obs.OnDiscover(c)
}

func (t *tracker) path(p []grid.Coordinate) {
	for _, c := range p {
		if t.cancelled() {
			return
		}
		t.obs.OnPathCell(c)
	}
}

func (t *tracker) reset(limit int) {
	if t.resetter != nil && !t.cancelled() {
		t.resetter.OnReset(limit)
	}
}

func (t *tracker) pace(fast bool) {
	if t.pacer != nil {
		t.pacer.SetFastMode(fast)
	}
}
