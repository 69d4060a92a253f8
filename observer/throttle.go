package observer

import (
	"context"
	"time"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

const (
	// DefaultDelay is the pause after each expand or discover event.
	DefaultDelay = 20 * time.Millisecond
	// DefaultFastDelay replaces DefaultDelay while in fast mode.
	DefaultFastDelay = 2 * time.Millisecond
)

// Throttle wraps an Observer and pauses after every expand and discover
// event. Path cells pass through without a pause. The pause is cut short
// when ctx is done.
type Throttle struct {
	next      search.Observer
	ctx       context.Context
	delay     time.Duration
	fastDelay time.Duration
	fast      bool
	quiet     map[grid.Coordinate]bool
	sleep     func(context.Context, time.Duration)
}

// ThrottleOption configures a Throttle.
type ThrottleOption func(*Throttle)

// WithDelays overrides the normal and fast-mode pauses. Negative values
// are treated as zero.
func WithDelays(normal, fast time.Duration) ThrottleOption {
	return func(t *Throttle) {
		t.delay = max(normal, 0)
		t.fastDelay = max(fast, 0)
	}
}

// WithContext makes pauses return early once ctx is done.
func WithContext(ctx context.Context) ThrottleOption {
	return func(t *Throttle) {
		if ctx != nil {
			t.ctx = ctx
		}
	}
}

// WithQuietCells disables the pause for events on the given cells. A
// renderer that never repaints start and goal passes them here.
func WithQuietCells(cells ...grid.Coordinate) ThrottleOption {
	return func(t *Throttle) {
		if t.quiet == nil {
			t.quiet = make(map[grid.Coordinate]bool, len(cells))
		}
		for _, c := range cells {
			t.quiet[c] = true
		}
	}
}

// WithSleep replaces the pause function; tests use it to observe delays.
func WithSleep(fn func(context.Context, time.Duration)) ThrottleOption {
	return func(t *Throttle) {
		if fn != nil {
			t.sleep = fn
		}
	}
}

// NewThrottle wraps next. A nil next discards events.
func NewThrottle(next search.Observer, opts ...ThrottleOption) *Throttle {
	if next == nil {
		next = search.ObserverFuncs{}
	}
	t := &Throttle{
		next:      next,
		ctx:       context.Background(),
		delay:     DefaultDelay,
		fastDelay: DefaultFastDelay,
		sleep:     sleepCtx,
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (t *Throttle) pause(c grid.Coordinate) {
	if t.quiet[c] {
		return
	}
	d := t.delay
	if t.fast {
		d = t.fastDelay
	}
	t.sleep(t.ctx, d)
}

// OnExpand forwards c and then pauses.
func (t *Throttle) OnExpand(c grid.Coordinate) {
	t.next.OnExpand(c)
	t.pause(c)
}

// OnDiscover forwards c and then pauses.
func (t *Throttle) OnDiscover(c grid.Coordinate) {
	t.next.OnDiscover(c)
	t.pause(c)
}

// OnPathCell forwards c without pausing.
func (t *Throttle) OnPathCell(c grid.Coordinate) { t.next.OnPathCell(c) }

// SetFastMode switches the pause and forwards to next if it cares.
func (t *Throttle) SetFastMode(fast bool) {
	t.fast = fast
	if p, ok := t.next.(search.PaceSetter); ok {
		p.SetFastMode(fast)
	}
}

// OnReset forwards to next if it implements search.Resetter.
func (t *Throttle) OnReset(limit int) {
	if r, ok := t.next.(search.Resetter); ok {
		r.OnReset(limit)
	}
}

// Cancelled forwards to next if it implements search.Canceller.
func (t *Throttle) Cancelled() bool {
	if c, ok := t.next.(search.Canceller); ok {
		return c.Cancelled()
	}

	return false
}
