package observer

import (
	"sync"

	"github.com/katalvlaran/gridsearch/grid"
)

// Kind identifies an event type.
type Kind string

// Event kinds, one per Observer hook.
const (
	KindExpand   Kind = "expand"
	KindDiscover Kind = "discover"
	KindPath     Kind = "path"
	KindReset    Kind = "reset"
)

// Event is one recorded notification. Limit is set for KindReset only.
type Event struct {
	Kind  Kind            `json:"kind"`
	Cell  grid.Coordinate `json:"cell"`
	Limit int             `json:"limit,omitempty"`
}

// Recorder stores events in arrival order. It implements search.Observer
// and search.Resetter and is safe for concurrent readers.
type Recorder struct {
	mu      sync.Mutex
	events  []Event
	max     int
	dropped int
}

// NewRecorder returns a Recorder that keeps at most max events (0 = no cap).
func NewRecorder(max int) *Recorder {
	return &Recorder{max: max}
}

func (r *Recorder) add(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.max > 0 && len(r.events) >= r.max {
		r.dropped++
		return
	}
	r.events = append(r.events, e)
}

// OnExpand records a KindExpand event.
func (r *Recorder) OnExpand(c grid.Coordinate) { r.add(Event{Kind: KindExpand, Cell: c}) }

// OnDiscover records a KindDiscover event.
func (r *Recorder) OnDiscover(c grid.Coordinate) { r.add(Event{Kind: KindDiscover, Cell: c}) }

// OnPathCell records a KindPath event.
func (r *Recorder) OnPathCell(c grid.Coordinate) { r.add(Event{Kind: KindPath, Cell: c}) }

// OnReset records a KindReset event carrying the new depth limit.
func (r *Recorder) OnReset(limit int) { r.add(Event{Kind: KindReset, Limit: limit}) }

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)

	return out
}

// Cells returns the cells of all events of kind k, in order.
func (r *Recorder) Cells(k Kind) []grid.Coordinate {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []grid.Coordinate
	for _, e := range r.events {
		if e.Kind == k {
			out = append(out, e.Cell)
		}
	}

	return out
}

// Dropped returns how many events the cap discarded.
func (r *Recorder) Dropped() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.dropped
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.dropped = 0
	r.mu.Unlock()
}
