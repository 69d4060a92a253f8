package observer

import (
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// Multi delivers each event to every member in order. Optional upgrades are
// forwarded to members that implement them; Cancelled is true as soon as any
// member reports it.
type Multi []search.Observer

// Join builds a Multi, skipping nil observers.
func Join(obs ...search.Observer) Multi {
	m := make(Multi, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			m = append(m, o)
		}
	}

	return m
}

// OnExpand delivers c to every member.
func (m Multi) OnExpand(c grid.Coordinate) {
	for _, o := range m {
		o.OnExpand(c)
	}
}

// OnDiscover delivers c to every member.
func (m Multi) OnDiscover(c grid.Coordinate) {
	for _, o := range m {
		o.OnDiscover(c)
	}
}

// OnPathCell delivers c to every member.
func (m Multi) OnPathCell(c grid.Coordinate) {
	for _, o := range m {
		o.OnPathCell(c)
	}
}

// OnReset forwards to members implementing search.Resetter.
func (m Multi) OnReset(limit int) {
	for _, o := range m {
		if r, ok := o.(search.Resetter); ok {
			r.OnReset(limit)
		}
	}
}

// SetFastMode forwards to members implementing search.PaceSetter.
func (m Multi) SetFastMode(fast bool) {
	for _, o := range m {
		if p, ok := o.(search.PaceSetter); ok {
			p.SetFastMode(fast)
		}
	}
}

// Cancelled reports whether any member asks to stop.
func (m Multi) Cancelled() bool {
	for _, o := range m {
		if c, ok := o.(search.Canceller); ok && c.Cancelled() {
			return true
		}
	}

	return false
}
