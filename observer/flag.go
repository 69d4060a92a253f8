package observer

import (
	"sync/atomic"

	"github.com/katalvlaran/gridsearch/grid"
)

// Flag is a stop switch. Stop may be called from any goroutine; the running
// search polls Cancelled between expansions. Add Flag to a Multi to attach
// it to other observers.
type Flag struct {
	stopped atomic.Bool
}

// Stop requests cancellation.
func (f *Flag) Stop() { f.stopped.Store(true) }

// Clear re-arms the flag for the next run.
func (f *Flag) Clear() { f.stopped.Store(false) }

// Cancelled reports whether Stop was called since the last Clear.
func (f *Flag) Cancelled() bool { return f.stopped.Load() }

// OnExpand is a no-op.
func (f *Flag) OnExpand(grid.Coordinate) {}

// OnDiscover is a no-op.
func (f *Flag) OnDiscover(grid.Coordinate) {}

// OnPathCell is a no-op.
func (f *Flag) OnPathCell(grid.Coordinate) {}
