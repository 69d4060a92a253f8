// Package search defines the options, observer contract, results and error
// definitions shared by the six grid search strategies.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/gridsearch/grid"
)

// Sentinel errors. All of them are configuration errors raised before any
// node is expanded; running out of frontier or being cancelled is not an error.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrUnknownAlgorithm is returned for a name outside the fixed set.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Defaults taken from the demo application.
const (
	// DefaultDepthLimit is the limit DLS runs with when none is given.
	DefaultDepthLimit = 15
	// DefaultMaxIterativeDepth is the last limit IDDFS attempts.
	DefaultMaxIterativeDepth = 49
)

// Algorithm names one of the search strategies.
type Algorithm string

// The fixed set of strategies, in the order the demo presents them.
const (
	AlgBFS           Algorithm = "BFS"
	AlgDFS           Algorithm = "DFS"
	AlgUCS           Algorithm = "UCS"
	AlgDLS           Algorithm = "DLS"
	AlgIDDFS         Algorithm = "IDDFS"
	AlgBidirectional Algorithm = "Bidirectional"
)

// Algorithms lists every supported strategy.
func Algorithms() []Algorithm {
	return []Algorithm{AlgBFS, AlgDFS, AlgUCS, AlgDLS, AlgIDDFS, AlgBidirectional}
}

// String returns the canonical name.
func (a Algorithm) String() string { return string(a) }

// ParseAlgorithm resolves a name case-insensitively. "Bi-Dir" and "bidir"
// are accepted for Bidirectional. Anything else yields ErrUnknownAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "bi-dir", "bidir":
		return AlgBidirectional, nil
	}
	for _, a := range Algorithms() {
		if strings.ToLower(string(a)) == key {
			return a, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Status classifies how a run ended.
type Status int

const (
	// StatusNoPath means the frontier or the depth ceiling was exhausted.
	StatusNoPath Status = iota
	// StatusFound means a path was produced.
	StatusFound
	// StatusCancelled means the run stopped cooperatively before completing.
	StatusCancelled
)

// String returns "found", "no-path" or "cancelled".
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusCancelled:
		return "cancelled"
	default:
		return "no-path"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes a name produced by MarshalText.
func (s *Status) UnmarshalText(b []byte) error {
	switch string(b) {
	case "found":
		*s = StatusFound
	case "cancelled":
		*s = StatusCancelled
	case "no-path":
		*s = StatusNoPath
	default:
		return fmt.Errorf("search: unknown status %q", string(b))
	}

	return nil
}

// Result holds the outcome of one search invocation.
//   - Path: start→goal inclusive; nil unless Status == StatusFound.
//   - Cost: weighted cost of Path under the grid's move costs.
//   - Expanded / Discovered: number of expand / discover events produced.
//   - Iterations: depth-limited passes performed (IDDFS), 1 otherwise.
//   - DepthLimit: limit of the last depth-limited pass (DLS, IDDFS), else 0.
type Result struct {
	Algorithm  Algorithm
	Status     Status
	Path       []grid.Coordinate
	Cost       float64
	Expanded   int
	Discovered int
	Iterations int
	DepthLimit int
	Elapsed    time.Duration
}

// Found reports whether a path was produced.
func (r *Result) Found() bool { return r.Status == StatusFound }

// Edges returns the number of moves in Path, or -1 without a path.
func (r *Result) Edges() int {
	if !r.Found() {
		return -1
	}

	return len(r.Path) - 1
}

// Observer receives exploration events synchronously while a search runs.
// Events are an output side channel: the engine never reads anything back
// except through the optional Canceller upgrade. Implementations must not
// block indefinitely.
type Observer interface {
	// OnExpand is called when a node is popped and processed.
	OnExpand(c grid.Coordinate)
	// OnDiscover is called each time a neighbour is added to the frontier.
	OnDiscover(c grid.Coordinate)
	// OnPathCell is called for every cell of a found path, start to goal,
	// after the search completes.
	OnPathCell(c grid.Coordinate)
}

// Canceller is an optional Observer upgrade polled between expansions and
// before every event. Returning true stops the run.
type Canceller interface {
	Cancelled() bool
}

// Resetter is an optional Observer upgrade notified before each IDDFS pass,
// when all search-local state is discarded.
type Resetter interface {
	OnReset(limit int)
}

// PaceSetter is an optional Observer upgrade told when IDDFS enters and
// leaves its many-repeated-expansions phase, so presentation can speed up.
type PaceSetter interface {
	SetFastMode(fast bool)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are no-ops.
type ObserverFuncs struct {
	Expand   func(grid.Coordinate)
	Discover func(grid.Coordinate)
	PathCell func(grid.Coordinate)
}

// OnExpand calls f.Expand if set.
func (f ObserverFuncs) OnExpand(c grid.Coordinate) {
	if f.Expand != nil {
		f.Expand(c)
	}
}

// OnDiscover calls f.Discover if set.
func (f ObserverFuncs) OnDiscover(c grid.Coordinate) {
	if f.Discover != nil {
		f.Discover(c)
	}
}

// OnPathCell calls f.PathCell if set.
func (f ObserverFuncs) OnPathCell(c grid.Coordinate) {
	if f.PathCell != nil {
		f.PathCell(c)
	}
}

// Option configures a search via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and collaborators for one search invocation.
type Options struct {
	// Ctx allows cancellation; polled between expansions.
	Ctx context.Context

	// Observer receives exploration events.
	Observer Observer

	// DepthLimit bounds DLS (edges from start). 0 expands nothing.
	DepthLimit int

	// MaxIterativeDepth is the largest limit IDDFS tries, starting at 1.
	MaxIterativeDepth int

	// Logger receives Debug records for run start, finish and IDDFS passes.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a no-op Observer
//   - DepthLimit 15, MaxIterativeDepth 49
//   - a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:               context.Background(),
		Observer:          ObserverFuncs{},
		DepthLimit:        DefaultDepthLimit,
		MaxIterativeDepth: DefaultMaxIterativeDepth,
		Logger:            slog.New(slog.DiscardHandler),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithObserver routes exploration events to obs.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithDepthLimit sets the DLS depth limit.
//
//	d >= 0: limit paths to d edges
//	d < 0:  invalid option → ErrOptionViolation
func WithDepthLimit(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: DepthLimit cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.DepthLimit = d
	}
}

// WithMaxIterativeDepth sets the IDDFS ceiling; it must be at least 1.
func WithMaxIterativeDepth(d int) Option {
	return func(o *Options) {
		if d < 1 {
			o.err = fmt.Errorf("%w: MaxIterativeDepth must be >= 1 (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxIterativeDepth = d
	}
}

// WithLogger sets the logger for run diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
