// Package observer provides reusable search.Observer adapters.
//
//   - Recorder keeps every event in memory (tests, HTTP responses).
//   - Throttle sleeps between events so a renderer can animate a run:
//     Delay per explored cell, FastDelay while an IDDFS run is in fast
//     mode, and no pause on path cells.
//   - Multi fans events out to several observers and forwards the optional
//     Canceller, Resetter and PaceSetter upgrades.
//   - Logger writes each event to a *slog.Logger at Debug.
//   - Flag is a goroutine-safe cancellation switch for UI stop buttons.
//
// None of these adapters changes what a search computes; they only watch.
package observer
