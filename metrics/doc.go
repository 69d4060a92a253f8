// Package metrics exports search activity as Prometheus metrics.
//
// A Collector owns one set of metric vectors labelled by algorithm. Attach
// Collector.Observer(alg) to a run to count expand and discover events as
// they happen, then hand the finished search.Result to Collector.Observe to
// record the outcome, path length and duration.
//
// Collectors are safe for concurrent use by many runs.
package metrics
