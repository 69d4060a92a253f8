package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// Namespace prefixes every metric name.
const Namespace = "gridsearch"

// ErrRegister wraps a failure to register the collector's metrics.
var ErrRegister = errors.New("metrics: register")

// Collector groups the search metrics.
type Collector struct {
	expanded   *prometheus.CounterVec
	discovered *prometheus.CounterVec
	runs       *prometheus.CounterVec
	pathEdges  *prometheus.HistogramVec
	duration   *prometheus.HistogramVec
}

// NewCollector creates the metric vectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		expanded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "expanded_cells_total",
			Help:      "Cells popped and expanded by searches.",
		}, []string{"algorithm"}),
		discovered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "discovered_cells_total",
			Help:      "Cells added to a search frontier.",
		}, []string{"algorithm"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "runs_total",
			Help:      "Completed searches by outcome.",
		}, []string{"algorithm", "status"}),
		pathEdges: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "path_edges",
			Help:      "Moves in found paths.",
			Buckets:   prometheus.LinearBuckets(0, 4, 12),
		}, []string{"algorithm"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of searches.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"algorithm"}),
	}
	if reg == nil {
		return c, nil
	}
	for _, m := range c.collectors() {
		if err := reg.Register(m); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRegister, err)
		}
	}

	return c, nil
}

func (c *Collector) collectors() []prometheus.Collector {
	return []prometheus.Collector{c.expanded, c.discovered, c.runs, c.pathEdges, c.duration}
}

// Observe records the outcome of a finished run.
func (c *Collector) Observe(res *search.Result) {
	if res == nil {
		return
	}
	alg := string(res.Algorithm)
	c.runs.WithLabelValues(alg, res.Status.String()).Inc()
	c.duration.WithLabelValues(alg).Observe(res.Elapsed.Seconds())
	if res.Found() {
		c.pathEdges.WithLabelValues(alg).Observe(float64(res.Edges()))
	}
}

// Observer returns a search.Observer that counts events for alg.
func (c *Collector) Observer(alg search.Algorithm) search.Observer {
	return &counting{
		expanded:   c.expanded.WithLabelValues(string(alg)),
		discovered: c.discovered.WithLabelValues(string(alg)),
	}
}

type counting struct {
	expanded   prometheus.Counter
	discovered prometheus.Counter
}

func (o *counting) OnExpand(grid.Coordinate)   { o.expanded.Inc() }
func (o *counting) OnDiscover(grid.Coordinate) { o.discovered.Inc() }
func (o *counting) OnPathCell(grid.Coordinate) {}
