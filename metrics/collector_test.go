package metrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/metrics"
	"github.com/katalvlaran/gridsearch/search"
)

func TestCollector_CountsRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	g, err := grid.New([][]int{make([]int, 3)}, grid.At(0, 0), grid.At(0, 2))
	require.NoError(t, err)

	res, err := search.BFS(g, search.WithObserver(c.Observer(search.AlgBFS)))
	require.NoError(t, err)
	c.Observe(res)

	expected := `
# HELP gridsearch_expanded_cells_total Cells popped and expanded by searches.
# TYPE gridsearch_expanded_cells_total counter
gridsearch_expanded_cells_total{algorithm="BFS"} 2
# HELP gridsearch_discovered_cells_total Cells added to a search frontier.
# TYPE gridsearch_discovered_cells_total counter
gridsearch_discovered_cells_total{algorithm="BFS"} 2
# HELP gridsearch_runs_total Completed searches by outcome.
# TYPE gridsearch_runs_total counter
gridsearch_runs_total{algorithm="BFS",status="found"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"gridsearch_expanded_cells_total",
		"gridsearch_discovered_cells_total",
		"gridsearch_runs_total",
	))
	n, err := testutil.GatherAndCount(reg, "gridsearch_path_edges")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "one path histogram series")
}

func TestCollector_NoPathSkipsPathHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	g, err := grid.New([][]int{{0, 1, 0}}, grid.At(0, 0), grid.At(0, 2))
	require.NoError(t, err)
	res, err := search.DFS(g, search.WithObserver(c.Observer(search.AlgDFS)))
	require.NoError(t, err)
	c.Observe(res)
	c.Observe(nil)

	n, err := testutil.GatherAndCount(reg, "gridsearch_path_edges")
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = testutil.GatherAndCount(reg, "gridsearch_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCollector_DoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewCollector(reg)
	require.NoError(t, err)
	_, err = metrics.NewCollector(reg)
	require.ErrorIs(t, err, metrics.ErrRegister)

	c, err := metrics.NewCollector(nil)
	require.NoError(t, err)
	assert.NotNil(t, c)
}
