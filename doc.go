// Package gridsearch is a playground for uninformed path search on a grid:
// watch BFS, DFS, uniform-cost, depth-limited, iterative-deepening and
// bidirectional search explore the same map and compare what they return.
//
// The module is organised as small packages:
//
//	grid/      walkability map, start/goal, ordered move set with costs
//	frontier/  FIFO queue, LIFO stack, min-cost priority queue
//	search/    the six strategies, parent-chain reconstruction, Observer
//	observer/  recorder, throttle, fan-out, slog and stop-flag observers
//	render/    terminal canvas that paints cells as events arrive
//	metrics/   Prometheus counters and histograms fed by runs
//	scenario/  YAML scenario files and the built-in maps
//	server/    chi HTTP API over the engine
//	cmd/       the gridsearch CLI (run, serve, algorithms, scenarios)
//	examples/  small runnable programs
//
// Quick example:
//
//	g, _ := grid.New([][]int{
//		{0, 0, 0},
//		{0, 1, 0},
//		{0, 0, 0},
//	}, grid.At(2, 0), grid.At(0, 2))
//
//	res, _ := search.BFS(g)
//	fmt.Println(res.Status, res.Path) // found [(2,0) (1,0) (0,0) (0,1) (0,2)]
//
// Searches are single-threaded and deterministic; a Grid is immutable and
// may be shared by concurrent runs.
package gridsearch
