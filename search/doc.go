// Package search implements six interchangeable graph searches over a
// grid.Grid: breadth-first (BFS), depth-first (DFS), uniform-cost (UCS),
// depth-limited (DLS), iterative-deepening (IDDFS) and bidirectional
// breadth-first search, each returning the path from Start to Goal as an
// ordered slice of coordinates.
//
// What
//
//   - Run(alg, g, opts...) dispatches by Algorithm; RunNamed parses a name.
//   - BFS, DFS, UCS, DLS, IDDFS and Bidirectional are direct entry points.
//   - Every run reports a Result with Status found / no-path / cancelled,
//     the path, its weighted cost and event counters.
//   - An Observer is notified synchronously: OnExpand when a cell is popped
//     and processed, OnDiscover when a neighbour joins the frontier and
//     OnPathCell for each path cell once the search has succeeded.
//
// Guarantees
//
//   - BFS: fewest moves. Diagonal moves count as one move despite costing 1.4.
//   - UCS: minimal total cost.
//   - DLS(L): at most L moves; DLS(0) succeeds only when Start == Goal.
//   - IDDFS: as many moves as the smallest L for which DLS(L) succeeds.
//   - Bidirectional: a connected start→goal path with the meeting cell once.
//   - DFS: any valid path; the first move in grid order is explored first.
//
// Determinism
//
//	Neighbours come from grid.Neighbors in move-list order. Queues consume
//	them in that order, stacks receive them reversed so the first move is
//	popped first, and UCS breaks cost ties by row then column. Runs are
//	therefore fully reproducible.
//
// Cancellation
//
//	The context from WithContext, and the observer when it implements
//	Canceller, are re-read between expansions and before every event. Once
//	cancellation is seen the run emits nothing more and returns
//	StatusCancelled with a nil error. Runs own all their tables, so separate
//	goroutines may search the same Grid concurrently.
//
// Options
//
//   - WithContext(ctx):          cancellation.
//   - WithObserver(obs):         event sink (Canceller, Resetter, PaceSetter upgrades honoured).
//   - WithDepthLimit(d):         DLS limit, d >= 0, default 15.
//   - WithMaxIterativeDepth(d):  IDDFS ceiling, d >= 1, default 49.
//   - WithLogger(l):             slog logger for Debug diagnostics.
//
// Errors
//
//   - ErrGridNil           if the grid pointer is nil.
//   - ErrUnknownAlgorithm  if the algorithm name is not in the fixed set.
//   - ErrOptionViolation   if an Option is invalid.
//
// Broken internal bookkeeping (a parent chain that cannot reach its root)
// panics instead of returning a wrong path.
package search
