package search_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// wallCells is the 10×10 map with a vertical wall at column 4, rows 1–7.
func wallCells() [][]int {
	cells := make([][]int, 10)
	for r := range cells {
		cells[r] = make([]int, 10)
	}
	for r := 1; r <= 7; r++ {
		cells[r][4] = 1
	}

	return cells
}

// wallGrid builds the wall map with start (8,1) and goal (2,7).
func wallGrid(t testing.TB) *grid.Grid {
	t.Helper()
	g, err := grid.New(wallCells(), grid.At(8, 1), grid.At(2, 7))
	require.NoError(t, err)

	return g
}

// enclosedGrid surrounds the goal (5,5) with a full ring of blocked cells.
func enclosedGrid(t testing.TB) *grid.Grid {
	t.Helper()
	cells := make([][]int, 10)
	for r := range cells {
		cells[r] = make([]int, 10)
	}
	for r := 4; r <= 6; r++ {
		for c := 4; c <= 6; c++ {
			cells[r][c] = 1
		}
	}
	cells[5][5] = 0
	g, err := grid.New(cells, grid.At(0, 0), grid.At(5, 5))
	require.NoError(t, err)

	return g
}

// corridor builds a single-row map of n open cells from (0,0) to (0,n-1).
func corridor(t testing.TB, n int) *grid.Grid {
	t.Helper()
	g, err := grid.New([][]int{make([]int, n)}, grid.At(0, 0), grid.At(0, n-1))
	require.NoError(t, err)

	return g
}

// randomGrid produces an r×c map with roughly density blocked cells and a
// random open start and goal.
func randomGrid(t testing.TB, rng *rand.Rand, r, c int, density float64) *grid.Grid {
	t.Helper()
	cells := make([][]int, r)
	var opens []grid.Coordinate
	for i := range cells {
		cells[i] = make([]int, c)
		for j := range cells[i] {
			if rng.Float64() < density {
				cells[i][j] = 1
			} else {
				opens = append(opens, grid.At(i, j))
			}
		}
	}
	if len(opens) == 0 {
		cells[0][0] = 0
		opens = append(opens, grid.At(0, 0))
	}
	s := opens[rng.Intn(len(opens))]
	e := opens[rng.Intn(len(opens))]
	g, err := grid.New(cells, s, e)
	require.NoError(t, err)

	return g
}

// minEdges is an independent breadth-first distance oracle; -1 if unreachable.
func minEdges(g *grid.Grid) int {
	dist := map[grid.Coordinate]int{g.Start(): 0}
	queue := []grid.Coordinate{g.Start()}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == g.Goal() {
			return dist[u]
		}
		for _, nb := range g.Neighbors(u) {
			if _, ok := dist[nb.Coord]; !ok {
				dist[nb.Coord] = dist[u] + 1
				queue = append(queue, nb.Coord)
			}
		}
	}

	return -1
}

// minCost relaxes every cell until nothing improves (Bellman–Ford style);
// +Inf if unreachable.
func minCost(g *grid.Grid) float64 {
	best := map[grid.Coordinate]float64{g.Start(): 0}
	for changed := true; changed; {
		changed = false
		for u, du := range best {
			for _, nb := range g.Neighbors(u) {
				if d, ok := best[nb.Coord]; !ok || du+nb.Cost < d-1e-12 {
					best[nb.Coord] = du + nb.Cost
					changed = true
				}
			}
		}
	}
	if d, ok := best[g.Goal()]; ok {
		return d
	}

	return math.Inf(1)
}

// event is one recorded observer notification.
type event struct {
	kind  byte // 'E' expand, 'D' discover, 'P' path, 'R' reset
	coord grid.Coordinate
}

func (e event) String() string { return fmt.Sprintf("%c%v", e.kind, e.coord) }

// recorder captures every notification and can cancel after a number of
// expansions (0 = never).
type recorder struct {
	events      []event
	cancelAfter int
	expands     int
	cancelled   bool
	resets      []int
	fast        []bool
	onReset     func(limit int)
}

func (r *recorder) OnExpand(c grid.Coordinate) {
	r.events = append(r.events, event{'E', c})
	r.expands++
	if r.cancelAfter > 0 && r.expands >= r.cancelAfter {
		r.cancelled = true
	}
}

func (r *recorder) OnDiscover(c grid.Coordinate) { r.events = append(r.events, event{'D', c}) }
func (r *recorder) OnPathCell(c grid.Coordinate) { r.events = append(r.events, event{'P', c}) }
func (r *recorder) Cancelled() bool              { return r.cancelled }
func (r *recorder) SetFastMode(fast bool)        { r.fast = append(r.fast, fast) }

func (r *recorder) OnReset(limit int) {
	r.resets = append(r.resets, limit)
	r.events = append(r.events, event{'R', grid.Coordinate{}})
	if r.onReset != nil {
		r.onReset(limit)
	}
}

// kinds filters recorded events by kind.
func (r *recorder) kinds(k byte) []grid.Coordinate {
	var out []grid.Coordinate
	for _, e := range r.events {
		if e.kind == k {
			out = append(out, e.coord)
		}
	}

	return out
}

var (
	_ search.Observer   = (*recorder)(nil)
	_ search.Canceller  = (*recorder)(nil)
	_ search.Resetter   = (*recorder)(nil)
	_ search.PaceSetter = (*recorder)(nil)
)

// path builds a coordinate slice from (row, col) pairs.
func path(rc ...int) []grid.Coordinate {
	out := make([]grid.Coordinate, 0, len(rc)/2)
	for i := 0; i+1 < len(rc); i += 2 {
		out = append(out, grid.At(rc[i], rc[i+1]))
	}

	return out
}
