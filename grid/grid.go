package grid

import (
	"fmt"
	"math"
)

// New constructs a Grid from a non-empty, rectangular 2D slice and validates
// start and goal. It deep-copies the input so later edits by the caller
// cannot reach a running search.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrOutOfBounds, ErrBlockedEndpoint,
// ErrBadConnectivity or ErrBadCost. start == goal is allowed.
// Complexity: O(R×C) time and memory.
func New(cells [][]int, start, goal Coordinate, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}

	offsets, ok := o.Conn.offsets()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrBadConnectivity, int(o.Conn))
	}
	if !validCost(o.OrthogonalCost) || !validCost(o.DiagonalCost) {
		return nil, fmt.Errorf("%w: orthogonal=%v diagonal=%v", ErrBadCost, o.OrthogonalCost, o.DiagonalCost)
	}

	// Deep copy to prevent external mutation
	copied := make([][]int, rows)
	for r := 0; r < rows; r++ {
		copied[r] = make([]int, cols)
		copy(copied[r], cells[r])
	}

	moves := make([]Move, len(offsets))
	for i, d := range offsets {
		m := Move{DRow: d[0], DCol: d[1], Cost: o.OrthogonalCost}
		if m.Diagonal() {
			m.Cost = o.DiagonalCost
		}
		moves[i] = m
	}

	g := &Grid{
		start: start,
		goal:  goal,
		cells: copied,
		rows:  rows,
		cols:  cols,
		conn:  o.Conn,
		moves: moves,
	}

	for _, ep := range []struct {
		name string
		c    Coordinate
	}{{"start", start}, {"goal", goal}} {
		if !g.InBounds(ep.c) {
			return nil, fmt.Errorf("%w: %s %v outside %dx%d", ErrOutOfBounds, ep.name, ep.c, rows, cols)
		}
		if !g.IsOpen(ep.c) {
			return nil, fmt.Errorf("%w: %s %v is blocked", ErrBlockedEndpoint, ep.name, ep.c)
		}
	}

	return g, nil
}

func validCost(c float64) bool {
	return c > 0 && !math.IsInf(c, 0) && !math.IsNaN(c)
}

// Start returns the start cell.
func (g *Grid) Start() Coordinate { return g.start }

// Goal returns the goal cell.
func (g *Grid) Goal() Coordinate { return g.goal }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Connectivity returns the move set the grid was built with.
func (g *Grid) Connectivity() Connectivity { return g.conn }

// Moves returns a copy of the ordered move list.
func (g *Grid) Moves() []Move {
	out := make([]Move, len(g.moves))
	copy(out, g.moves)

	return out
}

// Cells returns a deep copy of the underlying map.
func (g *Grid) Cells() [][]int {
	out := make([][]int, g.rows)
	for r := range g.cells {
		out[r] = make([]int, g.cols)
		copy(out[r], g.cells[r])
	}

	return out
}

// InBounds reports whether c lies within the map.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// IsOpen reports whether c is in bounds and not blocked.
// Complexity: O(1).
func (g *Grid) IsOpen(c Coordinate) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col] == 0
}

// Neighbors returns every in-bounds open neighbour of c with its move cost,
// in move-list order. The order is part of the contract: searches that use a
// stack push these in reverse so the first move is explored first.
// Complexity: O(d).
func (g *Grid) Neighbors(c Coordinate) []Neighbor {
	out := make([]Neighbor, 0, len(g.moves))
	for _, m := range g.moves {
		n := c.Add(m)
		if g.IsOpen(n) {
			out = append(out, Neighbor{Coord: n, Cost: m.Cost})
		}
	}

	return out
}

// Step returns the cost of moving from a to b in one move, and false when b
// is not an open neighbour of a.
func (g *Grid) Step(a, b Coordinate) (float64, bool) {
	if !g.IsOpen(a) || !g.IsOpen(b) {
		return 0, false
	}
	for _, m := range g.moves {
		if a.Add(m) == b {
			return m.Cost, true
		}
	}

	return 0, false
}

// PathCost sums the move costs along path. An empty path costs 0.
// Returns ErrInvalidPath when two consecutive cells are not joined by a move.
func (g *Grid) PathCost(path []Coordinate) (float64, error) {
	if len(path) == 1 && !g.IsOpen(path[0]) {
		return 0, fmt.Errorf("%w: %v is not an open cell", ErrInvalidPath, path[0])
	}
	total := 0.0
	for i := 1; i < len(path); i++ {
		cost, ok := g.Step(path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("%w: no move from %v to %v at index %d", ErrInvalidPath, path[i-1], path[i], i)
		}
		total += cost
	}

	return total, nil
}

// ValidatePath checks that path starts at Start, ends at Goal and that every
// consecutive pair is a valid move.
func (g *Grid) ValidatePath(path []Coordinate) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if path[0] != g.Start() {
		return fmt.Errorf("%w: starts at %v, want %v", ErrInvalidPath, path[0], g.Start())
	}
	if last := path[len(path)-1]; last != g.Goal() {
		return fmt.Errorf("%w: ends at %v, want %v", ErrInvalidPath, last, g.Goal())
	}
	_, err := g.PathCost(path)

	return err
}
