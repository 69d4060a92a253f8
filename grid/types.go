package grid

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and path checks. All construction
// errors are configuration errors: they are reported to the caller and never
// corrected silently.
var (
	// ErrEmptyGrid indicates the input map has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: map must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a start or goal outside the map.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrBlockedEndpoint indicates a start or goal placed on a blocked cell.
	ErrBlockedEndpoint = errors.New("grid: start and goal must be open cells")
	// ErrBadConnectivity indicates an unknown Connectivity value.
	ErrBadConnectivity = errors.New("grid: unknown connectivity")
	// ErrBadCost indicates a move cost that is not a positive finite number.
	ErrBadCost = errors.New("grid: move cost must be positive and finite")
	// ErrInvalidPath indicates a path that does not follow the move rule.
	ErrInvalidPath = errors.New("grid: invalid path")
)

// Default move costs, as used by the demo map.
const (
	DefaultOrthogonalCost = 1.0
	DefaultDiagonalCost   = 1.4
)

// Coordinate addresses a cell by 0-indexed row and column.
type Coordinate struct {
	Row, Col int
}

// At is shorthand for Coordinate{Row: row, Col: col}.
func At(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// String renders the coordinate as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// MarshalJSON encodes the coordinate as [row, col].
func (c Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.Row, c.Col})
}

// UnmarshalJSON decodes a [row, col] pair.
func (c *Coordinate) UnmarshalJSON(b []byte) error {
	var pair []int
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("grid: coordinate: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("grid: coordinate needs [row, col], got %d values", len(pair))
	}
	c.Row, c.Col = pair[0], pair[1]

	return nil
}

// Add returns c shifted by the move offset.
func (c Coordinate) Add(m Move) Coordinate {
	return Coordinate{Row: c.Row + m.DRow, Col: c.Col + m.DCol}
}

// Move is a directional offset with its traversal cost.
type Move struct {
	DRow, DCol int
	Cost       float64
}

// Diagonal reports whether the move changes both row and column.
func (m Move) Diagonal() bool {
	return m.DRow != 0 && m.DCol != 0
}

// Neighbor is a reachable cell paired with the cost of the move into it.
type Neighbor struct {
	Coord Coordinate
	Cost  float64
}

// Connectivity selects the move set.
type Connectivity int

const (
	// Conn6 is the demo move set: up, right, down, down-right, left, up-left.
	Conn6 Connectivity = iota
	// Conn4 uses the orthogonal moves only: up, right, down, left.
	Conn4
	// Conn8 uses all eight directions, clockwise from up.
	Conn8
)

// String returns the lowercase name used in scenario files.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn6:
		return "conn6"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("connectivity(%d)", int(c))
	}
}

// ParseConnectivity maps "conn4", "conn6", "conn8" (or "4", "6", "8") to a
// Connectivity. The empty string selects Conn6.
func ParseConnectivity(s string) (Connectivity, error) {
	switch s {
	case "", "conn6", "6":
		return Conn6, nil
	case "conn4", "4":
		return Conn4, nil
	case "conn8", "8":
		return Conn8, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadConnectivity, s)
	}
}

// offsets returns the ordered (drow, dcol) list for a connectivity.
func (c Connectivity) offsets() ([][2]int, bool) {
	switch c {
	case Conn6:
		return [][2]int{{-1, 0}, {0, 1}, {1, 0}, {1, 1}, {0, -1}, {-1, -1}}, true
	case Conn4:
		return [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}, true
	case Conn8:
		return [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}, true
	default:
		return nil, false
	}
}

// Options contains tunable parameters for a Grid.
type Options struct {
	// Conn chooses the move set. Default Conn6.
	Conn Connectivity
	// OrthogonalCost is the cost of a move along one axis. Default 1.0.
	OrthogonalCost float64
	// DiagonalCost is the cost of a move along both axes. Default 1.4.
	DiagonalCost float64
}

// Option configures a Grid via functional arguments.
type Option func(*Options)

// DefaultOptions returns Conn6 with costs 1.0 / 1.4.
func DefaultOptions() Options {
	return Options{
		Conn:           Conn6,
		OrthogonalCost: DefaultOrthogonalCost,
		DiagonalCost:   DefaultDiagonalCost,
	}
}

// WithConnectivity selects the move set.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// WithCosts overrides the orthogonal and diagonal move costs.
func WithCosts(orthogonal, diagonal float64) Option {
	return func(o *Options) {
		o.OrthogonalCost = orthogonal
		o.DiagonalCost = diagonal
	}
}

// Grid is an immutable walkability map with a start and a goal.
// Cells[r][c] == 0 means open; any other value means blocked.
type Grid struct {
	start Coordinate
	goal  Coordinate
	cells [][]int
	rows  int
	cols  int
	conn  Connectivity
	moves []Move
}
