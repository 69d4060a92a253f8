package scenario

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// ErrMazeSize indicates a maze request with fewer than one room per side.
var ErrMazeSize = errors.New("scenario: maze needs at least 1x1 rooms")

// room is a cell of the maze lattice before it is drawn as a map.
type room struct{ r, c int }

var roomSteps = [4]room{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Maze generates a perfect maze (exactly one route between any two open
// cells) of rows×cols rooms with Wilson's algorithm, seeded for
// reproducibility. The map is (2·rows+1)×(2·cols+1): rooms sit on odd
// coordinates, walls between them are opened as the maze is carved. Start is
// the top-left room, goal the bottom-right one. Connectivity is conn4 so
// paths cannot cut wall corners.
func Maze(rows, cols int, seed int64) (*Scenario, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrMazeSize, rows, cols)
	}
	rng := rand.New(rand.NewSource(seed))

	h, w := 2*rows+1, 2*cols+1
	cells := make([][]byte, h)
	for i := range cells {
		cells[i] = []byte(strings.Repeat("#", w))
	}
	open := func(r room) { cells[2*r.r+1][2*r.c+1] = '.' }
	link := func(a, b room) { cells[a.r+b.r+1][a.c+b.c+1] = '.' }
	inside := func(r room) bool { return r.r >= 0 && r.r < rows && r.c >= 0 && r.c < cols }

	inMaze := make(map[room]bool, rows*cols)
	first := room{rng.Intn(rows), rng.Intn(cols)}
	inMaze[first] = true
	open(first)

	// Visit rooms in a fixed order; each walk starts at the next room not yet
	// carved and ends when it touches the maze.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			start := room{r, c}
			if inMaze[start] {
				continue
			}
			exit := make(map[room]room)
			for cur := start; !inMaze[cur]; {
				var next room
				for {
					d := roomSteps[rng.Intn(len(roomSteps))]
					next = room{cur.r + d.r, cur.c + d.c}
					if inside(next) {
						break
					}
				}
				exit[cur] = next
				cur = next
			}
			// Following the last exits erases the walk's loops.
			for cur := start; !inMaze[cur]; cur = exit[cur] {
				inMaze[cur] = true
				open(cur)
				link(cur, exit[cur])
			}
		}
	}

	rowsOut := make([]string, h)
	for i := range cells {
		rowsOut[i] = string(cells[i])
	}

	return &Scenario{
		Name:         fmt.Sprintf("maze-%dx%d-%d", rows, cols, seed),
		Description:  "Generated perfect maze.",
		Map:          rowsOut,
		Start:        []int{1, 1},
		Goal:         []int{h - 2, w - 2},
		Connectivity: "conn4",
	}, nil
}

// ParseSize reads "ROWSxCOLS" such as "8x12".
func ParseSize(s string) (rows, cols int, err error) {
	if _, err := fmt.Sscanf(strings.ToLower(s), "%dx%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMazeSize, s)
	}
	if rows < 1 || cols < 1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMazeSize, s)
	}

	return rows, cols, nil
}
