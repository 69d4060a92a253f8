package render

import (
	"io"
	"strings"
	"sync"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/gridsearch/grid"
)

// Mark is the display state of one cell.
type Mark uint8

// Cell marks, in legend order.
const (
	MarkOpen     Mark = iota // walkable, not yet reached
	MarkWall                 // blocked
	MarkStart                // start cell
	MarkGoal                 // goal cell
	MarkFrontier             // discovered, waiting in the frontier
	MarkExpanded             // popped and expanded
	MarkPath                 // on the returned path
)

// style is the glyph and background colour of a Mark.
type style struct {
	glyph string
	bg    string
	fg    string
}

var palette = map[Mark]style{
	MarkOpen:     {".", "#ffffff", "#808080"},
	MarkWall:     {"#", "#000000", "#808080"},
	MarkStart:    {"S", "#008000", "#ffffff"},
	MarkGoal:     {"G", "#ff0000", "#ffffff"},
	MarkFrontier: {"o", "#0000ff", "#ffffff"},
	MarkExpanded: {"x", "#ffff00", "#000000"},
	MarkPath:     {"*", "#800080", "#ffffff"},
}

// Glyph returns the single-character symbol used for m.
func (m Mark) Glyph() string { return palette[m].glyph }

// Canvas holds the mark of every cell and writes frames to an output.
// It implements search.Observer and search.Resetter and may be read from
// another goroutine while a search paints it.
type Canvas struct {
	mu    sync.Mutex
	g     *grid.Grid
	marks [][]Mark
	w     io.Writer
	out   *termenv.Output
	live  bool
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithProfile forces a colour profile (termenv.Ascii disables colour).
func WithProfile(p termenv.Profile) Option {
	return func(c *Canvas) {
		c.out = termenv.NewOutput(c.w, termenv.WithProfile(p))
	}
}

// WithLive redraws the whole frame after every event.
func WithLive(live bool) Option {
	return func(c *Canvas) { c.live = live }
}

// NewCanvas prepares a canvas for g writing to w. The colour profile is
// detected from w unless WithProfile is given.
func NewCanvas(g *grid.Grid, w io.Writer, opts ...Option) *Canvas {
	c := &Canvas{g: g, w: w, out: termenv.NewOutput(w)}
	c.marks = make([][]Mark, g.Rows())
	for r := range c.marks {
		c.marks[r] = make([]Mark, g.Cols())
	}
	c.clear()
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// clear paints the static map: walls, start, goal, everything else open.
func (c *Canvas) clear() {
	for r := range c.marks {
		for col := range c.marks[r] {
			at := grid.At(r, col)
			switch {
			case at == c.g.Start():
				c.marks[r][col] = MarkStart
			case at == c.g.Goal():
				c.marks[r][col] = MarkGoal
			case !c.g.IsOpen(at):
				c.marks[r][col] = MarkWall
			default:
				c.marks[r][col] = MarkOpen
			}
		}
	}
}

// paint sets a mark unless the cell is start or goal.
func (c *Canvas) paint(at grid.Coordinate, m Mark) {
	c.mu.Lock()
	if at != c.g.Start() && at != c.g.Goal() && c.g.InBounds(at) {
		c.marks[at.Row][at.Col] = m
	}
	live := c.live
	c.mu.Unlock()

	if live {
		c.redraw()
	}
}

// OnExpand paints at as expanded.
func (c *Canvas) OnExpand(at grid.Coordinate) { c.paint(at, MarkExpanded) }

// OnDiscover paints at as frontier.
func (c *Canvas) OnDiscover(at grid.Coordinate) { c.paint(at, MarkFrontier) }

// OnPathCell paints at as path.
func (c *Canvas) OnPathCell(at grid.Coordinate) { c.paint(at, MarkPath) }

// OnReset wipes search marks between IDDFS passes, keeping walls, start
// and goal.
func (c *Canvas) OnReset(int) {
	c.mu.Lock()
	c.clear()
	live := c.live
	c.mu.Unlock()

	if live {
		c.redraw()
	}
}

// Reset is OnReset for callers outside a search.
func (c *Canvas) Reset() { c.OnReset(0) }

// Mark returns the current mark of a cell; out-of-bounds cells read as walls.
func (c *Canvas) Mark(at grid.Coordinate) Mark {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.g.InBounds(at) {
		return MarkWall
	}

	return c.marks[at.Row][at.Col]
}

// Frame renders the current state, one text line per grid row.
func (c *Canvas) Frame() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var b strings.Builder
	for _, row := range c.marks {
		for _, m := range row {
			st := palette[m]
			b.WriteString(c.out.String(st.glyph).
				Foreground(c.out.Color(st.fg)).
				Background(c.out.Color(st.bg)).
				String())
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Render writes the current frame.
func (c *Canvas) Render() error {
	_, err := io.WriteString(c.out, c.Frame())
	return err
}

func (c *Canvas) redraw() {
	c.out.ClearScreen()
	_ = c.Render()
}
