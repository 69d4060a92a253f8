package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/render"
	"github.com/katalvlaran/gridsearch/search"
)

func smallGrid(t *testing.T) *grid.Grid {
	t.Helper()
	cells := [][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}
	g, err := grid.New(cells, grid.At(2, 0), grid.At(0, 2))
	require.NoError(t, err)

	return g
}

func TestCanvas_StaticFrame(t *testing.T) {
	var buf bytes.Buffer
	c := render.NewCanvas(smallGrid(t), &buf, render.WithProfile(termenv.Ascii))

	assert.Equal(t, "..G\n.#.\nS..\n", c.Frame())
	require.NoError(t, c.Render())
	assert.Equal(t, "..G\n.#.\nS..\n", buf.String())
}

func TestCanvas_PaintsSearch(t *testing.T) {
	g := smallGrid(t)
	c := render.NewCanvas(g, &bytes.Buffer{}, render.WithProfile(termenv.Ascii))

	res, err := search.BFS(g, search.WithObserver(c))
	require.NoError(t, err)
	require.True(t, res.Found())

	assert.Equal(t, render.MarkStart, c.Mark(g.Start()), "start is never repainted")
	assert.Equal(t, render.MarkGoal, c.Mark(g.Goal()), "goal is never repainted")
	assert.Equal(t, render.MarkWall, c.Mark(grid.At(1, 1)))
	assert.Equal(t, render.MarkWall, c.Mark(grid.At(5, 5)))
	for _, p := range res.Path[1 : len(res.Path)-1] {
		assert.Equal(t, render.MarkPath, c.Mark(p))
	}
	assert.Equal(t, strings.Count(c.Frame(), "*"), len(res.Path)-2)
}

func TestCanvas_ResetKeepsStaticCells(t *testing.T) {
	g := smallGrid(t)
	c := render.NewCanvas(g, &bytes.Buffer{}, render.WithProfile(termenv.Ascii))

	c.OnExpand(grid.At(1, 0))
	c.OnDiscover(grid.At(0, 0))
	assert.Equal(t, "o.G\nx#.\nS..\n", c.Frame())

	c.Reset()
	assert.Equal(t, "..G\n.#.\nS..\n", c.Frame())
}

func TestCanvas_LiveRedraws(t *testing.T) {
	var buf bytes.Buffer
	c := render.NewCanvas(smallGrid(t), &buf, render.WithProfile(termenv.Ascii), render.WithLive(true))

	c.OnExpand(grid.At(1, 0))
	out := buf.String()
	assert.Contains(t, out, "..G\nx#.\nS..\n")
}

func TestMark_Glyph(t *testing.T) {
	assert.Equal(t, "*", render.MarkPath.Glyph())
	assert.Equal(t, "#", render.MarkWall.Glyph())
}
