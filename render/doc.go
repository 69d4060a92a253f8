// Package render paints a grid and the progress of a search on a terminal.
//
// Canvas is a search.Observer: every event recolours one cell. Colours
// follow the classic legend (white open, black wall, green start, red goal,
// blue frontier, yellow expanded, purple path). Start and goal are never
// repainted. Each cell also carries a glyph so that frames stay readable
// when the terminal profile has no colour:
//
//	.  open      #  wall
//	S  start     G  goal
//	o  frontier  x  expanded
//	*  path
//
// Colour output uses github.com/muesli/termenv.
package render
