package grid

// Components finds all regions of open cells that are connected under the
// grid's move set. Each component lists coordinates in discovery order;
// components appear in row-major order of their first cell.
//
// All built-in move sets contain the inverse of every move, so reachability
// is symmetric and the regions are well defined.
//
// Time:   O(R·C·d).
// Memory: O(R·C).
func (g *Grid) Components() [][]Coordinate {
	seen := make([]bool, g.rows*g.cols)
	var comps [][]Coordinate

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			root := Coordinate{Row: r, Col: c}
			if !g.IsOpen(root) || seen[g.index(root)] {
				continue
			}
			seen[g.index(root)] = true
			queue := []Coordinate{root}
			for qi := 0; qi < len(queue); qi++ {
				for _, nb := range g.Neighbors(queue[qi]) {
					if i := g.index(nb.Coord); !seen[i] {
						seen[i] = true
						queue = append(queue, nb.Coord)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// Reachable reports whether Goal lies in the same component as Start.
func (g *Grid) Reachable() bool {
	if g.Start() == g.Goal() {
		return true
	}
	seen := map[Coordinate]bool{g.Start(): true}
	queue := []Coordinate{g.Start()}
	for qi := 0; qi < len(queue); qi++ {
		for _, nb := range g.Neighbors(queue[qi]) {
			if nb.Coord == g.Goal() {
				return true
			}
			if !seen[nb.Coord] {
				seen[nb.Coord] = true
				queue = append(queue, nb.Coord)
			}
		}
	}

	return false
}

// index maps c to a row-major index.
func (g *Grid) index(c Coordinate) int {
	return c.Row*g.cols + c.Col
}
