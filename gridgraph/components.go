package gridgraph

// Components finds all contiguous regions of open (non-wall) cells.
// Regions are seeded in row-major order and each region lists its cells
// in discovery order under the fixed neighbour order.
//
// Time:   O(H·W).
// Memory: O(H·W) for seen flags and output.
func (g *Grid) Components() [][]Coord {
	seen := make([]bool, g.Size())
	var comps [][]Coord
	for i := range g.walls {
		if g.walls[i] || seen[i] {
			continue
		}
		comps = append(comps, g.flood(i, seen))
	}
	return comps
}

// ComponentOf returns the open region containing c. A wall cell forms a
// region of its own, so the result is never empty for an in-bounds c.
func (g *Grid) ComponentOf(c Coord) ([]Coord, error) {
	if !g.InBounds(c) {
		return nil, g.outOfBounds(c)
	}
	i := g.Index(c)
	if g.walls[i] {
		return []Coord{c}, nil
	}
	return g.flood(i, make([]bool, g.Size())), nil
}

// flood collects the open region around i0, marking seen as it goes.
func (g *Grid) flood(i0 int, seen []bool) []Coord {
	queue := []int{i0}
	seen[i0] = true
	var comp []Coord
	for qi := 0; qi < len(queue); qi++ {
		u := g.Coordinate(queue[qi])
		comp = append(comp, u)
		for _, d := range neighborOffsets {
			v := u.Add(d)
			if !g.InBounds(v) {
				continue
			}
			vi := g.Index(v)
			if g.walls[vi] || seen[vi] {
				continue
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}
	return comp
}
