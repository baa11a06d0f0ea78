package gridgraph

import (
	"fmt"
	"math"
)

// New allocates a height×width grid with every cell open.
// Returns ErrInvalidDimension if either argument is ≤ 0 or height×width
// does not fit in an int.
// Complexity: O(H×W) time and memory.
func New(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimension, height, width)
	}
	if height > math.MaxInt/width {
		return nil, fmt.Errorf("%w: %d×%d cells overflow int", ErrInvalidDimension, height, width)
	}
	return &Grid{
		height: height,
		width:  width,
		walls:  make([]bool, height*width),
	}, nil
}

// FromWalls builds a grid from a non-empty, rectangular wall mask where
// rows[r][c] reports whether (r,c) is a wall. The input is copied.
// Returns ErrInvalidDimension if the mask has no rows or no columns,
// ErrNonRectangular if any row length differs.
func FromWalls(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimension
	}
	h, w := len(rows), len(rows[0])
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
	}
	g, err := New(h, w)
	if err != nil {
		return nil, err
	}
	for r := 0; r < h; r++ {
		copy(g.walls[r*w:(r+1)*w], rows[r])
	}
	return g, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Size returns the total number of cells.
func (g *Grid) Size() int { return g.height * g.width }

// InBounds reports whether c lies within [0,Height)×[0,Width).
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// Cell returns the cell at c, or ErrOutOfBounds.
func (g *Grid) Cell(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return Cell{}, g.outOfBounds(c)
	}
	return Cell{Coord: c, Wall: g.walls[g.Index(c)]}, nil
}

// IsWall reports whether c is a wall. Out-of-bounds coordinates are not walls.
func (g *Grid) IsWall(c Coord) bool {
	return g.InBounds(c) && g.walls[g.Index(c)]
}

// Neighbors returns the in-bounds cells adjacent to c at offsets
// (+1,0), (-1,0), (0,+1), (0,-1), in that order. Walls are included;
// filtering them is the traversal's job.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		if n := c.Add(d); g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// ToggleWall flips the wall flag of the cell at c. No other cell changes.
// Returns ErrOutOfBounds if c is outside the grid.
func (g *Grid) ToggleWall(c Coord) error {
	if !g.InBounds(c) {
		return g.outOfBounds(c)
	}
	i := g.Index(c)
	g.walls[i] = !g.walls[i]
	return nil
}

// SetWall assigns the wall flag of the cell at c.
func (g *Grid) SetWall(c Coord, wall bool) error {
	if !g.InBounds(c) {
		return g.outOfBounds(c)
	}
	g.walls[g.Index(c)] = wall
	return nil
}

// Walls returns every wall cell in row-major order.
func (g *Grid) Walls() []Coord {
	var out []Coord
	for i, w := range g.walls {
		if w {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// ClearWalls opens every cell.
func (g *Grid) ClearWalls() {
	clear(g.walls)
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	walls := make([]bool, len(g.walls))
	copy(walls, g.walls)
	return &Grid{height: g.height, width: g.width, walls: walls}
}

// Index maps c to its row-major arena index: Row*Width + Col.
// The caller must ensure c is in bounds.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Row*g.width + c.Col
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.width, Col: idx % g.width}
}

func (g *Grid) outOfBounds(c Coord) error {
	return fmt.Errorf("%w: %s not in %d×%d grid", ErrOutOfBounds, c, g.height, g.width)
}
