package gridgraph

import "fmt"

// Coord identifies one cell by its row and column.
type Coord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// String renders c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Cell is a read-only view of one grid position.
type Cell struct {
	Coord
	Wall bool
}

// neighborOffsets is the fixed exploration order: down, up, right, left.
// Every traversal in this module depends on it for tie-breaking.
var neighborOffsets = [4]Coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// NeighborOffsets returns a copy of the fixed neighbour order.
func NeighborOffsets() [4]Coord {
	return neighborOffsets
}

// Grid is a Height×Width layout of cells. The shape is fixed at construction;
// individual wall flags may be edited. walls is indexed row-major: Row*Width + Col.
type Grid struct {
	height, width int
	walls         []bool
}
