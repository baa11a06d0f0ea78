package explorer

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathgrid/bfs"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

var (
	// ErrGridNil is returned when a board is built over a nil grid.
	ErrGridNil = errors.New("explorer: grid is nil")
	// ErrMarkerUnset is returned by Board.Explore when start or end is missing.
	ErrMarkerUnset = errors.New("explorer: start and end must both be set")
	// ErrMarkerConflict is returned when a marker would sit on a wall or on the other marker.
	ErrMarkerConflict = errors.New("explorer: marker conflict")
)

// Board is a grid being edited together with its start and end markers.
// It is not safe for concurrent use.
type Board struct {
	grid     *gridgraph.Grid
	start    gridgraph.Coord
	end      gridgraph.Coord
	hasStart bool
	hasEnd   bool
}

// NewBoard creates a board over a fresh height×width grid with no markers.
func NewBoard(height, width int) (*Board, error) {
	g, err := gridgraph.New(height, width)
	if err != nil {
		return nil, err
	}
	return &Board{grid: g}, nil
}

// NewBoardFromGrid wraps an existing grid. The board takes ownership of g.
func NewBoardFromGrid(g *gridgraph.Grid) (*Board, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	return &Board{grid: g}, nil
}

// Grid exposes the underlying layout for reading. Edit through the board so
// marker rules hold.
func (b *Board) Grid() *gridgraph.Grid { return b.grid }

// Start returns the start marker, if set.
func (b *Board) Start() (gridgraph.Coord, bool) { return b.start, b.hasStart }

// End returns the end marker, if set.
func (b *Board) End() (gridgraph.Coord, bool) { return b.end, b.hasEnd }

// SetStart places the start marker on c.
func (b *Board) SetStart(c gridgraph.Coord) error {
	if err := b.checkMarker(c, b.end, b.hasEnd, "end"); err != nil {
		return err
	}
	b.start, b.hasStart = c, true
	return nil
}

// SetEnd places the end marker on c.
func (b *Board) SetEnd(c gridgraph.Coord) error {
	if err := b.checkMarker(c, b.start, b.hasStart, "start"); err != nil {
		return err
	}
	b.end, b.hasEnd = c, true
	return nil
}

func (b *Board) checkMarker(c, other gridgraph.Coord, hasOther bool, otherName string) error {
	cell, err := b.grid.Cell(c)
	if err != nil {
		return err
	}
	if cell.Wall {
		return fmt.Errorf("%w: %s is a wall", ErrMarkerConflict, c)
	}
	if hasOther && other == c {
		return fmt.Errorf("%w: %s is already the %s cell", ErrMarkerConflict, c, otherName)
	}
	return nil
}

// ToggleWall flips the wall at c unless c holds a marker, in which case the
// call is a no-op. Reports whether the layout changed.
func (b *Board) ToggleWall(c gridgraph.Coord) (bool, error) {
	if _, err := b.grid.Cell(c); err != nil {
		return false, err
	}
	if b.isMarker(c) {
		return false, nil
	}
	return true, b.grid.ToggleWall(c)
}

// SetWall assigns the wall flag at c, with the same marker rule as ToggleWall.
func (b *Board) SetWall(c gridgraph.Coord, wall bool) (bool, error) {
	if _, err := b.grid.Cell(c); err != nil {
		return false, err
	}
	if b.isMarker(c) || b.grid.IsWall(c) == wall {
		return false, nil
	}
	return true, b.grid.SetWall(c, wall)
}

// ClearWalls opens every cell. Markers are kept.
func (b *Board) ClearWalls() {
	b.grid.ClearWalls()
}

func (b *Board) isMarker(c gridgraph.Coord) bool {
	return (b.hasStart && b.start == c) || (b.hasEnd && b.end == c)
}

// Explore runs a search between the markers. Returns ErrMarkerUnset unless
// both are placed.
func (b *Board) Explore(opts ...bfs.Option) (*Report, error) {
	if !b.hasStart || !b.hasEnd {
		return nil, ErrMarkerUnset
	}
	return Explore(b.grid, b.start, b.end, opts...)
}
