package gridgraph

import "errors"

var (
	// ErrInvalidDimension indicates a grid with a non-positive height or width.
	ErrInvalidDimension = errors.New("gridgraph: height and width must be positive")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid extents.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
)
