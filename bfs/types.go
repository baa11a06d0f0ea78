// Package bfs provides tunable options, error definitions and the result
// type for breadth-first search over a gridgraph.Grid.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOutOfBounds is returned when start or end lies outside the grid.
	// It is gridgraph.ErrOutOfBounds, so either name matches with errors.Is.
	ErrOutOfBounds = gridgraph.ErrOutOfBounds

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotDiscovered is returned by PathTo for a cell the run never enqueued.
	ErrNotDiscovered = errors.New("bfs: cell was not discovered")

	// ErrNotReached is returned by ReconstructPath when the end was not reached.
	ErrNotReached = errors.New("bfs: end cell was not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
// Hooks observe the run; they cannot change its order.
type Options struct {
	// OnEnqueue is called when a cell is discovered and queued.
	// Receives the cell and its step count from the start.
	OnEnqueue func(c gridgraph.Coord, depth int)

	// OnDequeue is called when a cell is taken off the queue and appended
	// to the visited order.
	OnDequeue func(c gridgraph.Coord, depth int)

	// MaxDepth, if > 0, stops discovering cells beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnDequeue)
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(gridgraph.Coord, int) {},
		OnDequeue: func(gridgraph.Coord, int) {},
		MaxDepth:  0,
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c gridgraph.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(c gridgraph.Coord, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxDepth limits discovery to cells at most d steps from the start.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of one search run:
//   - Start, End: the endpoints the run was asked about.
//   - Order: cells in the order they were dequeued (the visited order).
//   - Reached: true iff End was dequeued; Order then ends with End.
//
// Parent links and depths are kept in row-major arenas sized to the grid;
// -1 marks "none". Result holds no reference to the grid itself.
type Result struct {
	Start   gridgraph.Coord
	End     gridgraph.Coord
	Order   []gridgraph.Coord
	Reached bool

	height, width int
	parent        []int
	depth         []int
}

func (r *Result) index(c gridgraph.Coord) (int, bool) {
	if c.Row < 0 || c.Row >= r.height || c.Col < 0 || c.Col >= r.width {
		return 0, false
	}
	return c.Row*r.width + c.Col, true
}

func (r *Result) coord(i int) gridgraph.Coord {
	return gridgraph.Coord{Row: i / r.width, Col: i % r.width}
}

// Discovered reports whether c was enqueued during the run.
func (r *Result) Discovered(c gridgraph.Coord) bool {
	i, ok := r.index(c)
	return ok && r.depth[i] >= 0
}

// Depth returns the step count from Start to c, if c was discovered.
func (r *Result) Depth(c gridgraph.Coord) (int, bool) {
	i, ok := r.index(c)
	if !ok || r.depth[i] < 0 {
		return 0, false
	}
	return r.depth[i], true
}

// Parent returns the cell c was discovered from. The start cell and
// undiscovered cells have no parent.
func (r *Result) Parent(c gridgraph.Coord) (gridgraph.Coord, bool) {
	i, ok := r.index(c)
	if !ok || r.parent[i] < 0 {
		return gridgraph.Coord{}, false
	}
	return r.coord(r.parent[i]), true
}

// Last returns the most recently dequeued cell, if any.
func (r *Result) Last() (gridgraph.Coord, bool) {
	if len(r.Order) == 0 {
		return gridgraph.Coord{}, false
	}
	return r.Order[len(r.Order)-1], true
}

// PathTo follows parent links from dest back to the start cell and returns
// them in start→dest order. Returns ErrNotDiscovered if dest was never
// enqueued by the run.
func (r *Result) PathTo(dest gridgraph.Coord) ([]gridgraph.Coord, error) {
	i, ok := r.index(dest)
	if !ok || r.depth[i] < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotDiscovered, dest)
	}
	// depth+1 cells: the chain length is known up front
	path := make([]gridgraph.Coord, r.depth[i]+1)
	for k := len(path) - 1; i >= 0; k, i = k-1, r.parent[i] {
		path[k] = r.coord(i)
	}

	return path, nil
}
