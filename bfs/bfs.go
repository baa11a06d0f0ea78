package bfs

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

// walker encapsulates mutable BFS state for a single run.
// Cells are tracked by their row-major arena index.
type walker struct {
	grid  *gridgraph.Grid
	opts  Options
	end   int
	queue []int
	seen  []bool
	res   *Result
}

// Search runs breadth-first search on g from start, stopping as soon as end
// is dequeued, applying any number of functional Options.
// Returns ErrGridNil or ErrOutOfBounds for invalid input and
// ErrOptionViolation for bad options. An unreachable end is not an error:
// the Result reports Reached == false and lists every explored cell.
//
// Walls on start or end are not re-validated; callers guarantee both are open.
func Search(g *gridgraph.Grid, start, end gridgraph.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate endpoints; never clamp
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %s not in %d×%d grid", ErrOutOfBounds, start, g.Height(), g.Width())
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: end %s not in %d×%d grid", ErrOutOfBounds, end, g.Height(), g.Width())
	}

	// Prepare walker
	n := g.Size()
	w := &walker{
		grid:  g,
		opts:  o,
		end:   g.Index(end),
		queue: make([]int, 0, n),
		seen:  make([]bool, n),
		res: &Result{
			Start:  start,
			End:    end,
			Order:  make([]gridgraph.Coord, 0, n),
			height: g.Height(),
			width:  g.Width(),
			parent: make([]int, n),
			depth:  make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.parent[i] = -1
		w.res.depth[i] = -1
	}

	// Seed queue with start cell (no parent)
	w.enqueue(g.Index(start), 0, -1)
	w.loop()

	return w.res, nil
}

// enqueue marks i seen at depth d, records its parent, calls OnEnqueue,
// and appends it to the queue. A cell is enqueued at most once, so its
// parent is never overwritten.
func (w *walker) enqueue(i, d, parent int) {
	w.seen[i] = true
	w.res.depth[i] = d
	w.res.parent[i] = parent
	w.opts.OnEnqueue(w.grid.Coordinate(i), d)
	w.queue = append(w.queue, i)
}

// loop processes the queue until the end cell is dequeued or the queue empties.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		i := w.dequeue()
		if i == w.end {
			w.res.Reached = true
			return
		}
		w.enqueueNeighbors(i)
	}
}

// dequeue pops the oldest cell, appends it to Order and invokes OnDequeue.
func (w *walker) dequeue() int {
	i := w.queue[0]
	w.queue = w.queue[1:]
	c := w.grid.Coordinate(i)
	w.res.Order = append(w.res.Order, c)
	w.opts.OnDequeue(c, w.res.depth[i])
	return i
}

// enqueueNeighbors enqueues each unseen, non-wall neighbour of i in the
// grid's fixed neighbour order, honouring MaxDepth.
func (w *walker) enqueueNeighbors(i int) {
	nextDepth := w.res.depth[i] + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.grid.Neighbors(w.grid.Coordinate(i)) {
		j := w.grid.Index(nbr)
		if w.seen[j] || w.grid.IsWall(nbr) {
			continue
		}
		w.enqueue(j, nextDepth, i)
	}
}
