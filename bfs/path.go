package bfs

import (
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// ReconstructPath returns the shortest start→end path of a finished run.
// It starts from the last dequeued cell (the end cell when r.Reached),
// follows parent links back to the start, and drops any cell that is a wall
// in g. Walls cannot appear on a path when start and end were open; the
// filter guards against a layout edited between Search and this call.
//
// Returns ErrGridNil for a nil grid or result and ErrNotReached when the
// run did not reach its end cell.
func ReconstructPath(g *gridgraph.Grid, r *Result) ([]gridgraph.Coord, error) {
	if g == nil || r == nil {
		return nil, ErrGridNil
	}
	if !r.Reached {
		return nil, ErrNotReached
	}
	last, _ := r.Last()
	chain, err := r.PathTo(last)
	if err != nil {
		return nil, err
	}

	path := chain[:0]
	for _, c := range chain {
		if g.IsWall(c) {
			continue
		}
		path = append(path, c)
	}

	return path, nil
}
