package explorer

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathgrid/bfs"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// ErrInconsistentReport is returned by Report.Check when the visited order
// and the path disagree.
var ErrInconsistentReport = errors.New("explorer: inconsistent report")

// Report is the result handed to presentation code.
//   - Visited: every explored cell, in the order it was dequeued.
//   - Reached: whether End was reached; false is a normal outcome.
//   - Path:    Start→End shortest path, empty unless Reached.
type Report struct {
	Start   gridgraph.Coord   `json:"start"`
	End     gridgraph.Coord   `json:"end"`
	Visited []gridgraph.Coord `json:"visited"`
	Reached bool              `json:"reached"`
	Path    []gridgraph.Coord `json:"path"`
}

// FrameKind tells a replaying caller which sequence a frame belongs to.
type FrameKind int

const (
	// FrameVisit reveals one explored cell.
	FrameVisit FrameKind = iota
	// FramePath reveals one cell of the shortest path.
	FramePath
)

// String returns "visit" or "path".
func (k FrameKind) String() string {
	switch k {
	case FrameVisit:
		return "visit"
	case FramePath:
		return "path"
	default:
		return fmt.Sprintf("FrameKind(%d)", int(k))
	}
}

// Frame is one step of progressive disclosure.
type Frame struct {
	Kind  FrameKind
	Cell  gridgraph.Coord
	Index int // position within its own sequence
}

// Explore searches g from start to end and assembles a Report. The grid is
// only read and is not retained.
func Explore(g *gridgraph.Grid, start, end gridgraph.Coord, opts ...bfs.Option) (*Report, error) {
	res, err := bfs.Search(g, start, end, opts...)
	if err != nil {
		return nil, err
	}
	rep := &Report{
		Start:   start,
		End:     end,
		Visited: res.Order,
		Reached: res.Reached,
	}
	if !res.Reached {
		return rep, nil
	}
	rep.Path, err = bfs.ReconstructPath(g, res)
	if err != nil {
		return nil, err
	}
	return rep, nil
}

// Frames returns every visited cell followed, only when reached, by every
// path cell. The caller decides how fast to play them.
func (r *Report) Frames() []Frame {
	frames := make([]Frame, 0, len(r.Visited)+len(r.Path))
	for i, c := range r.Visited {
		frames = append(frames, Frame{Kind: FrameVisit, Cell: c, Index: i})
	}
	if !r.Reached {
		return frames
	}
	for i, c := range r.Path {
		frames = append(frames, Frame{Kind: FramePath, Cell: c, Index: i})
	}
	return frames
}

// Steps returns the number of moves on the path, or -1 when not reached.
func (r *Report) Steps() int {
	if !r.Reached || len(r.Path) == 0 {
		return -1
	}
	return len(r.Path) - 1
}

// Check verifies the relation between the two sequences:
//   - Visited starts at Start; each cell appears once.
//   - When reached, Visited ends at End, Path runs Start→End, every path cell
//     was visited, and path cells appear in Visited in path order.
//   - When not reached, Path is empty.
func (r *Report) Check() error {
	if len(r.Visited) == 0 || r.Visited[0] != r.Start {
		return fmt.Errorf("%w: visited order does not begin at start %s", ErrInconsistentReport, r.Start)
	}
	pos := make(map[gridgraph.Coord]int, len(r.Visited))
	for i, c := range r.Visited {
		if _, dup := pos[c]; dup {
			return fmt.Errorf("%w: %s visited twice", ErrInconsistentReport, c)
		}
		pos[c] = i
	}

	if !r.Reached {
		if len(r.Path) != 0 {
			return fmt.Errorf("%w: path present although end was not reached", ErrInconsistentReport)
		}
		return nil
	}

	if r.Visited[len(r.Visited)-1] != r.End {
		return fmt.Errorf("%w: visited order does not end at end %s", ErrInconsistentReport, r.End)
	}
	if len(r.Path) == 0 || r.Path[0] != r.Start || r.Path[len(r.Path)-1] != r.End {
		return fmt.Errorf("%w: path does not run %s→%s", ErrInconsistentReport, r.Start, r.End)
	}
	last := -1
	for _, c := range r.Path {
		i, ok := pos[c]
		if !ok {
			return fmt.Errorf("%w: path cell %s was never visited", ErrInconsistentReport, c)
		}
		if i <= last {
			return fmt.Errorf("%w: path cell %s visited out of order", ErrInconsistentReport, c)
		}
		last = i
	}
	return nil
}
