// Package bfs provides breadth-first search over a gridgraph.Grid, returning
// the order in which cells were explored, whether the end cell was reached,
// and the back-links needed to rebuild the shortest path.
//
// What
//
//   - Explore cells in non-decreasing step count from a start cell under
//     4-directional adjacency, never entering walls.
//   - Stop as soon as the end cell is dequeued.
//   - Return a Result containing:
//   - Order:   cells in dequeue order (the visited order)
//   - Reached: whether the end cell was dequeued
//   - Parent / Depth accessors backed by a per-run index arena
//   - Rebuild the start→end path with ReconstructPath (or Result.PathTo).
//
// Why
//
//   - Minimum number of traversed cells is exactly BFS distance on an
//     unweighted grid.
//   - The order of exploration is itself an output: callers replay it to show
//     how the search spread before revealing the path.
//
// Determinism
//
//	A cell is marked seen at enqueue time and its parent is set once, and
//	neighbours are always examined in the grid's fixed order
//	(+1,0), (-1,0), (0,+1), (0,-1). Order and every parent link are therefore
//	fully determined by the layout and the start/end cells. The parent links
//	form a tree rooted at the start cell; a cycle cannot be expressed.
//
// State
//
//	The grid is only read. Seen flags, parents and depths live in a walker
//	that exists for one call, so the same grid can be searched repeatedly
//	without any reset. Result keeps no reference to the grid.
//
// Complexity (N = Height×Width)
//
//   - Time:   O(N)   (each cell enqueued and dequeued at most once)
//   - Memory: O(N)   (queue, seen flags, parent and depth arenas)
//
// Usage
//
//	res, err := bfs.Search(g, start, end)
//	if err != nil {
//		// ErrGridNil, ErrOutOfBounds or ErrOptionViolation
//	}
//	if !res.Reached {
//		// no path; res.Order still lists every explored cell
//	}
//	path, err := bfs.ReconstructPath(g, res)
//
// Options
//
//   - WithOnEnqueue(fn):  observe a cell as it is discovered.
//   - WithOnDequeue(fn):  observe a cell as it is explored.
//   - WithMaxDepth(d):    do not discover cells further than d steps (d>0).
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrOutOfBounds      if start or end is outside the grid.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNotDiscovered    from PathTo for a cell the run never reached.
//   - ErrNotReached       from ReconstructPath when Reached is false.
//
// Non-reachability is reported through Result.Reached, never as an error.
package bfs
