// Package explorer ties the grid model and the search engine together behind
// the contract consumed by user interfaces.
//
// What
//
//   - Report is the outcome of one exploration: the visited order, a
//     reachability flag and, when reachable, the shortest path. Both sequences
//     are complete and ordered; Frames flattens them into one replay sequence.
//   - Board is the editing collaborator: a grid plus optional start and end
//     markers, enforcing that markers never sit on walls or on each other and
//     that wall toggles on a marker are ignored.
//   - Explore runs bfs.Search and bfs.ReconstructPath in one call.
//
// Pacing
//
//	Nothing in this package sleeps or schedules. A caller that wants to reveal
//	cells one at a time iterates Report.Frames at its own cadence.
//
// Errors
//
//   - ErrGridNil:            NewBoardFromGrid given a nil grid.
//   - ErrMarkerUnset:        Explore on a board without start or end.
//   - ErrMarkerConflict:     marker placed on a wall or on the other marker.
//   - ErrInconsistentReport: Report.Check found a broken invariant.
//   - gridgraph.ErrOutOfBounds for bad coordinates (bfs.ErrOutOfBounds is the same value).
package explorer
