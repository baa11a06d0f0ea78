// Package gridgraph models a rectangular grid of cells, some of them walls,
// as an implicit 4-connected graph.
//
// What:
//
//   - Grid owns a fixed Height×Width layout stored as a row-major wall arena.
//   - Cells are identified by Coord{Row, Col}; no two cells share coordinates.
//   - Neighbors yields adjacent cells in the fixed order
//     (+1,0), (-1,0), (0,+1), (0,-1), skipping anything out of bounds.
//   - ToggleWall / SetWall edit single cells; the shape never changes.
//   - Components and ComponentOf group open cells into connected regions.
//   - Breach computes the fewest walls to remove so two cells connect (0-1 BFS).
//
// Why:
//
//   - The layout is static data. Search state (visited flags, parent links)
//     lives with the search, so one Grid can be explored any number of times
//     without a reset pass.
//   - A fixed neighbour order is what makes every traversal over the grid
//     reproducible cell for cell.
//
// Complexity:
//
//   - New, FromWalls, Clone: O(H×W) time and memory.
//   - InBounds, IsWall, ToggleWall, Neighbors: O(1).
//   - Components, ComponentOf, Breach: O(H×W) time and memory.
//
// Errors:
//
//   - ErrInvalidDimension: height or width is not positive.
//   - ErrNonRectangular: rows of a wall mask have differing lengths.
//   - ErrOutOfBounds: a coordinate lies outside [0,H)×[0,W).
package gridgraph
