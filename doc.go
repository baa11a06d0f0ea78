// Package pathgrid finds shortest paths on rectangular grids with walls and
// reports how the search unfolded, so a front end can replay it.
//
// The library is split into small packages, bottom-up:
//
//	gridgraph/ — Grid layout: dimensions, walls, 4-way neighbours, components, breach cost
//	bfs/       — breadth-first search engine and path reconstruction
//	explorer/  — Report contract (visited order, reached flag, path) and the editable Board
//	layout/    — YAML/JSON scenario files and a seeded random generator
//	render/    — terminal drawing and animated replay
//
// The cmd/pathgrid binary wires these to a CLI and an HTTP service.
//
// Quick example:
//
//	board, _ := layout.Parse(
//		"S.#.",
//		"..#.",
//		"...E",
//	)
//	rep, _ := board.Explore()
//	fmt.Println(rep.Reached, rep.Steps()) // true 5
//
// Searches are single-threaded and deterministic: the same layout always
// yields the same visited order and the same path.
package pathgrid
