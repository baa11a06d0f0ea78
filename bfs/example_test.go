package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/bfs"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// ExampleSearch_gridTraversal shows the exploration order on an open 3×3 grid.
// Neighbours are taken down, up, right, left, so the search sweeps column 0
// before row 0 at every depth.
func ExampleSearch_gridTraversal() {
	g, _ := gridgraph.New(3, 3)

	res, err := bfs.Search(g, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 2, Col: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("reached:", res.Reached)
	fmt.Println(res.Order)

	path, _ := bfs.ReconstructPath(g, res)
	fmt.Println(path)
	// Output:
	// reached: true
	// [(0,0) (1,0) (0,1) (2,0) (1,1) (0,2) (2,1) (1,2) (2,2)]
	// [(0,0) (1,0) (2,0) (2,1) (2,2)]
}

// ExampleSearch_unreachable shows that a sealed end cell is a result, not an error.
//
//	S #
//	# E
func ExampleSearch_unreachable() {
	g, _ := gridgraph.FromWalls([][]bool{
		{false, true},
		{true, false},
	})

	res, err := bfs.Search(g, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 1, Col: 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("reached:", res.Reached)
	fmt.Println("visited:", res.Order)

	_, err = bfs.ReconstructPath(g, res)
	fmt.Println(err)
	// Output:
	// reached: false
	// visited: [(0,0)]
	// bfs: end cell was not reached
}

// ExampleSearch_maze routes around walls in a 4×5 maze.
//
//	S . # . .
//	# . # . #
//	. . . . .
//	. # # # E
func ExampleSearch_maze() {
	rows := []string{
		"..#..",
		"#.#.#",
		".....",
		".###.",
	}
	mask := make([][]bool, len(rows))
	for r, row := range rows {
		mask[r] = make([]bool, len(row))
		for c, ch := range row {
			mask[r][c] = ch == '#'
		}
	}
	g, _ := gridgraph.FromWalls(mask)

	res, _ := bfs.Search(g, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 3, Col: 4})
	path, _ := bfs.ReconstructPath(g, res)
	fmt.Println("steps:", len(path)-1)
	fmt.Println(path)
	// Output:
	// steps: 7
	// [(0,0) (0,1) (1,1) (2,1) (2,2) (2,3) (2,4) (3,4)]
}
