package explorer_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathgrid/explorer"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// ExampleBoard shows the editing flow a UI drives: place markers, draw walls,
// explore, then replay frames at whatever pace it likes.
func ExampleBoard() {
	b, _ := explorer.NewBoard(2, 3)
	_ = b.SetStart(gridgraph.Coord{Row: 0, Col: 0})
	_ = b.SetEnd(gridgraph.Coord{Row: 0, Col: 2})
	_, _ = b.ToggleWall(gridgraph.Coord{Row: 0, Col: 1})

	// toggling a marker cell is ignored
	changed, _ := b.ToggleWall(gridgraph.Coord{Row: 0, Col: 0})
	fmt.Println("start toggled:", changed)

	rep, err := b.Explore()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("reached:", rep.Reached, "steps:", rep.Steps())
	var frames []string
	for _, f := range rep.Frames() {
		frames = append(frames, fmt.Sprintf("%s%s", f.Kind, f.Cell))
	}
	fmt.Println(strings.Join(frames, " "))
	// Output:
	// start toggled: false
	// reached: true steps: 4
	// visit(0,0) visit(1,0) visit(1,1) visit(1,2) visit(0,2) path(0,0) path(1,0) path(1,1) path(1,2) path(0,2)
}
