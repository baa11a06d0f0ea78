package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathgrid/bfs"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// BenchmarkSearch_Open measures a corner-to-corner search on an open 500×500 grid.
func BenchmarkSearch_Open(b *testing.B) {
	const n = 500
	g, err := gridgraph.New(n, n)
	if err != nil {
		b.Fatal(err)
	}
	start, end := gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: n - 1, Col: n - 1}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.Search(g, start, end); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSearch_Walls measures the same search with ~25% random walls.
func BenchmarkSearch_Walls(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(1))
	g, err := gridgraph.New(n, n)
	if err != nil {
		b.Fatal(err)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if rng.Intn(4) == 0 {
				_ = g.SetWall(gridgraph.Coord{Row: r, Col: c}, true)
			}
		}
	}
	start, end := gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: n - 1, Col: n - 1}
	_ = g.SetWall(start, false)
	_ = g.SetWall(end, false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := bfs.Search(g, start, end)
		if err != nil {
			b.Fatal(err)
		}
		if res.Reached {
			_, _ = bfs.ReconstructPath(g, res)
		}
	}
}
