package layout

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pathgrid/explorer"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// RandomOptions tunes Random. Zero fields take defaults.
type RandomOptions struct {
	Name     string
	Height   int
	Width    int
	Clusters int     // number of random walks; default Height*Width/40, at least 1
	Steps    int     // length of each walk; default 20
	Density  float64 // chance a visited cell becomes a wall; default 0.6
	Seed     int64
}

func (o *RandomOptions) defaults() {
	if o.Clusters <= 0 {
		o.Clusters = max(1, o.Height*o.Width/40)
	}
	if o.Steps <= 0 {
		o.Steps = 20
	}
	if o.Density <= 0 || o.Density > 1 {
		o.Density = 0.6
	}
}

// Random lays clustered walls by random walks, start at the top-left corner
// and end at the bottom-right one. The same options always give the same
// scenario. Markers are never walled; reachability is not guaranteed.
func Random(opts RandomOptions) (*Scenario, error) {
	if opts.Height <= 0 || opts.Width <= 0 || opts.Height*opts.Width < 2 {
		return nil, fmt.Errorf("%w: random scenario needs at least two cells, got %d×%d",
			gridgraph.ErrInvalidDimension, opts.Height, opts.Width)
	}
	opts.defaults()

	b, err := explorer.NewBoard(opts.Height, opts.Width)
	if err != nil {
		return nil, err
	}
	g := b.Grid()
	start := gridgraph.Coord{Row: 0, Col: 0}
	end := gridgraph.Coord{Row: opts.Height - 1, Col: opts.Width - 1}
	if err := b.SetStart(start); err != nil {
		return nil, err
	}
	if err := b.SetEnd(end); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	offsets := gridgraph.NeighborOffsets()
	for c := 0; c < opts.Clusters; c++ {
		p := gridgraph.Coord{Row: rng.Intn(opts.Height), Col: rng.Intn(opts.Width)}
		for s := 0; s < opts.Steps; s++ {
			if rng.Float64() < opts.Density {
				// marker cells are refused by the board
				if _, err := b.SetWall(p, true); err != nil {
					return nil, err
				}
			}
			if np := p.Add(offsets[rng.Intn(len(offsets))]); g.InBounds(np) {
				p = np
			}
		}
	}

	return FromBoard(b, opts.Name), nil
}
