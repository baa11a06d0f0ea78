package layout

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathgrid/explorer"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// Glyphs used by the rows form.
const (
	GlyphOpen  = '.'
	GlyphWall  = '#'
	GlyphStart = 'S'
	GlyphEnd   = 'E'
)

// Sentinel errors for scenario decoding.
var (
	// ErrUnknownGlyph indicates a rows character outside ".#SE".
	ErrUnknownGlyph = errors.New("layout: unknown glyph")
	// ErrDuplicateMarker indicates more than one S or E.
	ErrDuplicateMarker = errors.New("layout: duplicate marker")
	// ErrMissingMarker indicates a scenario without a start or an end.
	ErrMissingMarker = errors.New("layout: start and end are required")
	// ErrMixedForms indicates rows combined with explicit dimensions or cells.
	ErrMixedForms = errors.New("layout: rows cannot be combined with height/width/walls/start/end")
	// ErrBadPoint indicates a coordinate that is not a [row, col] pair.
	ErrBadPoint = errors.New("layout: coordinates must be [row, col]")
)

// Scenario is the on-disk and on-the-wire description of one grid.
type Scenario struct {
	Name   string   `yaml:"name,omitempty" json:"name,omitempty"`
	Rows   []string `yaml:"rows,omitempty" json:"rows,omitempty"`
	Height int      `yaml:"height,omitempty" json:"height,omitempty"`
	Width  int      `yaml:"width,omitempty" json:"width,omitempty"`
	Walls  [][]int  `yaml:"walls,omitempty,flow" json:"walls,omitempty"`
	Start  []int    `yaml:"start,omitempty,flow" json:"start,omitempty"`
	End    []int    `yaml:"end,omitempty,flow" json:"end,omitempty"`
}

// Decode reads one YAML scenario from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("layout: decode: %w", err)
	}
	return &s, nil
}

// Load reads a YAML scenario from a file.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes s as YAML to w.
func Encode(w io.Writer, s *Scenario) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("layout: encode: %w", err)
	}
	return enc.Close()
}

// Parse is shorthand for a rows-form scenario.
func Parse(rows ...string) (*explorer.Board, error) {
	return (&Scenario{Rows: rows}).Board()
}

// Cells returns the number of cells the scenario describes, without building
// it. A product that overflows int saturates at math.MaxInt.
func (s *Scenario) Cells() int {
	h, w := s.Height, s.Width
	if len(s.Rows) > 0 {
		h, w = len(s.Rows), len(s.Rows[0])
	}
	if h <= 0 || w <= 0 {
		return 0
	}
	if h > math.MaxInt/w {
		return math.MaxInt
	}
	return h * w
}

// Board builds an explorer.Board with both markers placed.
func (s *Scenario) Board() (*explorer.Board, error) {
	if len(s.Rows) > 0 {
		if s.Height != 0 || s.Width != 0 || len(s.Walls) > 0 || s.Start != nil || s.End != nil {
			return nil, ErrMixedForms
		}
		return boardFromRows(s.Rows)
	}
	return s.explicitBoard()
}

func boardFromRows(rows []string) (*explorer.Board, error) {
	mask := make([][]bool, len(rows))
	var start, end *gridgraph.Coord
	for r, row := range rows {
		mask[r] = make([]bool, 0, len(row))
		for c, ch := range []rune(row) {
			at := gridgraph.Coord{Row: r, Col: c}
			switch ch {
			case GlyphOpen:
			case GlyphWall:
			case GlyphStart:
				if start != nil {
					return nil, fmt.Errorf("%w: second %c at %s", ErrDuplicateMarker, ch, at)
				}
				start = &at
			case GlyphEnd:
				if end != nil {
					return nil, fmt.Errorf("%w: second %c at %s", ErrDuplicateMarker, ch, at)
				}
				end = &at
			default:
				return nil, fmt.Errorf("%w: %q at %s", ErrUnknownGlyph, ch, at)
			}
			mask[r] = append(mask[r], ch == GlyphWall)
		}
	}
	if start == nil || end == nil {
		return nil, ErrMissingMarker
	}
	g, err := gridgraph.FromWalls(mask)
	if err != nil {
		return nil, err
	}
	return place(g, *start, *end)
}

func (s *Scenario) explicitBoard() (*explorer.Board, error) {
	if s.Start == nil || s.End == nil {
		return nil, ErrMissingMarker
	}
	start, err := point(s.Start)
	if err != nil {
		return nil, err
	}
	end, err := point(s.End)
	if err != nil {
		return nil, err
	}
	g, err := gridgraph.New(s.Height, s.Width)
	if err != nil {
		return nil, err
	}
	for _, w := range s.Walls {
		c, err := point(w)
		if err != nil {
			return nil, err
		}
		if err := g.SetWall(c, true); err != nil {
			return nil, err
		}
	}
	return place(g, start, end)
}

func place(g *gridgraph.Grid, start, end gridgraph.Coord) (*explorer.Board, error) {
	b, err := explorer.NewBoardFromGrid(g)
	if err != nil {
		return nil, err
	}
	if err := b.SetStart(start); err != nil {
		return nil, err
	}
	if err := b.SetEnd(end); err != nil {
		return nil, err
	}
	return b, nil
}

func point(p []int) (gridgraph.Coord, error) {
	if len(p) != 2 {
		return gridgraph.Coord{}, fmt.Errorf("%w: got %v", ErrBadPoint, p)
	}
	return gridgraph.Coord{Row: p[0], Col: p[1]}, nil
}

// FromBoard renders b in rows form. Markers that are not set are omitted.
func FromBoard(b *explorer.Board, name string) *Scenario {
	g := b.Grid()
	start, hasStart := b.Start()
	end, hasEnd := b.End()
	rows := make([]string, g.Height())
	var sb strings.Builder
	for r := 0; r < g.Height(); r++ {
		sb.Reset()
		for c := 0; c < g.Width(); c++ {
			at := gridgraph.Coord{Row: r, Col: c}
			switch {
			case hasStart && at == start:
				sb.WriteRune(GlyphStart)
			case hasEnd && at == end:
				sb.WriteRune(GlyphEnd)
			case g.IsWall(at):
				sb.WriteRune(GlyphWall)
			default:
				sb.WriteRune(GlyphOpen)
			}
		}
		rows[r] = sb.String()
	}
	return &Scenario{Name: name, Rows: rows}
}
