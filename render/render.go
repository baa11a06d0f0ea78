// Package render draws boards and exploration reports on a terminal.
//
// Colours come from a termenv profile and are dropped when the writer is not
// a terminal, when NO_COLOR is set, or when WithNoColor is given. Animate
// replays Report.Frames at a fixed cadence; the explorer itself never waits.
package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/katalvlaran/pathgrid/explorer"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// Glyphs for each cell state.
const (
	GlyphOpen    = "."
	GlyphWall    = "#"
	GlyphStart   = "S"
	GlyphEnd     = "E"
	GlyphVisited = "o"
	GlyphPath    = "*"
)

// palette follows the same indigo→rose range as the CLI banner.
var palette = map[string]string{
	GlyphWall:    "#4b5563",
	GlyphStart:   "#34d399",
	GlyphEnd:     "#fb7185",
	GlyphVisited: "#818cf8",
	GlyphPath:    "#f472b6",
}

// Renderer writes boards to one output.
type Renderer struct {
	out     *termenv.Output
	tty     bool
	noColor bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithNoColor disables colour even on a terminal.
func WithNoColor() Option {
	return func(r *Renderer) { r.noColor = true }
}

// New returns a Renderer writing to w.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{}
	if f, ok := w.(*os.File); ok {
		r.tty = term.IsTerminal(int(f.Fd()))
	}
	for _, opt := range opts {
		opt(r)
	}
	profile := termenv.Ascii
	if r.tty && !r.noColor {
		profile = termenv.NewOutput(w).EnvColorProfile()
	}
	r.out = termenv.NewOutput(w, termenv.WithProfile(profile))
	return r
}

// overlay is what has been revealed so far.
type overlay struct {
	visited map[gridgraph.Coord]bool
	path    map[gridgraph.Coord]bool
}

func newOverlay() *overlay {
	return &overlay{visited: map[gridgraph.Coord]bool{}, path: map[gridgraph.Coord]bool{}}
}

func (o *overlay) apply(f explorer.Frame) {
	switch f.Kind {
	case explorer.FrameVisit:
		o.visited[f.Cell] = true
	case explorer.FramePath:
		o.path[f.Cell] = true
	}
}

// Board draws b with rep fully revealed. rep may be nil.
func (r *Renderer) Board(b *explorer.Board, rep *explorer.Report) error {
	ov := newOverlay()
	if rep != nil {
		for _, f := range rep.Frames() {
			ov.apply(f)
		}
	}
	if _, err := io.WriteString(r.out, r.frame(b, ov)); err != nil {
		return err
	}
	if rep != nil {
		return r.Summary(rep)
	}
	return nil
}

// Summary prints one line describing rep.
func (r *Renderer) Summary(rep *explorer.Report) error {
	var line string
	if rep.Reached {
		line = fmt.Sprintf("path found: %d steps, %d cells visited\n", rep.Steps(), len(rep.Visited))
	} else {
		line = fmt.Sprintf("no path from %s to %s: %d cells visited\n", rep.Start, rep.End, len(rep.Visited))
	}
	_, err := io.WriteString(r.out, line)
	return err
}

// Animate reveals rep one frame per delay, redrawing in place. On a
// non-terminal writer only the final board is written. Returns ctx.Err()
// if cancelled mid-replay.
func (r *Renderer) Animate(ctx context.Context, b *explorer.Board, rep *explorer.Report, delay time.Duration) error {
	if !r.tty || delay <= 0 {
		return r.Board(b, rep)
	}
	height := b.Grid().Height()
	ov := newOverlay()
	if _, err := io.WriteString(r.out, r.frame(b, ov)); err != nil {
		return err
	}

	ticker := time.NewTicker(delay)
	defer ticker.Stop()
	for _, f := range rep.Frames() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		ov.apply(f)
		r.out.CursorPrevLine(height)
		if _, err := io.WriteString(r.out, r.frame(b, ov)); err != nil {
			return err
		}
	}
	return r.Summary(rep)
}

// frame renders the grid rows with the overlay applied.
func (r *Renderer) frame(b *explorer.Board, ov *overlay) string {
	g := b.Grid()
	start, hasStart := b.Start()
	end, hasEnd := b.End()
	var sb strings.Builder
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			at := gridgraph.Coord{Row: row, Col: col}
			var glyph string
			switch {
			case hasStart && at == start:
				glyph = GlyphStart
			case hasEnd && at == end:
				glyph = GlyphEnd
			case g.IsWall(at):
				glyph = GlyphWall
			case ov.path[at]:
				glyph = GlyphPath
			case ov.visited[at]:
				glyph = GlyphVisited
			default:
				glyph = GlyphOpen
			}
			sb.WriteString(r.paint(glyph))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *Renderer) paint(glyph string) string {
	hex, ok := palette[glyph]
	if !ok || r.out.Profile == termenv.Ascii {
		return glyph
	}
	return r.out.String(glyph).Foreground(r.out.Color(hex)).String()
}
