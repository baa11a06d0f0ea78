// Package cache keeps computed search reports so repeated layouts skip the
// engine.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/katalvlaran/pathgrid/explorer"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// Cache stores computed reports keyed by layout digest. Only results are
// kept; grid state is never persisted.
type Cache interface {
	Get(ctx context.Context, key string) (*explorer.Report, bool, error)
	Put(ctx context.Context, key string, rep *explorer.Report) error
}

// Key digests the inputs that fully determine a report: dimensions, wall
// layout, start and end.
func Key(g *gridgraph.Grid, start, end gridgraph.Coord) string {
	h := sha256.New()
	var buf [8]byte
	for _, v := range []int{g.Height(), g.Width(), start.Row, start.Col, end.Row, end.Col} {
		binary.BigEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	// one bit per cell, row-major
	bits := make([]byte, (g.Size()+7)/8)
	for _, w := range g.Walls() {
		i := g.Index(w)
		bits[i/8] |= 1 << (i % 8)
	}
	h.Write(bits)
	return hex.EncodeToString(h.Sum(nil))
}

// Nop never stores anything.
type Nop struct{}

// Get always misses.
func (Nop) Get(context.Context, string) (*explorer.Report, bool, error) { return nil, false, nil }

// Put discards rep.
func (Nop) Put(context.Context, string, *explorer.Report) error { return nil }
