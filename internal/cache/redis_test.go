package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/explorer"
	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/internal/cache"
)

func newRedis(t *testing.T, opts ...cache.Option) (*cache.Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	c := cache.NewFromClient(client, opts...)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func sampleReport(t *testing.T) *explorer.Report {
	t.Helper()
	g, err := gridgraph.New(2, 3)
	require.NoError(t, err)
	rep, err := explorer.Explore(g, gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 1, Col: 2})
	require.NoError(t, err)
	return rep
}

func TestRedis_PutGet(t *testing.T) {
	c, mr := newRedis(t)
	ctx := context.Background()
	require.NoError(t, c.Ping(ctx))

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	rep := sampleReport(t)
	require.NoError(t, c.Put(ctx, "k1", rep))
	require.True(t, mr.Exists("pathgrid:report:k1"))

	got, ok, err := c.Get(ctx, "k1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, rep, got)
}

func TestRedis_TTLAndPrefix(t *testing.T) {
	c, mr := newRedis(t, cache.WithTTL(time.Minute), cache.WithPrefix("test:"))
	ctx := context.Background()
	require.NoError(t, c.Put(ctx, "k", sampleReport(t)))
	require.True(t, mr.Exists("test:k"))
	require.Equal(t, time.Minute, mr.TTL("test:k"))

	mr.FastForward(2 * time.Minute)
	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedis_CorruptValue(t *testing.T) {
	c, mr := newRedis(t)
	require.NoError(t, mr.Set("pathgrid:report:bad", "{not json"))
	_, _, err := c.Get(context.Background(), "bad")
	require.Error(t, err)
}

func TestRedis_ServerDown(t *testing.T) {
	c, mr := newRedis(t)
	mr.Close()
	ctx := context.Background()
	_, _, err := c.Get(ctx, "k")
	require.Error(t, err)
	require.Error(t, c.Put(ctx, "k", sampleReport(t)))
}

func TestNop(t *testing.T) {
	var c cache.Cache = cache.Nop{}
	ctx := context.Background()
	require.NoError(t, c.Put(ctx, "k", &explorer.Report{}))
	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestKey(t *testing.T) {
	g, err := gridgraph.New(3, 3)
	require.NoError(t, err)
	start, end := gridgraph.Coord{Row: 0, Col: 0}, gridgraph.Coord{Row: 2, Col: 2}

	base := cache.Key(g, start, end)
	require.Len(t, base, 64)
	require.Equal(t, base, cache.Key(g.Clone(), start, end))

	require.NotEqual(t, base, cache.Key(g, end, start))

	walled := g.Clone()
	require.NoError(t, walled.ToggleWall(gridgraph.Coord{Row: 1, Col: 1}))
	require.NotEqual(t, base, cache.Key(walled, start, end))

	wide, err := gridgraph.New(1, 9)
	require.NoError(t, err)
	require.NotEqual(t, cache.Key(g, start, start), cache.Key(wide, start, start))
}
