package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/explorer"
	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/internal/metrics"
)

func TestCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.New(reg)

	reached := &explorer.Report{Reached: true, Visited: make([]gridgraph.Coord, 9)}
	unreached := &explorer.Report{Visited: make([]gridgraph.Coord, 1)}
	c.ObserveSearch(reached, time.Millisecond)
	c.ObserveSearch(reached, time.Millisecond)
	c.ObserveSearch(unreached, time.Millisecond)
	c.ObserveRejected()
	c.ObserveCache(true)
	c.ObserveCache(false)
	c.ObserveCache(false)

	require.Equal(t, 2.0, testutil.ToFloat64(c.Searches.WithLabelValues(metrics.OutcomeReached)))
	require.Equal(t, 1.0, testutil.ToFloat64(c.Searches.WithLabelValues(metrics.OutcomeUnreached)))
	require.Equal(t, 1.0, testutil.ToFloat64(c.Searches.WithLabelValues(metrics.OutcomeRejected)))
	require.Equal(t, 1.0, testutil.ToFloat64(c.CacheRequests.WithLabelValues("hit")))
	require.Equal(t, 2.0, testutil.ToFloat64(c.CacheRequests.WithLabelValues("miss")))

	n, err := testutil.GatherAndCount(reg, "pathgrid_visited_cells", "pathgrid_search_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)
	require.Panics(t, func() { metrics.New(reg) })
}
