// Package metrics defines the Prometheus collectors for searches and the
// report cache.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/pathgrid/explorer"
)

// Outcome labels for searches.
const (
	OutcomeReached   = "reached"
	OutcomeUnreached = "unreached"
	OutcomeRejected  = "rejected"
)

// Collectors groups the explorer's Prometheus instruments.
type Collectors struct {
	Searches      *prometheus.CounterVec
	Duration      *prometheus.HistogramVec
	VisitedCells  prometheus.Histogram
	CacheRequests *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		Searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathgrid_searches_total",
				Help: "Total number of searches by outcome",
			},
			[]string{"outcome"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pathgrid_search_duration_seconds",
				Help:    "Duration of searches, excluding cache hits",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"outcome"},
		),
		VisitedCells: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pathgrid_visited_cells",
				Help:    "Number of cells explored per search",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
		CacheRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathgrid_cache_requests_total",
				Help: "Report cache lookups by result",
			},
			[]string{"result"},
		),
	}
	reg.MustRegister(c.Searches, c.Duration, c.VisitedCells, c.CacheRequests)
	return c
}

// ObserveSearch records one computed report.
func (c *Collectors) ObserveSearch(rep *explorer.Report, elapsed time.Duration) {
	outcome := OutcomeUnreached
	if rep.Reached {
		outcome = OutcomeReached
	}
	c.Searches.WithLabelValues(outcome).Inc()
	c.Duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
	c.VisitedCells.Observe(float64(len(rep.Visited)))
}

// ObserveRejected records a request that never reached the engine.
func (c *Collectors) ObserveRejected() {
	c.Searches.WithLabelValues(OutcomeRejected).Inc()
}

// ObserveCache records a cache hit or miss.
func (c *Collectors) ObserveCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.CacheRequests.WithLabelValues(result).Inc()
}
