// Package server exposes searches over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/pathgrid/explorer"
	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/internal/cache"
	"github.com/katalvlaran/pathgrid/internal/config"
	"github.com/katalvlaran/pathgrid/internal/metrics"
	"github.com/katalvlaran/pathgrid/layout"
)

// RunIDHeader carries the identifier assigned to each search request.
const RunIDHeader = "X-Run-ID"

// ErrTooLarge is returned for grids above the configured cell limit.
var ErrTooLarge = errors.New("server: grid exceeds cell limit")

// Server answers search requests over HTTP.
type Server struct {
	cache    cache.Cache
	logger   *slog.Logger
	metrics  *metrics.Collectors
	gatherer prometheus.Gatherer
	maxCells int
}

// Option configures a Server.
type Option func(*Server)

// WithCache sets the report cache. The default never caches.
func WithCache(c cache.Cache) Option {
	return func(s *Server) {
		s.cache = c
	}
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// WithMaxCells caps height×width of accepted grids.
func WithMaxCells(n int) Option {
	return func(s *Server) {
		s.maxCells = n
	}
}

// New creates a Server whose collectors are registered on reg and exposed
// under /metrics.
func New(reg *prometheus.Registry, opts ...Option) *Server {
	s := &Server{
		cache:    cache.Nop{},
		logger:   slog.Default(),
		metrics:  metrics.New(reg),
		gatherer: reg,
		maxCells: config.DefaultMaxCells,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	r.Post("/v1/search", s.search)
	return r
}

// SearchRequest is a layout scenario plus search flags.
type SearchRequest struct {
	layout.Scenario
	// Breach asks for the cheapest wall-breaking route when End is unreachable.
	Breach bool `json:"breach,omitempty"`
}

// SearchResponse wraps a report with request metadata.
type SearchResponse struct {
	RunID string `json:"run_id"`
	*explorer.Report
	Steps  int         `json:"steps"`
	Cached bool        `json:"cached"`
	Breach *BreachInfo `json:"breach,omitempty"`
}

// BreachInfo describes the fewest walls separating start and end.
type BreachInfo struct {
	Walls int               `json:"walls"`
	Route []gridgraph.Coord `json:"route"`
}

type errorResponse struct {
	RunID string `json:"run_id"`
	Error string `json:"error"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	runID := uuid.NewString()
	w.Header().Set(RunIDHeader, runID)
	log := s.logger.With("run_id", runID)

	var req SearchRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.reject(w, log, runID, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	if n := req.Cells(); n > s.maxCells {
		s.reject(w, log, runID, http.StatusUnprocessableEntity, fmt.Errorf("%w: %d > %d", ErrTooLarge, n, s.maxCells))
		return
	}
	board, err := req.Board()
	if err != nil {
		s.reject(w, log, runID, statusFor(err), err)
		return
	}

	start, _ := board.Start()
	end, _ := board.End()
	key := cache.Key(board.Grid(), start, end)

	rep, cached, err := s.cache.Get(r.Context(), key)
	if err != nil {
		log.Warn("cache lookup failed", "error", err)
	}
	s.metrics.ObserveCache(cached)
	if !cached {
		began := time.Now()
		rep, err = board.Explore()
		if err != nil {
			s.reject(w, log, runID, statusFor(err), err)
			return
		}
		s.metrics.ObserveSearch(rep, time.Since(began))
		if err := s.cache.Put(r.Context(), key, rep); err != nil {
			log.Warn("cache store failed", "error", err)
		}
	}

	resp := SearchResponse{RunID: runID, Report: rep, Steps: rep.Steps(), Cached: cached}
	if req.Breach && !rep.Reached {
		route, walls, err := board.Grid().Breach(start, end)
		if err != nil {
			s.reject(w, log, runID, statusFor(err), err)
			return
		}
		resp.Breach = &BreachInfo{Walls: walls, Route: route}
	}

	log.Info("search",
		"height", board.Grid().Height(),
		"width", board.Grid().Width(),
		"reached", rep.Reached,
		"visited", len(rep.Visited),
		"cached", cached,
	)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) reject(w http.ResponseWriter, log *slog.Logger, runID string, status int, err error) {
	s.metrics.ObserveRejected()
	log.Info("search rejected", "status", status, "error", err)
	writeJSON(w, status, errorResponse{RunID: runID, Error: err.Error()})
}

// statusFor maps layout and placement errors to HTTP status codes. Malformed
// input is 400; well-formed input that cannot be placed on the grid is 422.
func statusFor(err error) int {
	switch {
	case errors.Is(err, gridgraph.ErrOutOfBounds),
		errors.Is(err, explorer.ErrMarkerConflict),
		errors.Is(err, ErrTooLarge):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
