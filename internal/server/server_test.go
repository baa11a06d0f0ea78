package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/internal/cache"
	"github.com/katalvlaran/pathgrid/internal/logging"
	"github.com/katalvlaran/pathgrid/internal/server"
)

func newServer(t *testing.T, opts ...server.Option) (http.Handler, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	opts = append([]server.Option{server.WithLogger(logging.NewNop())}, opts...)
	return server.New(reg, opts...).Handler(), reg
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) server.SearchResponse {
	t.Helper()
	var resp server.SearchResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

const detour = `{"rows": ["S.#.", "..#.", "...E"]}`

func TestHealth(t *testing.T) {
	h, _ := newServer(t)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestSearch_Reached(t *testing.T) {
	h, _ := newServer(t)
	rr := post(t, h, detour)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	resp := decode(t, rr)
	_, err := uuid.Parse(resp.RunID)
	require.NoError(t, err)
	assert.Equal(t, resp.RunID, rr.Header().Get(server.RunIDHeader))

	require.NotNil(t, resp.Report)
	assert.True(t, resp.Reached)
	assert.Equal(t, 5, resp.Steps)
	assert.Len(t, resp.Visited, 8)
	assert.Equal(t, gridgraph.Coord{Row: 0, Col: 0}, resp.Path[0])
	assert.Equal(t, gridgraph.Coord{Row: 2, Col: 3}, resp.Path[len(resp.Path)-1])
	assert.False(t, resp.Cached)
	assert.Nil(t, resp.Breach)
	require.NoError(t, resp.Check())
}

func TestSearch_ExplicitForm(t *testing.T) {
	h, _ := newServer(t)
	rr := post(t, h, `{"height": 1, "width": 3, "walls": [[0,1]], "start": [0,0], "end": [0,2], "breach": true}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	resp := decode(t, rr)
	assert.False(t, resp.Reached)
	assert.Equal(t, -1, resp.Steps)
	assert.Equal(t, []gridgraph.Coord{{Row: 0, Col: 0}}, resp.Visited)
	assert.Empty(t, resp.Path)
	require.NotNil(t, resp.Breach)
	assert.Equal(t, 1, resp.Breach.Walls)
	assert.Equal(t, []gridgraph.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, resp.Breach.Route)
}

func TestSearch_BreachOnlyWhenUnreached(t *testing.T) {
	h, _ := newServer(t)
	resp := decode(t, post(t, h, `{"rows": ["S.E"], "breach": true}`))
	assert.True(t, resp.Reached)
	assert.Nil(t, resp.Breach)
}

func TestSearch_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"malformed json", `{"rows": [`, http.StatusBadRequest},
		{"unknown field", `{"rows": ["SE"], "diagonal": true}`, http.StatusBadRequest},
		{"unknown glyph", `{"rows": ["S?E"]}`, http.StatusBadRequest},
		{"missing marker", `{"rows": ["S.."]}`, http.StatusBadRequest},
		{"ragged rows", `{"rows": ["S..", "E"]}`, http.StatusBadRequest},
		{"mixed forms", `{"rows": ["SE"], "height": 1}`, http.StatusBadRequest},
		{"bad dimensions", `{"height": 0, "width": 3, "start": [0,0], "end": [0,1]}`, http.StatusBadRequest},
		{"start out of bounds", `{"height": 2, "width": 2, "start": [5,5], "end": [0,1]}`, http.StatusUnprocessableEntity},
		{"start on wall", `{"height": 2, "width": 2, "walls": [[0,0]], "start": [0,0], "end": [1,1]}`, http.StatusUnprocessableEntity},
		{"markers coincide", `{"height": 2, "width": 2, "start": [1,1], "end": [1,1]}`, http.StatusUnprocessableEntity},
		{"too large", `{"height": 100, "width": 100, "start": [0,0], "end": [1,1]}`, http.StatusUnprocessableEntity},
		{"area overflows int", `{"height": 4294967296, "width": 4294967296, "start": [0,0], "end": [5,5]}`, http.StatusUnprocessableEntity},
	}
	h, reg := newServer(t, server.WithMaxCells(1000))
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := post(t, h, tc.body)
			assert.Equal(t, tc.status, rr.Code, rr.Body.String())
			assert.NotEmpty(t, rr.Header().Get(server.RunIDHeader))

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
			assert.Equal(t, rr.Header().Get(server.RunIDHeader), resp["run_id"])
		})
	}

	n, err := testutil.GatherAndCount(reg, "pathgrid_searches_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSearch_CachedWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	rc := cache.NewFromClient(backend.NewClient(&backend.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = rc.Close() })

	h, reg := newServer(t, server.WithCache(rc))

	first := decode(t, post(t, h, detour))
	second := decode(t, post(t, h, detour))

	assert.False(t, first.Cached)
	assert.True(t, second.Cached)
	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, first.Report, second.Report)
	assert.Len(t, mr.Keys(), 1)

	// only the first request reaches the engine
	var buf bytes.Buffer
	buf.WriteString(`
# HELP pathgrid_cache_requests_total Report cache lookups by result
# TYPE pathgrid_cache_requests_total counter
pathgrid_cache_requests_total{result="hit"} 1
pathgrid_cache_requests_total{result="miss"} 1
# HELP pathgrid_searches_total Total number of searches by outcome
# TYPE pathgrid_searches_total counter
pathgrid_searches_total{outcome="reached"} 1
`)
	require.NoError(t, testutil.GatherAndCompare(reg, &buf, "pathgrid_cache_requests_total", "pathgrid_searches_total"))
}

func TestSearch_CacheOutageDegrades(t *testing.T) {
	mr := miniredis.RunT(t)
	rc := cache.NewFromClient(backend.NewClient(&backend.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = rc.Close() })
	mr.Close()

	h, _ := newServer(t, server.WithCache(rc))
	rr := post(t, h, detour)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decode(t, rr).Reached)
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newServer(t)
	post(t, h, detour)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `pathgrid_searches_total{outcome="reached"} 1`)
	assert.Contains(t, rr.Body.String(), "pathgrid_visited_cells_count 1")
}
