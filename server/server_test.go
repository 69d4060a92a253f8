package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/metrics"
	"github.com/katalvlaran/gridsearch/observer"
	"github.com/katalvlaran/gridsearch/scenario"
	"github.com/katalvlaran/gridsearch/server"
)

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	return rr
}

func TestHealthAndAlgorithms(t *testing.T) {
	h := server.NewHandler(scenario.Builtin())

	rr := do(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())

	rr = do(t, h, http.MethodGet, "/algorithms", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `["BFS","DFS","UCS","DLS","IDDFS","Bidirectional"]`, rr.Body.String())
}

func TestScenarios(t *testing.T) {
	h := server.NewHandler(scenario.Builtin())

	rr := do(t, h, http.MethodGet, "/scenarios", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list []server.ScenarioSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list, 5)
	assert.Equal(t, "demo", list[0].Name)
	assert.Equal(t, 10, list[0].Rows)
	assert.True(t, list[0].Reachable)
	assert.Equal(t, "enclosed", list[1].Name)
	assert.False(t, list[1].Reachable)

	rr = do(t, h, http.MethodGet, "/scenarios/wall", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var sc scenario.Scenario
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sc))
	assert.Equal(t, "wall", sc.Name)

	rr = do(t, h, http.MethodGet, "/scenarios/nope", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSearch_Named(t *testing.T) {
	h := server.NewHandler(scenario.Builtin())

	rr := do(t, h, http.MethodPost, "/search", server.SearchRequest{Algorithm: "ucs", Scenario: "wall"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp server.SearchResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	_, err := uuid.Parse(resp.RunID)
	assert.NoError(t, err)
	assert.Equal(t, "found", resp.Status.String())
	assert.Equal(t, 12, resp.Edges)
	assert.InDelta(t, 12.0, resp.Cost, 1e-9)
	assert.Equal(t, grid.At(8, 1), resp.Path[0])
	assert.Equal(t, grid.At(2, 7), resp.Path[len(resp.Path)-1])
	assert.Empty(t, resp.Events)
}

func TestSearch_InlineWithEvents(t *testing.T) {
	h := server.NewHandler(scenario.Builtin(), server.WithMaxEvents(3))

	body := server.SearchRequest{
		Algorithm: "BFS",
		Inline:    &scenario.Scenario{Map: []string{"S.G"}},
		Events:    true,
	}
	rr := do(t, h, http.MethodPost, "/search", body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp server.SearchResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "inline", resp.Scenario)
	require.Len(t, resp.Events, 3)
	assert.Equal(t, observer.Event{Kind: observer.KindExpand, Cell: grid.At(0, 0)}, resp.Events[0])
	assert.Equal(t, 4, resp.EventsDropped)
}

func TestSearch_NoPathAndDepthOverride(t *testing.T) {
	h := server.NewHandler(scenario.Builtin())
	two := 2

	rr := do(t, h, http.MethodPost, "/search", server.SearchRequest{Algorithm: "DLS", Scenario: "wall", DepthLimit: &two})
	require.Equal(t, http.StatusOK, rr.Code)
	var resp server.SearchResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "no-path", resp.Status.String())
	assert.Equal(t, -1, resp.Edges)
	assert.Equal(t, 2, resp.DepthLimit)
	assert.JSONEq(t, `[]`, string(mustField(t, rr.Body.Bytes(), "path")))
}

func mustField(t *testing.T, body []byte, key string) json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &m))

	return m[key]
}

func TestSearch_Errors(t *testing.T) {
	h := server.NewHandler(scenario.Builtin())
	neg := -1

	cases := []struct {
		name string
		body any
		code int
	}{
		{"bad json", "not an object", http.StatusBadRequest},
		{"unknown algorithm", server.SearchRequest{Algorithm: "A*", Scenario: "demo"}, http.StatusBadRequest},
		{"no scenario", server.SearchRequest{Algorithm: "BFS"}, http.StatusBadRequest},
		{"both", server.SearchRequest{Algorithm: "BFS", Scenario: "demo", Inline: &scenario.Scenario{Map: []string{"SG"}}}, http.StatusBadRequest},
		{"unknown scenario", server.SearchRequest{Algorithm: "BFS", Scenario: "nope"}, http.StatusNotFound},
		{"bad map", server.SearchRequest{Algorithm: "BFS", Inline: &scenario.Scenario{Map: []string{"S?G"}}}, http.StatusUnprocessableEntity},
		{"bad option", server.SearchRequest{Algorithm: "DLS", Scenario: "demo", DepthLimit: &neg}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := do(t, h, http.MethodPost, "/search", tc.body)
			assert.Equal(t, tc.code, rr.Code, rr.Body.String())
			assert.NotEmpty(t, mustField(t, rr.Body.Bytes(), "error"))
		})
	}
}

func TestSearch_Limits(t *testing.T) {
	h := server.NewHandler(scenario.Builtin(), server.WithMaxCells(4))

	rr := do(t, h, http.MethodPost, "/search", server.SearchRequest{
		Algorithm: "IDDFS",
		Inline:    &scenario.Scenario{Map: []string{"S...G"}},
	})
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code, rr.Body.String())
	assert.Contains(t, string(mustField(t, rr.Body.Bytes(), "error")), "map too large")

	rr = do(t, h, http.MethodPost, "/search", server.SearchRequest{
		Algorithm: "BFS",
		Inline:    &scenario.Scenario{Map: []string{"S.", "G."}},
	})
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	h = server.NewHandler(scenario.Builtin(), server.WithMaxBodyBytes(64))
	rr = do(t, h, http.MethodPost, "/search", server.SearchRequest{
		Algorithm: "BFS",
		Inline:    &scenario.Scenario{Map: []string{"S" + strings.Repeat(".", 200) + "G"}},
	})
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code, rr.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	col, err := metrics.NewCollector(reg)
	require.NoError(t, err)
	h := server.NewHandler(scenario.Builtin(), server.WithMetrics(col, reg))

	rr := do(t, h, http.MethodPost, "/search", server.SearchRequest{Algorithm: "Bi-Dir", Scenario: "demo"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.True(t, strings.Contains(body, `gridsearch_runs_total{algorithm="Bidirectional",status="found"} 1`), body)
	assert.Contains(t, body, `gridsearch_expanded_cells_total{algorithm="Bidirectional"}`)

	rr = do(t, server.NewHandler(scenario.Builtin()), http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
