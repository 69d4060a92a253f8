package server

import (
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/observer"
	"github.com/katalvlaran/gridsearch/scenario"
	"github.com/katalvlaran/gridsearch/search"
)

// SearchRequest is the POST /search body. Exactly one of Scenario and
// Inline must be set. DepthLimit and IterationCeiling override the
// scenario's values.
type SearchRequest struct {
	Algorithm        string             `json:"algorithm"`
	Scenario         string             `json:"scenario,omitempty"`
	Inline           *scenario.Scenario `json:"inline,omitempty"`
	DepthLimit       *int               `json:"depth_limit,omitempty"`
	IterationCeiling *int               `json:"iteration_ceiling,omitempty"`
	Events           bool               `json:"events,omitempty"`
}

// SearchResponse reports one run.
type SearchResponse struct {
	RunID         string            `json:"run_id"`
	Scenario      string            `json:"scenario"`
	Algorithm     search.Algorithm  `json:"algorithm"`
	Status        search.Status     `json:"status"`
	Path          []grid.Coordinate `json:"path"`
	Cost          float64           `json:"cost"`
	Edges         int               `json:"edges"`
	Expanded      int               `json:"expanded"`
	Discovered    int               `json:"discovered"`
	Iterations    int               `json:"iterations"`
	DepthLimit    int               `json:"depth_limit,omitempty"`
	ElapsedMS     float64           `json:"elapsed_ms"`
	Events        []observer.Event  `json:"events,omitempty"`
	EventsDropped int               `json:"events_dropped,omitempty"`
}

// ScenarioSummary is one GET /scenarios entry.
type ScenarioSummary struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Rows        int    `json:"rows"`
	Cols        int    `json:"cols"`
	Reachable   bool   `json:"reachable"`
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}
