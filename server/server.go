package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/metrics"
	"github.com/katalvlaran/gridsearch/observer"
	"github.com/katalvlaran/gridsearch/scenario"
	"github.com/katalvlaran/gridsearch/search"
)

// Request limits applied when no option overrides them.
const (
	DefaultMaxBodyBytes = 1 << 20
	DefaultMaxCells     = 40000
)

// ErrMapTooLarge reports a scenario whose map exceeds the cell cap.
var ErrMapTooLarge = errors.New("server: map too large")

// Server serves the HTTP API.
type Server struct {
	catalog   *scenario.Catalog
	collector *metrics.Collector
	gatherer  prometheus.Gatherer
	log       *slog.Logger
	maxEvents int
	maxBody   int64
	maxCells  int
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics records every run in c and serves g on /metrics.
func WithMetrics(c *metrics.Collector, g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.collector = c
		s.gatherer = g
	}
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMaxEvents caps the events returned per run (0 = no cap).
func WithMaxEvents(n int) Option {
	return func(s *Server) {
		if n >= 0 {
			s.maxEvents = n
		}
	}
}

// WithMaxBodyBytes caps the size of a POST /search body.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

// WithMaxCells caps rows×cols of the map a search may run on.
func WithMaxCells(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxCells = n
		}
	}
}

// New returns a Server over catalog.
func New(catalog *scenario.Catalog, opts ...Option) *Server {
	s := &Server{
		catalog:   catalog,
		log:       slog.New(slog.DiscardHandler),
		maxEvents: 10000,
		maxBody:   DefaultMaxBodyBytes,
		maxCells:  DefaultMaxCells,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewHandler builds the router for catalog.
func NewHandler(catalog *scenario.Catalog, opts ...Option) http.Handler {
	return New(catalog, opts...).Routes()
}

// Routes mounts every endpoint on a chi router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/algorithms", s.listAlgorithms)
	r.Get("/scenarios", s.listScenarios)
	r.Get("/scenarios/{name}", s.getScenario)
	r.Post("/search", s.runSearch)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

func (s *Server) listAlgorithms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, search.Algorithms())
}

func (s *Server) listScenarios(w http.ResponseWriter, r *http.Request) {
	names := s.catalog.Names()
	out := make([]ScenarioSummary, 0, len(names))
	for _, name := range names {
		sc, err := s.catalog.Get(name)
		if err != nil {
			continue
		}
		sum := ScenarioSummary{Name: sc.Name, Description: sc.Description}
		if g, err := sc.Build(); err == nil {
			sum.Rows, sum.Cols, sum.Reachable = g.Rows(), g.Cols(), g.Reachable()
		}
		out = append(out, sum)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getScenario(w http.ResponseWriter, r *http.Request) {
	sc, err := s.catalog.Get(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (s *Server) runSearch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Errorf("request body over %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	alg, err := search.ParseAlgorithm(req.Algorithm)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sc, status, err := s.resolve(req)
	if err != nil {
		writeError(w, status, err)
		return
	}
	if n := mapCells(sc); n > s.maxCells {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Errorf("%w: %d cells, limit %d", ErrMapTooLarge, n, s.maxCells))
		return
	}
	g, err := sc.Build()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	runID := uuid.NewString()
	log := s.log.With("run_id", runID, "scenario", sc.Name)

	var rec *observer.Recorder
	var watchers []search.Observer
	if req.Events {
		rec = observer.NewRecorder(s.maxEvents)
		watchers = append(watchers, rec)
	}
	if s.collector != nil {
		watchers = append(watchers, s.collector.Observer(alg))
	}

	opts := append(sc.SearchOptions(),
		search.WithContext(r.Context()),
		search.WithLogger(log),
		search.WithObserver(observer.Join(watchers...)),
	)
	if req.DepthLimit != nil {
		opts = append(opts, search.WithDepthLimit(*req.DepthLimit))
	}
	if req.IterationCeiling != nil {
		opts = append(opts, search.WithMaxIterativeDepth(*req.IterationCeiling))
	}

	res, err := search.Run(alg, g, opts...)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if s.collector != nil {
		s.collector.Observe(res)
	}
	log.Info("search served", "algorithm", alg, "status", res.Status, "edges", res.Edges())

	resp := SearchResponse{
		RunID:      runID,
		Scenario:   sc.Name,
		Algorithm:  res.Algorithm,
		Status:     res.Status,
		Path:       res.Path,
		Cost:       res.Cost,
		Edges:      res.Edges(),
		Expanded:   res.Expanded,
		Discovered: res.Discovered,
		Iterations: res.Iterations,
		DepthLimit: res.DepthLimit,
		ElapsedMS:  float64(res.Elapsed.Microseconds()) / 1000,
	}
	if resp.Path == nil {
		resp.Path = []grid.Coordinate{}
	}
	if rec != nil {
		resp.Events = rec.Events()
		resp.EventsDropped = rec.Dropped()
	}
	writeJSON(w, http.StatusOK, resp)
}

// resolve picks the named or inline scenario and the status for failures.
func (s *Server) resolve(req SearchRequest) (*scenario.Scenario, int, error) {
	switch {
	case req.Scenario != "" && req.Inline != nil:
		return nil, http.StatusBadRequest, errors.New("set either scenario or inline, not both")
	case req.Inline != nil:
		if req.Inline.Name == "" {
			req.Inline.Name = "inline"
		}
		return req.Inline, 0, nil
	case req.Scenario != "":
		sc, err := s.catalog.Get(req.Scenario)
		if err != nil {
			return nil, http.StatusNotFound, err
		}
		return sc, 0, nil
	default:
		return nil, http.StatusBadRequest, errors.New("scenario or inline is required")
	}
}

// mapCells counts rows×widest row, so ragged maps are bounded before Build.
func mapCells(sc *scenario.Scenario) int {
	width := 0
	for _, row := range sc.Map {
		width = max(width, len(row))
	}

	return len(sc.Map) * width
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorBody{Error: err.Error()})
}
