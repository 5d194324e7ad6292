package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/tourlab/tourlab/cities"
	"github.com/tourlab/tourlab/compare"
	"github.com/tourlab/tourlab/scores"
	"github.com/tourlab/tourlab/solve"
)

// defaultScoreLimit bounds GET /scores when no limit parameter is given.
const defaultScoreLimit = 10

// Server wires the engine and score store into HTTP handlers.
type Server struct {
	engine *compare.Engine
	store  *scores.Store // optional; score routes 404 without it
	log    *zap.Logger
}

// New builds a Server. store may be nil when persistence is not wired;
// a nil logger degrades to a no-op.
func New(engine *compare.Engine, store *scores.Store, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	return &Server{engine: engine, store: store, log: log}
}

// Router returns the configured route set.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/compare", s.handleCompare).Methods(http.MethodPost)
	r.HandleFunc("/scores", s.handleScores).Methods(http.MethodGet)
	r.HandleFunc("/scores/stats", s.handleStats).Methods(http.MethodGet)

	return r
}

// compareRequest is the POST /compare payload.
type compareRequest struct {
	// Cities are (x, y) pairs; identifiers are assigned by position.
	Cities [][2]float64 `json:"cities"`

	// Algorithms selects solvers by tag; empty means all.
	Algorithms []string `json:"algorithms"`

	// Player, when non-empty, records the best tour as a high score.
	Player string `json:"player"`
}

// entryResponse mirrors compare.Entry for the wire.
type entryResponse struct {
	Algorithm  string   `json:"algorithm"`
	Tour       []int    `json:"tour,omitempty"`
	Length     float64  `json:"length"`
	ElapsedMS  float64  `json:"elapsed_ms"`
	Operations int64    `json:"operations"`
	Gap        *float64 `json:"gap,omitempty"`
	Speedup    float64  `json:"speedup"`
	Error      string   `json:"error,omitempty"`
}

type compareResponse struct {
	Entries []entryResponse `json:"entries"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, err)

		return
	}

	algos := make([]solve.Algorithm, 0, len(req.Algorithms))
	for _, tag := range req.Algorithms {
		a, err := solve.ParseAlgorithm(tag)
		if err != nil {
			httpError(w, http.StatusBadRequest, err)

			return
		}
		algos = append(algos, a)
	}

	set, err := cities.FromCoordinates(req.Cities)
	if err != nil {
		httpError(w, http.StatusBadRequest, err)

		return
	}

	batch, err := s.engine.Run(r.Context(), set, algos...)
	if err != nil {
		status := http.StatusInternalServerError
		if cities.IsInvalidInput(err) {
			status = http.StatusBadRequest
		}
		httpError(w, status, err)

		return
	}

	if req.Player != "" && s.store != nil {
		// An empty instance has no tour to record.
		if best, ok := batch.Best(); ok && len(best.Tour) > 0 {
			if serr := s.store.Save(req.Player, best.Tour[0], best.Result); serr != nil {
				s.log.Warn("score save failed", zap.Error(serr))
			}
		}
	}

	resp := compareResponse{Entries: make([]entryResponse, len(batch.Entries))}
	for i, e := range batch.Entries {
		out := entryResponse{
			Algorithm:  e.Algorithm.String(),
			Tour:       e.Tour,
			Length:     e.Length,
			ElapsedMS:  float64(e.Elapsed.Microseconds()) / 1e3,
			Operations: e.Operations,
			Speedup:    e.Speedup,
		}
		if e.HasGap {
			gap := e.Gap
			out.Gap = &gap
		}
		if e.Err != nil {
			out.Error = e.Err.Error()
		}
		resp.Entries[i] = out
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.NotFound(w, r)

		return
	}

	limit := defaultScoreLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			httpError(w, http.StatusBadRequest, errors.New("server: limit must be a positive integer"))

			return
		}
		limit = parsed
	}

	rows, err := s.store.TopScores(limit)
	if err != nil {
		httpError(w, http.StatusInternalServerError, err)

		return
	}

	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.NotFound(w, r)

		return
	}

	stats, err := s.store.AlgorithmStats()
	if err != nil {
		httpError(w, http.StatusInternalServerError, err)

		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
