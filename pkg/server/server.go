package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/oddsmith/scoresim/internal/config"
	"github.com/oddsmith/scoresim/internal/logger"
	"github.com/oddsmith/scoresim/pkg/sim"
	"github.com/oddsmith/scoresim/pkg/store"
)

// Server exposes the simulator over HTTP.
type Server struct {
	cfg    *config.Config
	store  *store.Store
	router *mux.Router
}

// New builds a server. The store may be nil, in which case runs are not
// persisted and /runs reports an empty history.
func New(cfg *config.Config, st *store.Store) *Server {
	s := &Server{cfg: cfg, store: st, router: mux.NewRouter()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.HandleFunc("/simulate", s.handleSimulate).Methods(http.MethodPost)
	s.router.HandleFunc("/runs", s.handleRuns).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
}

// Router returns the HTTP handler, mainly for tests.
func (s *Server) Router() http.Handler { return s.router }

// Start blocks serving HTTP on the configured address.
func (s *Server) Start() error {
	logger.Info("Serving simulation API on", s.cfg.ListenAddr)
	return http.ListenAndServe(s.cfg.ListenAddr, s.router)
}

type simulateRequest struct {
	RateA float64 `json:"rateA"`
	RateB float64 `json:"rateB"`
	Count int     `json:"count"`
	Seed  *int64  `json:"seed,omitempty"`
}

type simulateResponse struct {
	Outcomes []sim.Outcome `json:"outcomes"`
	Summary  *sim.Summary  `json:"summary"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	if req.Count == 0 {
		req.Count = s.cfg.DefaultSimulations
	}

	var simulator *sim.Simulator
	if req.Seed != nil {
		simulator = sim.NewSeededSimulator(*req.Seed)
	} else {
		simulator = sim.NewSimulator()
	}

	outcomes, err := simulator.Run(req.RateA, req.RateB, req.Count)
	if err != nil {
		if errors.Is(err, sim.ErrOutOfRange) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		logger.Error("Simulation failed:", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	summary, err := sim.Summarize(outcomes)
	if err != nil {
		logger.Error("Aggregation failed:", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	if s.store != nil {
		var seed int64
		if req.Seed != nil {
			seed = *req.Seed
		}
		run := store.NewRun(req.RateA, req.RateB, req.Count, seed, req.Seed != nil, summary)
		if err := s.store.SaveRun(run); err != nil {
			logger.Warn("Could not persist run:", err)
		}
	}

	writeJSON(w, http.StatusOK, simulateResponse{Outcomes: outcomes, Summary: summary})
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusOK, []*store.Run{})
		return
	}

	runs, err := s.store.RecentRuns(s.cfg.HistoryLimit)
	if err != nil {
		logger.Error("Could not load run history:", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if runs == nil {
		runs = []*store.Run{}
	}

	writeJSON(w, http.StatusOK, runs)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response:", err)
	}
}
