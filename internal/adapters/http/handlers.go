package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gridsolve/sudoku/internal/domain"
	"github.com/gridsolve/sudoku/internal/generator"
	"github.com/gridsolve/sudoku/internal/solver"
	"github.com/gridsolve/sudoku/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/solve/stream", h.handleSolveStream)
	mux.HandleFunc("/api/analyze", h.handleAnalyze)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Board      domain.Board `json:"board,omitempty"`
	Seed       int64        `json:"seed,omitempty"`
	Difficulty string       `json:"difficulty,omitempty"`
	DurationMs int64        `json:"durationMs,omitempty"`
	Attempts   int          `json:"attempts,omitempty"`
	Backtracks int          `json:"backtracks,omitempty"`
	Error      string       `json:"error,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if !decodeBody(w, r, &req) {
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := domain.ParseDifficulty(req.Difficulty)
	p, st, err := h.UC.Generate(r.Context(), seed, diff)
	if err != nil {
		generateTotal.WithLabelValues(diff.String(), "failed").Inc()
		status := http.StatusInternalServerError
		if errors.Is(err, generator.ErrGenerationFailed) {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, generateResp{Error: err.Error()})
		return
	}
	generateTotal.WithLabelValues(diff.String(), "ok").Inc()
	writeJSON(w, http.StatusOK, generateResp{
		Board:      p.Board,
		Seed:       seed,
		Difficulty: diff.String(),
		DurationMs: st.Duration.Milliseconds(),
		Attempts:   st.Attempts,
		Backtracks: st.Backtracks,
	})
}

// ---- Solve ----

type solveReq struct {
	Board [9][9]uint8 `json:"board"`
}

type solveResp struct {
	Board      [9][9]uint8        `json:"board,omitempty"`
	DurationMs int64              `json:"durationMs,omitempty"`
	Attempts   int                `json:"attempts,omitempty"`
	Backtracks int                `json:"backtracks,omitempty"`
	Conflicts  []domain.CellCoord `json:"conflicts,omitempty"`
	Error      string             `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if !decodeBody(w, r, &req) {
		return
	}
	in := &domain.Board{Values: req.Board}
	// Conflicting clues are a solver precondition violation; reject
	// them here.
	if ok, conflicts, _ := h.UC.Validate(r.Context(), in); !ok {
		solveTotal.WithLabelValues("rejected").Inc()
		writeJSON(w, http.StatusUnprocessableEntity, solveResp{
			Error:     "conflicting clues",
			Conflicts: conflicts,
		})
		return
	}
	out, st, err := h.UC.Solve(r.Context(), in)
	solveDuration.Observe(st.Duration.Seconds())
	if err != nil {
		outcome, status := "error", http.StatusInternalServerError
		if errors.Is(err, solver.ErrNotSolvable) {
			outcome, status = "not_solvable", http.StatusUnprocessableEntity
		}
		solveTotal.WithLabelValues(outcome).Inc()
		writeJSON(w, status, solveResp{
			Error:      err.Error(),
			DurationMs: st.Duration.Milliseconds(),
			Attempts:   st.Attempts,
			Backtracks: st.Backtracks,
		})
		return
	}
	solveTotal.WithLabelValues("solved").Inc()
	writeJSON(w, http.StatusOK, solveResp{
		Board:      out.Values,
		DurationMs: st.Duration.Milliseconds(),
		Attempts:   st.Attempts,
		Backtracks: st.Backtracks,
	})
}

// ---- Analyze ----

type analyzeResp struct {
	Solutions  int                `json:"solutions"` // capped at 2
	Unique     bool               `json:"unique"`
	DurationMs int64              `json:"durationMs,omitempty"`
	Conflicts  []domain.CellCoord `json:"conflicts,omitempty"`
	Error      string             `json:"error,omitempty"`
}

func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if !decodeBody(w, r, &req) {
		return
	}
	in := &domain.Board{Values: req.Board}
	if ok, conflicts, _ := h.UC.Validate(r.Context(), in); !ok {
		writeJSON(w, http.StatusUnprocessableEntity, analyzeResp{
			Error:     "conflicting clues",
			Conflicts: conflicts,
		})
		return
	}
	n, st, err := h.UC.Analyze(r.Context(), in)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, analyzeResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, analyzeResp{
		Solutions:  n,
		Unique:     n == 1,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Validate ----

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if !decodeBody(w, r, &req) {
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), &domain.Board{Values: req.Board})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, validateResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if !decodeBody(w, r, &req) {
		return
	}
	hh, found, err := h.UC.Hint(r.Context(), &domain.Board{Values: req.Board})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, hintResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, hintResp{Found: found, Hint: hh})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var p domain.Puzzle
	if !decodeBody(w, r, &p) {
		return
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		writeJSON(w, http.StatusInternalServerError, saveResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}

type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	var req loadReq
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ID == "" {
		writeJSON(w, http.StatusBadRequest, loadResp{Error: "missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, loadResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	ps, err := h.UC.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, listResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, listResp{Puzzles: ps})
}
