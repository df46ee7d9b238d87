package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/gridsolve/sudoku/internal/domain"
	"github.com/gridsolve/sudoku/internal/ports"
	"github.com/gridsolve/sudoku/internal/solver"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// maxStreamDelay caps the per-event throttle a client may request.
const maxStreamDelay = time.Second

type streamReq struct {
	Board   [9][9]uint8 `json:"board"`
	DelayMs int         `json:"delayMs,omitempty"`
}

// streamFrame is one websocket message: either a progress event
// (type "event") or the terminal result (type "done" / "error").
type streamFrame struct {
	Type       string             `json:"type"`
	Grid       [9][9]uint8        `json:"grid,omitempty"`
	Status     domain.SolveStatus `json:"status,omitempty"`
	Cell       *domain.CellCoord  `json:"cell,omitempty"`
	Digit      uint8              `json:"digit,omitempty"`
	Attempts   int                `json:"attempts"`
	Backtracks int                `json:"backtracks"`
	DurationMs int64              `json:"durationMs,omitempty"`
	Error      string             `json:"error,omitempty"`
}

// wsSink forwards progress events over the websocket. Write failures
// are remembered but never surfaced to the solver, which ignores the
// sink entirely; the search runs to completion either way.
type wsSink struct {
	conn *websocket.Conn
	err  error
}

func (s *wsSink) Observe(e ports.Event) {
	if s.err != nil {
		return
	}
	streamEvents.Inc()
	s.err = s.conn.WriteJSON(streamFrame{
		Type:       "event",
		Grid:       e.Grid,
		Status:     e.Status,
		Cell:       e.Cell,
		Digit:      e.Digit,
		Attempts:   e.Attempts,
		Backtracks: e.Backtracks,
	})
}

func (h *Handler) handleSolveStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	var req streamReq
	if err := conn.ReadJSON(&req); err != nil {
		slog.Info("stream client sent no request", "err", err)
		return
	}
	delay := time.Duration(req.DelayMs) * time.Millisecond
	if delay < 0 {
		delay = 0
	}
	if delay > maxStreamDelay {
		delay = maxStreamDelay
	}

	in := &domain.Board{Values: req.Board}
	if ok, _, _ := h.UC.Validate(r.Context(), in); !ok {
		_ = conn.WriteJSON(streamFrame{Type: "error", Error: "conflicting clues"})
		return
	}

	sink := &wsSink{conn: conn}
	out, st, err := h.UC.SolveStreaming(r.Context(), in, sink, delay)
	if sink.err != nil {
		slog.Info("stream client went away mid-solve", "err", sink.err)
		return
	}
	if err != nil {
		frame := streamFrame{
			Type:       "error",
			Error:      err.Error(),
			Attempts:   st.Attempts,
			Backtracks: st.Backtracks,
			DurationMs: st.Duration.Milliseconds(),
		}
		if !errors.Is(err, solver.ErrNotSolvable) {
			slog.Error("streaming solve failed", "err", err)
		}
		_ = conn.WriteJSON(frame)
		return
	}
	_ = conn.WriteJSON(streamFrame{
		Type:       "done",
		Grid:       out.Values,
		Attempts:   st.Attempts,
		Backtracks: st.Backtracks,
		DurationMs: st.Duration.Milliseconds(),
	})
}
