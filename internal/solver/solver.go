package solver

import (
	"context"
	"time"

	"github.com/gridsolve/sudoku/internal/domain"
	"github.com/gridsolve/sudoku/internal/ports"
)

// HeuristicSolver adapts the engine to ports.Solver. Each call builds
// a fresh Engine, so no two solves share state.
type HeuristicSolver struct{}

func NewHeuristicSolver() *HeuristicSolver { return &HeuristicSolver{} }

func (s *HeuristicSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	out, st, err := NewEngine(b, nil).Solve()
	if err != nil {
		return nil, st, err
	}
	out.Fixed = b.Fixed
	return out, st, nil
}

func (s *HeuristicSolver) SolveStreaming(ctx context.Context, b *domain.Board, sink ports.ProgressSink, delay time.Duration) (*domain.Board, ports.Stats, error) {
	out, st, err := NewEngine(b, nil).SolveStreaming(sink, delay)
	if err != nil {
		return nil, st, err
	}
	out.Fixed = b.Fixed
	return out, st, nil
}

func (s *HeuristicSolver) CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, ports.Stats, error) {
	start := time.Now()
	e := NewEngine(b, nil)
	n := e.countSolutions(limit)
	st := ports.Stats{Attempts: e.attempts, Backtracks: e.backtracks, Duration: time.Since(start)}
	return n, st, nil
}
