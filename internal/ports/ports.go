package ports

import (
	"context"
	"time"

	"github.com/gridsolve/sudoku/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Attempts   int
	Backtracks int
	Duration   time.Duration
}

// Event is a solver progress snapshot delivered to a ProgressSink.
// Grid is a copy; sinks may retain it.
type Event struct {
	Grid       [9][9]uint8        `json:"grid"`
	Status     domain.SolveStatus `json:"status"`
	Cell       *domain.CellCoord  `json:"cell,omitempty"`
	Digit      uint8              `json:"digit,omitempty"`
	Attempts   int                `json:"attempts"`
	Backtracks int                `json:"backtracks"`
}

// ProgressSink observes solver progress during a streaming solve.
// The solver ignores anything the sink does; implementations are
// expected to render events in delivery order.
type ProgressSink interface {
	Observe(Event)
}

// Solver solves a board, optionally streaming progress, and can count
// solutions for uniqueness analysis. A solve runs to completion once
// started; the context is not consulted mid-search.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
	SolveStreaming(ctx context.Context, b *domain.Board, sink ProgressSink, delay time.Duration) (*domain.Board, Stats, error)
	CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical placement, if one is found.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
