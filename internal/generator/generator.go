package generator

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/gridsolve/sudoku/internal/domain"
	"github.com/gridsolve/sudoku/internal/ports"
	"github.com/gridsolve/sudoku/internal/solver"
)

// ErrGenerationFailed reports that every generation attempt in the
// difficulty's budget was spent without producing a solvable puzzle.
var ErrGenerationFailed = errors.New("sudoku: could not generate a solvable puzzle")

// PuzzleGenerator produces puzzles by carving cells out of a freshly
// solved grid and confirming the remainder still has a solution. The
// confirmation proves existence, not uniqueness: higher difficulties
// may admit multiple solutions. That is the intended behavior; exact
// counting lives behind the analyze operation instead.
type PuzzleGenerator struct {
	Solver ports.Solver
}

// New wires a generator that uses the given solver for the
// solvability re-check.
func New(s ports.Solver) *PuzzleGenerator {
	return &PuzzleGenerator{Solver: s}
}

// Generate builds a puzzle for the difficulty, retrying up to the
// profile's attempt budget. The context is consulted only between
// attempts, never inside a running search.
func (g *PuzzleGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	prof := diff.Profile()
	remove := int(math.Round(81 * prof.RemovalFraction))

	var total ports.Stats
	for attempt := 0; attempt < prof.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			total.Duration = time.Since(start)
			return nil, total, err
		}
		// A randomized engine solves the empty grid into a full
		// solution; an empty grid always solves, so the error can
		// be ignored here.
		full, st, err := solver.NewEngine(&domain.Board{}, rng).Solve()
		total.Attempts += st.Attempts
		total.Backtracks += st.Backtracks
		if err != nil {
			continue
		}
		board := carve(rng, full.Values, remove)
		if _, st, err = g.Solver.Solve(ctx, &board); err == nil {
			total.Attempts += st.Attempts
			total.Backtracks += st.Backtracks
			total.Duration = time.Since(start)
			return &domain.Puzzle{
				Seed:       seed,
				Difficulty: diff,
				Board:      board,
				CreatedAt:  time.Now().UnixNano(),
			}, total, nil
		}
		total.Attempts += st.Attempts
		total.Backtracks += st.Backtracks
	}
	total.Duration = time.Since(start)
	return nil, total, ErrGenerationFailed
}

// carve empties the first n cells of a shuffled coordinate order and
// marks the survivors as fixed givens. n == 0 returns the full grid.
func carve(rng *rand.Rand, full [9][9]uint8, n int) domain.Board {
	positions := make([]int, 81)
	for i := range positions {
		positions[i] = i
	}
	rng.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})
	b := domain.Board{Values: full}
	for _, pos := range positions[:n] {
		b.Values[pos/9][pos%9] = 0
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Fixed[r][c] = b.Values[r][c] != 0
		}
	}
	return b
}
