package generator

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridsolve/sudoku/internal/domain"
	"github.com/gridsolve/sudoku/internal/solver"
)

func TestGenerateAllDifficulties(t *testing.T) {
	g := New(solver.NewHeuristicSolver())
	ctx := context.Background()

	cases := []struct {
		diff  domain.Difficulty
		empty int // round(81 * removal fraction)
	}{
		{domain.Easy, 24},
		{domain.Medium, 41},
		{domain.Hard, 57},
		{domain.Expert, 65},
	}
	for _, tc := range cases {
		t.Run(tc.diff.String(), func(t *testing.T) {
			p, st, err := g.Generate(ctx, 12345, tc.diff)
			require.NoError(t, err)
			assert.Equal(t, tc.empty, p.Board.EmptyCount())
			assert.Equal(t, tc.diff, p.Difficulty)
			assert.Greater(t, st.Attempts, 0)

			// every given is marked fixed, every blank is not
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					assert.Equal(t, p.Board.Values[r][c] != 0, p.Board.Fixed[r][c])
				}
			}

			// by construction the puzzle still solves
			_, _, err = g.Solver.Solve(ctx, &p.Board)
			assert.NoError(t, err)
		})
	}
}

func TestGenerateIsSeedStable(t *testing.T) {
	g := New(solver.NewHeuristicSolver())
	ctx := context.Background()
	a, _, err := g.Generate(ctx, 99, domain.Hard)
	require.NoError(t, err)
	b, _, err := g.Generate(ctx, 99, domain.Hard)
	require.NoError(t, err)
	assert.Equal(t, a.Board.Values, b.Board.Values)
}

func TestGenerateStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := New(solver.NewHeuristicSolver()).Generate(ctx, 1, domain.Easy)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCarveZeroRemovalsKeepsGridIntact(t *testing.T) {
	full, _, err := solver.NewEngine(&domain.Board{}, rand.New(rand.NewSource(3))).Solve()
	require.NoError(t, err)

	b := carve(rand.New(rand.NewSource(3)), full.Values, 0)
	assert.Equal(t, full.Values, b.Values, "removing zero cells changes nothing")
	assert.Equal(t, 0, b.EmptyCount())
}

func TestCarveRemovesExactlyN(t *testing.T) {
	full, _, err := solver.NewEngine(&domain.Board{}, rand.New(rand.NewSource(4))).Solve()
	require.NoError(t, err)

	b := carve(rand.New(rand.NewSource(4)), full.Values, 65)
	assert.Equal(t, 65, b.EmptyCount())
	// survivors keep their original digits
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				assert.Equal(t, full.Values[r][c], b.Values[r][c])
			}
		}
	}
}
