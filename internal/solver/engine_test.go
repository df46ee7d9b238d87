package solver

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridsolve/sudoku/internal/domain"
	"github.com/gridsolve/sudoku/internal/ports"
)

// A classic puzzle with a unique solution (0 = empty).
var sample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var sampleSolution = [9][9]uint8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

// Clues that never collide directly but admit no solution: row 0 holds
// 1..8, so (0,8) must be 9, which column 8 already has.
var impossible = func() [9][9]uint8 {
	var g [9][9]uint8
	for c := 0; c < 8; c++ {
		g[0][c] = uint8(c + 1)
	}
	g[1][8] = 9
	return g
}()

func checkComplete(t *testing.T, grid [9][9]uint8) {
	t.Helper()
	for i := 0; i < 9; i++ {
		var row, col, box uint16
		for j := 0; j < 9; j++ {
			row |= 1 << grid[i][j]
			col |= 1 << grid[j][i]
			box |= 1 << grid[(i/3)*3+j/3][(i%3)*3+j%3]
		}
		if row != allDigits || col != allDigits || box != allDigits {
			t.Fatalf("unit %d is not the set 1..9 (row=%b col=%b box=%b)", i, row, col, box)
		}
	}
}

func TestSolveUniquePuzzleReturnsItsSolution(t *testing.T) {
	out, st, err := NewEngine(&domain.Board{Values: sample}, nil).Solve()
	require.NoError(t, err)
	assert.Equal(t, sampleSolution, out.Values)
	assert.Greater(t, st.Attempts, 0)
}

func TestSolveEmptyGrid(t *testing.T) {
	out, _, err := NewEngine(&domain.Board{}, nil).Solve()
	require.NoError(t, err)
	checkComplete(t, out.Values)
}

func TestSolveImpossibleGrid(t *testing.T) {
	out, _, err := NewEngine(&domain.Board{Values: impossible}, nil).Solve()
	assert.ErrorIs(t, err, ErrNotSolvable)
	assert.Nil(t, out)
}

func TestRandomizedSolveIsValidAndSeedStable(t *testing.T) {
	a, _, err := NewEngine(&domain.Board{}, rand.New(rand.NewSource(7))).Solve()
	require.NoError(t, err)
	checkComplete(t, a.Values)

	b, _, err := NewEngine(&domain.Board{}, rand.New(rand.NewSource(7))).Solve()
	require.NoError(t, err)
	assert.Equal(t, a.Values, b.Values, "same seed, same solution")
}

func TestPropagateIsIdempotent(t *testing.T) {
	e := NewEngine(&domain.Board{Values: sample}, nil)
	e.propagate()
	once := e.grid
	e.propagate()
	assert.Equal(t, once, e.grid)
}

func TestPropagateFillsForcedCells(t *testing.T) {
	// remove one cell from a full solution: propagation alone restores it
	grid := sampleSolution
	grid[4][4] = 0
	e := NewEngine(&domain.Board{Values: grid}, nil)
	e.propagate()
	assert.Equal(t, sampleSolution, e.grid)
}

// recordingSink collects events and fails the test if any snapshot
// violates row/col/box uniqueness.
type recordingSink struct {
	t      *testing.T
	events []ports.Event
}

func (s *recordingSink) Observe(e ports.Event) {
	s.events = append(s.events, e)
	for i := 0; i < 9; i++ {
		var row, col, box uint16
		for j := 0; j < 9; j++ {
			if v := e.Grid[i][j]; v != 0 {
				if row&(1<<v) != 0 {
					s.t.Errorf("duplicate %d in row %d of a snapshot", v, i)
				}
				row |= 1 << v
			}
			if v := e.Grid[j][i]; v != 0 {
				if col&(1<<v) != 0 {
					s.t.Errorf("duplicate %d in col %d of a snapshot", v, i)
				}
				col |= 1 << v
			}
			if v := e.Grid[(i/3)*3+j/3][(i%3)*3+j%3]; v != 0 {
				if box&(1<<v) != 0 {
					s.t.Errorf("duplicate %d in box %d of a snapshot", v, i)
				}
				box |= 1 << v
			}
		}
	}
}

func TestStreamingEmitsOrderedConsistentEvents(t *testing.T) {
	sink := &recordingSink{t: t}
	out, st, err := NewEngine(&domain.Board{Values: sample}, nil).SolveStreaming(sink, 0)
	require.NoError(t, err)
	assert.Equal(t, sampleSolution, out.Values)
	require.NotEmpty(t, sink.events)

	assert.Equal(t, domain.StatusSearching, sink.events[0].Status, "first event announces the search")
	for i, ev := range sink.events {
		switch ev.Status {
		case domain.StatusTrying:
			require.NotNil(t, ev.Cell)
			assert.True(t, ev.Digit >= 1 && ev.Digit <= 9, "trying carries a digit in 1..9, got %d", ev.Digit)
			require.Less(t, i+1, len(sink.events), "a trying event is never last")
			assert.Equal(t, domain.StatusPlaced, sink.events[i+1].Status,
				"placed follows trying immediately")
		case domain.StatusBacktracking:
			require.NotNil(t, ev.Cell)
		}
		assert.LessOrEqual(t, ev.Attempts, st.Attempts)
		assert.LessOrEqual(t, ev.Backtracks, st.Backtracks)
	}
}

// Clues that collide directly (two 5s in row 0) violate the engine
// constructor's precondition: the search's behavior on such input is
// undefined and can run for an unbounded time, so it is not executed
// here. Construction itself must not panic, and the corrupted candidate
// state shows why callers run a validator first; the HTTP adapter does.
func TestConflictingCluesAreAPreconditionViolation(t *testing.T) {
	var g [9][9]uint8
	g[0][0], g[0][5] = 5, 5
	e := NewEngine(&domain.Board{Values: g}, nil)
	// the second 5 was placed even though the first already stripped it
	// from the whole row
	assert.Equal(t, uint8(5), e.grid[0][5])
	for c := 0; c < 9; c++ {
		assert.False(t, e.cand.CanPlace(0, c, 5))
	}
}

func TestSolverAdapterKeepsFixedMask(t *testing.T) {
	var fixed [9][9]bool
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = sample[r][c] != 0
		}
	}
	out, _, err := NewHeuristicSolver().Solve(context.Background(), &domain.Board{Values: sample, Fixed: fixed})
	require.NoError(t, err)
	assert.Equal(t, fixed, out.Fixed)
}
