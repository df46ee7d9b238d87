package solver

import (
	"errors"
	"math/rand"
	"sort"
	"time"

	"github.com/gridsolve/sudoku/internal/domain"
	"github.com/gridsolve/sudoku/internal/ports"
)

// ErrNotSolvable reports that the search exhausted every candidate at
// every level without completing the grid.
var ErrNotSolvable = errors.New("sudoku: no solution")

// errNoEmptyCells is the internal precondition failure of cell
// selection. The search checks grid completion before selecting, so it
// never escapes this package.
var errNoEmptyCells = errors.New("sudoku: no empty cells left")

// Engine owns one solving run: a grid, its candidate map, and search
// counters. Construct a fresh Engine per solve; engines are not safe
// for reuse or concurrent use.
//
// The constructor places the given clues without conflict checking.
// Mutually inconsistent clues are a precondition violation; run a
// validator first (the HTTP adapter does).
type Engine struct {
	grid       [9][9]uint8
	cand       CandidateMap
	attempts   int
	backtracks int
	rng        *rand.Rand
}

// snapshot is a full copy of the mutable search state, taken before a
// speculative placement and restored on backtrack.
type snapshot struct {
	grid [9][9]uint8
	cand CandidateMap
}

// NewEngine builds an engine seeded with the board's clues, placed in
// row-major order. A non-nil rng shuffles each cell's candidates before
// the popularity sort, randomizing the order among equally popular
// digits; pass nil for a deterministic search.
func NewEngine(b *domain.Board, rng *rand.Rand) *Engine {
	e := &Engine{cand: NewCandidateMap(), rng: rng}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v != 0 {
				e.place(r, c, v)
			}
		}
	}
	return e
}

// Solve runs the backtracking search to completion and returns the
// solved board or ErrNotSolvable.
func (e *Engine) Solve() (*domain.Board, ports.Stats, error) {
	return e.run(nil, 0)
}

// SolveStreaming is Solve with progress events delivered to sink in
// strict search order. After each event the search sleeps for delay,
// throttling visualization; the sleep blocks the searching goroutine.
func (e *Engine) SolveStreaming(sink ports.ProgressSink, delay time.Duration) (*domain.Board, ports.Stats, error) {
	return e.run(sink, delay)
}

func (e *Engine) run(sink ports.ProgressSink, delay time.Duration) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	e.attempts, e.backtracks = 0, 0
	ok := e.search(sink, delay)
	st := ports.Stats{Attempts: e.attempts, Backtracks: e.backtracks, Duration: time.Since(start)}
	if !ok {
		return nil, st, ErrNotSolvable
	}
	return &domain.Board{Values: e.grid}, st, nil
}

// search is the recursive depth-first backtracking step.
func (e *Engine) search(sink ports.ProgressSink, delay time.Duration) bool {
	e.attempts++
	if e.solved() {
		return true
	}
	if sink != nil {
		e.emit(sink, delay, domain.StatusSearching, nil, 0)
	}
	r, c, err := e.selectCell()
	if err != nil {
		return false
	}
	for _, v := range e.orderedCandidates(r, c) {
		// propagation during an earlier iteration may have excluded v
		if !e.cand.CanPlace(r, c, v) {
			continue
		}
		snap := snapshot{grid: e.grid, cand: e.cand}
		if sink != nil {
			e.emit(sink, delay, domain.StatusTrying, &domain.CellCoord{Row: r, Col: c}, v)
		}
		e.place(r, c, v)
		e.propagate()
		if sink != nil {
			e.emit(sink, delay, domain.StatusPlaced, nil, 0)
		}
		if e.search(sink, delay) {
			return true
		}
		e.backtracks++
		e.grid, e.cand = snap.grid, snap.cand
		if sink != nil {
			// the sink sees the reverted state
			e.emit(sink, delay, domain.StatusBacktracking, &domain.CellCoord{Row: r, Col: c}, 0)
		}
	}
	return false
}

// place writes v into (r,c) and strips it from the peers' candidates.
func (e *Engine) place(r, c int, v uint8) {
	e.grid[r][c] = v
	e.cand.Place(r, c, v)
}

// propagate fills every cell with exactly one remaining candidate,
// repeating until no forced cell is left. Terminates because each
// placement strictly reduces the empty-cell count.
func (e *Engine) propagate() {
	for changed := true; changed; {
		changed = false
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				if e.grid[r][c] != 0 {
					continue
				}
				if v, ok := e.cand.Sole(r, c); ok {
					e.place(r, c, v)
					changed = true
				}
			}
		}
	}
}

func (e *Engine) solved() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if e.grid[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// selectCell picks the empty cell with the highest impact score:
// (empty peers in row + column + box) / (candidate count + 1). Few
// options with high structural leverage first; ties go to the first
// maximum in row-major order.
func (e *Engine) selectCell() (int, int, error) {
	bestR, bestC := -1, -1
	best := -1.0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if e.grid[r][c] != 0 {
				continue
			}
			score := float64(e.emptyInRow(r)+e.emptyInCol(c)+e.emptyInBox(r, c)) /
				float64(e.cand.Count(r, c)+1)
			if score > best {
				best, bestR, bestC = score, r, c
			}
		}
	}
	if bestR < 0 {
		return 0, 0, errNoEmptyCells
	}
	return bestR, bestC, nil
}

// orderedCandidates lists the cell's candidates by ascending popularity
// (occurrences of the digit among the cell's row, column, and box), so
// rarer-so-far digits are tried first. With an rng attached the list is
// shuffled before the stable sort, randomizing order within ties.
func (e *Engine) orderedCandidates(r, c int) []uint8 {
	digits := e.cand.Digits(r, c)
	if e.rng != nil {
		e.rng.Shuffle(len(digits), func(i, j int) {
			digits[i], digits[j] = digits[j], digits[i]
		})
	}
	sort.SliceStable(digits, func(i, j int) bool {
		return e.popularity(r, c, digits[i]) < e.popularity(r, c, digits[j])
	})
	return digits
}

func (e *Engine) popularity(r, c int, v uint8) int {
	n := 0
	for i := 0; i < 9; i++ {
		if e.grid[r][i] == v {
			n++
		}
		if e.grid[i][c] == v {
			n++
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if e.grid[br+dr][bc+dc] == v {
				n++
			}
		}
	}
	return n
}

func (e *Engine) emptyInRow(r int) int {
	n := 0
	for c := 0; c < 9; c++ {
		if e.grid[r][c] == 0 {
			n++
		}
	}
	return n
}

func (e *Engine) emptyInCol(c int) int {
	n := 0
	for r := 0; r < 9; r++ {
		if e.grid[r][c] == 0 {
			n++
		}
	}
	return n
}

func (e *Engine) emptyInBox(r, c int) int {
	n := 0
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if e.grid[br+dr][bc+dc] == 0 {
				n++
			}
		}
	}
	return n
}

func (e *Engine) emit(sink ports.ProgressSink, delay time.Duration, status domain.SolveStatus, cell *domain.CellCoord, digit uint8) {
	sink.Observe(ports.Event{
		Grid:       e.grid,
		Status:     status,
		Cell:       cell,
		Digit:      digit,
		Attempts:   e.attempts,
		Backtracks: e.backtracks,
	})
	if delay > 0 {
		time.Sleep(delay)
	}
}
