package validator

import (
	"context"

	"github.com/gridsolve/sudoku/internal/domain"
)

// ConflictValidator scans every row, column, and box for duplicate
// digits. The solver constructor assumes conflict-free clues, so this
// is the check callers run before handing a board to the core.
type ConflictValidator struct{}

func New() *ConflictValidator { return &ConflictValidator{} }

func (v *ConflictValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conflicts := make([]domain.CellCoord, 0, 8)
	for _, unit := range units() {
		seen := 0
		for _, cell := range unit {
			val := b.Values[cell.Row][cell.Col]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if seen&bit != 0 {
				conflicts = append(conflicts, cell)
			}
			seen |= bit
		}
	}
	return len(conflicts) == 0, conflicts, nil
}

// units enumerates the 27 constraint groups: 9 rows, 9 columns, 9 boxes.
func units() [27][9]domain.CellCoord {
	var out [27][9]domain.CellCoord
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			out[i][j] = domain.CellCoord{Row: i, Col: j}
			out[9+i][j] = domain.CellCoord{Row: j, Col: i}
			out[18+i][j] = domain.CellCoord{
				Row: (i/3)*3 + j/3,
				Col: (i%3)*3 + j%3,
			}
		}
	}
	return out
}
