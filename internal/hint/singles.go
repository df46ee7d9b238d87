package hint

import (
	"context"
	"fmt"

	"github.com/gridsolve/sudoku/internal/domain"
	"github.com/gridsolve/sudoku/internal/solver"
)

// Singles suggests naked singles: empty cells whose candidate set has
// shrunk to one digit.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first naked single in row-major order.
func (h *Singles) Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error) {
	cand := solver.CandidatesFor(b)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				continue
			}
			if v, ok := cand.Sole(r, c); ok {
				return domain.Hint{
					Message: fmt.Sprintf("only %d fits at row %d, column %d", v, r+1, c+1),
					Cell:    domain.CellCoord{Row: r, Col: c},
					Digit:   v,
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}
