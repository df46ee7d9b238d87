package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridsolve/sudoku/internal/domain"
)

func TestHintFindsNakedSingle(t *testing.T) {
	// row 0 holds 1..8, so the last cell can only be 9
	var b domain.Board
	for c := 0; c < 8; c++ {
		b.Values[0][c] = uint8(c + 1)
	}
	h, found, err := NewSingles().Hint(context.Background(), &b)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.CellCoord{Row: 0, Col: 8}, h.Cell)
	assert.Equal(t, uint8(9), h.Digit)
	assert.NotEmpty(t, h.Message)
}

func TestHintEmptyBoardHasNoSingles(t *testing.T) {
	_, found, err := NewSingles().Hint(context.Background(), &domain.Board{})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestHintFullBoardHasNoSingles(t *testing.T) {
	var b domain.Board
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Values[r][c] = uint8((r*3+r/3+c)%9 + 1)
		}
	}
	_, found, err := NewSingles().Hint(context.Background(), &b)
	require.NoError(t, err)
	assert.False(t, found)
}
