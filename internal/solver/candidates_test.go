package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCandidateMapAllAvailable(t *testing.T) {
	m := NewCandidateMap()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			assert.Equal(t, 9, m.Count(r, c))
			for v := uint8(1); v <= 9; v++ {
				assert.True(t, m.CanPlace(r, c, v))
			}
		}
	}
}

func TestPlaceClearsCellAndPeers(t *testing.T) {
	m := NewCandidateMap()
	m.Place(4, 4, 5)

	// the placed cell accepts nothing anymore, including the digit itself
	assert.Equal(t, 0, m.Count(4, 4))
	assert.False(t, m.CanPlace(4, 4, 5))

	// 5 is gone from the row, column, and box
	for i := 0; i < 9; i++ {
		assert.False(t, m.CanPlace(4, i, 5), "row peer col %d", i)
		assert.False(t, m.CanPlace(i, 4, 5), "col peer row %d", i)
	}
	for r := 3; r < 6; r++ {
		for c := 3; c < 6; c++ {
			assert.False(t, m.CanPlace(r, c, 5), "box peer (%d,%d)", r, c)
		}
	}

	// unrelated cells and digits are untouched
	assert.True(t, m.CanPlace(0, 0, 5))
	assert.True(t, m.CanPlace(4, 0, 4))
	assert.Equal(t, 8, m.Count(4, 0))
}

func TestSoleAndDigits(t *testing.T) {
	m := NewCandidateMap()
	_, ok := m.Sole(0, 0)
	assert.False(t, ok, "nine candidates is not a sole candidate")

	// strip 1..8 from (0,0) by placing them elsewhere in row 0
	for v := uint8(1); v <= 8; v++ {
		m.Place(0, int(v), v)
	}
	v, ok := m.Sole(0, 0)
	require.True(t, ok)
	assert.Equal(t, uint8(9), v)
	assert.Equal(t, []uint8{9}, m.Digits(0, 0))
}
