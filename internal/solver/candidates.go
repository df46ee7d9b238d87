package solver

import (
	"math/bits"

	"github.com/gridsolve/sudoku/internal/domain"
)

// allDigits has bits 1..9 set; bit v stands for digit v.
const allDigits uint16 = 0x3FE

// CandidateMap tracks, per cell, which digits are still available as a
// 9-bit set. A filled cell's set is empty; an empty cell's set holds
// exactly the digits not excluded by its row, column, and box peers.
type CandidateMap [9][9]uint16

// NewCandidateMap returns a map with every digit available in every cell.
func NewCandidateMap() CandidateMap {
	var m CandidateMap
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			m[r][c] = allDigits
		}
	}
	return m
}

// CandidatesFor builds the candidate map implied by a board's current
// values. Callers must ensure the board holds no conflicting digits.
func CandidatesFor(b *domain.Board) CandidateMap {
	m := NewCandidateMap()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v != 0 {
				m.Place(r, c, v)
			}
		}
	}
	return m
}

// Place records digit v at (r,c): the cell's own set is cleared and v
// is removed from every cell sharing the row, column, or box. The
// caller is expected to have checked CanPlace first.
func (m *CandidateMap) Place(r, c int, v uint8) {
	mask := ^(uint16(1) << v)
	for i := 0; i < 9; i++ {
		m[r][i] &= mask
		m[i][c] &= mask
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			m[br+dr][bc+dc] &= mask
		}
	}
	m[r][c] = 0
}

// CanPlace reports whether v is currently a candidate at (r,c).
func (m *CandidateMap) CanPlace(r, c int, v uint8) bool {
	return m[r][c]&(1<<v) != 0
}

// Count returns the number of candidates remaining at (r,c).
func (m *CandidateMap) Count(r, c int) int {
	return bits.OnesCount16(m[r][c])
}

// Sole returns the single remaining candidate at (r,c), if exactly one
// is left.
func (m *CandidateMap) Sole(r, c int) (uint8, bool) {
	s := m[r][c]
	if s == 0 || s&(s-1) != 0 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(s)), true
}

// Digits lists the candidates at (r,c) in ascending order.
func (m *CandidateMap) Digits(r, c int) []uint8 {
	out := make([]uint8, 0, bits.OnesCount16(m[r][c]))
	for v := uint8(1); v <= 9; v++ {
		if m[r][c]&(1<<v) != 0 {
			out = append(out, v)
		}
	}
	return out
}
