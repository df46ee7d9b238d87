package domain

import (
	"fmt"
	"strings"
)

// ParseBoard reads a board from text: nine rows of nine cells, where a
// cell is a digit 1-9 or one of '0', '.', '_' for empty. Whitespace
// between cells, blank lines, and box-separator characters are ignored,
// so compact ("53..7...."), spaced, and String-rendered layouts parse.
func ParseBoard(s string) (*Board, error) {
	var b Board
	rows := 0
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if rows >= 9 {
			return nil, fmt.Errorf("board has more than 9 rows")
		}
		col := 0
		for _, ch := range line {
			var v uint8
			switch {
			case ch >= '1' && ch <= '9':
				v = uint8(ch - '0')
			case ch == '0' || ch == '.' || ch == '_':
				v = 0
			case ch == ' ' || ch == '\t' || ch == '|' || ch == '-' || ch == '+':
				continue
			default:
				return nil, fmt.Errorf("row %d: unexpected character %q", rows+1, ch)
			}
			if col >= 9 {
				return nil, fmt.Errorf("row %d has more than 9 cells", rows+1)
			}
			b.Values[rows][col] = v
			b.Fixed[rows][col] = v != 0
			col++
		}
		if col == 0 {
			continue // box separator line
		}
		if col != 9 {
			return nil, fmt.Errorf("row %d has %d cells, want 9", rows+1, col)
		}
		rows++
	}
	if rows != 9 {
		return nil, fmt.Errorf("board has %d rows, want 9", rows)
	}
	return &b, nil
}

// String renders the board as nine rows with box separators, using
// '.' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c > 0 && c%3 == 0 {
				sb.WriteString("| ")
			}
			if v := b.Values[r][c]; v == 0 {
				sb.WriteString(". ")
			} else {
				sb.WriteByte('0' + v)
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
