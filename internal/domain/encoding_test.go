package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const compact = `
53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79
`

func TestParseBoardCompact(t *testing.T) {
	b, err := ParseBoard(compact)
	require.NoError(t, err)
	assert.Equal(t, uint8(5), b.Values[0][0])
	assert.Equal(t, uint8(0), b.Values[0][2])
	assert.Equal(t, uint8(9), b.Values[8][8])
	assert.True(t, b.Fixed[0][0])
	assert.False(t, b.Fixed[0][2])
	assert.Equal(t, 51, b.EmptyCount())
}

func TestParseBoardRoundTrip(t *testing.T) {
	b, err := ParseBoard(compact)
	require.NoError(t, err)
	again, err := ParseBoard(b.String())
	require.NoError(t, err)
	assert.Equal(t, b.Values, again.Values)
}

func TestParseBoardErrors(t *testing.T) {
	_, err := ParseBoard("53..7....")
	assert.Error(t, err, "one row is not a board")

	_, err = ParseBoard(compact + "\n.........")
	assert.Error(t, err, "ten rows is not a board")

	_, err = ParseBoard("53..7...X\n" + compact[11:])
	assert.Error(t, err, "letters are rejected")
}
