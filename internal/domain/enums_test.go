package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDifficulty(t *testing.T) {
	cases := map[string]Difficulty{
		"easy":     Easy,
		"Medium":   Medium,
		"HARD":     Hard,
		" expert ": Expert,
		"":         Medium,
		"nightmare": Medium, // unknown names fall back to medium
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseDifficulty(in), "input %q", in)
	}
}

func TestProfileCatalog(t *testing.T) {
	assert.Equal(t, Profile{0.3, 30}, Easy.Profile())
	assert.Equal(t, Profile{0.5, 40}, Medium.Profile())
	assert.Equal(t, Profile{0.7, 50}, Hard.Profile())
	assert.Equal(t, Profile{0.8, 60}, Expert.Profile())
}

func TestDifficultyRoundTrip(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard, Expert} {
		assert.Equal(t, d, ParseDifficulty(d.String()))
	}
}
