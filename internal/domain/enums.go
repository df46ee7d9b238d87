package domain

import "strings"

// Difficulty labels target puzzle generation.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// Profile controls how a puzzle of a given difficulty is carved:
// the fraction of the 81 cells emptied, and how many generation
// attempts may be spent before giving up.
type Profile struct {
	RemovalFraction float64
	MaxAttempts     int
}

// Profile returns the carving parameters for the difficulty.
func (d Difficulty) Profile() Profile {
	switch d {
	case Easy:
		return Profile{RemovalFraction: 0.3, MaxAttempts: 30}
	case Hard:
		return Profile{RemovalFraction: 0.7, MaxAttempts: 50}
	case Expert:
		return Profile{RemovalFraction: 0.8, MaxAttempts: 60}
	default:
		return Profile{RemovalFraction: 0.5, MaxAttempts: 40}
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// MarshalJSON encodes the difficulty by name.
func (d Difficulty) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts a difficulty name; unknown names (and the
// empty string) decode as Medium.
func (d *Difficulty) UnmarshalJSON(data []byte) error {
	*d = ParseDifficulty(strings.Trim(string(data), `"`))
	return nil
}

// ParseDifficulty maps a name to a Difficulty. Unrecognized names
// fall back to Medium.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	case "expert":
		return Expert
	default:
		return Medium
	}
}

// SolveStatus tags progress events emitted during a streaming solve.
type SolveStatus string

const (
	StatusSearching    SolveStatus = "searching"
	StatusTrying       SolveStatus = "trying"
	StatusPlaced       SolveStatus = "placed"
	StatusBacktracking SolveStatus = "backtracking"
)
