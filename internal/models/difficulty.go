package models

import "fmt"

// Difficulty represents a named difficulty level
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DifficultyParams bundles the tuning knobs a difficulty level applies
// to a session: overall session length, scaling of per-order time
// limits and penalties, and the recipe complexity window used when
// generating orders (0 means unbounded on that side).
type DifficultyParams struct {
	SessionSeconds    int
	TimeMultiplier    float64
	PenaltyMultiplier float64
	MinFruits         int
	MaxFruits         int
}

var difficultyParams = map[Difficulty]DifficultyParams{
	DifficultyEasy:   {SessionSeconds: 90, TimeMultiplier: 1.5, PenaltyMultiplier: 0.5, MaxFruits: 2},
	DifficultyMedium: {SessionSeconds: 60, TimeMultiplier: 1.0, PenaltyMultiplier: 1.0},
	DifficultyHard:   {SessionSeconds: 45, TimeMultiplier: 0.7, PenaltyMultiplier: 1.5, MinFruits: 2},
}

// ParseDifficulty converts a string into a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if _, ok := difficultyParams[d]; !ok {
		return "", fmt.Errorf("unknown difficulty: %q", s)
	}
	return d, nil
}

// Params returns the tuning parameters for the difficulty. Unknown
// values fall back to medium.
func (d Difficulty) Params() DifficultyParams {
	if p, ok := difficultyParams[d]; ok {
		return p
	}
	return difficultyParams[DifficultyMedium]
}

// Admits reports whether a recipe's complexity falls inside the
// difficulty's generation window.
func (p DifficultyParams) Admits(r Recipe) bool {
	n := r.Complexity()
	if p.MinFruits > 0 && n < p.MinFruits {
		return false
	}
	if p.MaxFruits > 0 && n > p.MaxFruits {
		return false
	}
	return true
}

// Difficulties lists all valid difficulty levels.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}
