package world

const (
	difficultyPerPoint = 0.05
	MaxDifficulty      = 3.0
)

// DifficultyFor maps a score to the obstacle speed multiplier. It starts
// at 1 and never decreases as the score grows.
func DifficultyFor(score int) float64 {
	if score <= 0 {
		return 1
	}
	d := 1 + difficultyPerPoint*float64(score)
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}
