package sudoku

// Difficulty selects how many clues a generated puzzle retains.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ClueRange returns the inclusive range of retained (non-zero) cells for
// the tier. Unrecognized tags fall back to the medium range; that is
// documented default behavior, not an error.
func (d Difficulty) ClueRange() (lo, hi int) {
	switch d {
	case Easy:
		return 35, 40
	case Hard:
		return 25, 29
	default:
		return 30, 34
	}
}
