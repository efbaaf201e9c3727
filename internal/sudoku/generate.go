// internal/sudoku/generate.go
//
// Puzzle generation: build a full random solved board, then carve clues
// out of it while the remaining puzzle still has exactly one solution.
// Responsibilities:
//   - GenerateFullBoard: random complete grid (diagonal-box seeding).
//   - pokeHoles: greedy uniqueness-preserving excavation.
//   - Generate: the engine's sole public entry point.
//
// All randomness flows through the injected *rand.Rand, so callers that
// seed it deterministically (tests, the daily puzzle) get reproducible
// boards.

package sudoku

import "math/rand"

// Result is the immutable artifact handed to collaborators: the carved
// puzzle, its unique solution, and the tier it was generated for.
// Grid is a value type, so Puzzle and Solution share no storage.
type Result struct {
	Puzzle     Grid       `json:"puzzle"`
	Solution   Grid       `json:"solution"`
	Difficulty Difficulty `json:"difficulty"`
}

// Generate produces a fresh puzzle for the tier. It is a pure function
// of its arguments: no state survives between calls.
func Generate(d Difficulty, rng *rand.Rand) Result {
	solution := GenerateFullBoard(rng)
	puzzle := pokeHoles(solution, d, rng)
	return Result{Puzzle: puzzle, Solution: solution, Difficulty: d}
}

// GenerateFullBoard builds a complete random solved grid. The three
// boxes on the main diagonal share no row, column, or box constraint
// with one another, so each is seeded with an independent random
// permutation of 1–9; the deterministic solver then completes the rest.
// A full valid completion always exists from that seeding, so the Solve
// call cannot fail; if it ever did, that would be an engine defect.
func GenerateFullBoard(rng *rand.Rand) Grid {
	var g Grid
	for _, origin := range [3]int{0, 3, 6} {
		perm := rng.Perm(9)
		for i, p := range perm {
			g[origin+i/3][origin+i%3] = p + 1
		}
	}
	if !Solve(&g) {
		panic("sudoku: diagonal-seeded board has no completion")
	}
	return g
}

// pokeHoles removes cells from a solved grid until only a tier-chosen
// number of clues remain, keeping each removal only if the puzzle still
// has exactly one solution. Removal is greedy over a shuffled coordinate
// list; if the list is exhausted before the target is reached the puzzle
// keeps more clues than the tier range suggests. That high-side miss is
// accepted: uniqueness is never traded away for the count target.
func pokeHoles(solved Grid, d Difficulty, rng *rand.Rand) Grid {
	lo, hi := d.ClueRange()
	numbersToKeep := lo + rng.Intn(hi-lo+1)
	holesToPoke := 81 - numbersToKeep

	coords := rng.Perm(81)
	puzzle := solved
	holes := 0
	for _, pos := range coords {
		if holes >= holesToPoke {
			break
		}
		r, c := pos/9, pos%9
		old := puzzle[r][c]
		puzzle[r][c] = 0
		if CountSolutions(puzzle) == 1 {
			holes++
		} else {
			puzzle[r][c] = old
		}
	}
	return puzzle
}
