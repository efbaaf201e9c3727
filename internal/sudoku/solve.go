// internal/sudoku/solve.go
//
// Backtracking search over grids.
// Responsibilities:
//   - Solve: fill a partial grid to the first full valid assignment.
//   - CountSolutions: count completions, capped at 2 (uniqueness only
//     needs "one" vs "more than one").
//
// Both scan cells row-major and try digits 1..9 ascending, so the search
// is fully deterministic; any randomness in a generated board comes from
// what was pre-placed before the search starts.

package sudoku

// Solve fills g in place until every cell holds a valid digit, returning
// true on success. On failure g is left as it was: every trial placement
// is undone on the backtrack path. A grid with no empty cells is
// trivially solved.
func Solve(g *Grid) bool {
	r, c, ok := findEmpty(g)
	if !ok {
		return true
	}
	for v := 1; v <= 9; v++ {
		if IsValid(g, r, c, v) {
			g[r][c] = v
			if Solve(g) {
				return true
			}
			g[r][c] = 0
		}
	}
	return false
}

// CountSolutions reports how many complete assignments g admits, capped
// at 2. The cap is what makes uniqueness checks tractable: the recursion
// aborts as soon as a second solution is found, so near-empty grids do
// not explode. g is passed by value, so the caller's grid is untouched.
func CountSolutions(g Grid) int {
	count := 0
	countCompletions(&g, &count)
	return count
}

// countCompletions explores every branch at each empty cell instead of
// returning on the first success, bailing out once count exceeds 1.
func countCompletions(g *Grid, count *int) {
	if *count > 1 {
		return
	}
	r, c, ok := findEmpty(g)
	if !ok {
		*count++
		return
	}
	for v := 1; v <= 9; v++ {
		if IsValid(g, r, c, v) {
			g[r][c] = v
			countCompletions(g, count)
			g[r][c] = 0
		}
	}
}
