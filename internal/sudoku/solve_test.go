package sudoku

import "testing"

// A classic solvable puzzle (0 = empty).
var sample = Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

// checkComplete fails the test unless every row, column, and box of g is
// a permutation of 1..9.
func checkComplete(t *testing.T, g Grid) {
	t.Helper()
	for r := 0; r < 9; r++ {
		var seen [10]bool
		for c := 0; c < 9; c++ {
			v := g[r][c]
			if v < 1 || v > 9 || seen[v] {
				t.Fatalf("row %d is not a permutation of 1..9: %v", r, g[r])
			}
			seen[v] = true
		}
	}
	for c := 0; c < 9; c++ {
		var seen [10]bool
		for r := 0; r < 9; r++ {
			v := g[r][c]
			if seen[v] {
				t.Fatalf("column %d repeats %d", c, v)
			}
			seen[v] = true
		}
	}
	for br := 0; br < 9; br += 3 {
		for bc := 0; bc < 9; bc += 3 {
			var seen [10]bool
			for r := br; r < br+3; r++ {
				for c := bc; c < bc+3; c++ {
					v := g[r][c]
					if seen[v] {
						t.Fatalf("box (%d,%d) repeats %d", br, bc, v)
					}
					seen[v] = true
				}
			}
		}
	}
}

func TestSolveSample(t *testing.T) {
	g := sample
	if !Solve(&g) {
		t.Fatal("sample puzzle should be solvable")
	}
	checkComplete(t, g)
	// Givens survive the search untouched.
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if sample[r][c] != 0 && g[r][c] != sample[r][c] {
				t.Fatalf("given at (%d,%d) changed from %d to %d", r, c, sample[r][c], g[r][c])
			}
		}
	}
}

func TestSolveCompleteGridIsTrivial(t *testing.T) {
	g := sample
	if !Solve(&g) {
		t.Fatal("setup solve failed")
	}
	before := g
	if !Solve(&g) {
		t.Fatal("a complete grid is trivially solved")
	}
	if g != before {
		t.Fatal("solving a complete grid must not change it")
	}
}

func TestSolveUnsolvableRestoresGrid(t *testing.T) {
	// Row 0 holds 1..8 and the box around (1,0) blocks the remaining 9.
	var g Grid
	for c := 0; c < 8; c++ {
		g[0][c] = c + 1
	}
	g[1][8] = 9
	before := g
	if Solve(&g) {
		t.Fatal("grid was constructed to be unsolvable")
	}
	if g != before {
		t.Fatal("failed solve must leave the grid as it found it")
	}
}

func TestCountSolutionsEmptyGridHitsCap(t *testing.T) {
	var g Grid
	if n := CountSolutions(g); n != 2 {
		t.Fatalf("CountSolutions(empty) = %d, want the cap 2", n)
	}
}

func TestCountSolutionsUniquePuzzle(t *testing.T) {
	if n := CountSolutions(sample); n != 1 {
		t.Fatalf("CountSolutions(sample) = %d, want 1", n)
	}
}

func TestCountSolutionsCompleteGrid(t *testing.T) {
	g := sample
	if !Solve(&g) {
		t.Fatal("setup solve failed")
	}
	if n := CountSolutions(g); n != 1 {
		t.Fatalf("CountSolutions(complete) = %d, want 1", n)
	}
}

func TestCountSolutionsDoesNotMutateCaller(t *testing.T) {
	g := sample
	_ = CountSolutions(g)
	if g != sample {
		t.Fatal("CountSolutions must not mutate the caller's grid")
	}
}

func TestCountSolutionsForcedRow(t *testing.T) {
	g := sample
	if !Solve(&g) {
		t.Fatal("setup solve failed")
	}
	// Clearing a full row leaves each cell forced by its column.
	for c := 0; c < 9; c++ {
		g[0][c] = 0
	}
	if n := CountSolutions(g); n != 1 {
		t.Fatalf("CountSolutions(cleared row) = %d, want 1", n)
	}
}

func TestCountSolutionsUnavoidableRectangle(t *testing.T) {
	g := sample
	if !Solve(&g) {
		t.Fatal("setup solve failed")
	}
	// Rows 3 and 4 hold the pair {1,3} at columns 5 and 8, and each
	// column pair sits inside a single box; clearing the four cells
	// admits exactly two completions (the original and the swap).
	if g[3][5] != 1 || g[3][8] != 3 || g[4][5] != 3 || g[4][8] != 1 {
		t.Fatalf("unexpected solved sample values: %d %d %d %d", g[3][5], g[3][8], g[4][5], g[4][8])
	}
	g[3][5], g[3][8], g[4][5], g[4][8] = 0, 0, 0, 0
	if n := CountSolutions(g); n != 2 {
		t.Fatalf("CountSolutions(rectangle) = %d, want 2", n)
	}
}
