package sudoku

import "testing"

func TestIsValidRowConflict(t *testing.T) {
	var g Grid
	g[0][4] = 5
	if IsValid(&g, 0, 7, 5) {
		t.Fatal("placing 5 twice in row 0 should be invalid")
	}
	if !IsValid(&g, 0, 7, 6) {
		t.Fatal("6 has no conflict in row 0")
	}
}

func TestIsValidColumnConflict(t *testing.T) {
	var g Grid
	g[3][2] = 5
	if IsValid(&g, 8, 2, 5) {
		t.Fatal("placing 5 twice in column 2 should be invalid")
	}
	// A neighboring column is unaffected by the column-2 placement.
	if !IsValid(&g, 8, 3, 5) {
		t.Fatal("column 3 has no 5; placement should be valid")
	}
}

func TestIsValidBoxConflict(t *testing.T) {
	var g Grid
	g[4][4] = 7 // center box
	cases := []struct {
		name     string
		row, col int
		want     bool
	}{
		{"same box corner", 3, 3, false},
		{"same box edge", 5, 4, false},
		{"outside box, clear row+col", 0, 0, true},
		{"adjacent box", 3, 6, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValid(&g, tc.row, tc.col, 7); got != tc.want {
				t.Fatalf("IsValid(%d,%d,7) = %v, want %v", tc.row, tc.col, got, tc.want)
			}
		})
	}
}

func TestIsValidIgnoresTargetCell(t *testing.T) {
	var g Grid
	g[2][2] = 9
	// Re-checking the digit a cell already holds must not self-conflict.
	if !IsValid(&g, 2, 2, 9) {
		t.Fatal("a cell's own content should not count as a conflict")
	}
}

func TestClueRange(t *testing.T) {
	cases := []struct {
		diff   Difficulty
		lo, hi int
	}{
		{Easy, 35, 40},
		{Medium, 30, 34},
		{Hard, 25, 29},
		{Difficulty("nightmare"), 30, 34}, // unknown tags fall back to medium
		{Difficulty(""), 30, 34},
	}
	for _, tc := range cases {
		lo, hi := tc.diff.ClueRange()
		if lo != tc.lo || hi != tc.hi {
			t.Fatalf("ClueRange(%q) = [%d,%d], want [%d,%d]", tc.diff, lo, hi, tc.lo, tc.hi)
		}
	}
}
