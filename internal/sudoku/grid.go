// internal/sudoku/grid.go
//
// Core grid type and constraint checking for the Sudoku engine.
// Defines:
//   - Grid: 9×9 matrix of digits, 0 meaning empty.
//   - IsValid: may a digit legally occupy a cell (row/column/box uniqueness).
//
// Grid is a plain value type: assignment copies the full board, so a puzzle
// and its solution never share cell storage.

package sudoku

// Grid is a 9×9 Sudoku board. Cells hold 0 (empty) or a digit 1–9.
// A complete grid has no zeros and every row, column, and 3×3 box
// contains each digit exactly once.
type Grid [9][9]int

// IsValid reports whether v may be placed at (row, col) without
// colliding with an equal digit in the same row, column, or 3×3 box.
// The cell's current content is ignored; callers clear it first if they
// are re-checking an occupied cell.
func IsValid(g *Grid, row, col, v int) bool {
	for i := 0; i < 9; i++ {
		if i != col && g[row][i] == v {
			return false
		}
		if i != row && g[i][col] == v {
			return false
		}
	}
	br, bc := (row/3)*3, (col/3)*3
	for r := br; r < br+3; r++ {
		for c := bc; c < bc+3; c++ {
			if (r != row || c != col) && g[r][c] == v {
				return false
			}
		}
	}
	return true
}

// findEmpty returns the first empty cell in row-major order.
// The fixed scan order keeps Solve and CountSolutions deterministic.
func findEmpty(g *Grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
