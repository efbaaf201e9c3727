// internal/httpserver/codec.go
//
// Grid <-> string codec for the DB boundary. Rows are stored as a single
// 81-character row-major digit string ('0' = empty), built on the
// engine's Flatten/Unflatten so a corrupted row is rejected instead of
// silently becoming a plausible-looking board.

package httpserver

import (
	"fmt"

	"github.com/ninebox/sudoku-server/internal/sudoku"
)

// encodeGrid renders g as an 81-digit string for storage.
func encodeGrid(g sudoku.Grid) string {
	flat := sudoku.Flatten(g)
	b := make([]byte, 81)
	for i, v := range flat {
		b[i] = byte('0' + v)
	}
	return string(b)
}

// decodeGrid parses an 81-digit string back into a Grid.
func decodeGrid(s string) (sudoku.Grid, error) {
	if len(s) != 81 {
		return sudoku.Grid{}, fmt.Errorf("%w: length %d, want 81", sudoku.ErrMalformedGrid, len(s))
	}
	seq := make([]int, 81)
	for i := 0; i < 81; i++ {
		seq[i] = int(s[i] - '0')
	}
	return sudoku.Unflatten(seq)
}
