// internal/sudoku/serialize.go
//
// Lossless conversion between a Grid and a flat 81-element row-major
// sequence. This is the engine's serialization boundary: persistence code
// stores the flat form and reconstructs grids from it later.
//
// Flatten performs no validation (validity is the producer's problem);
// Unflatten fails fast on malformed input so a corrupted persisted record
// can never silently become a plausible-looking grid.

package sudoku

import (
	"errors"
	"fmt"
)

// ErrMalformedGrid is returned by Unflatten for input of the wrong
// length or with out-of-range cell values.
var ErrMalformedGrid = errors.New("malformed serialized grid")

// Flatten returns the 81 cells of g in row-major order.
func Flatten(g Grid) []int {
	out := make([]int, 0, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			out = append(out, g[r][c])
		}
	}
	return out
}

// Unflatten rebuilds a Grid from an 81-element row-major sequence.
func Unflatten(seq []int) (Grid, error) {
	var g Grid
	if len(seq) != 81 {
		return g, fmt.Errorf("%w: length %d, want 81", ErrMalformedGrid, len(seq))
	}
	for i, v := range seq {
		if v < 0 || v > 9 {
			return g, fmt.Errorf("%w: value %d at index %d", ErrMalformedGrid, v, i)
		}
		g[i/9][i%9] = v
	}
	return g, nil
}
