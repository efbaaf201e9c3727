// internal/game/engine.go
//
// Session layer over the Sudoku engine.
// Responsibilities:
//   - Create new games by calling the engine's Generate with a seeded rng.
//   - Validate and apply placements (bounds, givens, legality, correctness).
//   - Track state transition: playing → solved.
//
// Notes:
//   - All puzzle construction lives in the sudoku package; this package
//     only shuffles session state around it.
//   - Legality uses sudoku.IsValid against the live board; correctness
//     compares against the retained solution.

package game

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"errors"
	mathrand "math/rand"

	"github.com/ninebox/sudoku-server/internal/sudoku"
)

var (
	ErrFinished   = errors.New("game finished")
	ErrOutOfRange = errors.New("cell out of range")
	ErrGivenCell  = errors.New("cell is a given clue")
	ErrBadValue   = errors.New("value must be 0-9")
)

// New generates a fresh puzzle at the given difficulty and wraps it in a
// session. seed == 0 picks a crypto-random seed; a fixed seed reproduces
// the same board (used by tests and the daily mode).
func New(diff sudoku.Difficulty, seed int64) *Game {
	if seed == 0 {
		seed = randomSeed()
	}
	res := sudoku.Generate(diff, mathrand.New(mathrand.NewSource(seed)))
	return &Game{
		ID:         randomID(),
		Difficulty: res.Difficulty,
		Puzzle:     res.Puzzle,
		Solution:   res.Solution,
		Board:      res.Puzzle,
	}
}

// Apply places v at (row, col), mutating the board. v == 0 clears a
// previously placed digit. Returns the mark for the placement and the
// new state string ("playing"/"solved").
//
// Validation rules:
//   - Game must not be finished.
//   - row/col must be in [0,8], v in [0,9].
//   - Cells holding an original clue cannot be changed.
func (g *Game) Apply(row, col, v int) (Mark, string, error) {
	if g.Finished {
		return "", g.State(), ErrFinished
	}
	if row < 0 || row > 8 || col < 0 || col > 8 {
		return "", g.State(), ErrOutOfRange
	}
	if v < 0 || v > 9 {
		return "", g.State(), ErrBadValue
	}
	if g.Puzzle[row][col] != 0 {
		return "", g.State(), ErrGivenCell
	}

	g.Board[row][col] = v
	g.Moves++

	if v == 0 {
		return MarkOK, g.State(), nil
	}
	mark := MarkOK
	switch {
	case !sudoku.IsValid(&g.Board, row, col, v):
		mark = MarkConflict
	case v != g.Solution[row][col]:
		mark = MarkWrong
	}
	if g.Board == g.Solution {
		g.Finished = true
	}
	return mark, g.State(), nil
}

// State reports a coarse string representation of the session state.
func (g *Game) State() string {
	if g.Finished {
		return "solved"
	}
	return "playing"
}

// randomSeed draws a non-zero int64 from crypto/rand for default games.
func randomSeed() int64 {
	var b [8]byte
	_, _ = rand.Read(b[:])
	s := int64(binary.BigEndian.Uint64(b[:]))
	if s == 0 {
		s = 1
	}
	return s
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
