// internal/game/types.go
//
// Core type definitions for a Sudoku game session.
// Defines:
//   - Mark: per-move result (ok/conflict/wrong).
//   - Game: state for a single in-progress or finished game.

package game

import "github.com/ninebox/sudoku-server/internal/sudoku"

// Mark represents the evaluation result for a single placed digit.
// Possible values:
//   - "ok":       digit is legal and matches the solution.
//   - "conflict": digit collides with another in its row/column/box.
//   - "wrong":    digit is legal right now but differs from the solution.
type Mark string

const (
	MarkOK       Mark = "ok"
	MarkConflict Mark = "conflict"
	MarkWrong    Mark = "wrong"
)

// Game holds the state of a single Sudoku session.
type Game struct {
	ID         string            // Unique game identifier (random hex string).
	Difficulty sudoku.Difficulty // Tier the puzzle was generated for.
	Puzzle     sudoku.Grid       // The original clues (never mutated).
	Solution   sudoku.Grid       // The unique solution (never sent to clients).
	Board      sudoku.Grid       // Current player-visible state.
	Moves      int               // Number of placements applied so far.
	Finished   bool              // True once the board equals the solution.
}
