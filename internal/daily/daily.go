// internal/daily/daily.go
//
// Deterministic parameters for the daily puzzle. Every player sees the
// same board on a given date: the date key plus a server-side salt are
// fed through HMAC-SHA256 and the digest becomes the seed for the
// engine's injected rng.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/ninebox/sudoku-server/internal/sudoku"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns a deterministic non-zero rng seed for a date using
// HMAC(salt, YYYY-MM-DD). The salt keeps future boards unpredictable to
// clients while staying stable across server restarts.
func Seed(date time.Time, salt string) int64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	s := int64(binary.BigEndian.Uint64(sum[:8]))
	if s == 0 {
		s = 1
	}
	return s
}

// DifficultyFor rotates the daily tier through the week: easier boards
// early in the week, hard on the weekend.
func DifficultyFor(date time.Time) sudoku.Difficulty {
	switch date.UTC().Weekday() {
	case time.Monday, time.Tuesday:
		return sudoku.Easy
	case time.Saturday, time.Sunday:
		return sudoku.Hard
	default:
		return sudoku.Medium
	}
}
