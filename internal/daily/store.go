// internal/daily/store.go
//
// SQLite-backed store for daily puzzle results: one finish per user per
// day (enforced by UNIQUE(user_id, date)) plus a best-time leaderboard.

package daily

import (
	"context"
	"database/sql"
)

// Result is a single user's completed daily puzzle.
type Result struct {
	UserID     string `json:"userId"`
	Date       string `json:"date"`
	Difficulty string `json:"difficulty"`
	ElapsedMs  int    `json:"elapsedMs"`
}

// LBRow is one leaderboard entry, ordered by solve time.
type LBRow struct {
	UserID    string `json:"userId"`
	ElapsedMs int    `json:"elapsedMs"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadyPlayed reports whether the user has a recorded result for date.
func (s *Store) AlreadyPlayed(ctx context.Context, userID, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM daily_results WHERE user_id=? AND date=?`,
		userID, date,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult records a finish. Respects UNIQUE(user_id, date): a
// duplicate insert is ignored rather than erroring.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results(user_id, date, difficulty, elapsed_ms)
		 VALUES(?,?,?,?)`, r.UserID, r.Date, r.Difficulty, r.ElapsedMs,
	)
	return err
}

// Leaderboard returns the fastest finishers for a date.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, elapsed_ms
		 FROM daily_results
		 WHERE date=?
		 ORDER BY elapsed_ms ASC, created_at ASC
		 LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.UserID, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
