package httpserver

import (
	"math/rand"
	"net/http"
	"testing"
	"time"

	"github.com/ninebox/sudoku-server/internal/daily"
	"github.com/ninebox/sudoku-server/internal/store"
	"github.com/ninebox/sudoku-server/internal/sudoku"
)

// todaysBoard recomputes the deterministic daily board the way the
// server does, using the dev-default salt.
func todaysBoard() (string, sudoku.Result) {
	now := time.Now().UTC()
	rng := rand.New(rand.NewSource(daily.Seed(now, "local_dev_salt")))
	return daily.DateKey(now), sudoku.Generate(daily.DifficultyFor(now), rng)
}

func TestDailyFlow(t *testing.T) {
	srv := New(store.NewMemoryStore(), newTestDB(t))
	c := newClient(t, srv)
	date, expected := todaysBoard()

	var started dailyNewRes
	rec := c.do(http.MethodPost, "/daily/new", nil, &started)
	if rec.Code != http.StatusOK {
		t.Fatalf("daily/new status = %d: %s", rec.Code, rec.Body.String())
	}
	if started.Played || started.Date != date {
		t.Fatalf("unexpected daily/new response: %+v", started)
	}
	if got, err := sudoku.Unflatten(started.Puzzle); err != nil || got != expected.Puzzle {
		t.Fatalf("daily board is not the deterministic one for %s (err=%v)", date, err)
	}

	// A second start on the same day reuses the session.
	var again dailyNewRes
	c.do(http.MethodPost, "/daily/new", nil, &again)
	if again.Played {
		t.Fatal("unfinished daily should not report played")
	}

	// Malformed submissions are rejected outright.
	rec = c.do(http.MethodPost, "/daily/complete", map[string]any{"board": []int{1, 2, 3}}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed board status = %d, want 400", rec.Code)
	}

	// A wrong (but well-formed) board is incorrect, not an error.
	wrong := expected.Solution
	wrong[0][0], wrong[0][1] = wrong[0][1], wrong[0][0]
	var res dailyCompleteRes
	rec = c.do(http.MethodPost, "/daily/complete", map[string]any{"board": sudoku.Flatten(wrong)}, &res)
	if rec.Code != http.StatusOK || res.State != "incorrect" {
		t.Fatalf("wrong board: status=%d state=%q", rec.Code, res.State)
	}

	// The real solution finishes the day.
	rec = c.do(http.MethodPost, "/daily/complete", map[string]any{"board": sudoku.Flatten(expected.Solution)}, &res)
	if rec.Code != http.StatusOK || res.State != "solved" {
		t.Fatalf("solve: status=%d state=%q", rec.Code, res.State)
	}

	// Finished players are locked out and the leaderboard records them.
	rec = c.do(http.MethodPost, "/daily/new", nil, &started)
	if rec.Code != http.StatusOK || !started.Played {
		t.Fatalf("replay: status=%d played=%v", rec.Code, started.Played)
	}
	var lb lbRes
	rec = c.do(http.MethodGet, "/daily/leaderboard", nil, &lb)
	if rec.Code != http.StatusOK || len(lb.Top) != 1 {
		t.Fatalf("leaderboard: status=%d rows=%d", rec.Code, len(lb.Top))
	}

	// A different player gets their own session for the same board.
	other := newClient(t, srv)
	rec = other.do(http.MethodPost, "/daily/complete", map[string]any{"board": sudoku.Flatten(expected.Solution)}, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("complete without session status = %d, want 409", rec.Code)
	}
}
