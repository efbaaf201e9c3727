// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily puzzle.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start (or resume) today's board
//   - POST /daily/complete    → submit a finished board for today
//   - GET  /daily/leaderboard → fastest finishers for today (or a given date)
//
// Everyone gets the same board on a given date: the generator's rng is
// seeded from HMAC(salt, date), so the board is reproducible without
// storing it. Each user records at most one finish per day (DB UNIQUE).
// Sessions are held in memory to time the solve.

package httpserver

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ninebox/sudoku-server/internal/daily"
	"github.com/ninebox/sudoku-server/internal/sudoku"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	salt     string
	boards   map[string]sudoku.Result // generated boards keyed by date
	sessions map[string]*dailySession // active sessions keyed by userID|date
	mu       sync.Mutex               // guards boards and sessions
}

// dailySession holds transient in-memory state for an in-progress daily solve.
type dailySession struct {
	UserID   string
	Date     string
	Start    time.Time
	Finished bool
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		salt:     getEnv("DAILY_SALT", "local_dev_salt"),
		boards:   make(map[string]sudoku.Result),
		sessions: make(map[string]*dailySession),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/complete", dd.handleComplete)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// boardForToday returns today's date key and its deterministic board,
// generating and caching it on first use.
func (d *dailyServer) boardForToday() (string, sudoku.Result) {
	now := time.Now().UTC()
	date := daily.DateKey(now)
	d.mu.Lock()
	defer d.mu.Unlock()
	if res, ok := d.boards[date]; ok {
		return date, res
	}
	rng := rand.New(rand.NewSource(daily.Seed(now, d.salt)))
	res := sudoku.Generate(daily.DifficultyFor(now), rng)
	d.boards[date] = res
	return date, res
}

// userIDWithAnon returns the authenticated user ID if logged in,
// otherwise ensures an anonymous ID via Server.ensureAnonID.
func (d *dailyServer) userIDWithAnon(w http.ResponseWriter, r *http.Request) string {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID
	}
	return d.srv.ensureAnonID(w, r)
}

// -----------------------------------------------------------------------------
// /daily/new

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	Date       string `json:"date"`
	Difficulty string `json:"difficulty"`
	Puzzle     []int  `json:"puzzle,omitempty"` // flat row-major, 0 = empty
	Played     bool   `json:"played"`
}

// handleNew starts or resumes today's daily solve.
// - If the user already has a DB row for today → return Played=true.
// - Otherwise create/reuse an in-memory session; the clock starts on the
//   first call of the day.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)
	date, res := d.boardForToday()

	if played, err := d.store.AlreadyPlayed(r.Context(), uid, date); err == nil && played {
		_ = json.NewEncoder(w).Encode(dailyNewRes{Date: date, Difficulty: string(res.Difficulty), Played: true})
		return
	}

	key := uid + "|" + date
	d.mu.Lock()
	if _, ok := d.sessions[key]; !ok {
		d.sessions[key] = &dailySession{UserID: uid, Date: date, Start: time.Now()}
	}
	d.mu.Unlock()

	_ = json.NewEncoder(w).Encode(dailyNewRes{
		Date:       date,
		Difficulty: string(res.Difficulty),
		Puzzle:     sudoku.Flatten(res.Puzzle),
		Played:     false,
	})
}

// -----------------------------------------------------------------------------
// /daily/complete

// dailyCompleteReq carries the finished board, flat row-major.
type dailyCompleteReq struct {
	Board []int `json:"board"`
}

// dailyCompleteRes is returned by /daily/complete.
type dailyCompleteRes struct {
	State     string `json:"state"` // "solved" | "incorrect" | "locked"
	ElapsedMs int    `json:"elapsedMs,omitempty"`
}

// handleComplete verifies a submitted board against today's solution and
// records the solve time.
// - Rejects malformed serialized boards outright.
// - Rejects if there is no session for today or it already finished.
// - Only an exact match with the unique solution counts as solved.
func (d *dailyServer) handleComplete(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)

	var p dailyCompleteReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	board, err := sudoku.Unflatten(p.Board)
	if err != nil {
		if errors.Is(err, sudoku.ErrMalformedGrid) {
			http.Error(w, `{"error":"malformed_grid"}`, http.StatusBadRequest)
			return
		}
		http.Error(w, `{"error":"bad_request"}`, http.StatusBadRequest)
		return
	}

	date, res := d.boardForToday()

	key := uid + "|" + date
	d.mu.Lock()
	sess, ok := d.sessions[key]
	d.mu.Unlock()
	if !ok {
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	}
	if sess.Finished {
		_ = json.NewEncoder(w).Encode(dailyCompleteRes{State: "locked"})
		return
	}

	if board != res.Solution {
		_ = json.NewEncoder(w).Encode(dailyCompleteRes{State: "incorrect"})
		return
	}

	d.mu.Lock()
	sess.Finished = true
	d.mu.Unlock()

	elapsed := int(time.Since(sess.Start).Milliseconds())
	_ = d.store.InsertResult(r.Context(), daily.Result{
		UserID:     uid,
		Date:       date,
		Difficulty: string(res.Difficulty),
		ElapsedMs:  elapsed,
	})
	_ = json.NewEncoder(w).Encode(dailyCompleteRes{State: "solved", ElapsedMs: elapsed})
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(time.Now())
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}
