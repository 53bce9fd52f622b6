package scores

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

const testSchema = `
CREATE TABLE users (
    id            TEXT PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE COLLATE NOCASE,
    password_hash TEXT NOT NULL,
    created_at    TEXT NOT NULL
);
CREATE TABLE scores (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    player_id    TEXT NOT NULL REFERENCES users(id),
    pairs_count  INTEGER NOT NULL,
    moves        INTEGER NOT NULL,
    time_seconds INTEGER NOT NULL,
    score        INTEGER NOT NULL,
    created_at   TEXT NOT NULL DEFAULT (datetime('now'))
);`

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	// One connection, or every pooled conn gets its own empty :memory: db.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return New(db)
}

func seedUser(t *testing.T, s *Store, id, username string) {
	t.Helper()
	_, err := s.db.Exec(`INSERT INTO users (id, username, password_hash, created_at)
	                     VALUES (?, ?, 'x', datetime('now'))`, id, username)
	if err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
}

func TestInsertAndTop(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedUser(t, s, "p1", "alice")
	seedUser(t, s, "p2", "bob")

	records := []Record{
		{PlayerID: "p1", Pairs: 6, Moves: 9, TimeSeconds: 50, Score: 7800},
		{PlayerID: "p2", Pairs: 3, Moves: 3, TimeSeconds: 10, Score: 5900},
		{PlayerID: "p1", Pairs: 12, Moves: 30, TimeSeconds: 200, Score: 12100},
	}
	for _, r := range records {
		if err := s.Insert(ctx, r); err != nil {
			t.Fatalf("Insert(%+v): %v", r, err)
		}
	}

	top, err := s.Top(ctx, 10)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Top returned %d rows, want 3", len(top))
	}
	if top[0].Score != 12100 || top[0].Username != "alice" {
		t.Errorf("top row = %+v, want alice with 12100", top[0])
	}
	if top[1].Score != 7800 || top[2].Score != 5900 {
		t.Errorf("leaderboard not ordered by score: %+v", top)
	}
}

func TestTopLimit(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedUser(t, s, "p1", "alice")
	for i := 0; i < 5; i++ {
		_ = s.Insert(ctx, Record{PlayerID: "p1", Pairs: 3, Moves: 3, TimeSeconds: 10, Score: 1000 + i})
	}

	top, err := s.Top(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 2 {
		t.Errorf("Top(2) returned %d rows", len(top))
	}
}

func TestRecent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedUser(t, s, "p1", "alice")
	seedUser(t, s, "p2", "bob")
	_ = s.Insert(ctx, Record{PlayerID: "p1", Pairs: 3, Moves: 4, TimeSeconds: 30, Score: 5000})
	_ = s.Insert(ctx, Record{PlayerID: "p1", Pairs: 6, Moves: 8, TimeSeconds: 90, Score: 7000})
	_ = s.Insert(ctx, Record{PlayerID: "p2", Pairs: 3, Moves: 3, TimeSeconds: 10, Score: 5900})

	recent, err := s.Recent(ctx, "p1", 20)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Recent returned %d rows, want 2", len(recent))
	}
	// Newest first: same created_at second, so id DESC breaks the tie.
	if recent[0].Score != 7000 {
		t.Errorf("recent[0] = %+v, want the later game first", recent[0])
	}
}

func TestPlayerStats(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedUser(t, s, "p1", "alice")
	seedUser(t, s, "p2", "bob")
	_ = s.Insert(ctx, Record{PlayerID: "p1", Pairs: 6, Moves: 10, TimeSeconds: 80, Score: 6000})
	_ = s.Insert(ctx, Record{PlayerID: "p1", Pairs: 12, Moves: 12, TimeSeconds: 40, Score: 14000})
	_ = s.Insert(ctx, Record{PlayerID: "p2", Pairs: 3, Moves: 5, TimeSeconds: 20, Score: 5000})

	st, err := s.PlayerStats(ctx, "p1")
	if err != nil {
		t.Fatalf("PlayerStats: %v", err)
	}
	if st.TotalGames != 2 {
		t.Errorf("TotalGames = %d, want 2", st.TotalGames)
	}
	if st.BestScore != 14000 {
		t.Errorf("BestScore = %d, want 14000", st.BestScore)
	}
	if st.AvgScore != 10000 {
		t.Errorf("AvgScore = %d, want 10000", st.AvgScore)
	}
	if st.BestTime != 40 {
		t.Errorf("BestTime = %d, want 40", st.BestTime)
	}
	if st.BestMoves != 10 {
		t.Errorf("BestMoves = %d, want 10", st.BestMoves)
	}
	if st.MaxPairs != 12 {
		t.Errorf("MaxPairs = %d, want 12", st.MaxPairs)
	}
	if !st.Perfect {
		t.Error("Perfect = false; the 12-pair game took exactly 12 moves")
	}
	if st.Ranking != 1 {
		t.Errorf("Ranking = %d, want 1", st.Ranking)
	}

	st2, err := s.PlayerStats(ctx, "p2")
	if err != nil {
		t.Fatal(err)
	}
	if st2.Ranking != 2 {
		t.Errorf("bob's Ranking = %d, want 2", st2.Ranking)
	}
	if st2.Perfect {
		t.Error("bob has no perfect game")
	}
}

func TestPlayerStatsNoGames(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seedUser(t, s, "p1", "alice")

	st, err := s.PlayerStats(ctx, "p1")
	if err != nil {
		t.Fatalf("PlayerStats: %v", err)
	}
	if st.TotalGames != 0 || st.BestScore != 0 || st.Perfect {
		t.Errorf("stats for player with no games = %+v", st)
	}
	if st.Ranking != 1 {
		t.Errorf("Ranking with empty table = %d, want 1", st.Ranking)
	}
}
