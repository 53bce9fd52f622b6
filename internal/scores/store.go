// internal/scores/store.go
//
// SQLite-backed persistence for completed game results.
// Owns the scores table: inserts on game completion, the global leaderboard,
// per-player aggregates, ranking, and recent-game history. Player accounts
// live in the users table and are managed by the HTTP layer.

package scores

import (
	"context"
	"database/sql"
	"fmt"
)

// Record is one completed game, keyed by the owning player.
type Record struct {
	PlayerID    string `json:"playerId"`
	Pairs       int    `json:"pairs"`
	Moves       int    `json:"moves"`
	TimeSeconds int    `json:"timeSeconds"`
	Score       int    `json:"score"`
}

// LeaderboardRow is one leaderboard entry, joined with the player's username.
type LeaderboardRow struct {
	Username    string `json:"username"`
	Pairs       int    `json:"pairs"`
	Moves       int    `json:"moves"`
	TimeSeconds int    `json:"timeSeconds"`
	Score       int    `json:"score"`
	CreatedAt   string `json:"createdAt"`
}

// GameRow is one entry in a player's recent-game history.
type GameRow struct {
	Pairs       int    `json:"pairs"`
	Moves       int    `json:"moves"`
	TimeSeconds int    `json:"timeSeconds"`
	Score       int    `json:"score"`
	CreatedAt   string `json:"createdAt"`
}

// Stats aggregates a player's results.
// Zero-valued aggregates mean the player has not finished a game yet.
type Stats struct {
	TotalGames int  `json:"totalGames"`
	BestScore  int  `json:"bestScore"`
	AvgScore   int  `json:"avgScore"`
	BestTime   int  `json:"bestTime"`
	AvgTime    int  `json:"avgTime"`
	BestMoves  int  `json:"bestMoves"`
	AvgMoves   int  `json:"avgMoves"`
	MaxPairs   int  `json:"maxPairs"`
	Perfect    bool `json:"perfect"` // finished some game in the minimum number of moves
	Ranking    int  `json:"ranking"` // 1-based position by best score
}

// Store wraps the database handle for score queries.
type Store struct{ db *sql.DB }

// New constructs a Store over an opened database.
func New(db *sql.DB) *Store { return &Store{db: db} }

// Insert records a completed game.
func (s *Store) Insert(ctx context.Context, r Record) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO scores (player_id, pairs_count, moves, time_seconds, score)
        VALUES (?, ?, ?, ?, ?)`,
		r.PlayerID, r.Pairs, r.Moves, r.TimeSeconds, r.Score,
	)
	if err != nil {
		return fmt.Errorf("scores: insert: %w", err)
	}
	return nil
}

// Top fetches the highest scores across all players.
// Default limit is 10 if not specified.
func (s *Store) Top(ctx context.Context, limit int) ([]LeaderboardRow, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT u.username, s.pairs_count, s.moves, s.time_seconds, s.score, s.created_at
        FROM scores s
        INNER JOIN users u ON s.player_id = u.id
        ORDER BY s.score DESC, s.created_at ASC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LeaderboardRow, 0, limit)
	for rows.Next() {
		var r LeaderboardRow
		if err := rows.Scan(&r.Username, &r.Pairs, &r.Moves, &r.TimeSeconds, &r.Score, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Recent fetches a player's latest results, newest first.
// Default limit is 20 if not specified.
func (s *Store) Recent(ctx context.Context, playerID string, limit int) ([]GameRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT pairs_count, moves, time_seconds, score, created_at
        FROM scores
        WHERE player_id = ?
        ORDER BY created_at DESC, id DESC
        LIMIT ?`, playerID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]GameRow, 0, limit)
	for rows.Next() {
		var r GameRow
		if err := rows.Scan(&r.Pairs, &r.Moves, &r.TimeSeconds, &r.Score, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// PlayerStats aggregates one player's results plus their leaderboard ranking.
func (s *Store) PlayerStats(ctx context.Context, playerID string) (Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx, `
        SELECT COUNT(*),
               COALESCE(MAX(score), 0),
               CAST(COALESCE(ROUND(AVG(score)), 0) AS INTEGER),
               COALESCE(MIN(time_seconds), 0),
               CAST(COALESCE(ROUND(AVG(time_seconds)), 0) AS INTEGER),
               COALESCE(MIN(moves), 0),
               CAST(COALESCE(ROUND(AVG(moves)), 0) AS INTEGER),
               COALESCE(MAX(pairs_count), 0)
        FROM scores WHERE player_id = ?`, playerID,
	).Scan(&st.TotalGames, &st.BestScore, &st.AvgScore, &st.BestTime, &st.AvgTime,
		&st.BestMoves, &st.AvgMoves, &st.MaxPairs)
	if err != nil {
		return Stats{}, fmt.Errorf("scores: player stats: %w", err)
	}

	var perfect int
	err = s.db.QueryRowContext(ctx, `
        SELECT COUNT(1) FROM scores
        WHERE player_id = ? AND moves <= pairs_count`, playerID,
	).Scan(&perfect)
	if err != nil {
		return Stats{}, fmt.Errorf("scores: perfect games: %w", err)
	}
	st.Perfect = perfect > 0

	rank, err := s.ranking(ctx, playerID)
	if err != nil {
		return Stats{}, err
	}
	st.Ranking = rank
	return st, nil
}

// ranking counts players whose best score beats this player's, plus one.
func (s *Store) ranking(ctx context.Context, playerID string) (int, error) {
	var rank int
	err := s.db.QueryRowContext(ctx, `
        SELECT COUNT(*) + 1
        FROM (SELECT player_id, MAX(score) AS best FROM scores GROUP BY player_id) b
        WHERE b.best > COALESCE(
            (SELECT MAX(score) FROM scores WHERE player_id = ?), -1
        )`, playerID,
	).Scan(&rank)
	if err != nil {
		return 0, fmt.Errorf("scores: ranking: %w", err)
	}
	return rank, nil
}
