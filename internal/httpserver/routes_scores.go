// internal/httpserver/routes_scores.go
//
// HTTP routes for leaderboard, player profile, and game history.
//   - GET /leaderboard → top scores across all players (public)
//   - GET /stats/me    → aggregated stats + unlocked achievements (auth)
//   - GET /scores/mine → the player's recent results (auth)

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/lucbrn/memory/go-server/internal/achievements"
	"github.com/lucbrn/memory/go-server/internal/scores"
)

// mountScores registers leaderboard + profile routes.
func (s *Server) mountScores() {
	s.r.Get("/leaderboard", s.handleLeaderboard)
	s.r.With(s.requireAuth()).Get("/stats/me", s.handleMyStats)
	s.r.With(s.requireAuth()).Get("/scores/mine", s.handleMyScores)
}

// leaderboardRes is returned by /leaderboard.
type leaderboardRes struct {
	Top []scores.LeaderboardRow `json:"top"`
}

// handleLeaderboard returns the top scores (default 10, capped at 100).
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > 100 {
		limit = 100
	}
	top, err := s.scores.Top(r.Context(), limit)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(leaderboardRes{Top: top})
}

// myStatsRes is returned by /stats/me.
type myStatsRes struct {
	Username     string                     `json:"username"`
	Stats        scores.Stats               `json:"stats"`
	Achievements []achievements.Achievement `json:"achievements"`
}

// handleMyStats returns the caller's aggregates and unlocked achievements.
func (s *Server) handleMyStats(w http.ResponseWriter, r *http.Request) {
	me := currentUser(r)
	st, err := s.scores.PlayerStats(r.Context(), me.ID)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(myStatsRes{
		Username:     me.Username,
		Stats:        st,
		Achievements: achievements.Unlocked(st),
	})
}

// handleMyScores returns the caller's recent results (default 20).
func (s *Server) handleMyScores(w http.ResponseWriter, r *http.Request) {
	me := currentUser(r)
	recent, err := s.scores.Recent(r.Context(), me.ID, 20)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"games": recent})
}
