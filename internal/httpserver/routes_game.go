// internal/httpserver/routes_game.go
//
// HTTP routes for playing a game. One game per player at a time.
// Exposes, all auth-gated:
//   - POST   /game/new    → start a game (replaces any game in progress)
//   - POST   /game/flip   → flip one card, resolving a pair on the second flip
//   - POST   /game/reset  → turn a pending non-matching pair face-down
//   - GET    /game/state  → current board + stats
//   - DELETE /game        → abandon the game in progress
//
// Every request restores the session from its serialized blob, mutates it,
// and persists it back; no live game objects survive between requests. A
// blob that fails decoding or belongs to another player is deleted and the
// player is told to start a new game; partial repair is never attempted.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/lucbrn/memory/go-server/internal/game"
	"github.com/lucbrn/memory/go-server/internal/scores"
	"github.com/lucbrn/memory/go-server/internal/store"
)

// mountGame registers all /game routes on an auth-gated router.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Post("/flip", s.handleFlip)
		r.Post("/reset", s.handleResetFlipped)
		r.Get("/state", s.handleGameState)
		r.Delete("/", s.handleAbandonGame)
	})
}

// gameRes is the board + stats payload every game endpoint returns.
type gameRes struct {
	Result game.FlipResult `json:"result,omitempty"`
	Cards  []game.CardView `json:"cards"`
	Stats  game.Stats      `json:"stats"`
}

func boardRes(sess *game.Session, result game.FlipResult) gameRes {
	return gameRes{Result: result, Cards: sess.CardViews(), Stats: sess.Stats()}
}

// loadSession restores the caller's session from the store.
// A missing blob yields 404; a corrupt or foreign blob is deleted and yields
// 409 with a start-a-new-game message. Returns nil after writing the error.
func (s *Server) loadSession(w http.ResponseWriter, r *http.Request) *game.Session {
	me := currentUser(r)
	blob, err := s.sessions.Get(r.Context(), me.ID)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"no_game","message":"No game in progress"}`, http.StatusNotFound)
		return nil
	}
	if err != nil {
		log.Error().Err(err).Str("player", me.ID).Msg("load session blob")
		http.Error(w, `{"error":"load_failed"}`, http.StatusInternalServerError)
		return nil
	}

	sess, err := game.DecodeOwned(blob, me.ID)
	if err != nil {
		// Corrupt or foreign state: discard, never repair.
		log.Warn().Err(err).Str("player", me.ID).Msg("discarding unusable session blob")
		_ = s.sessions.Delete(r.Context(), me.ID)
		http.Error(w, `{"error":"session_reset","message":"Your game session was reset, please start a new game"}`, http.StatusConflict)
		return nil
	}
	return sess
}

// saveSession re-serializes the session. Returns false after writing the error.
func (s *Server) saveSession(w http.ResponseWriter, r *http.Request, sess *game.Session) bool {
	blob, err := game.Encode(sess)
	if err != nil {
		log.Error().Err(err).Str("player", sess.OwnerID()).Msg("encode session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return false
	}
	if err := s.sessions.Save(r.Context(), sess.OwnerID(), blob); err != nil {
		log.Error().Err(err).Str("player", sess.OwnerID()).Msg("save session blob")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return false
	}
	return true
}

// -----------------------------------------------------------------------------
// POST /game/new

// newGameReq is the request payload for /game/new.
type newGameReq struct {
	Pairs int `json:"pairs"` // clamped into [3,12]; 0 means the default board
}

// handleNewGame starts a fresh game, replacing any game in progress.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Pairs == 0 {
		req.Pairs = game.DefaultPairs
	}

	me := currentUser(r)
	sess := game.New(req.Pairs, me.ID)
	if !s.saveSession(w, r, sess) {
		return
	}
	log.Info().Str("player", me.ID).Int("pairs", sess.PairCount()).Msg("new game")
	_ = json.NewEncoder(w).Encode(boardRes(sess, ""))
}

// -----------------------------------------------------------------------------
// POST /game/flip

// flipReq is the request payload for /game/flip.
type flipReq struct {
	CardID int `json:"cardId"`
}

// handleFlip applies one flip. A rejected flip changes nothing and still
// returns the current board, so clients stay in sync without special-casing.
// The flip that completes the board persists a score record.
func (s *Server) handleFlip(w http.ResponseWriter, r *http.Request) {
	var req flipReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess := s.loadSession(w, r)
	if sess == nil {
		return
	}

	result := sess.Flip(req.CardID)
	if result != game.FlipRejected {
		if !s.saveSession(w, r, sess) {
			return
		}
	}

	if result == game.FlipPairFound && sess.IsComplete() {
		st := sess.Stats()
		rec := scores.Record{
			PlayerID:    sess.OwnerID(),
			Pairs:       st.Pairs,
			Moves:       st.Moves,
			TimeSeconds: st.ElapsedSeconds,
			Score:       st.Score,
		}
		// Best effort: a failed insert must not hide the won game.
		if err := s.scores.Insert(r.Context(), rec); err != nil {
			log.Warn().Err(err).Str("player", rec.PlayerID).Msg("persist score")
		} else {
			log.Info().Str("player", rec.PlayerID).Int("score", rec.Score).
				Int("moves", rec.Moves).Int("seconds", rec.TimeSeconds).Msg("game completed")
		}
	}

	_ = json.NewEncoder(w).Encode(boardRes(sess, result))
}

// -----------------------------------------------------------------------------
// POST /game/reset

// handleResetFlipped turns the pending non-matching pair face-down.
// Resetting with nothing pending is a harmless no-op.
func (s *Server) handleResetFlipped(w http.ResponseWriter, r *http.Request) {
	sess := s.loadSession(w, r)
	if sess == nil {
		return
	}
	sess.ResetFlipped()
	if !s.saveSession(w, r, sess) {
		return
	}
	_ = json.NewEncoder(w).Encode(boardRes(sess, ""))
}

// -----------------------------------------------------------------------------
// GET /game/state

// handleGameState returns the current board without mutating anything.
func (s *Server) handleGameState(w http.ResponseWriter, r *http.Request) {
	sess := s.loadSession(w, r)
	if sess == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(boardRes(sess, ""))
}

// -----------------------------------------------------------------------------
// DELETE /game

// handleAbandonGame discards the game in progress, scoring nothing.
func (s *Server) handleAbandonGame(w http.ResponseWriter, r *http.Request) {
	me := currentUser(r)
	if err := s.sessions.Delete(r.Context(), me.ID); err != nil {
		log.Error().Err(err).Str("player", me.ID).Msg("delete session blob")
		http.Error(w, `{"error":"delete_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
