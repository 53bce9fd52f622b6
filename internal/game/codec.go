// internal/game/codec.go
//
// Serialization contract for game sessions.
// A session is persisted between requests as an opaque JSON blob; Decode
// re-validates every structural invariant so a corrupt or foreign blob is
// rejected outright instead of producing a half-initialized session. Callers
// treat any decode failure as unusable state and discard the blob; partial
// repair is never attempted.

package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrCorruptState marks a blob that failed structural or invariant checks.
var ErrCorruptState = errors.New("game: corrupt session state")

// ErrOwnerMismatch marks a blob whose owner is not the requesting player.
// Callers handle it exactly like ErrCorruptState: discard the session.
var ErrOwnerMismatch = errors.New("game: session owner mismatch")

// cardState / sessionState mirror the unexported runtime types for encoding.
type cardState struct {
	ID       int    `json:"id"`
	Face     string `json:"face"`
	Color    string `json:"color"`
	Revealed bool   `json:"revealed"`
	Matched  bool   `json:"matched"`
}

type sessionState struct {
	PairCount   int         `json:"pairCount"`
	Cards       []cardState `json:"cards"`
	ActiveFlips []int       `json:"activeFlips"`
	Moves       int         `json:"moves"`
	StartedAt   time.Time   `json:"startedAt"`
	OwnerID     string      `json:"ownerId"`
}

// Encode serializes the session to an opaque blob.
func Encode(s *Session) ([]byte, error) {
	st := sessionState{
		PairCount:   s.pairCount,
		Cards:       make([]cardState, len(s.cards)),
		ActiveFlips: append([]int{}, s.activeFlips...),
		Moves:       s.moves,
		StartedAt:   s.startedAt,
		OwnerID:     s.ownerID,
	}
	for i, c := range s.cards {
		st.Cards[i] = cardState{ID: c.id, Face: c.face, Color: c.color, Revealed: c.revealed, Matched: c.matched}
	}
	b, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("game: encode session: %w", err)
	}
	return b, nil
}

// Decode restores a session from a blob, failing with ErrCorruptState if the
// blob is not valid JSON or violates any session invariant.
func Decode(b []byte) (*Session, error) {
	var st sessionState
	if err := json.Unmarshal(b, &st); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	if err := validateState(&st); err != nil {
		return nil, err
	}

	s := &Session{
		pairCount:   st.PairCount,
		cards:       make([]Card, len(st.Cards)),
		activeFlips: append([]int{}, st.ActiveFlips...),
		moves:       st.Moves,
		startedAt:   st.StartedAt,
		ownerID:     st.OwnerID,
	}
	for i, c := range st.Cards {
		s.cards[i] = Card{id: c.ID, face: c.Face, color: c.Color, revealed: c.Revealed, matched: c.Matched}
	}
	return s, nil
}

// DecodeOwned restores a session and verifies it belongs to ownerID.
func DecodeOwned(b []byte, ownerID string) (*Session, error) {
	s, err := Decode(b)
	if err != nil {
		return nil, err
	}
	if s.ownerID != ownerID {
		return nil, ErrOwnerMismatch
	}
	return s, nil
}

// validateState checks every invariant a reachable session satisfies.
func validateState(st *sessionState) error {
	if st.PairCount < MinPairs || st.PairCount > MaxPairs {
		return corrupt("pair count %d out of range", st.PairCount)
	}
	if len(st.Cards) != 2*st.PairCount {
		return corrupt("expected %d cards, got %d", 2*st.PairCount, len(st.Cards))
	}
	if st.Moves < 0 {
		return corrupt("negative move counter")
	}
	if st.StartedAt.IsZero() {
		return corrupt("missing start time")
	}

	// Ids are dense and positional: card i carries id i.
	faceCount := make(map[string]int, st.PairCount)
	matched := 0
	for i, c := range st.Cards {
		if c.ID != i {
			return corrupt("card at position %d has id %d", i, c.ID)
		}
		if c.Face == "" {
			return corrupt("card %d has empty face", i)
		}
		if c.Matched && !c.Revealed {
			return corrupt("card %d matched but not revealed", i)
		}
		faceCount[c.Face]++
		if c.Matched {
			matched++
		}
	}
	for face, n := range faceCount {
		if n != 2 {
			return corrupt("face %q appears %d times", face, n)
		}
	}
	if st.Moves < matched/2 {
		return corrupt("%d pairs found in %d moves", matched/2, st.Moves)
	}

	if len(st.ActiveFlips) > 2 {
		return corrupt("%d active flips", len(st.ActiveFlips))
	}
	seen := map[int]bool{}
	for _, id := range st.ActiveFlips {
		if id < 0 || id >= len(st.Cards) {
			return corrupt("active flip id %d out of range", id)
		}
		if seen[id] {
			return corrupt("duplicate active flip id %d", id)
		}
		seen[id] = true
		if st.Cards[id].Matched {
			return corrupt("active flip %d is already matched", id)
		}
		if !st.Cards[id].Revealed {
			return corrupt("active flip %d is face-down", id)
		}
	}

	// Revealed cards are exactly the matched ones plus the active flips.
	for i, c := range st.Cards {
		if c.Revealed && !c.Matched && !seen[i] {
			return corrupt("card %d revealed but neither matched nor active", i)
		}
	}
	return nil
}

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrCorruptState}, args...)...)
}
