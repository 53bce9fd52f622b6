// internal/game/session.go
//
// Core state machine for a single memory game session.
// Responsibilities:
//   - Create new games with a shuffled deck and zeroed counters.
//   - Apply the two-slot flip protocol with synchronous pair resolution.
//   - Reset pending non-matching flips back to face-down.
//   - Derive completion, elapsed time, score, and the stats read model.
//
// Notes:
//   - All operations are synchronous and in-memory; one session is driven by
//     one player's request sequence, so there is no internal locking.
//   - External code only ever sees copies (Stats, CardViews); mutation goes
//     through Flip and ResetFlipped exclusively.

package game

import "time"

// FlipResult is the outcome of a single Flip call.
type FlipResult string

const (
	// FlipAccepted: exactly one card is now face-up awaiting a second flip.
	FlipAccepted FlipResult = "flipped"
	// FlipPairFound: the second flip matched; both cards are locked face-up.
	FlipPairFound FlipResult = "pair_found"
	// FlipNoPair: the second flip did not match; both cards stay face-up
	// until ResetFlipped is called.
	FlipNoPair FlipResult = "no_pair"
	// FlipRejected: the flip violated a precondition; state is unchanged.
	FlipRejected FlipResult = "rejected"
)

// Session owns the card sequence and counters for one game.
type Session struct {
	pairCount   int
	cards       []Card
	activeFlips []int // 0..2 card ids face-up pending resolution
	moves       int
	startedAt   time.Time
	ownerID     string
}

// New creates a game session for ownerID with a freshly shuffled deck.
// pairCount is clamped into [MinPairs, MaxPairs].
func New(pairCount int, ownerID string) *Session {
	pairCount = ClampPairs(pairCount)
	return &Session{
		pairCount:   pairCount,
		cards:       buildDeck(pairCount),
		activeFlips: []int{},
		startedAt:   time.Now().UTC(),
		ownerID:     ownerID,
	}
}

// Flip turns the card with cardID face-up and, when it is the second active
// card, resolves the pair in the same call.
//
// Preconditions, checked in order; the first failure yields FlipRejected:
//  1. fewer than two cards are already active
//  2. cardID is in range, not matched, and not already active
//
// A resolution (match or not) increments the move counter exactly once.
func (s *Session) Flip(cardID int) FlipResult {
	if len(s.activeFlips) >= 2 {
		return FlipRejected
	}
	if cardID < 0 || cardID >= len(s.cards) {
		return FlipRejected
	}
	if s.cards[cardID].matched || s.isActive(cardID) {
		return FlipRejected
	}

	s.cards[cardID].revealed = true
	s.activeFlips = append(s.activeFlips, cardID)

	if len(s.activeFlips) < 2 {
		return FlipAccepted
	}

	s.moves++
	first, second := &s.cards[s.activeFlips[0]], &s.cards[s.activeFlips[1]]
	if first.face == second.face {
		first.matched, second.matched = true, true
		s.activeFlips = s.activeFlips[:0]
		return FlipPairFound
	}
	// Both cards stay face-up; the caller must ResetFlipped before the next
	// flip is accepted. This two-step dance is what the UI sequencing needs.
	return FlipNoPair
}

// ResetFlipped turns any still-active, unmatched cards face-down and clears
// the active list. Calling it with nothing active is a no-op.
func (s *Session) ResetFlipped() {
	for _, id := range s.activeFlips {
		if !s.cards[id].matched {
			s.cards[id].revealed = false
		}
	}
	s.activeFlips = s.activeFlips[:0]
}

// isActive reports whether cardID is currently awaiting resolution.
func (s *Session) isActive(cardID int) bool {
	for _, id := range s.activeFlips {
		if id == cardID {
			return true
		}
	}
	return false
}

// IsComplete reports whether every card has been matched.
// Always re-derived from the cards, never cached.
func (s *Session) IsComplete() bool {
	return s.matchedCount() == len(s.cards)
}

func (s *Session) matchedCount() int {
	n := 0
	for _, c := range s.cards {
		if c.matched {
			n++
		}
	}
	return n
}

// ElapsedSeconds returns whole seconds since the game started, never negative.
func (s *Session) ElapsedSeconds() int {
	d := time.Since(s.startedAt)
	if d < 0 {
		return 0
	}
	return int(d.Seconds())
}

// Score computes the current score from live counters.
func (s *Session) Score() int {
	return Score(s.pairCount, s.ElapsedSeconds(), s.moves)
}

// PairCount returns the fixed number of pairs in play.
func (s *Session) PairCount() int { return s.pairCount }

// Moves returns the number of completed two-card evaluations.
func (s *Session) Moves() int { return s.moves }

// OwnerID returns the player this session belongs to.
func (s *Session) OwnerID() string { return s.ownerID }

// Stats is the single read model the presentation layer consumes.
type Stats struct {
	Pairs          int  `json:"pairs"`
	Moves          int  `json:"moves"`
	FlippedCards   int  `json:"flippedCards"`
	FoundPairs     int  `json:"foundPairs"`
	Score          int  `json:"score"`
	ElapsedSeconds int  `json:"elapsedSeconds"`
	Completed      bool `json:"isCompleted"`
}

// Stats snapshots the session counters.
func (s *Session) Stats() Stats {
	return Stats{
		Pairs:          s.pairCount,
		Moves:          s.moves,
		FlippedCards:   len(s.activeFlips),
		FoundPairs:     s.matchedCount() / 2,
		Score:          s.Score(),
		ElapsedSeconds: s.ElapsedSeconds(),
		Completed:      s.IsComplete(),
	}
}

// CardViews returns a fresh snapshot of the whole board in position order.
func (s *Session) CardViews() []CardView {
	out := make([]CardView, len(s.cards))
	for i, c := range s.cards {
		out[i] = c.view()
	}
	return out
}
