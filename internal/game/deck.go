// internal/game/deck.go
//
// Deck builder: selects faces from the catalog, duplicates each into a pair,
// shuffles, and assigns ids by final board position.

package game

import (
	"math/rand/v2"

	"github.com/lucbrn/memory/go-server/internal/faces"
)

// Board size bounds. Requests outside [MinPairs, MaxPairs] are clamped, never
// rejected. The faces catalog is validated against MaxPairs at startup.
const (
	MinPairs     = 3
	MaxPairs     = 12
	DefaultPairs = 6
)

// ClampPairs forces a requested pair count into the allowed range.
func ClampPairs(n int) int {
	if n < MinPairs {
		return MinPairs
	}
	if n > MaxPairs {
		return MaxPairs
	}
	return n
}

// buildDeck produces the initial shuffled card sequence for pairCount pairs.
// Ids are assigned after the shuffle so they reflect board position; a card's
// id equals its index for the lifetime of the game.
func buildDeck(pairCount int) []Card {
	selected := faces.Pick(pairCount)

	cards := make([]Card, 0, 2*pairCount)
	for _, f := range selected {
		cards = append(cards,
			Card{face: f.Asset, color: f.Color},
			Card{face: f.Asset, color: f.Color},
		)
	}

	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	for i := range cards {
		cards[i].id = i
	}
	return cards
}
