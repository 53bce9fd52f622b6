// internal/game/card.go
//
// Card value object and its client-facing view.
// A card's identity (id, face, color) is fixed when the deck is built; only
// the revealed/matched flags change, and matched is terminal.

package game

// Card is one tile on the board.
// Fields are unexported so external code cannot bypass the flip protocol;
// the presentation layer consumes CardView snapshots instead.
type Card struct {
	id       int
	face     string // asset reference; exactly two cards per game share it
	color    string // display hint, opaque to the engine
	revealed bool
	matched  bool
}

// ID returns the card's position-stable identifier.
func (c Card) ID() int { return c.id }

// Face returns the card's face asset reference.
func (c Card) Face() string { return c.face }

// Color returns the card's display color.
func (c Card) Color() string { return c.color }

// Revealed reports whether the card is currently face-up.
func (c Card) Revealed() bool { return c.revealed }

// Matched reports whether the card has been permanently paired.
func (c Card) Matched() bool { return c.matched }

// CardView is the read model handed to the presentation layer.
type CardView struct {
	ID      int    `json:"id"`
	Image   string `json:"image"`
	Color   string `json:"color"`
	Flipped bool   `json:"isFlipped"`
	Matched bool   `json:"isMatched"`
}

// view snapshots the card. Matched cards always render face-up.
func (c Card) view() CardView {
	return CardView{
		ID:      c.id,
		Image:   c.face,
		Color:   c.color,
		Flipped: c.revealed,
		Matched: c.matched,
	}
}
