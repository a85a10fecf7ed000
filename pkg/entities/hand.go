package entities

import "strings"

// Hand is the ordered collection of cards held by one participant. Cards are
// append-only except for an explicit Clear; insertion order is preserved for
// display only and never carries meaning for scoring.
type Hand struct {
	Cards []*Card
}

// NewHand creates an empty hand
func NewHand() *Hand {
	return &Hand{Cards: make([]*Card, 0)}
}

// Add appends a card to the hand. Nil cards are ignored so callers can pass
// the result of an empty-deck draw straight through.
func (h *Hand) Add(card *Card) {
	if card == nil {
		return
	}
	h.Cards = append(h.Cards, card)
}

// Clear removes all cards from the hand
func (h *Hand) Clear() {
	h.Cards = h.Cards[:0]
}

// Size returns the number of cards in the hand
func (h *Hand) Size() int {
	return len(h.Cards)
}

// IsEmpty reports whether the hand holds no cards
func (h *Hand) IsEmpty() bool {
	return len(h.Cards) == 0
}

// String renders the hand as a comma-separated card list.
func (h *Hand) String() string {
	parts := make([]string, len(h.Cards))
	for i, card := range h.Cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, ", ")
}
