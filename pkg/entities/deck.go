package entities

import (
	"math/rand"
	"time"
)

// Deck is an ordered pile of cards. Draw removes from the front so the
// relative order of the remaining cards is preserved.
type Deck struct {
	Cards []*Card

	rng *rand.Rand
}

// StandardCards builds the 52 cards of a standard deck in suit then rank order.
func StandardCards() []*Card {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// SuitCards builds the 13 cards of a single suit in rank order.
func SuitCards(suit Suit) []*Card {
	cards := make([]*Card, 0, 13)
	for _, rank := range Ranks() {
		cards = append(cards, NewCard(suit, rank))
	}
	return cards
}

// NewDeck creates a standard 52-card deck with a time-seeded random source.
func NewDeck() *Deck {
	return NewDeckWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewDeckWithSource creates a standard 52-card deck whose shuffle order is
// driven by the given source. Tests use a fixed seed here.
func NewDeckWithSource(src rand.Source) *Deck {
	return &Deck{
		Cards: StandardCards(),
		rng:   rand.New(src),
	}
}

// NewSuitDeck creates a 13-card single-suit deck.
func NewSuitDeck(suit Suit) *Deck {
	return NewSuitDeckWithSource(suit, rand.NewSource(time.Now().UnixNano()))
}

// NewSuitDeckWithSource creates a 13-card single-suit deck with the given
// random source.
func NewSuitDeckWithSource(suit Suit, src rand.Source) *Deck {
	return &Deck{
		Cards: SuitCards(suit),
		rng:   rand.New(src),
	}
}

// Shuffle reorders the remaining cards uniformly at random. Shuffling an
// empty deck is a no-op.
func (d *Deck) Shuffle() {
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	d.rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Draw removes and returns the front card. Returns nil when the deck is
// empty; callers must check before use.
func (d *Deck) Draw() *Card {
	if len(d.Cards) == 0 {
		return nil
	}
	card := d.Cards[0]
	d.Cards = d.Cards[1:]
	return card
}

// Size returns the number of cards remaining.
func (d *Deck) Size() int {
	return len(d.Cards)
}

// IsEmpty reports whether the deck has no cards left.
func (d *Deck) IsEmpty() bool {
	return len(d.Cards) == 0
}

// Reset replaces the deck contents wholesale, discarding whatever remained.
func (d *Deck) Reset(cards []*Card) {
	d.Cards = make([]*Card, len(cards))
	copy(d.Cards, cards)
}
