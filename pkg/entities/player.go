package entities

import "github.com/google/uuid"

// Player represents a participant at the table. Each player owns exactly one
// hand; hands are never shared between participants.
type Player struct {
	ID   string
	Name string
	Hand *Hand
}

// NewPlayer creates a new player with a generated ID
func NewPlayer(name string) *Player {
	return &Player{
		ID:   uuid.New().String(),
		Name: name,
		Hand: NewHand(),
	}
}

// AddCard adds a card to the player's hand
func (p *Player) AddCard(card *Card) {
	p.Hand.Add(card)
}

// ClearHand removes all cards from the player's hand
func (p *Player) ClearHand() {
	p.Hand.Clear()
}
