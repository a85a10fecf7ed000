package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cardtable/pkg/entities"
)

func TestCardValue(t *testing.T) {
	tests := []struct {
		name string
		card *entities.Card
		want int
	}{
		{"ace counts eleven", entities.NewCard(entities.Hearts, entities.Ace), 11},
		{"king counts ten", entities.NewCard(entities.Spades, entities.King), 10},
		{"queen counts ten", entities.NewCard(entities.Clubs, entities.Queen), 10},
		{"jack counts ten", entities.NewCard(entities.Diamonds, entities.Jack), 10},
		{"ten counts ten", entities.NewCard(entities.Hearts, entities.Ten), 10},
		{"two counts two", entities.NewCard(entities.Hearts, entities.Two), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CardValue(tt.card))
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		ranks []entities.Rank
		want  int
	}{
		{"empty hand", nil, 0},
		{"no aces", []entities.Rank{entities.King, entities.Queen}, 20},
		{"single ace stays high", []entities.Rank{entities.Ace, entities.Nine}, 20},
		{"two aces drop one", []entities.Rank{entities.Ace, entities.Ace, entities.Nine}, 21},
		{"ace drops to avoid bust", []entities.Rank{entities.Ace, entities.King, entities.Two}, 13},
		{"all aces", []entities.Rank{entities.Ace, entities.Ace, entities.Ace, entities.Ace}, 14},
		{"busted even after dropping aces", []entities.Rank{entities.Ace, entities.King, entities.Queen, entities.Two}, 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := entities.NewHand()
			for _, rank := range tt.ranks {
				hand.Add(entities.NewCard(entities.Hearts, rank))
			}
			assert.Equal(t, tt.want, Score(hand))
		})
	}
}

func TestIsBust(t *testing.T) {
	hand := entities.NewHand()
	hand.Add(entities.NewCard(entities.Hearts, entities.King))
	hand.Add(entities.NewCard(entities.Spades, entities.Queen))
	assert.False(t, IsBust(hand), "20 is not bust")

	hand.Add(entities.NewCard(entities.Clubs, entities.Two))
	assert.True(t, IsBust(hand), "22 is bust")
}
