package blackjack

import (
	"strconv"

	"cardtable/pkg/entities"
)

const (
	BustLimit    = 21 // hand scores above this are bust
	DealerStand  = 17 // dealer draws until reaching this score
	cardsPerDeal = 4  // two each for player and dealer
)

// CardValue returns the blackjack value of a card, counting aces high.
func CardValue(card *entities.Card) int {
	switch card.Rank {
	case entities.Ace:
		return 11
	case entities.Jack, entities.Queen, entities.King:
		return 10
	default:
		val, _ := strconv.Atoi(string(card.Rank))
		return val
	}
}

// IsAce reports whether the card is an ace
func IsAce(card *entities.Card) bool {
	return card.Rank == entities.Ace
}

// Score returns the best blackjack score for a hand. Aces start at 11 and
// drop to 1 one at a time while the total is over the bust limit.
func Score(hand *entities.Hand) int {
	score := 0
	aces := 0

	for _, card := range hand.Cards {
		score += CardValue(card)
		if IsAce(card) {
			aces++
		}
	}

	for score > BustLimit && aces > 0 {
		score -= 10
		aces--
	}

	return score
}

// IsBust checks if a hand exceeds the bust limit
func IsBust(hand *entities.Hand) bool {
	return Score(hand) > BustLimit
}
