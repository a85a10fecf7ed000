package highcard

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"cardtable/internal/types"
	"cardtable/pkg/entities"
)

// State represents where the round currently is
type State string

const (
	StateIdle        State = "IDLE"
	StatePlayerDrawn State = "PLAYER_DRAWN"
	StateRoundOver   State = "ROUND_OVER"
)

// CardValue returns the high-card rank value: Ace 14 down through Jack 11,
// number cards at face value.
func CardValue(card *entities.Card) int {
	switch card.Rank {
	case entities.Ace:
		return 14
	case entities.King:
		return 13
	case entities.Queen:
		return 12
	case entities.Jack:
		return 11
	default:
		val, _ := strconv.Atoi(string(card.Rank))
		return val
	}
}

// RoundResult is the settled outcome of a high-card round
type RoundResult struct {
	PlayerCard *entities.Card
	DealerCard *entities.Card
	Result     entities.StringResult // from the player's perspective
	Message    string
}

// Game is a one-card-each comparison game. The deck recycles itself when
// exhausted so rounds can continue indefinitely.
type Game struct {
	ID     string
	Deck   *entities.Deck
	Player *entities.Player
	Dealer *entities.Player
	State  State
}

// NewGame creates a game over a freshly shuffled standard deck
func NewGame() *Game {
	deck := entities.NewDeck()
	deck.Shuffle()
	return NewGameWithDeck(deck)
}

// NewGameWithDeck creates a game over the given deck, which is used as-is
func NewGameWithDeck(deck *entities.Deck) *Game {
	return &Game{
		ID:     uuid.New().String(),
		Deck:   deck,
		Player: entities.NewPlayer("Player"),
		Dealer: entities.NewPlayer("Dealer"),
		State:  StateIdle,
	}
}

// DrawForPlayer draws the player's card. Starting a draw after a finished
// round clears both hands first. A second draw in the same round is refused.
func (g *Game) DrawForPlayer() (*entities.Card, error) {
	if g.State == StatePlayerDrawn {
		return nil, types.NewGameError(types.ErrAlreadyDrew, "Player already drew a card!")
	}

	g.Player.ClearHand()
	g.Dealer.ClearHand()

	g.recycleIfExhausted()
	card := g.Deck.Draw()
	g.Player.AddCard(card)
	g.State = StatePlayerDrawn
	return card, nil
}

// DrawForDealer draws the dealer's card and settles the round. Refused until
// the player has drawn.
func (g *Game) DrawForDealer() (*RoundResult, error) {
	if g.State != StatePlayerDrawn {
		return nil, types.NewGameError(types.ErrDrawOrder, "Player must draw first!")
	}

	g.recycleIfExhausted()
	card := g.Deck.Draw()
	g.Dealer.AddCard(card)
	g.State = StateRoundOver

	return g.settle(), nil
}

// NewRound clears both hands for a rematch
func (g *Game) NewRound() {
	g.Player.ClearHand()
	g.Dealer.ClearHand()
	g.State = StateIdle
}

// Result converts the last settled round into a storable game result.
// Returns nil while the round is still open.
func (g *Game) Result() *entities.GameResult {
	if g.State != StateRoundOver {
		return nil
	}
	settled := g.settle()
	return &entities.GameResult{
		ID:          uuid.New().String(),
		SessionID:   g.ID,
		GameType:    entities.GameHighCard,
		CompletedAt: time.Now(),
		PlayerResults: []*entities.PlayerResult{
			{PlayerID: g.Player.ID, Result: settled.Result, Score: CardValue(settled.PlayerCard)},
		},
	}
}

// settle compares the two drawn cards. Equal ranks are reported as a tie,
// never resolved to either side.
func (g *Game) settle() *RoundResult {
	playerCard := g.Player.Hand.Cards[0]
	dealerCard := g.Dealer.Hand.Cards[0]

	playerValue := CardValue(playerCard)
	dealerValue := CardValue(dealerCard)

	result := &RoundResult{
		PlayerCard: playerCard,
		DealerCard: dealerCard,
	}
	switch {
	case playerValue > dealerValue:
		result.Result = entities.StringResultWin
		result.Message = fmt.Sprintf("Player wins with %s vs %s!", playerCard, dealerCard)
	case dealerValue > playerValue:
		result.Result = entities.StringResultLose
		result.Message = fmt.Sprintf("Dealer wins with %s vs %s!", dealerCard, playerCard)
	default:
		result.Result = entities.StringResultTie
		result.Message = fmt.Sprintf("It's a tie! Both have %s!", playerCard.Rank)
	}
	return result
}

// recycleIfExhausted swaps in a fresh shuffled standard deck once the old
// one runs out, so play never has to stop.
func (g *Game) recycleIfExhausted() {
	if g.Deck.IsEmpty() {
		g.Deck.Reset(entities.StandardCards())
		g.Deck.Shuffle()
	}
}
