package blackjack

import (
	"time"

	"github.com/google/uuid"

	"cardtable/internal/types"
	"cardtable/pkg/entities"
)

// State represents where the round currently is
type State string

const (
	StateAwaitingDeal State = "AWAITING_DEAL"
	StatePlayerTurn   State = "PLAYER_TURN"
	StateRoundOver    State = "ROUND_OVER"
)

// Outcome is the settled result of a round, in the form the table displays it
type Outcome string

const (
	OutcomePlayerWins Outcome = "Player 1 wins!"
	OutcomeDealerWins Outcome = "Dealer wins!"
	OutcomeTie        Outcome = "It's a tie!"
	OutcomePlayerBust Outcome = "Player 1 busts! Dealer wins."
)

// Game is a single-player blackjack round state machine. All actions run
// synchronously; the caller renders whatever they return.
type Game struct {
	ID      string
	Deck    *entities.Deck
	Player  *entities.Player
	Dealer  *entities.Player
	State   State
	Outcome Outcome // set once State is ROUND_OVER
}

// NewGame creates a game over a fresh unshuffled standard deck, matching a
// newly opened table. Callers shuffle explicitly.
func NewGame() *Game {
	return NewGameWithDeck(entities.NewDeck())
}

// NewGameWithDeck creates a game over the given deck. Tests stack the deck
// through this constructor.
func NewGameWithDeck(deck *entities.Deck) *Game {
	return &Game{
		ID:     uuid.New().String(),
		Deck:   deck,
		Player: entities.NewPlayer("Player 1"),
		Dealer: entities.NewPlayer("Dealer"),
		State:  StateAwaitingDeal,
	}
}

// Deal starts a new round: clears both hands and deals two cards each,
// alternating player and dealer. It refuses mid-round, and refuses without
// touching any state when fewer than four cards remain.
func (g *Game) Deal() error {
	if g.State == StatePlayerTurn {
		return types.NewGameError(types.ErrRoundInProgress, "Round already in progress")
	}
	if g.Deck.Size() < cardsPerDeal {
		return types.NewGameError(types.ErrNotEnoughCards, "Not enough cards. Please shuffle or reset.")
	}

	g.Player.ClearHand()
	g.Dealer.ClearHand()
	g.Outcome = ""

	g.Player.AddCard(g.Deck.Draw())
	g.Dealer.AddCard(g.Deck.Draw())
	g.Player.AddCard(g.Deck.Draw())
	g.Dealer.AddCard(g.Deck.Draw())

	g.State = StatePlayerTurn
	return nil
}

// Hit deals one card to the player. Out-of-turn hits are ignored, not
// errors; the original table simply swallowed them. A bust ends the round.
func (g *Game) Hit() *entities.Card {
	if g.State != StatePlayerTurn {
		return nil
	}

	card := g.Deck.Draw()
	g.Player.AddCard(card)

	if IsBust(g.Player.Hand) {
		g.State = StateRoundOver
		g.Outcome = OutcomePlayerBust
	}
	return card
}

// Stand ends the player's turn, plays out the dealer's fixed policy (draw
// to 17, stand on 17+) and settles the round. Out-of-turn stands are
// ignored.
func (g *Game) Stand() Outcome {
	if g.State != StatePlayerTurn {
		return ""
	}

	for Score(g.Dealer.Hand) < DealerStand && !g.Deck.IsEmpty() {
		g.Dealer.AddCard(g.Deck.Draw())
	}

	g.State = StateRoundOver

	playerScore := Score(g.Player.Hand)
	dealerScore := Score(g.Dealer.Hand)
	switch {
	case dealerScore > BustLimit || playerScore > dealerScore:
		g.Outcome = OutcomePlayerWins
	case playerScore < dealerScore:
		g.Outcome = OutcomeDealerWins
	default:
		g.Outcome = OutcomeTie
	}
	return g.Outcome
}

// Shuffle reorders the remaining deck. Available in any state; in-progress
// hands are untouched.
func (g *Game) Shuffle() {
	g.Deck.Shuffle()
}

// ResetDeck replaces the deck with a full ordered 52-card deck. Available in
// any state; in-progress hands are untouched.
func (g *Game) ResetDeck() {
	g.Deck.Reset(entities.StandardCards())
}

// PlayerScore returns the player's current score
func (g *Game) PlayerScore() int {
	return Score(g.Player.Hand)
}

// DealerScore returns the dealer's current score
func (g *Game) DealerScore() int {
	return Score(g.Dealer.Hand)
}

// Result converts a settled round into a storable game result. Returns nil
// while the round is still open.
func (g *Game) Result() *entities.GameResult {
	if g.State != StateRoundOver {
		return nil
	}

	var result entities.StringResult
	switch g.Outcome {
	case OutcomePlayerWins:
		result = entities.StringResultWin
	case OutcomeTie:
		result = entities.StringResultTie
	default:
		result = entities.StringResultLose
	}

	return &entities.GameResult{
		ID:          uuid.New().String(),
		SessionID:   g.ID,
		GameType:    entities.GameBlackjack,
		CompletedAt: time.Now(),
		PlayerResults: []*entities.PlayerResult{
			{PlayerID: g.Player.ID, Result: result, Score: g.PlayerScore()},
		},
	}
}
