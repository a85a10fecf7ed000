package slapjack

import (
	"time"

	"github.com/google/uuid"

	"cardtable/pkg/entities"
)

// State represents whether the game is still accepting flips
type State string

const (
	StateRunning  State = "RUNNING"
	StateGameOver State = "GAME_OVER"
)

// DefaultReactionWindow matches the table's default slap timer setting
const DefaultReactionWindow = 2 * time.Second

// ReactionWindowOptions is the fixed menu of selectable slap windows
var ReactionWindowOptions = []time.Duration{
	1 * time.Second,
	1500 * time.Millisecond,
	2 * time.Second,
	2500 * time.Millisecond,
	3 * time.Second,
}

// FlipResult describes what one flip-clock tick did
type FlipResult struct {
	Card        *entities.Card // nil when the tick changed suits or ended the game
	Jack        bool           // the flipped card opened a slap window
	Window      time.Duration  // window to arm when Jack is true
	SuitChanged bool
	NextSuit    entities.Suit // set when SuitChanged
	GameOver    bool
}

// SlapResult describes the effect of one slap
type SlapResult struct {
	Hit     bool // a live jack was slapped
	Penalty bool // slapped with no jack live
	Score   int
}

// TimeoutResult describes an expired reaction window
type TimeoutResult struct {
	Missed bool // a live jack went unslapped; the game is over
	Score  int
}

// Game runs one suit's 13 cards at a time, advancing through all four suits.
// The two clocks are explicit transitions so round logic is testable without
// wall time; Runner layers real timers on top.
type Game struct {
	ID     string
	Deck   *entities.Deck
	Player *entities.Player // pile of successfully slapped cards

	suits     []entities.Suit
	suitIndex int
	current   *entities.Card
	jackLive  bool
	score     int
	window    time.Duration
	state     State
}

// NewGame starts on the first suit with a shuffled 13-card sub-deck
func NewGame(window time.Duration) *Game {
	suits := entities.Suits()
	deck := entities.NewSuitDeck(suits[0])
	deck.Shuffle()
	return NewGameWithDeck(deck, window)
}

// NewGameWithDeck starts on the first suit using the given deck as-is.
// Tests stack the deck through this constructor.
func NewGameWithDeck(deck *entities.Deck, window time.Duration) *Game {
	if window <= 0 {
		window = DefaultReactionWindow
	}
	return &Game{
		ID:     uuid.New().String(),
		Deck:   deck,
		Player: entities.NewPlayer("Player"),
		suits:  entities.Suits(),
		window: window,
		state:  StateRunning,
	}
}

// AdvanceFlipClock reveals the next card. An exhausted sub-deck advances to
// the next suit (reshuffled, no card revealed this tick); after the last
// suit the whole game ends.
func (g *Game) AdvanceFlipClock() FlipResult {
	if g.state != StateRunning {
		return FlipResult{GameOver: true}
	}

	if g.Deck.IsEmpty() {
		if g.suitIndex < len(g.suits)-1 {
			g.suitIndex++
			g.Deck.Reset(entities.SuitCards(g.suits[g.suitIndex]))
			g.Deck.Shuffle()
			g.current = nil
			g.jackLive = false
			return FlipResult{SuitChanged: true, NextSuit: g.suits[g.suitIndex]}
		}
		g.state = StateGameOver
		return FlipResult{GameOver: true}
	}

	g.current = g.Deck.Draw()
	g.jackLive = g.current.Rank == entities.Jack

	result := FlipResult{Card: g.current, Jack: g.jackLive}
	if g.jackLive {
		// The window is captured at arming; later SetReactionWindow
		// calls only apply from the next jack on.
		result.Window = g.window
	}
	return result
}

// AdvanceReactionClock expires the slap window. A still-live jack ends the
// whole game; otherwise the expiry is a no-op.
func (g *Game) AdvanceReactionClock() TimeoutResult {
	if g.state != StateRunning || !g.jackLive {
		return TimeoutResult{Score: g.score}
	}
	g.state = StateGameOver
	return TimeoutResult{Missed: true, Score: g.score}
}

// Slap scores the current card. A live jack moves into the player's pile for
// a point; anything else costs a point, floored at zero.
func (g *Game) Slap() SlapResult {
	if g.state != StateRunning {
		return SlapResult{Score: g.score}
	}

	if !g.jackLive {
		if g.score > 0 {
			g.score--
		}
		return SlapResult{Penalty: true, Score: g.score}
	}

	g.jackLive = false
	g.Player.AddCard(g.current)
	g.score++
	return SlapResult{Hit: true, Score: g.score}
}

// SetReactionWindow changes the slap window used from the next jack on
func (g *Game) SetReactionWindow(window time.Duration) {
	if window > 0 {
		g.window = window
	}
}

// ReactionWindow returns the configured slap window
func (g *Game) ReactionWindow() time.Duration {
	return g.window
}

// Score returns the current score
func (g *Game) Score() int {
	return g.score
}

// State returns whether the game is still running
func (g *Game) State() State {
	return g.state
}

// CurrentSuit returns the suit whose sub-deck is in play
func (g *Game) CurrentSuit() entities.Suit {
	return g.suits[g.suitIndex]
}

// CurrentCard returns the most recently flipped card, nil before the first
// flip and right after a suit change.
func (g *Game) CurrentCard() *entities.Card {
	return g.current
}

// JackLive reports whether a slap window is currently open
func (g *Game) JackLive() bool {
	return g.jackLive
}

// Reset restarts the game from the first suit with a zero score
func (g *Game) Reset() {
	g.suitIndex = 0
	g.Deck.Reset(entities.SuitCards(g.suits[0]))
	g.Deck.Shuffle()
	g.Player.ClearHand()
	g.current = nil
	g.jackLive = false
	g.score = 0
	g.state = StateRunning
}

// Result converts a finished game into a storable game result. Returns nil
// while the game is still running.
func (g *Game) Result() *entities.GameResult {
	if g.state != StateGameOver {
		return nil
	}

	result := entities.StringResultLose
	if g.score > 0 {
		result = entities.StringResultWin
	}
	return &entities.GameResult{
		ID:          uuid.New().String(),
		SessionID:   g.ID,
		GameType:    entities.GameSlapjack,
		CompletedAt: time.Now(),
		PlayerResults: []*entities.PlayerResult{
			{PlayerID: g.Player.ID, Result: result, Score: g.score},
		},
	}
}
