package guesscard

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"cardtable/internal/types"
	"cardtable/pkg/entities"
)

// GuessResult is the revealed outcome of a single guess
type GuessResult struct {
	Correct bool
	Card    *entities.Card
	Message string
}

// Game is a single-shot round: one card is chosen uniformly at random from a
// fresh standard deck and held until a guess is submitted. There is no state
// carried between rounds.
type Game struct {
	ID     string
	chosen *entities.Card
}

// NewGame chooses a card with a time-seeded source
func NewGame() *Game {
	return NewGameWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewGameWithSource chooses a card using the given source
func NewGameWithSource(src rand.Source) *Game {
	cards := entities.StandardCards()
	rng := rand.New(src)
	return &Game{
		ID:     uuid.New().String(),
		chosen: cards[rng.Intn(len(cards))],
	}
}

// Card returns the chosen card
func (g *Game) Card() *entities.Card {
	return g.chosen
}

// SubmitGuess compares the guessed rank name against the chosen card,
// case-insensitively. Blank guesses are rejected before evaluation so the
// caller can re-prompt.
func (g *Game) SubmitGuess(guess string) (*GuessResult, error) {
	guess = strings.TrimSpace(guess)
	if guess == "" {
		return nil, types.NewGameError(types.ErrInvalidGuess, "Guess cannot be empty")
	}

	result := &GuessResult{Card: g.chosen}
	if strings.EqualFold(guess, string(g.chosen.Rank)) {
		result.Correct = true
		result.Message = fmt.Sprintf("Correct! It was: %s", g.chosen)
	} else {
		result.Message = fmt.Sprintf("Wrong! It was: %s", g.chosen)
	}
	return result, nil
}

// Result converts a guess outcome into a storable game result
func (g *Game) Result(playerID string, outcome *GuessResult) *entities.GameResult {
	result := entities.StringResultLose
	score := 0
	if outcome.Correct {
		result = entities.StringResultWin
		score = 1
	}
	return &entities.GameResult{
		ID:          uuid.New().String(),
		SessionID:   g.ID,
		GameType:    entities.GameGuessCard,
		CompletedAt: time.Now(),
		PlayerResults: []*entities.PlayerResult{
			{PlayerID: playerID, Result: result, Score: score},
		},
	}
}
