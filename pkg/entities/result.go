package entities

import "time"

// GameType identifies which table game produced a result
type GameType string

const (
	GameBlackjack GameType = "BLACKJACK"
	GameHighCard  GameType = "HIGHCARD"
	GameSlapjack  GameType = "SLAPJACK"
	GameGuessCard GameType = "GUESSCARD"
)

// Result represents the outcome of a player's participation in a game
type Result interface {
	// String returns the string representation of the result
	String() string

	// IsWin returns true if this result represents a win
	IsWin() bool
}

// StringResult is a simple string-based implementation of Result
type StringResult string

// String returns the string representation of the result
func (r StringResult) String() string {
	return string(r)
}

// IsWin returns true if this result represents a win
func (r StringResult) IsWin() bool {
	return r == StringResultWin
}

// Common result constants
const (
	StringResultWin  StringResult = "WIN"
	StringResultLose StringResult = "LOSE"
	StringResultTie  StringResult = "TIE"
)

// GameResult represents the outcome of one completed round of any game
type GameResult struct {
	ID            string
	SessionID     string
	GameType      GameType
	CompletedAt   time.Time
	PlayerResults []*PlayerResult
}

// PlayerResult is one participant's share of a GameResult
type PlayerResult struct {
	PlayerID string
	Result   Result
	Score    int
}
