package entities

import "time"

// PlayerStatistics represents aggregated statistics for a player in a
// specific game type
type PlayerStatistics struct {
	PlayerID    string
	GameType    GameType
	GamesPlayed int
	Wins        int
	Losses      int
	Ties        int
	BestScore   int
	LastUpdated time.Time
}

// WinRate calculates the player's win rate as a percentage
func (s *PlayerStatistics) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0.0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100.0
}
