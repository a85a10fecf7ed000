package statistics

import (
	"context"
	"sort"

	"cardtable/pkg/entities"
	"cardtable/pkg/repositories/results"
)

// leaderboardWindow caps how many recent results feed a leaderboard
const leaderboardWindow = 500

// Service provides methods for retrieving and processing player statistics
type Service struct {
	repository results.Repository
}

// NewService creates a new statistics service
func NewService(repository results.Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// GetPlayerStatistics aggregates a player's results into one summary per
// game type, sorted by game type.
func (s *Service) GetPlayerStatistics(ctx context.Context, playerID string) ([]*entities.PlayerStatistics, error) {
	gameResults, err := s.repository.GetPlayerResults(ctx, playerID)
	if err != nil {
		return nil, err
	}

	byType := make(map[entities.GameType]*entities.PlayerStatistics)
	for _, gr := range gameResults {
		for _, pr := range gr.PlayerResults {
			if pr.PlayerID != playerID {
				continue
			}

			stats, ok := byType[gr.GameType]
			if !ok {
				stats = &entities.PlayerStatistics{
					PlayerID: playerID,
					GameType: gr.GameType,
				}
				byType[gr.GameType] = stats
			}

			stats.GamesPlayed++
			switch {
			case pr.Result.IsWin():
				stats.Wins++
			case pr.Result == entities.StringResultTie:
				stats.Ties++
			default:
				stats.Losses++
			}
			if pr.Score > stats.BestScore {
				stats.BestScore = pr.Score
			}
			if gr.CompletedAt.After(stats.LastUpdated) {
				stats.LastUpdated = gr.CompletedAt
			}
		}
	}

	all := make([]*entities.PlayerStatistics, 0, len(byType))
	for _, stats := range byType {
		all = append(all, stats)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].GameType < all[j].GameType
	})
	return all, nil
}

// PlayerRank is a player's aggregated standing within one game type
type PlayerRank struct {
	*entities.PlayerStatistics
	Rank int
}

// GetLeaderboard aggregates recent results for a game type into a ranking
// by wins, best score breaking ties.
func (s *Service) GetLeaderboard(ctx context.Context, gameType entities.GameType) ([]*PlayerRank, error) {
	gameResults, err := s.repository.GetRecentResults(ctx, gameType, leaderboardWindow)
	if err != nil {
		return nil, err
	}

	byPlayer := make(map[string]*entities.PlayerStatistics)
	for _, gr := range gameResults {
		for _, pr := range gr.PlayerResults {
			stats, ok := byPlayer[pr.PlayerID]
			if !ok {
				stats = &entities.PlayerStatistics{
					PlayerID: pr.PlayerID,
					GameType: gameType,
				}
				byPlayer[pr.PlayerID] = stats
			}

			stats.GamesPlayed++
			switch {
			case pr.Result.IsWin():
				stats.Wins++
			case pr.Result == entities.StringResultTie:
				stats.Ties++
			default:
				stats.Losses++
			}
			if pr.Score > stats.BestScore {
				stats.BestScore = pr.Score
			}
			if gr.CompletedAt.After(stats.LastUpdated) {
				stats.LastUpdated = gr.CompletedAt
			}
		}
	}

	ranks := make([]*PlayerRank, 0, len(byPlayer))
	for _, stats := range byPlayer {
		ranks = append(ranks, &PlayerRank{PlayerStatistics: stats})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Wins != ranks[j].Wins {
			return ranks[i].Wins > ranks[j].Wins
		}
		return ranks[i].BestScore > ranks[j].BestScore
	})
	for i := range ranks {
		ranks[i].Rank = i + 1
	}
	return ranks, nil
}
