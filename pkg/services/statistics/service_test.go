package statistics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cardtable/pkg/entities"
	mock_results "cardtable/pkg/repositories/results/mock"
)

func resultAt(gameType entities.GameType, completedAt time.Time, players ...*entities.PlayerResult) *entities.GameResult {
	return &entities.GameResult{
		ID:            "result-" + completedAt.Format(time.RFC3339Nano),
		SessionID:     "session",
		GameType:      gameType,
		CompletedAt:   completedAt,
		PlayerResults: players,
	}
}

func TestGetPlayerStatistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mock_results.NewMockRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	now := time.Now()
	playerResults := []*entities.GameResult{
		resultAt(entities.GameBlackjack, now.Add(-3*time.Hour),
			&entities.PlayerResult{PlayerID: "player1", Result: entities.StringResultWin, Score: 21}),
		resultAt(entities.GameBlackjack, now.Add(-2*time.Hour),
			&entities.PlayerResult{PlayerID: "player1", Result: entities.StringResultLose, Score: 18}),
		resultAt(entities.GameBlackjack, now.Add(-1*time.Hour),
			&entities.PlayerResult{PlayerID: "player1", Result: entities.StringResultTie, Score: 19}),
		resultAt(entities.GameHighCard, now,
			&entities.PlayerResult{PlayerID: "player1", Result: entities.StringResultWin, Score: 14}),
	}
	mockRepo.EXPECT().GetPlayerResults(gomock.Any(), "player1").Return(playerResults, nil)

	stats, err := service.GetPlayerStatistics(ctx, "player1")

	require.NoError(t, err)
	require.Len(t, stats, 2, "One summary per game type")

	// Sorted by game type: BLACKJACK before HIGHCARD
	blackjack := stats[0]
	assert.Equal(t, entities.GameBlackjack, blackjack.GameType)
	assert.Equal(t, 3, blackjack.GamesPlayed)
	assert.Equal(t, 1, blackjack.Wins)
	assert.Equal(t, 1, blackjack.Losses)
	assert.Equal(t, 1, blackjack.Ties)
	assert.Equal(t, 21, blackjack.BestScore)
	assert.Equal(t, now.Add(-1*time.Hour), blackjack.LastUpdated)

	highcard := stats[1]
	assert.Equal(t, entities.GameHighCard, highcard.GameType)
	assert.Equal(t, 1, highcard.GamesPlayed)
	assert.Equal(t, 1, highcard.Wins)
}

func TestGetPlayerStatisticsIgnoresOtherPlayers(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mock_results.NewMockRepository(ctrl)
	service := NewService(mockRepo)

	shared := resultAt(entities.GameHighCard, time.Now(),
		&entities.PlayerResult{PlayerID: "player1", Result: entities.StringResultWin, Score: 14},
		&entities.PlayerResult{PlayerID: "player2", Result: entities.StringResultLose, Score: 9},
	)
	mockRepo.EXPECT().GetPlayerResults(gomock.Any(), "player1").
		Return([]*entities.GameResult{shared}, nil)

	stats, err := service.GetPlayerStatistics(context.Background(), "player1")

	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].GamesPlayed, "Other players' rows in a shared result don't count")
	assert.Equal(t, 1, stats[0].Wins)
}

func TestGetPlayerStatisticsRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mock_results.NewMockRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().GetPlayerResults(gomock.Any(), "player1").
		Return(nil, errors.New("storage unavailable"))

	stats, err := service.GetPlayerStatistics(context.Background(), "player1")

	require.Error(t, err)
	assert.Nil(t, stats)
}

func TestGetLeaderboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mock_results.NewMockRepository(ctrl)
	service := NewService(mockRepo)

	now := time.Now()
	recent := []*entities.GameResult{
		resultAt(entities.GameSlapjack, now.Add(-4*time.Minute),
			&entities.PlayerResult{PlayerID: "player1", Result: entities.StringResultWin, Score: 3}),
		resultAt(entities.GameSlapjack, now.Add(-3*time.Minute),
			&entities.PlayerResult{PlayerID: "player2", Result: entities.StringResultWin, Score: 2}),
		resultAt(entities.GameSlapjack, now.Add(-2*time.Minute),
			&entities.PlayerResult{PlayerID: "player2", Result: entities.StringResultWin, Score: 4}),
		resultAt(entities.GameSlapjack, now.Add(-1*time.Minute),
			&entities.PlayerResult{PlayerID: "player3", Result: entities.StringResultLose, Score: 0}),
	}
	mockRepo.EXPECT().GetRecentResults(gomock.Any(), entities.GameSlapjack, gomock.Any()).
		Return(recent, nil)

	ranks, err := service.GetLeaderboard(context.Background(), entities.GameSlapjack)

	require.NoError(t, err)
	require.Len(t, ranks, 3)

	assert.Equal(t, "player2", ranks[0].PlayerID, "Most wins ranks first")
	assert.Equal(t, 1, ranks[0].Rank)
	assert.Equal(t, 2, ranks[0].Wins)
	assert.Equal(t, 4, ranks[0].BestScore)

	assert.Equal(t, "player1", ranks[1].PlayerID)
	assert.Equal(t, 2, ranks[1].Rank)

	assert.Equal(t, "player3", ranks[2].PlayerID)
	assert.Equal(t, 3, ranks[2].Rank)
	assert.Equal(t, 1, ranks[2].Losses)
}

func TestGetLeaderboardTieBrokenByBestScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mock_results.NewMockRepository(ctrl)
	service := NewService(mockRepo)

	now := time.Now()
	recent := []*entities.GameResult{
		resultAt(entities.GameBlackjack, now.Add(-2*time.Minute),
			&entities.PlayerResult{PlayerID: "player1", Result: entities.StringResultWin, Score: 19}),
		resultAt(entities.GameBlackjack, now.Add(-1*time.Minute),
			&entities.PlayerResult{PlayerID: "player2", Result: entities.StringResultWin, Score: 21}),
	}
	mockRepo.EXPECT().GetRecentResults(gomock.Any(), entities.GameBlackjack, gomock.Any()).
		Return(recent, nil)

	ranks, err := service.GetLeaderboard(context.Background(), entities.GameBlackjack)

	require.NoError(t, err)
	require.Len(t, ranks, 2)
	assert.Equal(t, "player2", ranks[0].PlayerID, "Equal wins rank by best score")
}

func TestGetLeaderboardRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mock_results.NewMockRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().GetRecentResults(gomock.Any(), entities.GameBlackjack, gomock.Any()).
		Return(nil, errors.New("storage unavailable"))

	ranks, err := service.GetLeaderboard(context.Background(), entities.GameBlackjack)

	require.Error(t, err)
	assert.Nil(t, ranks)
}
