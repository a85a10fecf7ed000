package results

import (
	"context"

	"cardtable/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_results

// Repository defines storage operations for completed game results
type Repository interface {
	// SaveResult stores one completed round
	SaveResult(ctx context.Context, result *entities.GameResult) error

	// GetPlayerResults retrieves all results a player took part in
	GetPlayerResults(ctx context.Context, playerID string) ([]*entities.GameResult, error)

	// GetRecentResults retrieves the most recent results for a game type
	GetRecentResults(ctx context.Context, gameType entities.GameType, limit int) ([]*entities.GameResult, error)

	// Close closes any resources used by the repository
	Close() error
}
