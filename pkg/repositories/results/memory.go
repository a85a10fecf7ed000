package results

import (
	"context"
	"sync"

	"cardtable/pkg/entities"
)

// MemoryRepository implements Repository interface with in-memory storage
type MemoryRepository struct {
	mu sync.RWMutex
	// Map of game type to results, oldest first
	gameResults map[entities.GameType][]*entities.GameResult
	// Map of playerID to results
	playerResults map[string][]*entities.GameResult
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		gameResults:   make(map[entities.GameType][]*entities.GameResult),
		playerResults: make(map[string][]*entities.GameResult),
	}
}

// SaveResult stores a game result and updates each player's history
func (r *MemoryRepository) SaveResult(ctx context.Context, result *entities.GameResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gameResults[result.GameType] = append(r.gameResults[result.GameType], result)

	for _, pr := range result.PlayerResults {
		r.playerResults[pr.PlayerID] = append(r.playerResults[pr.PlayerID], result)
	}

	return nil
}

// GetPlayerResults retrieves game results for a player
func (r *MemoryRepository) GetPlayerResults(ctx context.Context, playerID string) ([]*entities.GameResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := r.playerResults[playerID]
	if results == nil {
		return []*entities.GameResult{}, nil
	}
	return results, nil
}

// GetRecentResults retrieves the most recent results for a game type
func (r *MemoryRepository) GetRecentResults(ctx context.Context, gameType entities.GameType, limit int) ([]*entities.GameResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := r.gameResults[gameType]
	if results == nil {
		return []*entities.GameResult{}, nil
	}

	if len(results) > limit {
		return results[len(results)-limit:], nil
	}
	return results, nil
}

// Close is a no-op for memory repository since there are no resources to close
func (r *MemoryRepository) Close() error {
	return nil
}
