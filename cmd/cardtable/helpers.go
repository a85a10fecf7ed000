package main

import (
	"context"
	"fmt"
	"time"

	"cardtable/internal/types"
	"cardtable/pkg/entities"
)

// saveResult stores a finished round; storage failures are logged, never
// surfaced to the player. Engine player IDs are per-session, so results are
// recorded under the configured table identity to make statistics aggregate
// across rounds.
func (t *table) saveResult(ctx context.Context, result *entities.GameResult) {
	if result == nil {
		return
	}
	for _, pr := range result.PlayerResults {
		pr.PlayerID = t.cfg.PlayerName
	}
	if err := t.repo.SaveResult(ctx, result); err != nil {
		t.logger.LogError(err)
	}
}

// gameErrorMessage extracts the player-facing message from a GameError
func gameErrorMessage(err error) string {
	var gameErr *types.GameError
	if types.As(err, &gameErr) {
		return gameErr.Message
	}
	return err.Error()
}

// formatWindow renders a duration the way the slap-timer menu shows it
func formatWindow(d time.Duration) string {
	seconds := d.Seconds()
	if seconds == 1 {
		return "1 second"
	}
	return fmt.Sprintf("%g seconds", seconds)
}
