package main

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"

	"cardtable/pkg/entities"
)

const statsMyStats = "My Statistics"

var statsGameTypes = map[string]entities.GameType{
	"Blackjack":      entities.GameBlackjack,
	"High Card":      entities.GameHighCard,
	"Slapjack":       entities.GameSlapjack,
	"Guess the Card": entities.GameGuessCard,
}

var statsGameNames = map[entities.GameType]string{
	entities.GameBlackjack: "Blackjack",
	entities.GameHighCard:  "High Card",
	entities.GameSlapjack:  "Slapjack",
	entities.GameGuessCard: "Guess the Card",
}

func (t *table) showStatistics(ctx context.Context) {
	options := []string{statsMyStats, "Blackjack", "High Card", "Slapjack", "Guess the Card", actionBack}
	choice, err := pterm.DefaultInteractiveSelect.WithOptions(options).Show("Statistics for")
	if err != nil || choice == actionBack {
		return
	}

	if choice == statsMyStats {
		t.showPlayerStatistics(ctx)
		return
	}
	t.showLeaderboard(ctx, statsGameTypes[choice])
}

// showPlayerStatistics lists the table player's record per game type
func (t *table) showPlayerStatistics(ctx context.Context) {
	stats, err := t.stats.GetPlayerStatistics(ctx, t.cfg.PlayerName)
	if err != nil {
		t.logger.LogError(err)
		pterm.Error.Println("Could not load statistics")
		return
	}
	if len(stats) == 0 {
		pterm.Info.Println("No games recorded yet")
		return
	}

	data := pterm.TableData{
		{"Game", "Games", "Wins", "Losses", "Ties", "Best Score", "Win Rate"},
	}
	for _, s := range stats {
		data = append(data, []string{
			statsGameNames[s.GameType],
			fmt.Sprintf("%d", s.GamesPlayed),
			fmt.Sprintf("%d", s.Wins),
			fmt.Sprintf("%d", s.Losses),
			fmt.Sprintf("%d", s.Ties),
			fmt.Sprintf("%d", s.BestScore),
			fmt.Sprintf("%.0f%%", s.WinRate()),
		})
	}
	t.renderTable(data)
}

func (t *table) showLeaderboard(ctx context.Context, gameType entities.GameType) {
	ranks, err := t.stats.GetLeaderboard(ctx, gameType)
	if err != nil {
		t.logger.LogError(err)
		pterm.Error.Println("Could not load statistics")
		return
	}
	if len(ranks) == 0 {
		pterm.Info.Println("No games recorded yet")
		return
	}

	data := pterm.TableData{
		{"Rank", "Player", "Games", "Wins", "Losses", "Ties", "Best Score", "Win Rate"},
	}
	for _, rank := range ranks {
		data = append(data, []string{
			fmt.Sprintf("%d", rank.Rank),
			rank.PlayerID,
			fmt.Sprintf("%d", rank.GamesPlayed),
			fmt.Sprintf("%d", rank.Wins),
			fmt.Sprintf("%d", rank.Losses),
			fmt.Sprintf("%d", rank.Ties),
			fmt.Sprintf("%d", rank.BestScore),
			fmt.Sprintf("%.0f%%", rank.WinRate()),
		})
	}
	t.renderTable(data)
}

func (t *table) renderTable(data pterm.TableData) {
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		t.logger.Warn("Error rendering statistics table: %v", err)
	}
}
