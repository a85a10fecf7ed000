package main

import (
	"context"
	"os"

	"github.com/pterm/pterm"

	"cardtable/internal/config"
	"cardtable/internal/logging"
	"cardtable/pkg/repositories/results"
	"cardtable/pkg/scheduler"
	"cardtable/pkg/services/statistics"
)

// Menu entries
const (
	menuBlackjack = "Play Blackjack"
	menuHighCard  = "Play High Card"
	menuGuessCard = "Play Guess the Card"
	menuSlapjack  = "Play Slapjack"
	menuStats     = "View Statistics"
	menuQuit      = "Quit"
)

// table bundles everything the game loops need
type table struct {
	cfg    *config.Config
	repo   results.Repository
	stats  *statistics.Service
	logger *logging.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Default.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel))

	// Initialize repository
	var repo results.Repository
	if cfg.StorageType == "sqlite" {
		sqliteRepo, err := results.NewSQLiteRepository(cfg.DatabasePath())
		if err != nil {
			logger.Warn("Failed to initialize SQLite repository: %v", err)
			logger.Info("Falling back to in-memory repository")
			repo = results.NewMemoryRepository()
		} else {
			logger.Info("Using SQLite repository at %s", cfg.DatabasePath())
			repo = sqliteRepo
		}
	} else {
		logger.Info("Using in-memory repository (results are lost on exit)")
		repo = results.NewMemoryRepository()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional Elasticsearch export, flushed on a schedule
	if cfg.ExportEnabled() {
		exporter, err := results.NewElasticsearchExporter(repo, &results.ElasticsearchConfig{
			URL:      cfg.ElasticsearchURL,
			Username: cfg.ElasticsearchUsername,
			Password: cfg.ElasticsearchPassword,
		})
		if err != nil {
			logger.Warn("Failed to initialize Elasticsearch export: %v", err)
		} else {
			repo = exporter
			sched := scheduler.NewScheduler(logger)
			sched.AddTask("results_export", cfg.ExportInterval, exporter.Export)
			sched.Start(ctx)
			defer sched.Stop()
			logger.Info("Exporting results to %s every %s", cfg.ElasticsearchURL, cfg.ExportInterval)
		}
	}
	defer repo.Close()

	t := &table{
		cfg:    cfg,
		repo:   repo,
		stats:  statistics.NewService(repo),
		logger: logger,
	}
	t.run(ctx)
}

// run shows the main menu until the player quits
func (t *table) run(ctx context.Context) {
	pterm.DefaultHeader.WithFullWidth().Println("Card Game Menu")

	for {
		choice, err := pterm.DefaultInteractiveSelect.
			WithOptions([]string{menuBlackjack, menuHighCard, menuGuessCard, menuSlapjack, menuStats, menuQuit}).
			Show("Pick a game")
		if err != nil {
			return
		}

		switch choice {
		case menuBlackjack:
			t.playBlackjack(ctx)
		case menuHighCard:
			t.playHighCard(ctx)
		case menuGuessCard:
			t.playGuessCard(ctx)
		case menuSlapjack:
			t.playSlapjack(ctx)
		case menuStats:
			t.showStatistics(ctx)
		case menuQuit:
			return
		}
	}
}
