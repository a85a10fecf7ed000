package results

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"cardtable/pkg/entities"
)

// SQLite table schemas
const (
	createGameResultsTableSQL = `
	CREATE TABLE IF NOT EXISTS game_results (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		game_type TEXT NOT NULL,
		completed_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_game_type ON game_results(game_type)`

	createPlayerResultsTableSQL = `
	CREATE TABLE IF NOT EXISTS player_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_result_id TEXT NOT NULL,
		player_id TEXT NOT NULL,
		result TEXT NOT NULL,
		score INTEGER NOT NULL,
		FOREIGN KEY (game_result_id) REFERENCES game_results(id) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_player ON player_results(player_id)`
)

// SQLiteRepository implements the Repository interface using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite repository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Ensure the directory exists
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	for _, schema := range []string{createGameResultsTableSQL, createPlayerResultsTableSQL} {
		if _, err := db.Exec(schema); err != nil {
			db.Close()
			return nil, fmt.Errorf("error creating tables: %w", err)
		}
	}

	return &SQLiteRepository{db: db}, nil
}

// SaveResult stores a game result and its player rows in one transaction
func (r *SQLiteRepository) SaveResult(ctx context.Context, result *entities.GameResult) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO game_results (id, session_id, game_type, completed_at) VALUES (?, ?, ?, ?)`,
		result.ID, result.SessionID, string(result.GameType), result.CompletedAt)
	if err != nil {
		return fmt.Errorf("error inserting game result: %w", err)
	}

	for _, pr := range result.PlayerResults {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO player_results (game_result_id, player_id, result, score) VALUES (?, ?, ?, ?)`,
			result.ID, pr.PlayerID, pr.Result.String(), pr.Score)
		if err != nil {
			return fmt.Errorf("error inserting player result: %w", err)
		}
	}

	return tx.Commit()
}

// GetPlayerResults retrieves game results for a player
func (r *SQLiteRepository) GetPlayerResults(ctx context.Context, playerID string) ([]*entities.GameResult, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT g.id, g.session_id, g.game_type, g.completed_at, p.player_id, p.result, p.score
		FROM game_results g
		JOIN player_results p ON p.game_result_id = g.id
		WHERE p.player_id = ?
		ORDER BY g.completed_at`, playerID)
	if err != nil {
		return nil, fmt.Errorf("error querying player results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// GetRecentResults retrieves the most recent results for a game type
func (r *SQLiteRepository) GetRecentResults(ctx context.Context, gameType entities.GameType, limit int) ([]*entities.GameResult, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT g.id, g.session_id, g.game_type, g.completed_at, p.player_id, p.result, p.score
		FROM game_results g
		JOIN player_results p ON p.game_result_id = g.id
		WHERE g.game_type = ?
		ORDER BY g.completed_at DESC
		LIMIT ?`, string(gameType), limit)
	if err != nil {
		return nil, fmt.Errorf("error querying recent results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// scanResults folds joined rows back into GameResult values, one per result
// ID, preserving row order.
func scanResults(rows *sql.Rows) ([]*entities.GameResult, error) {
	var order []string
	byID := make(map[string]*entities.GameResult)

	for rows.Next() {
		var (
			id, sessionID, gameType, playerID, result string
			completedAt                               time.Time
			score                                     int
		)
		if err := rows.Scan(&id, &sessionID, &gameType, &completedAt, &playerID, &result, &score); err != nil {
			return nil, fmt.Errorf("error scanning result row: %w", err)
		}

		gr, ok := byID[id]
		if !ok {
			gr = &entities.GameResult{
				ID:          id,
				SessionID:   sessionID,
				GameType:    entities.GameType(gameType),
				CompletedAt: completedAt,
			}
			byID[id] = gr
			order = append(order, id)
		}
		gr.PlayerResults = append(gr.PlayerResults, &entities.PlayerResult{
			PlayerID: playerID,
			Result:   entities.StringResult(result),
			Score:    score,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	results := make([]*entities.GameResult, 0, len(order))
	for _, id := range order {
		results = append(results, byID[id])
	}
	return results, nil
}
