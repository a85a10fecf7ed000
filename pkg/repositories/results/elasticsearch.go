package results

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"cardtable/pkg/entities"
)

// ElasticsearchConfig holds connection options for the results exporter
type ElasticsearchConfig struct {
	URL         string
	Username    string
	Password    string
	IndexPrefix string
}

// ESGameResult is the document shape indexed into Elasticsearch
type ESGameResult struct {
	GameID      string           `json:"game_id"`
	SessionID   string           `json:"session_id"`
	GameType    string           `json:"game_type"`
	CompletedAt time.Time        `json:"completed_at"`
	Players     []ESPlayerResult `json:"players"`
}

// ESPlayerResult is one player's share of an indexed result
type ESPlayerResult struct {
	PlayerID string `json:"player_id"`
	Result   string `json:"result"`
	Score    int    `json:"score"`
}

// ElasticsearchExporter decorates a base Repository, queueing every saved
// result for periodic bulk export to an Elasticsearch index. Reads always go
// to the base repository; Elasticsearch is an analytics sink, not the source
// of truth.
type ElasticsearchExporter struct {
	base   Repository
	client *elasticsearch.Client
	index  string

	mu      sync.Mutex
	pending []*entities.GameResult
}

// NewElasticsearchExporter creates an exporter around the base repository
func NewElasticsearchExporter(base Repository, config *ElasticsearchConfig) (*ElasticsearchExporter, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{config.URL},
	}
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	prefix := config.IndexPrefix
	if prefix == "" {
		prefix = "cardtable"
	}

	return &ElasticsearchExporter{
		base:   base,
		client: client,
		index:  prefix + "_results",
	}, nil
}

// SaveResult stores the result in the base repository and queues it for the
// next export run.
func (e *ElasticsearchExporter) SaveResult(ctx context.Context, result *entities.GameResult) error {
	if err := e.base.SaveResult(ctx, result); err != nil {
		return err
	}

	e.mu.Lock()
	e.pending = append(e.pending, result)
	e.mu.Unlock()
	return nil
}

// GetPlayerResults delegates to the base repository
func (e *ElasticsearchExporter) GetPlayerResults(ctx context.Context, playerID string) ([]*entities.GameResult, error) {
	return e.base.GetPlayerResults(ctx, playerID)
}

// GetRecentResults delegates to the base repository
func (e *ElasticsearchExporter) GetRecentResults(ctx context.Context, gameType entities.GameType, limit int) ([]*entities.GameResult, error) {
	return e.base.GetRecentResults(ctx, gameType, limit)
}

// Close closes the base repository
func (e *ElasticsearchExporter) Close() error {
	return e.base.Close()
}

// PendingCount returns how many results are waiting for export
func (e *ElasticsearchExporter) PendingCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.pending)
}

// Export indexes all queued results. Results that fail to index are requeued
// for the next run.
func (e *ElasticsearchExporter) Export(ctx context.Context) error {
	e.mu.Lock()
	batch := e.pending
	e.pending = nil
	e.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	var failed []*entities.GameResult
	var firstErr error
	for _, result := range batch {
		if err := e.indexResult(ctx, result); err != nil {
			failed = append(failed, result)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if len(failed) > 0 {
		e.mu.Lock()
		e.pending = append(failed, e.pending...)
		e.mu.Unlock()
		return fmt.Errorf("exported %d/%d results: %w", len(batch)-len(failed), len(batch), firstErr)
	}
	return nil
}

func (e *ElasticsearchExporter) indexResult(ctx context.Context, result *entities.GameResult) error {
	doc := toESGameResult(result)
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error marshaling result %s: %w", result.ID, err)
	}

	req := esapi.IndexRequest{
		Index:      e.index,
		DocumentID: result.ID,
		Body:       bytes.NewReader(body),
	}
	res, err := req.Do(ctx, e.client)
	if err != nil {
		return fmt.Errorf("error indexing result %s: %w", result.ID, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing result %s: %s", result.ID, res.String())
	}
	return nil
}

func toESGameResult(result *entities.GameResult) *ESGameResult {
	doc := &ESGameResult{
		GameID:      result.ID,
		SessionID:   result.SessionID,
		GameType:    string(result.GameType),
		CompletedAt: result.CompletedAt,
		Players:     make([]ESPlayerResult, 0, len(result.PlayerResults)),
	}
	for _, pr := range result.PlayerResults {
		doc.Players = append(doc.Players, ESPlayerResult{
			PlayerID: pr.PlayerID,
			Result:   pr.Result.String(),
			Score:    pr.Score,
		})
	}
	return doc
}
