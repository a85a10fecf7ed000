package results

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardtable/pkg/entities"
)

func newTestExporter(t *testing.T) (*ElasticsearchExporter, *MemoryRepository) {
	t.Helper()
	base := NewMemoryRepository()
	// Port 1 is never listening, so any index request fails fast
	exporter, err := NewElasticsearchExporter(base, &ElasticsearchConfig{
		URL: "http://127.0.0.1:1",
	})
	require.NoError(t, err)
	return exporter, base
}

func TestExporterDefaultsIndexPrefix(t *testing.T) {
	exporter, _ := newTestExporter(t)

	assert.Equal(t, "cardtable_results", exporter.index)
}

func TestExporterQueuesSavedResults(t *testing.T) {
	exporter, base := newTestExporter(t)
	ctx := context.Background()
	result := testResult(entities.GameBlackjack, "player1", entities.StringResultWin, 21)

	err := exporter.SaveResult(ctx, result)

	require.NoError(t, err)
	assert.Equal(t, 1, exporter.PendingCount())

	// The base repository holds the result regardless of export state
	found, err := base.GetPlayerResults(ctx, "player1")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestExporterDelegatesReads(t *testing.T) {
	exporter, base := newTestExporter(t)
	ctx := context.Background()
	result := testResult(entities.GameHighCard, "player1", entities.StringResultWin, 14)
	require.NoError(t, base.SaveResult(ctx, result))

	byPlayer, err := exporter.GetPlayerResults(ctx, "player1")
	require.NoError(t, err)
	assert.Len(t, byPlayer, 1)

	recent, err := exporter.GetRecentResults(ctx, entities.GameHighCard, 10)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestExportWithEmptyQueue(t *testing.T) {
	exporter, _ := newTestExporter(t)

	err := exporter.Export(context.Background())

	assert.NoError(t, err, "Nothing pending means nothing to index")
}

func TestExportRequeuesFailures(t *testing.T) {
	exporter, _ := newTestExporter(t)
	ctx := context.Background()
	result := testResult(entities.GameSlapjack, "player1", entities.StringResultWin, 3)
	require.NoError(t, exporter.SaveResult(ctx, result))

	err := exporter.Export(ctx)

	require.Error(t, err)
	assert.Equal(t, 1, exporter.PendingCount(), "Failed results wait for the next run")
}

func TestESDocumentShape(t *testing.T) {
	result := testResult(entities.GameGuessCard, "player1", entities.StringResultWin, 1)

	doc := toESGameResult(result)

	assert.Equal(t, result.ID, doc.GameID)
	assert.Equal(t, result.SessionID, doc.SessionID)
	assert.Equal(t, "GUESSCARD", doc.GameType)
	require.Len(t, doc.Players, 1)
	assert.Equal(t, "player1", doc.Players[0].PlayerID)
	assert.Equal(t, "WIN", doc.Players[0].Result)
	assert.Equal(t, 1, doc.Players[0].Score)
}
