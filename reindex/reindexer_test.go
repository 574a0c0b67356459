package reindex

import (
	"bytes"
	"context"
	"testing"

	"github.com/alihaydarkir/saglikrock/ai/mock"
	"github.com/alihaydarkir/saglikrock/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReindexer_Run(t *testing.T) {
	repo := seedRepository(t, 12)
	embedder := mock.NewMockEmbedder()

	var buf bytes.Buffer
	config := &Config{BatchSize: 5, ReportInterval: 5, MaxRetries: 2, RetryDelay: 0}
	reindexer := NewReindexer(repo, embedder, config, &buf)

	ctx := context.Background()
	require.NoError(t, reindexer.Run(ctx))

	assert.Contains(t, buf.String(), "Starting reindexing of 12 documents")
	assert.Contains(t, buf.String(), "Reindexing complete")

	// Every document now carries the mock embedder's vector, not the seeded one
	ids, err := repo.AllDocumentIDs(ctx)
	require.NoError(t, err)
	docs, err := repo.GetDocuments(ctx, ids...)
	require.NoError(t, err)
	for _, doc := range docs {
		require.Len(t, doc.Vector, 384)
	}
}

func TestReindexer_EmptyDatabase(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	var buf bytes.Buffer
	reindexer := NewReindexer(repo, mock.NewMockEmbedder(), nil, &buf)

	require.NoError(t, reindexer.Run(context.Background()))
	assert.Contains(t, buf.String(), "No documents found")
}

func TestReindexer_EmbeddingFailure(t *testing.T) {
	repo := seedRepository(t, 3)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, assert.AnError
	}

	var buf bytes.Buffer
	config := &Config{BatchSize: 5, ReportInterval: 5, MaxRetries: 2, RetryDelay: 0}
	reindexer := NewReindexer(repo, embedder, config, &buf)

	err := reindexer.Run(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
