package reindex

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/alihaydarkir/saglikrock/core"
	"github.com/alihaydarkir/saglikrock/storage"
	"github.com/alihaydarkir/saglikrock/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRepository(t *testing.T, count int) storage.DocumentRepository {
	t.Helper()

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	docs := make([]*core.Document, count)
	for i := range docs {
		docs[i] = &core.Document{
			SourceID:    fmt.Sprintf("doc_%03d", i),
			Content:     fmt.Sprintf("Protokol içeriği numara %d hakkında eğitim notu.", i),
			Category:    "cpr",
			Reliability: 0.8,
			Urgency:     core.UrgencyNormal,
			Vector:      []float32{1, 0, 0},
		}
	}
	_, err = repo.AddDocuments(context.Background(), docs...)
	require.NoError(t, err)

	return repo
}

func TestDocumentIterator_ForEach(t *testing.T) {
	repo := seedRepository(t, 25)
	iterator := NewDocumentIterator(repo, 10)

	var batches []int
	seen := 0
	err := iterator.ForEach(context.Background(), func(docs []*core.Document) error {
		batches = append(batches, len(docs))
		seen += len(docs)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 25, seen)
	assert.Equal(t, []int{10, 10, 5}, batches)
}

func TestDocumentIterator_EmptyRepository(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	iterator := NewDocumentIterator(repo, 10)
	calls := 0
	err = iterator.ForEach(context.Background(), func([]*core.Document) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestDocumentIterator_StopsOnError(t *testing.T) {
	repo := seedRepository(t, 25)
	iterator := NewDocumentIterator(repo, 10)

	wantErr := errors.New("batch failed")
	calls := 0
	err := iterator.ForEach(context.Background(), func([]*core.Document) error {
		calls++
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, calls)
}

func TestDocumentIterator_CancelledContext(t *testing.T) {
	repo := seedRepository(t, 5)
	iterator := NewDocumentIterator(repo, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := iterator.ForEach(ctx, func([]*core.Document) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
