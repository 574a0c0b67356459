package reindex

import (
	"context"
	"fmt"
	"time"

	"github.com/alihaydarkir/saglikrock/ai"
	"github.com/alihaydarkir/saglikrock/core"
	"github.com/alihaydarkir/saglikrock/storage"
)

// BatchProcessor handles embedding generation for batches of documents.
type BatchProcessor struct {
	repo           storage.DocumentRepository
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of retry attempts for embedding API calls
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.DocumentRepository, embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process generates embeddings for a batch of documents and updates them in
// the database. The embedding input is Content plus Category, the same text
// the index build uses. Vectors are normalized for cosine similarity.
func (bp *BatchProcessor) Process(ctx context.Context, docs []*core.Document) error {
	if len(docs) == 0 {
		return nil
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Content + " " + doc.Category
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = bp.embedder.EmbedTexts(ctx, texts)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)

	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}

	if len(embeddings) != len(docs) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(docs), len(embeddings))
	}

	for i := range docs {
		docs[i].Vector = NormalizeVector(embeddings[i])
	}

	_, err = bp.repo.UpdateDocuments(ctx, docs...)
	if err != nil {
		return fmt.Errorf("failed to update documents: %w", err)
	}

	return nil
}
