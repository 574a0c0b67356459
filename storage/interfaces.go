package storage

import (
	"context"

	"github.com/alihaydarkir/saglikrock/core"
)

// Repository provides common storage operations shared by all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// FindSimilar finds documents similar to the given vector.
	// Returns hits with similarity >= minSimilarity, up to limit results.
	// Results are ordered by similarity (highest first).
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchHit, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// DocumentRepository provides operations for managing knowledge documents.
type DocumentRepository interface {
	Repository

	// AddDocuments adds one or more documents to storage.
	// For documents with Id=0, derives the ID from content (or SourceID when set).
	// Sets InsertedAt/UpdatedAt timestamps.
	// Returns the documents with IDs and timestamps populated.
	AddDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error)

	// UpdateDocuments updates existing documents.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any document doesn't exist.
	UpdateDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error)

	// DeleteDocuments removes documents by their IDs.
	// Also removes associated category index entries.
	// Returns ErrNotFound if any document doesn't exist.
	DeleteDocuments(ctx context.Context, ids ...core.ID) error

	// GetDocument retrieves a single document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id core.ID) (*core.Document, error)

	// GetDocuments retrieves multiple documents by their IDs.
	// Returns only the documents that exist (no error for missing documents).
	GetDocuments(ctx context.Context, ids ...core.ID) ([]*core.Document, error)

	// GetDocumentsByCategory retrieves all documents in a category.
	GetDocumentsByCategory(ctx context.Context, category string) ([]*core.Document, error)

	// AllDocumentIDs returns the IDs of every stored document.
	// Used for full-collection maintenance such as re-embedding.
	AllDocumentIDs(ctx context.Context) ([]core.ID, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)
}
