package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/alihaydarkir/saglikrock/ai"
	"github.com/alihaydarkir/saglikrock/core"
	"github.com/alihaydarkir/saglikrock/storage"
)

const defaultBatchSize = 16

// Pipeline builds the search index: it embeds documents in concurrent
// batches and upserts them into the repository. A build is all-or-nothing;
// any embedding failure aborts it before anything is written.
type Pipeline struct {
	repository storage.DocumentRepository
	embedder   ai.Embedder
	pool       *ants.Pool
	batchSize  int
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many documents are embedded per request.
// Default is 16.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates an index-building pipeline.
func NewPipeline(repository storage.DocumentRepository, provider ai.Provider, opts ...Option) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		repository: repository,
		embedder:   provider.Embedder(),
		pool:       pool,
		batchSize:  defaultBatchSize,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// BuildIndex embeds the documents and upserts them into the repository.
// The embedding input is Content plus Category, so category vocabulary
// contributes to the vector. Returns the number of documents stored.
func (p *Pipeline) BuildIndex(ctx context.Context, docs []*core.Document) (int, error) {
	if len(docs) == 0 {
		return 0, ErrNoDocuments
	}

	p.logger.Info("building index", "documents", len(docs), "batch_size", p.batchSize)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for start := 0; start < len(docs); start += p.batchSize {
		end := min(start+p.batchSize, len(docs))
		batch := docs[start:end]

		wg.Add(1)
		task := func() {
			defer wg.Done()

			texts := make([]string, len(batch))
			for i, doc := range batch {
				texts[i] = doc.Content + " " + doc.Category
			}

			embeddings, err := p.embedder.EmbedTexts(ctx, texts)
			if err == nil && len(embeddings) != len(batch) {
				err = fmt.Errorf("embedding result mismatch. expected %d, received %d", len(batch), len(embeddings))
			}
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}

			// Each task owns its slice of docs, no lock needed
			for i := range embeddings {
				batch[i].Vector = embeddings[i]
			}
		}
		if err := p.pool.Submit(task); err != nil {
			// Pool unavailable, run inline
			task()
		}
	}
	wg.Wait()

	if firstErr != nil {
		p.logger.Error("index build failed", "err", firstErr)
		return 0, firstErr
	}

	added, err := p.repository.AddDocuments(ctx, docs...)
	if err != nil {
		return 0, err
	}

	p.logger.Info("index built", "documents", len(added))
	return len(added), nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
