// Copyright 2026 Sağlık ROCK Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package saglikrock wires the retrieval pipeline into one system: storage,
// embeddings, multi-variant search, and answer orchestration.
package saglikrock

import (
	"context"
	"io"
	"log/slog"

	"github.com/alihaydarkir/saglikrock/ai"
	"github.com/alihaydarkir/saglikrock/ai/openai"
	"github.com/alihaydarkir/saglikrock/answer"
	"github.com/alihaydarkir/saglikrock/ingest"
	"github.com/alihaydarkir/saglikrock/reindex"
	"github.com/alihaydarkir/saglikrock/search"
	"github.com/alihaydarkir/saglikrock/storage"
	"github.com/alihaydarkir/saglikrock/storage/badger"
)

// System is the assembled question-answering pipeline. Construction is
// all-or-nothing: any component failing to start fails the whole system.
type System struct {
	backend      *badger.Backend
	repository   storage.DocumentRepository
	provider     ai.Provider
	engine       *search.Engine
	orchestrator *answer.Orchestrator
	batchSize    int
	logger       *slog.Logger
}

// SystemOption configures a System.
type SystemOption func(*systemOptions)

type systemOptions struct {
	aiConfig   *ai.Config
	provider   ai.Provider
	maxResults int
	poolSize   int
	batchSize  int
	logger     *slog.Logger
}

// WithAIConfig sets the embedding endpoint configuration.
func WithAIConfig(cfg *ai.Config) SystemOption {
	return func(o *systemOptions) {
		if cfg != nil {
			o.aiConfig = cfg
		}
	}
}

// WithProvider replaces the default OpenAI-compatible provider, typically
// with a mock in tests.
func WithProvider(provider ai.Provider) SystemOption {
	return func(o *systemOptions) {
		o.provider = provider
	}
}

// WithMaxResults sets how many ranked results a search returns.
func WithMaxResults(n int) SystemOption {
	return func(o *systemOptions) {
		o.maxResults = n
	}
}

// WithPoolSize sets the worker pool size for search and indexing.
func WithPoolSize(n int) SystemOption {
	return func(o *systemOptions) {
		o.poolSize = n
	}
}

// WithBatchSize sets the embedding batch size for index builds.
func WithBatchSize(n int) SystemOption {
	return func(o *systemOptions) {
		o.batchSize = n
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) SystemOption {
	return func(o *systemOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewSystem opens the database at filePath and assembles the pipeline on
// top of it. An empty filePath opens an in-memory database.
func NewSystem(filePath string, opts ...SystemOption) (*System, error) {
	options := &systemOptions{
		aiConfig: ai.DefaultConfig(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, filePath == "")
	if err != nil {
		return nil, err
	}

	repository := badger.NewDocumentRepository(backend)

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			repository.Close()
			backend.Close()
			return nil, err
		}
	}

	searchOpts := []search.Option{search.WithLogger(options.logger)}
	if options.maxResults > 0 {
		searchOpts = append(searchOpts, search.WithMaxResults(options.maxResults))
	}
	if options.poolSize > 0 {
		searchOpts = append(searchOpts, search.WithPoolSize(options.poolSize))
	}
	engine, err := search.NewEngine(repository, provider, searchOpts...)
	if err != nil {
		provider.Close()
		repository.Close()
		backend.Close()
		return nil, err
	}

	orchestrator, err := answer.NewOrchestrator(engine, answer.WithLogger(options.logger))
	if err != nil {
		engine.Release()
		provider.Close()
		repository.Close()
		backend.Close()
		return nil, err
	}

	return &System{
		backend:      backend,
		repository:   repository,
		provider:     provider,
		engine:       engine,
		orchestrator: orchestrator,
		batchSize:    options.batchSize,
		logger:       options.logger,
	}, nil
}

// Answer answers one question.
func (s *System) Answer(ctx context.Context, question string) (*answer.Response, error) {
	return s.orchestrator.Answer(ctx, question)
}

// BuildIndex loads the knowledge bank at bankPath and builds the search
// index from it. Returns the number of documents indexed.
func (s *System) BuildIndex(ctx context.Context, bankPath string) (int, error) {
	docs, err := ingest.LoadBank(bankPath)
	if err != nil {
		return 0, err
	}

	pipelineOpts := []ingest.Option{ingest.WithLogger(s.logger)}
	if s.batchSize > 0 {
		pipelineOpts = append(pipelineOpts, ingest.WithBatchSize(s.batchSize))
	}
	pipeline, err := ingest.NewPipeline(s.repository, s.provider, pipelineOpts...)
	if err != nil {
		return 0, err
	}
	defer pipeline.Release()

	return pipeline.BuildIndex(ctx, docs)
}

// Reindex re-embeds the whole stored collection, reporting progress to the
// given writer.
func (s *System) Reindex(ctx context.Context, progress io.Writer) error {
	reindexer := reindex.NewReindexer(s.repository, s.provider.Embedder(), nil, progress)
	return reindexer.Run(ctx)
}

// Stats returns a snapshot of query metrics.
func (s *System) Stats() answer.Stats {
	return s.orchestrator.Stats()
}

// DocumentCount returns the number of indexed documents.
func (s *System) DocumentCount(ctx context.Context) (int, error) {
	return s.repository.Count(ctx)
}

// Repository exposes the document repository.
func (s *System) Repository() storage.DocumentRepository {
	return s.repository
}

// SearchEngine exposes the search engine, for callers that want raw ranked
// hits instead of assembled answers.
func (s *System) SearchEngine() *search.Engine {
	return s.engine
}

// Close shuts the system down.
func (s *System) Close() error {
	s.engine.Release()

	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}
	if err := s.repository.Close(); err != nil {
		s.logger.Error("error closing document repository", "err", err)
		return err
	}
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
