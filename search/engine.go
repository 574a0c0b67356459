package search

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"sync"

	"github.com/alihaydarkir/saglikrock/ai"
	"github.com/alihaydarkir/saglikrock/core"
	"github.com/alihaydarkir/saglikrock/query"
	"github.com/alihaydarkir/saglikrock/storage"
	"github.com/panjf2000/ants/v2"
)

const defaultMaxResults = 10

// Engine runs the multi-variant retrieval strategy: a question is rewritten
// into several search variants, each variant is embedded and searched
// independently, and the per-variant hits are merged into one ranked list.
type Engine struct {
	repository storage.DocumentRepository
	embedder   ai.Embedder
	expander   *query.Expander
	detector   *query.Detector
	chunker    *query.Chunker
	pool       *ants.Pool
	monitor    SearchMonitor
	maxResults int
	logger     *slog.Logger
}

// Result is the outcome of one search.
type Result struct {
	Analysis core.QueryAnalysis
	Hits     []*core.RankedResult
	// Chunked reports whether the query was split into fragments.
	// Threshold selection downstream depends on it.
	Chunked bool
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithMaxResults sets how many ranked results a search returns.
// Default is 10.
func WithMaxResults(n int) Option {
	return func(e *Engine) error {
		if n < 1 {
			n = 1
		}
		e.maxResults = n
		return nil
	}
}

// WithMonitor sets a search monitor receiving callbacks at each stage.
// Default is a no-op monitor.
func WithMonitor(monitor SearchMonitor) Option {
	return func(e *Engine) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		e.monitor = monitor
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent variant searches.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(e *Engine) error {
		if size < 1 {
			size = 1
		}
		if e.pool != nil {
			e.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		e.pool = pool
		return nil
	}
}

// NewEngine creates a search engine.
func NewEngine(repository storage.DocumentRepository, provider ai.Provider, opts ...Option) (*Engine, error) {
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

	e := &Engine{
		repository: repository,
		embedder:   provider.Embedder(),
		expander:   query.NewExpander(),
		detector:   query.NewDetector(),
		chunker:    query.NewChunker(),
		pool:       pool,
		monitor:    &noopMonitor{},
		maxResults: defaultMaxResults,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			e.Release()
			return nil, err
		}
	}

	return e, nil
}

// Release releases the worker pool.
// The engine should not be used after calling Release.
func (e *Engine) Release() {
	if e.pool != nil {
		e.pool.Release()
	}
}

// variant is one rewritten form of the query to search independently.
type variant struct {
	name   string
	text   string
	weight float64
}

// Search analyzes the question, plans its search variants, fans them out on
// the worker pool, and merges the hits into a ranked result list.
//
// A variant that fails to embed or search is logged and contributes nothing;
// only the orchestration itself can return an error. The ranking is
// deterministic for a fixed collection and embedder.
func (e *Engine) Search(ctx context.Context, q string) (*Result, error) {
	e.monitor.Start(q)

	analysis := e.detector.Detect(q)
	e.monitor.AfterAnalysis(analysis)

	variants, chunked := e.planVariants(q)
	for _, v := range variants {
		e.monitor.VariantPlanned(v.name, v.text, v.weight)
	}

	// Fan out one search per variant
	type variantHit struct {
		doc        *core.Document
		similarity float64
		score      float64
		bonuses    core.BonusFactors
	}

	var mu sync.Mutex
	hitsByVariant := make([][]variantHit, len(variants))

	var wg sync.WaitGroup
	for i, v := range variants {
		wg.Add(1)
		task := func() {
			defer wg.Done()

			hits, err := e.searchVariant(ctx, v)
			if err != nil {
				e.logger.Warn("search variant failed", "variant", v.name, "err", err)
				e.monitor.VariantFailed(v.name, err)
				return
			}
			e.monitor.VariantSearched(v.name, len(hits))

			scored := make([]variantHit, 0, len(hits))
			for _, hit := range hits {
				similarity := max(float64(hit.Similarity), 0)
				bonuses := computeBonuses(v.text, hit.Document, analysis.Category)
				scored = append(scored, variantHit{
					doc:        hit.Document,
					similarity: similarity,
					score:      similarity * bonuses.Total() * v.weight,
					bonuses:    bonuses,
				})
			}

			mu.Lock()
			hitsByVariant[i] = scored
			mu.Unlock()
		}
		if err := e.pool.Submit(task); err != nil {
			// Pool unavailable, run inline
			task()
		}
	}
	wg.Wait()

	// Merge per-variant hits by document
	type merged struct {
		doc     *core.Document
		scores  []float64
		bestSim float64
		bonuses core.BonusFactors
	}
	byID := make(map[core.ID]*merged)
	for _, scored := range hitsByVariant {
		for _, hit := range scored {
			m, ok := byID[hit.doc.Id]
			if !ok {
				m = &merged{doc: hit.doc}
				byID[hit.doc.Id] = m
			}
			m.scores = append(m.scores, hit.score)
			if hit.similarity > m.bestSim {
				m.bestSim = hit.similarity
			}
			if len(m.scores) == 1 || hit.score > slices.Max(m.scores[:len(m.scores)-1]) {
				m.bonuses = hit.bonuses
			}
		}
	}

	results := make([]*core.RankedResult, 0, len(byID))
	for _, m := range byID {
		maxScore := slices.Max(m.scores)
		var sum float64
		for _, s := range m.scores {
			sum += s
		}
		mean := sum / float64(len(m.scores))

		// Documents found by several variants are better answers
		multiBonus := 1.0 + 0.15*float64(len(m.scores)-1)

		urgencyBonus := 1.0
		if m.doc.Urgency == core.UrgencyCritical {
			urgencyBonus = 1.2
		}

		final := ((maxScore + mean) / 2) * multiBonus * (0.8 + 0.2*m.doc.Reliability) * urgencyBonus

		results = append(results, &core.RankedResult{
			Document:       m.doc,
			Score:          final,
			BaseSimilarity: m.bestSim,
			Appearances:    len(m.scores),
			Bonuses:        m.bonuses,
		})
	}

	// Sort by score descending, document ID as a deterministic tie-break
	slices.SortFunc(results, func(a, b *core.RankedResult) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		if a.Document.Id < b.Document.Id {
			return -1
		}
		if a.Document.Id > b.Document.Id {
			return 1
		}
		return 0
	})
	if len(results) > e.maxResults {
		results = results[:e.maxResults]
	}

	e.monitor.Finish(results)

	return &Result{
		Analysis: analysis,
		Hits:     results,
		Chunked:  chunked,
	}, nil
}

// planVariants decides the search strategy for a query. Long queries are
// chunked into weighted fragments; short queries get the three expansion
// strategies next to the original. Never both.
func (e *Engine) planVariants(q string) ([]variant, bool) {
	if e.chunker.ShouldChunk(q) {
		chunks := e.chunker.Chunk(q)
		variants := make([]variant, 0, len(chunks))
		for i, chunk := range chunks {
			variants = append(variants, variant{
				name:   fmt.Sprintf("chunk-%d", i+1),
				text:   e.expander.Expand(chunk),
				weight: max(1.0-0.1*float64(i), 0),
			})
		}
		return variants, true
	}

	basic, smart, deep := e.expander.MultiExpand(q)
	return []variant{
		{name: "original", text: q, weight: 1.0},
		{name: "basic", text: basic, weight: 0.9},
		{name: "smart", text: smart, weight: 1.1},
		{name: "deep", text: deep, weight: 0.8},
	}, false
}

// searchVariant embeds one variant text and queries the vector store.
func (e *Engine) searchVariant(ctx context.Context, v variant) ([]*core.SearchHit, error) {
	embedding, err := e.embedder.EmbedText(ctx, v.text)
	if err != nil {
		return nil, err
	}
	return e.repository.FindSimilar(ctx, embedding, 0, e.maxResults)
}
