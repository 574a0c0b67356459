package answer

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/alihaydarkir/saglikrock/core"
	"github.com/alihaydarkir/saglikrock/search"
)

const (
	cacheCapacity = 100
	timingWindow  = 10
	historyWindow = 20
)

// Searcher runs one retrieval for a question.
// *search.Engine satisfies it.
type Searcher interface {
	Search(ctx context.Context, query string) (*search.Result, error)
}

// thresholdRule maps a question type to its acceptance threshold. Chunked
// searches spread similarity across fragments, so they get a lower bar.
type thresholdRule struct {
	class    string
	keywords []string
	chunked  float64
	plain    float64
}

// Ordered; the first rule whose keyword appears in the question wins.
var thresholdRules = []thresholdRule{
	{"doz_miktar", []string{"doz", "miktar", "mg", "kaç", "ne kadar"}, 0.03, 0.05},
	{"acil_kritik", []string{"acil", "kritik", "emergency", "arrest", "durma"}, 0.02, 0.04},
	{"prosedur", []string{"nasıl", "how", "adım", "yöntem", "prosedür"}, 0.04, 0.06},
	{"tanım", []string{"nedir", "what", "tanım", "ne"}, 0.06, 0.08},
	{"genel", nil, 0.08, 0.12},
}

var emergencyWords = []string{"acil", "kritik", "emergency", "arrest", "durma", "kriz"}

// Response is the outcome of answering one question.
type Response struct {
	Success        bool
	Text           string
	BestScore      float64
	CacheHit       bool
	ThresholdClass string
	Threshold      float64
	ResultCount    int // hits returned by the search
	QualityCount   int // hits that cleared the threshold
	Elapsed        time.Duration
}

// QueryRecord is one entry of the bounded query history.
type QueryRecord struct {
	At          time.Time
	Question    string
	BestScore   float64
	ResultCount int
	Success     bool
}

// Stats is a snapshot of orchestrator metrics.
type Stats struct {
	TotalQueries        int
	SuccessfulQueries   int
	SuccessRate         float64
	AverageResponseTime time.Duration
	CacheSize           int
	History             []QueryRecord
}

// Orchestrator turns questions into protocol answers: search, threshold
// filtering, answer assembly, response caching, and query metrics.
type Orchestrator struct {
	searcher  Searcher
	assembler *Assembler
	logger    *slog.Logger

	mu             sync.Mutex
	cache          map[string]*Response
	totalQueries   int
	successQueries int
	responseTimes  []time.Duration
	history        []QueryRecord
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) OrchestratorOption {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewOrchestrator creates a query orchestrator on top of a searcher.
func NewOrchestrator(searcher Searcher, opts ...OrchestratorOption) (*Orchestrator, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}

	o := &Orchestrator{
		searcher:  searcher,
		assembler: NewAssembler(),
		logger:    slog.Default().With("component", "orchestrator"),
		cache:     make(map[string]*Response),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Answer answers one question. Questions that produce no acceptable results
// still return a successful call with Response.Success=false and a
// suggestions text; only search orchestration failures return an error.
func (o *Orchestrator) Answer(ctx context.Context, question string) (*Response, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	cacheKey := strings.ToLower(question)
	if cached := o.lookupCache(cacheKey); cached != nil {
		return cached, nil
	}

	start := time.Now()

	result, err := o.searcher.Search(ctx, question)
	if err != nil {
		return nil, err
	}

	class, threshold := selectThreshold(question, result.Chunked)

	quality := make([]*core.RankedResult, 0, len(result.Hits))
	for _, hit := range result.Hits {
		if hit.Score > threshold {
			quality = append(quality, hit)
		}
	}
	qualityCount := len(quality)

	// Nothing cleared the bar but the search did find something: fall back
	// to the single best raw hit instead of answering empty-handed.
	if len(quality) == 0 && len(result.Hits) > 0 && result.Hits[0].Score > 0 {
		o.logger.Debug("threshold fallback", "class", class, "best", result.Hits[0].Score)
		quality = result.Hits[:1]
	}

	emergency := containsAny(strings.ToLower(question), emergencyWords)

	response := &Response{
		ThresholdClass: class,
		Threshold:      threshold,
		ResultCount:    len(result.Hits),
		QualityCount:   qualityCount,
	}
	if len(quality) > 0 {
		response.Success = true
		response.BestScore = quality[0].Score
		response.Text = o.assembler.Protocol(question, quality, emergency, result.Chunked)
	} else {
		response.Text = o.assembler.Suggestions(question, result.Hits, result.Chunked)
	}
	response.Elapsed = time.Since(start)

	o.record(cacheKey, question, response)

	o.logger.Info("question answered",
		"success", response.Success,
		"class", class,
		"threshold", threshold,
		"results", response.ResultCount,
		"quality", response.QualityCount,
		"elapsed", response.Elapsed)

	return response, nil
}

// Stats returns a snapshot of the orchestrator metrics.
func (o *Orchestrator) Stats() Stats {
	o.mu.Lock()
	defer o.mu.Unlock()

	stats := Stats{
		TotalQueries:      o.totalQueries,
		SuccessfulQueries: o.successQueries,
		CacheSize:         len(o.cache),
		History:           append([]QueryRecord(nil), o.history...),
	}
	if o.totalQueries > 0 {
		stats.SuccessRate = float64(o.successQueries) / float64(o.totalQueries)
	}
	if len(o.responseTimes) > 0 {
		var sum time.Duration
		for _, d := range o.responseTimes {
			sum += d
		}
		stats.AverageResponseTime = sum / time.Duration(len(o.responseTimes))
	}
	return stats
}

func (o *Orchestrator) lookupCache(key string) *Response {
	o.mu.Lock()
	defer o.mu.Unlock()

	cached, ok := o.cache[key]
	if !ok {
		return nil
	}

	o.totalQueries++
	if cached.Success {
		o.successQueries++
	}

	hit := *cached
	hit.CacheHit = true
	return &hit
}

// record updates counters, rolling windows, and the response cache. The
// cache stops accepting entries at capacity; existing entries stay hot.
func (o *Orchestrator) record(cacheKey, question string, response *Response) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.totalQueries++
	if response.Success {
		o.successQueries++
	}

	o.responseTimes = append(o.responseTimes, response.Elapsed)
	if len(o.responseTimes) > timingWindow {
		o.responseTimes = o.responseTimes[1:]
	}

	o.history = append(o.history, QueryRecord{
		At:          time.Now(),
		Question:    question,
		BestScore:   response.BestScore,
		ResultCount: response.ResultCount,
		Success:     response.Success,
	})
	if len(o.history) > historyWindow {
		o.history = o.history[1:]
	}

	if len(o.cache) < cacheCapacity {
		stored := *response
		o.cache[cacheKey] = &stored
	}
}

// selectThreshold picks the acceptance threshold for a question.
func selectThreshold(question string, chunked bool) (string, float64) {
	lower := strings.ToLower(question)
	for _, rule := range thresholdRules {
		if len(rule.keywords) == 0 || containsAny(lower, rule.keywords) {
			if chunked {
				return rule.class, rule.chunked
			}
			return rule.class, rule.plain
		}
	}
	// Unreachable: the last rule has no keywords
	if chunked {
		return "genel", 0.08
	}
	return "genel", 0.12
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
