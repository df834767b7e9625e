// Copyright 2025 Poiesic Systems
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


package pipeline

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/jeredhiggins/keyintent/ai"
	"github.com/jeredhiggins/keyintent/core"
	"github.com/jeredhiggins/keyintent/entities"
	"github.com/jeredhiggins/keyintent/intent"
	"github.com/jeredhiggins/keyintent/storage"
	"github.com/jeredhiggins/keyintent/taxonomy"
	"github.com/jeredhiggins/keyintent/topic"
)

const (
	// DefaultBatchSize is the number of keywords enriched per batch.
	DefaultBatchSize = 8

	// DefaultMaxRetries is the retry budget for the per-batch embedding call.
	DefaultMaxRetries = 3

	// DefaultRetryBaseDelay is the base delay for embedding retry backoff.
	DefaultRetryBaseDelay = time.Second
)

// Pipeline enriches keyword lists with intent labels, named entities, and
// taxonomy topics. It batches work, fans entity extraction out over a
// worker pool, and builds the category embedding set once per pipeline.
type Pipeline struct {
	provider       ai.AIProvider
	store          *taxonomy.Store
	cache          storage.VectorCache
	embeddingModel string

	classifier *intent.Classifier
	extractor  *entities.Adapter
	matcher    *topic.Matcher

	pool           *ants.Pool
	batchSize      int
	maxRetries     int
	retryBaseDelay time.Duration
	progressWriter io.Writer
	logger         *slog.Logger

	// Category embeddings are built lazily on the first run and shared by
	// every run after that. A build failure is cached too: the taxonomy
	// does not change mid-process, so retrying cannot help.
	embedOnce sync.Once
	embedSet  *taxonomy.EmbeddingSet
	embedErr  error
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithBatchSize sets the number of keywords processed per batch.
// Default is DefaultBatchSize. Values below 1 are clamped to 1.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithPoolSize sets the worker pool size for entity extraction.
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

// WithClassifier replaces the default intent classifier.
func WithClassifier(c *intent.Classifier) Option {
	return func(p *Pipeline) error {
		if c != nil {
			p.classifier = c
		}
		return nil
	}
}

// WithTopicMargin sets the dominance margin for topic assignment.
func WithTopicMargin(margin float64) Option {
	return func(p *Pipeline) error {
		p.matcher = topic.NewMatcher(topic.WithMargin(margin), topic.WithLogger(p.logger))
		return nil
	}
}

// WithVectorCache sets a persistent cache for category embeddings.
// Without one, categories are re-embedded on every pipeline construction.
func WithVectorCache(cache storage.VectorCache) Option {
	return func(p *Pipeline) error {
		p.cache = cache
		return nil
	}
}

// WithEmbeddingModel sets the model identifier used to scope vector cache
// keys. It must match the provider's embedding model or cached vectors
// from a different model would be served.
func WithEmbeddingModel(model string) Option {
	return func(p *Pipeline) error {
		if model != "" {
			p.embeddingModel = model
		}
		return nil
	}
}

// WithMaxRetries sets the retry budget for embedding calls.
func WithMaxRetries(n int) Option {
	return func(p *Pipeline) error {
		if n < 1 {
			n = 1
		}
		p.maxRetries = n
		return nil
	}
}

// WithRetryBaseDelay sets the base delay for embedding retry backoff.
func WithRetryBaseDelay(d time.Duration) Option {
	return func(p *Pipeline) error {
		if d > 0 {
			p.retryBaseDelay = d
		}
		return nil
	}
}

// WithProgressWriter enables progress reporting to w during runs.
func WithProgressWriter(w io.Writer) Option {
	return func(p *Pipeline) error {
		p.progressWriter = w
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

// NewPipeline creates a keyword enrichment pipeline.
func NewPipeline(provider ai.AIProvider, store *taxonomy.Store, opts ...Option) (*Pipeline, error) {
	if provider == nil {
		return nil, ErrAIProviderRequired
	}
	if store == nil {
		return nil, ErrTaxonomyStoreRequired
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
		provider:       provider,
		store:          store,
		embeddingModel: ai.DefaultConfig().EmbeddingModel,
		pool:           pool,
		batchSize:      DefaultBatchSize,
		maxRetries:     DefaultMaxRetries,
		retryBaseDelay: DefaultRetryBaseDelay,
		logger:         slog.Default().With("component", "pipeline"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	if p.classifier == nil {
		classifier, err := intent.NewClassifier()
		if err != nil {
			p.Release()
			return nil, err
		}
		p.classifier = classifier
	}
	if p.matcher == nil {
		p.matcher = topic.NewMatcher(topic.WithLogger(p.logger))
	}

	extractor, err := entities.NewAdapter(provider.EntityExtractor(), entities.WithLogger(p.logger))
	if err != nil {
		p.Release()
		return nil, err
	}
	p.extractor = extractor

	return p, nil
}

// Process splits raw multi-line text into keywords and runs them.
func (p *Pipeline) Process(ctx context.Context, raw string) (*ResultTable, error) {
	return p.Run(ctx, SplitLines(raw))
}

// Run enriches the given keywords and returns one record per keyword, in
// input order. Keywords are trimmed, blanks dropped, and input beyond
// MaxKeywords truncated; input with no usable keywords yields an empty
// table. Per-keyword enrichment failures degrade to sentinel values in
// the affected field; Run itself fails only when the category embeddings
// cannot be built.
func (p *Pipeline) Run(ctx context.Context, keywords []string) (*ResultTable, error) {
	keywords = NormalizeKeywords(keywords, p.logger)
	if len(keywords) == 0 {
		// Zero usable keywords is a successful empty run, not a failure.
		return NewResultTable(0), nil
	}

	set, categories, err := p.categoryEmbeddings(ctx)
	if err != nil {
		return nil, err
	}

	var tracker *ProgressTracker
	if p.progressWriter != nil {
		tracker = NewProgressTracker(p.progressWriter, len(keywords), p.batchSize)
		tracker.Start()
	}

	p.logger.Info("starting keyword run",
		"keywords", len(keywords),
		"batchSize", p.batchSize,
		"categories", len(categories))

	table := NewResultTable(len(keywords))
	for start := 0; start < len(keywords); start += p.batchSize {
		end := start + p.batchSize
		if end > len(keywords) {
			end = len(keywords)
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p.processBatch(ctx, keywords[start:end], set, categories, table)

		if tracker != nil {
			tracker.Increment(end - start)
		}
	}

	if tracker != nil {
		tracker.Finish()
		p.logger.Info("keyword run complete", "keywords", table.Len(), "elapsed", tracker.Elapsed())
	}

	return table, nil
}

// processBatch enriches one batch and appends its records in order. All
// per-batch buffers go out of scope when it returns, keeping peak memory
// bounded by the batch size rather than the run size.
func (p *Pipeline) processBatch(ctx context.Context, batch []string, set *taxonomy.EmbeddingSet, categories []string, table *ResultTable) {
	// One embedding call for the whole batch, retried with backoff. On
	// final failure the batch still completes; only its topics degrade.
	var vectors [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var embedErr error
		vectors, embedErr = p.provider.Embedder().EmbedTexts(ctx, batch)
		return embedErr
	}, p.maxRetries, p.retryBaseDelay)
	if err != nil {
		p.logger.Warn("batch embedding failed, topics degrade to error sentinels",
			"batch", len(batch), "err", err)
		vectors = nil
	} else if len(vectors) != len(batch) {
		p.logger.Warn("embedding count mismatch, topics degrade to error sentinels",
			"expected", len(batch), "got", len(vectors))
		vectors = nil
	}

	// Entity extraction is the slow path; fan it out. Results land in
	// per-index slots so completion order cannot reorder output.
	entityResults := make([]core.EntityResult, len(batch))
	var wg sync.WaitGroup
	for i, keyword := range batch {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			entityResults[i] = p.extractor.Extract(ctx, keyword)
		}
		if submitErr := p.pool.Submit(task); submitErr != nil {
			task()
		}
	}
	wg.Wait()

	for i, keyword := range batch {
		var topicResult core.TopicResult
		if vectors == nil {
			topicResult = core.TopicError()
		} else {
			topicResult = p.matcher.Match(topic.NormalizeVector(vectors[i]), set, categories)
		}

		table.Append(core.KeywordRecord{
			Keyword:  keyword,
			Intent:   p.classifier.Classify(keyword),
			Entities: entityResults[i],
			Topic:    topicResult,
		})
	}
}

// categoryEmbeddings returns the category list and its embedding set,
// building both on first use.
func (p *Pipeline) categoryEmbeddings(ctx context.Context) (*taxonomy.EmbeddingSet, []string, error) {
	p.embedOnce.Do(func() {
		categories := p.store.Categories()
		p.embedSet, p.embedErr = taxonomy.BuildEmbeddingSet(
			ctx, p.provider.Embedder(), categories, p.cache, p.embeddingModel, p.logger)
	})
	if p.embedErr != nil {
		return nil, nil, p.embedErr
	}
	return p.embedSet, p.store.Categories(), nil
}

// Release releases the worker pool. The pipeline must not be used after
// calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
