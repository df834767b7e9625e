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


package keyintent

import (
	"log/slog"

	"github.com/jeredhiggins/keyintent/ai"
	"github.com/jeredhiggins/keyintent/ai/openai"
	"github.com/jeredhiggins/keyintent/pipeline"
	"github.com/jeredhiggins/keyintent/storage"
	"github.com/jeredhiggins/keyintent/storage/badger"
	"github.com/jeredhiggins/keyintent/taxonomy"
)

// Analyzer bundles the services a keyword pipeline needs: an AI provider,
// the category taxonomy, and an optional persistent embedding cache. It
// owns their lifecycles; close it when done.
type Analyzer struct {
	provider ai.AIProvider
	store    *taxonomy.Store
	backend  *badger.Backend
	cache    storage.VectorCache
	aiConfig *ai.Config
	logger   *slog.Logger
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*analyzerOptions)

type analyzerOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	cacheDir string
}

// WithAIConfig sets the AI service configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(config *ai.Config) AnalyzerOption {
	return func(o *analyzerOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithProvider supplies a pre-built AI provider instead of constructing
// one from the AI config. The analyzer still closes it.
func WithProvider(provider ai.AIProvider) AnalyzerOption {
	return func(o *analyzerOptions) {
		o.provider = provider
	}
}

// WithCacheDir enables a persistent category embedding cache backed by a
// BadgerDB directory.
func WithCacheDir(dir string) AnalyzerOption {
	return func(o *analyzerOptions) {
		o.cacheDir = dir
	}
}

// NewAnalyzer creates an analyzer over the given category taxonomy file.
func NewAnalyzer(categoriesPath string, opts ...AnalyzerOption) (*Analyzer, error) {
	options := &analyzerOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	provider := options.provider
	if provider == nil {
		var err error
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			return nil, err
		}
	}

	var backend *badger.Backend
	var cache storage.VectorCache
	if options.cacheDir != "" {
		var err error
		backend, err = badger.OpenBackend(options.cacheDir, false)
		if err != nil {
			provider.Close()
			return nil, err
		}
		cache, err = badger.NewVectorCache(backend)
		if err != nil {
			backend.Close()
			provider.Close()
			return nil, err
		}
	}

	return &Analyzer{
		provider: provider,
		store:    taxonomy.NewStore(categoriesPath),
		backend:  backend,
		cache:    cache,
		aiConfig: options.aiConfig,
		logger:   slog.Default(),
	}, nil
}

// Close releases the AI provider and the embedding cache.
func (a *Analyzer) Close() error {
	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing AI provider", "err", err)
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("error closing embedding cache", "err", err)
			return err
		}
	}
	if a.backend != nil {
		if err := a.backend.Close(); err != nil {
			a.logger.Error("error closing cache backend", "err", err)
			return err
		}
	}
	return nil
}

// TaxonomyStore returns the category taxonomy store.
func (a *Analyzer) TaxonomyStore() *taxonomy.Store {
	return a.store
}

// Provider returns the AI provider.
func (a *Analyzer) Provider() ai.AIProvider {
	return a.provider
}

// NewPipeline creates a keyword pipeline wired to the analyzer's provider,
// taxonomy, and cache. Extra options are applied after the wiring and may
// override it.
func (a *Analyzer) NewPipeline(opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	base := []pipeline.Option{
		pipeline.WithEmbeddingModel(a.aiConfig.EmbeddingModel),
	}
	if a.cache != nil {
		base = append(base, pipeline.WithVectorCache(a.cache))
	}
	return pipeline.NewPipeline(a.provider, a.store, append(base, opts...)...)
}
