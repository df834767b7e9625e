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


package entities

import (
	"context"
	"log/slog"

	"github.com/jeredhiggins/keyintent/ai"
	"github.com/jeredhiggins/keyintent/core"
)

// Adapter wraps an ai.EntityExtractor and normalizes its output into
// display-ready results. Extraction never fails from the caller's point of
// view: a model error degrades to the extraction-error sentinel so one
// keyword's failure cannot abort a batch.
type Adapter struct {
	extractor ai.EntityExtractor
	logger    *slog.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
	}
}

// NewAdapter creates an adapter over the extractor.
func NewAdapter(extractor ai.EntityExtractor, opts ...Option) (*Adapter, error) {
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	a := &Adapter{
		extractor: extractor,
		logger:    slog.Default().With("component", "entity-adapter"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Extract runs entity recognition on one keyword. Success with entities
// returns them in model output order; success with none returns the
// no-entities sentinel; any extractor error returns the extraction-error
// sentinel and is logged, never propagated.
func (a *Adapter) Extract(ctx context.Context, keyword string) core.EntityResult {
	extracted, err := a.extractor.ExtractEntities(ctx, keyword)
	if err != nil {
		a.logger.Warn("entity extraction failed", "keyword", keyword, "err", err)
		return core.EntityError()
	}

	if len(extracted) == 0 {
		return core.NoEntities()
	}

	ents := make([]core.Entity, len(extracted))
	for i, e := range extracted {
		ents[i] = core.Entity{
			Text:       e.Text,
			Type:       e.Type,
			Confidence: e.Confidence,
		}
	}
	return core.FoundEntities(ents)
}
