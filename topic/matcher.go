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


package topic

import (
	"log/slog"
	"math"

	"github.com/jeredhiggins/keyintent/core"
	"github.com/jeredhiggins/keyintent/taxonomy"
)

// DefaultMargin is the multiplicative dominance margin: the best category
// stands alone only when its similarity exceeds the runner-up's by more
// than 10%. Otherwise both are reported.
const DefaultMargin = 1.1

// Matcher assigns content-taxonomy topics to keyword embeddings by
// cosine-similarity ranking over a category embedding set.
type Matcher struct {
	margin float64
	logger *slog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithMargin sets the dominance margin. Values at or below 1 make every
// assignment single-topic.
func WithMargin(margin float64) Option {
	return func(m *Matcher) {
		m.margin = margin
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
	}
}

// NewMatcher creates a matcher with the default 1.1 margin.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{
		margin: DefaultMargin,
		logger: slog.Default().With("component", "topic-matcher"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match ranks categories by cosine similarity to the keyword embedding and
// resolves the top candidates into a single assignment. If the best
// similarity exceeds the second-best times the margin, the best category
// stands alone; otherwise the two are joined as "best , second".
//
// An empty category list, a missing embedding, or a NaN similarity yields
// the topic-error result for this keyword; the failure never propagates.
func (m *Matcher) Match(keywordVec []float32, set *taxonomy.EmbeddingSet, categories []string) core.TopicResult {
	if len(categories) == 0 || set.Len() != len(categories) || len(keywordVec) == 0 {
		return core.TopicError()
	}

	// Track the top three candidates while scanning; only the top two
	// decide the assignment.
	best, second, third := -1, -1, -1
	sims := make([]float32, len(categories))
	for i := range categories {
		row := set.Row(i)
		if len(row) != len(keywordVec) {
			m.logger.Warn("category embedding dimension mismatch", "category", categories[i])
			return core.TopicError()
		}
		sim := CosineSimilarity(keywordVec, row)
		if math.IsNaN(float64(sim)) {
			return core.TopicError()
		}
		sims[i] = sim

		switch {
		case best == -1 || sim > sims[best]:
			best, second, third = i, best, second
		case second == -1 || sim > sims[second]:
			second, third = i, second
		case third == -1 || sim > sims[third]:
			third = i
		}
	}

	if second == -1 {
		// Single-category taxonomy: nothing to disambiguate against.
		return core.AssignedTopic(categories[best])
	}

	if float64(sims[best]) > float64(sims[second])*m.margin {
		return core.AssignedTopic(categories[best])
	}
	return core.AssignedTopic(categories[best] + " , " + categories[second])
}
