package taxonomy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jeredhiggins/keyintent/ai"
	"github.com/jeredhiggins/keyintent/storage"
)

// EmbeddingSet holds one embedding row per category, aligned by index with
// the Store's ordered category list. It is built once per process and is
// read-only afterwards, so it may be shared freely across batches and
// goroutines.
type EmbeddingSet struct {
	vectors [][]float32
}

// NewEmbeddingSet wraps precomputed rows, one per category in category
// order. Used directly by tests; production code builds sets through
// BuildEmbeddingSet.
func NewEmbeddingSet(vectors [][]float32) *EmbeddingSet {
	return &EmbeddingSet{vectors: vectors}
}

// Len returns the number of rows.
func (s *EmbeddingSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.vectors)
}

// Row returns the embedding for the category at index i.
func (s *EmbeddingSet) Row(i int) []float32 {
	return s.vectors[i]
}

// BuildEmbeddingSet embeds every category, consulting the optional vector
// cache first and batching one embedder call for all misses. Freshly
// embedded vectors are written back to the cache; cache write failures are
// logged and ignored since the cache is purely derived data.
//
// The returned set has exactly one row per category. An empty category
// list yields an empty set and no embedder call.
func BuildEmbeddingSet(ctx context.Context, embedder ai.Embedder, categories []string, cache storage.VectorCache, model string, logger *slog.Logger) (*EmbeddingSet, error) {
	if embedder == nil {
		return nil, errors.New("embedder required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	vectors := make([][]float32, len(categories))

	// Resolve cache hits
	var missTexts []string
	var missIdx []int
	for i, cat := range categories {
		if cache == nil {
			missTexts = append(missTexts, cat)
			missIdx = append(missIdx, i)
			continue
		}
		vec, err := cache.GetVector(ctx, storage.VectorCacheKey(model, cat))
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				logger.Warn("vector cache read failed", "category", cat, "err", err)
			}
			missTexts = append(missTexts, cat)
			missIdx = append(missIdx, i)
			continue
		}
		vectors[i] = vec
	}

	logger.Debug("building category embedding set",
		"categories", len(categories),
		"cached", len(categories)-len(missTexts))

	if len(missTexts) > 0 {
		embedded, err := embedder.EmbedTexts(ctx, missTexts)
		if err != nil {
			return nil, fmt.Errorf("embedding categories: %w", err)
		}
		if len(embedded) != len(missTexts) {
			return nil, fmt.Errorf("embedding count mismatch: expected %d, got %d", len(missTexts), len(embedded))
		}

		for j, vec := range embedded {
			i := missIdx[j]
			vectors[i] = vec
			if cache != nil {
				key := storage.VectorCacheKey(model, categories[i])
				if err := cache.PutVector(ctx, key, vec); err != nil {
					logger.Warn("vector cache write failed", "category", categories[i], "err", err)
				}
			}
		}
	}

	return &EmbeddingSet{vectors: vectors}, nil
}
