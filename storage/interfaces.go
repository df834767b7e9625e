package storage

import (
	"context"

	"github.com/jeredhiggins/keyintent/core"
)

// VectorCache persists embedding vectors for derived, recomputable data,
// keyed by content-hash ID. It exists so a fixed vocabulary (the category
// taxonomy) is not re-embedded on every process start.
// Implementations must be thread-safe and support concurrent access.
type VectorCache interface {
	// GetVector retrieves a cached vector by ID.
	// Returns ErrNotFound if no vector is cached under the ID.
	GetVector(ctx context.Context, id core.ID) ([]float32, error)

	// PutVector stores a vector under the ID, replacing any previous value.
	PutVector(ctx context.Context, id core.ID, vector []float32) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// VectorCacheKey derives the cache ID for one text embedded by one model.
// Different models must never share cache entries.
func VectorCacheKey(model, text string) core.ID {
	return core.IDFromContent(model + "\x00" + text)
}
