package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/jeredhiggins/keyintent/core"
	"github.com/jeredhiggins/keyintent/storage"
)

// VectorCache implements storage.VectorCache for BadgerDB.
type VectorCache struct {
	backend *Backend
}

var _ storage.VectorCache = (*VectorCache)(nil)

// NewVectorCache creates a new VectorCache over the backend.
func NewVectorCache(backend *Backend) (*VectorCache, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &VectorCache{backend: backend}, nil
}

// GetVector retrieves a cached vector by ID.
func (c *VectorCache) GetVector(ctx context.Context, id core.ID) ([]float32, error) {
	var vector []float32
	err := c.backend.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get(makeVectorKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			vector, err = storage.UnmarshalVector(val)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return vector, nil
}

// PutVector stores a vector under the ID, replacing any previous value.
func (c *VectorCache) PutVector(ctx context.Context, id core.ID, vector []float32) error {
	if len(vector) == 0 {
		return storage.ErrEmptyVector
	}
	return c.backend.db.Update(func(tx *badger.Txn) error {
		return tx.Set(makeVectorKey(id), storage.MarshalVector(vector))
	})
}

// Close is a no-op; the backend owns the database lifecycle.
func (c *VectorCache) Close() error {
	return nil
}
