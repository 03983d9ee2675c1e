package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/talentsift/core"
	"github.com/poiesic/talentsift/storage"
)

// IndexRepository implements storage.IndexRepository for BadgerDB.
type IndexRepository struct {
	backend *Backend
}

var _ storage.IndexRepository = (*IndexRepository)(nil)

// NewIndexRepository creates a new IndexRepository.
func NewIndexRepository(backend *Backend) *IndexRepository {
	return &IndexRepository{backend: backend}
}

// Close is a no-op; the backend owns the database lifecycle.
func (r *IndexRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *IndexRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// SaveIndex persists the vector index, replacing any previous one.
func (r *IndexRepository) SaveIndex(ctx context.Context, index *core.VectorIndex) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		value := storage.MarshalVectorIndex(index)
		if err := tx.Set([]byte(vectorIndexKey), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// LoadIndex retrieves the persisted vector index.
func (r *IndexRepository) LoadIndex(ctx context.Context) (*core.VectorIndex, error) {
	var result *core.VectorIndex
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(vectorIndexKey))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalVectorIndex(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}

// DeleteIndex removes the persisted vector index if present.
func (r *IndexRepository) DeleteIndex(ctx context.Context) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete([]byte(vectorIndexKey)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
