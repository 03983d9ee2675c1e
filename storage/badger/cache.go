package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/talentsift/core"
	"github.com/poiesic/talentsift/storage"
)

// CacheRepository implements storage.CacheRepository for BadgerDB.
type CacheRepository struct {
	backend *Backend
}

var _ storage.CacheRepository = (*CacheRepository)(nil)

// NewCacheRepository creates a new CacheRepository.
func NewCacheRepository(backend *Backend) *CacheRepository {
	return &CacheRepository{backend: backend}
}

// Close is a no-op; the backend owns the database lifecycle.
func (r *CacheRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *CacheRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// GetCachedResponse retrieves the cached entry for a fingerprint.
// Expired entries are deleted lazily and reported as ErrNotFound.
func (r *CacheRepository) GetCachedResponse(ctx context.Context, fingerprint string, ttl time.Duration) (*core.CacheEntry, error) {
	var result *core.CacheEntry
	key := makeCacheKey(fingerprint)

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(key)
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalCacheEntry(val)
			return unmarshalErr
		})
	}, false)
	if err != nil {
		return nil, err
	}

	if result.Expired(time.Now().UTC(), ttl) {
		// Lazy expiry: drop the stale entry in a separate write transaction.
		err := r.backend.WithTx(func(tx *badger.Txn) error {
			if err := tx.Delete(key); err != nil {
				return err
			}
			return tx.Commit()
		}, true)
		if err != nil {
			return nil, err
		}
		return nil, storage.ErrNotFound
	}

	return result, nil
}

// PutCachedResponse stores a response under its query fingerprint.
func (r *CacheRepository) PutCachedResponse(ctx context.Context, entry *core.CacheEntry) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeCacheKey(entry.Fingerprint)
		value := storage.MarshalCacheEntry(entry)
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
