package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/talentsift/core"
	"github.com/poiesic/talentsift/storage"
)

// RankingRepository implements storage.RankingRepository for BadgerDB.
type RankingRepository struct {
	backend *Backend
}

var _ storage.RankingRepository = (*RankingRepository)(nil)

// NewRankingRepository creates a new RankingRepository.
func NewRankingRepository(backend *Backend) *RankingRepository {
	return &RankingRepository{backend: backend}
}

// Close is a no-op; the backend owns the database lifecycle.
func (r *RankingRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *RankingRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// SaveRankedResults persists the most recent batch ranking outcome.
func (r *RankingRepository) SaveRankedResults(ctx context.Context, set *core.RankedResultSet) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		value := storage.MarshalRankedResultSet(set)
		if err := tx.Set([]byte(rankedResultsKey), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// LoadRankedResults retrieves the most recent batch ranking outcome.
func (r *RankingRepository) LoadRankedResults(ctx context.Context) (*core.RankedResultSet, error) {
	var result *core.RankedResultSet
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(rankedResultsKey))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var unmarshalErr error
			result, unmarshalErr = storage.UnmarshalRankedResultSet(val)
			return unmarshalErr
		})
	}, false)
	return result, err
}

// SaveLexicalModel persists the fitted lexical model parameters.
func (r *RankingRepository) SaveLexicalModel(ctx context.Context, params []byte) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set([]byte(lexicalModelKey), params); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// LoadLexicalModel retrieves the fitted lexical model parameters.
func (r *RankingRepository) LoadLexicalModel(ctx context.Context) ([]byte, error) {
	var result []byte
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(lexicalModelKey))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		result, err = item.ValueCopy(nil)
		return err
	}, false)
	return result, err
}
