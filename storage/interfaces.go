package storage

import (
	"context"
	"time"

	"github.com/poiesic/talentsift/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// ProfileRepository provides operations for managing candidate profiles.
type ProfileRepository interface {
	Repository

	// PutProfiles stores one or more profiles, overwriting any existing
	// profile with the same ID. Profiles use content-based IDs so ingesting
	// the same document twice is idempotent.
	PutProfiles(ctx context.Context, profiles ...*core.Profile) error

	// GetProfile retrieves a single profile by ID.
	// Returns ErrNotFound if the profile doesn't exist.
	GetProfile(ctx context.Context, id core.ID) (*core.Profile, error)

	// GetProfiles retrieves multiple profiles by their IDs.
	// Returns only the profiles that exist (no error for missing profiles).
	GetProfiles(ctx context.Context, ids ...core.ID) ([]*core.Profile, error)

	// ListProfiles retrieves all stored profiles ordered by ID.
	ListProfiles(ctx context.Context) ([]*core.Profile, error)

	// DeleteProfiles removes profiles by their IDs.
	// Returns ErrNotFound if any profile doesn't exist.
	DeleteProfiles(ctx context.Context, ids ...core.ID) error

	// CountProfiles returns the number of stored profiles.
	CountProfiles(ctx context.Context) (int, error)
}

// IndexRepository provides persistence for the semantic vector index.
type IndexRepository interface {
	Repository

	// SaveIndex persists the vector index, replacing any previous index.
	SaveIndex(ctx context.Context, index *core.VectorIndex) error

	// LoadIndex retrieves the persisted vector index.
	// Returns ErrNotFound if no index has been saved.
	LoadIndex(ctx context.Context) (*core.VectorIndex, error)

	// DeleteIndex removes the persisted vector index if present.
	DeleteIndex(ctx context.Context) error
}

// RankingRepository provides persistence for ranking artifacts produced by
// a batch ranking run.
type RankingRepository interface {
	Repository

	// SaveRankedResults persists the most recent batch ranking outcome,
	// replacing any previous one.
	SaveRankedResults(ctx context.Context, set *core.RankedResultSet) error

	// LoadRankedResults retrieves the most recent batch ranking outcome.
	// Returns ErrNotFound if no ranking has been saved.
	LoadRankedResults(ctx context.Context) (*core.RankedResultSet, error)

	// SaveLexicalModel persists the fitted lexical model parameters.
	SaveLexicalModel(ctx context.Context, params []byte) error

	// LoadLexicalModel retrieves the fitted lexical model parameters.
	// Returns ErrNotFound if no model has been saved.
	LoadLexicalModel(ctx context.Context) ([]byte, error)
}

// CacheRepository provides a TTL-bounded response cache keyed by query
// fingerprint.
type CacheRepository interface {
	Repository

	// GetCachedResponse retrieves the cached entry for a fingerprint.
	// Entries older than ttl are treated as missing and deleted lazily.
	// Returns ErrNotFound on miss or expiry.
	GetCachedResponse(ctx context.Context, fingerprint string, ttl time.Duration) (*core.CacheEntry, error)

	// PutCachedResponse stores a response under its query fingerprint,
	// overwriting any existing entry.
	PutCachedResponse(ctx context.Context, entry *core.CacheEntry) error
}
