package badger

import (
	"github.com/poiesic/talentsift/storage"
)

// Repositories bundles all BadgerDB-backed repositories over one database.
type Repositories struct {
	Profiles storage.ProfileRepository
	Index    storage.IndexRepository
	Rankings storage.RankingRepository
	Cache    storage.CacheRepository

	backend *Backend
}

// NewRepositories opens a BadgerDB database at path and creates all
// repositories over it. Caller must Close when done.
func NewRepositories(path string) (*Repositories, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return newRepositories(backend), nil
}

func newRepositories(backend *Backend) *Repositories {
	return &Repositories{
		Profiles: NewProfileRepository(backend),
		Index:    NewIndexRepository(backend),
		Rankings: NewRankingRepository(backend),
		Cache:    NewCacheRepository(backend),
		backend:  backend,
	}
}

// Backend returns the underlying database handle.
func (r *Repositories) Backend() *Backend {
	return r.backend
}

// Close closes the underlying database.
func (r *Repositories) Close() error {
	return r.backend.Close()
}
