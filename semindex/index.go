package semindex

import (
	"slices"
	"sync/atomic"

	"github.com/poiesic/talentsift/core"
)

// Match is a single semantic search hit.
type Match struct {
	ProfileId  core.ID
	Similarity float64
}

// Index holds the published vector index snapshot.
// Publish swaps the whole snapshot atomically, so readers either see the
// previous complete index or the new one, never an intermediate state.
type Index struct {
	current atomic.Pointer[core.VectorIndex]
}

// NewIndex creates an empty Index with nothing published.
func NewIndex() *Index {
	return &Index{}
}

// Publish makes the given snapshot the current index.
func (x *Index) Publish(index *core.VectorIndex) {
	x.current.Store(index)
}

// Snapshot returns the current index, or ErrIndexNotFound if none has been
// published.
func (x *Index) Snapshot() (*core.VectorIndex, error) {
	index := x.current.Load()
	if index == nil {
		return nil, core.ErrIndexNotFound
	}
	return index, nil
}

// Ready reports whether an index has been published.
func (x *Index) Ready() bool {
	return x.current.Load() != nil
}

// Search scores every indexed profile against the query vector and returns
// up to min(k, count) matches ordered by similarity descending. The query
// is normalized before scoring; similarity is 1/(1+distance) where distance
// is the Euclidean distance between normalized vectors.
func (x *Index) Search(queryVec []float32, k int) ([]Match, error) {
	index := x.current.Load()
	if index == nil {
		return nil, core.ErrIndexNotFound
	}
	if k <= 0 {
		return nil, nil
	}
	if len(queryVec) != index.Dimension {
		return nil, ErrDimensionMismatch
	}

	query := NormalizeVector(queryVec)

	matches := make([]Match, len(index.Vectors))
	for i, row := range index.Vectors {
		distance := euclideanDistance(query, row)
		matches[i] = Match{
			ProfileId:  index.Ids[i],
			Similarity: 1.0 / (1.0 + distance),
		}
	}

	slices.SortFunc(matches, func(a, b Match) int {
		if a.Similarity > b.Similarity {
			return -1
		}
		if a.Similarity < b.Similarity {
			return 1
		}
		// Equal similarities order by ID so truncation at k is stable.
		if a.ProfileId < b.ProfileId {
			return -1
		}
		if a.ProfileId > b.ProfileId {
			return 1
		}
		return 0
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	return matches, nil
}
