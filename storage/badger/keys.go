package badger

import (
	"fmt"

	"github.com/poiesic/talentsift/core"
)

// Key prefixes for different data types
const (
	profileRecordPrefix = "prorec"
	vectorIndexKey      = "vecidx:current"
	rankedResultsKey    = "rnkres:current"
	lexicalModelKey     = "lexmod:current"
	cacheRecordPrefix   = "qcache"
)

// makeProfileKey generates a key for a profile by ID.
func makeProfileKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", profileRecordPrefix, id))
}

// makeCacheKey generates a key for a cached response by query fingerprint.
func makeCacheKey(fingerprint string) []byte {
	return []byte(fmt.Sprintf("%s:%s", cacheRecordPrefix, fingerprint))
}
