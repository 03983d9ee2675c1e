// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package storage

import (
	"fmt"

	"github.com/poiesic/talentsift/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: id: %w", ErrSerializationFailed, err)
	}
	return id, nil
}

// MarshalProfile serializes a Profile to bytes.
func MarshalProfile(profile *core.Profile) []byte {
	buf := make([]byte, core.ProfileMUS.Size(*profile))
	core.ProfileMUS.Marshal(*profile, buf)
	return buf
}

// UnmarshalProfile deserializes a Profile from bytes.
func UnmarshalProfile(data []byte) (*core.Profile, error) {
	profile, _, err := core.ProfileMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: profile: %w", ErrSerializationFailed, err)
	}
	return &profile, nil
}

// MarshalVectorIndex serializes a VectorIndex to bytes.
func MarshalVectorIndex(index *core.VectorIndex) []byte {
	buf := make([]byte, core.VectorIndexMUS.Size(*index))
	core.VectorIndexMUS.Marshal(*index, buf)
	return buf
}

// UnmarshalVectorIndex deserializes a VectorIndex from bytes.
func UnmarshalVectorIndex(data []byte) (*core.VectorIndex, error) {
	index, _, err := core.VectorIndexMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: vector index: %w", ErrSerializationFailed, err)
	}
	return &index, nil
}

// MarshalRankedResultSet serializes a RankedResultSet to bytes.
func MarshalRankedResultSet(set *core.RankedResultSet) []byte {
	buf := make([]byte, core.RankedResultSetMUS.Size(*set))
	core.RankedResultSetMUS.Marshal(*set, buf)
	return buf
}

// UnmarshalRankedResultSet deserializes a RankedResultSet from bytes.
func UnmarshalRankedResultSet(data []byte) (*core.RankedResultSet, error) {
	set, _, err := core.RankedResultSetMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: ranked result set: %w", ErrSerializationFailed, err)
	}
	return &set, nil
}

// MarshalCacheEntry serializes a CacheEntry to bytes.
func MarshalCacheEntry(entry *core.CacheEntry) []byte {
	buf := make([]byte, core.CacheEntryMUS.Size(*entry))
	core.CacheEntryMUS.Marshal(*entry, buf)
	return buf
}

// UnmarshalCacheEntry deserializes a CacheEntry from bytes.
func UnmarshalCacheEntry(data []byte) (*core.CacheEntry, error) {
	entry, _, err := core.CacheEntryMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: cache entry: %w", ErrSerializationFailed, err)
	}
	return &entry, nil
}
