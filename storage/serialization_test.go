package storage

import (
	"testing"
	"time"

	"github.com/poiesic/talentsift/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("resume.pdf|jane doe")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.ErrorIs(t, err, ErrSerializationFailed)
}

func TestMarshalUnmarshalProfile(t *testing.T) {
	profile := &core.Profile{
		Id:       core.IDFromContent("alice.pdf"),
		Filename: "alice.pdf",
		FullText: "Senior Go engineer with Kubernetes experience",
		Sections: core.Sections{
			Summary:    "Senior Go engineer",
			Experience: "Built distributed pipelines at scale",
			Skills:     "Go, Kubernetes, PostgreSQL",
		},
		SkillSet: []string{"go", "kubernetes", "postgresql"},
	}

	data := MarshalProfile(profile)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalProfile(data)
	require.NoError(t, err)
	assert.Equal(t, profile.Id, decoded.Id)
	assert.Equal(t, profile.Filename, decoded.Filename)
	assert.Equal(t, profile.FullText, decoded.FullText)
	assert.Equal(t, profile.Sections, decoded.Sections)
	assert.Equal(t, profile.SkillSet, decoded.SkillSet)
}

func TestUnmarshalProfile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty data", []byte{}},
		{"invalid data", []byte{0xFF, 0xFF, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalProfile(tt.data)
			assert.ErrorIs(t, err, ErrSerializationFailed)
		})
	}
}

func TestMarshalUnmarshalVectorIndex(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	index := &core.VectorIndex{
		Dimension: 3,
		BuiltAt:   now,
		Ids:       []core.ID{1, 2},
		Vectors: [][]float32{
			{0.6, 0.8, 0.0},
			{0.0, 0.6, 0.8},
		},
	}

	data := MarshalVectorIndex(index)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalVectorIndex(data)
	require.NoError(t, err)
	assert.Equal(t, index.Dimension, decoded.Dimension)
	assert.True(t, index.BuiltAt.Equal(decoded.BuiltAt))
	assert.Equal(t, index.Ids, decoded.Ids)
	assert.Equal(t, index.Vectors, decoded.Vectors)
}

func TestMarshalUnmarshalRankedResultSet(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	semantic := 0.72
	set := &core.RankedResultSet{
		JDSkills: []string{"go", "sql"},
		Results: []core.ScoredResult{
			{
				ProfileId:     core.ID(11),
				Filename:      "a.pdf",
				LexicalScore:  0.9,
				SemanticScore: &semantic,
				SkillScore:    0.5,
				CombinedScore: 0.78,
				Rank:          1,
				MatchedSkills: []string{"go"},
				MissingSkills: []string{"sql"},
			},
			{
				ProfileId:     core.ID(12),
				Filename:      "b.pdf",
				LexicalScore:  0.4,
				SkillScore:    0.0,
				CombinedScore: 0.28,
				Rank:          2,
			},
		},
		Weights:  core.Weights{Lexical: 0.7, Skill: 0.3},
		RankedAt: now,
	}

	data := MarshalRankedResultSet(set)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalRankedResultSet(data)
	require.NoError(t, err)
	assert.Equal(t, set.JDSkills, decoded.JDSkills)
	require.Len(t, decoded.Results, 2)
	assert.Equal(t, set.Results[0].ProfileId, decoded.Results[0].ProfileId)
	require.NotNil(t, decoded.Results[0].SemanticScore)
	assert.InDelta(t, semantic, *decoded.Results[0].SemanticScore, 1e-9)
	assert.Nil(t, decoded.Results[1].SemanticScore)
	assert.Equal(t, set.Weights, decoded.Weights)
	assert.True(t, set.RankedAt.Equal(decoded.RankedAt))
}

func TestMarshalUnmarshalCacheEntry(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := &core.CacheEntry{
		Fingerprint: core.FingerprintFromContent("who has go experience?|5"),
		Response:    "The strongest Go candidate is Alice.",
		CreatedAt:   now,
	}

	data := MarshalCacheEntry(entry)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalCacheEntry(data)
	require.NoError(t, err)
	assert.Equal(t, entry.Fingerprint, decoded.Fingerprint)
	assert.Equal(t, entry.Response, decoded.Response)
	assert.True(t, entry.CreatedAt.Equal(decoded.CreatedAt))
}
