package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVocabulary(t *testing.T) {
	t.Run("valid entries", func(t *testing.T) {
		v, err := NewVocabulary([]string{"python", "machine learning"}, nil)
		require.NoError(t, err)
		assert.NotNil(t, v)
	})

	t.Run("empty entry list", func(t *testing.T) {
		_, err := NewVocabulary(nil, nil)
		assert.ErrorIs(t, err, ErrEmptyVocabulary)
	})

	t.Run("entry normalizing to empty", func(t *testing.T) {
		_, err := NewVocabulary([]string{"!!!"}, nil)
		assert.ErrorIs(t, err, ErrInvalidEntry)
	})

	t.Run("duplicate after normalization", func(t *testing.T) {
		_, err := NewVocabulary([]string{"python", "Python!"}, nil)
		assert.ErrorIs(t, err, ErrDuplicateEntry)
	})
}

func TestExtract(t *testing.T) {
	v := DefaultVocabulary()

	t.Run("word boundary prevents partial token match", func(t *testing.T) {
		found := v.Extract("Senior JavaScript developer")
		assert.Contains(t, found, "javascript")
		assert.NotContains(t, found, "java")
	})

	t.Run("aliases are canonicalized", func(t *testing.T) {
		found := v.Extract("Expert in C++ and Node.js, set up CI/CD pipelines")
		assert.Contains(t, found, "cpp")
		assert.Contains(t, found, "nodejs")
		assert.Contains(t, found, "cicd")
	})

	t.Run("multi-word skills match as substrings", func(t *testing.T) {
		found := v.Extract("applied machine learning to fraud detection")
		assert.Contains(t, found, "machine learning")
	})

	t.Run("duplicates collapse and output is sorted", func(t *testing.T) {
		found := v.Extract("python python PYTHON docker")
		assert.Equal(t, []string{"docker", "python"}, found)
	})

	t.Run("empty text yields empty set", func(t *testing.T) {
		assert.Empty(t, v.Extract(""))
		assert.Empty(t, v.Extract("   \n\t"))
	})
}

func TestOverlapScore(t *testing.T) {
	tests := []struct {
		name    string
		query   []string
		profile []string
		want    float64
	}{
		{"full overlap", []string{"python", "sql"}, []string{"python", "sql", "docker"}, 1.0},
		{"half overlap", []string{"python", "rust"}, []string{"python"}, 0.5},
		{"no overlap", []string{"rust"}, []string{"python"}, 0.0},
		{"empty query never NaN", nil, []string{"python"}, 0.0},
		{"empty profile", []string{"python"}, nil, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverlapScore(tt.query, tt.profile))
		})
	}
}

func TestMatchedMissing(t *testing.T) {
	matched, missing := MatchedMissing(
		[]string{"sql", "python", "rust"},
		[]string{"python", "sql", "docker"},
	)
	assert.Equal(t, []string{"python", "sql"}, matched)
	assert.Equal(t, []string{"rust"}, missing)
}
