package semindex

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/poiesic/talentsift/ai/mock"
	"github.com/poiesic/talentsift/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfiles(n int) []*core.Profile {
	profiles := make([]*core.Profile, n)
	for i := range profiles {
		filename := string(rune('a'+i)) + ".pdf"
		profiles[i] = &core.Profile{
			Id:       core.IDFromContent(filename),
			Filename: filename,
			FullText: "candidate " + filename + " experienced engineer",
		}
	}
	return profiles
}

func TestBuilder_Build(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	builder := NewBuilder(embedder, WithBatchSize(3))

	profiles := testProfiles(7)
	index, err := builder.Build(context.Background(), profiles)
	require.NoError(t, err)

	assert.Equal(t, 384, index.Dimension)
	require.Len(t, index.Ids, 7)
	require.Len(t, index.Vectors, 7)
	for i, profile := range profiles {
		assert.Equal(t, profile.Id, index.Ids[i])
	}
	assert.False(t, index.BuiltAt.IsZero())

	// Rows must be unit length
	for _, row := range index.Vectors {
		var norm float64
		for _, v := range row {
			norm += float64(v) * float64(v)
		}
		assert.InDelta(t, 1.0, norm, 1e-4)
	}
}

func TestBuilder_Build_Deterministic(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	builder := NewBuilder(embedder)

	profiles := testProfiles(4)
	first, err := builder.Build(context.Background(), profiles)
	require.NoError(t, err)
	second, err := builder.Build(context.Background(), profiles)
	require.NoError(t, err)

	assert.Equal(t, first.Vectors, second.Vectors)
}

func TestBuilder_Build_EmptyCorpus(t *testing.T) {
	builder := NewBuilder(mock.NewMockEmbedder())
	_, err := builder.Build(context.Background(), nil)
	assert.ErrorIs(t, err, core.ErrEmptyCorpus)
}

func TestBuilder_Build_Progress(t *testing.T) {
	var mu sync.Mutex
	var lastDone int

	embedder := mock.NewMockEmbedder()
	builder := NewBuilder(embedder,
		WithBatchSize(2),
		WithMaxConcurrency(1),
		WithProgress(func(done, total int) {
			mu.Lock()
			defer mu.Unlock()
			assert.Equal(t, 5, total)
			lastDone = done
		}))

	_, err := builder.Build(context.Background(), testProfiles(5))
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 5, lastDone)
}

func TestBuilder_Build_RetriesTransientFailure(t *testing.T) {
	attempts := 0
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("connection reset")
		}
		vectors := make([][]float32, len(texts))
		for i := range vectors {
			vectors[i] = []float32{1, 0, 0}
		}
		return vectors, nil
	}

	builder := NewBuilder(embedder, WithRetry(3, time.Millisecond))
	index, err := builder.Build(context.Background(), testProfiles(2))
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, 3, index.Dimension)
}

func TestBuilder_Build_PersistentFailure(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("service unavailable")
	}

	builder := NewBuilder(embedder, WithRetry(2, time.Millisecond))
	_, err := builder.Build(context.Background(), testProfiles(2))
	assert.Error(t, err)
}

func TestBuilder_Build_CountMismatch(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return [][]float32{{1, 0}}, nil
	}

	builder := NewBuilder(embedder, WithRetry(1, time.Millisecond))
	_, err := builder.Build(context.Background(), testProfiles(3))
	assert.ErrorIs(t, err, ErrEmbeddingCountMismatch)
}

func TestRetryWithBackoff_InvalidAttempts(t *testing.T) {
	err := RetryWithBackoff(context.Background(), func() error { return nil }, 0, time.Millisecond)
	assert.ErrorIs(t, err, ErrInvalidMaxAttempts)
}

func TestRetryWithBackoff_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error { return errors.New("boom") }, 3, time.Millisecond)
	assert.ErrorIs(t, err, context.Canceled)
}
