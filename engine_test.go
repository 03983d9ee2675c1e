package talentsift

import (
	"context"
	"strings"
	"testing"

	"github.com/poiesic/talentsift/ai/mock"
	"github.com/poiesic/talentsift/core"
	"github.com/poiesic/talentsift/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCollection(t *testing.T, opts ...CollectionOption) (*Collection, *mock.MockProvider) {
	t.Helper()

	provider := mock.NewMockProvider()
	opts = append([]CollectionOption{
		WithInMemoryStorage(),
		WithProvider(provider),
	}, opts...)

	collection, err := OpenCollection("", opts...)
	require.NoError(t, err)
	t.Cleanup(func() { collection.Close() })

	return collection, provider
}

func testProfiles() []*core.Profile {
	return []*core.Profile{
		{
			Id:       core.IDFromContent("go-dev.pdf"),
			Filename: "go-dev.pdf",
			FullText: "Senior Go engineer building Kubernetes platforms with Docker",
			Sections: core.Sections{
				Experience: "Senior Go engineer building Kubernetes platforms",
				Skills:     "Go, Kubernetes, Docker",
			},
			SkillSet: []string{"docker", "go", "kubernetes"},
		},
		{
			Id:       core.IDFromContent("py-dev.pdf"),
			Filename: "py-dev.pdf",
			FullText: "Python data engineer with Spark pipelines and SQL warehouses",
			Sections: core.Sections{
				Experience: "Python data engineer with Spark pipelines",
				Skills:     "Python, Spark, SQL",
			},
			SkillSet: []string{"python", "spark", "sql"},
		},
		{
			Id:       core.IDFromContent("js-dev.pdf"),
			Filename: "js-dev.pdf",
			FullText: "Frontend developer using React and TypeScript daily",
			Sections: core.Sections{
				Experience: "Frontend developer using React and TypeScript",
				Skills:     "JavaScript, React, TypeScript",
			},
			SkillSet: []string{"javascript", "react", "typescript"},
		},
	}
}

func TestCollection_IngestAndList(t *testing.T) {
	c, _ := newTestCollection(t)
	ctx := context.Background()

	require.NoError(t, c.IngestProfiles(ctx, testProfiles()...))

	stored, err := c.Profiles(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 3)

	// Re-ingesting the same filenames overwrites rather than duplicates.
	require.NoError(t, c.IngestProfiles(ctx, testProfiles()...))
	stored, err = c.Profiles(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestCollection_IngestRejectsInvalidProfile(t *testing.T) {
	c, _ := newTestCollection(t)

	err := c.IngestProfiles(context.Background(), &core.Profile{Filename: "empty.pdf"})
	assert.Error(t, err)

	count, err := c.repos.Profiles.CountProfiles(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCollection_RankPersistsArtifacts(t *testing.T) {
	c, _ := newTestCollection(t)
	ctx := context.Background()
	require.NoError(t, c.IngestProfiles(ctx, testProfiles()...))

	result, err := c.Rank(ctx, core.RankQuery{
		Text: "Looking for a Go engineer with Kubernetes and Docker experience",
	})
	require.NoError(t, err)
	require.Len(t, result.Results, 3)
	assert.Equal(t, "go-dev.pdf", result.Results[0].Filename)
	assert.Equal(t, 1, result.Results[0].Rank)

	persisted, err := c.LastRanking(ctx)
	require.NoError(t, err)
	assert.Equal(t, result.Results, persisted.Results)

	model, err := c.repos.Rankings.LoadLexicalModel(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, model)
}

func TestCollection_RankEmptyCorpus(t *testing.T) {
	c, _ := newTestCollection(t)

	_, err := c.Rank(context.Background(), core.RankQuery{Text: "any role"})
	assert.ErrorIs(t, err, core.ErrEmptyCorpus)

	_, err = c.LastRanking(context.Background())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCollection_BuildIndexAndStatus(t *testing.T) {
	c, _ := newTestCollection(t)
	ctx := context.Background()
	require.NoError(t, c.IngestProfiles(ctx, testProfiles()...))

	status, err := c.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, status.ProfileCount)
	assert.False(t, status.IndexBuilt)
	assert.False(t, status.RankingAvailable)

	stats, err := c.BuildIndex(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.VectorCount)
	assert.Equal(t, 384, stats.Dimension)

	_, err = c.Rank(ctx, core.RankQuery{Text: "Python data engineer with Spark"})
	require.NoError(t, err)

	status, err = c.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.IndexBuilt)
	assert.Equal(t, 3, status.IndexStats.VectorCount)
	assert.True(t, status.RankingAvailable)
	assert.NotEmpty(t, status.RankedAt)
}

func TestCollection_QueryStreamsAnswer(t *testing.T) {
	c, _ := newTestCollection(t)
	ctx := context.Background()
	require.NoError(t, c.IngestProfiles(ctx, testProfiles()...))

	ch, err := c.Query(ctx, core.RetrievalQuery{Text: "Who knows Go?", TopK: 3})
	require.NoError(t, err)

	var b strings.Builder
	for chunk := range ch {
		require.NoError(t, chunk.Err)
		b.WriteString(chunk.Text)
	}
	assert.Equal(t, mock.DefaultMockAnswer, b.String())

	// The lazy build during the query persisted an index.
	status, err := c.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.IndexBuilt)
}

func TestCollection_QueryEmptyCorpus(t *testing.T) {
	c, _ := newTestCollection(t)

	_, err := c.Query(context.Background(), core.RetrievalQuery{Text: "anyone?", TopK: 3})
	assert.ErrorIs(t, err, core.ErrEmptyCorpus)
}
