package ranking

import (
	"context"
	"testing"

	"github.com/poiesic/talentsift/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRankerForTest(t *testing.T) *Ranker {
	t.Helper()
	r, err := NewRanker(WithPoolSize(2))
	require.NoError(t, err)
	t.Cleanup(r.Release)
	return r
}

func profileFixture(filename, experience, skillsText string, skillSet ...string) *core.Profile {
	return &core.Profile{
		Id:       core.IDFromContent(filename),
		Filename: filename,
		FullText: experience + " " + skillsText,
		Sections: core.Sections{
			Experience: experience,
			Skills:     skillsText,
		},
		SkillSet: skillSet,
	}
}

func fixtureCorpus() []*core.Profile {
	return []*core.Profile{
		profileFixture("backend.pdf",
			"Built Go microservices with Kubernetes deployments and PostgreSQL storage for payment systems",
			"Go, Kubernetes, PostgreSQL, Docker",
			"docker", "go", "kubernetes", "postgresql"),
		profileFixture("frontend.pdf",
			"Developed React applications with TypeScript and modern tooling for consumer web products",
			"React, TypeScript, JavaScript, CSS",
			"css", "javascript", "react", "typescript"),
		profileFixture("data.pdf",
			"Designed Python data pipelines with Spark and Airflow plus PostgreSQL warehouses",
			"Python, Spark, Airflow, PostgreSQL, SQL",
			"airflow", "postgresql", "python", "spark", "sql"),
	}
}

const goJobDescription = `Senior backend engineer. Requirements: strong Go
experience, Kubernetes orchestration, PostgreSQL, and Docker containers for
building payment microservices.`

func TestRanker_Rank_OrdersByRelevance(t *testing.T) {
	r := newRankerForTest(t)

	outcome, err := r.Rank(context.Background(), goJobDescription, fixtureCorpus(), 0)
	require.NoError(t, err)

	set := outcome.Set
	require.Len(t, set.Results, 3)
	assert.Equal(t, "backend.pdf", set.Results[0].Filename)

	// Ranks are 1-based and contiguous, scores non-increasing.
	for i, res := range set.Results {
		assert.Equal(t, i+1, res.Rank)
		assert.GreaterOrEqual(t, res.CombinedScore, 0.0)
		assert.LessOrEqual(t, res.CombinedScore, 1.0)
		if i > 0 {
			assert.LessOrEqual(t, res.CombinedScore, set.Results[i-1].CombinedScore)
		}
	}

	assert.Equal(t, BatchWeights(), set.Weights)
	assert.False(t, set.RankedAt.IsZero())
	assert.NotEmpty(t, outcome.LexicalParams)
}

func TestRanker_Rank_Explainability(t *testing.T) {
	r := newRankerForTest(t)

	outcome, err := r.Rank(context.Background(), goJobDescription, fixtureCorpus(), 0)
	require.NoError(t, err)

	assert.Contains(t, outcome.Set.JDSkills, "go")
	assert.Contains(t, outcome.Set.JDSkills, "kubernetes")

	top := outcome.Set.Results[0]
	assert.Contains(t, top.MatchedSkills, "go")
	assert.NotContains(t, top.MissingSkills, "go")
	assert.True(t, sortedStrings(top.MatchedSkills))
	assert.True(t, sortedStrings(top.MissingSkills))
}

func TestRanker_Rank_Deterministic(t *testing.T) {
	r := newRankerForTest(t)

	first, err := r.Rank(context.Background(), goJobDescription, fixtureCorpus(), 0)
	require.NoError(t, err)
	second, err := r.Rank(context.Background(), goJobDescription, fixtureCorpus(), 0)
	require.NoError(t, err)

	require.Len(t, second.Set.Results, len(first.Set.Results))
	for i := range first.Set.Results {
		assert.Equal(t, first.Set.Results[i].Filename, second.Set.Results[i].Filename)
		assert.Equal(t, first.Set.Results[i].CombinedScore, second.Set.Results[i].CombinedScore)
	}
}

func TestRanker_Rank_TopKRenumbers(t *testing.T) {
	r := newRankerForTest(t)

	outcome, err := r.Rank(context.Background(), goJobDescription, fixtureCorpus(), 2)
	require.NoError(t, err)

	require.Len(t, outcome.Set.Results, 2)
	assert.Equal(t, 1, outcome.Set.Results[0].Rank)
	assert.Equal(t, 2, outcome.Set.Results[1].Rank)
}

func TestRanker_Rank_EmptyCorpus(t *testing.T) {
	r := newRankerForTest(t)

	_, err := r.Rank(context.Background(), goJobDescription, nil, 0)
	assert.ErrorIs(t, err, core.ErrEmptyCorpus)
}

func TestRanker_Rank_BlankJobDescription(t *testing.T) {
	r := newRankerForTest(t)

	_, err := r.Rank(context.Background(), "   \n\t", fixtureCorpus(), 0)
	assert.ErrorIs(t, err, core.ErrEmptyJobDescription)
}

func TestRanker_Rank_Cancellation(t *testing.T) {
	r := newRankerForTest(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Rank(ctx, goJobDescription, fixtureCorpus(), 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCombineBatch(t *testing.T) {
	tests := []struct {
		name     string
		lexical  float64
		skill    float64
		expected float64
	}{
		{"both zero", 0, 0, 0},
		{"both full", 1, 1, 1},
		{"lexical only", 1, 0, 0.7},
		{"skill only", 0, 1, 0.3},
		{"mixed", 0.5, 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CombineBatch(tt.lexical, tt.skill), 1e-9)
		})
	}
}

func TestCombineRetrieval(t *testing.T) {
	prior := 0.5

	t.Run("with prior ranking", func(t *testing.T) {
		got := CombineRetrieval(0.8, &prior, 0.6)
		assert.InDelta(t, 0.4*0.8+0.3*0.5+0.3*0.6, got, 1e-9)
	})

	t.Run("without prior ranking", func(t *testing.T) {
		got := CombineRetrieval(0.8, nil, 0.6)
		assert.InDelta(t, 0.6*0.8+0.4*0.6, got, 1e-9)
	})

	t.Run("clamped", func(t *testing.T) {
		high := 1.0
		assert.LessOrEqual(t, CombineRetrieval(1.0, &high, 1.0), 1.0)
	})
}

func sortedStrings(values []string) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			return false
		}
	}
	return true
}
