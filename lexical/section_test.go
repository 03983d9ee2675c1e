package lexical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/talentsift/core"
)

func testProfiles() []core.Profile {
	return []core.Profile{
		{
			Id:       core.IDFromContent("backend.txt"),
			Filename: "backend.txt",
			FullText: "Built APIs with Python and FastAPI. Skills: python, sql, docker.",
			Sections: core.Sections{
				Experience: "Built APIs with Python and FastAPI for payment processing",
				Skills:     "python sql docker postgresql",
				Projects:   "payment gateway in python",
			},
			SkillSet: []string{"docker", "python", "sql"},
		},
		{
			Id:       core.IDFromContent("frontend.txt"),
			Filename: "frontend.txt",
			FullText: "Frontend developer. Skills: python, javascript.",
			Sections: core.Sections{
				Experience: "Developed single page applications with JavaScript and React",
				Skills:     "python javascript react",
				Projects:   "dashboard ui in react",
			},
			SkillSet: []string{"javascript", "python"},
		},
		{
			Id:       core.IDFromContent("devops.txt"),
			Filename: "devops.txt",
			FullText: "DevOps engineer. Skills: docker, kubernetes.",
			Sections: core.Sections{
				Experience: "Automated deployments with Docker and Kubernetes",
				Skills:     "docker kubernetes terraform",
				Projects:   "cluster migration to kubernetes",
			},
			SkillSet: []string{"docker", "kubernetes", "terraform"},
		},
	}
}

func TestFitSectionRanker(t *testing.T) {
	t.Run("fits weighted sections", func(t *testing.T) {
		r, err := FitSectionRanker(testProfiles())
		require.NoError(t, err)
		assert.Greater(t, r.SectionCount(), 0)
	})

	t.Run("empty corpus", func(t *testing.T) {
		_, err := FitSectionRanker(nil)
		assert.ErrorIs(t, err, core.ErrEmptyCorpus)
	})

	t.Run("falls back to whole document when sections empty", func(t *testing.T) {
		profiles := []core.Profile{
			{Id: 1, Filename: "a.txt", FullText: "python backend developer"},
			{Id: 2, Filename: "b.txt", FullText: "react frontend developer"},
		}
		r, err := FitSectionRanker(profiles)
		require.NoError(t, err)
		assert.Equal(t, 0, r.SectionCount())

		sims := r.Similarities("python backend")
		require.Len(t, sims, 2)
		assert.Greater(t, sims[0], sims[1])
	})

	t.Run("fully degenerate corpus scores zero", func(t *testing.T) {
		profiles := []core.Profile{
			{Id: 1, Filename: "a.txt", FullText: "the and of"},
			{Id: 2, Filename: "b.txt", FullText: "is was were"},
		}
		r, err := FitSectionRanker(profiles)
		require.NoError(t, err)

		sims := r.Similarities("python backend")
		assert.Equal(t, []float64{0, 0}, sims)
	})
}

func TestSimilarities(t *testing.T) {
	profiles := testProfiles()
	r, err := FitSectionRanker(profiles)
	require.NoError(t, err)

	sims := r.Similarities("Need Python and SQL backend engineer to build APIs with FastAPI")
	require.Len(t, sims, len(profiles))

	for i, s := range sims {
		assert.GreaterOrEqual(t, s, 0.0, "profile %d", i)
		assert.LessOrEqual(t, s, 1.0, "profile %d", i)
	}
	// the backend profile shares API/python/fastapi terms
	assert.Greater(t, sims[0], sims[2])
}

func TestScoreAppliesSkillBoost(t *testing.T) {
	profiles := testProfiles()
	r, err := FitSectionRanker(profiles)
	require.NoError(t, err)

	jd := "Need Python and SQL backend engineer"
	jdSkills := []string{"python", "sql"}

	base := r.Similarities(jd)
	boosted := r.Score(jd, jdSkills, profiles)

	// backend profile has full overlap, boost factor 1.5
	assert.InDelta(t, min(base[0]*1.5, 1.0), boosted[0], 1e-9)
	// frontend profile overlaps only python, boost factor 1.25
	assert.InDelta(t, min(base[1]*1.25, 1.0), boosted[1], 1e-9)

	for _, s := range boosted {
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestSkillBoostFactor(t *testing.T) {
	assert.Equal(t, 1.0, SkillBoostFactor(0))
	assert.Equal(t, 1.25, SkillBoostFactor(0.5))
	assert.Equal(t, 1.5, SkillBoostFactor(1))
	// out-of-range overlap clamps to the valid factor range
	assert.Equal(t, 1.5, SkillBoostFactor(2))
	assert.Equal(t, 1.0, SkillBoostFactor(-1))
}

func TestSectionRankerParamsRoundTrip(t *testing.T) {
	profiles := testProfiles()
	r, err := FitSectionRanker(profiles)
	require.NoError(t, err)

	blob, err := r.MarshalParams()
	require.NoError(t, err)

	restored, err := LoadSectionRanker(blob, profiles)
	require.NoError(t, err)

	jd := "python sql backend"
	orig := r.Similarities(jd)
	got := restored.Similarities(jd)
	require.Len(t, got, len(orig))
	for i := range orig {
		assert.InDelta(t, orig[i], got[i], 1e-12)
	}
}
