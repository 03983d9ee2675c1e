package ranking

import (
	"context"
	"log/slog"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/talentsift/core"
	"github.com/poiesic/talentsift/lexical"
	"github.com/poiesic/talentsift/skills"
)

// Ranker scores candidate corpora against job descriptions.
type Ranker struct {
	vocab  *skills.Vocabulary
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker) error

// WithPoolSize sets the worker pool size for partitioned scoring.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(r *Ranker) error {
		if size < 1 {
			size = 1
		}
		if r.pool != nil {
			r.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		r.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithVocabulary sets the skill vocabulary used to read the job description.
// Default is skills.DefaultVocabulary().
func WithVocabulary(vocab *skills.Vocabulary) Option {
	return func(r *Ranker) error {
		if vocab != nil {
			r.vocab = vocab
		}
		return nil
	}
}

// NewRanker creates a Ranker with its own worker pool.
// Caller must Release when done.
func NewRanker(opts ...Option) (*Ranker, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	r := &Ranker{
		vocab:  skills.DefaultVocabulary(),
		pool:   pool,
		logger: slog.Default().With("component", "ranking"),
	}
	for _, opt := range opts {
		if optErr := opt(r); optErr != nil {
			r.Release()
			return nil, optErr
		}
	}
	return r, nil
}

// Release releases the worker pool.
// The ranker should not be used after calling Release.
func (r *Ranker) Release() {
	if r.pool != nil {
		r.pool.Release()
	}
}

// Outcome is the product of a completed ranking run.
type Outcome struct {
	// Set is the ranked result set, ready for persistence.
	Set *core.RankedResultSet

	// LexicalParams is the fitted lexical model blob, persisted alongside
	// the result set so retrieval can re-score without re-fitting.
	LexicalParams []byte
}

// Rank scores every profile against the job description and returns the
// ranked outcome. topK > 0 truncates the result list, renumbering ranks
// 1..k. Returns core.ErrEmptyCorpus when profiles is empty and
// core.ErrEmptyJobDescription for a blank job description.
func (r *Ranker) Rank(ctx context.Context, jdText string, profiles []*core.Profile, topK int) (*Outcome, error) {
	if len(profiles) == 0 {
		return nil, core.ErrEmptyCorpus
	}
	if strings.TrimSpace(jdText) == "" {
		return nil, core.ErrEmptyJobDescription
	}

	start := time.Now()
	corpus := make([]core.Profile, len(profiles))
	for i, p := range profiles {
		corpus[i] = *p
	}

	sectionRanker, err := lexical.FitSectionRanker(corpus, lexical.WithLogger(r.logger))
	if err != nil {
		return nil, err
	}

	jdSkills := r.vocab.Extract(jdText)
	lexScores := sectionRanker.Score(jdText, jdSkills, corpus)

	r.logger.Info("scoring corpus",
		"profiles", len(corpus),
		"jdSkills", len(jdSkills),
		"sectionModels", sectionRanker.SectionCount())

	results := make([]core.ScoredResult, len(corpus))
	partitions := r.pool.Cap()
	if partitions > len(corpus) {
		partitions = len(corpus)
	}
	chunk := (len(corpus) + partitions - 1) / partitions

	var wg sync.WaitGroup
	var once sync.Once
	var workerErr error

	for lo := 0; lo < len(corpus); lo += chunk {
		hi := min(lo+chunk, len(corpus))
		wg.Add(1)
		submitErr := r.pool.Submit(func() {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					once.Do(func() { workerErr = err })
					return
				}
				results[i] = r.scoreProfile(&corpus[i], jdSkills, lexScores[i])
			}
		})
		if submitErr != nil {
			wg.Done()
			once.Do(func() { workerErr = submitErr })
			break
		}
	}
	wg.Wait()

	if workerErr != nil {
		return nil, workerErr
	}

	sortResults(results)
	for i := range results {
		results[i].Rank = i + 1
	}
	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}

	params, err := sectionRanker.MarshalParams()
	if err != nil {
		return nil, err
	}

	r.logger.Info("ranking complete",
		"profiles", len(corpus),
		"returned", len(results),
		"elapsed", time.Since(start))

	return &Outcome{
		Set: &core.RankedResultSet{
			JDSkills: jdSkills,
			Results:  results,
			Weights:  BatchWeights(),
			RankedAt: time.Now().UTC(),
		},
		LexicalParams: params,
	}, nil
}

func (r *Ranker) scoreProfile(profile *core.Profile, jdSkills []string, lexScore float64) core.ScoredResult {
	overlap := skills.OverlapScore(jdSkills, profile.SkillSet)
	matched, missing := skills.MatchedMissing(jdSkills, profile.SkillSet)

	return core.ScoredResult{
		ProfileId:     profile.Id,
		Filename:      profile.Filename,
		LexicalScore:  core.Round4(lexScore),
		SkillScore:    core.Round4(overlap),
		CombinedScore: core.Round4(CombineBatch(lexScore, overlap)),
		MatchedSkills: matched,
		MissingSkills: missing,
	}
}

// sortResults orders by combined score descending, breaking ties by
// lexical score descending and then filename ascending.
func sortResults(results []core.ScoredResult) {
	slices.SortFunc(results, func(a, b core.ScoredResult) int {
		if a.CombinedScore != b.CombinedScore {
			if a.CombinedScore > b.CombinedScore {
				return -1
			}
			return 1
		}
		if a.LexicalScore != b.LexicalScore {
			if a.LexicalScore > b.LexicalScore {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Filename, b.Filename)
	})
}
