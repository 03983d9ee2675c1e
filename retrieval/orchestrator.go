package retrieval

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/poiesic/talentsift/ai"
	"github.com/poiesic/talentsift/core"
	"github.com/poiesic/talentsift/ranking"
	"github.com/poiesic/talentsift/semindex"
	"github.com/poiesic/talentsift/skills"
	"github.com/poiesic/talentsift/storage"
)

const (
	// DefaultCacheTTL is how long a cached response stays valid.
	DefaultCacheTTL = time.Hour

	// DefaultShortlistSize is the semantic shortlist size before re-ranking.
	DefaultShortlistSize = 50

	// DefaultIdleTimeout aborts a stream that produced no output for this long.
	DefaultIdleTimeout = 60 * time.Second

	chunkBufferSize  = 16
	errorChunkPrefix = "Error:"
)

// errStreamAborted terminates generation after an error-prefixed chunk.
var errStreamAborted = errors.New("stream aborted on error chunk")

// Chunk is one piece of a streamed answer. Err, when set, is terminal.
type Chunk struct {
	Text string
	Err  error
}

// Orchestrator runs the two-stage retrieval pipeline and streams answers.
type Orchestrator struct {
	embedder      ai.Embedder
	generator     ai.AnswerGenerator
	index         *semindex.Index
	builder       *semindex.Builder
	rankings      storage.RankingRepository
	cache         storage.CacheRepository
	indexStore    storage.IndexRepository
	vocab         *skills.Vocabulary
	monitor       Monitor
	cacheTTL      time.Duration
	shortlistSize int
	idleTimeout   time.Duration
	logger        *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) error {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
		return nil
	}
}

// WithMonitor sets the retrieval monitor. Default is a no-op monitor.
func WithMonitor(monitor Monitor) Option {
	return func(o *Orchestrator) error {
		if monitor != nil {
			o.monitor = monitor
		}
		return nil
	}
}

// WithCacheTTL overrides the response cache TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *Orchestrator) error {
		if ttl > 0 {
			o.cacheTTL = ttl
		}
		return nil
	}
}

// WithShortlistSize overrides the semantic shortlist size.
func WithShortlistSize(n int) Option {
	return func(o *Orchestrator) error {
		if n > 0 {
			o.shortlistSize = n
		}
		return nil
	}
}

// WithIdleTimeout overrides the stream idle watchdog timeout.
func WithIdleTimeout(d time.Duration) Option {
	return func(o *Orchestrator) error {
		if d > 0 {
			o.idleTimeout = d
		}
		return nil
	}
}

// WithIndexRepository enables persistence of lazily built indexes.
func WithIndexRepository(repo storage.IndexRepository) Option {
	return func(o *Orchestrator) error {
		o.indexStore = repo
		return nil
	}
}

// WithVocabulary sets the skill vocabulary used to read queries.
// Default is skills.DefaultVocabulary().
func WithVocabulary(vocab *skills.Vocabulary) Option {
	return func(o *Orchestrator) error {
		if vocab != nil {
			o.vocab = vocab
		}
		return nil
	}
}

// NewOrchestrator creates a retrieval orchestrator.
func NewOrchestrator(
	provider ai.AIProvider,
	index *semindex.Index,
	builder *semindex.Builder,
	rankings storage.RankingRepository,
	cache storage.CacheRepository,
	opts ...Option,
) (*Orchestrator, error) {
	if provider == nil {
		return nil, ErrAIProviderRequired
	}
	if rankings == nil {
		return nil, ErrRankingRepositoryRequired
	}
	if cache == nil {
		return nil, ErrCacheRepositoryRequired
	}

	o := &Orchestrator{
		embedder:      provider.Embedder(),
		generator:     provider.AnswerGenerator(),
		index:         index,
		builder:       builder,
		rankings:      rankings,
		cache:         cache,
		vocab:         skills.DefaultVocabulary(),
		monitor:       &noopMonitor{},
		cacheTTL:      DefaultCacheTTL,
		shortlistSize: DefaultShortlistSize,
		idleTimeout:   DefaultIdleTimeout,
		logger:        slog.Default().With("component", "retrieval"),
	}

	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Fingerprint derives the cache key for a query's text.
func Fingerprint(text string) string {
	return core.FingerprintFromContent(strings.ToLower(strings.TrimSpace(text)))
}

// Query runs the retrieval pipeline for a query over the given profile
// corpus and returns a bounded channel of answer chunks. The channel is
// closed by the producer. Synchronous failures (validation, embedding,
// index build) are returned as errors before any channel exists; failures
// during generation arrive as a terminal Chunk with Err set.
func (o *Orchestrator) Query(ctx context.Context, profiles []*core.Profile, query core.RetrievalQuery) (<-chan Chunk, error) {
	if err := core.ValidateRetrievalQuery(query); err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, core.ErrEmptyCorpus
	}

	queryID := uuid.NewString()
	logger := o.logger.With("queryID", queryID)
	o.monitor.Start(queryID, query.Text)

	fingerprint := Fingerprint(query.Text)
	if entry, err := o.cache.GetCachedResponse(ctx, fingerprint, o.cacheTTL); err == nil {
		logger.Debug("cache hit", "fingerprint", fingerprint)
		o.monitor.CacheHit(fingerprint)
		out := make(chan Chunk, 1)
		out <- Chunk{Text: entry.Response}
		close(out)
		o.monitor.Finish(entry.Response, false)
		return out, nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		// A broken cache degrades to recomputation, never to failure.
		logger.Warn("cache lookup failed", "err", err)
	}

	candidates, err := o.shortlist(ctx, profiles, query, logger)
	if err != nil {
		return nil, err
	}

	out := make(chan Chunk, chunkBufferSize)

	if len(candidates) == 0 {
		logger.Info("no candidates survived filtering")
		out <- Chunk{Text: emptyResultMessage}
		close(out)
		o.monitor.Finish(emptyResultMessage, false)
		return out, nil
	}

	hasPrior := candidates[0].hasPriorRanking
	profileByID := make(map[core.ID]*core.Profile, len(profiles))
	for _, p := range profiles {
		profileByID[p.Id] = p
	}
	results := make([]core.ScoredResult, len(candidates))
	for i, c := range candidates {
		results[i] = c.result
	}

	systemPrompt := SystemPrompt(hasPrior)
	userPrompt := UserPrompt(query.Text, results, profileByID, query.IncludeContext)

	go o.stream(ctx, out, systemPrompt, userPrompt, fingerprint, logger)

	return out, nil
}

type candidate struct {
	result          core.ScoredResult
	skillSet        []string
	hasPriorRanking bool
}

// shortlist runs the synchronous retrieval stages: index readiness,
// semantic search, score combination, filtering, and truncation.
func (o *Orchestrator) shortlist(ctx context.Context, profiles []*core.Profile, query core.RetrievalQuery, logger *slog.Logger) ([]candidate, error) {
	snapshot, err := o.index.Snapshot()
	if errors.Is(err, core.ErrIndexNotFound) {
		logger.Info("no vector index published, building", "profiles", len(profiles))
		snapshot, err = o.builder.Build(ctx, profiles)
		if err != nil {
			return nil, err
		}
		o.index.Publish(snapshot)
		if o.indexStore != nil {
			if saveErr := o.indexStore.SaveIndex(ctx, snapshot); saveErr != nil {
				logger.Warn("failed to persist lazily built index", "err", saveErr)
			}
		}
	} else if err != nil {
		return nil, err
	}
	o.monitor.IndexReady(snapshot.Stats())

	queryVec, err := o.embedder.EmbedText(ctx, query.Text)
	if err != nil {
		logger.Error("error embedding query", "err", err)
		return nil, err
	}

	matches, err := o.index.Search(queryVec, o.shortlistSize)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, len(matches))
	for i, m := range matches {
		ids[i] = uint64(m.ProfileId)
	}
	o.monitor.AfterSemanticShortlist(ids)

	var priorLookup map[core.ID]*core.ScoredResult
	prior, err := o.rankings.LoadRankedResults(ctx)
	switch {
	case err == nil:
		priorLookup = prior.Lookup()
	case errors.Is(err, storage.ErrNotFound):
		// First query against a corpus that was never batch ranked.
	default:
		return nil, err
	}

	profileByID := make(map[core.ID]*core.Profile, len(profiles))
	for _, p := range profiles {
		profileByID[p.Id] = p
	}
	querySkills := o.vocab.Extract(query.Text)

	candidates := make([]candidate, 0, len(matches))
	for _, match := range matches {
		profile, ok := profileByID[match.ProfileId]
		if !ok {
			// Stale index row for a profile that has since been removed.
			continue
		}

		overlap := skills.OverlapScore(querySkills, profile.SkillSet)
		matched, missing := skills.MatchedMissing(querySkills, profile.SkillSet)

		var priorScore *float64
		rank := core.DefaultWorstRank
		if priorLookup != nil {
			if prev, ok := priorLookup[match.ProfileId]; ok {
				priorScore = &prev.CombinedScore
				rank = prev.Rank
			} else {
				// A ranked collection weighs every candidate the same way;
				// one the ranking never saw contributes a zero prior.
				zero := 0.0
				priorScore = &zero
			}
		}

		semantic := core.Round4(match.Similarity)
		candidates = append(candidates, candidate{
			result: core.ScoredResult{
				ProfileId:     profile.Id,
				Filename:      profile.Filename,
				SemanticScore: &semantic,
				SkillScore:    core.Round4(overlap),
				CombinedScore: core.Round4(ranking.CombineRetrieval(match.Similarity, priorScore, overlap)),
				Rank:          rank,
				MatchedSkills: matched,
				MissingSkills: missing,
			},
			skillSet:        profile.SkillSet,
			hasPriorRanking: priorLookup != nil,
		})
	}

	combined := make([]core.ScoredResult, len(candidates))
	for i, c := range candidates {
		combined[i] = c.result
	}
	o.monitor.AfterCombine(combined)

	candidates = applyFilters(candidates, query.Filters)

	slices.SortFunc(candidates, func(a, b candidate) int {
		if a.result.CombinedScore != b.result.CombinedScore {
			if a.result.CombinedScore > b.result.CombinedScore {
				return -1
			}
			return 1
		}
		if *a.result.SemanticScore != *b.result.SemanticScore {
			if *a.result.SemanticScore > *b.result.SemanticScore {
				return -1
			}
			return 1
		}
		return strings.Compare(a.result.Filename, b.result.Filename)
	})

	if query.TopK > 0 && len(candidates) > query.TopK {
		candidates = candidates[:query.TopK]
	}

	survivors := make([]core.ScoredResult, len(candidates))
	for i, c := range candidates {
		survivors[i] = c.result
	}
	o.monitor.AfterFilters(survivors)

	return candidates, nil
}

// applyFilters drops candidates failing any of the conjunctive conditions.
// Note the rank-bound inversion documented on core.Filters: the min bound
// keeps ranks at or below its value, the max bound keeps ranks at or above.
func applyFilters(candidates []candidate, filters core.Filters) []candidate {
	required := core.NormalizeSkills(filters.RequiredSkills)

	out := candidates[:0]
	for _, c := range candidates {
		if filters.MinRankPosition != nil && c.result.Rank > *filters.MinRankPosition {
			continue
		}
		if filters.MaxRankPosition != nil && c.result.Rank < *filters.MaxRankPosition {
			continue
		}
		if filters.MinScore != nil && c.result.CombinedScore < *filters.MinScore {
			continue
		}
		if len(required) > 0 && !hasAnySkill(c.skillSet, required) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// hasAnySkill reports whether the profile's skill set intersects the
// required set. Matching runs against the full skill set, not just the
// skills the query happened to mention.
func hasAnySkill(skillSet, required []string) bool {
	for _, want := range required {
		for _, have := range skillSet {
			if have == want {
				return true
			}
		}
	}
	return false
}

// stream runs the generator, forwarding chunks to out and accumulating the
// full response for caching. Closes out when done.
func (o *Orchestrator) stream(ctx context.Context, out chan<- Chunk, systemPrompt, userPrompt, fingerprint string, logger *slog.Logger) {
	defer close(out)

	streamCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	watchdog := time.AfterFunc(o.idleTimeout, func() {
		cancel(ErrStreamIdle)
	})
	defer watchdog.Stop()

	var full strings.Builder
	var sawErrorChunk bool

	o.monitor.StreamStarted()
	start := time.Now()

	err := o.generator.StreamAnswer(streamCtx, systemPrompt, userPrompt, func(_ context.Context, chunk []byte) error {
		watchdog.Reset(o.idleTimeout)
		text := string(chunk)

		select {
		case out <- Chunk{Text: text}:
		case <-streamCtx.Done():
			return context.Cause(streamCtx)
		}

		o.monitor.StreamChunk(len(chunk))
		full.WriteString(text)

		if full.Len() == len(text) && strings.HasPrefix(text, errorChunkPrefix) {
			sawErrorChunk = true
			return errStreamAborted
		}
		return nil
	})

	response := full.String()

	switch {
	case err == nil && !sawErrorChunk:
		entry := &core.CacheEntry{
			Fingerprint: fingerprint,
			Response:    response,
			CreatedAt:   time.Now().UTC(),
		}
		if cacheErr := o.cache.PutCachedResponse(ctx, entry); cacheErr != nil {
			logger.Warn("failed to cache response", "err", cacheErr)
		}
		logger.Info("answer streamed", "bytes", len(response), "elapsed", time.Since(start))
		o.monitor.Finish(response, true)

	case errors.Is(err, errStreamAborted):
		// The error-prefixed chunk was already forwarded as terminal output.
		logger.Warn("generator reported an error in-band")
		o.monitor.Finish(response, false)

	case errors.Is(context.Cause(streamCtx), ErrStreamIdle):
		logger.Error("stream aborted by idle watchdog", "idleTimeout", o.idleTimeout)
		select {
		case out <- Chunk{Err: ErrStreamIdle}:
		default:
		}
		o.monitor.Finish(response, false)

	case ctx.Err() != nil:
		// Consumer abandoned the stream; nothing left to deliver.
		logger.Debug("stream canceled by consumer")
		o.monitor.Finish(response, false)

	default:
		logger.Error("generator failed", "err", err)
		select {
		case out <- Chunk{Err: err}:
		case <-ctx.Done():
		}
		o.monitor.Finish(response, false)
	}
}
