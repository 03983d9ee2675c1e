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

// Package talentsift ranks and retrieves resume candidates against job
// descriptions. The Collection type is the top-level facade wiring
// storage, AI services, batch ranking, and conversational retrieval.
package talentsift

import (
	"context"
	"errors"
	"log/slog"

	"github.com/poiesic/talentsift/ai"
	"github.com/poiesic/talentsift/ai/openai"
	"github.com/poiesic/talentsift/core"
	"github.com/poiesic/talentsift/ranking"
	"github.com/poiesic/talentsift/retrieval"
	"github.com/poiesic/talentsift/semindex"
	"github.com/poiesic/talentsift/storage"
	"github.com/poiesic/talentsift/storage/badger"
)

// Collection is a candidate pool with its ranking and retrieval machinery.
type Collection struct {
	repos        *badger.Repositories
	provider     ai.AIProvider
	ranker       *ranking.Ranker
	index        *semindex.Index
	builder      *semindex.Builder
	orchestrator *retrieval.Orchestrator
	logger       *slog.Logger
}

// CollectionOption configures a Collection.
type CollectionOption func(*collectionOptions)

type collectionOptions struct {
	aiConfig         *ai.Config
	provider         ai.AIProvider
	inMemory         bool
	poolSize         int
	retrievalOptions []retrieval.Option
	builderOptions   []semindex.BuilderOption
}

// WithAIConfig sets the AI endpoint configuration used to build the
// default OpenAI-compatible provider.
func WithAIConfig(cfg *ai.Config) CollectionOption {
	return func(o *collectionOptions) {
		if cfg != nil {
			o.aiConfig = cfg
		}
	}
}

// WithProvider substitutes a custom AI provider, bypassing the default
// OpenAI-compatible one. Used by tests with mock providers.
func WithProvider(provider ai.AIProvider) CollectionOption {
	return func(o *collectionOptions) {
		o.provider = provider
	}
}

// WithInMemoryStorage keeps all data in memory. Used by tests.
func WithInMemoryStorage() CollectionOption {
	return func(o *collectionOptions) {
		o.inMemory = true
	}
}

// WithScoringPoolSize sets the ranking worker pool size.
func WithScoringPoolSize(size int) CollectionOption {
	return func(o *collectionOptions) {
		o.poolSize = size
	}
}

// WithRetrievalOptions forwards options to the retrieval orchestrator.
func WithRetrievalOptions(opts ...retrieval.Option) CollectionOption {
	return func(o *collectionOptions) {
		o.retrievalOptions = append(o.retrievalOptions, opts...)
	}
}

// WithBuilderOptions forwards options to the semantic index builder.
func WithBuilderOptions(opts ...semindex.BuilderOption) CollectionOption {
	return func(o *collectionOptions) {
		o.builderOptions = append(o.builderOptions, opts...)
	}
}

// OpenCollection opens or creates a collection at the given path.
func OpenCollection(filePath string, opts ...CollectionOption) (*Collection, error) {
	options := &collectionOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	var repos *badger.Repositories
	var err error
	if options.inMemory {
		repos, err = badger.NewMemoryRepositories()
	} else {
		repos, err = badger.NewRepositories(filePath)
	}
	if err != nil {
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			repos.Close()
			return nil, err
		}
	}

	var rankerOpts []ranking.Option
	if options.poolSize > 0 {
		rankerOpts = append(rankerOpts, ranking.WithPoolSize(options.poolSize))
	}
	ranker, err := ranking.NewRanker(rankerOpts...)
	if err != nil {
		provider.Close()
		repos.Close()
		return nil, err
	}

	index := semindex.NewIndex()
	builder := semindex.NewBuilder(provider.Embedder(), options.builderOptions...)

	retrievalOpts := append([]retrieval.Option{
		retrieval.WithIndexRepository(repos.Index),
	}, options.retrievalOptions...)
	orchestrator, err := retrieval.NewOrchestrator(provider, index, builder,
		repos.Rankings, repos.Cache, retrievalOpts...)
	if err != nil {
		ranker.Release()
		provider.Close()
		repos.Close()
		return nil, err
	}

	c := &Collection{
		repos:        repos,
		provider:     provider,
		ranker:       ranker,
		index:        index,
		builder:      builder,
		orchestrator: orchestrator,
		logger:       slog.Default().With("component", "collection"),
	}

	// A previously persisted index serves queries until the next rebuild.
	if saved, loadErr := repos.Index.LoadIndex(context.Background()); loadErr == nil {
		index.Publish(saved)
	} else if !errors.Is(loadErr, storage.ErrNotFound) {
		c.logger.Warn("failed to load persisted index", "err", loadErr)
	}

	return c, nil
}

// Close releases all resources.
func (c *Collection) Close() error {
	c.ranker.Release()

	if err := c.provider.Close(); err != nil {
		c.logger.Error("error closing AI provider", "err", err)
	}

	if err := c.repos.Close(); err != nil {
		c.logger.Error("error closing storage", "err", err)
		return err
	}
	return nil
}

// IngestProfiles validates and stores profiles. Ingesting a filename that
// already exists overwrites the stored profile; any published index keeps
// serving until the next build.
func (c *Collection) IngestProfiles(ctx context.Context, profiles ...*core.Profile) error {
	for _, profile := range profiles {
		if err := core.ValidateProfile(profile); err != nil {
			return err
		}
		profile.SkillSet = core.NormalizeSkills(profile.SkillSet)
	}
	if err := c.repos.Profiles.PutProfiles(ctx, profiles...); err != nil {
		return err
	}
	c.logger.Info("profiles ingested", "count", len(profiles))
	return nil
}

// Profiles returns all stored profiles ordered by ID.
func (c *Collection) Profiles(ctx context.Context) ([]*core.Profile, error) {
	return c.repos.Profiles.ListProfiles(ctx)
}

// Rank runs a batch ranking of the whole corpus against a job description
// and persists the outcome. The result set and fitted lexical model are
// written only after scoring completes; a canceled run leaves no artifact.
func (c *Collection) Rank(ctx context.Context, query core.RankQuery) (*core.RankedResultSet, error) {
	if err := core.ValidateRankQuery(query); err != nil {
		return nil, err
	}

	profiles, err := c.repos.Profiles.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	outcome, err := c.ranker.Rank(ctx, query.Text, profiles, query.TopK)
	if err != nil {
		return nil, err
	}

	if err := c.repos.Rankings.SaveRankedResults(ctx, outcome.Set); err != nil {
		return nil, err
	}
	if err := c.repos.Rankings.SaveLexicalModel(ctx, outcome.LexicalParams); err != nil {
		return nil, err
	}

	return outcome.Set, nil
}

// LastRanking returns the most recent persisted batch ranking.
func (c *Collection) LastRanking(ctx context.Context) (*core.RankedResultSet, error) {
	return c.repos.Rankings.LoadRankedResults(ctx)
}

// BuildIndex embeds the full corpus and publishes a fresh vector index,
// replacing any previous one.
func (c *Collection) BuildIndex(ctx context.Context) (core.IndexStats, error) {
	profiles, err := c.repos.Profiles.ListProfiles(ctx)
	if err != nil {
		return core.IndexStats{}, err
	}

	index, err := c.builder.Build(ctx, profiles)
	if err != nil {
		return core.IndexStats{}, err
	}

	c.index.Publish(index)
	if err := c.repos.Index.SaveIndex(ctx, index); err != nil {
		return core.IndexStats{}, err
	}
	return index.Stats(), nil
}

// Query answers a question about the corpus, streaming the response.
func (c *Collection) Query(ctx context.Context, query core.RetrievalQuery) (<-chan retrieval.Chunk, error) {
	profiles, err := c.repos.Profiles.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	return c.orchestrator.Query(ctx, profiles, query)
}

// Status describes what the collection currently holds.
type Status struct {
	ProfileCount     int
	IndexBuilt       bool
	IndexStats       core.IndexStats
	RankingAvailable bool
	RankedAt         string
}

// Status reports corpus size, index readiness, and ranking availability.
func (c *Collection) Status(ctx context.Context) (*Status, error) {
	count, err := c.repos.Profiles.CountProfiles(ctx)
	if err != nil {
		return nil, err
	}

	status := &Status{ProfileCount: count}

	if snapshot, err := c.index.Snapshot(); err == nil {
		status.IndexBuilt = true
		status.IndexStats = snapshot.Stats()
	}

	ranked, err := c.repos.Rankings.LoadRankedResults(ctx)
	switch {
	case err == nil:
		status.RankingAvailable = true
		status.RankedAt = ranked.RankedAt.Format("2006-01-02T15:04:05Z07:00")
	case errors.Is(err, storage.ErrNotFound):
	default:
		return nil, err
	}

	return status, nil
}
