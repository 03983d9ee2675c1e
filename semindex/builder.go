package semindex

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/poiesic/talentsift/ai"
	"github.com/poiesic/talentsift/core"
)

const (
	defaultBatchSize      = 32
	defaultMaxConcurrency = 4
	defaultMaxRetries     = 3
	defaultRetryBaseDelay = 500 * time.Millisecond
)

// ProgressFunc receives build progress updates as (embedded, total) profile
// counts. Called from multiple goroutines; implementations must be safe.
type ProgressFunc func(done, total int)

// Builder embeds profile texts and assembles vector indexes.
type Builder struct {
	embedder       ai.Embedder
	batchSize      int
	maxConcurrency int
	maxRetries     int
	retryBaseDelay time.Duration
	progress       ProgressFunc
	logger         *slog.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithBatchSize sets how many texts are embedded per API call.
func WithBatchSize(n int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.batchSize = n
		}
	}
}

// WithMaxConcurrency bounds the number of in-flight embedding batches.
func WithMaxConcurrency(n int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.maxConcurrency = n
		}
	}
}

// WithRetry configures per-batch retry behavior.
func WithRetry(maxRetries int, baseDelay time.Duration) BuilderOption {
	return func(b *Builder) {
		if maxRetries > 0 {
			b.maxRetries = maxRetries
		}
		if baseDelay > 0 {
			b.retryBaseDelay = baseDelay
		}
	}
}

// WithProgress registers a progress callback.
func WithProgress(fn ProgressFunc) BuilderOption {
	return func(b *Builder) {
		b.progress = fn
	}
}

// WithBuilderLogger sets the logger used during builds.
func WithBuilderLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBuilder creates a Builder over the given embedder.
func NewBuilder(embedder ai.Embedder, opts ...BuilderOption) *Builder {
	b := &Builder{
		embedder:       embedder,
		batchSize:      defaultBatchSize,
		maxConcurrency: defaultMaxConcurrency,
		maxRetries:     defaultMaxRetries,
		retryBaseDelay: defaultRetryBaseDelay,
		logger:         slog.Default().With("component", "semindex.builder"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build embeds every profile's full text and returns an immutable index.
// Rows are L2-normalized and row i belongs to Ids[i], in profile order.
// Returns core.ErrEmptyCorpus when profiles is empty.
func (b *Builder) Build(ctx context.Context, profiles []*core.Profile) (*core.VectorIndex, error) {
	if len(profiles) == 0 {
		return nil, core.ErrEmptyCorpus
	}

	total := len(profiles)
	vectors := make([][]float32, total)
	var done atomic.Int64

	b.logger.Info("building vector index", "profiles", total, "batchSize", b.batchSize)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.maxConcurrency)

	for lo := 0; lo < total; lo += b.batchSize {
		hi := min(lo+b.batchSize, total)
		g.Go(func() error {
			texts := make([]string, hi-lo)
			for i := lo; i < hi; i++ {
				texts[i-lo] = profiles[i].FullText
			}

			var embeddings [][]float32
			err := RetryWithBackoff(gctx, func() error {
				var err error
				embeddings, err = b.embedder.EmbedTexts(gctx, texts)
				return err
			}, b.maxRetries, b.retryBaseDelay)
			if err != nil {
				return fmt.Errorf("failed to embed batch [%d:%d] after %d attempts: %w", lo, hi, b.maxRetries, err)
			}
			if len(embeddings) != len(texts) {
				return fmt.Errorf("%w: expected %d, got %d", ErrEmbeddingCountMismatch, len(texts), len(embeddings))
			}

			for i := range embeddings {
				vectors[lo+i] = NormalizeVector(embeddings[i])
			}

			if b.progress != nil {
				b.progress(int(done.Add(int64(hi-lo))), total)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	dimension := len(vectors[0])
	for i, vec := range vectors {
		if len(vec) != dimension {
			return nil, fmt.Errorf("%w: row %d has %d, expected %d", ErrDimensionMismatch, i, len(vec), dimension)
		}
	}

	ids := make([]core.ID, total)
	for i, profile := range profiles {
		ids[i] = profile.Id
	}

	index := &core.VectorIndex{
		Dimension: dimension,
		BuiltAt:   time.Now().UTC(),
		Ids:       ids,
		Vectors:   vectors,
	}

	b.logger.Info("vector index built",
		"profiles", total,
		"dimension", dimension,
		"elapsed", time.Since(start))

	return index, nil
}
