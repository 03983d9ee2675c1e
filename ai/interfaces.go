package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// StreamFunc receives one text fragment of a streamed answer.
// Returning an error stops generation; the error propagates out of
// StreamAnswer.
type StreamFunc func(ctx context.Context, chunk []byte) error

// AnswerGenerator produces a natural-language answer as a finite,
// non-restartable sequence of text fragments.
// Implementations must be thread-safe for concurrent use.
type AnswerGenerator interface {
	// StreamAnswer generates an answer from the prompts, invoking fn for
	// each fragment as it arrives. StreamAnswer returns once the stream
	// ends, fn returns an error, or the context is cancelled.
	StreamAnswer(ctx context.Context, systemPrompt, userPrompt string, fn StreamFunc) error
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages Embedder and
// AnswerGenerator instances, ensuring they share configuration.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// AnswerGenerator returns the answer generation service.
	// The returned AnswerGenerator is safe for concurrent use.
	AnswerGenerator() AnswerGenerator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
