package mock

import (
	"github.com/poiesic/talentsift/ai"
)

// MockProvider aggregates mock AI services behind the ai.AIProvider interface.
type MockProvider struct {
	embedder  *MockEmbedder
	generator *MockAnswerGenerator
}

// NewMockProvider creates a provider backed by default mock services.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		embedder:  NewMockEmbedder(),
		generator: NewMockAnswerGenerator(),
	}
}

// Embedder returns the embedding service.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// AnswerGenerator returns the answer generation service.
func (p *MockProvider) AnswerGenerator() ai.AnswerGenerator {
	return p.generator
}

// Close releases resources. Mock services hold none.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockEmbedder returns the underlying mock embedder for behavior injection.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}

// GetMockGenerator returns the underlying mock generator for behavior injection.
func (p *MockProvider) GetMockGenerator() *MockAnswerGenerator {
	return p.generator
}
