package mock

import (
	"context"
	"strings"
	"sync"

	"github.com/poiesic/talentsift/ai"
)

// DefaultMockAnswer is the canned answer streamed when no override is set.
const DefaultMockAnswer = "Based on the provided candidate context, the strongest match is the first candidate."

// MockAnswerGenerator is a test double for ai.AnswerGenerator.
type MockAnswerGenerator struct {
	// StreamAnswerFunc overrides the default streaming behavior.
	StreamAnswerFunc func(ctx context.Context, systemPrompt, userPrompt string, fn ai.StreamFunc) error

	// Answer is the canned response streamed by the default behavior.
	// Defaults to DefaultMockAnswer.
	Answer string

	mu        sync.Mutex
	callCount int

	// LastSystemPrompt and LastUserPrompt record the most recent call's
	// prompts for assertion in tests.
	LastSystemPrompt string
	LastUserPrompt   string
}

// NewMockAnswerGenerator creates a MockAnswerGenerator with default behavior.
func NewMockAnswerGenerator() *MockAnswerGenerator {
	return &MockAnswerGenerator{Answer: DefaultMockAnswer}
}

// StreamAnswer streams the canned answer word by word through fn, or
// delegates to StreamAnswerFunc when set.
func (m *MockAnswerGenerator) StreamAnswer(ctx context.Context, systemPrompt, userPrompt string, fn ai.StreamFunc) error {
	m.mu.Lock()
	m.callCount++
	m.LastSystemPrompt = systemPrompt
	m.LastUserPrompt = userPrompt
	m.mu.Unlock()

	if m.StreamAnswerFunc != nil {
		return m.StreamAnswerFunc(ctx, systemPrompt, userPrompt, fn)
	}

	answer := m.Answer
	if answer == "" {
		answer = DefaultMockAnswer
	}
	words := strings.Fields(answer)
	for i, word := range words {
		if err := ctx.Err(); err != nil {
			return err
		}
		chunk := word
		if i < len(words)-1 {
			chunk += " "
		}
		if err := fn(ctx, []byte(chunk)); err != nil {
			return err
		}
	}
	return nil
}

// CallCount returns the number of StreamAnswer calls made so far.
func (m *MockAnswerGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}
