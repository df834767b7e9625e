package mock

import (
	"context"
	"strings"

	"github.com/jeredhiggins/keyintent/ai"
)

// MockEntityExtractor is a test double for ai.EntityExtractor.
// It allows custom behavior injection via function fields.
type MockEntityExtractor struct {
	// ExtractEntitiesFunc is called by ExtractEntities if set.
	// If nil, uses default simple word recognition.
	ExtractEntitiesFunc func(ctx context.Context, text string) ([]ai.ExtractedEntity, error)

	callCount int
}

// NewMockEntityExtractor creates a mock entity extractor with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockExtractor().
func NewMockEntityExtractor() *MockEntityExtractor {
	return &MockEntityExtractor{}
}

// ExtractEntities recognizes simple mock entities in text.
// Default behavior: every word of 5+ letters becomes a "misc" entity,
// preserving input order, capped at 5 entities.
func (m *MockEntityExtractor) ExtractEntities(ctx context.Context, text string) ([]ai.ExtractedEntity, error) {
	m.callCount++

	if m.ExtractEntitiesFunc != nil {
		return m.ExtractEntitiesFunc(ctx, text)
	}

	words := strings.Fields(strings.ToLower(text))
	entities := make([]ai.ExtractedEntity, 0, len(words))
	for _, word := range words {
		if len(entities) >= 5 {
			break
		}

		word = strings.Trim(word, ".,!?;:\"'()[]{}—–-")
		if len(word) < 5 {
			continue
		}

		entities = append(entities, ai.ExtractedEntity{
			Text:       word,
			Type:       "misc",
			Confidence: 0.9,
		})
	}

	return entities, nil
}

// CallCount returns the number of times ExtractEntities was called.
func (m *MockEntityExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockEntityExtractor) Reset() {
	m.callCount = 0
	m.ExtractEntitiesFunc = nil
}
