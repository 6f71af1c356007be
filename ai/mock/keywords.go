package mock

import (
	"context"
	"strings"

	"github.com/tessella/newsdex/ai"
)

// MockKeywordExtractor is a test double for ai.KeywordExtractor.
// It allows custom behavior injection via function fields.
type MockKeywordExtractor struct {
	// ExtractKeywordsFunc is called by ExtractKeywords if set.
	// If nil, uses default simple word extraction.
	ExtractKeywordsFunc func(ctx context.Context, text string) ([]ai.ExtractedKeyword, error)

	callCount int
}

// NewMockKeywordExtractor creates a mock keyword extractor with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockKeywordExtractor().
func NewMockKeywordExtractor() *MockKeywordExtractor {
	return &MockKeywordExtractor{}
}

// ExtractKeywords extracts simple mock keywords from text.
// Default behavior: takes the first few longer words as keywords with
// descending relevance.
func (m *MockKeywordExtractor) ExtractKeywords(ctx context.Context, text string) ([]ai.ExtractedKeyword, error) {
	m.callCount++

	if m.ExtractKeywordsFunc != nil {
		return m.ExtractKeywordsFunc(ctx, text)
	}

	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return []ai.ExtractedKeyword{}, nil
	}

	keywords := make([]ai.ExtractedKeyword, 0, 5)
	relevance := 10
	for _, word := range words {
		if len(keywords) >= 5 {
			break
		}

		// Clean the word
		word = strings.Trim(word, ".,!?;:\"'()[]{}")
		if len(word) < 4 {
			continue
		}

		keywords = append(keywords, ai.ExtractedKeyword{
			Text:      word,
			Relevance: relevance,
		})

		// Decrease relevance for each subsequent keyword
		if relevance > 1 {
			relevance--
		}
	}

	return keywords, nil
}

// CallCount returns the number of times ExtractKeywords was called.
func (m *MockKeywordExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockKeywordExtractor) Reset() {
	m.callCount = 0
	m.ExtractKeywordsFunc = nil
}
