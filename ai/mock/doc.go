// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.SentimentAnalyzer,
// ai.KeywordExtractor, and ai.Provider for use in unit tests. The mocks allow
// tests to run without external AI service dependencies and enable controlled,
// deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	sentiment, err := mockProvider.SentimentAnalyzer().AnalyzeSentiment(ctx, "test")
//
//	// Custom behavior injection
//	mockSent := mock.NewMockSentimentAnalyzer()
//	mockSent.AnalyzeSentimentFunc = func(ctx context.Context, text string) (ai.Sentiment, error) {
//	    return ai.Sentiment{Score: 0.8, Label: "positive"}, nil
//	}
//
//	// Check call counts
//	count := mockSent.CallCount()
//
// # Default Behavior
//
// The mock implementations provide sensible defaults:
//
//   - MockSentimentAnalyzer: Scores deterministically from a small word lexicon
//   - MockKeywordExtractor: Extracts simple keywords from words in text
//   - MockProvider: Aggregates mock analyzer and extractor
package mock
