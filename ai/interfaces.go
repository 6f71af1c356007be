package ai

import "context"

// Sentiment is the tone analysis result for a piece of text.
type Sentiment struct {
	// Score is the overall tone in [-1, 1], negative to positive.
	Score float64

	// Label is the model's own classification of the tone:
	// "positive", "negative" or "neutral". Informational; the canonical
	// label stored on articles is derived from Score.
	Label string
}

// SentimentAnalyzer scores the emotional tone of text.
// Implementations must be thread-safe for concurrent use.
type SentimentAnalyzer interface {
	// AnalyzeSentiment scores the overall tone of the text.
	// Returns an error if the analysis fails.
	AnalyzeSentiment(ctx context.Context, text string) (Sentiment, error)
}

// KeywordExtractor extracts topical keywords from text.
// Implementations must be thread-safe for concurrent use.
type KeywordExtractor interface {
	// ExtractKeywords analyzes text and extracts its key topics with
	// relevance scores. Keywords represent the searchable subjects of the
	// text: companies, people, places, markets and the like.
	// Returns an empty slice if no keywords are found.
	// Returns an error if keyword extraction fails.
	ExtractKeywords(ctx context.Context, text string) ([]ExtractedKeyword, error)
}

// ExtractedKeyword represents a topical keyword identified in text.
type ExtractedKeyword struct {
	// Text is the keyword in lowercase, 1-3 words.
	// Example: "tesla", "interest rate", "european union"
	Text string

	// Relevance is a score from 1-10 indicating how central this keyword
	// is to the text. Higher scores = more relevant.
	Relevance int
}

// Provider aggregates AI services for convenient initialization and lifecycle
// management. A provider creates and manages SentimentAnalyzer and
// KeywordExtractor instances, ensuring they share configuration and
// resources appropriately.
type Provider interface {
	// SentimentAnalyzer returns the tone scoring service.
	// The returned SentimentAnalyzer is safe for concurrent use.
	SentimentAnalyzer() SentimentAnalyzer

	// KeywordExtractor returns the keyword extraction service.
	// The returned KeywordExtractor is safe for concurrent use.
	KeywordExtractor() KeywordExtractor

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
