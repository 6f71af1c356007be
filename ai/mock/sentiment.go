package mock

import (
	"context"
	"strings"

	"github.com/tessella/newsdex/ai"
)

// MockSentimentAnalyzer is a test double for ai.SentimentAnalyzer.
// It allows custom behavior injection via function fields.
type MockSentimentAnalyzer struct {
	// AnalyzeSentimentFunc is called by AnalyzeSentiment if set.
	// If nil, uses default deterministic lexicon scoring.
	AnalyzeSentimentFunc func(ctx context.Context, text string) (ai.Sentiment, error)

	callCount int
}

// NewMockSentimentAnalyzer creates a mock analyzer with default deterministic behavior.
// Note: Returns concrete type to allow test assertions via GetMockSentimentAnalyzer().
func NewMockSentimentAnalyzer() *MockSentimentAnalyzer {
	return &MockSentimentAnalyzer{}
}

// AnalyzeSentiment scores text deterministically from a small word lexicon.
func (m *MockSentimentAnalyzer) AnalyzeSentiment(ctx context.Context, text string) (ai.Sentiment, error) {
	m.callCount++

	if m.AnalyzeSentimentFunc != nil {
		return m.AnalyzeSentimentFunc(ctx, text)
	}

	return scoreLexicon(text), nil
}

// CallCount returns the number of times AnalyzeSentiment was called.
func (m *MockSentimentAnalyzer) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockSentimentAnalyzer) Reset() {
	m.callCount = 0
	m.AnalyzeSentimentFunc = nil
}

var positiveWords = map[string]bool{
	"surge": true, "surges": true, "surged": true,
	"rally": true, "rallies": true, "rallied": true,
	"gain": true, "gains": true, "gained": true,
	"beat": true, "beats": true, "strong": true,
	"record": true, "growth": true, "profit": true,
	"soar": true, "soars": true, "soared": true,
}

var negativeWords = map[string]bool{
	"crash": true, "crashes": true, "crashed": true,
	"fear": true, "fears": true, "slump": true,
	"fall": true, "falls": true, "fell": true,
	"loss": true, "losses": true, "weak": true,
	"decline": true, "declines": true, "declined": true,
	"crisis": true, "fraud": true, "layoffs": true,
}

// scoreLexicon produces a deterministic sentiment from word counts.
// The same text always yields the same score, which keeps tests stable.
func scoreLexicon(text string) ai.Sentiment {
	var pos, neg int
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:\"'()[]{}")
		if positiveWords[word] {
			pos++
		}
		if negativeWords[word] {
			neg++
		}
	}

	if pos == 0 && neg == 0 {
		return ai.Sentiment{Score: 0.0, Label: "neutral"}
	}

	score := float64(pos-neg) / float64(pos+neg)
	label := "neutral"
	switch {
	case score >= 0.15:
		label = "positive"
	case score <= -0.15:
		label = "negative"
	}
	return ai.Sentiment{Score: score, Label: label}
}
