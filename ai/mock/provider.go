// Copyright 2025 Tessella Labs
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


package mock

import "github.com/tessella/newsdex/ai"

// MockProvider is a test double for ai.Provider.
// It aggregates mock sentiment analyzer and keyword extractor instances.
type MockProvider struct {
	sentiment *MockSentimentAnalyzer
	keywords  *MockKeywordExtractor
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.Provider interface for consistency with production constructors.
// Use GetMockSentimentAnalyzer()/GetMockKeywordExtractor() to access concrete
// types for test assertions.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		sentiment: NewMockSentimentAnalyzer(),
		keywords:  NewMockKeywordExtractor(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock services.
// This allows full control over the behavior of each service.
func NewMockProviderWithServices(sentiment *MockSentimentAnalyzer, keywords *MockKeywordExtractor) ai.Provider {
	return &MockProvider{
		sentiment: sentiment,
		keywords:  keywords,
	}
}

// SentimentAnalyzer returns the mock sentiment analyzer.
func (p *MockProvider) SentimentAnalyzer() ai.SentimentAnalyzer {
	return p.sentiment
}

// KeywordExtractor returns the mock keyword extractor.
func (p *MockProvider) KeywordExtractor() ai.KeywordExtractor {
	return p.keywords
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockSentimentAnalyzer returns the underlying mock analyzer for test assertions.
// This allows tests to check call counts and inject custom behavior.
func (p *MockProvider) GetMockSentimentAnalyzer() *MockSentimentAnalyzer {
	return p.sentiment
}

// GetMockKeywordExtractor returns the underlying mock extractor for test assertions.
// This allows tests to check call counts and inject custom behavior.
func (p *MockProvider) GetMockKeywordExtractor() *MockKeywordExtractor {
	return p.keywords
}
