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


// Package ai provides abstractions for the AI services used in Newsdex.
//
// This package defines interfaces for AI operations including sentiment
// analysis and keyword extraction. It follows the dependency inversion
// principle, allowing the core domain and business logic to depend on
// abstractions rather than concrete implementations.
//
// # Design Principles
//
// The package is designed around three key interfaces:
//
//   - SentimentAnalyzer: Scores the emotional tone of text
//   - KeywordExtractor: Extracts topical keywords from text
//   - Provider: Aggregates AI services for convenient initialization
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// # Constructor Return Type Pattern
//
// This package follows a mixed constructor pattern based on use case:
//
// Public constructors (openai.NewProvider, openai.NewSentimentAnalyzer, etc.)
// return INTERFACE types to enforce abstraction and prevent accidental
// coupling to concrete implementations. This is essential for dependency
// injection and supporting multiple implementations.
//
//	provider, err := openai.NewProvider(config)  // returns ai.Provider
//
// Test utility constructors (mock.NewMockSentimentAnalyzer,
// mock.NewMockKeywordExtractor) return CONCRETE types to enable test
// assertions and behavior injection via the mock's public fields and methods
// (CallCount, XFunc, Reset, etc.).
//
//	mockSent := mock.NewMockSentimentAnalyzer()  // returns *mock.MockSentimentAnalyzer
//	mockSent.AnalyzeSentimentFunc = ...          // needs concrete type
//	count := mockSent.CallCount()                // test assertion
//
// The mock.NewMockProvider() returns an interface since it's the primary entry
// point, but provides GetMockSentimentAnalyzer()/GetMockKeywordExtractor()
// methods to access concrete types for assertions when needed.
//
// # Usage Example
//
//	// Production usage with OpenAI provider
//	config := ai.DefaultConfig()
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	sentiment, err := provider.SentimentAnalyzer().AnalyzeSentiment(ctx, "Markets rallied on strong earnings")
//	keywords, err := provider.KeywordExtractor().ExtractKeywords(ctx, "Tesla shares surged after the delivery report")
//
//	// Testing usage with mocks
//	mockProvider := mock.NewMockProvider()
//	sentiment, err := mockProvider.SentimentAnalyzer().AnalyzeSentiment(ctx, "test text")
//
// # Architecture Benefits
//
//   - Testability: Business logic can be tested without external AI services
//   - Flexibility: AI providers can be swapped without changing business logic
//   - Maintainability: Clear boundaries between AI services and domain logic
//   - Extensibility: New providers can be added by implementing interfaces
package ai
