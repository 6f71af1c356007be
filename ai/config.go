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


package ai

import (
	"errors"
	"strings"
)

// Config holds configuration for AI service providers.
type Config struct {
	// SentimentHost is the base URL for the sentiment analysis service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	SentimentHost string

	// KeywordHost is the base URL for the keyword extraction service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	KeywordHost string

	// SentimentModel is the model identifier to use for sentiment analysis.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	SentimentModel string

	// KeywordModel is the model identifier to use for keyword extraction.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	KeywordModel string

	// MinRelevance is the minimum relevance score (1-10) for extracted keywords.
	// Keywords with relevance below this threshold are filtered out.
	// Default: 6
	MinRelevance int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithSentimentHost sets the sentiment service host URL.
func WithSentimentHost(host string) ConfigOption {
	return func(c *Config) {
		c.SentimentHost = host
	}
}

// WithKeywordHost sets the keyword service host URL.
func WithKeywordHost(host string) ConfigOption {
	return func(c *Config) {
		c.KeywordHost = host
	}
}

// WithHost sets both sentiment and keyword hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.SentimentHost = host
		c.KeywordHost = host
	}
}

// WithSentimentModel sets the sentiment model identifier.
func WithSentimentModel(model string) ConfigOption {
	return func(c *Config) {
		c.SentimentModel = model
	}
}

// WithKeywordModel sets the keyword model identifier.
func WithKeywordModel(model string) ConfigOption {
	return func(c *Config) {
		c.KeywordModel = model
	}
}

// WithMinRelevance sets the minimum relevance threshold for keyword extraction.
func WithMinRelevance(min int) ConfigOption {
	return func(c *Config) {
		c.MinRelevance = min
	}
}

// DefaultConfig returns a Config with sensible defaults for local OpenAI-compatible services.
// By default, both sentiment and keyword services use the same host and model.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		SentimentHost:  defaultHost,
		KeywordHost:    defaultHost,
		SentimentModel: "qwen2.5:3b",
		KeywordModel:   "qwen2.5:3b",
		MinRelevance:   6,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
// This is the recommended way to create a Config with custom settings.
//
// Example:
//   cfg := NewConfig(
//       WithHost("http://localhost:11434/v1"),
//       WithKeywordModel("gpt-4o-mini"),
//   )
//
// Example with different hosts:
//   cfg := NewConfig(
//       WithSentimentHost("http://localhost:11434/v1"),
//       WithKeywordHost("http://localhost:9100/v1"),
//   )
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to hosts if missing, which is required
// by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	// Ensure SentimentHost ends with /v1 for OpenAI-compatible APIs
	if c.SentimentHost != "" && !strings.HasSuffix(c.SentimentHost, "/v1") {
		// Remove trailing slash if present before adding /v1
		c.SentimentHost = strings.TrimSuffix(c.SentimentHost, "/")
		c.SentimentHost = c.SentimentHost + "/v1"
	}
	// Ensure KeywordHost ends with /v1 for OpenAI-compatible APIs
	if c.KeywordHost != "" && !strings.HasSuffix(c.KeywordHost, "/v1") {
		// Remove trailing slash if present before adding /v1
		c.KeywordHost = strings.TrimSuffix(c.KeywordHost, "/")
		c.KeywordHost = c.KeywordHost + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	// Normalize first to ensure hosts are in correct format
	c.Normalize()

	if c.SentimentHost == "" {
		return errors.New("ai config: SentimentHost is required")
	}
	if c.KeywordHost == "" {
		return errors.New("ai config: KeywordHost is required")
	}
	if c.SentimentModel == "" {
		return errors.New("ai config: SentimentModel is required")
	}
	if c.KeywordModel == "" {
		return errors.New("ai config: KeywordModel is required")
	}
	if c.MinRelevance < 1 || c.MinRelevance > 10 {
		return errors.New("ai config: MinRelevance must be between 1 and 10")
	}
	return nil
}
