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


// Package config loads newsdex settings from a YAML file. Values may
// reference environment variables as ${VAR} or ${VAR:-default}; references
// are expanded before the file is parsed.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tessella/newsdex/ai"
	"github.com/tessella/newsdex/history"
	"github.com/tessella/newsdex/search"
)

// Config is the root of the newsdex configuration file.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	AI      AIConfig      `yaml:"ai"`
	Search  SearchConfig  `yaml:"search"`
	History HistoryConfig `yaml:"history"`
	Logging LoggingConfig `yaml:"logging"`
}

// StorageConfig locates the article database.
type StorageConfig struct {
	// Path is the BadgerDB directory. Ignored when InMemory is set.
	Path     string `yaml:"path"`
	InMemory bool   `yaml:"in_memory"`
}

// AIConfig selects the services used for sentiment scoring and keyword
// extraction. Hosts without a /v1 suffix get one appended.
type AIConfig struct {
	SentimentHost  string `yaml:"sentiment_host"`
	KeywordHost    string `yaml:"keyword_host"`
	SentimentModel string `yaml:"sentiment_model"`
	KeywordModel   string `yaml:"keyword_model"`
	MinRelevance   int    `yaml:"min_relevance"`
}

// SearchConfig bounds search and suggestion results.
type SearchConfig struct {
	DefaultLimit    int     `yaml:"default_limit"`
	ScoreThreshold  float64 `yaml:"score_threshold"`
	SuggestionLimit int     `yaml:"suggestion_limit"`
	CorpusLimit     int     `yaml:"corpus_limit"`
}

// HistoryConfig bounds the per-user search history.
type HistoryConfig struct {
	Capacity      int `yaml:"capacity"`
	RetentionDays int `yaml:"retention_days"`
}

// LoggingConfig selects the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads the YAML file at path, expands environment variable
// references, fills defaults, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} references with the
// environment value. An unset variable without a default expands to the
// empty string.
func expandEnvVars(s string) string {
	return envVarRegex.ReplaceAllStringFunc(s, func(match string) string {
		expr := match[2 : len(match)-1]
		name, fallback, hasFallback := strings.Cut(expr, ":-")
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		if hasFallback {
			return fallback
		}
		return ""
	})
}

// ApplyDefaults fills in zero values. Explicitly configured values are
// left alone.
func (c *Config) ApplyDefaults() {
	if c.Storage.Path == "" {
		c.Storage.Path = "newsdex-data"
	}
	if c.AI.SentimentHost == "" {
		c.AI.SentimentHost = "http://localhost:11434"
	}
	if c.AI.KeywordHost == "" {
		c.AI.KeywordHost = c.AI.SentimentHost
	}
	if c.AI.SentimentModel == "" {
		c.AI.SentimentModel = "qwen2.5:3b"
	}
	if c.AI.KeywordModel == "" {
		c.AI.KeywordModel = c.AI.SentimentModel
	}
	if c.AI.MinRelevance <= 0 {
		c.AI.MinRelevance = 6
	}
	if c.Search.DefaultLimit <= 0 {
		c.Search.DefaultLimit = 20
	}
	if c.Search.ScoreThreshold <= 0 {
		c.Search.ScoreThreshold = 0.1
	}
	if c.Search.SuggestionLimit <= 0 {
		c.Search.SuggestionLimit = 10
	}
	if c.Search.CorpusLimit <= 0 {
		c.Search.CorpusLimit = search.DefaultCorpusLimit
	}
	if c.History.Capacity <= 0 {
		c.History.Capacity = history.DefaultCapacity
	}
	if c.History.RetentionDays <= 0 {
		c.History.RetentionDays = int(history.DefaultRetention / (24 * time.Hour))
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks ranges and required fields. Call ApplyDefaults first;
// Load does both.
func (c *Config) Validate() error {
	if !c.Storage.InMemory && c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required when storage.in_memory is false")
	}
	if c.Search.ScoreThreshold > 1 {
		return fmt.Errorf("search.score_threshold must be at most 1, got %g", c.Search.ScoreThreshold)
	}
	if c.Search.DefaultLimit <= 0 {
		return fmt.Errorf("search.default_limit must be positive, got %d", c.Search.DefaultLimit)
	}
	if c.Search.SuggestionLimit <= 0 {
		return fmt.Errorf("search.suggestion_limit must be positive, got %d", c.Search.SuggestionLimit)
	}
	if c.Search.CorpusLimit <= 0 {
		return fmt.Errorf("search.corpus_limit must be positive, got %d", c.Search.CorpusLimit)
	}
	if c.History.Capacity <= 0 {
		return fmt.Errorf("history.capacity must be positive, got %d", c.History.Capacity)
	}
	if c.History.RetentionDays <= 0 {
		return fmt.Errorf("history.retention_days must be positive, got %d", c.History.RetentionDays)
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	if err := ai.NewConfig(c.ProviderOptions()...).Validate(); err != nil {
		return fmt.Errorf("ai: %w", err)
	}
	return nil
}

// ProviderOptions maps the ai section onto ai package options.
func (c *Config) ProviderOptions() []ai.ConfigOption {
	return []ai.ConfigOption{
		ai.WithSentimentHost(c.AI.SentimentHost),
		ai.WithKeywordHost(c.AI.KeywordHost),
		ai.WithSentimentModel(c.AI.SentimentModel),
		ai.WithKeywordModel(c.AI.KeywordModel),
		ai.WithMinRelevance(c.AI.MinRelevance),
	}
}

// EngineOptions maps the search section onto search engine options.
// Result and suggestion limits are per-call arguments, so only corpus
// sizing lives here.
func (c *Config) EngineOptions() []search.Option {
	return []search.Option{
		search.WithCorpusLimit(c.Search.CorpusLimit),
	}
}

// HistoryOptions maps the history section onto history store options.
func (c *Config) HistoryOptions() []history.Option {
	return []history.Option{
		history.WithCapacity(c.History.Capacity),
		history.WithRetention(time.Duration(c.History.RetentionDays) * 24 * time.Hour),
	}
}

// SlogLevel maps the configured level name onto a slog.Level.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", l.Level)
	}
}
