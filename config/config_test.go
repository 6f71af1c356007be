package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessella/newsdex/ai"
	"github.com/tessella/newsdex/core"
	"github.com/tessella/newsdex/history"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "newsdex.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func validConfig() *Config {
	return Default()
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
storage:
  path: /var/lib/newsdex
ai:
  sentiment_host: http://models.internal:9000
  sentiment_model: llama3.2:3b
  min_relevance: 4
search:
  default_limit: 5
  score_threshold: 0.25
history:
  capacity: 200
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/newsdex", cfg.Storage.Path)
	assert.Equal(t, "http://models.internal:9000", cfg.AI.SentimentHost)
	assert.Equal(t, "llama3.2:3b", cfg.AI.SentimentModel)
	assert.Equal(t, 4, cfg.AI.MinRelevance)
	assert.Equal(t, 5, cfg.Search.DefaultLimit)
	assert.Equal(t, 0.25, cfg.Search.ScoreThreshold)
	assert.Equal(t, 200, cfg.History.Capacity)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Omitted fields pick up defaults.
	assert.Equal(t, 10, cfg.Search.SuggestionLimit)
	assert.Equal(t, 500, cfg.Search.CorpusLimit)
	assert.Equal(t, 90, cfg.History.RetentionDays)
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("NEWSDEX_DATA", "/srv/newsdex")
	t.Setenv("NEWSDEX_MODEL", "qwen2.5:7b")

	path := writeConfigFile(t, `
storage:
  path: ${NEWSDEX_DATA}
ai:
  sentiment_model: ${NEWSDEX_MODEL}
  keyword_model: ${NEWSDEX_KEYWORD_MODEL:-qwen2.5:3b}
logging:
  level: ${NEWSDEX_LOG_LEVEL:-warn}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/newsdex", cfg.Storage.Path)
	assert.Equal(t, "qwen2.5:7b", cfg.AI.SentimentModel)
	assert.Equal(t, "qwen2.5:3b", cfg.AI.KeywordModel)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_UnsetEnvVarWithoutDefault(t *testing.T) {
	path := writeConfigFile(t, `
storage:
  path: ${NEWSDEX_NO_SUCH_VAR}
`)

	// The reference expands to the empty string, so the default path wins.
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "newsdex-data", cfg.Storage.Path)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "storage: [not: a: mapping\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfigFile(t, `
search:
  score_threshold: 1.5
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
	assert.Contains(t, err.Error(), "search.score_threshold must be at most 1, got 1.5")
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "newsdex-data", cfg.Storage.Path)
	assert.False(t, cfg.Storage.InMemory)
	assert.Equal(t, "http://localhost:11434", cfg.AI.SentimentHost)
	assert.Equal(t, "http://localhost:11434", cfg.AI.KeywordHost)
	assert.Equal(t, "qwen2.5:3b", cfg.AI.SentimentModel)
	assert.Equal(t, "qwen2.5:3b", cfg.AI.KeywordModel)
	assert.Equal(t, 6, cfg.AI.MinRelevance)
	assert.Equal(t, 20, cfg.Search.DefaultLimit)
	assert.Equal(t, 0.1, cfg.Search.ScoreThreshold)
	assert.Equal(t, 10, cfg.Search.SuggestionLimit)
	assert.Equal(t, 500, cfg.Search.CorpusLimit)
	assert.Equal(t, 1000, cfg.History.Capacity)
	assert.Equal(t, 90, cfg.History.RetentionDays)
	assert.Equal(t, "info", cfg.Logging.Level)

	require.NoError(t, cfg.Validate())
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := &Config{
		Storage: StorageConfig{Path: "/custom"},
		AI:      AIConfig{SentimentHost: "http://a:1", KeywordHost: "http://b:2", SentimentModel: "m1", KeywordModel: "m2", MinRelevance: 3},
		Search:  SearchConfig{DefaultLimit: 7, ScoreThreshold: 0.5, SuggestionLimit: 4, CorpusLimit: 50},
		History: HistoryConfig{Capacity: 9, RetentionDays: 7},
		Logging: LoggingConfig{Level: "error"},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, "/custom", cfg.Storage.Path)
	assert.Equal(t, "http://a:1", cfg.AI.SentimentHost)
	assert.Equal(t, "http://b:2", cfg.AI.KeywordHost)
	assert.Equal(t, "m2", cfg.AI.KeywordModel)
	assert.Equal(t, 7, cfg.Search.DefaultLimit)
	assert.Equal(t, 0.5, cfg.Search.ScoreThreshold)
	assert.Equal(t, 50, cfg.Search.CorpusLimit)
	assert.Equal(t, 9, cfg.History.Capacity)
	assert.Equal(t, 7, cfg.History.RetentionDays)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestApplyDefaults_KeywordServiceFollowsSentiment(t *testing.T) {
	cfg := &Config{
		AI: AIConfig{SentimentHost: "http://models.internal:9000", SentimentModel: "llama3.2:3b"},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, "http://models.internal:9000", cfg.AI.KeywordHost)
	assert.Equal(t, "llama3.2:3b", cfg.AI.KeywordModel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "score threshold above one",
			mutate:  func(c *Config) { c.Search.ScoreThreshold = 1.5 },
			wantErr: "search.score_threshold must be at most 1, got 1.5",
		},
		{
			name:    "negative default limit",
			mutate:  func(c *Config) { c.Search.DefaultLimit = -1 },
			wantErr: "search.default_limit must be positive, got -1",
		},
		{
			name:    "zero suggestion limit",
			mutate:  func(c *Config) { c.Search.SuggestionLimit = 0 },
			wantErr: "search.suggestion_limit must be positive, got 0",
		},
		{
			name:    "zero corpus limit",
			mutate:  func(c *Config) { c.Search.CorpusLimit = 0 },
			wantErr: "search.corpus_limit must be positive, got 0",
		},
		{
			name:    "zero history capacity",
			mutate:  func(c *Config) { c.History.Capacity = 0 },
			wantErr: "history.capacity must be positive, got 0",
		},
		{
			name:    "zero retention",
			mutate:  func(c *Config) { c.History.RetentionDays = 0 },
			wantErr: "history.retention_days must be positive, got 0",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: `logging.level must be one of debug, info, warn, error, got "verbose"`,
		},
		{
			name:    "missing storage path",
			mutate:  func(c *Config) { c.Storage.Path = "" },
			wantErr: "storage.path is required when storage.in_memory is false",
		},
		{
			name:    "min relevance out of range",
			mutate:  func(c *Config) { c.AI.MinRelevance = 11 },
			wantErr: "MinRelevance must be between 1 and 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_InMemoryWithoutPath(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.InMemory = true
	cfg.Storage.Path = ""

	require.NoError(t, cfg.Validate())
}

func TestProviderOptions(t *testing.T) {
	cfg := validConfig()
	cfg.AI.SentimentHost = "http://models.internal:9000"
	cfg.AI.KeywordHost = "http://keywords.internal:9100"
	cfg.AI.SentimentModel = "llama3.2:3b"
	cfg.AI.KeywordModel = "qwen2.5:7b"
	cfg.AI.MinRelevance = 8

	aiCfg := ai.NewConfig(cfg.ProviderOptions()...)
	require.NoError(t, aiCfg.Validate())

	// Validate normalizes hosts, appending /v1.
	assert.Equal(t, "http://models.internal:9000/v1", aiCfg.SentimentHost)
	assert.Equal(t, "http://keywords.internal:9100/v1", aiCfg.KeywordHost)
	assert.Equal(t, "llama3.2:3b", aiCfg.SentimentModel)
	assert.Equal(t, "qwen2.5:7b", aiCfg.KeywordModel)
	assert.Equal(t, 8, aiCfg.MinRelevance)
}

func TestHistoryOptions(t *testing.T) {
	cfg := validConfig()
	cfg.History.Capacity = 2

	store, err := history.NewStore(cfg.HistoryOptions()...)
	require.NoError(t, err)

	for _, query := range []string{"oil prices", "rate cuts", "chip exports"} {
		err := store.Record(context.Background(), &core.HistoryEntry{
			UserID:    "alice",
			Query:     query,
			Timestamp: time.Now(),
		})
		require.NoError(t, err)
	}

	// The configured capacity evicted the oldest entry.
	assert.Equal(t, 2, store.Len())
}

func TestEngineOptions(t *testing.T) {
	cfg := validConfig()
	cfg.Search.CorpusLimit = 50

	assert.Len(t, cfg.EngineOptions(), 1)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run("level="+tt.level, func(t *testing.T) {
			got, err := LoggingConfig{Level: tt.level}.SlogLevel()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := LoggingConfig{Level: "verbose"}.SlogLevel()
	require.Error(t, err)
}
