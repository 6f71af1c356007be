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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/tessella/newsdex/ai"
	"github.com/tessella/newsdex/ai/openai"
	"github.com/tessella/newsdex/core"
	"github.com/tessella/newsdex/enrich"
	"github.com/tessella/newsdex/storage/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:   "newsdex",
		Usage:  "Semantic search and ranking over a local news corpus",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "enrich",
				Usage:  "Rescore sentiment and re-extract keywords for stored articles",
				Action: enrichCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "user",
						Aliases:  []string{"u"},
						Usage:    "User whose corpus to enrich",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "sentiment-host",
						Usage: "Sentiment service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "sentiment-model",
						Usage: "Sentiment model name",
						Value: "qwen2.5:3b",
					},
					&cli.StringFlag{
						Name:  "keyword-host",
						Usage: "Keyword service host URL (defaults to sentiment-host if not specified)",
					},
					&cli.StringFlag{
						Name:  "keyword-model",
						Usage: "Keyword model name (defaults to sentiment-model if not specified)",
					},
					&cli.IntFlag{
						Name:  "min-relevance",
						Usage: "Minimum keyword relevance to keep (1-10)",
						Value: 6,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of articles to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N articles",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed batches",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Show corpus statistics for a user",
				Action: statsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "user",
						Aliases:  []string{"u"},
						Usage:    "User whose corpus to inspect",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "sources",
						Usage: "Number of top sources to list",
						Value: 5,
					},
				},
			},
			{
				Name:   "history",
				Usage:  "List or clear a user's archived searches",
				Action: historyCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "user",
						Aliases:  []string{"u"},
						Usage:    "User whose history to inspect",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of entries to list",
						Value: 20,
					},
					&cli.BoolFlag{
						Name:  "clear",
						Usage: "Remove entries instead of listing them",
					},
					&cli.DurationFlag{
						Name:  "older-than",
						Usage: "With --clear, only remove entries older than this age",
					},
				},
			},
		},
	}
}

func enrichCommand(c *cli.Context) error {
	ctx := context.Background()

	// Validate flags
	dbPath := c.String("db")
	if dbPath == "" {
		return fmt.Errorf("database path is required")
	}
	userID := c.String("user")
	if userID == "" {
		return fmt.Errorf("user is required")
	}

	// Get keyword service settings (default to the sentiment service)
	keywordHost := c.String("keyword-host")
	if keywordHost == "" {
		keywordHost = c.String("sentiment-host")
	}
	keywordModel := c.String("keyword-model")
	if keywordModel == "" {
		keywordModel = c.String("sentiment-model")
	}

	// Open database
	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo := badger.NewArticleRepository(backend)
	defer repo.Close()

	cursors := badger.NewCursorRepository(backend)
	defer cursors.Close()

	// Create AI config
	aiConfig := ai.NewConfig(
		ai.WithSentimentHost(c.String("sentiment-host")),
		ai.WithSentimentModel(c.String("sentiment-model")),
		ai.WithKeywordHost(keywordHost),
		ai.WithKeywordModel(keywordModel),
		ai.WithMinRelevance(c.Int("min-relevance")),
	)

	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	// Create provider
	provider, err := openai.NewProvider(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create AI provider: %w", err)
	}
	defer provider.Close()

	// Create enrichment config
	enrichConfig := &enrich.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}

	// Validate config
	if enrichConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if enrichConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if enrichConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	// Create enricher
	enricher := enrich.NewEnricher(repo, provider, cursors, enrichConfig, os.Stderr)

	// Run enrichment
	fmt.Fprintf(os.Stderr, "Database: %s\n", dbPath)
	fmt.Fprintf(os.Stderr, "User: %s\n", userID)
	fmt.Fprintf(os.Stderr, "Sentiment service: %s (%s)\n", c.String("sentiment-host"), c.String("sentiment-model"))
	fmt.Fprintf(os.Stderr, "Keyword service: %s (%s)\n", keywordHost, keywordModel)
	fmt.Fprintln(os.Stderr)

	if err := enricher.Run(ctx, userID); err != nil {
		return fmt.Errorf("enrichment failed: %w", err)
	}

	return nil
}

func statsCommand(c *cli.Context) error {
	ctx := context.Background()

	dbPath := c.String("db")
	if dbPath == "" {
		return fmt.Errorf("database path is required")
	}
	userID := c.String("user")
	if userID == "" {
		return fmt.Errorf("user is required")
	}

	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo := badger.NewArticleRepository(backend)
	defer repo.Close()

	total, err := repo.CountArticles(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to count articles: %w", err)
	}

	fmt.Printf("Articles:   %d\n", total)
	if total == 0 {
		return nil
	}

	// Label distribution over the whole corpus
	articles, err := repo.GetRecentArticles(ctx, userID, 0)
	if err != nil {
		return fmt.Errorf("failed to load articles: %w", err)
	}

	var enriched, bookmarked int
	byLabel := make(map[core.SentimentLabel]int)
	for _, article := range articles {
		if article.SentimentLabel != "" {
			enriched++
			byLabel[article.SentimentLabel]++
		}
		if article.Bookmarked {
			bookmarked++
		}
	}

	fmt.Printf("Enriched:   %d (%.1f%%)\n", enriched, float64(enriched)/float64(total)*100)
	fmt.Printf("Bookmarked: %d\n", bookmarked)
	fmt.Printf("Sentiment:  %d positive / %d neutral / %d negative\n",
		byLabel[core.SentimentPositive], byLabel[core.SentimentNeutral], byLabel[core.SentimentNegative])

	sources, err := repo.GetSourceStatistics(ctx, userID, c.Int("sources"))
	if err != nil {
		return fmt.Errorf("failed to load source statistics: %w", err)
	}
	if len(sources) > 0 {
		fmt.Println("Top sources:")
		for _, sc := range sources {
			fmt.Printf("  %-20s %d\n", sc.Source, sc.Count)
		}
	}

	return nil
}

func historyCommand(c *cli.Context) error {
	ctx := context.Background()

	dbPath := c.String("db")
	if dbPath == "" {
		return fmt.Errorf("database path is required")
	}
	userID := c.String("user")
	if userID == "" {
		return fmt.Errorf("user is required")
	}

	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	archive := badger.NewHistoryRepository(backend)
	defer archive.Close()

	if c.Bool("clear") {
		var olderThan *time.Time
		if age := c.Duration("older-than"); age > 0 {
			cutoff := time.Now().Add(-age)
			olderThan = &cutoff
		}
		removed, err := archive.DeleteHistoryEntries(ctx, userID, olderThan)
		if err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		fmt.Printf("Removed %d entries\n", removed)
		return nil
	}

	entries, err := archive.GetHistoryEntries(ctx, userID, c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No history entries")
		return nil
	}

	for _, entry := range entries {
		line := fmt.Sprintf("%s  %-30q %d results  %v",
			entry.Timestamp.Format("2006-01-02 15:04"),
			entry.Query,
			entry.ResultCount,
			entry.Duration.Round(time.Millisecond))
		if n := entry.Filter.ActiveCount(); n > 0 {
			line += fmt.Sprintf("  [%d filters]", n)
		}
		fmt.Println(line)
	}

	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
