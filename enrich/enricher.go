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


package enrich

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tessella/newsdex/ai"
	"github.com/tessella/newsdex/core"
	"github.com/tessella/newsdex/storage"
)

// Config holds configuration for the enrichment operation.
type Config struct {
	// BatchSize is the number of articles to process in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of articles)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed batches
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Enricher orchestrates the re-enrichment of a user's article corpus.
// Every article is scored for sentiment and tagged with keywords again,
// which is how a corpus catches up after a model or prompt change.
type Enricher struct {
	repo      storage.ArticleRepository
	cursors   storage.CursorRepository
	config    *Config
	progress  io.Writer
	processor *BatchProcessor
	iterator  *ArticleIterator
}

// NewEnricher creates a new enricher.
// cursors may be nil, which disables resume support.
// progress: where to write progress output (typically os.Stderr)
func NewEnricher(repo storage.ArticleRepository, provider ai.Provider, cursors storage.CursorRepository, config *Config, progress io.Writer) *Enricher {
	if config == nil {
		config = DefaultConfig()
	}

	processor := NewBatchProcessor(repo, provider, config.MaxRetries, config.RetryDelay)
	iterator := NewArticleIterator(repo, config.BatchSize)

	return &Enricher{
		repo:      repo,
		cursors:   cursors,
		config:    config,
		progress:  progress,
		processor: processor,
		iterator:  iterator,
	}
}

// Run executes the enrichment operation for one user's corpus.
// All of the user's articles are re-enriched with the configured provider.
// Progress is reported to the configured writer. A cursor is saved after
// each batch so an interrupted run resumes where it stopped.
func (e *Enricher) Run(ctx context.Context, userID string) error {
	total, err := e.repo.CountArticles(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to count articles: %w", err)
	}

	if total == 0 {
		fmt.Fprintf(e.progress, "No articles found for user (0 articles)\n")
		return nil
	}

	fmt.Fprintf(e.progress, "Starting enrichment of %d articles (batch size: %d)\n",
		total, e.config.BatchSize)

	// Pick up where a previous interrupted run stopped
	var after core.ArticleID
	processed := 0
	if e.cursors != nil {
		cursor, err := e.cursors.LoadCursor(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load cursor: %w", err)
		}
		if cursor != nil {
			after = cursor.LastArticleID
			processed = cursor.Processed
			fmt.Fprintf(e.progress, "Resuming at %d/%d articles\n", processed, total)
		}
	}

	// Initialize progress tracker
	tracker := NewProgressTracker(e.progress, total, e.config.ReportInterval)
	tracker.Start()
	if processed > 0 {
		tracker.Update(processed)
	}

	// Process all articles in batches
	err = e.iterator.ForEach(ctx, userID, after, func(articles []*core.Article) error {
		// Process this batch
		if err := e.processor.Process(ctx, userID, articles); err != nil {
			return fmt.Errorf("failed to process batch: %w", err)
		}

		// Update progress
		processed += len(articles)
		tracker.Update(processed)

		// Mark how far we got so an interrupted run can resume
		if e.cursors != nil {
			cursor := &core.EnrichCursor{
				UserID:        userID,
				LastArticleID: articles[len(articles)-1].ID,
				Processed:     processed,
			}
			if err := e.cursors.SaveCursor(ctx, cursor); err != nil {
				return fmt.Errorf("failed to save cursor: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		return err
	}

	// Finish progress tracking
	tracker.Finish()

	// A completed run needs no resume point
	if e.cursors != nil {
		if err := e.cursors.ClearCursor(ctx, userID); err != nil {
			return fmt.Errorf("failed to clear cursor: %w", err)
		}
	}

	elapsed := tracker.Elapsed()
	fmt.Fprintf(e.progress, "Enrichment complete. Processed %d articles in %v (%.1f articles/sec)\n",
		total, elapsed.Round(time.Second), float64(total)/elapsed.Seconds())

	return nil
}
