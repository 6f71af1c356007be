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
	"time"

	"github.com/tessella/newsdex/core"
	"github.com/tessella/newsdex/storage"
)

const (
	// DefaultBatchSize is the default number of articles to fetch in each batch
	DefaultBatchSize = 100
)

// ArticleIterator iterates over a user's articles in batches, ordered by
// publication time.
type ArticleIterator struct {
	repo      storage.ArticleRepository
	batchSize int
}

// NewArticleIterator creates a new article iterator.
// batchSize: number of articles per batch (must be > 0)
func NewArticleIterator(repo storage.ArticleRepository, batchSize int) *ArticleIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &ArticleIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEach iterates over the user's articles, calling fn for each batch.
// A non-empty after skips everything up to and including that article, which
// is how a resumed run avoids reprocessing. If the marker article no longer
// exists the iteration restarts from the beginning; enrichment is idempotent,
// so the cost is redundant work, not wrong data.
// Iteration stops on the first error from fn or when all articles are done.
// Context cancellation is checked between batches.
func (it *ArticleIterator) ForEach(ctx context.Context, userID string, after core.ArticleID, fn func([]*core.Article) error) error {
	// Use a very wide date range to get all articles
	startTime := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	endTime := time.Date(2100, 12, 31, 23, 59, 59, 0, time.UTC)

	// Check context before starting
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	// Fetch all articles using a date range query, publication order
	articles, err := it.repo.GetArticlesByDateRange(ctx, userID, startTime, endTime, 0)
	if err != nil {
		return err
	}

	// Skip past the resume marker
	if after != "" {
		for i, article := range articles {
			if article.ID == after {
				articles = articles[i+1:]
				break
			}
		}
	}

	if len(articles) == 0 {
		// Nothing left to process
		return nil
	}

	// Process articles in batches of batchSize
	for i := 0; i < len(articles); i += it.batchSize {
		end := i + it.batchSize
		if end > len(articles) {
			end = len(articles)
		}

		batch := articles[i:end]

		// Call user function with batch
		if err := fn(batch); err != nil {
			return err
		}

		// Check context after each batch
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	return nil
}
