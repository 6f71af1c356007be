package enrich

import (
	"context"
	"fmt"
	"time"

	"github.com/tessella/newsdex/ai"
	"github.com/tessella/newsdex/core"
	"github.com/tessella/newsdex/storage"
)

// BatchProcessor re-enriches batches of articles.
type BatchProcessor struct {
	repo           storage.ArticleRepository
	analyzer       ai.SentimentAnalyzer
	extractor      ai.KeywordExtractor
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of retry attempts for provider calls
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.ArticleRepository, provider ai.Provider, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		analyzer:       provider.SentimentAnalyzer(),
		extractor:      provider.KeywordExtractor(),
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process re-enriches a batch of articles and updates them in the database.
// The whole batch is retried on failure; enrichment is idempotent, so
// articles scored before the failure are simply scored again.
func (bp *BatchProcessor) Process(ctx context.Context, userID string, articles []*core.Article) error {
	if len(articles) == 0 {
		return nil
	}

	err := RetryWithBackoff(ctx, func() error {
		for _, article := range articles {
			sentiment, err := bp.analyzer.AnalyzeSentiment(ctx, article.AnalysisText())
			if err != nil {
				return err
			}

			extracted, err := bp.extractor.ExtractKeywords(ctx, article.AnalysisText())
			if err != nil {
				return err
			}

			keywords := make([]string, len(extracted))
			for i, keyword := range extracted {
				keywords[i] = keyword.Text
			}

			article.SentimentScore = sentiment.Score
			article.SentimentLabel = core.SentimentLabelFor(sentiment.Score)
			article.Keywords = keywords
		}
		return nil
	}, bp.maxRetries, bp.retryBaseDelay)

	if err != nil {
		return fmt.Errorf("failed to enrich batch after %d attempts: %w", bp.maxRetries, err)
	}

	// Update articles in database
	_, err = bp.repo.UpdateArticles(ctx, userID, articles...)
	if err != nil {
		return fmt.Errorf("failed to update articles: %w", err)
	}

	return nil
}
