package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/tessella/newsdex/ai"
	"github.com/tessella/newsdex/core"
	"github.com/tessella/newsdex/storage"
)

// sentimentProcessor scores the tone of stored articles.
type sentimentProcessor struct {
	articleRepository storage.ArticleRepository
	analyzer          ai.SentimentAnalyzer
	lastID            core.ArticleID
	logger            *slog.Logger
}

var _ processor = (*sentimentProcessor)(nil)

// newSentimentProcessor creates a new sentiment processor.
func newSentimentProcessor(articleRepository storage.ArticleRepository, analyzer ai.SentimentAnalyzer, logger *slog.Logger) (processor, error) {
	if articleRepository == nil {
		return nil, fmt.Errorf("article repository required")
	}
	if analyzer == nil {
		return nil, fmt.Errorf("sentiment analyzer required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &sentimentProcessor{
		articleRepository: articleRepository,
		analyzer:          analyzer,
		logger:            logger.With("processor", "sentiment"),
	}, nil
}

// process scores sentiment for the specified articles.
// Articles that fail analysis are skipped and their errors joined; the
// remaining articles are still updated.
func (sp *sentimentProcessor) process(ctx context.Context, userID string, ids ...core.ArticleID) error {
	sp.logger.Info("scoring articles for sentiment", "articles", len(ids))

	// Sort first so checkpointing works correctly
	slices.Sort(ids)

	articles, err := sp.articleRepository.GetArticles(ctx, userID, ids...)
	if err != nil {
		sp.logger.Error("error retrieving articles", "err", err)
		return err
	}

	scored := make([]*core.Article, 0, len(articles))
	var analysisErrors []error
	for i, article := range articles {
		sentiment, err := sp.analyzer.AnalyzeSentiment(ctx, article.AnalysisText())
		if err != nil {
			analysisErrors = append(analysisErrors, fmt.Errorf("article %d sentiment analysis failed: %w", i, err))
			continue
		}

		article.SentimentScore = sentiment.Score
		article.SentimentLabel = core.SentimentLabelFor(sentiment.Score)
		scored = append(scored, article)
	}

	if len(scored) > 0 {
		updated, updateErr := sp.articleRepository.UpdateArticles(ctx, userID, scored...)
		if updateErr != nil {
			analysisErrors = append(analysisErrors, fmt.Errorf("update articles failed: %w", updateErr))
		} else {
			highestID := updated[len(updated)-1].ID
			if highestID > sp.lastID {
				sp.lastID = highestID
			}
		}
	}

	if len(analysisErrors) > 0 {
		return errors.Join(analysisErrors...)
	}

	return nil
}

// checkpoint saves the processor's current state.
// Currently unimplemented - reserved for future checkpointing support.
func (sp *sentimentProcessor) checkpoint() error {
	// TODO: persist a resume cursor once the pipeline is handed a cursor repository
	return nil
}
