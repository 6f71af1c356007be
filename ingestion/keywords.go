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

// keywordProcessor extracts topical keywords for stored articles.
type keywordProcessor struct {
	articleRepository storage.ArticleRepository
	extractor         ai.KeywordExtractor
	lastID            core.ArticleID
	logger            *slog.Logger
}

var _ processor = (*keywordProcessor)(nil)

// newKeywordProcessor creates a new keyword processor.
func newKeywordProcessor(articleRepository storage.ArticleRepository, extractor ai.KeywordExtractor, logger *slog.Logger) (processor, error) {
	if articleRepository == nil {
		return nil, fmt.Errorf("article repository required")
	}
	if extractor == nil {
		return nil, fmt.Errorf("keyword extractor required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &keywordProcessor{
		articleRepository: articleRepository,
		extractor:         extractor,
		logger:            logger.With("processor", "keywords"),
	}, nil
}

// process extracts keywords for the specified articles.
// Articles that fail extraction are skipped and their errors joined; the
// remaining articles are still updated. Extraction order is preserved, so
// an article's first keyword is its most relevant one.
func (kp *keywordProcessor) process(ctx context.Context, userID string, ids ...core.ArticleID) error {
	kp.logger.Info("extracting keywords for articles", "articles", len(ids))

	// Sort first so checkpointing works correctly
	slices.Sort(ids)

	articles, err := kp.articleRepository.GetArticles(ctx, userID, ids...)
	if err != nil {
		kp.logger.Error("error retrieving articles", "err", err)
		return err
	}

	tagged := make([]*core.Article, 0, len(articles))
	var extractionErrors []error
	for i, article := range articles {
		extracted, err := kp.extractor.ExtractKeywords(ctx, article.AnalysisText())
		if err != nil {
			extractionErrors = append(extractionErrors, fmt.Errorf("article %d keyword extraction failed: %w", i, err))
			continue
		}

		keywords := make([]string, len(extracted))
		for j, keyword := range extracted {
			keywords[j] = keyword.Text
		}

		article.Keywords = keywords
		tagged = append(tagged, article)
	}

	if len(tagged) > 0 {
		updated, updateErr := kp.articleRepository.UpdateArticles(ctx, userID, tagged...)
		if updateErr != nil {
			extractionErrors = append(extractionErrors, fmt.Errorf("update articles failed: %w", updateErr))
		} else {
			highestID := updated[len(updated)-1].ID
			if highestID > kp.lastID {
				kp.lastID = highestID
			}
		}
	}

	if len(extractionErrors) > 0 {
		return errors.Join(extractionErrors...)
	}

	return nil
}

// checkpoint saves the processor's current state.
// Currently unimplemented - reserved for future checkpointing support.
func (kp *keywordProcessor) checkpoint() error {
	// TODO: persist a resume cursor once the pipeline is handed a cursor repository
	return nil
}
