package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/tessella/newsdex/ai"
	"github.com/tessella/newsdex/core"
	"github.com/tessella/newsdex/storage"
)

// Pipeline orchestrates the ingestion and enrichment of articles.
// It manages concurrent sentiment scoring and keyword extraction.
type Pipeline struct {
	articleRepository storage.ArticleRepository
	sentimentPool     *ants.Pool
	keywordPool       *ants.Pool
	sentimentProc     processor
	keywordProc       processor
	logger            *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent enrichment.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		// Release old pools
		if p.sentimentPool != nil {
			p.sentimentPool.Release()
		}
		if p.keywordPool != nil {
			p.keywordPool.Release()
		}

		// Create new pools
		sentimentPool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		keywordPool, err := ants.NewPool(size)
		if err != nil {
			sentimentPool.Release()
			return err
		}

		p.sentimentPool = sentimentPool
		p.keywordPool = keywordPool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	articleRepository storage.ArticleRepository,
	provider ai.Provider,
	opts ...Option,
) (*Pipeline, error) {
	if articleRepository == nil {
		return nil, ErrArticleRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	// Default logger
	logger := slog.Default()

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	sentimentPool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	keywordPool, err := ants.NewPool(poolSize)
	if err != nil {
		sentimentPool.Release()
		return nil, err
	}

	// Create pipeline with defaults
	p := &Pipeline{
		articleRepository: articleRepository,
		sentimentPool:     sentimentPool,
		keywordPool:       keywordPool,
		logger:            logger,
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	// Create processors after options are applied (so they get final config)
	sentimentProc, err := newSentimentProcessor(articleRepository, provider.SentimentAnalyzer(), p.logger)
	if err != nil {
		p.Release()
		return nil, err
	}

	keywordProc, err := newKeywordProcessor(articleRepository, provider.KeywordExtractor(), p.logger)
	if err != nil {
		p.Release()
		return nil, err
	}

	p.sentimentProc = sentimentProc
	p.keywordProc = keywordProc

	return p, nil
}

// Ingest validates and stores the articles, then enriches them asynchronously.
// Articles without an ID are assigned a deterministic content-derived ID, so
// re-ingesting the same feed stores each article once. Returns the articles
// that were newly stored; articles whose ID already exists are skipped.
// Enrichment scores sentiment first, then extracts keywords. Errors during
// async enrichment are logged but do not fail the ingestion.
func (p *Pipeline) Ingest(ctx context.Context, userID string, articles ...*core.Article) ([]*core.Article, error) {
	for i, article := range articles {
		if article != nil && article.ID == "" {
			article.ID = core.ArticleIDFromContent(contentIdentity(article))
		}
		if err := core.ValidateArticle(article); err != nil {
			return nil, fmt.Errorf("article %d: %w", i, err)
		}
	}

	// Add to storage
	added, err := p.articleRepository.AddArticles(ctx, userID, articles...)
	if err != nil {
		return nil, err
	}

	if len(added) == 0 {
		return added, nil
	}

	// Extract IDs
	ids := make([]core.ArticleID, len(added))
	for i, article := range added {
		ids[i] = article.ID
	}

	// Submit for async enrichment. Keywords are chained after sentiment:
	// both processors rewrite the same articles, so running them
	// concurrently on one batch would lose one side's updates.
	p.sentimentPool.Submit(func() {
		if err := p.sentimentProc.process(context.Background(), userID, ids...); err != nil {
			p.logger.Error("error scoring sentiment", "err", err)
		} else if err := p.sentimentProc.checkpoint(); err != nil {
			p.logger.Error("error applying sentiment checkpoint", "err", err)
		}

		if err := p.keywordPool.Submit(func() {
			if err := p.keywordProc.process(context.Background(), userID, ids...); err != nil {
				p.logger.Error("error extracting keywords", "err", err)
				return
			}
			if err := p.keywordProc.checkpoint(); err != nil {
				p.logger.Error("error applying keyword checkpoint", "err", err)
			}
		}); err != nil {
			p.logger.Error("error queuing keyword extraction", "err", err)
		}
	})

	return added, nil
}

// contentIdentity returns the string an article's content-derived ID hashes.
// The URL identifies an article across feeds; title and source stand in
// when no URL is available.
func contentIdentity(article *core.Article) string {
	if article.URL != "" {
		return article.URL
	}
	return article.Title + "\n" + article.Source
}

// Wait blocks until all submitted enrichment work has finished. Short-lived
// programs call this before Release so queued work is not dropped.
func (p *Pipeline) Wait() {
	for p.sentimentPool.Running() > 0 || p.sentimentPool.Waiting() > 0 ||
		p.keywordPool.Running() > 0 || p.keywordPool.Waiting() > 0 {
		time.Sleep(10 * time.Millisecond)
	}
}

// Release releases resources including worker pools.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.sentimentPool != nil {
		p.sentimentPool.Release()
	}
	if p.keywordPool != nil {
		p.keywordPool.Release()
	}
}
