package storage

import (
	"context"
	"time"

	"github.com/tessella/newsdex/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// ArticleRepository provides operations for managing a user's article corpus.
// All operations are scoped to a user ID.
type ArticleRepository interface {
	Repository
	// AddArticles adds one or more articles to the user's corpus.
	// Articles whose ID already exists are skipped, making repeated seeding
	// of the same feed idempotent. Sets InsertedAt if not already set.
	// Returns only the articles that were newly stored.
	AddArticles(ctx context.Context, userID string, articles ...*core.Article) ([]*core.Article, error)

	// UpdateArticles updates existing articles.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any article doesn't exist.
	UpdateArticles(ctx context.Context, userID string, articles ...*core.Article) ([]*core.Article, error)

	// DeleteArticles removes articles by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any article doesn't exist.
	DeleteArticles(ctx context.Context, userID string, ids ...core.ArticleID) error

	// GetArticle retrieves a single article by ID.
	// Returns ErrNotFound if the article doesn't exist.
	GetArticle(ctx context.Context, userID string, id core.ArticleID) (*core.Article, error)

	// GetArticles retrieves multiple articles by their IDs.
	// Returns only the articles that exist (no error for missing articles).
	GetArticles(ctx context.Context, userID string, ids ...core.ArticleID) ([]*core.Article, error)

	// GetArticlesByDateRange retrieves articles published within a time range.
	// Returns articles where start <= PublishedAt < end, ordered by
	// publication time, up to limit.
	GetArticlesByDateRange(ctx context.Context, userID string, start, end time.Time, limit int) ([]*core.Article, error)

	// GetRecentArticles retrieves the N most recently published articles,
	// most recent first. This is the corpus snapshot the search engine
	// indexes on every search.
	GetRecentArticles(ctx context.Context, userID string, limit int) ([]*core.Article, error)

	// GetSourceStatistics aggregates article counts per source,
	// highest count first, up to limit sources.
	GetSourceStatistics(ctx context.Context, userID string, limit int) ([]core.SourceCount, error)

	// SetBookmark flags or unflags an article.
	// Returns ErrNotFound if the article doesn't exist.
	SetBookmark(ctx context.Context, userID string, id core.ArticleID, bookmarked bool) error

	// CountArticles reports the size of the user's corpus.
	CountArticles(ctx context.Context, userID string) (int, error)
}

// HistoryArchive provides durable storage for search history entries.
// The in-memory history store tees into it; it is never load-bearing for
// search itself.
type HistoryArchive interface {
	Repository
	// SaveHistoryEntry persists one history entry.
	SaveHistoryEntry(ctx context.Context, entry *core.HistoryEntry) error

	// GetHistoryEntries retrieves a user's entries, newest first, up to limit.
	GetHistoryEntries(ctx context.Context, userID string, limit int) ([]*core.HistoryEntry, error)

	// DeleteHistoryEntries removes a user's entries, or with olderThan set
	// only those recorded before it. Returns the number removed.
	DeleteHistoryEntries(ctx context.Context, userID string, olderThan *time.Time) (int, error)
}

// CursorRepository persists enrichment progress markers so interrupted
// batch runs can resume where they stopped.
type CursorRepository interface {
	Repository
	// SaveCursor stores the cursor for its user, replacing any previous one.
	SaveCursor(ctx context.Context, cursor *core.EnrichCursor) error

	// LoadCursor retrieves the user's cursor.
	// Returns nil (not an error) if no cursor exists.
	LoadCursor(ctx context.Context, userID string) (*core.EnrichCursor, error)

	// ClearCursor removes the user's cursor if present.
	ClearCursor(ctx context.Context, userID string) error
}
