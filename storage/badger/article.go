package badger

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/tessella/newsdex/core"
	"github.com/tessella/newsdex/storage"
)

// ArticleRepository implements storage.ArticleRepository for BadgerDB.
type ArticleRepository struct {
	backend *Backend
}

var _ storage.ArticleRepository = (*ArticleRepository)(nil)

// NewArticleRepository creates a new ArticleRepository.
func NewArticleRepository(backend *Backend) *ArticleRepository {
	return &ArticleRepository{
		backend: backend,
	}
}

// Close is a no-op; the repository holds no resources of its own.
func (r *ArticleRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *ArticleRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddArticles adds articles to the user's corpus. Articles whose ID already
// exists are skipped, so re-seeding the same feed is idempotent. Returns
// only the newly stored articles.
func (r *ArticleRepository) AddArticles(ctx context.Context, userID string, articles ...*core.Article) ([]*core.Article, error) {
	var added []*core.Article
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, article := range articles {
			key := makeArticleKey(userID, article.ID)

			existing, err := r.readArticle(tx, key)
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}

			if article.InsertedAt.IsZero() {
				article.InsertedAt = time.Now().UTC()
			}
			article.UpdatedAt = article.InsertedAt

			// Store primary record
			value := storage.MarshalArticle(article)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update date index
			dateKey := makeArticleDateKey(userID, article.PublishedAt, article.ID)
			if err := tx.Set(dateKey, storage.MarshalArticleID(article.ID)); err != nil {
				return err
			}

			added = append(added, article)
		}
		return tx.Commit()
	}, true)

	return added, err
}

// UpdateArticles updates existing articles.
func (r *ArticleRepository) UpdateArticles(ctx context.Context, userID string, articles ...*core.Article) ([]*core.Article, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, article := range articles {
			key := makeArticleKey(userID, article.ID)

			// Read old record to detect changes
			old, err := r.readArticle(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			// Update timestamp
			article.UpdatedAt = time.Now().UTC()
			if article.InsertedAt.IsZero() {
				article.InsertedAt = old.InsertedAt
			}

			// Store updated record
			value := storage.MarshalArticle(article)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update date index if publication time changed
			if !old.PublishedAt.Equal(article.PublishedAt) {
				oldDateKey := makeArticleDateKey(userID, old.PublishedAt, old.ID)
				if err := tx.Delete(oldDateKey); err != nil {
					return err
				}
				newDateKey := makeArticleDateKey(userID, article.PublishedAt, article.ID)
				if err := tx.Set(newDateKey, storage.MarshalArticleID(article.ID)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return articles, err
}

// DeleteArticles removes articles by their IDs.
func (r *ArticleRepository) DeleteArticles(ctx context.Context, userID string, ids ...core.ArticleID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeArticleKey(userID, id)

			// Read record to get metadata for index cleanup
			article, err := r.readArticle(tx, key)
			if err != nil {
				return err
			}
			if article == nil {
				return storage.ErrNotFound
			}

			// Delete from date index
			dateKey := makeArticleDateKey(userID, article.PublishedAt, article.ID)
			if err := tx.Delete(dateKey); err != nil {
				return err
			}

			// Delete primary record
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetArticle retrieves a single article by ID.
func (r *ArticleRepository) GetArticle(ctx context.Context, userID string, id core.ArticleID) (*core.Article, error) {
	var result *core.Article
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeArticleKey(userID, id)
		var err error
		result, err = r.readArticle(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetArticles retrieves multiple articles by their IDs.
// Missing articles are skipped without error.
func (r *ArticleRepository) GetArticles(ctx context.Context, userID string, ids ...core.ArticleID) ([]*core.Article, error) {
	var result []*core.Article
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeArticleKey(userID, id)
			article, err := r.readArticle(tx, key)
			if err != nil {
				return err
			}
			if article != nil {
				result = append(result, article)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetArticlesByDateRange retrieves articles with start <= PublishedAt < end,
// ordered by publication time ascending. A non-positive limit returns all.
func (r *ArticleRepository) GetArticlesByDateRange(ctx context.Context, userID string, start, end time.Time, limit int) ([]*core.Article, error) {
	var results []*core.Article
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialArticleDateKey(userID, start)
		endKey := makePartialArticleDateKey(userID, end)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if slices.Compare(key, endKey) >= 0 {
				break
			}
			if limit > 0 && len(results) >= limit {
				break
			}

			// Read the ID from the index
			var articleID core.ArticleID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				articleID, err = storage.UnmarshalArticleID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full record
			article, err := r.readArticle(tx, makeArticleKey(userID, articleID))
			if err != nil {
				return err
			}
			if article != nil {
				results = append(results, article)
			}
		}
		return nil
	}, false)

	return results, err
}

// GetRecentArticles retrieves the user's most recently published articles,
// newest first. A non-positive limit returns all.
func (r *ArticleRepository) GetRecentArticles(ctx context.Context, userID string, limit int) ([]*core.Article, error) {
	var results []*core.Article
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Use reverse iterator to get most recent articles first
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek to the last possible key in the user's date index
		startKey := makePartialArticleDateKey(userID, time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))
		prefix := makeUserDatePrefix(userID)

		count := 0
		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			if limit > 0 && count >= limit {
				break
			}
			key := iter.Item().Key()

			// Check if we're still in this user's date index
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			// Read the ID from the index
			var articleID core.ArticleID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				articleID, err = storage.UnmarshalArticleID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full record
			article, err := r.readArticle(tx, makeArticleKey(userID, articleID))
			if err != nil {
				return err
			}
			if article != nil {
				results = append(results, article)
				count++
			}
		}
		return nil
	}, false)

	return results, err
}

// GetSourceStatistics aggregates article counts per source, highest count
// first with ties broken alphabetically. A non-positive limit returns all.
func (r *ArticleRepository) GetSourceStatistics(ctx context.Context, userID string, limit int) ([]core.SourceCount, error) {
	counts := make(map[string]int)
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeUserArticlePrefix(userID)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var article *core.Article
			err := iter.Item().Value(func(val []byte) error {
				var err error
				article, err = storage.UnmarshalArticle(val)
				return err
			})
			if err != nil {
				return err
			}
			if article != nil && article.Source != "" {
				counts[article.Source]++
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	results := make([]core.SourceCount, 0, len(counts))
	for source, count := range counts {
		results = append(results, core.SourceCount{Source: source, Count: count})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		return results[i].Source < results[j].Source
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

// SetBookmark flags or unflags an article.
func (r *ArticleRepository) SetBookmark(ctx context.Context, userID string, id core.ArticleID, bookmarked bool) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeArticleKey(userID, id)

		article, err := r.readArticle(tx, key)
		if err != nil {
			return err
		}
		if article == nil {
			return storage.ErrNotFound
		}

		article.Bookmarked = bookmarked
		article.UpdatedAt = time.Now().UTC()

		if err := tx.Set(key, storage.MarshalArticle(article)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// CountArticles reports the size of the user's corpus.
func (r *ArticleRepository) CountArticles(ctx context.Context, userID string) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeUserArticlePrefix(userID)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readArticle reads an article from the transaction.
// Returns nil, nil if the key does not exist.
func (r *ArticleRepository) readArticle(tx *badger.Txn, key []byte) (*core.Article, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var article *core.Article
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		article, unmarshalErr = storage.UnmarshalArticle(val)
		return unmarshalErr
	})
	return article, err
}
