package enrich

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tessella/newsdex/core"
	"github.com/tessella/newsdex/storage"
	"github.com/tessella/newsdex/storage/badger"
)

func setupTestDB(t *testing.T) (storage.ArticleRepository, storage.CursorRepository, func()) {
	articles, _, cursors, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)

	cleanup := func() {
		cursors.Close()
		articles.Close()
		backend.Close()
	}

	return articles, cursors, cleanup
}

// seedArticles stores n minimal articles with ascending publication times,
// so iteration order matches seed order.
func seedArticles(t *testing.T, repo storage.ArticleRepository, userID string, n int) []*core.Article {
	t.Helper()

	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	articles := make([]*core.Article, n)
	for i := 0; i < n; i++ {
		articles[i] = &core.Article{
			ID:          core.ArticleID(fmt.Sprintf("art-%03d", i)),
			Title:       fmt.Sprintf("Market brief %d", i),
			Source:      "Reuters",
			PublishedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}

	added, err := repo.AddArticles(context.Background(), userID, articles...)
	require.NoError(t, err)
	require.Len(t, added, n)

	return added
}

func TestArticleIterator_Basic(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	seeded := seedArticles(t, repo, "alice", 3)

	iter := NewArticleIterator(repo, 2) // Batch size of 2
	count := 0
	var ids []core.ArticleID

	err := iter.ForEach(ctx, "alice", "", func(articles []*core.Article) error {
		count += len(articles)
		for _, a := range articles {
			ids = append(ids, a.ID)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, count, "should iterate all 3 articles")
	assert.Equal(t, seeded[0].ID, ids[0], "should iterate in publication order")
}

func TestArticleIterator_BatchSizes(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	seedArticles(t, repo, "alice", 10)

	tests := []struct {
		name          string
		batchSize     int
		expectedBatch int
	}{
		{"batch size 1", 1, 10},
		{"batch size 3", 3, 4}, // 3+3+3+1
		{"batch size 5", 5, 2}, // 5+5
		{"batch size 10", 10, 1},
		{"batch size 100", 100, 1}, // All in one batch
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iter := NewArticleIterator(repo, tt.batchSize)
			batchCount := 0
			totalArticles := 0

			err := iter.ForEach(ctx, "alice", "", func(articles []*core.Article) error {
				batchCount++
				totalArticles += len(articles)
				assert.LessOrEqual(t, len(articles), tt.batchSize, "batch should not exceed batchSize")
				return nil
			})

			require.NoError(t, err)
			assert.Equal(t, tt.expectedBatch, batchCount, "batch count")
			assert.Equal(t, 10, totalArticles, "total articles")
		})
	}
}

func TestArticleIterator_EmptyCorpus(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	iter := NewArticleIterator(repo, 10)
	called := false

	err := iter.ForEach(ctx, "alice", "", func(articles []*core.Article) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.False(t, called, "callback should not be called for an empty corpus")
}

func TestArticleIterator_ResumeAfter(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	seeded := seedArticles(t, repo, "alice", 5)

	t.Run("skips up to and including the marker", func(t *testing.T) {
		iter := NewArticleIterator(repo, 2)
		var ids []core.ArticleID

		err := iter.ForEach(ctx, "alice", seeded[1].ID, func(articles []*core.Article) error {
			for _, a := range articles {
				ids = append(ids, a.ID)
			}
			return nil
		})

		require.NoError(t, err)
		require.Len(t, ids, 3)
		assert.Equal(t, seeded[2].ID, ids[0], "should resume right after the marker")
	})

	t.Run("missing marker processes everything", func(t *testing.T) {
		iter := NewArticleIterator(repo, 2)
		count := 0

		err := iter.ForEach(ctx, "alice", "deleted-article", func(articles []*core.Article) error {
			count += len(articles)
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 5, count)
	})
}

func TestArticleIterator_ErrorHandling(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	seedArticles(t, repo, "alice", 2)

	iter := NewArticleIterator(repo, 1)
	called := 0

	expectedErr := assert.AnError
	err := iter.ForEach(ctx, "alice", "", func(articles []*core.Article) error {
		called++
		if called == 1 {
			return expectedErr
		}
		return nil
	})

	require.Error(t, err)
	assert.Equal(t, expectedErr, err, "should return callback error")
	assert.Equal(t, 1, called, "should stop on first error")
}

func TestArticleIterator_ContextCancellation(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	seedArticles(t, repo, "alice", 5)

	iter := NewArticleIterator(repo, 1)
	called := 0

	err := iter.ForEach(ctx, "alice", "", func(articles []*core.Article) error {
		called++
		if called == 2 {
			cancel()
		}
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, called, "should process until context canceled")
}

func TestArticleIterator_InvalidBatchSize(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	// Zero batch size should be handled gracefully
	iter := NewArticleIterator(repo, 0)
	assert.Greater(t, iter.batchSize, 0, "should use default batch size for invalid input")

	// Negative batch size
	iter = NewArticleIterator(repo, -10)
	assert.Greater(t, iter.batchSize, 0, "should use default batch size for negative input")
}
