package search

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tessella/newsdex/core"
	"github.com/tessella/newsdex/history"
	"github.com/tessella/newsdex/index"
	"github.com/tessella/newsdex/storage"
	"github.com/tessella/newsdex/suggest"
)

const (
	// DefaultCorpusLimit caps how many recent articles a search fetches.
	DefaultCorpusLimit = 500

	defaultSearchLimit     = 20
	defaultScoreThreshold  = 0.1
	defaultSuggestionLimit = 10
	defaultHistoryLimit    = 50

	// sourceStatisticsLimit caps how many sources the suggestion pipeline
	// considers for prefix matching.
	sourceStatisticsLimit = 100
)

// Relevance scores assigned per suggestion type. Historical queries rank
// above trie keywords, which rank above source names.
const (
	historySuggestionScore = 0.9
	keywordSuggestionScore = 0.8
	sourceSuggestionScore  = 0.7
)

// Result is the outcome of a semantic search.
type Result struct {
	Query      string
	Results    []*core.ScoredArticle
	Candidates int // articles at or above the score threshold, before truncation
	Corpus     int // articles fetched and indexed
	Duration   time.Duration
}

// FilterResult is the outcome of a filter search.
type FilterResult struct {
	Articles      []*core.Article
	Matched       int // articles matching the filter, before pagination
	Corpus        int
	ActiveFilters int
	Duration      time.Duration
}

// Engine orchestrates semantic search, filtering, autocomplete suggestions,
// and search history over a user's article corpus.
type Engine struct {
	articles    storage.ArticleRepository
	idx         *index.Index
	trie        *suggest.Trie
	history     *history.Store
	ranker      *Ranker
	logger      *slog.Logger
	corpusLimit int
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithIndex replaces the default TF-IDF index.
// A nil index keeps the default.
func WithIndex(idx *index.Index) Option {
	return func(e *Engine) error {
		if idx != nil {
			e.idx = idx
		}
		return nil
	}
}

// WithTrie replaces the default suggestion trie.
// A nil trie keeps the default.
func WithTrie(trie *suggest.Trie) Option {
	return func(e *Engine) error {
		if trie != nil {
			e.trie = trie
		}
		return nil
	}
}

// WithHistoryStore replaces the default history store.
// A nil store keeps the default.
func WithHistoryStore(store *history.Store) Option {
	return func(e *Engine) error {
		if store != nil {
			e.history = store
		}
		return nil
	}
}

// WithRanker replaces the default ranker.
// A nil ranker keeps the default.
func WithRanker(ranker *Ranker) Option {
	return func(e *Engine) error {
		if ranker != nil {
			e.ranker = ranker
		}
		return nil
	}
}

// WithCorpusLimit overrides how many recent articles a search fetches.
// Values below 1 fall back to DefaultCorpusLimit.
func WithCorpusLimit(limit int) Option {
	return func(e *Engine) error {
		if limit < 1 {
			limit = DefaultCorpusLimit
		}
		e.corpusLimit = limit
		return nil
	}
}

// NewEngine creates a search engine over the given article repository.
func NewEngine(articles storage.ArticleRepository, opts ...Option) (*Engine, error) {
	if articles == nil {
		return nil, ErrArticleRepositoryRequired
	}

	idx, err := index.NewIndex()
	if err != nil {
		return nil, err
	}

	ranker, err := NewRanker(DefaultWeights())
	if err != nil {
		return nil, err
	}

	e := &Engine{
		articles:    articles,
		idx:         idx,
		trie:        suggest.NewTrie(),
		ranker:      ranker,
		logger:      slog.Default(),
		corpusLimit: DefaultCorpusLimit,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	// The default history store feeds the engine's trie, so past queries
	// surface as keyword suggestions.
	if e.history == nil {
		store, err := history.NewStore(
			history.WithTermSink(e.trie),
			history.WithLogger(e.logger),
		)
		if err != nil {
			return nil, err
		}
		e.history = store
	}

	return e, nil
}

// SemanticSearch runs a TF-IDF search for query over the user's recent
// articles. Returns up to limit results scoring at or above threshold,
// ordered by combined relevance. A non-positive limit defaults to 20, a
// non-positive threshold to 0.1.
func (e *Engine) SemanticSearch(ctx context.Context, query, userID string, limit int, threshold float64) (*Result, error) {
	return e.SemanticSearchWithMonitor(ctx, query, userID, limit, threshold, nil)
}

// SemanticSearchWithMonitor runs a semantic search with monitoring.
// The monitor receives callbacks at each stage of the search process.
func (e *Engine) SemanticSearchWithMonitor(ctx context.Context, query, userID string, limit int, threshold float64, monitor SearchMonitor) (*Result, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, core.ErrEmptyQuery
	}
	if err := core.ValidateUserID(userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if threshold <= 0 {
		threshold = defaultScoreThreshold
	}

	started := time.Now()
	monitor.Start(query)

	// 1. Fetch the current corpus snapshot
	corpus, err := e.articles.GetRecentArticles(ctx, userID, e.corpusLimit)
	if err != nil {
		e.logger.Error("error fetching article corpus", "userID", userID, "err", err)
		return nil, fmt.Errorf("%w: %w", core.ErrCorpusUnavailable, err)
	}
	monitor.CorpusFetched(corpus)

	// 2. Rebuild the index against the snapshot. The corpus may have
	// changed since the last call, so every search indexes afresh.
	snapshot, err := e.idx.Build(ctx, corpus)
	if err != nil {
		e.logger.Error("error building index", "documents", len(corpus), "err", err)
		return nil, err
	}
	e.idx.Swap(snapshot)
	monitor.IndexBuilt(snapshot.DocCount(), snapshot.TermCount())

	// 3. Score every document, keeping those at or above the threshold
	terms := index.Tokenize(query)
	scores := make(map[core.ArticleID]float64, len(corpus))
	candidates := make([]*core.Article, 0, len(corpus))
	for _, article := range corpus {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		score := snapshot.Score(article.ID, terms)
		if score >= threshold {
			scores[article.ID] = score
			candidates = append(candidates, article)
		}
	}
	monitor.CandidatesScored(scores)

	// 4. Rank candidates across all signals and truncate
	results := e.ranker.Rank(candidates, scores, userID)
	candidateCount := len(results)
	if len(results) > limit {
		results = results[:limit]
	}
	monitor.Finish(results)

	result := &Result{
		Query:      query,
		Results:    results,
		Candidates: candidateCount,
		Corpus:     len(corpus),
		Duration:   time.Since(started),
	}

	e.recordSearch(ctx, userID, query, core.SearchFilter{}, len(results), result.Duration)

	return result, nil
}

// FilterSearch returns the user's articles matching the filter, sorted and
// paginated as the filter directs.
func (e *Engine) FilterSearch(ctx context.Context, filter core.SearchFilter, userID string) (*FilterResult, error) {
	if err := core.ValidateUserID(userID); err != nil {
		return nil, err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	started := time.Now()

	corpus, err := e.articles.GetRecentArticles(ctx, userID, e.corpusLimit)
	if err != nil {
		e.logger.Error("error fetching article corpus", "userID", userID, "err", err)
		return nil, fmt.Errorf("%w: %w", core.ErrCorpusUnavailable, err)
	}

	matched := make([]*core.Article, 0, len(corpus))
	for _, article := range corpus {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if filter.Matches(article) {
			matched = append(matched, article)
		}
	}
	total := len(matched)

	filter.Sort(matched)
	page := filter.Paginate(matched)

	result := &FilterResult{
		Articles:      page,
		Matched:       total,
		Corpus:        len(corpus),
		ActiveFilters: filter.ActiveCount(),
		Duration:      time.Since(started),
	}

	e.recordSearch(ctx, userID, filter.TextQuery, filter, len(page), result.Duration)

	return result, nil
}

// Suggest returns autocomplete suggestions for a prefix, merging trie
// keywords, the user's past queries, and source names. Legs run
// concurrently; a failing source-statistics leg degrades to the remaining
// types instead of failing the call. Results are ordered by relevance score,
// then frequency, then text, and are not deduplicated across types. A
// non-positive limit defaults to 10. With no types given, all types are
// returned.
func (e *Engine) Suggest(ctx context.Context, prefix, userID string, limit int, types ...core.SuggestionType) ([]core.Suggestion, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, core.ErrEmptyQuery
	}
	if err := core.ValidateUserID(userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}

	wanted := func(t core.SuggestionType) bool {
		return len(types) == 0 || slices.Contains(types, t)
	}

	var keywordLeg, historyLeg, sourceLeg []core.Suggestion

	g, gctx := errgroup.WithContext(ctx)

	if wanted(core.SuggestionKeyword) {
		g.Go(func() error {
			keywordLeg = e.trie.Suggest(prefix, limit)
			return gctx.Err()
		})
	}

	if wanted(core.SuggestionHistory) {
		g.Go(func() error {
			historyLeg = e.history.QuerySuggestions(userID, prefix, limit)
			return gctx.Err()
		})
	}

	if wanted(core.SuggestionSource) {
		g.Go(func() error {
			stats, err := e.articles.GetSourceStatistics(gctx, userID, sourceStatisticsLimit)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				// Degrade to the remaining suggestion types.
				e.logger.Warn("source suggestions unavailable", "userID", userID, "err", err)
				return nil
			}

			needle := strings.ToLower(prefix)
			for _, stat := range stats {
				if strings.HasPrefix(strings.ToLower(stat.Source), needle) {
					sourceLeg = append(sourceLeg, core.Suggestion{
						Text:      stat.Source,
						Type:      core.SuggestionSource,
						Frequency: stat.Count,
					})
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]core.Suggestion, 0, len(keywordLeg)+len(historyLeg)+len(sourceLeg))
	for _, s := range historyLeg {
		s.Score = historySuggestionScore
		merged = append(merged, s)
	}
	for _, s := range keywordLeg {
		s.Score = keywordSuggestionScore
		merged = append(merged, s)
	}
	for _, s := range sourceLeg {
		s.Score = sourceSuggestionScore
		merged = append(merged, s)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Score != merged[j].Score {
			return merged[i].Score > merged[j].Score
		}
		if merged[i].Frequency != merged[j].Frequency {
			return merged[i].Frequency > merged[j].Frequency
		}
		return merged[i].Text < merged[j].Text
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}

	return merged, nil
}

// Rank scores caller-supplied articles against a query using an index built
// over just those articles, then orders them by combined relevance. The
// engine's published index is left untouched.
func (e *Engine) Rank(ctx context.Context, articles []*core.Article, query, userID string) ([]*core.ScoredArticle, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, core.ErrEmptyQuery
	}

	snapshot, err := e.idx.Build(ctx, articles)
	if err != nil {
		return nil, err
	}

	scores := snapshot.ScoreAll(index.Tokenize(query))
	return e.ranker.Rank(articles, scores, userID), nil
}

// RecordHistory records a search in the user's history.
func (e *Engine) RecordHistory(ctx context.Context, entry *core.HistoryEntry) error {
	return e.history.Record(ctx, entry)
}

// History returns the user's past searches, newest first, optionally
// keeping only queries containing textFilter. A non-positive limit
// defaults to 50.
func (e *Engine) History(userID string, limit int, textFilter string) ([]*core.HistoryEntry, error) {
	if err := core.ValidateUserID(userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return e.history.Query(userID, limit, textFilter), nil
}

// ClearHistory removes the user's history entries, or with olderThan set
// only those recorded before it. Returns the number of removed entries.
func (e *Engine) ClearHistory(userID string, olderThan *time.Time) (int, error) {
	if err := core.ValidateUserID(userID); err != nil {
		return 0, err
	}
	return e.history.Clear(userID, olderThan), nil
}

// Analytics summarizes the user's recorded searches, optionally restricted
// to a date range.
func (e *Engine) Analytics(userID string, dates *core.DateRange) (*core.SearchAnalytics, error) {
	if err := core.ValidateUserID(userID); err != nil {
		return nil, err
	}
	return e.history.Analytics(userID, dates), nil
}

// recordSearch appends a history entry for a completed search. Failures are
// logged, never surfaced; a failed recording must not fail the search.
func (e *Engine) recordSearch(ctx context.Context, userID, query string, filter core.SearchFilter, resultCount int, took time.Duration) {
	if query == "" && filter.ActiveCount() == 0 {
		// An unconstrained browse is not a search worth remembering.
		return
	}
	entry := &core.HistoryEntry{
		UserID:      userID,
		Query:       query,
		Filter:      filter,
		ResultCount: resultCount,
		Duration:    took,
	}
	if err := e.history.Record(ctx, entry); err != nil {
		e.logger.Warn("failed to record search history", "userID", userID, "err", err)
	}
}
