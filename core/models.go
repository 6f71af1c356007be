package core

//go:generate go run ../cmd/musgen

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ArticleID is a unique identifier for an article.
// IDs are owned by the corpus; content-derived IDs come from ArticleIDFromContent.
type ArticleID string

// ArticleIDFromContent generates a deterministic ID from article content using
// BLAKE2b hashing. Identical content produces identical IDs, which keeps
// repeated seeding of the same feed idempotent.
func ArticleIDFromContent(text string) ArticleID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ArticleID(hex.EncodeToString(sum))
}

// SentimentLabel classifies the overall tone of an article.
type SentimentLabel string

const (
	// SentimentPositive marks articles with score >= +0.15.
	SentimentPositive SentimentLabel = "positive"
	// SentimentNegative marks articles with score <= -0.15.
	SentimentNegative SentimentLabel = "negative"
	// SentimentNeutral marks everything in between.
	SentimentNeutral SentimentLabel = "neutral"
)

// sentimentLabelCutoff is the absolute score below which an article is neutral.
const sentimentLabelCutoff = 0.15

// SentimentLabelFor derives the label for a sentiment score in [-1, 1].
func SentimentLabelFor(score float64) SentimentLabel {
	switch {
	case score >= sentimentLabelCutoff:
		return SentimentPositive
	case score <= -sentimentLabelCutoff:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// Article is a news-style document held by the corpus.
// The search engine treats articles as read-only; sentiment and keywords are
// populated by the enrichment processors.
type Article struct {
	ID             ArticleID
	Title          string
	Summary        string
	Content        string
	Source         string
	URL            string
	PublishedAt    time.Time // When the article was originally published
	Keywords       []string  // Extracted topical keywords (populated by processors)
	SentimentScore float64   // Tone in [-1, 1] (populated by processors)
	SentimentLabel SentimentLabel
	Bookmarked     bool
	InsertedAt     time.Time // When the article entered the corpus store
	UpdatedAt      time.Time // When the stored article was last updated
}

// SearchText returns the text the index and text filters operate on:
// title, summary and content joined by spaces.
func (a *Article) SearchText() string {
	return a.Title + " " + a.Summary + " " + a.Content
}

// AnalysisText assembles the text sentiment scoring and keyword extraction
// run on. The title leads so short bodies still carry the subject; empty
// fields are skipped rather than leaving blank paragraphs.
func (a *Article) AnalysisText() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{a.Title, a.Summary, a.Content} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, "\n\n")
}

// SuggestionType identifies where an autocomplete suggestion came from.
type SuggestionType string

const (
	// SuggestionKeyword comes from the term trie.
	SuggestionKeyword SuggestionType = "keyword"
	// SuggestionSource comes from corpus source statistics.
	SuggestionSource SuggestionType = "source"
	// SuggestionHistory comes from the user's past queries.
	SuggestionHistory SuggestionType = "history"
)

// Suggestion is a single autocomplete candidate.
// Identical text may appear once per type; callers that want one entry per
// text can collapse on Text.
type Suggestion struct {
	Text      string
	Type      SuggestionType
	Score     float64 // Merge relevance assigned by the engine
	Frequency int     // How often the text was seen by its source
}

// SourceCount is one row of corpus source statistics.
type SourceCount struct {
	Source string
	Count  int
}

// TermCount is one row of index term statistics.
type TermCount struct {
	Term  string
	Count int
}

// DateRange bounds a time interval, inclusive on both ends.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// SentimentRange bounds sentiment scores, inclusive on both ends.
type SentimentRange struct {
	Min float64
	Max float64
}

// Contains reports whether score falls inside the range.
func (r SentimentRange) Contains(score float64) bool {
	return score >= r.Min && score <= r.Max
}

// ScoredArticle is an article with its combined relevance score and the named
// per-signal breakdown that produced it. Produced per query, never persisted.
type ScoredArticle struct {
	Article   *Article
	Score     float64
	Breakdown map[string]float64
}

// HistoryEntry records one completed search.
type HistoryEntry struct {
	ID          string // UUID, assigned on record if empty
	UserID      string
	Query       string
	Filter      SearchFilter // Snapshot of the filter in effect, zero value if none
	Timestamp   time.Time
	ResultCount int
	Duration    time.Duration
}

// QueryCount is one row of the most-frequent-queries analytics table.
type QueryCount struct {
	Query string
	Count int
}

// SearchAnalytics summarizes a user's recorded searches.
type SearchAnalytics struct {
	TotalSearches  int
	AvgResultCount float64
	AvgDuration    time.Duration
	TopQueries     []QueryCount // At most 10, most frequent first
	HourHistogram  [24]int      // Search counts by UTC hour of day
}

// EnrichCursor marks how far a batch re-enrichment run has progressed for a
// user, so an interrupted run can resume.
type EnrichCursor struct {
	UserID        string
	LastArticleID ArticleID
	Processed     int
	UpdatedAt     time.Time
}
