package core

import (
	"sort"
	"strings"
)

// SortField selects the attribute FilterSearch results are ordered by.
type SortField string

const (
	// SortByDate orders results by publication time.
	SortByDate SortField = "date"
	// SortBySource orders results alphabetically by source name.
	SortBySource SortField = "source"
	// SortByTitle orders results alphabetically by title.
	SortByTitle SortField = "title"
	// SortBySentiment orders results by sentiment score.
	SortBySentiment SortField = "sentiment"
)

// SortOrder selects ascending or descending ordering.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// SearchFilter narrows a result set by metadata criteria.
// The zero value matches every article; each unset criterion is skipped.
type SearchFilter struct {
	Dates          *DateRange      // Publication window, inclusive
	TextQuery      string          // Case-insensitive substring over title, summary and content
	Sources        []string        // Accepted source names, case-insensitive
	SentimentLabel SentimentLabel  // Required tone label, empty for any
	Sentiment      *SentimentRange // Required tone score range
	Keywords       []string        // At least one must appear among the article keywords
	BookmarkedOnly bool            // Keep only bookmarked articles

	SortBy  SortField // Optional result ordering
	SortDir SortOrder // Defaults to descending when SortBy is set
	Offset  int       // Pagination start, applied after sorting
	Limit   int       // Pagination size, 0 means no limit
}

// ActiveCount reports how many filter criteria are set.
// Sorting and pagination are presentation concerns and do not count.
func (f *SearchFilter) ActiveCount() int {
	n := 0
	if f.Dates != nil {
		n++
	}
	if strings.TrimSpace(f.TextQuery) != "" {
		n++
	}
	if len(f.Sources) > 0 {
		n++
	}
	if f.SentimentLabel != "" {
		n++
	}
	if f.Sentiment != nil {
		n++
	}
	if len(f.Keywords) > 0 {
		n++
	}
	if f.BookmarkedOnly {
		n++
	}
	return n
}

// Matches reports whether an article satisfies every set criterion.
// Criteria are checked in a fixed order: dates, text, sources, sentiment,
// keywords, bookmark.
func (f *SearchFilter) Matches(article *Article) bool {
	if article == nil {
		return false
	}

	if f.Dates != nil && !f.Dates.Contains(article.PublishedAt) {
		return false
	}

	if q := strings.TrimSpace(f.TextQuery); q != "" {
		if !textMatches(article, q) {
			return false
		}
	}

	if len(f.Sources) > 0 && !containsFold(f.Sources, article.Source) {
		return false
	}

	if f.SentimentLabel != "" && article.SentimentLabel != f.SentimentLabel {
		return false
	}

	if f.Sentiment != nil && !f.Sentiment.Contains(article.SentimentScore) {
		return false
	}

	if len(f.Keywords) > 0 {
		found := false
		for _, want := range f.Keywords {
			if keywordMatches(article, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.BookmarkedOnly && !article.Bookmarked {
		return false
	}

	return true
}

// Apply returns the articles that satisfy the filter, sorted and paginated
// according to the presentation settings. The input slice is not modified.
func (f *SearchFilter) Apply(articles []*Article) []*Article {
	matched := make([]*Article, 0, len(articles))
	for _, a := range articles {
		if f.Matches(a) {
			matched = append(matched, a)
		}
	}
	f.Sort(matched)
	return f.Paginate(matched)
}

// Sort orders articles in place by the configured field and direction.
// With no SortBy set the input order is preserved.
func (f *SearchFilter) Sort(articles []*Article) {
	if f.SortBy == "" {
		return
	}
	asc := f.SortDir == SortAscending
	sort.SliceStable(articles, func(i, j int) bool {
		a, b := articles[i], articles[j]
		if !asc {
			// Comparing swapped operands gives a strict descending order;
			// negating less would report ties as ordered both ways.
			a, b = b, a
		}
		switch f.SortBy {
		case SortBySource:
			return strings.ToLower(a.Source) < strings.ToLower(b.Source)
		case SortByTitle:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		case SortBySentiment:
			return a.SentimentScore < b.SentimentScore
		default:
			return a.PublishedAt.Before(b.PublishedAt)
		}
	})
}

// Paginate returns the window of articles selected by Offset and Limit.
// Out-of-range offsets yield an empty slice, never a panic.
func (f *SearchFilter) Paginate(articles []*Article) []*Article {
	if f.Offset <= 0 && f.Limit <= 0 {
		return articles
	}
	start := f.Offset
	if start < 0 {
		start = 0
	}
	if start >= len(articles) {
		return []*Article{}
	}
	end := len(articles)
	if f.Limit > 0 && start+f.Limit < end {
		end = start + f.Limit
	}
	return articles[start:end]
}

// Validate checks that set criteria are internally consistent.
func (f *SearchFilter) Validate() error {
	if f.Dates != nil && f.Dates.End.Before(f.Dates.Start) {
		return ErrInvalidFilter
	}
	if f.Sentiment != nil && f.Sentiment.Max < f.Sentiment.Min {
		return ErrInvalidFilter
	}
	return nil
}

// textMatches checks the query as a case-insensitive substring of the
// article text or any of its keywords.
func textMatches(article *Article, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(article.SearchText()), q) {
		return true
	}
	for _, kw := range article.Keywords {
		if strings.Contains(strings.ToLower(kw), q) {
			return true
		}
	}
	return false
}

// keywordMatches checks a wanted keyword as a case-insensitive substring of
// any article keyword or of the article text.
func keywordMatches(article *Article, want string) bool {
	w := strings.ToLower(want)
	for _, kw := range article.Keywords {
		if strings.Contains(strings.ToLower(kw), w) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(article.SearchText()), w)
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}
