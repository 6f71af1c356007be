package history

import (
	"sort"
	"strings"
	"time"

	"github.com/tessella/newsdex/core"
)

// topQueryCount bounds the most-frequent-queries table.
const topQueryCount = 10

// Analytics summarizes the user's recorded searches, optionally restricted
// to a date range. Queries are counted case-insensitively.
func (s *Store) Analytics(userID string, dates *core.DateRange) *core.SearchAnalytics {
	s.mu.RLock()
	matched := make([]*core.HistoryEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.UserID != userID {
			continue
		}
		if dates != nil && !dates.Contains(e.Timestamp) {
			continue
		}
		matched = append(matched, e)
	}
	s.mu.RUnlock()

	summary := &core.SearchAnalytics{
		TotalSearches: len(matched),
	}
	if len(matched) == 0 {
		return summary
	}

	var totalResults int
	var totalDuration time.Duration
	queryCounts := make(map[string]int)
	for _, e := range matched {
		totalResults += e.ResultCount
		totalDuration += e.Duration
		summary.HourHistogram[e.Timestamp.UTC().Hour()]++

		// Filter-only searches carry an empty query and are counted in the
		// totals but not in the top-queries table.
		query := strings.ToLower(strings.TrimSpace(e.Query))
		if query != "" {
			queryCounts[query]++
		}
	}

	summary.AvgResultCount = float64(totalResults) / float64(len(matched))
	summary.AvgDuration = totalDuration / time.Duration(len(matched))

	top := make([]core.QueryCount, 0, len(queryCounts))
	for query, count := range queryCounts {
		top = append(top, core.QueryCount{Query: query, Count: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Query < top[j].Query
	})
	if len(top) > topQueryCount {
		top = top[:topQueryCount]
	}
	summary.TopQueries = top

	return summary
}
