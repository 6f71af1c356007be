package history

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tessella/newsdex/core"
	"github.com/tessella/newsdex/index"
)

const (
	// DefaultCapacity bounds the number of retained entries.
	DefaultCapacity = 1000
	// DefaultRetention bounds the age of retained entries.
	DefaultRetention = 90 * 24 * time.Hour
)

// TermSink receives the terms of recorded queries.
type TermSink interface {
	Insert(word string)
}

// Archive receives recorded entries for durable storage.
type Archive interface {
	SaveHistoryEntry(ctx context.Context, entry *core.HistoryEntry) error
}

// Store is an append-and-prune log of past searches.
// Writes are serialized; reads may proceed concurrently.
type Store struct {
	logger    *slog.Logger
	capacity  int
	retention time.Duration
	sink      TermSink
	archive   Archive

	mu      sync.RWMutex
	entries []*core.HistoryEntry // insertion order, oldest first
}

// Option configures a Store.
type Option func(*Store) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithCapacity overrides the entry capacity.
// Values below 1 fall back to DefaultCapacity.
func WithCapacity(capacity int) Option {
	return func(s *Store) error {
		if capacity < 1 {
			capacity = DefaultCapacity
		}
		s.capacity = capacity
		return nil
	}
}

// WithRetention overrides the retention window.
// Non-positive durations fall back to DefaultRetention.
func WithRetention(retention time.Duration) Option {
	return func(s *Store) error {
		if retention <= 0 {
			retention = DefaultRetention
		}
		s.retention = retention
		return nil
	}
}

// WithTermSink feeds recorded query terms into sink.
func WithTermSink(sink TermSink) Option {
	return func(s *Store) error {
		s.sink = sink
		return nil
	}
}

// WithArchive tees recorded entries into archive.
func WithArchive(archive Archive) Option {
	return func(s *Store) error {
		s.archive = archive
		return nil
	}
}

// NewStore creates an empty history store.
func NewStore(opts ...Option) (*Store, error) {
	s := &Store{
		logger:    slog.Default(),
		capacity:  DefaultCapacity,
		retention: DefaultRetention,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Record appends an entry, assigning an ID and timestamp when absent, then
// prunes by capacity (oldest first) and by age. Query terms are fed to the
// term sink and the entry is teed to the archive; archive failures are
// logged but do not fail the call.
func (s *Store) Record(ctx context.Context, entry *core.HistoryEntry) error {
	if err := core.ValidateHistoryEntry(entry); err != nil {
		return err
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	if excess := len(s.entries) - s.capacity; excess > 0 {
		s.entries = append([]*core.HistoryEntry(nil), s.entries[excess:]...)
	}
	s.sweepLocked(time.Now().Add(-s.retention))
	s.mu.Unlock()

	if s.sink != nil {
		for _, term := range index.Tokenize(entry.Query) {
			s.sink.Insert(term)
		}
	}

	if s.archive != nil {
		if err := s.archive.SaveHistoryEntry(ctx, entry); err != nil {
			s.logger.Warn("failed to archive history entry",
				"entryID", entry.ID, "user", entry.UserID, "err", err)
		}
	}

	return nil
}

// sweepLocked drops entries with timestamps before cutoff.
// Callers must hold the write lock.
func (s *Store) sweepLocked(cutoff time.Time) {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if !e.Timestamp.Before(cutoff) {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(s.entries); i++ {
		s.entries[i] = nil
	}
	s.entries = kept
}

// Len reports the number of retained entries across all users.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Query returns the user's entries newest first, optionally keeping only
// queries containing textFilter (case-insensitive). A non-positive limit
// returns all matches.
func (s *Store) Query(userID string, limit int, textFilter string) []*core.HistoryEntry {
	needle := strings.ToLower(strings.TrimSpace(textFilter))

	s.mu.RLock()
	matched := make([]*core.HistoryEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.UserID != userID {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(e.Query), needle) {
			continue
		}
		matched = append(matched, e)
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// Clear removes the user's entries, or with olderThan set only those
// recorded before it. Returns the number of removed entries.
func (s *Store) Clear(userID string, olderThan *time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	removed := 0
	for _, e := range s.entries {
		drop := e.UserID == userID &&
			(olderThan == nil || e.Timestamp.Before(*olderThan))
		if drop {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(s.entries); i++ {
		s.entries[i] = nil
	}
	s.entries = kept
	return removed
}

// QuerySuggestions returns the user's distinct past queries starting with
// prefix, as history suggestions ordered by how often they were searched.
func (s *Store) QuerySuggestions(userID, prefix string, limit int) []core.Suggestion {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" || limit <= 0 {
		return nil
	}

	s.mu.RLock()
	counts := make(map[string]int)
	for _, e := range s.entries {
		if e.UserID != userID {
			continue
		}
		q := strings.ToLower(strings.TrimSpace(e.Query))
		if strings.HasPrefix(q, prefix) {
			counts[q]++
		}
	}
	s.mu.RUnlock()

	suggestions := make([]core.Suggestion, 0, len(counts))
	for text, count := range counts {
		suggestions = append(suggestions, core.Suggestion{
			Text:      text,
			Type:      core.SuggestionHistory,
			Frequency: count,
		})
	}
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Frequency != suggestions[j].Frequency {
			return suggestions[i].Frequency > suggestions[j].Frequency
		}
		return suggestions[i].Text < suggestions[j].Text
	})
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
