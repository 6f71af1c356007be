package index

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync/atomic"
	"time"

	"github.com/tessella/newsdex/core"
)

// Index maintains the current TF-IDF snapshot for a corpus.
// Build produces a new immutable Snapshot; Swap publishes it atomically so
// readers never observe a half-built index.
type Index struct {
	logger  *slog.Logger
	current atomic.Pointer[Snapshot]
}

// Option configures an Index.
type Option func(*Index) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(idx *Index) error {
		if logger == nil {
			logger = slog.Default()
		}
		idx.logger = logger
		return nil
	}
}

// NewIndex creates an empty index.
func NewIndex(opts ...Option) (*Index, error) {
	idx := &Index{
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(idx); err != nil {
			return nil, err
		}
	}

	idx.current.Store(emptySnapshot())
	return idx, nil
}

// Snapshot is an immutable TF-IDF view over one corpus generation.
// All maps are written only during Build and never mutated afterwards.
type Snapshot struct {
	builtAt  time.Time
	docCount int
	weights  map[core.ArticleID]map[string]float64
	docFreq  map[string]int
}

func emptySnapshot() *Snapshot {
	return &Snapshot{
		builtAt: time.Now(),
		weights: map[core.ArticleID]map[string]float64{},
		docFreq: map[string]int{},
	}
}

// Build constructs a fresh snapshot from the given articles.
// The context is checked between documents; on cancellation no partial
// snapshot is returned and the current snapshot is left untouched.
func (idx *Index) Build(ctx context.Context, articles []*core.Article) (*Snapshot, error) {
	start := time.Now()

	snap := &Snapshot{
		builtAt:  start,
		docCount: len(articles),
		weights:  make(map[core.ArticleID]map[string]float64, len(articles)),
		docFreq:  make(map[string]int),
	}

	// First pass: term frequencies per document, document frequency per term.
	termFreqs := make(map[core.ArticleID]map[string]float64, len(articles))
	for _, article := range articles {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", core.ErrIndexBuild, err)
		}
		if article == nil {
			return nil, fmt.Errorf("%w: nil article", core.ErrIndexBuild)
		}

		tokens := Tokenize(article.SearchText())
		counts := termCounts(tokens)

		freqs := make(map[string]float64, len(counts))
		total := float64(len(tokens))
		for term, count := range counts {
			freqs[term] = float64(count) / total
			snap.docFreq[term]++
		}
		termFreqs[article.ID] = freqs
	}

	// Second pass: fold in inverse document frequency.
	total := float64(snap.docCount)
	for id, freqs := range termFreqs {
		weights := make(map[string]float64, len(freqs))
		for term, tf := range freqs {
			idf := math.Log(total / float64(snap.docFreq[term]))
			weights[term] = tf * idf
		}
		snap.weights[id] = weights
	}

	idx.logger.Debug("index built",
		"documents", snap.docCount,
		"terms", len(snap.docFreq),
		"duration", time.Since(start))

	return snap, nil
}

// Swap publishes snap as the current snapshot.
func (idx *Index) Swap(snap *Snapshot) {
	if snap == nil {
		return
	}
	idx.current.Store(snap)
}

// Current returns the most recently published snapshot. Never nil.
func (idx *Index) Current() *Snapshot {
	return idx.current.Load()
}

// DocCount reports how many documents the snapshot covers.
func (s *Snapshot) DocCount() int {
	return s.docCount
}

// TermCount reports how many distinct terms the snapshot indexed.
func (s *Snapshot) TermCount() int {
	return len(s.docFreq)
}

// BuiltAt reports when the snapshot was constructed.
func (s *Snapshot) BuiltAt() time.Time {
	return s.builtAt
}

// Score computes the relevance of a document for the given query terms:
// the sum of the document's TF-IDF weights for each term, normalized by the
// number of query terms. Unknown documents and empty term lists score 0.
func (s *Snapshot) Score(id core.ArticleID, terms []string) float64 {
	if len(terms) == 0 {
		return 0.0
	}
	weights, ok := s.weights[id]
	if !ok {
		return 0.0
	}

	var sum float64
	for _, term := range terms {
		sum += weights[term]
	}
	return sum / float64(len(terms))
}

// ScoreAll scores every indexed document against the query terms.
// Documents scoring 0 are omitted.
func (s *Snapshot) ScoreAll(terms []string) map[core.ArticleID]float64 {
	scores := make(map[core.ArticleID]float64)
	if len(terms) == 0 {
		return scores
	}
	for id := range s.weights {
		if score := s.Score(id, terms); score > 0 {
			scores[id] = score
		}
	}
	return scores
}

// Terms returns every indexed term with the number of documents containing
// it, most frequent first. Ties break alphabetically.
func (s *Snapshot) Terms() []core.TermCount {
	terms := make([]core.TermCount, 0, len(s.docFreq))
	for term, count := range s.docFreq {
		terms = append(terms, core.TermCount{Term: term, Count: count})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Term < terms[j].Term
	})
	return terms
}
