package search

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/tessella/newsdex/core"
)

// Breakdown keys reported on every ScoredArticle.
const (
	SignalSemantic   = "semantic"
	SignalRecency    = "recency"
	SignalAuthority  = "authority"
	SignalEngagement = "engagement"
	SignalSentiment  = "sentiment"
)

const (
	// recencyDecayDays is the exponential decay constant of the recency
	// signal: an article 30 days old scores 1/e.
	recencyDecayDays = 30.0

	// defaultAuthority is the score of sources absent from the authority table.
	defaultAuthority = 0.5

	// weightSumTolerance is the epsilon for the weight-sum check.
	weightSumTolerance = 1e-9
)

// Weights controls how much each ranking signal contributes to the
// combined score. The weights must be non-negative and sum to 1.0.
type Weights struct {
	Semantic           float64
	Recency            float64
	Authority          float64
	Engagement         float64
	SentimentAlignment float64
}

// DefaultWeights returns the standard signal weights.
func DefaultWeights() Weights {
	return Weights{
		Semantic:           0.40,
		Recency:            0.25,
		Authority:          0.20,
		Engagement:         0.10,
		SentimentAlignment: 0.05,
	}
}

// Validate checks that the weights are non-negative and sum to 1.0.
func (w Weights) Validate() error {
	for _, v := range []float64{w.Semantic, w.Recency, w.Authority, w.Engagement, w.SentimentAlignment} {
		if v < 0 {
			return fmt.Errorf("%w: ranking weights must be non-negative", core.ErrInvalidConfiguration)
		}
	}

	sum := w.Semantic + w.Recency + w.Authority + w.Engagement + w.SentimentAlignment
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("%w: ranking weights sum to %v, want 1.0", core.ErrInvalidConfiguration, sum)
	}
	return nil
}

// DefaultAuthorityTable returns the built-in source authority table.
// Keys are lowercased source names; lookups are case-insensitive and
// sources absent from the table score 0.5.
func DefaultAuthorityTable() map[string]float64 {
	return map[string]float64{
		"reuters":                 0.95,
		"associated press":        0.93,
		"ap":                      0.93,
		"bbc":                     0.90,
		"bbc news":                0.90,
		"bloomberg":               0.88,
		"the wall street journal": 0.87,
		"wall street journal":     0.87,
		"financial times":         0.87,
		"the economist":           0.86,
		"the new york times":      0.85,
		"the guardian":            0.83,
		"the washington post":     0.83,
		"npr":                     0.80,
		"cnbc":                    0.78,
		"cnn":                     0.75,
		"techcrunch":              0.70,
		"the verge":               0.68,
		"wired":                   0.68,
		"business insider":        0.62,
	}
}

// Ranker combines independent relevance signals into one ordering.
type Ranker struct {
	weights    Weights
	authority  map[string]float64
	preference func(userID string) float64
}

// RankerOption configures a Ranker.
type RankerOption func(*Ranker) error

// WithAuthorityTable replaces the source authority table.
// Keys are matched case-insensitively; a nil table keeps the default.
func WithAuthorityTable(table map[string]float64) RankerOption {
	return func(r *Ranker) error {
		if table == nil {
			return nil
		}
		normalized := make(map[string]float64, len(table))
		for source, score := range table {
			normalized[strings.ToLower(source)] = score
		}
		r.authority = normalized
		return nil
	}
}

// WithSentimentPreference sets a per-user lookup for the preferred sentiment
// used by the alignment signal. Without one every user prefers 0.0 (neutral).
func WithSentimentPreference(preference func(userID string) float64) RankerOption {
	return func(r *Ranker) error {
		r.preference = preference
		return nil
	}
}

// NewRanker creates a ranker with the given weights.
// Returns core.ErrInvalidConfiguration if the weights do not sum to 1.0.
func NewRanker(weights Weights, opts ...RankerOption) (*Ranker, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}

	r := &Ranker{
		weights:   weights,
		authority: DefaultAuthorityTable(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Rank scores each article across all signals and returns them ordered by
// combined score, highest first. semanticScores supplies the semantic signal
// per article ID; absent articles score 0.0 on it. The sort is stable, so
// ties keep the input order.
func (r *Ranker) Rank(articles []*core.Article, semanticScores map[core.ArticleID]float64, userID string) []*core.ScoredArticle {
	now := time.Now().UTC()
	preferred := r.preferredSentiment(userID)

	results := make([]*core.ScoredArticle, 0, len(articles))
	for _, article := range articles {
		if article == nil {
			continue
		}

		breakdown := map[string]float64{
			SignalSemantic:   clamp01(semanticScores[article.ID]),
			SignalRecency:    clamp01(r.recencyScore(article.PublishedAt, now)),
			SignalAuthority:  clamp01(r.authorityScore(article.Source)),
			SignalEngagement: clamp01(r.engagementScore(article)),
			SignalSentiment:  clamp01(r.sentimentAlignment(article, preferred)),
		}

		results = append(results, &core.ScoredArticle{
			Article:   article,
			Score:     r.Combine(breakdown),
			Breakdown: breakdown,
		})
	}

	// Sort by score descending
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// Combine folds a signal breakdown into one score using the ranker's
// weights. Each signal is clamped to [0, 1] before weighting, so the
// result is also in [0, 1].
func (r *Ranker) Combine(breakdown map[string]float64) float64 {
	return r.weights.Semantic*clamp01(breakdown[SignalSemantic]) +
		r.weights.Recency*clamp01(breakdown[SignalRecency]) +
		r.weights.Authority*clamp01(breakdown[SignalAuthority]) +
		r.weights.Engagement*clamp01(breakdown[SignalEngagement]) +
		r.weights.SentimentAlignment*clamp01(breakdown[SignalSentiment])
}

// recencyScore decays exponentially with article age.
// Articles dated in the future score 1.0.
func (r *Ranker) recencyScore(publishedAt, now time.Time) float64 {
	age := now.Sub(publishedAt)
	if age <= 0 {
		return 1.0
	}
	days := age.Hours() / 24
	return math.Exp(-days / recencyDecayDays)
}

// authorityScore looks the source up in the authority table.
func (r *Ranker) authorityScore(source string) float64 {
	if score, ok := r.authority[strings.ToLower(source)]; ok {
		return score
	}
	return defaultAuthority
}

// engagementScore rewards bookmarked articles and strong sentiment:
// 0.3 for a bookmark plus |sentiment| x 0.2, capped at 1.0.
func (r *Ranker) engagementScore(article *core.Article) float64 {
	score := math.Abs(article.SentimentScore) * 0.2
	if article.Bookmarked {
		score += 0.3
	}
	if score > 1 {
		score = 1
	}
	return score
}

// sentimentAlignment measures how close the article's sentiment is to the
// user's preferred sentiment: 1 at a perfect match, 0 at opposite extremes.
func (r *Ranker) sentimentAlignment(article *core.Article, preferred float64) float64 {
	return 1 - math.Abs(article.SentimentScore-preferred)/2
}

func (r *Ranker) preferredSentiment(userID string) float64 {
	if r.preference == nil {
		return 0
	}
	return r.preference(userID)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
