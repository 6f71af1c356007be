package search

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tessella/newsdex/core"
)

func TestDefaultWeights(t *testing.T) {
	weights := DefaultWeights()
	require.NoError(t, weights.Validate())

	sum := weights.Semantic + weights.Recency + weights.Authority +
		weights.Engagement + weights.SentimentAlignment
	assert.InDelta(t, 1.0, sum, weightSumTolerance)
}

func TestWeights_Validate(t *testing.T) {
	tests := []struct {
		name    string
		weights Weights
		wantErr bool
	}{
		{
			name:    "default weights",
			weights: DefaultWeights(),
			wantErr: false,
		},
		{
			name: "uniform weights",
			weights: Weights{
				Semantic:           0.2,
				Recency:            0.2,
				Authority:          0.2,
				Engagement:         0.2,
				SentimentAlignment: 0.2,
			},
			wantErr: false,
		},
		{
			name: "sum within tolerance",
			weights: Weights{
				Semantic:           0.4 + 1e-12,
				Recency:            0.25,
				Authority:          0.2,
				Engagement:         0.1,
				SentimentAlignment: 0.05,
			},
			wantErr: false,
		},
		{
			name: "sum below one",
			weights: Weights{
				Semantic: 0.5,
				Recency:  0.4,
			},
			wantErr: true,
		},
		{
			name: "sum above one",
			weights: Weights{
				Semantic:           0.5,
				Recency:            0.5,
				Authority:          0.5,
				Engagement:         0.0,
				SentimentAlignment: 0.0,
			},
			wantErr: true,
		},
		{
			name: "negative weight",
			weights: Weights{
				Semantic:           1.2,
				Recency:            -0.2,
				Authority:          0.0,
				Engagement:         0.0,
				SentimentAlignment: 0.0,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.weights.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewRanker(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		ranker, err := NewRanker(DefaultWeights())
		require.NoError(t, err)
		assert.NotNil(t, ranker)
	})

	t.Run("invalid weights fail fast", func(t *testing.T) {
		_, err := NewRanker(Weights{Semantic: 1.5})
		assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
	})

	t.Run("with custom authority table", func(t *testing.T) {
		ranker, err := NewRanker(DefaultWeights(), WithAuthorityTable(map[string]float64{
			"Local Gazette": 0.99,
		}))
		require.NoError(t, err)
		assert.Equal(t, 0.99, ranker.authorityScore("local gazette"))
	})

	t.Run("with nil authority table keeps default", func(t *testing.T) {
		ranker, err := NewRanker(DefaultWeights(), WithAuthorityTable(nil))
		require.NoError(t, err)
		assert.Equal(t, 0.95, ranker.authorityScore("Reuters"))
	})

	t.Run("with sentiment preference", func(t *testing.T) {
		ranker, err := NewRanker(DefaultWeights(), WithSentimentPreference(func(userID string) float64 {
			return 0.5
		}))
		require.NoError(t, err)
		assert.Equal(t, 0.5, ranker.preferredSentiment("alice"))
	})
}

func TestRanker_RecencyScore(t *testing.T) {
	ranker, err := NewRanker(DefaultWeights())
	require.NoError(t, err)

	now := time.Now().UTC()

	t.Run("published now scores one", func(t *testing.T) {
		assert.Equal(t, 1.0, ranker.recencyScore(now, now))
	})

	t.Run("future date clamps to one", func(t *testing.T) {
		assert.Equal(t, 1.0, ranker.recencyScore(now.Add(24*time.Hour), now))
	})

	t.Run("thirty days old scores one over e", func(t *testing.T) {
		score := ranker.recencyScore(now.Add(-30*24*time.Hour), now)
		assert.InDelta(t, 1/math.E, score, 1e-9)
	})

	t.Run("monotonically decreasing with age", func(t *testing.T) {
		ages := []time.Duration{
			0,
			24 * time.Hour,
			10 * 24 * time.Hour,
			30 * 24 * time.Hour,
			90 * 24 * time.Hour,
			365 * 24 * time.Hour,
		}

		scores := make([]float64, len(ages))
		for i, age := range ages {
			scores[i] = ranker.recencyScore(now.Add(-age), now)
		}
		assert.IsDecreasing(t, scores)
		assert.Greater(t, scores[len(scores)-1], 0.0)
	})
}

func TestRanker_AuthorityScore(t *testing.T) {
	ranker, err := NewRanker(DefaultWeights())
	require.NoError(t, err)

	tests := []struct {
		name   string
		source string
		want   float64
	}{
		{"known source", "Reuters", 0.95},
		{"case-insensitive lookup", "REUTERS", 0.95},
		{"another known source", "Bloomberg", 0.88},
		{"unknown source", "My Tech Blog", defaultAuthority},
		{"empty source", "", defaultAuthority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ranker.authorityScore(tt.source))
		})
	}
}

func TestRanker_EngagementScore(t *testing.T) {
	ranker, err := NewRanker(DefaultWeights())
	require.NoError(t, err)

	tests := []struct {
		name    string
		article *core.Article
		want    float64
	}{
		{
			name:    "neutral unbookmarked",
			article: &core.Article{},
			want:    0.0,
		},
		{
			name:    "bookmark only",
			article: &core.Article{Bookmarked: true},
			want:    0.3,
		},
		{
			name:    "positive sentiment only",
			article: &core.Article{SentimentScore: 0.5},
			want:    0.1,
		},
		{
			name:    "negative sentiment counts by magnitude",
			article: &core.Article{SentimentScore: -0.5},
			want:    0.1,
		},
		{
			name:    "bookmark and strong sentiment",
			article: &core.Article{Bookmarked: true, SentimentScore: 1.0},
			want:    0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ranker.engagementScore(tt.article), 1e-9)
		})
	}
}

func TestRanker_SentimentAlignment(t *testing.T) {
	ranker, err := NewRanker(DefaultWeights())
	require.NoError(t, err)

	tests := []struct {
		name      string
		sentiment float64
		preferred float64
		want      float64
	}{
		{"perfect match at neutral", 0.0, 0.0, 1.0},
		{"opposite extremes", 1.0, -1.0, 0.0},
		{"mild positive against neutral", 0.4, 0.0, 0.8},
		{"preference tracks the document", 0.6, 0.6, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ranker.sentimentAlignment(&core.Article{SentimentScore: tt.sentiment}, tt.preferred)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestRanker_Combine(t *testing.T) {
	ranker, err := NewRanker(DefaultWeights())
	require.NoError(t, err)

	t.Run("weighted sum of signals", func(t *testing.T) {
		score := ranker.Combine(map[string]float64{
			SignalSemantic:   1.0,
			SignalRecency:    1.0,
			SignalAuthority:  1.0,
			SignalEngagement: 1.0,
			SignalSentiment:  1.0,
		})
		assert.InDelta(t, 1.0, score, 1e-9)
	})

	t.Run("clamps signals above one", func(t *testing.T) {
		inRange := ranker.Combine(map[string]float64{SignalSemantic: 1.0})
		clamped := ranker.Combine(map[string]float64{SignalSemantic: 7.5})
		assert.Equal(t, inRange, clamped)
	})

	t.Run("clamps negative signals to zero", func(t *testing.T) {
		assert.Equal(t, 0.0, ranker.Combine(map[string]float64{SignalRecency: -3.0}))
	})

	t.Run("missing signals score zero", func(t *testing.T) {
		assert.Equal(t, 0.0, ranker.Combine(map[string]float64{}))
	})
}

func TestRanker_Rank(t *testing.T) {
	ranker, err := NewRanker(DefaultWeights())
	require.NoError(t, err)

	now := time.Now().UTC()

	fresh := &core.Article{
		ID:          "fresh",
		Title:       "Tesla stock surges",
		Source:      "Reuters",
		PublishedAt: now,
		Bookmarked:  true,
	}
	stale := &core.Article{
		ID:          "stale",
		Title:       "Old market recap",
		Source:      "Unknown Wire",
		PublishedAt: now.Add(-120 * 24 * time.Hour),
	}

	t.Run("orders by combined score", func(t *testing.T) {
		results := ranker.Rank(
			[]*core.Article{stale, fresh},
			map[core.ArticleID]float64{"fresh": 0.9, "stale": 0.1},
			"alice",
		)

		require.Len(t, results, 2)
		assert.Equal(t, core.ArticleID("fresh"), results[0].Article.ID)
		assert.Greater(t, results[0].Score, results[1].Score)
	})

	t.Run("reports every breakdown signal", func(t *testing.T) {
		results := ranker.Rank([]*core.Article{fresh}, nil, "alice")

		require.Len(t, results, 1)
		breakdown := results[0].Breakdown
		for _, signal := range []string{SignalSemantic, SignalRecency, SignalAuthority, SignalEngagement, SignalSentiment} {
			assert.Contains(t, breakdown, signal)
		}
		assert.Equal(t, 0.0, breakdown[SignalSemantic])
	})

	t.Run("clamps semantic scores into range", func(t *testing.T) {
		results := ranker.Rank(
			[]*core.Article{fresh},
			map[core.ArticleID]float64{"fresh": 12.0},
			"alice",
		)

		require.Len(t, results, 1)
		assert.Equal(t, 1.0, results[0].Breakdown[SignalSemantic])
		assert.LessOrEqual(t, results[0].Score, 1.0)
	})

	t.Run("ties keep input order", func(t *testing.T) {
		first := &core.Article{ID: "first", Title: "Same", Source: "Reuters", PublishedAt: now}
		second := &core.Article{ID: "second", Title: "Same", Source: "Reuters", PublishedAt: now}

		results := ranker.Rank([]*core.Article{first, second}, nil, "alice")

		require.Len(t, results, 2)
		assert.Equal(t, core.ArticleID("first"), results[0].Article.ID)
		assert.Equal(t, core.ArticleID("second"), results[1].Article.ID)
	})

	t.Run("skips nil articles", func(t *testing.T) {
		results := ranker.Rank([]*core.Article{nil, fresh}, nil, "alice")
		require.Len(t, results, 1)
		assert.Equal(t, core.ArticleID("fresh"), results[0].Article.ID)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, ranker.Rank(nil, nil, "alice"))
	})
}

func TestRanker_Rank_SentimentPreference(t *testing.T) {
	ranker, err := NewRanker(
		Weights{SentimentAlignment: 1.0},
		WithSentimentPreference(func(userID string) float64 {
			if userID == "optimist" {
				return 1.0
			}
			return 0.0
		}),
	)
	require.NoError(t, err)

	now := time.Now().UTC()
	upbeat := &core.Article{ID: "up", Title: "Good news", Source: "AP", PublishedAt: now, SentimentScore: 0.9}
	gloomy := &core.Article{ID: "down", Title: "Bad news", Source: "AP", PublishedAt: now, SentimentScore: -0.9}

	optimist := ranker.Rank([]*core.Article{gloomy, upbeat}, nil, "optimist")
	require.Len(t, optimist, 2)
	assert.Equal(t, core.ArticleID("up"), optimist[0].Article.ID)

	neutral := ranker.Rank([]*core.Article{gloomy, upbeat}, nil, "alice")
	require.Len(t, neutral, 2)
	assert.InDelta(t, neutral[0].Score, neutral[1].Score, 1e-9)
}
