package core

import (
	"testing"
	"time"
)

func filterFixtures() []*Article {
	return []*Article{
		{
			ID:             "a",
			Title:          "Tesla expands battery production",
			Summary:        "New gigafactory announced",
			Content:        "Tesla battery production is growing with electric demand.",
			Source:         "Reuters",
			PublishedAt:    time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
			Keywords:       []string{"tesla", "battery"},
			SentimentScore: 0.6,
			SentimentLabel: SentimentPositive,
			Bookmarked:     true,
		},
		{
			ID:             "b",
			Title:          "Oil prices fall sharply",
			Summary:        "Markets react to supply news",
			Content:        "Crude oil markets saw a sharp decline this week.",
			Source:         "Bloomberg",
			PublishedAt:    time.Date(2025, 6, 20, 15, 0, 0, 0, time.UTC),
			Keywords:       []string{"oil", "markets"},
			SentimentScore: -0.5,
			SentimentLabel: SentimentNegative,
		},
		{
			ID:             "c",
			Title:          "City council approves park",
			Summary:        "A quiet afternoon vote",
			Content:        "The new park will open next spring.",
			Source:         "Reuters",
			PublishedAt:    time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC),
			Keywords:       []string{"park", "city"},
			SentimentScore: 0.05,
			SentimentLabel: SentimentNeutral,
		},
	}
}

func TestSearchFilter_Matches(t *testing.T) {
	articles := filterFixtures()

	tests := []struct {
		name   string
		filter SearchFilter
		want   []ArticleID
	}{
		{
			name:   "zero filter matches everything",
			filter: SearchFilter{},
			want:   []ArticleID{"a", "b", "c"},
		},
		{
			name: "date range",
			filter: SearchFilter{
				Dates: &DateRange{
					Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
					End:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
				},
			},
			want: []ArticleID{"a", "b"},
		},
		{
			name:   "text query is case insensitive",
			filter: SearchFilter{TextQuery: "TESLA"},
			want:   []ArticleID{"a"},
		},
		{
			name:   "text query over summary",
			filter: SearchFilter{TextQuery: "quiet afternoon"},
			want:   []ArticleID{"c"},
		},
		{
			name:   "source filter is case insensitive",
			filter: SearchFilter{Sources: []string{"reuters"}},
			want:   []ArticleID{"a", "c"},
		},
		{
			name:   "sentiment label",
			filter: SearchFilter{SentimentLabel: SentimentNegative},
			want:   []ArticleID{"b"},
		},
		{
			name:   "sentiment range",
			filter: SearchFilter{Sentiment: &SentimentRange{Min: 0, Max: 1}},
			want:   []ArticleID{"a", "c"},
		},
		{
			name:   "keyword match any",
			filter: SearchFilter{Keywords: []string{"oil", "park"}},
			want:   []ArticleID{"b", "c"},
		},
		{
			name:   "bookmarked only",
			filter: SearchFilter{BookmarkedOnly: true},
			want:   []ArticleID{"a"},
		},
		{
			name: "combined criteria",
			filter: SearchFilter{
				Sources:        []string{"Reuters"},
				SentimentLabel: SentimentPositive,
			},
			want: []ArticleID{"a"},
		},
		{
			name:   "no match",
			filter: SearchFilter{TextQuery: "submarine"},
			want:   []ArticleID{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []ArticleID
			for _, a := range articles {
				if tt.filter.Matches(a) {
					got = append(got, a.ID)
				}
			}

			if len(got) != len(tt.want) {
				t.Fatalf("Matches() kept %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Matches() kept %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestSearchFilter_Matches_NilArticle(t *testing.T) {
	f := SearchFilter{}
	if f.Matches(nil) {
		t.Error("Matches(nil) = true, want false")
	}
}

func TestSearchFilter_ActiveCount(t *testing.T) {
	tests := []struct {
		name   string
		filter SearchFilter
		want   int
	}{
		{
			name:   "zero filter",
			filter: SearchFilter{},
			want:   0,
		},
		{
			name:   "single criterion",
			filter: SearchFilter{TextQuery: "tesla"},
			want:   1,
		},
		{
			name: "sorting does not count",
			filter: SearchFilter{
				SortBy: SortByDate,
				Limit:  10,
			},
			want: 0,
		},
		{
			name: "all criteria",
			filter: SearchFilter{
				Dates:          &DateRange{},
				TextQuery:      "x",
				Sources:        []string{"Reuters"},
				SentimentLabel: SentimentPositive,
				Sentiment:      &SentimentRange{},
				Keywords:       []string{"tesla"},
				BookmarkedOnly: true,
			},
			want: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.ActiveCount(); got != tt.want {
				t.Errorf("ActiveCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSearchFilter_Apply_SortAndPaginate(t *testing.T) {
	articles := filterFixtures()

	f := SearchFilter{
		SortBy:  SortByDate,
		SortDir: SortDescending,
	}
	got := f.Apply(articles)

	if len(got) != 3 {
		t.Fatalf("Apply() returned %d articles, want 3", len(got))
	}
	if got[0].ID != "b" || got[1].ID != "a" || got[2].ID != "c" {
		t.Errorf("Apply() order = [%s %s %s], want [b a c]", got[0].ID, got[1].ID, got[2].ID)
	}

	f = SearchFilter{
		SortBy:  SortByDate,
		SortDir: SortAscending,
		Offset:  1,
		Limit:   1,
	}
	got = f.Apply(articles)

	if len(got) != 1 {
		t.Fatalf("Apply() returned %d articles, want 1", len(got))
	}
	if got[0].ID != "a" {
		t.Errorf("Apply() page = %s, want a", got[0].ID)
	}
}

func TestSearchFilter_Apply_PreservesInput(t *testing.T) {
	articles := filterFixtures()
	original := make([]ArticleID, len(articles))
	for i, a := range articles {
		original[i] = a.ID
	}

	f := SearchFilter{SortBy: SortByDate, SortDir: SortDescending}
	f.Apply(articles)

	for i, a := range articles {
		if a.ID != original[i] {
			t.Errorf("Apply() reordered the input slice at %d: %s, want %s", i, a.ID, original[i])
		}
	}
}

func TestSearchFilter_Sort_BySource(t *testing.T) {
	articles := filterFixtures()
	f := SearchFilter{SortBy: SortBySource, SortDir: SortAscending}
	f.Sort(articles)

	if articles[0].Source != "Bloomberg" {
		t.Errorf("Sort() first source = %s, want Bloomberg", articles[0].Source)
	}
}

func TestSearchFilter_Paginate(t *testing.T) {
	articles := filterFixtures()

	tests := []struct {
		name   string
		offset int
		limit  int
		want   int
	}{
		{name: "no pagination", offset: 0, limit: 0, want: 3},
		{name: "limit only", offset: 0, limit: 2, want: 2},
		{name: "offset past end", offset: 10, limit: 5, want: 0},
		{name: "limit past end", offset: 2, limit: 10, want: 1},
		{name: "negative offset treated as zero", offset: -5, limit: 2, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := SearchFilter{Offset: tt.offset, Limit: tt.limit}
			got := f.Paginate(articles)
			if len(got) != tt.want {
				t.Errorf("Paginate() returned %d articles, want %d", len(got), tt.want)
			}
		})
	}
}

func TestSearchFilter_Validate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		filter  SearchFilter
		wantErr bool
	}{
		{
			name:    "zero filter",
			filter:  SearchFilter{},
			wantErr: false,
		},
		{
			name: "ordered date range",
			filter: SearchFilter{
				Dates: &DateRange{Start: now.Add(-time.Hour), End: now},
			},
			wantErr: false,
		},
		{
			name: "inverted date range",
			filter: SearchFilter{
				Dates: &DateRange{Start: now, End: now.Add(-time.Hour)},
			},
			wantErr: true,
		},
		{
			name: "inverted sentiment range",
			filter: SearchFilter{
				Sentiment: &SentimentRange{Min: 0.5, Max: -0.5},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()

			if tt.wantErr && err != ErrInvalidFilter {
				t.Errorf("Validate() error = %v, want %v", err, ErrInvalidFilter)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}
