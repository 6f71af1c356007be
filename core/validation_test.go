package core

import (
	"errors"
	"testing"
	"time"
)

func TestValidateArticle(t *testing.T) {
	validTime := time.Now().Add(-1 * time.Hour)
	futureTime := time.Now().Add(1 * time.Hour)

	tests := []struct {
		name    string
		article *Article
		wantErr error
	}{
		{
			name: "valid article",
			article: &Article{
				ID:          "a1",
				Title:       "Battery plant opens",
				Source:      "Reuters",
				PublishedAt: validTime,
			},
			wantErr: nil,
		},
		{
			name: "valid article with empty keywords",
			article: &Article{
				ID:          "a1",
				Title:       "Battery plant opens",
				Source:      "Reuters",
				PublishedAt: validTime,
				Keywords:    nil,
			},
			wantErr: nil,
		},
		{
			name: "valid article at sentiment bounds",
			article: &Article{
				ID:             "a1",
				Title:          "Battery plant opens",
				Source:         "Reuters",
				PublishedAt:    validTime,
				SentimentScore: -1,
			},
			wantErr: nil,
		},
		{
			name:    "nil article",
			article: nil,
			wantErr: ErrInvalidArticle,
		},
		{
			name: "empty id",
			article: &Article{
				Title:       "Battery plant opens",
				Source:      "Reuters",
				PublishedAt: validTime,
			},
			wantErr: ErrInvalidArticle,
		},
		{
			name: "empty title",
			article: &Article{
				ID:          "a1",
				Source:      "Reuters",
				PublishedAt: validTime,
			},
			wantErr: ErrEmptyTitle,
		},
		{
			name: "empty source",
			article: &Article{
				ID:          "a1",
				Title:       "Battery plant opens",
				PublishedAt: validTime,
			},
			wantErr: ErrEmptySource,
		},
		{
			name: "sentiment score above 1",
			article: &Article{
				ID:             "a1",
				Title:          "Battery plant opens",
				Source:         "Reuters",
				PublishedAt:    validTime,
				SentimentScore: 1.5,
			},
			wantErr: ErrInvalidSentimentScore,
		},
		{
			name: "sentiment score below -1",
			article: &Article{
				ID:             "a1",
				Title:          "Battery plant opens",
				Source:         "Reuters",
				PublishedAt:    validTime,
				SentimentScore: -1.01,
			},
			wantErr: ErrInvalidSentimentScore,
		},
		{
			name: "future publish time",
			article: &Article{
				ID:          "a1",
				Title:       "Battery plant opens",
				Source:      "Reuters",
				PublishedAt: futureTime,
			},
			wantErr: ErrInvalidTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArticle(tt.article)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateArticle() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Errorf("ValidateArticle() error = nil, want %v", tt.wantErr)
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateArticle() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateHistoryEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   *HistoryEntry
		wantErr error
	}{
		{
			name: "valid entry",
			entry: &HistoryEntry{
				UserID:      "user-1",
				Query:       "electric cars",
				ResultCount: 3,
			},
			wantErr: nil,
		},
		{
			name: "valid entry with empty ID",
			entry: &HistoryEntry{
				UserID: "user-1",
				Query:  "electric cars",
			},
			wantErr: nil,
		},
		{
			name: "valid entry with zero timestamp",
			entry: &HistoryEntry{
				UserID:    "user-1",
				Query:     "electric cars",
				Timestamp: time.Time{},
			},
			wantErr: nil,
		},
		{
			name: "valid filter-only entry with empty query",
			entry: &HistoryEntry{
				UserID: "user-1",
				Filter: SearchFilter{Sources: []string{"Reuters"}},
			},
			wantErr: nil,
		},
		{
			name:    "nil entry",
			entry:   nil,
			wantErr: ErrInvalidHistoryEntry,
		},
		{
			name: "empty user",
			entry: &HistoryEntry{
				Query: "electric cars",
			},
			wantErr: ErrInvalidUserID,
		},
		{
			name: "user with separator",
			entry: &HistoryEntry{
				UserID: "user:1",
				Query:  "electric cars",
			},
			wantErr: ErrInvalidUserID,
		},
		{
			name: "empty query",
			entry: &HistoryEntry{
				UserID: "user-1",
				Query:  "",
			},
			wantErr: ErrEmptyQuery,
		},
		{
			name: "whitespace query",
			entry: &HistoryEntry{
				UserID: "user-1",
				Query:  "   \t ",
			},
			wantErr: ErrEmptyQuery,
		},
		{
			name: "negative result count",
			entry: &HistoryEntry{
				UserID:      "user-1",
				Query:       "electric cars",
				ResultCount: -1,
			},
			wantErr: ErrInvalidHistoryEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHistoryEntry(tt.entry)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateHistoryEntry() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Errorf("ValidateHistoryEntry() error = nil, want %v", tt.wantErr)
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateHistoryEntry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateUserID(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		wantErr bool
	}{
		{
			name:    "simple id",
			userID:  "alice",
			wantErr: false,
		},
		{
			name:    "id with dash and digits",
			userID:  "user-42",
			wantErr: false,
		},
		{
			name:    "empty id",
			userID:  "",
			wantErr: true,
		},
		{
			name:    "id containing separator",
			userID:  "a:b",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUserID(tt.userID)

			if tt.wantErr && err == nil {
				t.Error("ValidateUserID() error = nil, want error")
			}

			if !tt.wantErr && err != nil {
				t.Errorf("ValidateUserID() error = %v, want nil", err)
			}

			if err != nil && !errors.Is(err, ErrInvalidUserID) {
				t.Errorf("ValidateUserID() error = %v, want %v", err, ErrInvalidUserID)
			}
		})
	}
}

func TestIsValidTimestamp(t *testing.T) {
	tests := []struct {
		name string
		ts   time.Time
		want bool
	}{
		{
			name: "past timestamp",
			ts:   time.Now().Add(-1 * time.Hour),
			want: true,
		},
		{
			name: "current time (approximately)",
			ts:   time.Now(),
			want: true,
		},
		{
			name: "future timestamp",
			ts:   time.Now().Add(1 * time.Hour),
			want: false,
		},
		{
			name: "zero time",
			ts:   time.Time{},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsValidTimestamp(tt.ts)
			if got != tt.want {
				t.Errorf("IsValidTimestamp() = %v, want %v", got, tt.want)
			}
		})
	}
}
