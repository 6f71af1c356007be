// Copyright 2025 Tessella Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"strings"
	"time"
)

// ValidateArticle validates an Article according to domain rules.
//
// Validation rules:
//   - ID must not be empty
//   - Title must not be empty
//   - Source must not be empty
//   - SentimentScore must be within [-1, 1]
//   - PublishedAt must not be in the future
//
// NOT validated (populated by processors):
//   - Keywords (can be empty until keyword processor runs)
//   - SentimentLabel (derived from SentimentScore by the sentiment processor)
func ValidateArticle(article *Article) error {
	if article == nil {
		return fmt.Errorf("%w: article is nil", ErrInvalidArticle)
	}

	if article.ID == "" {
		return fmt.Errorf("%w: id is empty", ErrInvalidArticle)
	}

	if article.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidArticle, ErrEmptyTitle)
	}

	if article.Source == "" {
		return fmt.Errorf("%w: %w", ErrInvalidArticle, ErrEmptySource)
	}

	if article.SentimentScore < -1 || article.SentimentScore > 1 {
		return fmt.Errorf("%w: %w", ErrInvalidArticle, ErrInvalidSentimentScore)
	}

	if !IsValidTimestamp(article.PublishedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidArticle, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateHistoryEntry validates a HistoryEntry according to domain rules.
//
// Validation rules:
//   - UserID must be valid
//   - Query must not be empty, unless the filter snapshot has active criteria
//     (filter-only searches record an empty query)
//   - ResultCount must not be negative
//
// NOT validated (populated by the history store):
//   - ID (empty is valid, a UUID is assigned on record)
//   - Timestamp (zero is valid, the record time is assigned on record)
func ValidateHistoryEntry(entry *HistoryEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidHistoryEntry)
	}

	if err := ValidateUserID(entry.UserID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHistoryEntry, err)
	}

	if strings.TrimSpace(entry.Query) == "" && entry.Filter.ActiveCount() == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidHistoryEntry, ErrEmptyQuery)
	}

	if entry.ResultCount < 0 {
		return fmt.Errorf("%w: result count is negative", ErrInvalidHistoryEntry)
	}

	return nil
}

// ValidateUserID validates that a user ID is usable as a storage key segment.
// IDs participate in composite keys, so the separator character is rejected.
func ValidateUserID(userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: empty", ErrInvalidUserID)
	}
	if strings.ContainsRune(userID, ':') {
		return fmt.Errorf("%w: must not contain ':'", ErrInvalidUserID)
	}
	return nil
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
