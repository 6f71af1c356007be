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

import "errors"

// Search pipeline errors
var (
	// ErrCorpusUnavailable indicates the article corpus could not be reached.
	ErrCorpusUnavailable = errors.New("article corpus unavailable")

	// ErrInvalidConfiguration indicates ranking or engine configuration is invalid.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrEmptyQuery indicates a search was attempted with a blank query.
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrIndexBuild indicates the term index could not be constructed.
	ErrIndexBuild = errors.New("index build failed")
)

// Domain validation errors
var (
	// ErrInvalidArticle indicates an Article failed validation.
	ErrInvalidArticle = errors.New("invalid article")

	// ErrInvalidHistoryEntry indicates a HistoryEntry failed validation.
	ErrInvalidHistoryEntry = errors.New("invalid history entry")

	// ErrInvalidUserID indicates a user ID is empty or malformed.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrInvalidTimestamp indicates a timestamp is in the future.
	ErrInvalidTimestamp = errors.New("timestamp cannot be in the future")

	// ErrEmptyTitle indicates the article Title field is empty.
	ErrEmptyTitle = errors.New("article title cannot be empty")

	// ErrEmptySource indicates the article Source field is empty.
	ErrEmptySource = errors.New("article source cannot be empty")

	// ErrInvalidSentimentScore indicates a sentiment score outside [-1, 1].
	ErrInvalidSentimentScore = errors.New("sentiment score must be within [-1, 1]")

	// ErrInvalidFilter indicates a SearchFilter with inconsistent bounds.
	ErrInvalidFilter = errors.New("invalid search filter")
)
