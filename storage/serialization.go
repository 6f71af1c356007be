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


package storage

import (
	"github.com/tessella/newsdex/core"
)

// MarshalArticleID serializes an ArticleID to bytes.
func MarshalArticleID(id core.ArticleID) []byte {
	buf := make([]byte, core.ArticleIDMUS.Size(id))
	core.ArticleIDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalArticleID deserializes an ArticleID from bytes.
func UnmarshalArticleID(data []byte) (core.ArticleID, error) {
	var id core.ArticleID
	id, _, err := core.ArticleIDMUS.Unmarshal(data)
	return id, err
}

// MarshalArticle serializes an Article to bytes.
func MarshalArticle(article *core.Article) []byte {
	buf := make([]byte, core.ArticleMUS.Size(*article))
	core.ArticleMUS.Marshal(*article, buf)
	return buf
}

// UnmarshalArticle deserializes an Article from bytes.
func UnmarshalArticle(data []byte) (*core.Article, error) {
	article, _, err := core.ArticleMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// MarshalHistoryEntry serializes a HistoryEntry to bytes.
func MarshalHistoryEntry(entry *core.HistoryEntry) []byte {
	buf := make([]byte, core.HistoryEntryMUS.Size(*entry))
	core.HistoryEntryMUS.Marshal(*entry, buf)
	return buf
}

// UnmarshalHistoryEntry deserializes a HistoryEntry from bytes.
func UnmarshalHistoryEntry(data []byte) (*core.HistoryEntry, error) {
	entry, _, err := core.HistoryEntryMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// MarshalEnrichCursor serializes an EnrichCursor to bytes.
func MarshalEnrichCursor(cursor *core.EnrichCursor) []byte {
	buf := make([]byte, core.EnrichCursorMUS.Size(*cursor))
	core.EnrichCursorMUS.Marshal(*cursor, buf)
	return buf
}

// UnmarshalEnrichCursor deserializes an EnrichCursor from bytes.
func UnmarshalEnrichCursor(data []byte) (*core.EnrichCursor, error) {
	cursor, _, err := core.EnrichCursorMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &cursor, nil
}
