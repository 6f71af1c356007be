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


// Package search orchestrates relevance-ranked search over a news article
// corpus.
//
// The Engine type implements a sequential search pipeline:
//   - Fetch the user's recent articles from the repository
//   - Rebuild the TF-IDF index against that corpus snapshot
//   - Score every document, keeping those above a relevance threshold
//   - Rank survivors across semantic, recency, authority, engagement, and
//     sentiment alignment signals
//
// The Ranker combines the per-article signals under configurable weights.
// The Engine also serves multi-criteria filter searches, concurrent
// autocomplete suggestions, and the search history surface.
package search
