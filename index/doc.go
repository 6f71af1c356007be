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


// Package index provides TF-IDF term indexing over article corpora.
//
// The Index type builds an immutable Snapshot from a set of articles and
// swaps it in atomically, so concurrent searches always score against a
// consistent view of the corpus. Term weights follow the classical scheme:
//   - Term Frequency (TF): occurrences of a term relative to document length
//   - Inverse Document Frequency (IDF): log of corpus size over the number
//     of documents containing the term
//
// Query scores are normalized by query length so longer queries do not
// inflate relevance.
package index
