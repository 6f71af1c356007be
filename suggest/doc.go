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


// Package suggest implements prefix completion over search terms using a
// frequency-counting trie.
//
// Words are inserted in lowercase form, one node per rune. Completion walks
// to the prefix node in O(|prefix|) and then collects terminal descendants
// depth-first in lexicographic order, stopping early once enough candidates
// are gathered, before ranking them by frequency.
//
// Inserts only ever add nodes or increment counters; there is no deletion.
// The trie is safe for concurrent use.
package suggest
