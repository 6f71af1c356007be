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


// Package history keeps an in-memory log of completed searches with
// capacity and age based retention.
//
// Recorded queries feed their terms back into an optional TermSink so
// autocomplete learns from past searches, and entries are teed to an
// optional durable Archive. Archive failures are logged and never fail the
// recording itself; the in-memory log is the source of truth for queries
// and analytics within a session.
package history
