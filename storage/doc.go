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


// Package storage provides the storage abstraction layer for newsdex.
//
// This package defines repository interfaces that decouple storage implementation
// from business logic. It allows for different storage backends (BadgerDB, in-memory,
// etc.) to be used interchangeably.
//
// # Construction Pattern
//
// Repositories share a single Backend that owns the underlying database
// handle. Open the backend once, then wrap it with the repositories you need:
//
//	backend, err := badger.OpenBackend(path, false)
//	articles := badger.NewArticleRepository(backend)
//
// Constructors return concrete types; consumers hold the interfaces declared
// in this package so that alternative backends (PostgreSQL, in-memory, etc.)
// and test doubles can be substituted without modification.
//
// # Architecture
//
// The storage layer follows the Repository pattern:
//
//   - Repository: Common transaction and lifecycle operations
//   - ArticleRepository: Operations for the per-user article corpus
//   - HistoryArchive: Durable log of search history entries
//   - CursorRepository: Enrichment progress markers
//
// # Usage
//
// Create an article repository backed by a database on disk:
//
//	backend, err := badger.OpenBackend("/path/to/db", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//	articles := badger.NewArticleRepository(backend)
//
// Use in tests with in-memory storage:
//
//	articles, archive, cursors, backend, err := badger.NewMemoryRepositories()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation
// and timeout support. Pass context.Background() for operations
// without specific timeout requirements.
package storage
