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


package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/tessella/newsdex/core"
	"github.com/tessella/newsdex/storage"
)

// CursorRepository implements storage.CursorRepository for BadgerDB.
type CursorRepository struct {
	backend *Backend
}

var _ storage.CursorRepository = (*CursorRepository)(nil)

// NewCursorRepository creates a new CursorRepository.
func NewCursorRepository(backend *Backend) *CursorRepository {
	return &CursorRepository{
		backend: backend,
	}
}

// Close is a no-op; the repository holds no resources of its own.
func (r *CursorRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *CursorRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// SaveCursor persists a user's enrichment cursor, replacing any previous one.
func (r *CursorRepository) SaveCursor(ctx context.Context, cursor *core.EnrichCursor) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		cursor.UpdatedAt = time.Now().UTC()
		key := makeCursorKey(cursor.UserID)
		value := storage.MarshalEnrichCursor(cursor)
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// LoadCursor retrieves the user's cursor.
// Returns nil, nil if no cursor exists.
func (r *CursorRepository) LoadCursor(ctx context.Context, userID string) (*core.EnrichCursor, error) {
	var cursor *core.EnrichCursor
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeCursorKey(userID)
		item, err := tx.Get(key)
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}

		return item.Value(func(val []byte) error {
			var unmarshalErr error
			cursor, unmarshalErr = storage.UnmarshalEnrichCursor(val)
			return unmarshalErr
		})
	}, false)

	return cursor, err
}

// ClearCursor removes the user's cursor if present.
func (r *CursorRepository) ClearCursor(ctx context.Context, userID string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeCursorKey(userID)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
