package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/tessella/newsdex/core"
	"github.com/tessella/newsdex/storage"
)

// HistoryRepository implements storage.HistoryArchive for BadgerDB.
// Entries are stored under composite user+timestamp keys, so a reverse scan
// yields them newest first without a secondary index.
type HistoryRepository struct {
	backend *Backend
}

var _ storage.HistoryArchive = (*HistoryRepository)(nil)

// NewHistoryRepository creates a new HistoryRepository.
func NewHistoryRepository(backend *Backend) *HistoryRepository {
	return &HistoryRepository{
		backend: backend,
	}
}

// Close is a no-op; the repository holds no resources of its own.
func (r *HistoryRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *HistoryRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// SaveHistoryEntry persists one history entry, assigning an ID and
// timestamp when absent.
func (r *HistoryRepository) SaveHistoryEntry(ctx context.Context, entry *core.HistoryEntry) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if entry.ID == "" {
			entry.ID = uuid.NewString()
		}
		if entry.Timestamp.IsZero() {
			entry.Timestamp = time.Now().UTC()
		}

		key := makeHistoryKey(entry.UserID, entry.Timestamp, entry.ID)
		if err := tx.Set(key, storage.MarshalHistoryEntry(entry)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetHistoryEntries retrieves a user's entries, newest first.
// A non-positive limit returns all.
func (r *HistoryRepository) GetHistoryEntries(ctx context.Context, userID string, limit int) ([]*core.HistoryEntry, error) {
	var results []*core.HistoryEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		startKey := makeHistoryKey(userID, time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC), "")
		prefix := makeUserHistoryPrefix(userID)

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			if limit > 0 && len(results) >= limit {
				break
			}
			key := iter.Item().Key()
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var entry *core.HistoryEntry
			err := iter.Item().Value(func(val []byte) error {
				var unmarshalErr error
				entry, unmarshalErr = storage.UnmarshalHistoryEntry(val)
				return unmarshalErr
			})
			if err != nil {
				return err
			}
			if entry != nil {
				results = append(results, entry)
			}
		}
		return nil
	}, false)

	return results, err
}

// DeleteHistoryEntries removes a user's entries, or with olderThan set only
// those recorded before it. Returns the number removed.
func (r *HistoryRepository) DeleteHistoryEntries(ctx context.Context, userID string, olderThan *time.Time) (int, error) {
	var doomed [][]byte

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeUserHistoryPrefix(userID)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)

		for iter.Rewind(); iter.Valid(); iter.Next() {
			key := iter.Item().KeyCopy(nil)

			if olderThan != nil {
				// The timestamp is embedded in the key, no value read needed.
				ts, ok := historyKeyTimestamp(userID, key)
				if !ok || !ts.Before(*olderThan) {
					continue
				}
			}
			doomed = append(doomed, key)
		}
		iter.Close()

		for _, key := range doomed {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return 0, err
	}
	return len(doomed), nil
}
