package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/tessella/newsdex/core"
)

// Key prefixes for different data types. User IDs never contain the ':'
// separator (enforced by core.ValidateUserID), so prefixes are unambiguous.
const (
	articlePrefix     = "artrec"
	articleDatePrefix = "artrecd"
	historyPrefix     = "hisrec"
	cursorPrefix      = "enrcur"
)

// makeArticleKey generates a key for an article by ID.
func makeArticleKey(userID string, id core.ArticleID) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", articlePrefix, userID, id))
}

// makeUserArticlePrefix generates the key prefix covering all of a user's articles.
func makeUserArticlePrefix(userID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", articlePrefix, userID))
}

// makeArticleDateKey generates a composite key for the publication date index.
// Format: prefix:userID:timestamp+id
func makeArticleDateKey(userID string, publishedAt time.Time, id core.ArticleID) []byte {
	prefix := fmt.Sprintf("%s:%s:", articleDatePrefix, userID)
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 + len(id) // 8 bytes for timestamp
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(publishedAt.UnixMicro()))
	offset += 8
	copy(buf[offset:], []byte(id))
	return buf
}

// makePartialArticleDateKey generates a partial key for date range queries.
// Format: prefix:userID:timestamp
func makePartialArticleDateKey(userID string, publishedAt time.Time) []byte {
	prefix := fmt.Sprintf("%s:%s:", articleDatePrefix, userID)
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for timestamp
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(publishedAt.UnixMicro()))
	return buf
}

// makeUserDatePrefix generates the key prefix covering a user's date index.
func makeUserDatePrefix(userID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", articleDatePrefix, userID))
}

// makeHistoryKey generates a composite key for a history entry.
// Format: prefix:userID:timestamp+entryID
func makeHistoryKey(userID string, timestamp time.Time, entryID string) []byte {
	prefix := fmt.Sprintf("%s:%s:", historyPrefix, userID)
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 + len(entryID) // 8 bytes for timestamp
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	copy(buf[offset:], []byte(entryID))
	return buf
}

// makeUserHistoryPrefix generates the key prefix covering a user's history.
func makeUserHistoryPrefix(userID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", historyPrefix, userID))
}

// historyKeyTimestamp reads the timestamp back out of a history key.
func historyKeyTimestamp(userID string, key []byte) (time.Time, bool) {
	prefixSize := len(makeUserHistoryPrefix(userID))
	if len(key) < prefixSize+8 {
		return time.Time{}, false
	}
	micros := int64(binary.BigEndian.Uint64(key[prefixSize : prefixSize+8]))
	return time.UnixMicro(micros).UTC(), true
}

// makeCursorKey generates a key for a user's enrichment cursor.
func makeCursorKey(userID string) []byte {
	return []byte(fmt.Sprintf("%s:%s", cursorPrefix, userID))
}
