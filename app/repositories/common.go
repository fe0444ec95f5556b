package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const (
	// Key prefixes for different entity types
	PostKeyPrefix    = "post:"
	CommentKeyPrefix = "comment:"

	// Sequence keys for insertion-ordered storage
	PostSeqKey    = "seq:post"
	CommentSeqKey = "seq:comment"
)

var (
	ErrNotFound = errors.New("record not found")
)

// OpenInMemory opens a badger instance that keeps everything in memory.
// Nothing is ever written to disk; the store lives and dies with the
// process.
func OpenInMemory() (*badger.DB, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil)
	return badger.Open(opts)
}

// getNextID gets the next available sequence number for a given sequence key
func getNextID(txn *badger.Txn, seqKey string) (int, error) {
	var id int
	item, err := txn.Get([]byte(seqKey))
	if err == badger.ErrKeyNotFound {
		id = 1
	} else if err != nil {
		return 0, err
	} else {
		err = item.Value(func(val []byte) error {
			id = int(val[0])<<24 | int(val[1])<<16 | int(val[2])<<8 | int(val[3])
			return nil
		})
		if err != nil {
			return 0, err
		}
		id++
	}

	// Store new ID
	idBytes := []byte{byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id)}
	if err := txn.Set([]byte(seqKey), idBytes); err != nil {
		return 0, err
	}

	return id, nil
}

// seqKey builds an entity key whose badger iteration order equals
// insertion order.
func seqKey(prefix string, seq int) []byte {
	return []byte(fmt.Sprintf("%s%08d", prefix, seq))
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}

// dropPrefix removes every key with the given prefix, including the
// matching sequence key, so a replace starts from a clean slate.
func dropPrefix(db *badger.DB, prefix, seq string) error {
	return db.DropPrefix([]byte(prefix), []byte(seq))
}
