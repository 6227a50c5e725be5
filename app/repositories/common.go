package repositories

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dgraph-io/badger/v4"
)

// Key prefixes for the badger keyspace
const (
	PostKeyPrefix         = "post:"
	CommentKeyPrefix      = "comment:"
	CommentIndexKeyPrefix = "commentidx:"
	CommentSeqKey         = "seq:comment"
)

// getNextID gets the next available ID for a given sequence key
func getNextID(txn *badger.Txn, seqKey string) (uint64, error) {
	var id uint64
	item, err := txn.Get([]byte(seqKey))
	if err == badger.ErrKeyNotFound {
		id = 1
	} else if err != nil {
		return 0, fmt.Errorf("failed to get sequence: %w", err)
	} else {
		err = item.Value(func(val []byte) error {
			id, err = strconv.ParseUint(string(val), 10, 64)
			if err != nil {
				return fmt.Errorf("failed to parse sequence: %w", err)
			}
			id++
			return nil
		})
		if err != nil {
			return 0, err
		}
	}

	if err := txn.Set([]byte(seqKey), []byte(strconv.FormatUint(id, 10))); err != nil {
		return 0, fmt.Errorf("failed to update sequence: %w", err)
	}

	return id, nil
}

func postKey(id string) []byte {
	return []byte(PostKeyPrefix + id)
}

// commentPrefix scopes a post's comments. The trailing separator keeps
// post "1" from matching post "10".
func commentPrefix(postID string) []byte {
	return []byte(CommentKeyPrefix + postID + ":")
}

// commentKey zero-pads the sequence so badger's byte order is creation order.
func commentKey(postID string, seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%s:%020d", CommentKeyPrefix, postID, seq))
}

func commentIndexKey(id string) []byte {
	return []byte(CommentIndexKeyPrefix + id)
}

// marshalEntity marshals an entity to JSON
func marshalEntity(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return nil
}
