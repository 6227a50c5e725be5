package repositories

import (
	"postcard/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerCommentRepository implements CommentRepository using BadgerDB.
// Comments live under comment:<postID>:<seq>; commentidx:<id> points at
// that key so lookups by ID avoid a scan.
type BadgerCommentRepository struct {
	db *badger.DB
}

// NewBadgerCommentRepository creates a new BadgerCommentRepository
func NewBadgerCommentRepository(db *badger.DB) *BadgerCommentRepository {
	return &BadgerCommentRepository{db: db}
}

// Create creates a new comment
func (r *BadgerCommentRepository) Create(comment *models.Comment) error {
	return r.db.Update(func(txn *badger.Txn) error {
		idxKey := commentIndexKey(comment.ID)
		if _, err := txn.Get(idxKey); err == nil {
			return ErrAlreadyExists
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		seq, err := getNextID(txn, CommentSeqKey)
		if err != nil {
			return err
		}

		data, err := marshalEntity(comment)
		if err != nil {
			return err
		}

		key := commentKey(comment.PostID, seq)
		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set(idxKey, key)
	})
}

// GetByID retrieves a comment by ID
func (r *BadgerCommentRepository) GetByID(id string) (*models.Comment, error) {
	var comment models.Comment

	err := r.db.View(func(txn *badger.Txn) error {
		key, err := lookupCommentKey(txn, id)
		if err != nil {
			return err
		}
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &comment)
		})
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByPost retrieves all comments for a post in creation order
func (r *BadgerCommentRepository) ListByPost(postID string) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := commentPrefix(postID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var comment models.Comment
			if err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			}); err != nil {
				return err
			}
			comments = append(comments, &comment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Delete deletes a comment by ID
func (r *BadgerCommentRepository) Delete(id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key, err := lookupCommentKey(txn, id)
		if err != nil {
			return err
		}
		if err := txn.Delete(key); err != nil {
			return err
		}
		return txn.Delete(commentIndexKey(id))
	})
}

func lookupCommentKey(txn *badger.Txn, id string) ([]byte, error) {
	item, err := txn.Get(commentIndexKey(id))
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}
