package repositories

import (
	"fmt"
	"io"

	"github.com/dgraph-io/badger/v4"
)

// BadgerStore owns a badger database and the repositories built on it.
type BadgerStore struct {
	db       *badger.DB
	Posts    *BadgerPostRepository
	Comments *BadgerCommentRepository
}

// OpenBadgerStore opens the database at path. An empty path gives an
// in-memory database that is discarded on Close.
func OpenBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithNumVersionsToKeep(1)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", path, err)
	}
	return NewBadgerStore(db), nil
}

// NewBadgerStore wraps an already opened database.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{
		db:       db,
		Posts:    NewBadgerPostRepository(db),
		Comments: NewBadgerCommentRepository(db),
	}
}

// Clear drops every key.
func (s *BadgerStore) Clear() error {
	return s.db.DropAll()
}

// Backup writes a full dump of the database to w.
func (s *BadgerStore) Backup(w io.Writer) error {
	_, err := s.db.Backup(w, 0)
	return err
}

// Restore loads a dump written by Backup.
func (s *BadgerStore) Restore(r io.Reader) error {
	return s.db.Load(r, 16)
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
