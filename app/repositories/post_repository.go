package repositories

import (
	"blogfront/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// ReplaceAll replaces the stored collection with the given posts. Posts
// are keyed by an insertion sequence, not by their id, so iteration
// returns them in source order and duplicate ids survive.
func (r *BadgerPostRepository) ReplaceAll(posts []*models.Post) error {
	if err := dropPrefix(r.db, PostKeyPrefix, PostSeqKey); err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		for _, post := range posts {
			seq, err := getNextID(txn, PostSeqKey)
			if err != nil {
				return err
			}

			data, err := marshalEntity(post)
			if err != nil {
				return err
			}

			if err := txn.Set(seqKey(PostKeyPrefix, seq), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a post by ID. Ids are assumed unique but not
// enforced; with duplicates the first post in source order wins.
func (r *BadgerPostRepository) GetByID(id int) (*models.Post, error) {
	var found *models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var post models.Post
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			if post.ID == id {
				found = &post
				return nil
			}
		}
		return ErrNotFound
	})

	if err != nil {
		return nil, err
	}
	return found, nil
}

// List retrieves all posts in source order.
func (r *BadgerPostRepository) List() ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var post models.Post
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}
