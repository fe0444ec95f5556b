package repositories

import (
	"blogfront/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerCommentRepository implements CommentRepository using BadgerDB.
// It backs the fixture server's comment endpoint.
type BadgerCommentRepository struct {
	db *badger.DB
}

// NewBadgerCommentRepository creates a new BadgerCommentRepository
func NewBadgerCommentRepository(db *badger.DB) *BadgerCommentRepository {
	return &BadgerCommentRepository{db: db}
}

// ReplaceAll replaces the stored comments with the given ones.
func (r *BadgerCommentRepository) ReplaceAll(comments []*models.Comment) error {
	if err := dropPrefix(r.db, CommentKeyPrefix, CommentSeqKey); err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		for _, comment := range comments {
			seq, err := getNextID(txn, CommentSeqKey)
			if err != nil {
				return err
			}

			data, err := marshalEntity(comment)
			if err != nil {
				return err
			}

			if err := txn.Set(seqKey(CommentKeyPrefix, seq), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// ListByPost retrieves all comments for a post in insertion order. A
// post without comments yields an empty, non-nil slice.
func (r *BadgerCommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	comments := []*models.Comment{}
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(CommentKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var comment models.Comment
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return err
			}
			if comment.PostID == postID {
				comments = append(comments, &comment)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}
