package repositories

import "blogfront/app/models"

// PostRepository defines the interface for post data access. The
// collection is replaced wholesale on every (re)load; posts keep their
// source order.
type PostRepository interface {
	ReplaceAll(posts []*models.Post) error
	GetByID(id int) (*models.Post, error)
	List() ([]*models.Post, error)
}

// CommentRepository defines the interface for comment data access. Only
// the fixture server stores comments; the engine itself fetches them per
// request and never caches.
type CommentRepository interface {
	ReplaceAll(comments []*models.Comment) error
	ListByPost(postID int) ([]*models.Comment, error)
}
