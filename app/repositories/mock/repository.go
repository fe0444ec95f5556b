package mock

import (
	"sync"

	"blogfront/app/models"
	"blogfront/app/repositories"
)

// PostRepository is an in-memory, order-preserving stand-in for the
// badger-backed repository.
type PostRepository struct {
	posts []*models.Post
	mutex sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{}
}

func (m *PostRepository) ReplaceAll(posts []*models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.posts = make([]*models.Post, len(posts))
	copy(m.posts, posts)
	return nil
}

func (m *PostRepository) GetByID(id int) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	// First match wins, same as the badger implementation.
	for _, post := range m.posts {
		if post.ID == id {
			return post, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *PostRepository) List() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := make([]*models.Post, len(m.posts))
	copy(posts, m.posts)
	return posts, nil
}

// CommentRepository is the in-memory counterpart for comments.
type CommentRepository struct {
	comments []*models.Comment
	mutex    sync.RWMutex
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

func (m *CommentRepository) ReplaceAll(comments []*models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.comments = make([]*models.Comment, len(comments))
	copy(m.comments, comments)
	return nil
}

func (m *CommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comments := []*models.Comment{}
	for _, comment := range m.comments {
		if comment.PostID == postID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}
