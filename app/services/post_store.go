package services

import (
	"context"
	"fmt"
	"sync"

	"blogfront/app/models"
	"blogfront/app/repositories"

	"github.com/rs/zerolog/log"
)

// PostStore holds the loaded post collection and its derived category
// set. The collection is owned exclusively by the store and replaced
// wholesale on every load.
type PostStore struct {
	repo   repositories.PostRepository
	source *DataSource

	mu         sync.RWMutex
	categories []string
}

// NewPostStore creates a new PostStore
func NewPostStore(repo repositories.PostRepository, source *DataSource) *PostStore {
	return &PostStore{
		repo:   repo,
		source: source,
	}
}

// Load fetches the collection from the data source and recomputes the
// category set. A fetch failure is not an error: the collection is
// replaced with a single fallback post describing the failure, so the
// listing always has something to show.
func (s *PostStore) Load(ctx context.Context) error {
	posts, err := s.source.Fetch(ctx)
	if err != nil {
		log.Error().Err(err).Msg("post load failed, substituting fallback post")
		posts = []*models.Post{models.FallbackPost()}
	}

	if err := s.repo.ReplaceAll(posts); err != nil {
		return fmt.Errorf("failed to store posts: %v", err)
	}

	s.mu.Lock()
	s.categories = distinctCategories(posts)
	s.mu.Unlock()

	log.Info().Int("posts", len(posts)).Msg("post collection loaded")
	return nil
}

// Posts returns the collection in source order.
func (s *PostStore) Posts() ([]*models.Post, error) {
	return s.repo.List()
}

// GetByID returns the first post with the given id in source order, or
// repositories.ErrNotFound.
func (s *PostStore) GetByID(id int) (*models.Post, error) {
	return s.repo.GetByID(id)
}

// Categories returns the distinct category values in first-appearance
// order. The slice is a copy; callers may keep it.
func (s *PostStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]string, len(s.categories))
	copy(categories, s.categories)
	return categories
}

// distinctCategories collects distinct category values, keeping the
// order in which they first appear.
func distinctCategories(posts []*models.Post) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, post := range posts {
		if !seen[post.Category] {
			seen[post.Category] = true
			categories = append(categories, post.Category)
		}
	}
	return categories
}
