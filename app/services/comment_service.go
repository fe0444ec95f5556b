package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"blogfront/app/models"
)

// CommentService fetches comments for one post from the external
// comment endpoint. Results are never cached; every open of the detail
// view issues a fresh request.
type CommentService struct {
	baseURL string
	client  *http.Client
}

// NewCommentService creates a new CommentService
func NewCommentService(cfg Config) *CommentService {
	return &CommentService{
		baseURL: cfg.CommentServiceURL,
		client:  &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

// FetchComments retrieves the comments for the given post id.
func (cs *CommentService) FetchComments(ctx context.Context, postID int) ([]*models.Comment, error) {
	url := fmt.Sprintf("%s/comments?postId=%d", cs.baseURL, postID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %v", err)
	}

	resp, err := cs.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("comment service returned status %d", resp.StatusCode)
	}

	var comments []*models.Comment
	if err := json.NewDecoder(resp.Body).Decode(&comments); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %v", err)
	}

	return comments, nil
}
