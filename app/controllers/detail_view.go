package controllers

import (
	"context"
	"fmt"
	"sync"

	"blogfront/app/render"
	"blogfront/app/services"

	"github.com/rs/zerolog/log"
)

// DetailState is the lifecycle state of the detail view.
type DetailState int

const (
	StateClosed DetailState = iota
	StateLoading
	StateShown
)

func (s DetailState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateShown:
		return "shown"
	default:
		return "closed"
	}
}

// DetailView presents one post's full content plus externally fetched
// comments in a modal. It moves Closed -> Loading -> Shown -> Closed;
// at most one modal is shown at a time, and comments are discarded on
// close, never cached.
type DetailView struct {
	store    *services.PostStore
	comments *services.CommentService
	renderer *render.Renderer
	view     View

	mu    sync.Mutex
	state DetailState
	gen   uint64
}

// NewDetailView creates a new DetailView
func NewDetailView(store *services.PostStore, comments *services.CommentService, renderer *render.Renderer, view View) *DetailView {
	return &DetailView{
		store:    store,
		comments: comments,
		renderer: renderer,
		view:     view,
	}
}

// State returns the current lifecycle state.
func (d *DetailView) State() DetailState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Open looks the post up, fetches its comments and shows the modal. An
// unknown id or a failed fetch leaves the view Closed and returns the
// error; no partial modal is ever shown. Opening while another modal is
// shown closes that one first.
func (d *DetailView) Open(ctx context.Context, postID int) error {
	post, err := d.store.GetByID(postID)
	if err != nil {
		log.Error().Err(err).Int("post_id", postID).Msg("detail lookup failed")
		return fmt.Errorf("post %d not found: %v", postID, err)
	}

	d.mu.Lock()
	if d.state == StateShown {
		d.closeLocked()
	}
	d.state = StateLoading
	d.gen++
	gen := d.gen
	d.mu.Unlock()

	comments, err := d.comments.FetchComments(ctx, postID)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.gen != gen {
		// Closed while the fetch was in flight; drop the stale result.
		return nil
	}
	if err != nil {
		log.Error().Err(err).Int("post_id", postID).Msg("comment fetch failed")
		d.state = StateClosed
		return fmt.Errorf("failed to load comments for post %d: %v", postID, err)
	}

	html, err := d.renderer.RenderModal(post, comments)
	if err != nil {
		d.state = StateClosed
		return fmt.Errorf("failed to render modal: %v", err)
	}

	d.view.SetContent(RegionModal, html)
	d.state = StateShown
	return nil
}

// Close removes the modal and discards the fetched comments. Closing
// during Loading invalidates the in-flight fetch.
func (d *DetailView) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closeLocked()
}

func (d *DetailView) closeLocked() {
	if d.state == StateClosed {
		return
	}
	d.gen++
	d.view.SetContent(RegionModal, "")
	d.state = StateClosed
}
