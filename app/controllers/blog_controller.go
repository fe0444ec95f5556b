package controllers

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"blogfront/app/models"
	"blogfront/app/render"
	"blogfront/app/services"

	"github.com/rs/zerolog/log"
)

// BlogController wires the filter controls and the read-more triggers
// to the post pipeline. It owns the view state; every control event
// mutates it and re-renders the listing by full replacement.
type BlogController struct {
	store    *services.PostStore
	engine   *services.FilterSortEngine
	renderer *render.Renderer
	detail   *DetailView
	view     View

	mu    sync.Mutex
	state models.ViewState
}

// NewBlogController creates a new BlogController
func NewBlogController(store *services.PostStore, engine *services.FilterSortEngine, renderer *render.Renderer, detail *DetailView, view View) *BlogController {
	return &BlogController{
		store:    store,
		engine:   engine,
		renderer: renderer,
		detail:   detail,
		view:     view,
		state:    models.DefaultViewState(),
	}
}

// Init runs the fixed startup sequence: load posts, derive categories,
// populate the controls, bind events, render the initial unfiltered
// newest-first view.
func (c *BlogController) Init(ctx context.Context) error {
	if err := c.store.Load(ctx); err != nil {
		return err
	}

	options, err := c.renderer.RenderCategoryOptions(c.store.Categories())
	if err != nil {
		return fmt.Errorf("failed to render category options: %v", err)
	}
	c.view.SetContent(RegionCategoryOptions, options)

	c.bindEvents(ctx)

	return c.renderPosts()
}

// ViewState returns a copy of the current selection.
func (c *BlogController) ViewState() models.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *BlogController) bindEvents(ctx context.Context) {
	c.view.OnEvent(SelectorCategory, EventChange, func(Event) {
		c.mu.Lock()
		c.state.ActiveCategory = c.view.ControlValue(SelectorCategory)
		c.mu.Unlock()
		c.rerender()
	})

	c.view.OnEvent(SelectorSearch, EventInput, func(Event) {
		c.mu.Lock()
		c.state.SearchTerm = c.view.ControlValue(SelectorSearch)
		c.mu.Unlock()
		c.rerender()
	})

	c.view.OnEvent(SelectorSort, EventChange, func(Event) {
		c.mu.Lock()
		c.state.SortOrder = c.view.ControlValue(SelectorSort)
		c.mu.Unlock()
		c.rerender()
	})

	// Delegated: the post container is re-rendered wholesale, so the
	// trigger elements themselves come and go.
	c.view.OnEvent(SelectorReadMore, EventClick, func(ev Event) {
		postID, err := strconv.Atoi(ev.Target)
		if err != nil {
			log.Error().Str("target", ev.Target).Msg("read-more trigger without a usable post id")
			return
		}
		if err := c.detail.Open(ctx, postID); err != nil {
			c.showError("The post could not be opened. Please try again later.")
		}
	})

	c.view.OnEvent(SelectorModalClose, EventClick, func(Event) {
		c.detail.Close()
	})

	c.view.OnEvent(SelectorBackdrop, EventClick, func(Event) {
		c.detail.Close()
	})
}

// rerender recomputes and replaces the listing, logging instead of
// propagating: a failed re-render keeps the previous content in place.
func (c *BlogController) rerender() {
	if err := c.renderPosts(); err != nil {
		log.Error().Err(err).Msg("failed to re-render post list")
	}
}

func (c *BlogController) renderPosts() error {
	posts, err := c.store.Posts()
	if err != nil {
		return fmt.Errorf("failed to read posts: %v", err)
	}

	c.mu.Lock()
	state := c.state
	c.mu.Unlock()

	visible := c.engine.Apply(posts, state)
	html, err := c.renderer.RenderList(visible)
	if err != nil {
		return fmt.Errorf("failed to render post list: %v", err)
	}

	c.view.SetContent(RegionPosts, html)
	return nil
}

func (c *BlogController) showError(message string) {
	html, err := c.renderer.RenderError(message)
	if err != nil {
		log.Error().Err(err).Msg("failed to render error banner")
		return
	}
	c.view.SetContent(RegionError, html)
}
