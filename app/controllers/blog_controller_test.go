package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blogfront/app/models"
	"blogfront/app/render"
	"blogfront/app/repositories/mock"
	"blogfront/app/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const controllerDocument = `{
	"posts": [
		{"id": 1, "title": "Portfolio redesign", "body": "Dropping the carousel", "date": "2025-06-02T09:00:00Z", "author": "Yui", "category": "design"},
		{"id": 2, "title": "Learning Go", "body": "Notes on interfaces", "date": "2025-06-10T18:30:00Z", "author": "Yui", "category": "programming"},
		{"id": 3, "title": "Desk setup", "body": "Monitor arm and keyboard", "date": "2025-07-01T12:00:00Z", "author": "Yui", "category": "life"}
	]
}`

// setupController wires a full pipeline against one httptest server
// that stands in for both external endpoints.
func setupController(t *testing.T, postsHandler http.HandlerFunc) (*BlogController, *fakeView) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/posts":
			postsHandler(w, r)
		case "/comments":
			if r.URL.Query().Get("postId") == "2" {
				w.Write([]byte(`[{"postId":2,"name":"Daniel","body":"Wait until goroutines","email":"daniel@example.org"}]`))
				return
			}
			w.Write([]byte(`[]`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	cfg := services.DefaultConfig()
	cfg.DataSourceURL = server.URL + "/posts"
	cfg.CommentServiceURL = server.URL

	store := services.NewPostStore(mock.NewPostRepository(), services.NewDataSource(cfg))
	renderer := render.NewRenderer()
	view := newFakeView()
	detail := NewDetailView(store, services.NewCommentService(cfg), renderer, view)
	controller := NewBlogController(store, services.NewFilterSortEngine(), renderer, detail, view)

	return controller, view
}

func serveControllerDocument(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(controllerDocument))
}

func TestBlogControllerInit(t *testing.T) {
	t.Run("initial render is unfiltered newest first", func(t *testing.T) {
		controller, view := setupController(t, serveControllerDocument)
		require.NoError(t, controller.Init(context.Background()))

		listing := view.region(RegionPosts)
		assert.Contains(t, listing, "Portfolio redesign")
		assert.Contains(t, listing, "Learning Go")
		assert.Contains(t, listing, "Desk setup")
		assert.Less(t, strings.Index(listing, "Desk setup"), strings.Index(listing, "Learning Go"))
		assert.Less(t, strings.Index(listing, "Learning Go"), strings.Index(listing, "Portfolio redesign"))

		assert.Equal(t, models.DefaultViewState(), controller.ViewState())
	})

	t.Run("category control is populated", func(t *testing.T) {
		controller, view := setupController(t, serveControllerDocument)
		require.NoError(t, controller.Init(context.Background()))

		options := view.region(RegionCategoryOptions)
		assert.Contains(t, options, `value="all"`)
		assert.Contains(t, options, `value="design"`)
		assert.Contains(t, options, `value="programming"`)
		assert.Contains(t, options, `value="life"`)
	})

	t.Run("load failure renders the fallback post", func(t *testing.T) {
		controller, view := setupController(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})
		require.NoError(t, controller.Init(context.Background()))

		listing := view.region(RegionPosts)
		assert.Contains(t, listing, models.FallbackTitle)
		assert.Contains(t, view.region(RegionCategoryOptions), models.FallbackCategory)
	})
}

func TestBlogControllerEvents(t *testing.T) {
	t.Run("category change filters the listing", func(t *testing.T) {
		controller, view := setupController(t, serveControllerDocument)
		require.NoError(t, controller.Init(context.Background()))

		view.setValue(SelectorCategory, "programming")
		view.fire(t, SelectorCategory, EventChange, Event{Kind: EventChange})

		listing := view.region(RegionPosts)
		assert.Contains(t, listing, "Learning Go")
		assert.NotContains(t, listing, "Portfolio redesign")
		assert.NotContains(t, listing, "Desk setup")
		assert.Equal(t, "programming", controller.ViewState().ActiveCategory)
	})

	t.Run("search input filters the listing", func(t *testing.T) {
		controller, view := setupController(t, serveControllerDocument)
		require.NoError(t, controller.Init(context.Background()))

		view.setValue(SelectorSearch, "CAROUSEL")
		view.fire(t, SelectorSearch, EventInput, Event{Kind: EventInput})

		listing := view.region(RegionPosts)
		assert.Contains(t, listing, "Portfolio redesign")
		assert.NotContains(t, listing, "Learning Go")
	})

	t.Run("search with no matches renders no-results", func(t *testing.T) {
		controller, view := setupController(t, serveControllerDocument)
		require.NoError(t, controller.Init(context.Background()))

		view.setValue(SelectorSearch, "zzz nothing matches")
		view.fire(t, SelectorSearch, EventInput, Event{Kind: EventInput})

		listing := view.region(RegionPosts)
		assert.Contains(t, listing, "No posts found")
		assert.NotContains(t, listing, "post-card")
	})

	t.Run("sort change reorders the listing", func(t *testing.T) {
		controller, view := setupController(t, serveControllerDocument)
		require.NoError(t, controller.Init(context.Background()))

		view.setValue(SelectorSort, models.SortOldest)
		view.fire(t, SelectorSort, EventChange, Event{Kind: EventChange})

		listing := view.region(RegionPosts)
		assert.Less(t, strings.Index(listing, "Portfolio redesign"), strings.Index(listing, "Learning Go"))
		assert.Less(t, strings.Index(listing, "Learning Go"), strings.Index(listing, "Desk setup"))
	})

	t.Run("read more opens the detail modal", func(t *testing.T) {
		controller, view := setupController(t, serveControllerDocument)
		require.NoError(t, controller.Init(context.Background()))

		view.fire(t, SelectorReadMore, EventClick, Event{Kind: EventClick, Target: "2"})

		modal := view.region(RegionModal)
		assert.Contains(t, modal, "Learning Go")
		assert.Contains(t, modal, "Daniel")
		assert.Contains(t, modal, "daniel@example.org")
	})

	t.Run("read more for an unknown post shows an error banner", func(t *testing.T) {
		controller, view := setupController(t, serveControllerDocument)
		require.NoError(t, controller.Init(context.Background()))

		view.fire(t, SelectorReadMore, EventClick, Event{Kind: EventClick, Target: "99"})

		assert.Empty(t, view.region(RegionModal))
		assert.Contains(t, view.region(RegionError), "error-banner")
	})

	t.Run("read more with an unusable target is ignored", func(t *testing.T) {
		controller, view := setupController(t, serveControllerDocument)
		require.NoError(t, controller.Init(context.Background()))

		view.fire(t, SelectorReadMore, EventClick, Event{Kind: EventClick, Target: "not-a-number"})

		assert.Empty(t, view.region(RegionModal))
		assert.Empty(t, view.region(RegionError))
	})

	t.Run("modal close control closes the detail view", func(t *testing.T) {
		controller, view := setupController(t, serveControllerDocument)
		require.NoError(t, controller.Init(context.Background()))

		view.fire(t, SelectorReadMore, EventClick, Event{Kind: EventClick, Target: "1"})
		require.NotEmpty(t, view.region(RegionModal))

		view.fire(t, SelectorModalClose, EventClick, Event{Kind: EventClick})
		assert.Empty(t, view.region(RegionModal))
	})

	t.Run("backdrop click closes the detail view", func(t *testing.T) {
		controller, view := setupController(t, serveControllerDocument)
		require.NoError(t, controller.Init(context.Background()))

		view.fire(t, SelectorReadMore, EventClick, Event{Kind: EventClick, Target: "1"})
		require.NotEmpty(t, view.region(RegionModal))

		view.fire(t, SelectorBackdrop, EventClick, Event{Kind: EventClick})
		assert.Empty(t, view.region(RegionModal))
	})

	t.Run("filters compose across events", func(t *testing.T) {
		controller, view := setupController(t, serveControllerDocument)
		require.NoError(t, controller.Init(context.Background()))

		view.setValue(SelectorCategory, "programming")
		view.fire(t, SelectorCategory, EventChange, Event{Kind: EventChange})

		view.setValue(SelectorSearch, "interfaces")
		view.fire(t, SelectorSearch, EventInput, Event{Kind: EventInput})

		listing := view.region(RegionPosts)
		assert.Contains(t, listing, "Learning Go")
		assert.NotContains(t, listing, "Portfolio redesign")

		// Clearing the category keeps the search active.
		view.setValue(SelectorCategory, models.CategoryAll)
		view.fire(t, SelectorCategory, EventChange, Event{Kind: EventChange})

		listing = view.region(RegionPosts)
		assert.Contains(t, listing, "Learning Go")
		assert.NotContains(t, listing, "Desk setup")
	})
}
