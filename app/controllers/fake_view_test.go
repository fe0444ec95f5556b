package controllers

import (
	"sync"
	"testing"
	"time"

	"blogfront/app/models"
	"blogfront/app/repositories/mock"
	"blogfront/app/services"

	"github.com/stretchr/testify/require"
)

// fakeView records SetContent calls and lets tests fire bound events.
type fakeView struct {
	mu       sync.Mutex
	regions  map[string]string
	modalLog []string
	handlers map[string]func(Event)
	values   map[string]string
}

func newFakeView() *fakeView {
	return &fakeView{
		regions:  make(map[string]string),
		handlers: make(map[string]func(Event)),
		values:   make(map[string]string),
	}
}

func (v *fakeView) SetContent(region, html string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.regions[region] = html
	if region == RegionModal {
		v.modalLog = append(v.modalLog, html)
	}
}

func (v *fakeView) OnEvent(selector, kind string, handler func(Event)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.handlers[selector+" "+kind] = handler
}

func (v *fakeView) ControlValue(selector string) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.values[selector]
}

func (v *fakeView) setValue(selector, value string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.values[selector] = value
}

func (v *fakeView) region(name string) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.regions[name]
}

func (v *fakeView) modalHistory() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]string, len(v.modalLog))
	copy(out, v.modalLog)
	return out
}

func (v *fakeView) fire(t *testing.T, selector, kind string, ev Event) {
	v.mu.Lock()
	handler := v.handlers[selector+" "+kind]
	v.mu.Unlock()
	require.NotNil(t, handler, "no handler bound for %s %s", selector, kind)
	handler(ev)
}

// seededStore builds a PostStore whose repository already holds the
// given posts; Load is never called on it.
func seededStore(t *testing.T, posts []*models.Post) *services.PostStore {
	repo := mock.NewPostRepository()
	require.NoError(t, repo.ReplaceAll(posts))
	return services.NewPostStore(repo, nil)
}

func controllerPost(id int, title, category string, date time.Time) *models.Post {
	return &models.Post{
		ID:       id,
		Title:    title,
		Body:     "Body of " + title,
		Date:     date,
		Author:   "Yui Tanaka",
		Category: category,
	}
}
