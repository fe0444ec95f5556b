package models

import "time"

// Category and sort values understood by the view state.
const (
	CategoryAll = "all"
	SortNewest  = "newest"
	SortOldest  = "oldest"
)

// Post represents one blog entry as delivered by the data source.
// Posts are read-only after load.
type Post struct {
	ID       int       `json:"id" validate:"required,gt=0"`
	Title    string    `json:"title" validate:"required,max=200"`
	Body     string    `json:"body" validate:"required"`
	Date     time.Time `json:"date" validate:"required"`
	Author   string    `json:"author" validate:"required,max=100"`
	Category string    `json:"category" validate:"required,max=50"`
}

// Comment represents a comment fetched from the external comment service.
// PostID mirrors the service's payload; the detail view does not use it.
type Comment struct {
	PostID int    `json:"postId,omitempty"`
	Name   string `json:"name" validate:"required,max=100"`
	Body   string `json:"body" validate:"required,max=1000"`
	Email  string `json:"email" validate:"required,email"`
}

// ViewState is the current filter/search/sort selection driving which
// subset of posts is displayed.
type ViewState struct {
	ActiveCategory string
	SearchTerm     string
	SortOrder      string
}

// DefaultViewState returns the selection used for the initial render:
// all categories, no search term, newest first.
func DefaultViewState() ViewState {
	return ViewState{
		ActiveCategory: CategoryAll,
		SearchTerm:     "",
		SortOrder:      SortNewest,
	}
}

// ContactMessage is a contact form submission. Submission is simulated;
// the message only has to pass validation.
type ContactMessage struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=1,max=2000"`
}
