package services

import (
	"sort"
	"strings"

	"blogfront/app/models"
)

// FilterSortEngine derives the visible subset of posts from a view
// state. It holds no state of its own; Apply is a pure transformation.
type FilterSortEngine struct{}

// NewFilterSortEngine creates a new FilterSortEngine
func NewFilterSortEngine() *FilterSortEngine {
	return &FilterSortEngine{}
}

// Apply filters by category, then by search term, then sorts by date.
// The three steps always compose; none of them is a mode. The input
// slice is not modified.
func (e *FilterSortEngine) Apply(posts []*models.Post, state models.ViewState) []*models.Post {
	term := strings.ToLower(state.SearchTerm)

	out := make([]*models.Post, 0, len(posts))
	for _, post := range posts {
		if state.ActiveCategory != models.CategoryAll && post.Category != state.ActiveCategory {
			continue
		}
		if term != "" && !matchesTerm(post, term) {
			continue
		}
		out = append(out, post)
	}

	// Stable sort: posts with equal dates keep their source order.
	sort.SliceStable(out, func(i, j int) bool {
		if state.SortOrder == models.SortOldest {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Date.After(out[j].Date)
	})

	return out
}

// matchesTerm reports whether the case-folded term occurs in the post's
// title or body.
func matchesTerm(post *models.Post, term string) bool {
	return strings.Contains(strings.ToLower(post.Title), term) ||
		strings.Contains(strings.ToLower(post.Body), term)
}
