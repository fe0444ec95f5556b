package models

import (
	"errors"
	"time"
)

// Sentinel values used for the fallback post substituted when the data
// source cannot be loaded.
const (
	FallbackPostID   = 1
	FallbackAuthor   = "system"
	FallbackCategory = "error"
	FallbackTitle    = "Failed to load posts"
	FallbackBody     = "The post data could not be loaded. Please try again later."
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.Date.IsZero() {
		return errors.New("date cannot be zero")
	}

	return nil
}

// FallbackPost builds the synthetic post shown in place of the real
// collection when loading fails. It is post-shaped so the listing
// pipeline renders it like any other entry.
func FallbackPost() *Post {
	return &Post{
		ID:       FallbackPostID,
		Title:    FallbackTitle,
		Body:     FallbackBody,
		Date:     time.Now(),
		Author:   FallbackAuthor,
		Category: FallbackCategory,
	}
}
