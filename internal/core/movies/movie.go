package movies

import (
	"time"

	"movierama/internal/core/users"
)

// Movie represents a shared movie with its derived vote aggregates.
// LikeCount and HateCount are always computed from the votes relation
// at read time - they are never stored alongside the movie row.
type Movie struct {
	DateAdded   time.Time     `json:"dateAdded" db:"date_added"`
	Title       string        `json:"title" db:"title"`
	Description *string       `json:"description,omitempty" db:"description"`
	User        users.Summary `json:"user"`
	ID          int64         `json:"id" db:"id"`
	LikeCount   int64         `json:"likeCount"`
	HateCount   int64         `json:"hateCount"`
}

// CreateMovieRequest represents the input for sharing a new movie
type CreateMovieRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// UpdateMovieRequest represents the input for editing an existing movie
type UpdateMovieRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}
