package movies

import "errors"

var (
	// ErrMovieNotFound indicates the requested movie doesn't exist
	ErrMovieNotFound = errors.New("movie not found")

	// ErrTitleRequired indicates a movie was submitted without a title
	ErrTitleRequired = errors.New("title is required")

	// ErrNotOwner indicates the caller doesn't own the movie being mutated
	ErrNotOwner = errors.New("not the owner of this movie")
)
