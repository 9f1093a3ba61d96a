package movies

import "context"

// Repository defines the interface for movie data persistence.
// Reads always return movies with their derived like/hate counts and
// owner summary attached.
type Repository interface {
	Create(ctx context.Context, userID int64, req CreateMovieRequest) (*Movie, error)

	// GetByID returns the movie with fresh aggregates, or ErrMovieNotFound.
	GetByID(ctx context.Context, id int64) (*Movie, error)

	// List returns one page of movies plus the total count matching the
	// filter before paging.
	List(ctx context.Context, pageable Pageable) ([]*Movie, int64, error)

	// ListByUsername is List with an equality filter on the owner username.
	ListByUsername(ctx context.Context, username string, pageable Pageable) ([]*Movie, int64, error)

	Update(ctx context.Context, id int64, req UpdateMovieRequest) error
	Delete(ctx context.Context, id int64) error
}

// Service defines the interface for movie business logic
type Service interface {
	CreateMovie(ctx context.Context, userID int64, req CreateMovieRequest) (*Movie, error)
	GetMovie(ctx context.Context, id int64) (*Movie, error)
	ListMovies(ctx context.Context, pageable Pageable) (*Page, error)
	ListMoviesByUser(ctx context.Context, username string, pageable Pageable) (*Page, error)

	// UpdateMovie and DeleteMovie enforce that the caller owns the movie,
	// returning ErrNotOwner otherwise.
	UpdateMovie(ctx context.Context, userID, movieID int64, req UpdateMovieRequest) (*Movie, error)
	DeleteMovie(ctx context.Context, userID, movieID int64) error
}
