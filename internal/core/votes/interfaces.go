package votes

import (
	"context"

	"movierama/internal/core/movies"
)

// Repository defines the interface for vote persistence. Each mutation is a
// single atomic statement; the (user_id, movie_id) uniqueness constraint in
// storage is the authoritative at-most-one-vote guard.
type Repository interface {
	// GetByUserAndMovie returns the user's active vote on a movie, or
	// ErrVoteNotFound.
	GetByUserAndMovie(ctx context.Context, userID, movieID int64) (*Vote, error)

	// Create inserts a new vote. Returns ErrVoteAlreadyExists when the
	// uniqueness constraint is violated by a concurrent insert.
	Create(ctx context.Context, vote *Vote) error

	// UpdateKind flips an existing vote's kind in place. Returns
	// ErrVoteNotFound when the row disappeared under a concurrent retract.
	UpdateKind(ctx context.Context, userID, movieID int64, kind Kind) error

	// Delete retracts the user's vote. Returns ErrVoteNotFound when there
	// was no row to delete.
	Delete(ctx context.Context, userID, movieID int64) error

	// GetByUserAndMovies returns the user's votes on the given movies as a
	// movie_id -> kind mapping. Movies the user hasn't voted on are absent.
	GetByUserAndMovies(ctx context.Context, userID int64, movieIDs []int64) (map[int64]Kind, error)
}

// Service defines the interface for vote business logic
type Service interface {
	// VoteMovie applies the toggle state machine for (user, movie, kind)
	// and returns the movie with fresh aggregates reflecting the mutation.
	VoteMovie(ctx context.Context, userID, movieID int64, kind Kind) (*movies.Movie, error)

	// GetUserVotesForMovies returns the user's votes on the given movies.
	// An empty input yields an empty mapping without touching storage.
	GetUserVotesForMovies(ctx context.Context, userID int64, movieIDs []int64) (map[int64]Kind, error)
}
