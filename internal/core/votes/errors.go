package votes

import "errors"

var (
	// ErrVoteNotFound indicates no vote exists for the (user, movie) pair
	ErrVoteNotFound = errors.New("vote not found")

	// ErrInvalidKind indicates the vote type is not LIKE or HATE
	ErrInvalidKind = errors.New("invalid vote type: must be 'LIKE' or 'HATE'")

	// ErrVoteAlreadyExists indicates an insert hit the (user, movie)
	// uniqueness constraint - a concurrent request created the vote first
	ErrVoteAlreadyExists = errors.New("vote already exists")

	// ErrOwnMovie indicates a user tried to vote on their own movie
	ErrOwnMovie = errors.New("cannot vote on your own movie")
)
