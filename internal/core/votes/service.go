package votes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"movierama/internal/core/movies"
)

// reconcileAttempts bounds the retry loop around the check-then-act race.
// One retry is always enough: a retried read observes the row the losing
// insert collided with and proceeds via the update/delete branch.
const reconcileAttempts = 2

type voteService struct {
	repo      Repository
	movieRepo movies.Repository
	logger    *slog.Logger
}

// NewVoteService creates a new vote service
func NewVoteService(repo Repository, movieRepo movies.Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &voteService{
		repo:      repo,
		movieRepo: movieRepo,
		logger:    logger,
	}
}

// VoteMovie applies a user's vote to a movie with toggle semantics:
// - No existing vote -> insert a vote of the requested kind
// - Existing vote of the same kind -> delete it (retract)
// - Existing vote of the other kind -> update it in place (reverse)
//
// This is an explicit toggle, not an idempotent "set my vote": two identical
// calls in sequence return the pair to the no-vote state.
func (s *voteService) VoteMovie(ctx context.Context, userID, movieID int64, kind Kind) (*movies.Movie, error) {
	if kind != KindLike && kind != KindHate {
		return nil, ErrInvalidKind
	}

	// Read-before-write: the movie must exist, and users may not vote on
	// their own submissions.
	movie, err := s.movieRepo.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie.User.ID == userID {
		return nil, ErrOwnMovie
	}

	if err := s.reconcile(ctx, userID, movieID, kind); err != nil {
		return nil, err
	}

	// Fresh aggregate read observing the mutation just applied
	return s.movieRepo.GetByID(ctx, movieID)
}

// reconcile runs the check-then-act sequence, retrying once when a
// concurrent request wins the race for the same (user, movie) pair.
func (s *voteService) reconcile(ctx context.Context, userID, movieID int64, kind Kind) error {
	var err error
	for attempt := 0; attempt < reconcileAttempts; attempt++ {
		err = s.applyOnce(ctx, userID, movieID, kind)
		if err == nil {
			return nil
		}

		// A lost race surfaces as one of these two: an insert that hit the
		// uniqueness constraint, or an update/delete whose row vanished.
		// Retry from a fresh read - it will observe the winner's state.
		if errors.Is(err, ErrVoteAlreadyExists) || errors.Is(err, ErrVoteNotFound) {
			s.logger.Warn("vote reconciliation lost a race, retrying",
				"user_id", userID,
				"movie_id", movieID,
				"attempt", attempt+1)
			continue
		}

		return err
	}
	return fmt.Errorf("vote reconciliation did not converge: %w", err)
}

// applyOnce performs one pass of the state machine: a single read followed
// by exactly one insert, update, or delete.
func (s *voteService) applyOnce(ctx context.Context, userID, movieID int64, kind Kind) error {
	current, err := s.repo.GetByUserAndMovie(ctx, userID, movieID)
	switch {
	case errors.Is(err, ErrVoteNotFound):
		if err := s.repo.Create(ctx, &Vote{
			UserID:  userID,
			MovieID: movieID,
			Kind:    kind,
		}); err != nil {
			return err
		}
		s.logger.Info("vote created",
			"user_id", userID,
			"movie_id", movieID,
			"kind", kind)
		return nil

	case err != nil:
		return fmt.Errorf("failed to read current vote: %w", err)

	case current.Kind == kind:
		// Same kind - retract
		if err := s.repo.Delete(ctx, userID, movieID); err != nil {
			return err
		}
		s.logger.Info("vote retracted",
			"user_id", userID,
			"movie_id", movieID,
			"kind", kind)
		return nil

	default:
		// Opposite kind - reverse in place
		if err := s.repo.UpdateKind(ctx, userID, movieID, kind); err != nil {
			return err
		}
		s.logger.Info("vote reversed",
			"user_id", userID,
			"movie_id", movieID,
			"from", current.Kind,
			"to", kind)
		return nil
	}
}

// GetUserVotesForMovies returns the user's votes on the given movies as a
// movie_id -> kind mapping. Absent key means no vote.
func (s *voteService) GetUserVotesForMovies(ctx context.Context, userID int64, movieIDs []int64) (map[int64]Kind, error) {
	if len(movieIDs) == 0 {
		return map[int64]Kind{}, nil
	}
	return s.repo.GetByUserAndMovies(ctx, userID, movieIDs)
}
