package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"movierama/internal/core/votes"
)

type postgresVoteRepo struct {
	db *sql.DB
}

// NewVoteRepository creates a new PostgreSQL vote repository
func NewVoteRepository(db *sql.DB) votes.Repository {
	return &postgresVoteRepo{db: db}
}

// GetByUserAndMovie retrieves a user's active vote on a movie.
// Used by the service to check existing vote state before mutating.
func (r *postgresVoteRepo) GetByUserAndMovie(ctx context.Context, userID, movieID int64) (*votes.Vote, error) {
	query := `
		SELECT id, user_id, movie_id, kind, created_at
		FROM votes
		WHERE user_id = $1 AND movie_id = $2
	`

	var vote votes.Vote

	err := r.db.QueryRowContext(ctx, query, userID, movieID).Scan(
		&vote.ID, &vote.UserID, &vote.MovieID, &vote.Kind, &vote.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, votes.ErrVoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vote by user and movie: %w", err)
	}

	return &vote, nil
}

// Create inserts a new vote. The unique_user_movie_vote constraint is the
// authoritative guard for the at-most-one-vote invariant: a violation means
// a concurrent request already voted, surfaced as ErrVoteAlreadyExists so
// the service can retry from a fresh read.
func (r *postgresVoteRepo) Create(ctx context.Context, vote *votes.Vote) error {
	query := `
		INSERT INTO votes (user_id, movie_id, kind, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		vote.UserID, vote.MovieID, vote.Kind,
	).Scan(&vote.ID, &vote.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "unique_user_movie_vote") {
			return votes.ErrVoteAlreadyExists
		}

		return fmt.Errorf("failed to insert vote: %w", err)
	}

	return nil
}

// UpdateKind flips an existing vote's kind in place (the reversal branch)
func (r *postgresVoteRepo) UpdateKind(ctx context.Context, userID, movieID int64, kind votes.Kind) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE votes
		SET kind = $3
		WHERE user_id = $1 AND movie_id = $2
	`, userID, movieID, kind)
	if err != nil {
		return fmt.Errorf("failed to update vote kind: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}

	// Row vanished under a concurrent retract - let the service re-read
	if rowsAffected == 0 {
		return votes.ErrVoteNotFound
	}

	return nil
}

// Delete removes the user's vote on a movie (the retract branch)
func (r *postgresVoteRepo) Delete(ctx context.Context, userID, movieID int64) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM votes
		WHERE user_id = $1 AND movie_id = $2
	`, userID, movieID)
	if err != nil {
		return fmt.Errorf("failed to delete vote: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}

	if rowsAffected == 0 {
		return votes.ErrVoteNotFound
	}

	return nil
}

// GetByUserAndMovies retrieves a user's votes on a set of movies in one
// batch query, as a movie_id -> kind mapping
func (r *postgresVoteRepo) GetByUserAndMovies(ctx context.Context, userID int64, movieIDs []int64) (map[int64]votes.Kind, error) {
	result := make(map[int64]votes.Kind)
	if len(movieIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT movie_id, kind
		FROM votes
		WHERE user_id = $1 AND movie_id = ANY($2)
	`

	rows, err := r.db.QueryContext(ctx, query, userID, pq.Array(movieIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to list votes by user and movies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var movieID int64
		var kind votes.Kind
		if err := rows.Scan(&movieID, &kind); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		result[movieID] = kind
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating votes: %w", err)
	}

	return result, nil
}
