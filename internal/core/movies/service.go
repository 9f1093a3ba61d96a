package movies

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

const (
	// DefaultPageSize bounds listings when the client doesn't ask for a size
	DefaultPageSize = 20

	// MaxPageSize caps the page size a client may request
	MaxPageSize = 100
)

type movieService struct {
	repo   Repository
	logger *slog.Logger
}

// NewMovieService creates a new movie service
func NewMovieService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &movieService{
		repo:   repo,
		logger: logger,
	}
}

// CreateMovie shares a new movie owned by the given user
func (s *movieService) CreateMovie(ctx context.Context, userID int64, req CreateMovieRequest) (*Movie, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, ErrTitleRequired
	}

	movie, err := s.repo.Create(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("movie created",
		"movie_id", movie.ID,
		"user_id", userID,
		"title", movie.Title)

	return movie, nil
}

// GetMovie returns a single movie with fresh aggregates
func (s *movieService) GetMovie(ctx context.Context, id int64) (*Movie, error) {
	return s.repo.GetByID(ctx, id)
}

// ListMovies returns one ordered, bounded page of all movies
func (s *movieService) ListMovies(ctx context.Context, pageable Pageable) (*Page, error) {
	pageable = normalizePageable(pageable)

	content, total, err := s.repo.List(ctx, pageable)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	return NewPage(content, pageable, total), nil
}

// ListMoviesByUser returns one page of movies owned by the given username
func (s *movieService) ListMoviesByUser(ctx context.Context, username string, pageable Pageable) (*Page, error) {
	pageable = normalizePageable(pageable)

	content, total, err := s.repo.ListByUsername(ctx, strings.TrimSpace(username), pageable)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies for user %s: %w", username, err)
	}

	return NewPage(content, pageable, total), nil
}

// UpdateMovie edits a movie's title and description after verifying the
// caller owns it
func (s *movieService) UpdateMovie(ctx context.Context, userID, movieID int64, req UpdateMovieRequest) (*Movie, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, ErrTitleRequired
	}

	existing, err := s.repo.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if existing.User.ID != userID {
		return nil, ErrNotOwner
	}

	if err := s.repo.Update(ctx, movieID, req); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, movieID)
}

// DeleteMovie removes a movie after verifying the caller owns it.
// Votes on the movie are removed by the storage layer's cascade.
func (s *movieService) DeleteMovie(ctx context.Context, userID, movieID int64) error {
	existing, err := s.repo.GetByID(ctx, movieID)
	if err != nil {
		return err
	}
	if existing.User.ID != userID {
		return ErrNotOwner
	}

	if err := s.repo.Delete(ctx, movieID); err != nil {
		return err
	}

	s.logger.Info("movie deleted",
		"movie_id", movieID,
		"user_id", userID)

	return nil
}

// normalizePageable clamps page number and size into their legal ranges
func normalizePageable(p Pageable) Pageable {
	if p.PageNumber < 0 {
		p.PageNumber = 0
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return NewPageable(p.PageNumber, p.PageSize, p.Sort)
}
