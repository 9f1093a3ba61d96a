package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"movierama/internal/core/movies"
)

type postgresMovieRepo struct {
	db *sql.DB
}

// NewMovieRepository creates a new PostgreSQL movie repository
func NewMovieRepository(db *sql.DB) movies.Repository {
	return &postgresMovieRepo{db: db}
}

// movieColumns is the shared SELECT list for movie reads. Like/hate counts
// are derived by grouping the votes relation - the LEFT JOIN keeps movies
// with zero votes in the result with counts of 0.
const movieColumns = `
	m.id, m.title, m.description, m.date_added,
	u.id AS user_id, u.username,
	COALESCE(SUM(CASE WHEN v.kind = 'LIKE' THEN 1 ELSE 0 END), 0) AS like_count,
	COALESCE(SUM(CASE WHEN v.kind = 'HATE' THEN 1 ELSE 0 END), 0) AS hate_count
`

// Create inserts a new movie owned by the given user.
// The creation timestamp is assigned by the database.
func (r *postgresMovieRepo) Create(ctx context.Context, userID int64, req movies.CreateMovieRequest) (*movies.Movie, error) {
	query := `
		INSERT INTO movies (title, description, user_id, date_added)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, date_added, (SELECT username FROM users WHERE id = $3)
	`

	var description sql.NullString
	if req.Description != nil {
		description.String = *req.Description
		description.Valid = true
	}

	movie := &movies.Movie{
		Title:       req.Title,
		Description: req.Description,
	}
	movie.User.ID = userID

	err := r.db.QueryRowContext(ctx, query, req.Title, description, userID).
		Scan(&movie.ID, &movie.DateAdded, &movie.User.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to insert movie: %w", err)
	}

	return movie, nil
}

// GetByID retrieves a movie with its owner summary and derived vote counts
func (r *postgresMovieRepo) GetByID(ctx context.Context, id int64) (*movies.Movie, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM movies m
		JOIN users u ON m.user_id = u.id
		LEFT JOIN votes v ON v.movie_id = m.id
		WHERE m.id = $1
		GROUP BY m.id, u.id
	`, movieColumns)

	movie, err := scanMovie(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, movies.ErrMovieNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get movie by id: %w", err)
	}

	return movie, nil
}

// List retrieves one ordered page of movies plus the unbounded total count.
// The ORDER BY body comes from the fixed sort-column mapping in the movies
// package - caller input never reaches the query text.
func (r *postgresMovieRepo) List(ctx context.Context, pageable movies.Pageable) ([]*movies.Movie, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count movies: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM movies m
		JOIN users u ON m.user_id = u.id
		LEFT JOIN votes v ON v.movie_id = m.id
		GROUP BY m.id, u.id
		ORDER BY %s
		LIMIT $1 OFFSET $2
	`, movieColumns, pageable.Sort.OrderBy())

	rows, err := r.db.QueryContext(ctx, query, pageable.PageSize, pageable.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list movies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result, err := scanMovies(rows)
	if err != nil {
		return nil, 0, err
	}

	return result, total, nil
}

// ListByUsername is List filtered to movies owned by the given username
func (r *postgresMovieRepo) ListByUsername(ctx context.Context, username string, pageable movies.Pageable) ([]*movies.Movie, int64, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM movies m
		JOIN users u ON m.user_id = u.id
		WHERE u.username = $1
	`

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, username).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count movies by username: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM movies m
		JOIN users u ON m.user_id = u.id
		LEFT JOIN votes v ON v.movie_id = m.id
		WHERE u.username = $1
		GROUP BY m.id, u.id
		ORDER BY %s
		LIMIT $2 OFFSET $3
	`, movieColumns, pageable.Sort.OrderBy())

	rows, err := r.db.QueryContext(ctx, query, username, pageable.PageSize, pageable.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list movies by username: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result, err := scanMovies(rows)
	if err != nil {
		return nil, 0, err
	}

	return result, total, nil
}

// Update edits a movie's title and description
func (r *postgresMovieRepo) Update(ctx context.Context, id int64, req movies.UpdateMovieRequest) error {
	var description sql.NullString
	if req.Description != nil {
		description.String = *req.Description
		description.Valid = true
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE movies
		SET title = $1, description = $2
		WHERE id = $3
	`, req.Title, description, id)
	if err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rowsAffected == 0 {
		return movies.ErrMovieNotFound
	}

	return nil
}

// Delete removes a movie. Its votes go with it via ON DELETE CASCADE.
func (r *postgresMovieRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return movies.ErrMovieNotFound
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMovie(row rowScanner) (*movies.Movie, error) {
	var movie movies.Movie
	var description sql.NullString

	err := row.Scan(
		&movie.ID, &movie.Title, &description, &movie.DateAdded,
		&movie.User.ID, &movie.User.Username,
		&movie.LikeCount, &movie.HateCount,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		movie.Description = &description.String
	}

	return &movie, nil
}

func scanMovies(rows *sql.Rows) ([]*movies.Movie, error) {
	var result []*movies.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		result = append(result, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movies: %w", err)
	}

	return result, nil
}
