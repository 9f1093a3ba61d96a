package movie

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"movierama/internal/api/handlers"
	"movierama/internal/core/movies"
)

// ListMoviesHandler handles paged movie listings
type ListMoviesHandler struct {
	service movies.Service
}

// NewListMoviesHandler creates a new list movies handler
func NewListMoviesHandler(service movies.Service) *ListMoviesHandler {
	return &ListMoviesHandler{service: service}
}

// HandleListMovies returns one ordered, bounded page of all movies
// GET /api/v1/movies?page=&size=&sort=field,direction
func (h *ListMoviesHandler) HandleListMovies(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListMovies(r.Context(), pageableFromQuery(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, page)
}

// HandleListMoviesByUser returns one page of movies owned by a username
// GET /api/v1/movies/user/{username}?page=&size=&sort=field,direction
func (h *ListMoviesHandler) HandleListMoviesByUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "username is required")
		return
	}

	page, err := h.service.ListMoviesByUser(r.Context(), username, pageableFromQuery(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, page)
}

// pageableFromQuery parses page/size/sort query parameters. Bogus numbers
// fall back to the first page at the default size; the sort spec does its
// own validation against the fixed field map.
func pageableFromQuery(r *http.Request) movies.Pageable {
	query := r.URL.Query()

	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 0 {
		page = 0
	}

	size, err := strconv.Atoi(query.Get("size"))
	if err != nil || size <= 0 {
		size = movies.DefaultPageSize
	}

	return movies.NewPageable(page, size, movies.ParseSort(query.Get("sort")))
}
