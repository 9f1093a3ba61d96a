package movie

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"movierama/internal/api/handlers"
	"movierama/internal/core/movies"
)

// GetMovieHandler handles single-movie reads
type GetMovieHandler struct {
	service movies.Service
}

// NewGetMovieHandler creates a new get movie handler
func NewGetMovieHandler(service movies.Service) *GetMovieHandler {
	return &GetMovieHandler{service: service}
}

// HandleGetMovie returns one movie with its derived vote counts
// GET /api/v1/movies/{movieID}
func (h *GetMovieHandler) HandleGetMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := parseMovieID(r)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid movie id")
		return
	}

	movie, err := h.service.GetMovie(r.Context(), movieID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, movie)
}

// parseMovieID extracts the numeric movie id from the route
func parseMovieID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "movieID"), 10, 64)
}
