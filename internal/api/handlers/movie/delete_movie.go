package movie

import (
	"net/http"

	"movierama/internal/api/handlers"
	"movierama/internal/api/middleware"
	"movierama/internal/core/movies"
)

// DeleteMovieHandler handles movie removal
type DeleteMovieHandler struct {
	service movies.Service
}

// NewDeleteMovieHandler creates a new delete movie handler
func NewDeleteMovieHandler(service movies.Service) *DeleteMovieHandler {
	return &DeleteMovieHandler{service: service}
}

// HandleDeleteMovie removes a movie the authenticated user owns, along with
// its votes
// DELETE /api/v1/movies/{movieID}
func (h *DeleteMovieHandler) HandleDeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := parseMovieID(r)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid movie id")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.DeleteMovie(r.Context(), userID, movieID); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Movie deleted",
	})
}
