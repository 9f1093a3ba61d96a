package movie

import (
	"encoding/json"
	"net/http"

	"movierama/internal/api/handlers"
	"movierama/internal/api/middleware"
	"movierama/internal/core/movies"
)

// UpdateMovieHandler handles movie edits
type UpdateMovieHandler struct {
	service movies.Service
}

// NewUpdateMovieHandler creates a new update movie handler
func NewUpdateMovieHandler(service movies.Service) *UpdateMovieHandler {
	return &UpdateMovieHandler{service: service}
}

// HandleUpdateMovie edits a movie the authenticated user owns
// PUT /api/v1/movies/{movieID}
//
// Request body: { "title": "...", "description": "..." }
func (h *UpdateMovieHandler) HandleUpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := parseMovieID(r)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid movie id")
		return
	}

	var req movies.UpdateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), userID, movieID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, movie)
}
