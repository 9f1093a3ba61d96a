package movie

import (
	"encoding/json"
	"net/http"

	"movierama/internal/api/handlers"
	"movierama/internal/api/middleware"
	"movierama/internal/core/movies"
)

// CreateMovieHandler handles sharing a new movie
type CreateMovieHandler struct {
	service movies.Service
}

// NewCreateMovieHandler creates a new create movie handler
func NewCreateMovieHandler(service movies.Service) *CreateMovieHandler {
	return &CreateMovieHandler{service: service}
}

// HandleCreateMovie shares a new movie owned by the authenticated user
// POST /api/v1/movies
//
// Request body: { "title": "...", "description": "..." }
func (h *CreateMovieHandler) HandleCreateMovie(w http.ResponseWriter, r *http.Request) {
	var req movies.CreateMovieRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, movie)
}
