package vote

import (
	"encoding/json"
	"log"
	"net/http"

	"movierama/internal/api/handlers"
	"movierama/internal/api/middleware"
	"movierama/internal/core/votes"
)

// UserVotesHandler handles batch lookups of the caller's votes
type UserVotesHandler struct {
	service votes.Service
}

// NewUserVotesHandler creates a new user votes handler
func NewUserVotesHandler(service votes.Service) *UserVotesHandler {
	return &UserVotesHandler{service: service}
}

// HandleUserVotes returns the authenticated user's votes on the given
// movies as a movie_id -> kind mapping. Movies the user hasn't voted on
// are absent from the result.
// POST /api/v1/votes/user-votes
//
// Request body: [1, 2, 3]
func (h *UserVotesHandler) HandleUserVotes(w http.ResponseWriter, r *http.Request) {
	var movieIDs []int64

	if err := json.NewDecoder(r.Body).Decode(&movieIDs); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	userVotes, err := h.service.GetUserVotesForMovies(r.Context(), userID, movieIDs)
	if err != nil {
		log.Printf("User votes lookup error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to look up votes")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, userVotes)
}
