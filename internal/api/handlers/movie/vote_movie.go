package movie

import (
	"net/http"

	"movierama/internal/api/handlers"
	"movierama/internal/api/middleware"
	"movierama/internal/core/votes"
)

// VoteMovieHandler handles vote toggling on a movie
type VoteMovieHandler struct {
	service votes.Service
}

// NewVoteMovieHandler creates a new vote movie handler
func NewVoteMovieHandler(service votes.Service) *VoteMovieHandler {
	return &VoteMovieHandler{service: service}
}

// HandleVoteMovie applies the toggle state machine to the authenticated
// user's vote and returns the movie with fresh aggregates
// POST /api/v1/movies/{movieID}/vote?type=LIKE|HATE
//
// Voting twice with the same type retracts the vote; voting with the other
// type reverses it.
func (h *VoteMovieHandler) HandleVoteMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := parseMovieID(r)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid movie id")
		return
	}

	voteType := r.URL.Query().Get("type")
	if voteType == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "type query parameter is required")
		return
	}

	kind, err := votes.ParseKind(voteType)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Vote type must be 'LIKE' or 'HATE'")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	movie, err := h.service.VoteMovie(r.Context(), userID, movieID, kind)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, movie)
}
