package movie

import (
	"errors"
	"log"
	"net/http"

	"movierama/internal/api/handlers"
	"movierama/internal/core/movies"
	"movierama/internal/core/votes"
)

// handleServiceError converts movie and vote service errors to HTTP
// responses. Raw storage error text never reaches the client.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, movies.ErrMovieNotFound):
		handlers.WriteError(w, http.StatusNotFound, "MovieNotFound", "Movie not found")
	case errors.Is(err, movies.ErrTitleRequired):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Title is required")
	case errors.Is(err, movies.ErrNotOwner):
		handlers.WriteError(w, http.StatusForbidden, "NotOwner", "You don't own this movie")
	case errors.Is(err, votes.ErrInvalidKind):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Vote type must be 'LIKE' or 'HATE'")
	case errors.Is(err, votes.ErrOwnMovie):
		handlers.WriteError(w, http.StatusBadRequest, "OwnMovie", "You cannot vote on your own movie")
	default:
		log.Printf("Movie handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Something went wrong")
	}
}
