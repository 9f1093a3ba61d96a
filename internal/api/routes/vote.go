package routes

import (
	"github.com/go-chi/chi/v5"

	voteHandlers "movierama/internal/api/handlers/vote"
	"movierama/internal/api/middleware"
	"movierama/internal/core/votes"
)

// RegisterVoteRoutes registers the batch vote-lookup endpoint on the router
func RegisterVoteRoutes(r chi.Router, service votes.Service, authMiddleware *middleware.AuthMiddleware) {
	userVotesHandler := voteHandlers.NewUserVotesHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/api/v1/votes/user-votes", userVotesHandler.HandleUserVotes)
}
