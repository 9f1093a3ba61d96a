package routes

import (
	"github.com/go-chi/chi/v5"

	movieHandlers "movierama/internal/api/handlers/movie"
	"movierama/internal/api/middleware"
	"movierama/internal/core/movies"
	"movierama/internal/core/votes"
)

// RegisterMovieRoutes registers movie listing, CRUD and voting endpoints
// on the router
func RegisterMovieRoutes(r chi.Router, movieService movies.Service, voteService votes.Service, authMiddleware *middleware.AuthMiddleware) {
	listHandler := movieHandlers.NewListMoviesHandler(movieService)
	getHandler := movieHandlers.NewGetMovieHandler(movieService)
	createHandler := movieHandlers.NewCreateMovieHandler(movieService)
	updateHandler := movieHandlers.NewUpdateMovieHandler(movieService)
	deleteHandler := movieHandlers.NewDeleteMovieHandler(movieService)
	voteHandler := movieHandlers.NewVoteMovieHandler(voteService)

	r.With(authMiddleware.RequireAuth).Get("/api/v1/movies", listHandler.HandleListMovies)
	r.With(authMiddleware.RequireAuth).Get("/api/v1/movies/user/{username}", listHandler.HandleListMoviesByUser)
	r.Get("/api/v1/movies/{movieID}", getHandler.HandleGetMovie)

	r.With(authMiddleware.RequireAuth).Post("/api/v1/movies", createHandler.HandleCreateMovie)
	r.With(authMiddleware.RequireAuth).Put("/api/v1/movies/{movieID}", updateHandler.HandleUpdateMovie)
	r.With(authMiddleware.RequireAuth).Delete("/api/v1/movies/{movieID}", deleteHandler.HandleDeleteMovie)

	r.With(authMiddleware.RequireAuth).Post("/api/v1/movies/{movieID}/vote", voteHandler.HandleVoteMovie)
}
