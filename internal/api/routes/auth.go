package routes

import (
	"github.com/go-chi/chi/v5"

	authHandlers "movierama/internal/api/handlers/auth"
	"movierama/internal/core/users"
)

// RegisterAuthRoutes registers registration and login endpoints on the router
func RegisterAuthRoutes(r chi.Router, service users.Service) {
	registerHandler := authHandlers.NewRegisterHandler(service)
	loginHandler := authHandlers.NewLoginHandler(service)

	r.Post("/api/v1/auth/register", registerHandler.HandleRegister)
	r.Post("/api/v1/auth/login", loginHandler.HandleLogin)
}
