package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"movierama/internal/api/handlers"
	"movierama/internal/core/users"
)

// RegisterHandler handles account registration
type RegisterHandler struct {
	service users.Service
}

// NewRegisterHandler creates a new register handler
func NewRegisterHandler(service users.Service) *RegisterHandler {
	return &RegisterHandler{service: service}
}

// HandleRegister creates a new account and returns an issued identity token
// POST /api/v1/auth/register
//
// Request body: { "username": "...", "email": "...", "password": "..." }
func (h *RegisterHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req users.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	response, err := h.service.Register(r.Context(), req)
	if err != nil {
		handleAuthError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, response)
}

// handleAuthError converts account service errors to HTTP responses
func handleAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, users.ErrUsernameTaken):
		handlers.WriteError(w, http.StatusBadRequest, "UsernameTaken", "Username already exists")
	case errors.Is(err, users.ErrInvalidInput):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "UserNotFound", "User not found")
	case errors.Is(err, users.ErrInvalidCredentials):
		handlers.WriteError(w, http.StatusUnauthorized, "InvalidCredentials", "Invalid credentials")
	default:
		log.Printf("Auth error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Something went wrong")
	}
}
