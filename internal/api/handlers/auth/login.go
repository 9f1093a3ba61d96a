package auth

import (
	"encoding/json"
	"net/http"

	"movierama/internal/api/handlers"
	"movierama/internal/core/users"
)

// LoginHandler handles credential verification and token issuance
type LoginHandler struct {
	service users.Service
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(service users.Service) *LoginHandler {
	return &LoginHandler{service: service}
}

// HandleLogin verifies credentials and returns an issued identity token
// POST /api/v1/auth/login
//
// Request body: { "username": "...", "password": "..." }
// Responds 404 for an unknown username and 401 for a password mismatch.
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req users.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	response, err := h.service.Login(r.Context(), req)
	if err != nil {
		handleAuthError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, response)
}
